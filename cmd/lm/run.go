package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/listmodel"
	"github.com/signadot/listmodel/script"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		cfg.Run.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Script == "" {
		return fmt.Errorf("%w: run requires a script (-s)", cli.ErrUsage)
	}
	if err := oneArg("run", args); err != nil {
		return err
	}
	steps, err := script.ParseFile(cfg.Script)
	if err != nil {
		return err
	}
	props, err := getDecl(cc, args[0])
	if err != nil {
		return err
	}
	m, err := listmodel.Load(props)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	res, err := script.Run(m, steps)
	if !cfg.Quiet {
		for i := range res {
			if _, werr := fmt.Fprintf(cc.Out, "# %s\n", res[i].String()); werr != nil {
				return werr
			}
		}
	}
	if err != nil {
		return err
	}
	return writeModel(cfg.MainConfig, cc.Out, m)
}
