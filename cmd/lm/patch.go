package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/listmodel"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Patch == "" {
		return fmt.Errorf("%w: patch requires a patch file (-p)", cli.ErrUsage)
	}
	if err := oneArg("patch", args); err != nil {
		return err
	}
	p, err := os.ReadFile(cfg.Patch)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	props, err := getDecl(cc, args[0])
	if err != nil {
		return err
	}
	m, err := listmodel.Load(props)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	res, err := listmodel.Patch(m, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[0], err)
	}
	return writeModel(cfg.MainConfig, cc.Out, res)
}
