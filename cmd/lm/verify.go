package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/listmodel"
	"github.com/signadot/listmodel/libdiff"
)

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		cfg.Verify.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var lineColor func(libdiff.Op, string) string
	if cfg.colored(cc.Out) {
		lineColor = diffColor
	}
	failed := false
	for _, file := range args {
		props, err := getDecl(cc, file)
		if err != nil {
			return err
		}
		d, err := listmodel.Verify(props)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if d.Equal() {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
			continue
		}
		failed = true
		ins, del := d.Stats()
		fmt.Fprintf(cc.Out, "%s: decoded (-) and built (+) trees differ, +%d -%d\n", file, ins, del)
		fmt.Fprint(cc.Out, d.Format(lineColor))
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffColor(op libdiff.Op, s string) string {
	switch op {
	case libdiff.Insert:
		return color.GreenString("%s", s)
	case libdiff.Delete:
		return color.RedString("%s", s)
	}
	return s
}
