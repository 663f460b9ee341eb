package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/listmodel"
	"github.com/signadot/listmodel/decode"
	"github.com/signadot/listmodel/encode"
	"github.com/signadot/listmodel/model"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	props, err := getDecl(cc, file)
	if err != nil {
		return err
	}
	build := listmodel.Load
	if cfg.Built {
		build = listmodel.Build
	}
	m, err := build(props)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return writeModel(cfg.MainConfig, w, m)
}

func writeModel(cfg *MainConfig, w io.Writer, m *model.Model) error {
	if err := encode.EncodeModel(m, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := oneArg("dump", args); err != nil {
		return err
	}
	p, err := getProgram(cc, args[0])
	if err != nil {
		return err
	}
	if err := encode.Encode(decode.Decode(p), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func roles(cfg *RolesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Roles.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := oneArg("roles", args); err != nil {
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
	for _, id := range m.Roles() {
		if _, err := fmt.Fprintf(cc.Out, "%d\t%s\n", id, m.RoleName(id)); err != nil {
			return err
		}
	}
	return nil
}
