package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/listmodel/compile"
)

func compileCmd(cfg *CompileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compile.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := oneArg("compile", args); err != nil {
		return err
	}
	props, err := getDecl(cc, args[0])
	if err != nil {
		return err
	}
	p, err := compile.Compile(props)
	if err != nil {
		return fmt.Errorf("error compiling %s: %w", args[0], err)
	}
	if _, err := cc.Out.Write(p.Bytes()); err != nil {
		return fmt.Errorf("error writing program: %w", err)
	}
	return nil
}

func disasm(cfg *DisasmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Disasm.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := oneArg("disasm", args); err != nil {
		return err
	}
	p, err := getProgram(cc, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cc.Out, p.Disassemble())
	return err
}
