package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/listmodel/bytecode"
	"github.com/signadot/listmodel/compile"
	"github.com/signadot/listmodel/decl"
)

func lmMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.T, cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -t[ext] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDecl reads a YAML declaration, "-" being standard input.
func getDecl(cc *cli.Context, path string) ([]compile.Property, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	props, err := decl.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return props, nil
}

// getProgram reads a compiled program, "-" being standard input.
func getProgram(cc *cli.Context, path string) (*bytecode.Program, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	p, err := bytecode.FromBytes(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return p, nil
}

func oneArg(name string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s requires 1 argument, got %v", cli.ErrUsage, name, args)
	}
	return nil
}
