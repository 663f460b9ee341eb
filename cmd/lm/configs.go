package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/listmodel/encode"
	"github.com/signadot/listmodel/format"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indentation width'"`

	T bool `cli:"name=t aliases=text desc='output as a text dump'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// encFormat picks the output format: -O wins, then -t/-y/-j, then the
// suffix of the -o file.
func (cfg *MainConfig) encFormat() format.Format {
	var f format.Format
	if pf, ok := format.ForPath(cfg.Out); ok {
		f = pf
	}
	switch {
	case cfg.T:
		f = format.TextFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.encFormat()),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if !cfg.encFormat().IsBinary() && cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CompileConfig struct {
	*MainConfig
	Compile *cli.Command
}

type DisasmConfig struct {
	*MainConfig
	Disasm *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Built bool `cli:"name=b aliases=built desc='build through the mutation api instead of compiling'"`
	View  *cli.Command
}

type RolesConfig struct {
	*MainConfig
	Roles *cli.Command
}

type RunConfig struct {
	*MainConfig
	Script string `cli:"name=s aliases=script desc='mutation script file'"`
	Quiet  bool   `cli:"name=q desc='do not print step results'"`
	Run    *cli.Command
}

type VerifyConfig struct {
	*MainConfig
	Verify *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch string `cli:"name=p aliases=patch desc='json patch file'"`
	Cmd   *cli.Command
}
