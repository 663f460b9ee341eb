package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "lm").
		WithSynopsis("lm [opts] command [opts]").
		WithDescription("lm compiles, decodes and edits list models.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lmMain(cfg, cc, args)
		}).
		WithSubs(
			CompileCommand(cfg),
			DisasmCommand(cfg),
			DumpCommand(cfg),
			ViewCommand(cfg),
			RolesCommand(cfg),
			RunCommand(cfg),
			VerifyCommand(cfg),
			PatchCommand(cfg))
}

func CompileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompileConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Compile, "compile").
		WithAliases("c").
		WithSynopsis("compile <decl.yaml>").
		WithDescription("compile a declaration to bytecode, written to -o or stdout").
		WithRun(func(cc *cli.Context, args []string) error {
			return compileCmd(cfg, cc, args)
		})
}

func DisasmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DisasmConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Disasm, "disasm").
		WithAliases("da").
		WithSynopsis("disasm <prog.lmb>").
		WithDescription("list the instructions of a compiled program").
		WithRun(func(cc *cli.Context, args []string) error {
			return disasm(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("du").
		WithSynopsis("dump <prog.lmb>").
		WithDescription("decode a compiled program and print the tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-b] [files]").
		WithDescription("compile and decode declarations and print the trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func RolesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RolesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Roles, "roles").
		WithAliases("r").
		WithSynopsis("roles <decl.yaml>").
		WithDescription("print the role ids and names of a declaration").
		WithRun(func(cc *cli.Context, args []string) error {
			return roles(cfg, cc, args)
		})
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("run").
		WithOpts(opts...).
		WithSynopsis("run -s <script.yaml> <decl.yaml>").
		WithDescription(runDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}

const runDescription = `run applies a mutation script to a declared list.

The script is a yaml sequence of steps:

  - append: {name: Banana, cost: 1.95}
  - insert: {index: 0, item: {name: Cherry}}
  - setProperty: {index: 0, name: cost, value: ".[cost * 2]"}
  - move: {from: 0, to: 2, count: 1}
  - set: {index: 1, item: {ripe: true}}
  - remove: 0
  - get: 0
  - clear: ~

Each step's notifications are printed, then the final list.`

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Verify, "verify").
		WithAliases("ve").
		WithSynopsis("verify [files]").
		WithDescription("check that compiled declarations decode to what the mutation api builds").
		WithRun(func(cc *cli.Context, args []string) error {
			return verify(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch -p <patch.json> <decl.yaml>").
		WithDescription("apply a json patch to the items of a declared list").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Cmd = cmd
	return cmd
}
