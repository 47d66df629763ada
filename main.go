package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"

	"github.com/urfave/cli/v2"

	"github.com/piggynl/overlap/align"
	"github.com/piggynl/overlap/compare"
	"github.com/piggynl/overlap/config"
	"github.com/piggynl/overlap/util"
)

const Version = "v1.0.0"

var sharedFlags = map[string]cli.Flag{
	"cpuprof": &cli.StringFlag{
		Name:    "cpuprof",
		Aliases: []string{"P"},
		Usage:   "save CPU profile to `FILE`",
	},
	"memprof": &cli.StringFlag{
		Name:    "memprof",
		Aliases: []string{"M"},
		Usage:   "save memory profile to `FILE`",
	},
	"config": &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Value:       "overlap.json",
		DefaultText: "built-in defaults",
		Usage:       "read configuration from `CONFIG`",
	},
	"encoding": &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Usage:   "decode documents as `NAME` instead of the configured encoding",
	},
	"format": &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "write the ratio as `FORMAT` (plain, percent or json)",
	},
}

func overwrite(f cli.Flag, fields map[string]interface{}) cli.Flag {
	flag := reflect.ValueOf(f).Elem()
	newFlag := reflect.New(flag.Type()).Elem()
	newFlag.Set(flag)
	for k, v := range fields {
		newFlag.FieldByName(k).Set(reflect.ValueOf(v))
	}
	return newFlag.Addr().Interface().(cli.Flag)
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "overlap",
		Usage:                  "Measure how much of an original document is reproduced in a candidate",
		UsageText:              "overlap [global options] <original-file> <candidate-file> <output-file>",
		Version:                Version,
		HideHelp:               true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			sharedFlags["cpuprof"],
			sharedFlags["memprof"],
			sharedFlags["config"],
			sharedFlags["encoding"],
			sharedFlags["format"],
		},
		Before: func(ctx *cli.Context) error {
			if err := config.Load(ctx); err != nil {
				return cli.Exit(err, 1)
			}
			return util.StartProfile(ctx)
		},
		Action: compare.Compare,
		After:  util.StopProfile,
		// main decides how to exit.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:  "new",
				Usage: "generate the default configuration file",
				Flags: []cli.Flag{
					overwrite(sharedFlags["config"], map[string]interface{}{
						"DefaultText": "",
						"Usage":       "save default configuration to `CONFIG`",
					}),
				},
				Before: config.Reset,
				Action: config.Save,
			},
			{
				Name:      "diff",
				Usage:     "show which parts of the original appear in the candidate",
				UsageText: "overlap diff [options] <original-file> <candidate-file> [output-file]",
				Flags: []cli.Flag{
					sharedFlags["config"],
					sharedFlags["encoding"],
				},
				Before: config.Load,
				Action: align.Diff,
			},
		},
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("overlap: ")
	if err := newApp().Run(os.Args); err != nil {
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			if msg := ec.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(ec.ExitCode())
		}
		log.Fatal(err)
	}
}
