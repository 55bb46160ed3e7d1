package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fliplog/fliplog/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It only needs the
// command names and the flags worth completing.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"lot": {Flags: map[string]complete.Predictor{
			"allocation":         predict.Set{"even", "retail"},
			"include-unsellable": predict.Nothing,
			"items":              predict.Nothing,
		}},
		"summary": {Flags: map[string]complete.Predictor{
			"period": predict.Set{"this_month", "this_quarter", "last_quarter", "this_year", "last_year", "q1", "q2", "q3", "q4", "all"},
			"from":   predict.Something,
			"to":     predict.Something,
		}},
		"history": {Flags: map[string]complete.Predictor{
			"by":     predict.Set{"day", "week", "month", "quarter", "year"},
			"period": predict.Set{"this_month", "this_quarter", "last_quarter", "this_year", "last_year", "q1", "q2", "q3", "q4", "all"},
			"from":   predict.Something,
			"to":     predict.Something,
		}},
		"mileage":     {},
		"stale":       {},
		"add-lot":     {},
		"add-item":    {},
		"sell":        {},
		"add-expense": {},
		"add-trip":    {},
		"import":      {Args: predict.Files("*.json")},
		"pull":        {},
		"topic":       {},
		"assist":      {},
		"help":        {},
		"flags":       {},
		"commands":    {},
	},
}

func main() {
	completion.Complete("flp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
