package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/skaur/folio/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion. It only acts when the shell asks
// for completions (COMP_LINE is set) and is a no-op otherwise.
func completion() {
	report := &complete.Command{
		Flags: map[string]complete.Predictor{
			"p": predict.Something,
			"d": predict.Something,
		},
	}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"new":    {},
			"list":   {},
			"delete": {},
			"buy":    report,
			"sell": {Flags: map[string]complete.Predictor{
				"p":   predict.Something,
				"d":   predict.Something,
				"i":   predict.Something,
				"all": predict.Nothing,
			}},
			"composition":  report,
			"value":        report,
			"distribution": report,
			"rebalance": {Flags: map[string]complete.Predictor{
				"p": predict.Something,
				"d": predict.Something,
				"w": predict.Something,
			}},
			"performance": {Flags: map[string]complete.Predictor{
				"p":    predict.Something,
				"days": predict.Set{"365", "180", "90", "30", "14", "5"},
			}},
			"chart": {Flags: map[string]complete.Predictor{
				"p":    predict.Something,
				"days": predict.Set{"365", "180", "90", "30", "14", "5"},
				"o":    predict.Files("*.png"),
			}},
			"price":     {},
			"gainloss":  {},
			"movingavg": {},
			"crossover": {},
			"topic":     {},
			"assist":    {},
		},
	}
	c.Complete("fcs")
}
