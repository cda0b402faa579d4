package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/subgraphminer/gspanmine/internal/ingest"
	"github.com/subgraphminer/gspanmine/internal/minelog"
	"github.com/subgraphminer/gspanmine/internal/miner"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
	"github.com/subgraphminer/gspanmine/internal/report"
)

// cliOptions collects the mining flags plus the --log-file / --verbose
// diagnostics knobs.
type cliOptions struct {
	input   string
	output  string
	support float64
	mark    string
	parents bool
	dfs     bool
	nodes   bool
	logFile string
	logDbg  bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{support: 1.0, mark: " "}

	cmd := &cobra.Command{
		Use:           "gspanmine",
		Short:         "Mine frequent connected subgraph patterns from a labeled graph database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "input graph database path (required)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file path prefix; empty means no output")
	flags.Float64VarP(&opts.support, "support", "s", 1.0, "minimum fractional support in (0, 1]")
	flags.StringVarP(&opts.mark, "mark", "m", " ", "field separator in input")
	flags.BoolVarP(&opts.parents, "parents", "p", false, "emit parent-pointer lines")
	flags.BoolVarP(&opts.dfs, "dfs", "d", false, "emit pattern bodies")
	flags.BoolVarP(&opts.nodes, "nodes", "n", false, "also emit the frequent-vertex file")
	flags.StringVar(&opts.logFile, "log-file", "", "rotate diagnostic logs to this file instead of stderr")
	flags.BoolVar(&opts.logDbg, "verbose", false, "emit debug-level diagnostics")

	cobra.CheckErr(cmd.MarkFlagRequired("input"))

	return cmd
}

func run(ctx context.Context, opts *cliOptions) error {
	level := logrus.InfoLevel
	if opts.logDbg {
		level = logrus.DebugLevel
	}
	log := minelog.New(minelog.Options{LogFile: opts.logFile, Level: level})

	raw, err := ingest.Load(opts.input, ingest.Options{Mark: opts.mark})
	if err != nil {
		return fmt.Errorf("gspanmine: %w", err)
	}
	log.WithField("graphs", len(raw)).Info("loaded input database")

	db, err := patterngraph.NewDatabase(raw, opts.support)
	if err != nil {
		return fmt.Errorf("gspanmine: %w", err)
	}
	log.WithFields(logrus.Fields{
		"nsupport":      db.NSupport,
		"vertex_labels": len(db.Frequency.VertexLabels),
		"edge_labels":   len(db.Frequency.EdgeLabels),
	}).Info("pruned database built")

	m := miner.NewMinerFromGraphs(db, miner.Config{}, log)
	coll, err := m.Mine(ctx)
	if err != nil {
		return fmt.Errorf("gspanmine: mining: %w", err)
	}
	log.WithField("patterns", len(coll.All())).Info("mining complete")

	recordOpts := report.Options{EmitParents: opts.parents, EmitDFS: opts.dfs}
	if err := report.Save(opts.output, coll, recordOpts); err != nil {
		return fmt.Errorf("gspanmine: %w", err)
	}

	if opts.nodes && opts.output != "" {
		if err := report.SaveFrequentNodes(opts.output+".nodes", db.Frequency); err != nil {
			return fmt.Errorf("gspanmine: %w", err)
		}
	}

	return nil
}
