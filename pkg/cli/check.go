package cli

import (
	"fmt"
	"time"

	"github.com/harrisonrobin/orgwatch/pkg/classify"
	"github.com/harrisonrobin/orgwatch/pkg/logging"
	"github.com/harrisonrobin/orgwatch/pkg/report"
	"github.com/harrisonrobin/orgwatch/pkg/scan"
	"github.com/spf13/cobra"
)

var checkStdout bool

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Scan, classify and write the task alert report",
	Long: "Check scans the configured org files, classifies every task against\n" +
		"the alert windows and rewrites the report surface. With no matching\n" +
		"task the surface is removed instead of left empty.",
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := scanFiles(args)
		if err != nil {
			return err
		}
		logger := logging.Component("check")

		sched := scan.NewScheduler(scan.NewStore(), logging.Component("scan"))
		<-sched.Scan(files, cfg.ScanOptions())
		tasks := sched.Store().Tasks()

		now := time.Now()
		assignments := classify.Classify(tasks, cfg.Windows, now)

		surface := report.NewFileSurface(cfg.ReportDir, cfg.ReportName)
		opts := report.Options{LinkMode: cfg.LinkMode, Now: now}

		published, err := report.Publish(surface, assignments, opts)
		if err != nil {
			return err
		}
		if !published {
			logger.Info().Int("tasks", len(tasks)).Msg("no tasks matched an alert window")
			return nil
		}

		logger.Info().
			Int("alerts", len(assignments)).
			Str("report", surface.Path).
			Msg("report written")

		if checkStdout {
			fmt.Print(report.Render(assignments, opts))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStdout, "stdout", false, "also print the rendered report to stdout")
	rootCmd.AddCommand(checkCmd)
}
