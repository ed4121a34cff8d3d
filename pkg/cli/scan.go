package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harrisonrobin/orgwatch/pkg/logging"
	"github.com/harrisonrobin/orgwatch/pkg/scan"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [files...]",
	Short: "Scan org files and list the admitted task records",
	Long: "Scan walks the configured org files, applies the admission rules and\n" +
		"prints the task records that would feed a check, with their normalized\n" +
		"timestamps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := scanFiles(args)
		if err != nil {
			return err
		}

		sched := scan.NewScheduler(scan.NewStore(), logging.Component("scan"))
		<-sched.Scan(files, cfg.ScanOptions())
		tasks := sched.Store().Tasks()

		if len(tasks) == 0 {
			logging.Logger.Info().Msg("no entries passed the filters")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSCHEDULED\tDEADLINE\tSOURCE")
		for i := range tasks {
			t := &tasks[i]
			fmt.Fprintf(w, "%s\t%s\t%s\t%s:%d\n",
				t.Name, orDash(t.Scheduled), orDash(t.Deadline), t.Locator.File, t.Locator.Line)
		}
		return w.Flush()
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
