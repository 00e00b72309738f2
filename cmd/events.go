package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/josephlewis42/acmshell/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the shell event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report [LOG]",
	Short: "Show a report of events.",
	Long:  `Summarize an event log, by default the app.log in the config directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		var fd io.ReadCloser
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			fd = f
		} else {
			config, err := loadConfig(log.New(cmd.ErrOrStderr(), "", 0))
			if err != nil {
				return err
			}

			f, err := config.ReadAppLog()
			if err != nil {
				return err
			}
			fd = f
		}
		defer fd.Close()

		report := logger.NewReport()
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
}
