package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/josephlewis42/acmshell/commands"
	"github.com/josephlewis42/acmshell/core/config"
	"github.com/josephlewis42/acmshell/core/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgPath   string
	colorMode string
)

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "acmshell")
}

func loadConfig(l *log.Logger) (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		l.Println("No config found, using defaults with the event log disabled: run init to create one.")
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "acmshell",
	Short: "ACM's very own shell",
	Long:  `A small interactive command interpreter that runs builtins and external programs.`,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		appLogger := log.New(cmd.ErrOrStderr(), "[acmshell] ", 0)
		cfg, err := loadConfig(appLogger)
		if err != nil {
			return err
		}
		if colorMode != "" {
			cfg.Color = colorMode
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		eventLog := logger.NewNopLogger().Sessionless()
		if cfg.EventLog {
			logFd, err := cfg.OpenAppLog()
			if err != nil {
				return err
			}
			defer logFd.Close()
			eventLog = logger.NewJsonLinesLogRecorder(logFd).NewSession()
		}

		isTerminal := term.IsTerminal(int(os.Stdin.Fd()))

		var reader commands.LineReader
		if isTerminal {
			reader, err = commands.NewReadlineReader(os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
		} else {
			reader = commands.NewBufferedReader(cmd.InOrStdin(), cmd.OutOrStdout())
		}
		defer reader.Close()

		sh := commands.NewShell(commands.Options{
			Config:     cfg,
			Reader:     reader,
			Launcher:   commands.NewProcessLauncher(os.Stdin, os.Stdout, os.Stderr, eventLog),
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
			Log:        eventLog,
			IsTerminal: isTerminal,
		})

		return sh.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigDir(), "config path")
	rootCmd.Flags().StringVar(&colorMode, "color", "", "override the configured color mode (always|auto|never)")
}
