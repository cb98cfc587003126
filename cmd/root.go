package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/josephlewis42/tinysh/commands"
	"github.com/josephlewis42/tinysh/core/config"
	"github.com/josephlewis42/tinysh/core/logger"
	"github.com/josephlewis42/tinysh/core/vos"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string

	// exitStatus is the status the shell asked to exit with.
	exitStatus int
)

func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tinysh",
	Short: "A tiny interactive shell",
	Long: `An interactive shell that runs builtins and programs found on PATH.

Lines are split on whitespace only; there are no pipes, redirections,
variables or quoting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		appLogger := log.New(cmd.ErrOrStderr(), "[tinysh] ", 0)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		stdin, stdout := cmd.InOrStdin(), cmd.OutOrStdout()
		files := vos.NewVIOAdapter(stdin, stdout, cmd.ErrOrStderr())

		session := commands.NewContext(vos.NewOsFs(), vos.NewMapEnvFromEnvList(os.Environ()), wd, stdout)
		session.Log = appLogger

		if cfg.EventLog != "" {
			logFd, err := cfg.OpenEventLog()
			if err != nil {
				appLogger.Printf("Couldn't open event log, events won't be recorded: %v\n", err)
			} else {
				defer logFd.Close()
				session.Events = logger.NewJsonLinesLogRecorder(logFd).NewSession()
			}
		}

		if cmd.Flags().Changed("command") {
			sh := commands.NewShell(session, nil, vos.ExecRunner{}, files)
			outcome := sh.RunLine(cmd.Context(), commandLine)
			if err := session.Stdout.Err(); err != nil {
				return err
			}
			exitStatus = outcome.Status
			return nil
		}

		var lines commands.LineReader
		if isTerminal(stdin) {
			lines, err = commands.NewTerminalReader(files, commands.TerminalOptions{
				HistoryFile:  cfg.HistoryPath(),
				HistoryLimit: cfg.HistoryLimit,
			})
			if err != nil {
				return err
			}
		} else {
			lines = commands.NewPlainReader(stdin, session.Stdout)
		}
		defer lines.Close()

		sh := commands.NewShell(session, lines, vos.ExecRunner{}, files)
		sh.Prompt = Prompt(cfg, isTerminal(stdout))

		exitStatus, err = sh.Run(cmd.Context())
		return err
	},
}

// isTerminal reports whether the stream is connected to a terminal.
func isTerminal(stream interface{}) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// It returns the status the process should exit with.
func Execute() int {
	exitStatus = 0
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return int(uint8(exitStatus))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory or config.yaml path, built-in defaults if empty")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single line and exit with its status")
}
