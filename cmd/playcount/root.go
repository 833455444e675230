package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/matthewbaird/playcount/internal/config"
	"github.com/matthewbaird/playcount/internal/repl/autocomplete"
	"github.com/matthewbaird/playcount/internal/repl/console"
	"github.com/matthewbaird/playcount/internal/repl/render"
	"github.com/matthewbaird/playcount/internal/repl/session"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// errScriptFailed is returned by run --strict when any line errored.
var errScriptFailed = errors.New("script had failing lines")

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "playcount",
		Short: "Catalog artists, albums and tracks and count listens",
		Long: `playcount keeps an in-memory catalog of artists, albums and tracks
and counts how often each track is listened to.

Run without arguments for an interactive prompt, or use
"playcount run <file>" to execute commands from a file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return report(err)
			}
			return report(interactive(cmd, cfg))
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")

	root.AddCommand(newRunCmd(&cfgFile), newVersionCmd())
	return root
}

func interactive(cmd *cobra.Command, cfg config.Config) error {
	sess := session.New()
	ac := autocomplete.New(sess.Store)

	editor := console.NewEditor(cfg.HistoryFile, cfg.HistoryLimit, ac.CompleteLine)
	defer editor.Close()

	banner := ""
	if cfg.Banner {
		banner = render.Banner(version)
	}
	con := console.New(cmd.OutOrStdout(), sess, render.New(cfg.Color), cfg.Prompt)
	return con.Run(editor, banner)
}

func newRunCmd(cfgFile *string) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute commands from a file, one per line",
		Long: `Execute commands from a file, one per line. Blank lines and lines
starting with '#' are skipped. Execution stops at quit.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return report(err)
			}
			return report(runScript(cmd, cfg, args[0], strict))
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 if any line fails")
	return cmd
}

func runScript(cmd *cobra.Command, cfg config.Config, path string, strict bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	con := console.New(cmd.OutOrStdout(), session.New(), render.New(cfg.Color), cfg.Prompt)
	failed, err := con.RunScript(f)
	if err != nil {
		return err
	}
	if strict && failed > 0 {
		return fmt.Errorf("%w: %d", errScriptFailed, failed)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "playcount", version)
		},
	}
}

// report logs err once so Execute's exit status is the only other signal.
func report(err error) error {
	if err != nil {
		log.Printf("playcount: %v", err)
	}
	return err
}
