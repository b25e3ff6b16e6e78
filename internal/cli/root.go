// Package cli is the command-line front end: interactive play, solver runs,
// one-off scoring, candidate filtering, puzzle sharing and word-list tools.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/words"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfgPath  string
	logLevel string
	cfg      *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Word-guessing game with a shared scoring core",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", os.Getenv("WORDLE_CONFIG"), "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (trace..disabled)")

	root.AddCommand(
		newPlayCmd(a),
		newScoreCmd(a),
		newCandidatesCmd(a),
		newShareCmd(a),
		newWordsCmd(a),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return nil
}

func (a *app) dictionary(ctx context.Context) (*words.Dictionary, error) {
	return words.Load(ctx, words.Source{
		Length:      a.cfg.WordLength,
		AnswersFile: a.cfg.AnswersFile,
		AllowedFile: a.cfg.AllowedFile,
		DBPath:      a.cfg.WordsDB,
	})
}
