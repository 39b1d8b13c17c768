package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/vennquiz/internal/config"
	"github.com/abhisek/vennquiz/internal/display"
)

var rootCmd = &cobra.Command{
	Use:   "vennquiz",
	Short: "Set-theory quiz with Venn diagrams",
	Long: `vennquiz runs a quiz on union, intersection, difference, complement, subset and
membership over which Brazilian states host which industries, with a Venn
diagram after each set operation.

Running vennquiz without a subcommand starts the quiz.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(factsCmd)
	rootCmd.AddCommand(quadraticCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs once flags are parsed.
type env struct {
	cfg  *config.Config
	mode display.Mode
	log  *zap.Logger
}

// setup loads the configuration, resolves the display mode and builds the
// logger. It runs once per invocation.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	mode = display.Resolve(mode, display.Interactive())
	log.Debug("configuration loaded",
		zap.String("display", string(mode)),
		zap.Bool("retry_until_correct", cfg.RetryUntilCorrect),
		zap.String("facts", cfg.Facts),
	)

	return &env{cfg: cfg, mode: mode, log: log}, nil
}

// newLogger builds a console logger on stderr so the transcript on stdout
// stays clean. Only warnings and errors are shown unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}
