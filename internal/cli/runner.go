package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/roadmap/internal/config"
	"github.com/idilsaglam/roadmap/internal/gemini"
	"github.com/idilsaglam/roadmap/internal/logger"
	"github.com/idilsaglam/roadmap/internal/planner"
	"github.com/idilsaglam/roadmap/internal/tui"
	"github.com/idilsaglam/roadmap/internal/ui"
)

// usageError marks failures caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// deps are the pieces that talk to the outside world.
type deps struct {
	stdout, stderr io.Writer
	loadConfig     func(path string) (config.Config, error)
	newLogger      func(mode, path string) (*logger.Logger, error)
	newPlanner     func(ctx context.Context, cfg config.Config, log *logger.Logger) (tui.Planner, error)
	runTUI         func(ctx context.Context, p tui.Planner, log *logger.Logger, opt tui.Options) error
}

func defaultDeps() deps {
	return deps{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		loadConfig: config.Load,
		newLogger:  logger.New,
		newPlanner: newGeminiPlanner,
		runTUI:     tui.Run,
	}
}

func newGeminiPlanner(ctx context.Context, cfg config.Config, log *logger.Logger) (tui.Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := gemini.New(ctx, gemini.Options{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}, log)
	if err != nil {
		return nil, err
	}
	log.Info("gemini client ready", "model", client.Model())
	return planner.New(client, log), nil
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, args, defaultDeps())
}

func run(ctx context.Context, args []string, d deps) int {
	if args == nil {
		args = []string{}
	}
	root := newRootCmd(d)
	root.SetArgs(args)
	root.SetOut(d.stdout)
	root.SetErr(d.stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	ui.Fail(d.stderr, err.Error())
	return exitCode(err)
}

func exitCode(err error) int {
	var ue usageError
	switch {
	case errors.As(err, &ue):
		return 2
	case planner.KindOf(err) == planner.KindEmptyInput:
		return 2
	case strings.HasPrefix(err.Error(), "unknown command"),
		strings.HasPrefix(err.Error(), "unknown flag"),
		strings.HasPrefix(err.Error(), "unknown shorthand flag"):
		return 2
	}
	return 1
}

// session is what every command needs after flags are parsed.
type session struct {
	cfg config.Config
	log *logger.Logger
}

func (s *session) close() {
	if s.log != nil {
		s.log.Sync()
	}
}

type rootFlags struct {
	configPath string
	theme      string
}

func newRootCmd(d deps) *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "roadmap",
		Short: "AI-generated career and study roadmaps",
		Long: `roadmap - plan any career or exam goal

Type a goal ("UPSC CSE", "Full Stack Dev") and get a phased,
step-by-step roadmap, a prioritised syllabus and AI study strategies.

Environment:
  API_KEY / GEMINI_API_KEY   Gemini API key (required for tui and generate)
  ROADMAP_MODEL              model name override
  ROADMAP_CONFIG             config file path (default ~/.roadmap/config.yaml)
  ROADMAP_LOG_FILE           log file path`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, d, f)
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file path")
	root.PersistentFlags().StringVar(&f.theme, "theme", "", "colour theme: classic|neon|mono")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(
		newTUICmd(d, &f),
		newGenerateCmd(d, &f),
		newShowCmd(d, &f),
		newSchemaCmd(),
		newConfigCmd(d, &f),
	)
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// open loads config, applies the theme and starts the file logger.
func open(d deps, f rootFlags) (*session, error) {
	cfg, err := d.loadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	ui.SetTheme(cfg.Theme)

	log, err := d.newLogger(cfg.LogMode, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return &session{cfg: cfg, log: log}, nil
}

func newTUICmd(d deps, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive roadmap planner",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, d, *f)
		},
	}
}

func runInteractive(cmd *cobra.Command, d deps, f rootFlags) error {
	s, err := open(d, f)
	if err != nil {
		return err
	}
	defer s.close()

	ctx := cmd.Context()
	p, err := d.newPlanner(ctx, s.cfg, s.log)
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	s.log.Info("starting tui", "model", s.cfg.Model, "theme", s.cfg.Theme)
	return d.runTUI(ctx, p, s.log, tui.Options{SaveDir: wd})
}
