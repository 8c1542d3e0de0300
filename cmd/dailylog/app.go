package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bashhack/dailylog/internal/config"
	dailyErrors "github.com/bashhack/dailylog/internal/errors"
	"github.com/bashhack/dailylog/internal/git"
	"github.com/bashhack/dailylog/internal/logger"
	"github.com/bashhack/dailylog/internal/workflow"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// Runner performs one daily logging cycle
type Runner interface {
	Run(ctx context.Context) (workflow.Result, error)
}

// AppOptions contains app configuration and dependencies.
// This struct allows injection of both required and optional dependencies,
// enabling flexible configuration and easier testing.
type AppOptions struct {
	// Config holds the application configuration settings (required).
	// The application will panic if this field is nil.
	Config *config.Config

	// Optional components

	// Logger provides logging functionality (optional, a default will be created if nil).
	// Used for both internal logging and user-facing messages.
	Logger logger.Logger

	// Git runs git commands (optional, a client on the git binary is created if nil).
	Git workflow.GitClient

	// Runner performs the logging cycle (optional, a workflow.DailyLogger is created if nil).
	Runner Runner

	// I/O dependencies

	// Stdout is the writer for standard output (optional, defaults to os.Stdout).
	Stdout io.Writer

	// Stderr is the writer for error output (optional, defaults to os.Stderr).
	Stderr io.Writer

	// System dependencies

	// Exit is the function to terminate the application (optional, defaults to os.Exit).
	Exit func(code int)

	// Getwd returns the directory searched for a repository when no
	// repository path is configured (optional, defaults to os.Getwd).
	Getwd func() (string, error)
}

// App is the main dailylog application.
// It orchestrates all components and manages the application lifecycle,
// handling initialization, command execution, and cleanup.
type App struct {
	// Config holds the application configuration and settings.
	Config *config.Config

	// Logger provides logging functionality for both internal and user-facing messages.
	Logger logger.Logger

	// Git runs the git commands of a cycle.
	Git workflow.GitClient

	// Runner performs the daily logging cycle.
	Runner Runner

	// RunID identifies this invocation in every structured record.
	RunID string

	// Result is the outcome of the last Run.
	Result workflow.Result

	Stdout io.Writer
	Stderr io.Writer

	exit  func(code int)
	getwd func() (string, error)
}

// NewDefaultApp creates an App with standard dependencies.
// This is the primary application constructor for normal usage.
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	cfg := config.New()
	cfg.VersionInfo = versionInfo

	return NewApp(AppOptions{
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exit:   os.Exit,
		Getwd:  os.Getwd,
	})
}

// NewApp creates an App with custom dependencies specified in opts.
// It panics if opts.Config is nil. Missing optional dependencies are
// created during initialization.
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config: opts.Config,
		Logger: opts.Logger,
		Git:    opts.Git,
		Runner: opts.Runner,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		exit:   opts.Exit,
		getwd:  opts.Getwd,
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.getwd == nil {
		app.getwd = os.Getwd
	}

	return app
}

// Command builds the command-line interface bound to the app's Config
func (a *App) Command() *cli.Command {
	return &cli.Command{
		Name:      "dailylog",
		Usage:     "Append a dated entry to a learning log and commit it",
		UsageText: "dailylog [options]",
		Description: "dailylog appends one timestamped entry per day to a log file in a git\n" +
			"repository, then stages, commits and pushes it. Running it again on the\n" +
			"same day does nothing.",
		Version:   a.Config.VersionInfo.String(),
		Flags:     a.Config.Flags(),
		Writer:    a.Stdout,
		ErrWriter: a.Stderr,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := a.Config.LoadFile(c.IsSet); err != nil {
				return err
			}
			return a.Run(ctx)
		},
	}
}

// Execute parses args, runs the app and returns the process exit code.
// Run failures have already been reported by the logger; anything earlier
// (flags, config file) is printed here.
func (a *App) Execute(ctx context.Context, args []string) int {
	err := a.Command().Run(ctx, args)

	if err == nil {
		return 0
	}

	if a.Logger == nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error: %v\n", err)
	}
	return 1
}

// Initialize sets up components not provided during construction
func (a *App) Initialize() error {
	if err := a.Config.Finalize(); err != nil {
		if dailyErrors.Is(err, dailyErrors.ErrInvalidConfiguration) {
			return err
		}
		return dailyErrors.Wrap(dailyErrors.ErrInvalidConfiguration, err.Error())
	}

	if a.RunID == "" {
		a.RunID = uuid.NewString()
	}

	if a.Logger == nil {
		a.Logger = logger.New(logger.Options{
			Debug:   a.Config.Debug,
			LogFile: a.Config.DebugLog,
			Quiet:   a.Config.Quiet,
			RunID:   a.RunID,
			Stdout:  a.Stdout,
			Stderr:  a.Stderr,
		})
	}

	if a.Git == nil {
		a.Git = git.NewClient(a.Logger)
	}

	if a.Runner == nil {
		ambient, err := a.getwd()
		if err != nil {
			a.Logger.Warning("Unable to determine working directory: %v", err)
		}

		a.Runner = workflow.New(workflow.Options{
			RepoPath:   a.Config.RepoPath,
			AmbientDir: ambient,
			LogFile:    a.Config.LogFile,
			Remote:     a.Config.Remote,
			Init:       a.Config.Init,
			Multi:      a.Config.Multi,
			Count:      a.Config.Count,
			Delay:      a.Config.Delay,
			Push:       !a.Config.NoPush,
		}, a.Git, a.Logger)
	}

	return nil
}

// Run executes one logging cycle with the given context
func (a *App) Run(ctx context.Context) error {
	// Ensure the app is fully initialised before doing any work.
	if err := a.Initialize(); err != nil {
		return err
	}

	// Ensure we always flush the debug log, even on early error paths
	defer func() {
		if err := a.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Error during cleanup: %v\n", err)
		}
	}()

	a.Logger.Debug("starting dailylog",
		"version", a.Config.VersionInfo.Version,
		"repo_path", a.Config.RepoPath,
		"log_file", a.Config.LogFile,
		"multi", a.Config.Multi,
		"config_file", a.Config.ConfigFile,
	)

	res, err := a.Runner.Run(ctx)
	a.Result = res
	if err != nil {
		a.report(err)
		if res.Commits > 0 {
			workflow.PrintSummary(a.Logger, res)
		}
		return err
	}

	workflow.PrintSummary(a.Logger, res)
	return nil
}

// report shows err to the user with a remediation hint where one exists
func (a *App) report(err error) {
	var preflight *git.PreflightError
	if dailyErrors.As(err, &preflight) {
		a.Logger.Error("Error: %s", preflight.Reason)
		if preflight.Hint != "" {
			a.Logger.StatusMessage("💡 %s", preflight.Hint)
		}
		return
	}

	a.Logger.Error("Error: %v", err)

	switch {
	case dailyErrors.Is(err, dailyErrors.ErrRepositoryNotFound):
		a.Logger.StatusMessage("💡 Run inside a git repository with a remote, or pass --%s", config.FlagRepoPath)
	case dailyErrors.Is(err, dailyErrors.ErrPushFailure):
		a.Logger.WarningToUser("The local commit was kept; push it manually once the remote is reachable")
	}

	a.Logger.Debug("run failed", "error", err, "context", dailyErrors.Values(err))
}

// Close releases resources held by the App
func (a *App) Close() error {
	if a.Logger == nil {
		return nil
	}
	if err := a.Logger.Close(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to close logger: %v\n", err)
		return err
	}
	return nil
}
