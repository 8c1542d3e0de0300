package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bashhack/dailylog/internal/constants"
	"github.com/bashhack/dailylog/internal/entry"
	dailyErrors "github.com/bashhack/dailylog/internal/errors"
	"github.com/bashhack/dailylog/internal/git"
	"github.com/bashhack/dailylog/internal/logfile"
	"github.com/bashhack/dailylog/internal/logger"
	"github.com/bashhack/dailylog/internal/scaffold"
)

// GitClient is the subset of git.Client the workflow drives
type GitClient interface {
	CheckIdentity(ctx context.Context, dir string) (git.Identity, error)
	ResolveRepository(ctx context.Context, explicit, ambientDir, remote string) (git.RepositoryContext, error)
	CurrentBranch(ctx context.Context, dir string) (string, error)
	Stage(ctx context.Context, root, path string) error
	HasStagedChanges(ctx context.Context, root, path string) (bool, error)
	Commit(ctx context.Context, root, message string) (bool, error)
	Push(ctx context.Context, root, remote, branch string) error
}

// Options configures a DailyLogger
type Options struct {
	// RepoPath overrides repository discovery when set
	RepoPath string

	// AmbientDir is searched for a repository when RepoPath is empty.
	// Empty means the process working directory.
	AmbientDir string

	// LogFile is resolved against the repository root unless absolute
	LogFile string

	// Remote is resolved and pushed to; empty means origin
	Remote string

	// Init scaffolds README.md and .gitignore before logging
	Init bool

	// Multi appends Count Markdown sections, one commit each
	Multi bool
	Count int

	// Delay is the pause between consecutive multi-mode commits
	Delay time.Duration

	// Push pushes the branch after committing
	Push bool
}

// RunContext is threaded through every step of a run
type RunContext struct {
	Repo     git.RepositoryContext
	LogPath  string
	DailyKey string
	Now      time.Time
}

// Result describes what a run did
type Result struct {
	// Skipped is set when the daily key was already logged
	Skipped bool

	// Commits counts commits actually created
	Commits int

	// NoopCommits counts commit steps that found nothing to commit
	NoopCommits int

	Pushed   bool
	DailyKey string
	LogPath  string
}

// DailyLogger performs the daily logging cycle
type DailyLogger struct {
	opts   Options
	git    GitClient
	logger logger.Logger
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a DailyLogger using the wall clock
func New(opts Options, client GitClient, log logger.Logger) *DailyLogger {
	return NewWithClock(opts, client, log, time.Now)
}

// NewWithClock creates a DailyLogger reading time from now
func NewWithClock(opts Options, client GitClient, log logger.Logger, now func() time.Time) *DailyLogger {
	if opts.LogFile == "" {
		opts.LogFile = constants.DefaultLogFile
	}
	if opts.Remote == "" {
		opts.Remote = git.DefaultRemote
	}
	if opts.Count < 1 {
		opts.Count = 1
	}
	return &DailyLogger{
		opts:   opts,
		git:    client,
		logger: log,
		now:    now,
		sleep:  sleepContext,
	}
}

// Run executes one logging cycle. The Result is meaningful even when an
// error is returned, e.g. Commits after a failed push.
func (d *DailyLogger) Run(ctx context.Context) (Result, error) {
	rc, err := d.prepare(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{DailyKey: rc.DailyKey, LogPath: rc.LogPath}

	logged, err := logfile.AlreadyLogged(rc.LogPath, rc.DailyKey)
	if err != nil {
		return res, err
	}
	if logged {
		d.logger.InfoToUser("Already logged today (%s)", rc.DailyKey)
		res.Skipped = true
		return res, nil
	}

	if d.opts.Multi {
		err = d.runSections(ctx, rc, &res)
	} else {
		err = d.runDaily(ctx, rc, &res)
	}
	if err != nil {
		return res, err
	}

	if !d.opts.Push {
		d.logger.Info("Push disabled, leaving %d commit(s) local", res.Commits)
		return res, nil
	}
	if err := d.push(ctx, rc); err != nil {
		return res, err
	}
	res.Pushed = true
	return res, nil
}

// prepare runs the preflight and resolves everything a run needs
func (d *DailyLogger) prepare(ctx context.Context) (RunContext, error) {
	if _, err := d.git.CheckIdentity(ctx, d.preflightDir()); err != nil {
		return RunContext{}, err
	}

	repo, err := d.git.ResolveRepository(ctx, d.opts.RepoPath, d.opts.AmbientDir, d.opts.Remote)
	if err != nil {
		return RunContext{}, err
	}
	d.logger.StatusMessage("Using repository: %s", repo.Root)

	now := d.now()
	if d.opts.Multi {
		now = now.UTC()
	}

	if d.opts.Init {
		created, err := scaffold.Init(repo.Root, now)
		if err != nil {
			return RunContext{}, err
		}
		for _, name := range created {
			d.logger.Success("Created %s", name)
		}
	}

	rc := RunContext{
		Repo:     repo,
		LogPath:  resolveLogPath(repo.Root, d.opts.LogFile),
		DailyKey: entry.DailyKey(now),
		Now:      now,
	}
	d.logger.Debug("run context resolved",
		"root", rc.Repo.Root,
		"branch", rc.Repo.Branch,
		"log_path", rc.LogPath,
		"daily_key", rc.DailyKey,
	)
	return rc, nil
}

func (d *DailyLogger) runDaily(ctx context.Context, rc RunContext, res *Result) error {
	e := entry.NewDaily(rc.Now)
	if err := logfile.Append(rc.LogPath, e.Text, ""); err != nil {
		return err
	}
	d.logger.InfoToUser("Generated entry for %s (%s)", rc.DailyKey, e.TaskID)

	return d.commit(ctx, rc, fmt.Sprintf(constants.DailyCommitFormat, rc.DailyKey), res)
}

func (d *DailyLogger) runSections(ctx context.Context, rc RunContext, res *Result) error {
	for i := 1; i <= d.opts.Count; i++ {
		now := rc.Now
		if i > 1 {
			if err := d.sleep(ctx, d.opts.Delay); err != nil {
				return err
			}
			now = d.now()
		}

		e := entry.NewSection(now, i)
		if err := logfile.Append(rc.LogPath, e.Text, constants.SectionHeader); err != nil {
			return err
		}
		d.logger.InfoToUser("Generated entry %d of %d", i, d.opts.Count)

		if err := d.commit(ctx, rc, fmt.Sprintf(constants.SectionCommitFormat, i, rc.DailyKey), res); err != nil {
			return err
		}
	}
	return nil
}

// commit stages the log file and commits it. An empty index is a no-op.
func (d *DailyLogger) commit(ctx context.Context, rc RunContext, message string, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := stagePath(rc.Repo.Root, rc.LogPath)
	if err := d.git.Stage(ctx, rc.Repo.Root, path); err != nil {
		return err
	}

	staged, err := d.git.HasStagedChanges(ctx, rc.Repo.Root, path)
	if err != nil {
		return err
	}
	if !staged {
		d.logger.WarningToUser("No changes to commit")
		res.NoopCommits++
		return nil
	}

	committed, err := d.git.Commit(ctx, rc.Repo.Root, message)
	if err != nil {
		return err
	}
	if !committed {
		d.logger.WarningToUser("No changes to commit")
		res.NoopCommits++
		return nil
	}

	res.Commits++
	d.logger.Success("Committed: %s", message)
	return nil
}

func (d *DailyLogger) push(ctx context.Context, rc RunContext) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	branch := rc.Repo.Branch
	if branch == "" {
		b, err := d.git.CurrentBranch(ctx, rc.Repo.Root)
		if err != nil {
			return dailyErrors.Wrap(dailyErrors.ErrPushFailure, "unable to determine current branch",
				dailyErrors.KeyRepoPath, rc.Repo.Root)
		}
		branch = b
	}

	if err := d.git.Push(ctx, rc.Repo.Root, rc.Repo.Remote, branch); err != nil {
		return err
	}
	d.logger.Success("Pushed %s to %s", branch, rc.Repo.Remote)
	return nil
}

// preflightDir is the explicit repository when it exists, else the ambient directory
func (d *DailyLogger) preflightDir() string {
	if d.opts.RepoPath != "" {
		if info, err := os.Stat(d.opts.RepoPath); err == nil && info.IsDir() {
			return d.opts.RepoPath
		}
	}
	return d.opts.AmbientDir
}

func resolveLogPath(root, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(root, name)
}

// stagePath is path relative to root, or path itself when it lies outside root
func stagePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// PrintSummary writes the outcome of a run for the user
func PrintSummary(log logger.Logger, res Result) {
	if res.Skipped {
		return
	}
	log.StatusMessage("")
	log.StatusMessage("---------------------------------------------")
	log.StatusMessage("📊 dailylog Summary")
	log.StatusMessage("---------------------------------------------")
	log.StatusMessage("📝 Log file: %s", res.LogPath)
	log.StatusMessage("📅 Daily key: %s", res.DailyKey)
	log.StatusMessage("✅ Commits made: %d", res.Commits)
	if res.NoopCommits > 0 {
		log.StatusMessage("➖ Nothing to commit: %d", res.NoopCommits)
	}
	if res.Pushed {
		log.StatusMessage("🚀 Pushed: yes")
	} else {
		log.StatusMessage("🚀 Pushed: no")
	}
	log.StatusMessage("---------------------------------------------")
}
