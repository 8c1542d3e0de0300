package workflow

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bashhack/dailylog/internal/constants"
	dailyErrors "github.com/bashhack/dailylog/internal/errors"
	"github.com/bashhack/dailylog/internal/git"
	"github.com/m-mizutani/gt"
)

var newYear = time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)

func newTestDailyLogger(t *testing.T, opts Options, fake *fakeGit, now func() time.Time) *DailyLogger {
	t.Helper()
	if fake.root == "" {
		fake.root = t.TempDir()
	}
	d := NewWithClock(opts, fake, quietLogger(), now)
	d.sleep = noSleep
	return d
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	gt.NoError(t, err)
	return string(content)
}

func TestRunDaily(t *testing.T) {
	fake := &fakeGit{branch: "main"}
	d := newTestDailyLogger(t, Options{Push: true}, fake, fixedClock(newYear))

	res, err := d.Run(context.Background())
	gt.NoError(t, err)

	gt.Bool(t, res.Skipped).False()
	gt.Value(t, res.Commits).Equal(1)
	gt.Bool(t, res.Pushed).True()
	gt.Value(t, res.DailyKey).Equal("2024-01-01")
	gt.Value(t, res.LogPath).Equal(filepath.Join(fake.root, constants.DefaultLogFile))

	content := readLog(t, res.LogPath)
	gt.Bool(t, strings.HasPrefix(content, "[2024-01-01 09:30:00] Daily automation: Updated learning log on Monday.")).True()
	gt.Bool(t, strings.HasSuffix(content, "\n")).True()

	gt.Value(t, fake.messages).Equal([]string{"docs: Update daily learning log for 2024-01-01"})
	gt.Value(t, fake.staged).Equal([]string{constants.DefaultLogFile})
	gt.Value(t, fake.calls[len(fake.calls)-1]).Equal("push origin main")
}

func TestRunTwiceSameDay(t *testing.T) {
	fake := &fakeGit{branch: "main"}
	d := newTestDailyLogger(t, Options{Push: true}, fake, fixedClock(newYear))

	_, err := d.Run(context.Background())
	gt.NoError(t, err)

	first := readLog(t, filepath.Join(fake.root, constants.DefaultLogFile))
	callsAfterFirst := len(fake.calls)

	res, err := d.Run(context.Background())
	gt.NoError(t, err)
	gt.Bool(t, res.Skipped).True()
	gt.Value(t, res.Commits).Equal(0)

	gt.Value(t, readLog(t, filepath.Join(fake.root, constants.DefaultLogFile))).Equal(first)
	gt.Value(t, fake.count("commit")).Equal(1)
	gt.Value(t, fake.count("stage")).Equal(1)
	gt.Value(t, fake.count("push")).Equal(1)
	// Second run only does preflight and resolution
	gt.Value(t, len(fake.calls)-callsAfterFirst).Equal(2)
}

func TestRunSkipsWhenDateAppearsAnywhere(t *testing.T) {
	fake := &fakeGit{}
	logPath := filepath.Join(t.TempDir(), "notes.md")
	gt.NoError(t, os.WriteFile(logPath, []byte("meeting moved from 2024-01-01\n"), 0o644))

	d := newTestDailyLogger(t, Options{LogFile: logPath}, fake, fixedClock(newYear))
	res, err := d.Run(context.Background())
	gt.NoError(t, err)
	gt.Bool(t, res.Skipped).True()
	gt.Value(t, fake.count("stage")).Equal(0)
}

func TestRunFailures(t *testing.T) {
	tests := map[string]struct {
		fake        *fakeGit
		sentinel    error
		wantLogFile bool
		wantCommits int
	}{
		"identity missing": {
			fake: &fakeGit{identityErr: &git.PreflightError{
				Reason: "git username not configured",
				Hint:   git.HintUserName,
				Err:    dailyErrors.ErrConfigurationMissing,
			}},
			sentinel: dailyErrors.ErrConfigurationMissing,
		},
		"repository missing": {
			fake:     &fakeGit{resolveErr: dailyErrors.Wrap(dailyErrors.ErrRepositoryNotFound, "not in a git repository")},
			sentinel: dailyErrors.ErrRepositoryNotFound,
		},
		"stage fails": {
			fake:        &fakeGit{stageErr: dailyErrors.Wrap(dailyErrors.ErrStageFailure, "index.lock exists")},
			sentinel:    dailyErrors.ErrStageFailure,
			wantLogFile: true,
		},
		"commit fails": {
			fake:        &fakeGit{commitErr: dailyErrors.Wrap(dailyErrors.ErrCommitFailure, "hook rejected")},
			sentinel:    dailyErrors.ErrCommitFailure,
			wantLogFile: true,
		},
		"push fails keeps commit": {
			fake:        &fakeGit{branch: "main", pushErr: errRejected},
			sentinel:    dailyErrors.ErrPushFailure,
			wantLogFile: true,
			wantCommits: 1,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d := newTestDailyLogger(t, Options{Push: true}, test.fake, fixedClock(newYear))

			res, err := d.Run(context.Background())
			gt.Error(t, err).Is(test.sentinel)
			gt.Value(t, res.Commits).Equal(test.wantCommits)
			gt.Bool(t, res.Pushed).False()

			_, statErr := os.Stat(filepath.Join(test.fake.root, constants.DefaultLogFile))
			gt.Value(t, statErr == nil).Equal(test.wantLogFile)
		})
	}
}

func TestRunIdentityMissingTouchesNothing(t *testing.T) {
	fake := &fakeGit{identityErr: dailyErrors.ErrConfigurationMissing}
	d := newTestDailyLogger(t, Options{Init: true}, fake, fixedClock(newYear))

	_, err := d.Run(context.Background())
	gt.Error(t, err).Is(dailyErrors.ErrConfigurationMissing)

	entries, err := os.ReadDir(fake.root)
	gt.NoError(t, err)
	gt.A(t, entries).Length(0)
	gt.Value(t, fake.calls).Equal([]string{"identity "})
}

func TestRunNothingToCommit(t *testing.T) {
	tests := map[string]*fakeGit{
		"clean index":       {nothingStaged: true},
		"git reports clean": {nothingToCommit: true},
	}

	for name, fake := range tests {
		t.Run(name, func(t *testing.T) {
			d := newTestDailyLogger(t, Options{}, fake, fixedClock(newYear))

			res, err := d.Run(context.Background())
			gt.NoError(t, err)
			gt.Value(t, res.Commits).Equal(0)
			gt.Value(t, res.NoopCommits).Equal(1)
		})
	}
}

func TestRunNoPush(t *testing.T) {
	fake := &fakeGit{branch: "main"}
	d := newTestDailyLogger(t, Options{Push: false}, fake, fixedClock(newYear))

	res, err := d.Run(context.Background())
	gt.NoError(t, err)
	gt.Value(t, res.Commits).Equal(1)
	gt.Bool(t, res.Pushed).False()
	gt.Value(t, fake.count("push")).Equal(0)
}

func TestRunPushLooksUpBranch(t *testing.T) {
	fake := &fakeGit{}
	d := newTestDailyLogger(t, Options{Push: true, Remote: "upstream"}, fake, fixedClock(newYear))

	_, err := d.Run(context.Background())
	gt.NoError(t, err)
	gt.Value(t, fake.count("branch")).Equal(1)
	gt.Value(t, fake.calls[len(fake.calls)-1]).Equal("push upstream main")
}

func TestRunMulti(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	fake := &fakeGit{branch: "main"}

	var slept []time.Duration
	d := newTestDailyLogger(t, Options{Multi: true, Count: 7, Delay: 2 * time.Second, Push: true}, fake,
		steppingClock(start, 2*time.Second))
	d.sleep = func(_ context.Context, delay time.Duration) error {
		slept = append(slept, delay)
		return nil
	}

	res, err := d.Run(context.Background())
	gt.NoError(t, err)
	gt.Value(t, res.Commits).Equal(7)
	gt.Value(t, res.DailyKey).Equal("2024-01-01")
	gt.A(t, slept).Length(6)
	gt.Value(t, fake.count("push")).Equal(1)

	content := readLog(t, res.LogPath)
	gt.Bool(t, strings.HasPrefix(content, constants.SectionHeader)).True()
	gt.Bool(t, strings.Contains(content, "## 2024-01-01 – Entry 1\n- Time (UTC): 23:59:00\n")).True()
	gt.Bool(t, strings.Contains(content, "– Entry 7\n")).True()

	gt.A(t, fake.messages).Length(7)
	gt.Value(t, fake.messages[0]).Equal("docs: daily log entry 1 (2024-01-01)")
	gt.Value(t, fake.messages[6]).Equal("docs: daily log entry 7 (2024-01-01)")
}

func TestRunMultiUsesUTCKey(t *testing.T) {
	// 2024-01-01 20:00 in UTC-5 is already 2024-01-02 in UTC
	zone := time.FixedZone("EST", -5*60*60)
	now := time.Date(2024, 1, 1, 20, 0, 0, 0, zone)

	fake := &fakeGit{}
	d := newTestDailyLogger(t, Options{Multi: true, Count: 1}, fake, fixedClock(now))

	res, err := d.Run(context.Background())
	gt.NoError(t, err)
	gt.Value(t, res.DailyKey).Equal("2024-01-02")
	gt.Bool(t, strings.Contains(readLog(t, res.LogPath), "## 2024-01-02 – Entry 1")).True()
}

func TestRunMultiCancelled(t *testing.T) {
	fake := &fakeGit{}
	d := newTestDailyLogger(t, Options{Multi: true, Count: 3, Delay: time.Hour}, fake, fixedClock(newYear))
	d.sleep = sleepContext

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	res, err := d.Run(ctx)
	gt.Error(t, err).Is(context.Canceled)
	gt.Value(t, res.Commits).Equal(1)
}

func TestRunInit(t *testing.T) {
	fake := &fakeGit{}
	d := newTestDailyLogger(t, Options{Init: true}, fake, fixedClock(newYear))

	_, err := d.Run(context.Background())
	gt.NoError(t, err)

	for _, name := range []string{"README.md", ".gitignore"} {
		_, err := os.Stat(filepath.Join(fake.root, name))
		gt.NoError(t, err)
	}
	// Only the log file is staged
	gt.Value(t, fake.staged).Equal([]string{constants.DefaultLogFile})
}

func TestPreflightDir(t *testing.T) {
	repo := t.TempDir()

	tests := map[string]struct {
		opts Options
		want string
	}{
		"explicit directory": {
			opts: Options{RepoPath: repo, AmbientDir: "/ambient"},
			want: repo,
		},
		"explicit path missing": {
			opts: Options{RepoPath: filepath.Join(repo, "missing"), AmbientDir: "/ambient"},
			want: "/ambient",
		},
		"no explicit path": {
			opts: Options{AmbientDir: "/ambient"},
			want: "/ambient",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d := New(test.opts, &fakeGit{}, quietLogger())
			gt.Value(t, d.preflightDir()).Equal(test.want)
		})
	}
}

func TestStagePath(t *testing.T) {
	gt.Value(t, stagePath("/repo", "/repo/learning_log.md")).Equal("learning_log.md")
	gt.Value(t, stagePath("/repo", "/repo/logs/daily.md")).Equal(filepath.Join("logs", "daily.md"))
	gt.Value(t, stagePath("/repo", "/elsewhere/log.md")).Equal("/elsewhere/log.md")
}

func TestResolveLogPath(t *testing.T) {
	gt.Value(t, resolveLogPath("/repo", "learning_log.md")).Equal("/repo/learning_log.md")
	gt.Value(t, resolveLogPath("/repo", "/var/log/../log/daily.md")).Equal("/var/log/daily.md")
}
