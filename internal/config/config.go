package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bashhack/dailylog/internal/constants"
	dailyErrors "github.com/bashhack/dailylog/internal/errors"
	"github.com/bashhack/dailylog/internal/git"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

const (
	// DefaultCount is the number of entries written in multi-entry mode.
	DefaultCount = 7

	// DefaultDelay is the pause between consecutive multi-entry commits.
	// It only spaces out commit timestamps.
	DefaultDelay = 2 * time.Second

	// EnvPrefix prefixes every environment variable dailylog reads
	EnvPrefix = "DAILYLOG_"
)

// Flag names
const (
	FlagRepoPath = "repo-path"
	FlagLogFile  = "log-file"
	FlagInit     = "init"
	FlagMulti    = "multi"
	FlagCount    = "count"
	FlagDelay    = "delay"
	FlagNoPush   = "no-push"
	FlagRemote   = "remote"
	FlagConfig   = "config"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"
	FlagDebugLog = "debug-log"
)

// Config holds all dailylog settings.
// Values come from defaults, an optional TOML file, environment variables
// and command-line flags, in increasing order of precedence.
type Config struct {
	// Repository configuration

	// RepoPath is the repository to log in.
	// If empty, the repository containing the working directory is used.
	RepoPath string

	// LogFile is the log file name, resolved against the repository root
	// unless absolute.
	LogFile string

	// Remote is the remote resolved and pushed to.
	Remote string

	// Run modes

	// Init scaffolds README.md and .gitignore before logging.
	Init bool

	// Multi appends Count Markdown sections with one commit each.
	Multi bool

	// Count is the number of entries in multi mode.
	Count int

	// Delay is the pause between multi-mode commits.
	Delay time.Duration

	// NoPush skips the push step, e.g. when a CI job pushes itself.
	NoPush bool

	// Output options

	Quiet bool

	// Debug enables the structured debug log.
	Debug bool

	// DebugLog is where debug records go. Empty means stderr.
	DebugLog string

	// ConfigFile is the TOML file read by LoadFile.
	ConfigFile string

	// VersionInfo contains version, commit, and build date information.
	// This is typically injected at build time.
	VersionInfo VersionInfo
}

// VersionInfo contains build-time version metadata.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// String renders the version line shown by --version
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", v.Version, v.Commit, v.Date)
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		LogFile: constants.DefaultLogFile,
		Remote:  git.DefaultRemote,
		Count:   DefaultCount,
		Delay:   DefaultDelay,

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

func envVars(name string) cli.ValueSourceChain {
	return cli.EnvVars(EnvPrefix + name)
}

// Flags returns the command-line flags bound to c
func (c *Config) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        FlagRepoPath,
			Usage:       "Path to repository (default: repository of the current directory)",
			Category:    "Repository",
			Destination: &c.RepoPath,
			Sources:     envVars("REPO_PATH"),
		},
		&cli.StringFlag{
			Name:        FlagLogFile,
			Usage:       "Log file name, relative to the repository root",
			Category:    "Repository",
			Value:       c.LogFile,
			Destination: &c.LogFile,
			Sources:     envVars("LOG_FILE"),
		},
		&cli.StringFlag{
			Name:        FlagRemote,
			Usage:       "Remote to resolve and push to",
			Category:    "Repository",
			Value:       c.Remote,
			Destination: &c.Remote,
			Sources:     envVars("REMOTE"),
		},
		&cli.BoolFlag{
			Name:        FlagInit,
			Usage:       "Create README.md and .gitignore when missing",
			Category:    "Mode",
			Destination: &c.Init,
			Sources:     envVars("INIT"),
		},
		&cli.BoolFlag{
			Name:        FlagMulti,
			Usage:       "Write several Markdown entries, one commit each",
			Category:    "Mode",
			Destination: &c.Multi,
			Sources:     envVars("MULTI"),
		},
		&cli.IntFlag{
			Name:        FlagCount,
			Usage:       "Number of entries in multi mode",
			Category:    "Mode",
			Value:       c.Count,
			Destination: &c.Count,
			Sources:     envVars("COUNT"),
		},
		&cli.DurationFlag{
			Name:        FlagDelay,
			Usage:       "Pause between multi mode commits",
			Category:    "Mode",
			Value:       c.Delay,
			Destination: &c.Delay,
			Sources:     envVars("DELAY"),
		},
		&cli.BoolFlag{
			Name:        FlagNoPush,
			Usage:       "Commit locally without pushing",
			Category:    "Mode",
			Destination: &c.NoPush,
			Sources:     envVars("NO_PUSH"),
		},
		&cli.StringFlag{
			Name:        FlagConfig,
			Usage:       "TOML config file (default: " + constants.DefaultConfigFile + " in the repository, if present)",
			Category:    "Configuration",
			Destination: &c.ConfigFile,
			Sources:     envVars("CONFIG"),
		},
		&cli.BoolFlag{
			Name:        FlagQuiet,
			Aliases:     []string{"q"},
			Usage:       "Hide informational messages",
			Category:    "Output",
			Destination: &c.Quiet,
			Sources:     envVars("QUIET"),
		},
		&cli.BoolFlag{
			Name:        FlagDebug,
			Usage:       "Enable debug logging",
			Category:    "Output",
			Destination: &c.Debug,
			Sources:     envVars("DEBUG"),
		},
		&cli.StringFlag{
			Name:        FlagDebugLog,
			Usage:       "Write debug logs to this file instead of stderr",
			Category:    "Output",
			Destination: &c.DebugLog,
			Sources:     envVars("DEBUG_LOG"),
		},
	}
}

// fileConfig mirrors the keys accepted in the TOML file.
// Pointers distinguish an absent key from a zero value.
type fileConfig struct {
	LogFile  *string `toml:"log_file"`
	Remote   *string `toml:"remote"`
	Multi    *bool   `toml:"multi"`
	Count    *int    `toml:"count"`
	Delay    *string `toml:"delay"`
	NoPush   *bool   `toml:"no_push"`
	Debug    *bool   `toml:"debug"`
	DebugLog *string `toml:"debug_log"`
}

// LoadFile reads the TOML config file and applies every key whose flag
// was not set on the command line or through the environment.
//
// When no file was named, DefaultConfigFile is looked up in RepoPath (or
// the working directory) and silently skipped when absent.
func (c *Config) LoadFile(isSet func(name string) bool) error {
	path := c.ConfigFile
	explicit := path != ""
	if !explicit {
		path = filepath.Join(c.RepoPath, constants.DefaultConfigFile)
	}

	// #nosec G304 - path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return dailyErrors.NewConfigError(FlagConfig, path,
			dailyErrors.Wrap(dailyErrors.ErrInvalidConfiguration, "failed to read config file: "+err.Error(),
				dailyErrors.KeyPath, path))
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return dailyErrors.NewConfigError(FlagConfig, path,
			dailyErrors.Wrap(dailyErrors.ErrInvalidConfiguration, "failed to parse TOML config: "+err.Error(),
				dailyErrors.KeyPath, path))
	}
	if !explicit {
		c.ConfigFile = path
	}

	setString(&c.LogFile, fc.LogFile, isSet(FlagLogFile))
	setString(&c.Remote, fc.Remote, isSet(FlagRemote))
	setString(&c.DebugLog, fc.DebugLog, isSet(FlagDebugLog))
	setBool(&c.Multi, fc.Multi, isSet(FlagMulti))
	setBool(&c.NoPush, fc.NoPush, isSet(FlagNoPush))
	setBool(&c.Debug, fc.Debug, isSet(FlagDebug))
	if fc.Count != nil && !isSet(FlagCount) {
		c.Count = *fc.Count
	}

	if fc.Delay != nil && !isSet(FlagDelay) {
		d, err := time.ParseDuration(*fc.Delay)
		if err != nil {
			return dailyErrors.NewConfigError("delay", *fc.Delay,
				dailyErrors.Wrap(dailyErrors.ErrInvalidConfiguration, err.Error(),
					dailyErrors.KeyPath, path, dailyErrors.KeyConfigKey, "delay"))
		}
		c.Delay = d
	}

	return nil
}

func setString(dst, src *string, overridden bool) {
	if src != nil && !overridden {
		*dst = *src
	}
}

func setBool(dst, src *bool, overridden bool) {
	if src != nil && !overridden {
		*dst = *src
	}
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.Count < 1 {
		return dailyErrors.NewConfigError(FlagCount, c.Count,
			dailyErrors.Wrapf(dailyErrors.ErrInvalidConfiguration, "invalid count: %d (must be at least 1)", c.Count))
	}

	if c.Delay < 0 {
		return dailyErrors.NewConfigError(FlagDelay, c.Delay,
			dailyErrors.Wrapf(dailyErrors.ErrInvalidConfiguration, "invalid delay: %s (must not be negative)", c.Delay))
	}

	if c.LogFile == "" {
		return dailyErrors.NewConfigError(FlagLogFile, c.LogFile,
			dailyErrors.Wrap(dailyErrors.ErrInvalidConfiguration, "log file must not be empty"))
	}

	if c.Remote == "" {
		return dailyErrors.NewConfigError(FlagRemote, c.Remote,
			dailyErrors.Wrap(dailyErrors.ErrInvalidConfiguration, "remote must not be empty"))
	}

	if c.RepoPath != "" {
		absRepoPath, err := filepath.Abs(c.RepoPath)
		if err != nil {
			return dailyErrors.NewConfigError(FlagRepoPath, c.RepoPath,
				dailyErrors.Wrap(dailyErrors.ErrInvalidConfiguration, "failed to resolve absolute path: "+err.Error()))
		}
		c.RepoPath = absRepoPath
	}

	if c.DebugLog != "" {
		c.Debug = true
	}

	return nil
}
