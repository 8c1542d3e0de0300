package constants

// DefaultLogFile is the log file name used when none is configured
const DefaultLogFile = "learning_log.md"

// DefaultConfigFile is looked up in the repository directory when no
// config file is given explicitly
const DefaultConfigFile = ".dailylog.toml"

// DailyActivity is the fixed description embedded in single-mode entries
const DailyActivity = "Performed system maintenance, reviewed documentation, and practiced automation workflows."

// SectionActivity is the fixed description embedded in multi-mode entries
const SectionActivity = "Automation practice, documentation update, and CI workflow validation."

// SectionHeader starts a log file created by the multi-entry mode
const SectionHeader = "# Learning Log\n\nDaily documented learning and automation activity.\n\n"

// Commit message formats. The date is always the run's daily key.
const (
	DailyCommitFormat   = "docs: Update daily learning log for %s"
	SectionCommitFormat = "docs: daily log entry %d (%s)"
)

// ReadmeTemplate is written by --init when README.md is absent.
// The single verb receives the creation timestamp.
const ReadmeTemplate = `# Daily Learning Log

This repository contains an automated daily log that tracks learning activities and system maintenance.

## Purpose

This project demonstrates ethical automation practices:
- Educational exercise in Git/GitHub automation
- Learning log maintenance
- Documentation consistency
- Real skill development

## Ethical Guidelines

This automation follows ethical principles:
- Each entry represents actual work performed
- Not intended to deceive or artificially inflate metrics
- Focuses on real documentation and learning tracking
- Demonstrates legitimate automation techniques

## Technical Details

The daily log is updated by dailylog, which:
1. Generates a meaningful entry for the day
2. Commits the changes with a descriptive message
3. Pushes to the remote repository

Last updated: %s
`

// GitignoreTemplate is written by --init when .gitignore is absent
const GitignoreTemplate = `# Python
__pycache__/
*.py[cod]
*$py.class
*.so
.Python
build/
develop-eggs/
dist/
downloads/
eggs/
.eggs/
lib/
lib64/
parts/
sdist/
var/
wheels/
*.egg-info/
.installed.cfg
*.egg

# IDE
.vscode/
.idea/
*.swp
*.swo

# OS
.DS_Store
Thumbs.db
`
