package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bashhack/dailylog/internal/config"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	versionInfo := config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	app := NewDefaultApp(versionInfo)

	// A signal cancels the context; the current step fails and the run stops
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Execute(ctx, os.Args)
	stop()

	app.exit(code)
}
