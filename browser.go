package main

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// urlOpener launches a URL and does not report back. A failure here never
// fails the run.
type urlOpener interface {
	Open(ctx context.Context, url string)
}

// browserOpener starts the platform's default browser without waiting on it.
type browserOpener struct {
	log   *logger
	start func(cmd *exec.Cmd) error
}

func newBrowserOpener(log *logger) *browserOpener {
	return &browserOpener{log: log, start: (*exec.Cmd).Start}
}

func browserCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// Open ignores ctx: the browser outlives this process.
func (b *browserOpener) Open(_ context.Context, url string) {
	cmd := browserCommand(runtime.GOOS, url)
	if err := b.start(cmd); err != nil {
		b.log.warnf("browser launch failed: %v", err)
		return
	}
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
}

// dryOpener prints the URL instead of opening it.
type dryOpener struct {
	echo io.Writer
}

func (o dryOpener) Open(_ context.Context, url string) {
	_, _ = fmt.Fprintln(o.echo, "> open", url)
}
