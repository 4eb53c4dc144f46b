package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

const appName = "aoc-kickoff"

// errUsage marks bad command-line input.
var errUsage = errors.New("usage")

func main() {
	_ = godotenv.Load()
	log := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, log, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		log.err(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger, args []string, stdout io.Writer) error {
	if len(args) > 0 && args[0] == "help" {
		printUsage(stdout)
		return nil
	}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		configPath string
		day        int
		dryRun     bool
		check      bool
	)
	fs.StringVar(&configPath, "config", "", "config path")
	fs.IntVar(&day, "day", 0, "day of month to set up (default: today)")
	fs.BoolVar(&dryRun, "dry-run", false, "print commands without running them")
	fs.BoolVar(&check, "check", false, "verify tools are on PATH first")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	if day < 0 || day > 31 {
		return fmt.Errorf("%w: -day must be between 1 and 31", errUsage)
	}

	cfg, err := loadConfig(resolveConfigPath(configPath))
	if err != nil {
		return err
	}
	if check {
		cfg.Preflight = true
	}
	log.setDebug(cfg.Debug)

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	b := &bootstrapper{
		cfg: cfg,
		now: time.Now,
		day: day,
		dir: dir,
		log: log,
	}
	if dryRun {
		b.runner = dryRunner{echo: stdout}
		b.browser = dryOpener{echo: stdout}
	} else {
		sr := newShellRunner(shellArgs(cfg.Shell), dir)
		sr.echo = stdout
		b.runner = sr
		b.browser = newBrowserOpener(log)
	}
	return b.Run(ctx)
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "aoc-kickoff: set up today's Advent of Code puzzle")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  aoc-kickoff [--config PATH] [--day N] [--dry-run] [--check]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Options:")
	_, _ = fmt.Fprintln(w, "  --config  Path to aoc-kickoff.json (optional)")
	_, _ = fmt.Fprintln(w, "  --day     Day to set up instead of today's date")
	_, _ = fmt.Fprintln(w, "  --dry-run Print the commands and URL without running them")
	_, _ = fmt.Fprintln(w, "  --check   Fail early if a command's program is not on PATH")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Environment:")
	_, _ = fmt.Fprintln(w, "  AOC_KICKOFF_HOME  Directory holding aoc-kickoff.json")
	_, _ = fmt.Fprintln(w, "  AOC_YEAR, AOC_SCAFFOLD, AOC_DOWNLOAD, AOC_EDITOR, AOC_URL, AOC_SHELL")
	_, _ = fmt.Fprintln(w, "                    Override the matching config keys")
	_, _ = fmt.Fprintln(w, "  AOC_DEBUG         Enable debug logging")
	_, _ = fmt.Fprintln(w, "  NO_COLOR          Disable colored output")
}
