package main

import (
	"context"
	"fmt"
	"time"
)

// plan is everything one run will execute, rendered for a single day.
type plan struct {
	Day      int
	Scaffold string
	Download string
	Editor   string
	URL      string
}

func newPlan(cfg appConfig, day int) plan {
	return plan{
		Day:      day,
		Scaffold: render(cfg.Scaffold, day, cfg.Year),
		Download: render(cfg.Download, day, cfg.Year),
		Editor:   render(cfg.Editor, day, cfg.Year),
		URL:      render(cfg.URL, day, cfg.Year),
	}
}

// commands returns the status-checked steps in execution order.
func (p plan) commands() []string {
	return []string{p.Scaffold, p.Download, p.Editor}
}

// bootstrapper sequences one day's setup: scaffold, download, editor, then
// the puzzle page. The first failing command ends the run.
type bootstrapper struct {
	cfg     appConfig
	now     func() time.Time
	day     int // overrides now when non-zero
	dir     string
	runner  commandRunner
	browser urlOpener
	log     *logger
}

func (b *bootstrapper) today() int {
	if b.day != 0 {
		return b.day
	}
	return b.now().Day()
}

// Run executes the plan for today. The browser step is best effort and
// cannot make Run fail.
func (b *bootstrapper) Run(ctx context.Context) error {
	p := newPlan(b.cfg, b.today())
	b.log.infof("setting up day %d of %d in %s", p.Day, b.cfg.Year, b.dir)

	if b.cfg.Preflight {
		if err := preflight(p.commands()...); err != nil {
			return err
		}
	}

	for _, line := range p.commands() {
		if err := b.runner.Run(ctx, line); err != nil {
			return fmt.Errorf("day %d: %w", p.Day, err)
		}
	}

	b.browser.Open(ctx, p.URL)
	b.log.okf("day %d ready", p.Day)
	return nil
}
