package main

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowserCommand(t *testing.T) {
	const url = "https://adventofcode.com/2022/day/1"
	tests := []struct {
		goos string
		want []string
	}{
		{goos: "linux", want: []string{"xdg-open", url}},
		{goos: "darwin", want: []string{"open", url}},
		{goos: "windows", want: []string{"rundll32", "url.dll,FileProtocolHandler", url}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, browserCommand(tt.goos, url).Args)
		})
	}
}

func TestBrowserOpener_IgnoresLaunchFailure(t *testing.T) {
	var logs bytes.Buffer
	log := newLoggerTo(&logs, true)

	var started []string
	b := newBrowserOpener(log)
	b.start = func(cmd *exec.Cmd) error {
		started = append(started, cmd.Args[len(cmd.Args)-1])
		return errors.New("no display")
	}

	assert.NotPanics(t, func() {
		b.Open(context.Background(), "https://adventofcode.com/2022/day/4")
	})
	assert.Equal(t, []string{"https://adventofcode.com/2022/day/4"}, started)
	assert.Contains(t, logs.String(), "WRN")
	assert.Contains(t, logs.String(), "browser launch failed")
}

func TestDryOpener(t *testing.T) {
	var buf bytes.Buffer
	dryOpener{echo: &buf}.Open(context.Background(), "https://adventofcode.com/2022/day/8")
	assert.Equal(t, "> open https://adventofcode.com/2022/day/8\n", buf.String())
}
