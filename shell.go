package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// commandRunner runs one command line and reports whether it succeeded.
type commandRunner interface {
	Run(ctx context.Context, line string) error
}

// commandError is returned when a delegated command does not exit cleanly.
// Code is -1 when the shell itself could not be started.
type commandError struct {
	Command string
	Code    int
	Err     error
}

func (e *commandError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: exit status %d", e.Command, e.Code)
}

func (e *commandError) Unwrap() error { return e.Err }

// defaultShell returns the host shell invocation prefix.
func defaultShell() []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}
	}
	return []string{"sh", "-c"}
}

// shellArgs parses a configured shell such as "bash -c". Empty means the
// platform default. appConfig.validate rejects a shell without its flag.
func shellArgs(spec string) []string {
	if f := strings.Fields(spec); len(f) > 0 {
		return f
	}
	return defaultShell()
}

// shellRunner echoes each command as "> cmd" and runs it through the host
// shell with inherited stdio.
type shellRunner struct {
	shell  []string
	dir    string
	echo   io.Writer
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newShellRunner(shell []string, dir string) *shellRunner {
	return &shellRunner{
		shell:  shell,
		dir:    dir,
		echo:   os.Stdout,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (r *shellRunner) Run(ctx context.Context, line string) error {
	_, _ = fmt.Fprintln(r.echo, ">", line)

	args := append(append([]string{}, r.shell[1:]...), line)
	cmd := exec.CommandContext(ctx, r.shell[0], args...)
	cmd.Dir = r.dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &commandError{Command: line, Code: ee.ExitCode(), Err: err}
		}
		return &commandError{Command: line, Code: -1, Err: err}
	}
	return nil
}

// dryRunner only echoes.
type dryRunner struct {
	echo io.Writer
}

func (r dryRunner) Run(_ context.Context, line string) error {
	_, _ = fmt.Fprintln(r.echo, ">", line)
	return nil
}

// programName returns the first word of line that is not a leading
// NAME=value environment assignment.
func programName(line string) string {
	for _, f := range strings.Fields(line) {
		if i := strings.IndexByte(f, '='); i > 0 && !strings.ContainsRune(f[:i], '/') {
			continue
		}
		return f
	}
	return ""
}

// errMissingTool is returned by preflight when a command's program is not on PATH.
var errMissingTool = errors.New("missing tool")

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// preflight checks that the program of every command line resolves on PATH.
func preflight(lines ...string) error {
	var missing []string
	for _, line := range lines {
		prog := programName(line)
		if prog == "" {
			continue
		}
		if _, err := lookPath(prog); err != nil {
			missing = append(missing, prog)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingTool, strings.Join(missing, ", "))
	}
	return nil
}
