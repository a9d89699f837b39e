package toolchain

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/rnts-labs/rnts/internal/report"
)

// Runner executes external commands and forwards their output to a Reporter.
type Runner struct {
	Reporter report.Reporter
}

// Run executes name with args in dir, streaming each stdout line to
// Reporter.Info and each stderr line to Reporter.Error or Reporter.Warn
// depending on its prefix. It returns nil only when the process exits
// with code 0.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("attaching stdout of %s: %w", name, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("attaching stderr of %s: %w", name, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scanLines(stdout, r.Reporter.Info)
	}()
	go func() {
		defer wg.Done()
		scanLines(stderr, r.classifyStderr)
	}()

	// Drain both pipes before Wait closes them.
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s exited with code %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// classifyStderr routes a stderr line by its literal prefix: "Error" is
// reported at error level, anything else at warning level.
func (r *Runner) classifyStderr(line string) {
	if strings.HasPrefix(line, "Error") {
		r.Reporter.Error(line)
		return
	}
	r.Reporter.Warn(line)
}

func scanLines(pipe io.Reader, emit func(string)) {
	scanner := bufio.NewScanner(pipe)
	for scanner.Scan() {
		emit(scanner.Text())
	}
}

// Probe executes name with args, discarding all output. It returns nil
// when the command exists and exits with code 0, and an error otherwise.
// Used for presence checks such as `yarn --version`.
func Probe(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("probing %s: %w", name, err)
	}
	return nil
}

// Output executes name with args and returns its trimmed stdout.
// Used for version probes such as `react-native --version`.
func Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
