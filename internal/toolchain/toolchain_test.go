package toolchain

import (
	"context"
	"runtime"
	"testing"

	"github.com/rnts-labs/rnts/internal/report"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests shell out to /bin/sh")
	}
}

func TestRunStreamsStdoutAsInfo(t *testing.T) {
	requireShell(t)
	rec := &report.Recorder{}
	r := &Runner{Reporter: rec}

	err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo one; echo two")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	infos := rec.Messages(report.LevelInfo)
	if len(infos) != 2 || infos[0] != "one" || infos[1] != "two" {
		t.Errorf("info messages = %v, want [one two]", infos)
	}
}

func TestRunClassifiesStderr(t *testing.T) {
	requireShell(t)
	rec := &report.Recorder{}
	r := &Runner{Reporter: rec}

	script := `echo "Error: it broke" 1>&2; echo "warning: careful" 1>&2; echo "plain noise" 1>&2`
	if err := r.Run(context.Background(), t.TempDir(), "sh", "-c", script); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	errs := rec.Messages(report.LevelError)
	if len(errs) != 1 || errs[0] != "Error: it broke" {
		t.Errorf("error messages = %v, want [Error: it broke]", errs)
	}

	warns := rec.Messages(report.LevelWarn)
	if len(warns) != 2 {
		t.Errorf("warn messages = %v, want two entries", warns)
	}
}

func TestRunNonZeroExit(t *testing.T) {
	requireShell(t)
	rec := &report.Recorder{}
	r := &Runner{Reporter: rec}

	err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("Run() should fail on non-zero exit")
	}
	if got := err.Error(); got != "sh exited with code 3" {
		t.Errorf("error = %q, want mention of exit code 3", got)
	}
}

func TestRunSpawnError(t *testing.T) {
	rec := &report.Recorder{}
	r := &Runner{Reporter: rec}

	err := r.Run(context.Background(), t.TempDir(), "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("Run() should fail when the binary does not exist")
	}
}

func TestProbe(t *testing.T) {
	requireShell(t)

	t.Run("zero exit", func(t *testing.T) {
		if err := Probe(context.Background(), "sh", "-c", "exit 0"); err != nil {
			t.Errorf("Probe() error: %v", err)
		}
	})

	t.Run("non-zero exit", func(t *testing.T) {
		if err := Probe(context.Background(), "sh", "-c", "exit 1"); err == nil {
			t.Error("Probe() should fail on non-zero exit")
		}
	})

	t.Run("missing binary", func(t *testing.T) {
		if err := Probe(context.Background(), "definitely-not-a-real-binary-xyz"); err == nil {
			t.Error("Probe() should fail when the binary does not exist")
		}
	})
}

func TestOutput(t *testing.T) {
	requireShell(t)

	got, err := Output(context.Background(), "sh", "-c", "echo 2.1.0")
	if err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if got != "2.1.0" {
		t.Errorf("Output() = %q, want %q", got, "2.1.0")
	}
}
