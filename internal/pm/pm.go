package pm

import (
	"context"
	"fmt"

	"github.com/rnts-labs/rnts/internal/toolchain"
)

// Manager identifies a package manager. Its string form is the literal
// command name, which is also interpolated into generated build scripts.
type Manager string

// Supported package managers. Yarn is preferred when present; Npm is the
// fallback.
const (
	Yarn Manager = "yarn"
	Npm  Manager = "npm"
)

func (m Manager) String() string { return string(m) }

// Parse maps a configured manager name to a Manager. The second return
// is false for anything other than "yarn" or "npm" (e.g. "auto").
func Parse(name string) (Manager, bool) {
	switch Manager(name) {
	case Yarn:
		return Yarn, true
	case Npm:
		return Npm, true
	default:
		return "", false
	}
}

// Detector probes for yarn availability.
type Detector struct {
	// Probe can be set for testing; defaults to running `yarn --version`
	// with output discarded.
	Probe func(ctx context.Context) error
}

// Detect returns Yarn when the probe succeeds and Npm otherwise. Mere
// presence decides; no version compatibility check is performed.
func (d *Detector) Detect(ctx context.Context) Manager {
	probe := d.Probe
	if probe == nil {
		probe = func(ctx context.Context) error {
			return toolchain.Probe(ctx, Yarn.String(), "--version")
		}
	}
	if err := probe(ctx); err != nil {
		return Npm
	}
	return Yarn
}

// installArgs returns the argument list that installs pkgs as development
// dependencies under this manager.
func (m Manager) installArgs(pkgs []string) []string {
	var args []string
	switch m {
	case Yarn:
		args = []string{"add", "--dev"}
	default:
		args = []string{"install", "--save-dev"}
	}
	return append(args, pkgs...)
}

// AddDevDeps installs pkgs as development dependencies in dir, streaming
// the manager's output through the runner's reporter.
func (m Manager) AddDevDeps(ctx context.Context, r *toolchain.Runner, dir string, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	if err := r.Run(ctx, dir, m.String(), m.installArgs(pkgs)...); err != nil {
		return fmt.Errorf("installing dev dependencies with %s: %w", m, err)
	}
	return nil
}
