package cli

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rnts-labs/rnts/internal/branding"
	"github.com/rnts-labs/rnts/internal/config"
	"github.com/rnts-labs/rnts/internal/pm"
	"github.com/rnts-labs/rnts/internal/project"
	"github.com/rnts-labs/rnts/internal/toolchain"
	"github.com/spf13/cobra"
)

// The generator requires app names to be valid JavaScript identifiers.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// runNew is the root command: scaffold a new project named by the single
// positional argument.
func runNew(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("project name is required: %s <AppName>", branding.CLIName())
	}
	name := args[0]
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [A-Za-z][A-Za-z0-9]*", name)
	}

	ctx := cmd.Context()
	creator := &project.Creator{
		Reporter:  reporter,
		Runner:    &toolchain.Runner{Reporter: reporter},
		Manager:   resolveManager(ctx),
		Generator: config.Get(config.KeyGenerator),
	}
	return creator.Create(ctx, name)
}

// resolveManager honors an explicit package_manager config value and
// falls back to the yarn presence probe otherwise.
func resolveManager(ctx context.Context) pm.Manager {
	if m, ok := pm.Parse(config.Get(config.KeyPackageManager)); ok {
		return m
	}
	d := &pm.Detector{}
	m := d.Detect(ctx)
	reporter.Info(fmt.Sprintf("Using %s to install dependencies", m))
	return m
}
