package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rnts-labs/rnts/internal/pm"
	"github.com/rnts-labs/rnts/internal/report"
	"github.com/rnts-labs/rnts/internal/scaffold"
	"github.com/rnts-labs/rnts/internal/toolchain"
)

// DevDependencies are installed into every generated project, and merged
// into its package.json with the version ranges in devDependencyVersions.
var DevDependencies = []string{
	"typescript",
	"tslint",
	"tslint-react",
	"@types/react",
	"@types/react-native",
	"rimraf",
}

var devDependencyVersions = map[string]string{
	"typescript":          "^3.4.5",
	"tslint":              "^5.16.0",
	"tslint-react":        "^4.0.0",
	"@types/react":        "^16.8.15",
	"@types/react-native": "^0.57.51",
	"rimraf":              "^2.6.3",
}

// Scripts returns the script entries merged into package.json. The build
// and watch scripts invoke the chosen package manager by name.
func Scripts(m pm.Manager) map[string]string {
	return map[string]string{
		"tsc":   "tsc",
		"clean": "rimraf build",
		"build": fmt.Sprintf("%s run clean && %s run tsc --", m, m),
		"watch": fmt.Sprintf("%s run tsc -- -w", m),
		"lint":  "tslint --project tsconfig.json",
	}
}

// Creator runs the scaffolding pipeline for one new project.
type Creator struct {
	Reporter  report.Reporter
	Runner    *toolchain.Runner
	Manager   pm.Manager
	Generator string // generator command, e.g. "react-native"
	WorkDir   string // directory to create the project in; defaults to "."
}

func (c *Creator) workDir() string {
	if c.WorkDir != "" {
		return c.WorkDir
	}
	return "."
}

func (c *Creator) generator() string {
	if c.Generator != "" {
		return c.Generator
	}
	return "react-native"
}

// Create scaffolds a new project named name. Steps run sequentially with
// no retries and no rollback: a failed step aborts the rest and leaves
// whatever was already written on disk.
func (c *Creator) Create(ctx context.Context, name string) error {
	target := filepath.Join(c.workDir(), name)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("directory %s already exists", target)
	}

	c.Reporter.Info(fmt.Sprintf("Creating %s with %s...", name, c.generator()))
	if err := c.Runner.Run(ctx, c.workDir(), c.generator(), "init", name); err != nil {
		return fmt.Errorf("generating project %s: %w", name, err)
	}

	if err := os.MkdirAll(filepath.Join(target, "src"), 0755); err != nil {
		return fmt.Errorf("creating source directory: %w", err)
	}

	if err := scaffold.CopyAssets(target); err != nil {
		return fmt.Errorf("copying template assets: %w", err)
	}

	if err := Patch(target, c.Manager, c.Reporter); err != nil {
		return fmt.Errorf("patching generated project: %w", err)
	}

	c.Reporter.Info(fmt.Sprintf("Installing dev dependencies with %s...", c.Manager))
	if err := c.Manager.AddDevDeps(ctx, c.Runner, target, DevDependencies); err != nil {
		return err
	}

	c.Reporter.Success(fmt.Sprintf("%s is ready!", name))
	c.Reporter.Info("To get started:")
	c.Reporter.Info(fmt.Sprintf("  cd %s", name))
	c.Reporter.Info(fmt.Sprintf("  %s run build", c.Manager))
	c.Reporter.Info("  react-native run-ios   # or run-android")
	return nil
}
