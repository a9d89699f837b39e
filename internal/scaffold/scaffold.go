package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

//go:embed templates
var assetFS embed.FS

// Asset maps an embedded template to its destination inside the project.
type Asset struct {
	Source string // path within the embedded FS
	Dest   string // path relative to the project directory
}

// Assets are the fixed template files written into every new project.
var Assets = []Asset{
	{Source: "templates/App.tsx", Dest: filepath.Join("src", "App.tsx")},
	{Source: "templates/tsconfig.json", Dest: "tsconfig.json"},
	{Source: "templates/tslint.json", Dest: "tslint.json"},
}

// CopyAssets writes all template assets into projectDir concurrently.
// Each asset targets a distinct path. All copies must succeed; the first
// failure is returned and already-started siblings run to completion.
func CopyAssets(projectDir string) error {
	var g errgroup.Group
	for _, a := range Assets {
		a := a
		g.Go(func() error {
			return copyAsset(a, projectDir)
		})
	}
	return g.Wait()
}

func copyAsset(a Asset, projectDir string) error {
	data, err := assetFS.ReadFile(a.Source)
	if err != nil {
		return fmt.Errorf("reading embedded asset %s: %w", a.Source, err)
	}

	dest := filepath.Join(projectDir, a.Dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("writing asset %s: %w", dest, err)
	}
	return nil
}
