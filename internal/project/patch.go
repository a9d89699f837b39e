package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rnts-labs/rnts/internal/manifest"
	"github.com/rnts-labs/rnts/internal/pm"
	"github.com/rnts-labs/rnts/internal/report"
	"golang.org/x/sync/errgroup"
)

// The generator emits index.js importing './App'; the transpiled
// TypeScript entry point lives under build/ instead.
const importReplacement = "'./build/App'"

var importPattern = regexp.MustCompile(`(?i)'\./App'`)

// Patch applies the three post-generation edits concurrently: rewrite the
// entry-script import, merge scripts and dev dependencies into
// package.json, and remove the superseded App.js. Each edit targets a
// distinct file. All must succeed; the first failure is returned and
// already-started siblings run to completion — there is no rollback.
func Patch(projectDir string, m pm.Manager, rep report.Reporter) error {
	var g errgroup.Group

	g.Go(func() error {
		return RewriteEntryImport(filepath.Join(projectDir, "index.js"))
	})
	g.Go(func() error {
		return mergeManifest(filepath.Join(projectDir, "package.json"), m, rep)
	})
	g.Go(func() error {
		stale := filepath.Join(projectDir, "App.js")
		if err := os.Remove(stale); err != nil {
			return fmt.Errorf("removing superseded %s: %w", stale, err)
		}
		return nil
	})

	return g.Wait()
}

// RewriteEntryImport replaces the first case-insensitive occurrence of
// the quoted './App' import in the file at path with the build-folder
// path. The rest of the file is untouched.
func RewriteEntryImport(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading entry script %s: %w", path, err)
	}

	rewritten := rewriteImport(string(data))
	if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
		return fmt.Errorf("writing entry script %s: %w", path, err)
	}
	return nil
}

func rewriteImport(src string) string {
	loc := importPattern.FindStringIndex(src)
	if loc == nil {
		return src
	}
	return src[:loc[0]] + importReplacement + src[loc[1]:]
}

// mergeManifest merges the TypeScript scripts and dev dependencies into
// package.json, then schema-validates the result; validation issues are
// reported as warnings, not failures.
func mergeManifest(path string, m pm.Manager, rep report.Reporter) error {
	doc, err := manifest.Load(path)
	if err != nil {
		return err
	}

	merged := manifest.Merge(doc, Scripts(m), devDependencyVersions)
	if err := manifest.Save(path, merged); err != nil {
		return err
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		rep.Warn(fmt.Sprintf("could not validate %s: %v", path, err))
		return nil
	}
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		rep.Warn(fmt.Sprintf("package.json: %s", msg))
	}
	return nil
}
