package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rnts-labs/rnts/internal/pm"
	"github.com/rnts-labs/rnts/internal/report"
)

func TestRewriteImport(t *testing.T) {
	t.Run("replaces the import", func(t *testing.T) {
		in := "import App from './App';\n"
		got := rewriteImport(in)
		want := "import App from './build/App';\n"
		if got != want {
			t.Errorf("rewriteImport() = %q, want %q", got, want)
		}
	})

	t.Run("case-insensitive", func(t *testing.T) {
		got := rewriteImport("import App from './app';\n")
		if !strings.Contains(got, "'./build/App'") {
			t.Errorf("lowercase import not rewritten: %q", got)
		}
	})

	t.Run("first match only", func(t *testing.T) {
		in := "import App from './App';\nimport Other from './App';\n"
		got := rewriteImport(in)
		if strings.Count(got, "'./build/App'") != 1 {
			t.Errorf("expected exactly one replacement: %q", got)
		}
		if !strings.HasSuffix(got, "import Other from './App';\n") {
			t.Errorf("second occurrence should be untouched: %q", got)
		}
	})

	t.Run("no match leaves input unchanged", func(t *testing.T) {
		in := "import App from './src/App';\n"
		if got := rewriteImport(in); got != in {
			t.Errorf("rewriteImport() changed unmatched input: %q", got)
		}
	})

	t.Run("no other text differs", func(t *testing.T) {
		in := "// header\nimport App from './App';\n// footer\n"
		got := rewriteImport(in)
		if !strings.HasPrefix(got, "// header\n") || !strings.HasSuffix(got, "// footer\n") {
			t.Errorf("surrounding text changed: %q", got)
		}
	})
}

func TestPatch(t *testing.T) {
	rec := &report.Recorder{}
	dir := seedGeneratedProject(t)

	if err := Patch(dir, pm.Yarn, rec); err != nil {
		t.Fatalf("Patch() error: %v", err)
	}

	t.Run("import rewritten", func(t *testing.T) {
		content := readFile(t, filepath.Join(dir, "index.js"))
		if !strings.Contains(content, "'./build/App'") {
			t.Errorf("index.js import not rewritten:\n%s", content)
		}
	})

	t.Run("manifest merged", func(t *testing.T) {
		content := readFile(t, filepath.Join(dir, "package.json"))
		for _, want := range []string{`"tsc": "tsc"`, `"clean": "rimraf build"`, `"build": "yarn run clean && yarn run tsc --"`, `"typescript": "^3.4.5"`} {
			if !strings.Contains(content, want) {
				t.Errorf("package.json missing %s:\n%s", want, content)
			}
		}
		if !strings.Contains(content, `"start": "react-native start"`) {
			t.Errorf("pre-existing script lost:\n%s", content)
		}
	})

	t.Run("stale file removed", func(t *testing.T) {
		if _, err := os.Stat(filepath.Join(dir, "App.js")); !os.IsNotExist(err) {
			t.Error("App.js should have been removed")
		}
	})
}

func TestPatchFailsWhenManifestBroken(t *testing.T) {
	rec := &report.Recorder{}
	dir := seedGeneratedProject(t)
	writeFile(t, filepath.Join(dir, "package.json"), "{broken")

	err := Patch(dir, pm.Yarn, rec)
	if err == nil {
		t.Fatal("Patch() should fail when package.json cannot be parsed")
	}
	if !strings.Contains(err.Error(), "package.json") {
		t.Errorf("error should name the manifest: %v", err)
	}
}

func TestPatchFailsWhenStaleFileMissing(t *testing.T) {
	rec := &report.Recorder{}
	dir := seedGeneratedProject(t)
	if err := os.Remove(filepath.Join(dir, "App.js")); err != nil {
		t.Fatal(err)
	}

	if err := Patch(dir, pm.Yarn, rec); err == nil {
		t.Fatal("Patch() should fail when App.js is already gone")
	}
}

func seedGeneratedProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.js"), "import App from './App';\n")
	writeFile(t, filepath.Join(dir, "App.js"), "export default null;\n")
	writeFile(t, filepath.Join(dir, "package.json"), `{
	"name": "MyApp",
	"version": "0.0.1",
	"scripts": {
		"start": "react-native start"
	}
}
`)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
