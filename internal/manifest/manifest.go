package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Doc is a decoded package.json object.
type Doc map[string]any

// Load reads and decodes a package.json file.
func Load(path string) (Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var doc Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return doc, nil
}

// Save serializes doc with tab indentation and writes it to path. HTML
// escaping is disabled so script commands keep literal && and <>.
func Save(path string, doc Doc) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("serializing manifest: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Merge returns a copy of doc with the given entries shallow-merged into
// its "scripts" and "devDependencies" objects. The objects are created
// when absent. Keys outside the two objects are untouched; keys inside
// them that collide with an entry are overwritten. Merge is idempotent.
func Merge(doc Doc, scripts, devDeps map[string]string) Doc {
	out := make(Doc, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	if len(scripts) > 0 {
		out["scripts"] = mergeSection(doc["scripts"], scripts)
	}
	if len(devDeps) > 0 {
		out["devDependencies"] = mergeSection(doc["devDependencies"], devDeps)
	}
	return out
}

// mergeSection overlays entries onto an existing JSON object value. A
// non-object existing value is discarded in favor of a fresh object.
func mergeSection(existing any, entries map[string]string) map[string]any {
	merged := make(map[string]any)
	if m, ok := existing.(map[string]any); ok {
		for k, v := range m {
			merged[k] = v
		}
	}
	for k, v := range entries {
		merged[k] = v
	}
	return merged
}
