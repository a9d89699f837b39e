// Package manifest reads, merges, and writes the package.json of a
// generated project. The merge itself is a pure function over generic
// JSON mappings; file I/O is kept to thin adapters so the merge logic is
// testable without touching disk. A JSON Schema validator reports
// structural problems in edited manifests.
package manifest
