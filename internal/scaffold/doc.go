// Package scaffold copies the TypeScript template assets into a generated
// project: the application entry point (src/App.tsx), the compiler config
// (tsconfig.json), and the linter config (tslint.json). The assets are
// embedded in the binary and copied verbatim.
package scaffold
