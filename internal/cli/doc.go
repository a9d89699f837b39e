// Package cli defines the Cobra command tree for the rnts CLI. Each file
// in this package registers one command (the root scaffolding command,
// version, doctor) with the root command. Command implementations delegate
// to internal packages for business logic and only handle flag parsing,
// I/O formatting, and user interaction.
package cli
