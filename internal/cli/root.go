package cli

import (
	"github.com/rnts-labs/rnts/internal/branding"
	"github.com/rnts-labs/rnts/internal/config"
	"github.com/rnts-labs/rnts/internal/report"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// reporter is the console reporter shared by all commands. Replaceable in
// tests with a capturing recorder.
var reporter report.Reporter = &report.Console{}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <AppName>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new React Native project wired for TypeScript.

It runs the project generator, adds a src/ tree with an App.tsx entry
point plus tsconfig.json and tslint.json, repoints index.js at the
transpiled output under build/, and installs the TypeScript development
dependencies with yarn (or npm when yarn is absent).`,
	Example:       "  " + branding.CLIName() + " MyApp",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runNew,
}

// Execute runs the root command with build info injected via ldflags.
// Errors are reported here so main only has to set the exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		reporter.Error(err.Error())
	}
	return err
}
