package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rnts-labs/rnts/internal/config"
	"github.com/rnts-labs/rnts/internal/manifest"
	"github.com/rnts-labs/rnts/internal/pm"
	"github.com/rnts-labs/rnts/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	checkRuntime  bool
	checkManifest string
)

// minGeneratorVersion is the oldest generator CLI known to emit the file
// layout this tool patches (index.js, App.js, package.json).
const minGeneratorVersion = "2.0.0"

var versionToken = regexp.MustCompile(`\d+\.\d+\.\d+`)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify Node.js, the generator, and a package manager are available")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the scaffolding toolchain",
	Long:  `Run diagnostic checks on the external tools this command depends on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anyFlag := checkRuntime || checkManifest != ""

		// If no specific flag, run all checks.
		if !anyFlag {
			runRuntimeCheck(cmd.Context(), cmd.OutOrStdout())
			return nil
		}

		if checkRuntime {
			runRuntimeCheck(cmd.Context(), cmd.OutOrStdout())
		}
		if checkManifest != "" {
			if err := runManifestCheck(cmd.OutOrStdout(), checkManifest); err != nil {
				return err
			}
		}
		return nil
	},
}

// runRuntimeCheck reports the availability of every external tool the
// pipeline invokes. Findings are informational; doctor never fails the
// process over a missing tool.
func runRuntimeCheck(ctx context.Context, out io.Writer) {
	if _, err := exec.LookPath("node"); err != nil {
		fmt.Fprintln(out, "✗ node: not found (install Node.js first)")
	} else {
		fmt.Fprintln(out, "✓ node: found")
	}

	generator := config.Get(config.KeyGenerator)
	if generator == "" {
		generator = "react-native"
	}
	checkGenerator(ctx, out, generator)

	mgr := (&pm.Detector{}).Detect(ctx)
	fmt.Fprintf(out, "✓ package manager: %s\n", mgr)
}

func checkGenerator(ctx context.Context, out io.Writer, generator string) {
	if _, err := exec.LookPath(generator); err != nil {
		fmt.Fprintf(out, "✗ %s: not found (npm install -g react-native-cli)\n", generator)
		return
	}

	raw, err := toolchain.Output(ctx, generator, "--version")
	if err != nil {
		fmt.Fprintf(out, "✗ %s: found, but --version failed: %v\n", generator, err)
		return
	}

	version := versionToken.FindString(raw)
	if version == "" {
		fmt.Fprintf(out, "✓ %s: found (unrecognized version output %q)\n", generator, raw)
		return
	}

	ok, err := atLeast(version, minGeneratorVersion)
	switch {
	case err != nil:
		fmt.Fprintf(out, "✓ %s: found (could not parse version %q: %v)\n", generator, version, err)
	case ok:
		fmt.Fprintf(out, "✓ %s: %s\n", generator, version)
	default:
		fmt.Fprintf(out, "✗ %s: %s is older than the supported minimum %s\n", generator, version, minGeneratorVersion)
	}
}

// atLeast reports whether version is >= minimum under semver ordering.
// Tolerates a leading "v" on either operand.
func atLeast(version, minimum string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	floor, err := semver.NewVersion(strings.TrimPrefix(minimum, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum %q: %w", minimum, err)
	}
	return v.Compare(floor) >= 0, nil
}

func runManifestCheck(out io.Writer, path string) error {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	if result.Valid {
		fmt.Fprintf(out, "✓ %s: valid\n", path)
		return nil
	}

	fmt.Fprintf(out, "✗ %s:\n", path)
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Fprintf(out, "  - %s\n", msg)
	}
	return fmt.Errorf("%s failed validation", path)
}
