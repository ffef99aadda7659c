package resolve

import (
	"fmt"
	"os"

	"sysconf-keeper/cmd/root"
	"sysconf-keeper/internal/config"
	"sysconf-keeper/internal/models"
	"sysconf-keeper/services"

	"github.com/spf13/cobra"
)

var (
	optProfile string
	optFormat  string
	optOutput  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Compose, validate and emit the configuration for a profile",
	Long:  "Compose the selected profile over the baseline defaults, run every validation check, and emit the resolved settings tree plus the service startup order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve()
	},
}

/**
 * Run the resolve pipeline and write the result
 * @returns {error} Unknown profile, accumulated validation errors, or an
 *   output write failure
 * @description
 * - Profile and format default from the application config
 * - Writes to stdout unless --output names a file
 * - On validation failure every problem prints; nothing is emitted
 */
func runResolve() error {
	raw := optProfile
	if raw == "" {
		raw = config.Config.Resolve.Profile
	}
	profile, err := models.ParseProfileType(raw)
	if err != nil {
		return err
	}

	format := optFormat
	if format == "" {
		format = config.Config.Resolve.Format
	}

	resolved, err := services.GetSystemService().Resolve(profile)
	if err != nil {
		return err
	}

	data, err := services.EncodeResolved(resolved, format)
	if err != nil {
		return err
	}

	if optOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(optOutput, data, 0644); err != nil {
		return fmt.Errorf("write %s failed: %v", optOutput, err)
	}
	fmt.Printf("Resolved configuration written to %s\n", optOutput)
	return nil
}

func init() {
	root.RootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&optProfile, "profile", "p", "", "Profile to resolve (minimal/workstation/server)")
	resolveCmd.Flags().StringVarP(&optFormat, "format", "f", "", "Output format (json/yaml)")
	resolveCmd.Flags().StringVarP(&optOutput, "output", "o", "", "Write the result to a file instead of stdout")

	resolveCmd.Example = `  # resolve the workstation profile to stdout
  sysconf resolve --profile workstation

  # write the server profile as YAML
  sysconf resolve -p server -f yaml -o resolved.yaml`
}
