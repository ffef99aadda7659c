package validate

import (
	"fmt"

	"sysconf-keeper/cmd/root"
	"sysconf-keeper/internal/config"
	"sysconf-keeper/internal/models"
	"sysconf-keeper/services"

	"github.com/spf13/cobra"
)

var optProfile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a profile without emitting anything",
	Long:  "Compose the selected profile and run every validation check, printing the complete list of problems instead of stopping at the first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func runValidate() error {
	raw := optProfile
	if raw == "" {
		raw = config.Config.Resolve.Profile
	}
	profile, err := models.ParseProfileType(raw)
	if err != nil {
		return err
	}

	errs, err := services.GetSystemService().ValidateProfile(profile)
	if err != nil {
		return err
	}
	if len(errs) == 0 {
		fmt.Printf("Profile %s is consistent\n", profile)
		return nil
	}
	for _, e := range errs {
		fmt.Printf("  %s\n", e.Error())
	}
	return fmt.Errorf("profile %s has %d problem(s)", profile, len(errs))
}

func init() {
	root.RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&optProfile, "profile", "p", "", "Profile to validate (minimal/workstation/server)")

	validateCmd.Example = `  sysconf validate --profile server`
}
