package service

import (
	"fmt"

	"sysconf-keeper/internal/config"
	"sysconf-keeper/internal/models"
	"sysconf-keeper/internal/validate"
	"sysconf-keeper/services"

	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Show the service startup order for a profile",
	Long:  "Resolve the dependency order of the profile's enabled services; every service starts after everything it depends on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showOrder()
	},
}

func showOrder() error {
	raw := optProfile
	if raw == "" {
		raw = config.Config.Resolve.Profile
	}
	profile, err := models.ParseProfileType(raw)
	if err != nil {
		return err
	}
	catalog, err := services.GetSystemService().Catalog(profile)
	if err != nil {
		return err
	}

	order, cycleErr := validate.ResolveDependencyOrder(catalog.Enabled(), catalog.DependencyMap())
	if cycleErr != nil {
		return cycleErr
	}
	if len(order) == 0 {
		fmt.Println("No services enabled")
		return nil
	}
	for i, name := range order {
		fmt.Printf("%d. %s\n", i+1, name)
	}
	return nil
}

func init() {
	serviceCmd.AddCommand(orderCmd)

	orderCmd.Flags().StringVarP(&optProfile, "profile", "p", "", "Profile to inspect (minimal/workstation/server)")
}
