package profile

import (
	"sysconf-keeper/cmd/root"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile operations (list/show)",
	Long:  `Profile operations (list/show)`,
}

const profileExample = `  # show the server profile's overrides
  sysconf profile show server`

func init() {
	root.RootCmd.AddCommand(profileCmd)

	profileCmd.Example = profileExample
}
