package service

import (
	"sysconf-keeper/cmd/root"

	"github.com/spf13/cobra"
)

var optProfile string

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Service operations (list/order/check)",
	Long:  `Service operations (list/order/check)`,
}

const serviceExample = `  # show the startup order for the server profile
  sysconf service order --profile server`

func init() {
	root.RootCmd.AddCommand(serviceCmd)

	serviceCmd.Example = serviceExample
}
