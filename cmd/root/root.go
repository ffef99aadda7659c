package root

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "sysconf",
	Short: "Declarative workstation configuration keeper",
	Long:  `sysconf composes a profile over the baseline system defaults, validates the result (ports, dependencies, conflicts, option types) and emits a settings tree plus a service startup order for the activation engine`,
}
