package cmd

import (
	"fmt"

	"sysconf-keeper/cmd/root"

	"github.com/spf13/cobra"
)

var SoftwareVer = ""
var BuildTime = ""
var BuildCommitId = ""

func PrintVersions() {
	fmt.Printf("Version %s\n", SoftwareVer)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Build Commit ID: %s\n", BuildCommitId)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  `The 'version' command shows version details including git commit and build time`,

	Run: func(cmd *cobra.Command, args []string) {
		PrintVersions()
	},
}

func init() {
	root.RootCmd.AddCommand(versionCmd)

	versionCmd.Example = `  sysconf version`
}
