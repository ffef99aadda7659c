package profile

import (
	"encoding/json"
	"fmt"

	"sysconf-keeper/internal/models"
	"sysconf-keeper/services"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <profile>",
	Short: "Show a profile's override table",
	Long:  "Show the override table one profile applies over the baseline defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showProfile(args[0])
	},
}

func showProfile(raw string) error {
	profile, err := models.ParseProfileType(raw)
	if err != nil {
		return err
	}

	for _, p := range services.GetSystemService().Profiles() {
		if p.Type != profile {
			continue
		}
		fmt.Printf("=== Profile '%s' ===\n", p.Type)
		if p.Description != "" {
			fmt.Printf("%s\n\n", p.Description)
		}
		data, err := json.MarshalIndent(p.Overrides, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	return fmt.Errorf("profile %q has no registered override table", raw)
}

func init() {
	profileCmd.AddCommand(showCmd)
}
