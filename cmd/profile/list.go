package profile

import (
	"fmt"

	"sysconf-keeper/internal/utils"
	"sysconf-keeper/services"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered profiles",
	Long:  "List the registered profiles with their descriptions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := listProfiles(); err != nil {
			fmt.Println(err)
		}
	},
}

/**
 *	Fields displayed in list format
 */
type Profile_Columns struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Overrides   int    `json:"overrides"`
}

/**
 * List registered profiles as a table
 * @returns {error} Returns error if listing fails, nil on success
 * @description
 * - Shows each profile with its description and the number of top-level
 *   override categories it carries
 */
func listProfiles() error {
	profiles := services.GetSystemService().Profiles()
	if len(profiles) == 0 {
		fmt.Println("No profiles registered")
		return nil
	}

	var dataList []*orderedmap.OrderedMap
	for _, p := range profiles {
		row := Profile_Columns{
			Name:        string(p.Type),
			Description: p.Description,
			Overrides:   len(p.Overrides),
		}
		recordMap, _ := utils.StructToOrderedMap(row)
		dataList = append(dataList, recordMap)
	}

	utils.PrintFormat(dataList)
	return nil
}

func init() {
	profileCmd.AddCommand(listCmd)
}
