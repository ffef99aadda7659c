package service

import (
	"fmt"

	"sysconf-keeper/internal/config"
	"sysconf-keeper/internal/models"
	"sysconf-keeper/internal/utils"
	"sysconf-keeper/services"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the profile's claimed ports are free on this host",
	Long:  "Probe every port claimed by the profile's enabled services and report which are already taken by something running on this host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkPorts()
	},
}

/**
 *	Fields displayed in check format
 */
type Check_Columns struct {
	Service string `json:"service"`
	Port    int    `json:"port"`
	Free    bool   `json:"free"`
}

/**
 * Probe the claimed ports of the enabled services
 * @returns {error} Returns error when any claimed port is taken
 * @description
 * - Declared conflicts are the validator's job; this is a live probe of
 *   the host the tool runs on
 */
func checkPorts() error {
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

	taken := 0
	var dataList []*orderedmap.OrderedMap
	for _, svc := range catalog {
		if !svc.Enabled {
			continue
		}
		for _, port := range svc.Ports {
			free := utils.CheckPortAvailable(port)
			if !free {
				taken++
			}
			row := Check_Columns{Service: svc.Name, Port: port, Free: free}
			recordMap, _ := utils.StructToOrderedMap(row)
			dataList = append(dataList, recordMap)
		}
	}

	if len(dataList) == 0 {
		fmt.Println("No ports claimed by enabled services")
		return nil
	}
	utils.PrintFormat(dataList)
	if taken > 0 {
		return fmt.Errorf("%d claimed port(s) already in use on this host", taken)
	}
	return nil
}

func init() {
	serviceCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&optProfile, "profile", "p", "", "Profile to inspect (minimal/workstation/server)")
}
