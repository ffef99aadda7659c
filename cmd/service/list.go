package service

import (
	"fmt"
	"strings"

	"sysconf-keeper/internal/config"
	"sysconf-keeper/internal/models"
	"sysconf-keeper/internal/utils"
	"sysconf-keeper/services"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [service name]",
	Short: "List the services a profile enables",
	Long:  "List all services of the selected profile with their ports, dependencies and conflict groups. If a service name is specified, only show detailed information of that service.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := listInfo(args); err != nil {
			fmt.Println(err)
		}
	},
}

/**
 *	Fields displayed in list format
 */
type Service_Columns struct {
	Name      string `json:"name"`
	Enabled   bool   `json:"enabled"`
	Ports     string `json:"ports"`
	DependsOn string `json:"dependsOn"`
}

/**
 * List service information for the selected profile
 * @param {[]string} args - Command line arguments, optionally a service
 *   name
 * @returns {error} Returns error if listing fails, nil on success
 * @description
 * - Builds the catalog from the profile's composed tree
 * - Lists all services if no arguments provided
 * - Lists specific service details if name provided
 */
func listInfo(args []string) error {
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

	if len(args) == 0 {
		return listAllServices(catalog)
	}
	return listSpecificService(catalog, args[0])
}

func listAllServices(catalog models.ServiceCatalog) error {
	if len(catalog) == 0 {
		fmt.Println("No services found")
		return nil
	}
	var dataList []*orderedmap.OrderedMap
	for _, svc := range catalog {
		row := Service_Columns{
			Name:      svc.Name,
			Enabled:   svc.Enabled,
			Ports:     joinPorts(svc.Ports),
			DependsOn: joinNames(svc.DependsOn),
		}
		recordMap, _ := utils.StructToOrderedMap(row)
		dataList = append(dataList, recordMap)
	}

	utils.PrintFormat(dataList)
	return nil
}

func listSpecificService(catalog models.ServiceCatalog, name string) error {
	svc := catalog.Get(name)
	if svc == nil {
		return fmt.Errorf("service named '%s' not found", name)
	}

	fmt.Printf("=== Detailed information of service '%s' ===\n", name)
	fmt.Printf("Enabled: %v\n", svc.Enabled)
	fmt.Printf("Ports: %s\n", joinPorts(svc.Ports))
	fmt.Printf("Depends on: %s\n", joinNames(svc.DependsOn))
	if len(svc.ConflictsWith) > 0 {
		for _, group := range svc.ConflictsWith {
			fmt.Printf("Conflict group: %s\n", joinNames(group))
		}
	}
	return nil
}

func joinPorts(ports []int) string {
	if len(ports) == 0 {
		return "-"
	}
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, ",")
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

func init() {
	serviceCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&optProfile, "profile", "p", "", "Profile to inspect (minimal/workstation/server)")
}
