package profiles

import "sysconf-keeper/internal/models"

// catalogSpec is the static shape of one shipped service: which tree paths
// carry its claimed ports, which ports are fixed, and how it relates to
// the other services.
type catalogSpec struct {
	name          string
	portPaths     []string
	staticPorts   []int
	dependsOn     []string
	conflictsWith [][]string
}

// powerDaemons is the mutual-exclusion group for power management: tlp and
// power-profiles-daemon fight over the same hardware knobs.
var powerDaemons = []string{"tlp", "power_profiles"}

// catalogSpecs lists the shipped services in startup-relevant declaration
// order; dependency ordering ties break by this order.
var catalogSpecs = []catalogSpec{
	{name: "networking"},
	{name: "firewall", dependsOn: []string{"networking"}},
	{name: "proxy", portPaths: []string{"network.proxy_port", "network.http_proxy_port"}, dependsOn: []string{"networking"}},
	{name: "backup", dependsOn: []string{"networking"}},
	{name: "monitoring", staticPorts: []int{9090, 3000}, dependsOn: []string{"networking"}},
	{name: "node_exporter", staticPorts: []int{9100}, dependsOn: []string{"monitoring"}},
	{name: "intrusion_prevention", dependsOn: []string{"firewall"}},
	{name: "tlp", conflictsWith: [][]string{powerDaemons}},
	{name: "power_profiles", conflictsWith: [][]string{powerDaemons}},
}

/**
 * BuildCatalog derives the service entries for one validation pass from a
 * composed tree: enable flags from services.<name>.enable, claimed ports
 * from the configured port paths plus the static ones.
 * @param {models.ConfigTree} tree - Composed settings tree
 * @returns {models.ServiceCatalog} Entries in declaration order
 * @description
 * - Rebuilt from scratch on every pass; entries carry no state between
 *   runs
 */
func BuildCatalog(tree models.ConfigTree) models.ServiceCatalog {
	catalog := make(models.ServiceCatalog, 0, len(catalogSpecs))
	for _, spec := range catalogSpecs {
		entry := models.ServiceEntry{
			Name:          spec.name,
			DependsOn:     append([]string(nil), spec.dependsOn...),
			ConflictsWith: spec.conflictsWith,
		}
		if flag, ok := models.Lookup(tree, "services."+spec.name+".enable"); ok {
			entry.Enabled, _ = flag.(bool)
		}
		entry.Ports = append(entry.Ports, spec.staticPorts...)
		for _, path := range spec.portPaths {
			if raw, ok := models.Lookup(tree, path); ok {
				if port, ok := toInt(raw); ok {
					entry.Ports = append(entry.Ports, port)
				}
			}
		}
		catalog = append(catalog, entry)
	}
	return catalog
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), v == float64(int(v))
	}
	return 0, false
}
