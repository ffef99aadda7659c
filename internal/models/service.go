package models

/**
 * ServiceEntry is a named, enable-able unit of configuration.
 * @property {string} name - Unique service name
 * @property {bool} enabled - Whether the service is switched on
 * @property {[]int} ports - Network ports claimed when enabled
 * @property {[]string} dependsOn - Services that must be enabled first
 * @property {[][]string} conflictsWith - Mutual-exclusion groups this
 *   service belongs to; at most one member of a group may be enabled
 * @description
 * - Entries are rebuilt from the composed tree on every validation pass;
 *   they carry no identity across runs
 * - A disabled service claims no ports and imposes no dependencies
 */
type ServiceEntry struct {
	Name          string     `mapstructure:"name" json:"name"`
	Enabled       bool       `mapstructure:"enabled" json:"enabled"`
	Ports         []int      `mapstructure:"ports" json:"ports,omitempty"`
	DependsOn     []string   `mapstructure:"depends_on" json:"dependsOn,omitempty"`
	ConflictsWith [][]string `mapstructure:"conflicts_with" json:"conflictsWith,omitempty"`
}

/**
 * ServiceCatalog is the full set of services the system definition knows
 * about, in declaration order. Declaration order is what makes dependency
 * ordering deterministic.
 */
type ServiceCatalog []ServiceEntry

/**
 * Enabled returns the names of all enabled services in declaration order.
 */
func (c ServiceCatalog) Enabled() []string {
	var names []string
	for _, svc := range c {
		if svc.Enabled {
			names = append(names, svc.Name)
		}
	}
	return names
}

/**
 * Get looks up a service by name.
 * @returns {*ServiceEntry} Entry or nil when the name is unknown
 */
func (c ServiceCatalog) Get(name string) *ServiceEntry {
	for i := range c {
		if c[i].Name == name {
			return &c[i]
		}
	}
	return nil
}

/**
 * DependencyMap returns the dependsOn relation as a map keyed by service
 * name, the shape the dependency checks and the topological sort consume.
 */
func (c ServiceCatalog) DependencyMap() map[string][]string {
	deps := make(map[string][]string, len(c))
	for _, svc := range c {
		deps[svc.Name] = svc.DependsOn
	}
	return deps
}

/**
 * ConflictGroups collects every mutual-exclusion group declared by any
 * service, deduplicated, in declaration order.
 */
func (c ServiceCatalog) ConflictGroups() [][]string {
	var groups [][]string
	seen := make(map[string]bool)
	for _, svc := range c {
		for _, group := range svc.ConflictsWith {
			key := groupKey(group)
			if seen[key] {
				continue
			}
			seen[key] = true
			groups = append(groups, group)
		}
	}
	return groups
}

func groupKey(group []string) string {
	key := ""
	for _, name := range group {
		key += name + "\x00"
	}
	return key
}
