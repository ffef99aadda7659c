// Package validate holds the pure consistency checks run over a composed
// settings tree before it is handed to the activation engine: port and
// mutual-exclusion conflicts, dependency enforcement, dependency-order
// resolution and schema type/bounds checking.
//
// Every check returns structured errors instead of aborting, and Validate
// accumulates the failures of all checks so one pass reports every problem
// at once. The reference system this replaces stopped at the first failed
// assertion; accumulation is an intentional behavior change.
package validate

import (
	"fmt"
	"sort"

	"sysconf-keeper/internal/models"
	"sysconf-keeper/internal/option"
)

/**
 * CheckPortConflicts verifies that no two enabled services claim the same
 * network port. Disabled services contribute no ports.
 * @param {models.ServiceCatalog} catalog - Services built from the tree
 * @returns {models.ValidationErrors} One conflict error per duplicated
 *   port, naming the port and every service claiming it
 */
func CheckPortConflicts(catalog models.ServiceCatalog) models.ValidationErrors {
	claimants := make(map[int][]string)
	for _, svc := range catalog {
		if !svc.Enabled {
			continue
		}
		for _, port := range svc.Ports {
			claimants[port] = append(claimants[port], svc.Name)
		}
	}

	var conflicted []int
	for port, names := range claimants {
		if len(names) > 1 {
			conflicted = append(conflicted, port)
		}
	}
	sort.Ints(conflicted)

	var errs models.ValidationErrors
	for _, port := range conflicted {
		errs = append(errs, models.ValidationError{
			Kind:    models.ErrConflict,
			Keys:    claimants[port],
			Message: fmt.Sprintf("port %d claimed by more than one enabled service", port),
		})
	}
	return errs
}

/**
 * CheckServiceConflicts verifies the mutual-exclusion groups: at most one
 * member of each group may be enabled.
 * @param {[]string} enabled - Names of enabled services
 * @param {[][]string} groups - Mutual-exclusion groups
 * @returns {models.ValidationErrors} One conflict error per violated group
 */
func CheckServiceConflicts(enabled []string, groups [][]string) models.ValidationErrors {
	enabledSet := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		enabledSet[name] = true
	}

	var errs models.ValidationErrors
	for _, group := range groups {
		var active []string
		for _, member := range group {
			if enabledSet[member] {
				active = append(active, member)
			}
		}
		if len(active) > 1 {
			errs = append(errs, models.ValidationError{
				Kind:    models.ErrConflict,
				Keys:    active,
				Message: "mutually exclusive services are enabled together",
			})
		}
	}
	return errs
}

/**
 * CheckDependencies verifies that every dependency of an enabled service
 * is itself enabled.
 * @param {string} service - Service under check
 * @param {[]string} enabled - Names of enabled services
 * @param {map[string][]string} dependsOn - Dependency relation
 * @returns {models.ValidationErrors} One dependency error per missing
 *   dependency of the service
 */
func CheckDependencies(service string, enabled []string, dependsOn map[string][]string) models.ValidationErrors {
	enabledSet := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		enabledSet[name] = true
	}
	if !enabledSet[service] {
		return nil
	}

	var errs models.ValidationErrors
	for _, dep := range dependsOn[service] {
		if !enabledSet[dep] {
			errs = append(errs, models.ValidationError{
				Kind:    models.ErrDependency,
				Keys:    []string{service, dep},
				Message: fmt.Sprintf("service %q requires %q, which is not enabled", service, dep),
			})
		}
	}
	return errs
}

/**
 * ResolveDependencyOrder performs a Kahn topological sort over the
 * dependency graph restricted to the given services.
 * @param {[]string} services - Services to order, in input order
 * @param {map[string][]string} dependsOn - Dependency relation; edges to
 *   services outside the set are ignored here (the dependency check is
 *   what reports those)
 * @returns {[]string, *models.ValidationError} Startup order where every
 *   service appears after everything it depends on, or a cycle error
 *   carrying the offending cycle as an ordered name sequence
 * @description
 * - Ties among ready services break by input order, first seen first
 *   emitted, so the output is deterministic
 */
func ResolveDependencyOrder(services []string, dependsOn map[string][]string) ([]string, *models.ValidationError) {
	inSet := make(map[string]bool, len(services))
	for _, name := range services {
		inSet[name] = true
	}

	// indegree counts only dependencies inside the restricted set
	indegree := make(map[string]int, len(services))
	for _, name := range services {
		for _, dep := range dependsOn[name] {
			if inSet[dep] {
				indegree[name]++
			}
		}
	}

	emitted := make(map[string]bool, len(services))
	order := make([]string, 0, len(services))
	for len(order) < len(services) {
		progressed := false
		for _, name := range services {
			if emitted[name] || indegree[name] != 0 {
				continue
			}
			emitted[name] = true
			order = append(order, name)
			for _, other := range services {
				if emitted[other] {
					continue
				}
				for _, dep := range dependsOn[other] {
					if dep == name {
						indegree[other]--
					}
				}
			}
			progressed = true
			break
		}
		if !progressed {
			cycle := extractCycle(services, dependsOn, emitted, inSet)
			return nil, &models.ValidationError{
				Kind:    models.ErrCycle,
				Keys:    cycle,
				Message: fmt.Sprintf("dependency cycle: %s", joinCycle(cycle)),
			}
		}
	}
	return order, nil
}

// extractCycle walks the dependency edges among the not-yet-emitted
// services until a node repeats, then returns the loop it closed.
func extractCycle(services []string, dependsOn map[string][]string, emitted map[string]bool, inSet map[string]bool) []string {
	remaining := func(name string) bool { return inSet[name] && !emitted[name] }

	var start string
	for _, name := range services {
		if remaining(name) {
			start = name
			break
		}
	}

	index := make(map[string]int)
	var path []string
	current := start
	for {
		if at, seen := index[current]; seen {
			return path[at:]
		}
		index[current] = len(path)
		path = append(path, current)
		next := ""
		for _, dep := range dependsOn[current] {
			if remaining(dep) {
				next = dep
				break
			}
		}
		if next == "" {
			// should not happen: every remaining node has an in-set edge
			return path
		}
		current = next
	}
}

func joinCycle(cycle []string) string {
	out := ""
	for _, name := range cycle {
		out += name + " -> "
	}
	if len(cycle) > 0 {
		out += cycle[0]
	}
	return out
}

/**
 * CheckSchema validates the composed tree against the option schema.
 * @param {models.ConfigTree} tree - Composed settings tree
 * @param {map[string]*option.Descriptor} schema - Descriptors keyed by
 *   dotted config path
 * @returns {models.ValidationErrors} Accumulated type and bounds errors
 * @description
 * - Paths absent from the tree are skipped; default filling is the merge
 *   engine's job, not ours
 * - Iterates paths in sorted order so the error list is deterministic
 */
func CheckSchema(tree models.ConfigTree, schema map[string]*option.Descriptor) models.ValidationErrors {
	paths := make([]string, 0, len(schema))
	for path := range schema {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var errs models.ValidationErrors
	for _, path := range paths {
		value, present := models.Lookup(tree, path)
		if !present {
			continue
		}
		errs = append(errs, schema[path].Validate(path, value)...)
	}
	return errs
}

/**
 * Validate runs every check over the composed tree and its service
 * catalog, accumulating all failures rather than stopping at the first.
 * @param {models.ConfigTree} tree - Composed settings tree
 * @param {models.ServiceCatalog} catalog - Service entries rebuilt from
 *   the tree for this pass
 * @param {map[string]*option.Descriptor} schema - Option schema
 * @returns {models.ValidationErrors} Every problem found, empty on success
 */
func Validate(tree models.ConfigTree, catalog models.ServiceCatalog, schema map[string]*option.Descriptor) models.ValidationErrors {
	var errs models.ValidationErrors
	errs = append(errs, CheckSchema(tree, schema)...)
	errs = append(errs, CheckPortConflicts(catalog)...)

	enabled := catalog.Enabled()
	deps := catalog.DependencyMap()
	errs = append(errs, CheckServiceConflicts(enabled, catalog.ConflictGroups())...)
	for _, name := range enabled {
		errs = append(errs, CheckDependencies(name, enabled, deps)...)
	}
	if _, cycleErr := ResolveDependencyOrder(enabled, deps); cycleErr != nil {
		errs = append(errs, *cycleErr)
	}
	return errs
}
