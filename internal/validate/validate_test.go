package validate

import (
	"testing"

	"sysconf-keeper/internal/models"
	"sysconf-keeper/internal/option"
)

/**
 * Test port conflict detection
 * @description
 * - backup claims no ports, proxy claims 1080 and 8118, webServer claims
 *   8118; all enabled, so 8118 must be reported as a conflict
 * - The error must name both claimants
 */
func TestCheckPortConflicts(t *testing.T) {
	catalog := models.ServiceCatalog{
		{Name: "backup", Enabled: true},
		{Name: "proxy", Enabled: true, Ports: []int{1080, 8118}},
		{Name: "webServer", Enabled: true, Ports: []int{8118}},
	}
	errs := CheckPortConflicts(catalog)
	if len(errs) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %v", len(errs), errs)
	}
	e := errs[0]
	if e.Kind != models.ErrConflict {
		t.Errorf("expected conflict kind, got %s", e.Kind)
	}
	if len(e.Keys) != 2 || !containsName(e.Keys, "proxy") || !containsName(e.Keys, "webServer") {
		t.Errorf("conflict should name proxy and webServer, got %v", e.Keys)
	}
}

/**
 * Test that distinct ports across enabled services pass
 */
func TestCheckPortConflictsDistinct(t *testing.T) {
	catalog := models.ServiceCatalog{
		{Name: "proxy", Enabled: true, Ports: []int{1080}},
		{Name: "monitoring", Enabled: true, Ports: []int{9090}},
	}
	if errs := CheckPortConflicts(catalog); len(errs) != 0 {
		t.Errorf("distinct ports reported a conflict: %v", errs)
	}
}

/**
 * Test that a disabled service contributes no ports
 */
func TestCheckPortConflictsDisabled(t *testing.T) {
	catalog := models.ServiceCatalog{
		{Name: "proxy", Enabled: true, Ports: []int{8118}},
		{Name: "webServer", Enabled: false, Ports: []int{8118}},
	}
	if errs := CheckPortConflicts(catalog); len(errs) != 0 {
		t.Errorf("disabled service's port counted as claimed: %v", errs)
	}
}

/**
 * Test mutual-exclusion group enforcement
 */
func TestCheckServiceConflicts(t *testing.T) {
	groups := [][]string{{"tlp", "power_profiles"}}

	errs := CheckServiceConflicts([]string{"tlp", "power_profiles"}, groups)
	if len(errs) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(errs))
	}
	if errs[0].Kind != models.ErrConflict {
		t.Errorf("expected conflict kind, got %s", errs[0].Kind)
	}

	if errs := CheckServiceConflicts([]string{"tlp"}, groups); len(errs) != 0 {
		t.Errorf("single group member reported a conflict: %v", errs)
	}
}

/**
 * Test dependency enforcement
 * @description
 * - monitoring depends on networking; enabling monitoring alone must
 *   fail naming both the service and the missing dependency
 * - Enabling both must pass
 */
func TestCheckDependencies(t *testing.T) {
	deps := map[string][]string{"monitoring": {"networking"}}

	errs := CheckDependencies("monitoring", []string{"monitoring"}, deps)
	if len(errs) != 1 {
		t.Fatalf("expected 1 dependency error, got %d", len(errs))
	}
	e := errs[0]
	if e.Kind != models.ErrDependency {
		t.Errorf("expected dependency kind, got %s", e.Kind)
	}
	if len(e.Keys) != 2 || e.Keys[0] != "monitoring" || e.Keys[1] != "networking" {
		t.Errorf("expected keys [monitoring networking], got %v", e.Keys)
	}

	if errs := CheckDependencies("monitoring", []string{"monitoring", "networking"}, deps); len(errs) != 0 {
		t.Errorf("satisfied dependency reported an error: %v", errs)
	}
}

/**
 * Test cycle detection
 * @description
 * - A depends on B, B on C, C on A; the sort must fail with a cycle
 *   error carrying all three names (in some rotation) instead of looping
 */
func TestResolveDependencyOrderCycle(t *testing.T) {
	deps := map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"C": {"A"},
	}
	_, cycleErr := ResolveDependencyOrder([]string{"A", "B", "C"}, deps)
	if cycleErr == nil {
		t.Fatal("cycle was not detected")
	}
	if cycleErr.Kind != models.ErrCycle {
		t.Errorf("expected cycle kind, got %s", cycleErr.Kind)
	}
	if len(cycleErr.Keys) != 3 {
		t.Fatalf("expected the full 3-cycle, got %v", cycleErr.Keys)
	}
	for _, name := range []string{"A", "B", "C"} {
		if !containsName(cycleErr.Keys, name) {
			t.Errorf("cycle %v missing %s", cycleErr.Keys, name)
		}
	}
}

/**
 * Test topological validity: every service appears after everything it
 * depends on
 */
func TestResolveDependencyOrderTopological(t *testing.T) {
	services := []string{"grafana", "prometheus", "networking", "exporter"}
	deps := map[string][]string{
		"grafana":    {"prometheus"},
		"prometheus": {"networking", "exporter"},
		"exporter":   {"networking"},
	}
	order, cycleErr := ResolveDependencyOrder(services, deps)
	if cycleErr != nil {
		t.Fatalf("acyclic graph reported a cycle: %v", cycleErr)
	}
	if len(order) != len(services) {
		t.Fatalf("order lost services: %v", order)
	}
	position := make(map[string]int)
	for i, name := range order {
		position[name] = i
	}
	for name, wants := range deps {
		for _, dep := range wants {
			if position[dep] >= position[name] {
				t.Errorf("%s must come after %s, got order %v", name, dep, order)
			}
		}
	}
}

/**
 * Test deterministic tie-breaking: services with no dependencies emit in
 * input order
 */
func TestResolveDependencyOrderStable(t *testing.T) {
	services := []string{"c", "a", "b"}
	order, cycleErr := ResolveDependencyOrder(services, nil)
	if cycleErr != nil {
		t.Fatalf("unexpected cycle: %v", cycleErr)
	}
	for i, name := range services {
		if order[i] != name {
			t.Fatalf("expected input order %v, got %v", services, order)
		}
	}
}

/**
 * Test that dependencies outside the restricted set do not affect the
 * ordering
 */
func TestResolveDependencyOrderRestricted(t *testing.T) {
	deps := map[string][]string{"monitoring": {"networking"}}
	order, cycleErr := ResolveDependencyOrder([]string{"monitoring"}, deps)
	if cycleErr != nil {
		t.Fatalf("unexpected cycle: %v", cycleErr)
	}
	if len(order) != 1 || order[0] != "monitoring" {
		t.Errorf("expected [monitoring], got %v", order)
	}
}

/**
 * Test schema checking against descriptors keyed by dotted path
 */
func TestCheckSchema(t *testing.T) {
	schema := map[string]*option.Descriptor{
		"performance.swappiness": option.NewPercentage(60, "swappiness"),
		"security.ssh_port":      option.NewPort(22, "ssh port"),
	}
	tree := models.ConfigTree{
		"performance": models.ConfigTree{"swappiness": 150},
		"security":    models.ConfigTree{"ssh_port": 22},
	}
	errs := CheckSchema(tree, schema)
	if len(errs) != 1 {
		t.Fatalf("expected 1 bounds error, got %d: %v", len(errs), errs)
	}
	if errs[0].Kind != models.ErrBounds {
		t.Errorf("expected bounds kind, got %s", errs[0].Kind)
	}
	if errs[0].Keys[0] != "performance.swappiness" {
		t.Errorf("expected offending path performance.swappiness, got %v", errs[0].Keys)
	}
}

/**
 * Test that Validate accumulates every failure in one pass
 * @description
 * - The tree carries an out-of-bounds percentage, a port conflict and a
 *   missing dependency at once; all three kinds must be reported
 */
func TestValidateAccumulates(t *testing.T) {
	schema := map[string]*option.Descriptor{
		"performance.swappiness": option.NewPercentage(60, "swappiness"),
	}
	tree := models.ConfigTree{
		"performance": models.ConfigTree{"swappiness": 150},
	}
	catalog := models.ServiceCatalog{
		{Name: "proxy", Enabled: true, Ports: []int{8118}},
		{Name: "webServer", Enabled: true, Ports: []int{8118}},
		{Name: "monitoring", Enabled: true, DependsOn: []string{"networking"}},
		{Name: "networking", Enabled: false},
	}
	errs := Validate(tree, catalog, schema)
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d: %v", len(errs), errs)
	}
	kinds := make(map[models.ErrorKind]int)
	for _, e := range errs {
		kinds[e.Kind]++
	}
	for _, kind := range []models.ErrorKind{models.ErrBounds, models.ErrConflict, models.ErrDependency} {
		if kinds[kind] != 1 {
			t.Errorf("expected one %s error, got %d", kind, kinds[kind])
		}
	}
}

func containsName(names []string, want string) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}
