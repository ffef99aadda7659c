package profiles

import (
	"testing"

	"sysconf-keeper/internal/compose"
	"sysconf-keeper/internal/models"
	"sysconf-keeper/internal/validate"
)

/**
 * Test the profile invariant: every key of every shipped override table
 * exists in the baseline
 */
func TestOverrideKeysExistInBaseline(t *testing.T) {
	baseline := Baseline()
	for profile, overrides := range Overrides() {
		if unknown := compose.CheckOverrideKeys(baseline, overrides); len(unknown) != 0 {
			t.Errorf("profile %s introduces unknown keys: %v", profile, unknown)
		}
	}
}

/**
 * Test that every shipped profile composes and validates cleanly
 */
func TestShippedProfilesAreConsistent(t *testing.T) {
	baseline := Baseline()
	overrides := Overrides()
	schema := Schema()
	for _, profile := range models.ProfileTypes() {
		tree, err := compose.Compose(profile, baseline, overrides)
		if err != nil {
			t.Fatalf("profile %s failed to compose: %v", profile, err)
		}
		catalog := BuildCatalog(tree)
		if errs := validate.Validate(tree, catalog, schema); len(errs) != 0 {
			t.Errorf("profile %s is inconsistent:\n%v", profile, errs)
		}
	}
}

/**
 * Test that the baseline's own values satisfy the schema
 */
func TestBaselineMatchesSchema(t *testing.T) {
	if errs := validate.CheckSchema(Baseline(), Schema()); len(errs) != 0 {
		t.Errorf("baseline violates its own schema:\n%v", errs)
	}
}

/**
 * Test catalog derivation from a composed tree
 * @description
 * - Enable flags come from services.<name>.enable
 * - The proxy's claimed ports come from the network settings, so a
 *   profile that moves the proxy port moves the claim with it
 */
func TestBuildCatalog(t *testing.T) {
	tree, err := compose.Compose(models.ProfileWorkstation, Baseline(), Overrides())
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	catalog := BuildCatalog(tree)

	proxy := catalog.Get("proxy")
	if proxy == nil {
		t.Fatal("proxy missing from catalog")
	}
	if !proxy.Enabled {
		t.Error("workstation profile should enable the proxy")
	}
	if len(proxy.Ports) != 2 || proxy.Ports[0] != 1080 || proxy.Ports[1] != 8118 {
		t.Errorf("proxy ports should come from the tree, got %v", proxy.Ports)
	}

	// moving the port in the tree moves the claim
	moved := models.Clone(tree)
	moved["network"].(models.ConfigTree)["proxy_port"] = 1081
	if got := BuildCatalog(moved).Get("proxy").Ports[0]; got != 1081 {
		t.Errorf("moved proxy port not picked up, got %d", got)
	}

	if BuildCatalog(tree).Get("backup").Enabled {
		t.Error("workstation profile should not enable backup")
	}
}

/**
 * Test that the catalog rebuild is deterministic and order-preserving
 */
func TestBuildCatalogDeterministic(t *testing.T) {
	tree := Baseline()
	first := BuildCatalog(tree)
	second := BuildCatalog(tree)
	if len(first) != len(second) {
		t.Fatalf("catalog size changed between passes: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("catalog order changed at %d: %s vs %s", i, first[i].Name, second[i].Name)
		}
	}
}
