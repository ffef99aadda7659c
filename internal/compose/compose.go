// Package compose produces one concrete settings tree by deep-merging a
// profile's overrides onto the shared baseline defaults.
package compose

import (
	"fmt"

	"sysconf-keeper/internal/models"
)

/**
 * DeepMerge merges an override tree onto a baseline tree and returns a
 * fresh tree; neither input is mutated.
 * @param {models.ConfigTree} baseline - Shared defaults
 * @param {models.ConfigTree} override - Profile overrides
 * @returns {models.ConfigTree} Merged tree
 * @description
 * - Nested maps merge key by key
 * - Any non-map override value, zero values included, replaces the
 *   baseline value wholesale; a non-map override over a map baseline
 *   replaces the whole subtree
 * - Keys absent from the override pass the baseline through untouched,
 *   so merging an empty override is the identity
 */
func DeepMerge(baseline, override models.ConfigTree) models.ConfigTree {
	merged := models.Clone(baseline)
	if merged == nil {
		merged = models.ConfigTree{}
	}
	for key, overrideValue := range override {
		baseTree, baseIsTree := merged[key].(models.ConfigTree)
		overrideTree, overrideIsTree := overrideValue.(models.ConfigTree)
		if baseIsTree && overrideIsTree {
			merged[key] = DeepMerge(baseTree, overrideTree)
		} else {
			// copied, not aliased: mutating the merged tree must never
			// reach back into the override table
			merged[key] = models.CloneValue(overrideValue)
		}
	}
	return merged
}

/**
 * Compose selects the override table entry for the requested profile and
 * deep-merges it onto the baseline.
 * @param {models.ProfileType} profile - Profile selector
 * @param {models.ConfigTree} baseline - Shared defaults
 * @param {map[models.ProfileType]models.ConfigTree} overrides - Per-profile
 *   override tables
 * @returns {models.ConfigTree, error} Composed tree, or an unknown-profile
 *   validation error when the selector has no table entry (never a silent
 *   fallback)
 * @description
 * - Pure and deterministic: identical inputs always produce structurally
 *   identical trees
 */
func Compose(profile models.ProfileType, baseline models.ConfigTree, overrides map[models.ProfileType]models.ConfigTree) (models.ConfigTree, error) {
	table, ok := overrides[profile]
	if !ok {
		return nil, models.ValidationError{
			Kind:    models.ErrUnknownProfile,
			Keys:    []string{string(profile)},
			Message: fmt.Sprintf("no override table registered for profile %q", profile),
		}
	}
	return DeepMerge(baseline, table), nil
}

/**
 * CheckOverrideKeys verifies the profile invariant that every key present
 * in an override tree exists in the baseline; profiles must not introduce
 * unknown settings silently.
 * @returns {[]string} Dotted paths of offending keys, empty when clean
 */
func CheckOverrideKeys(baseline, override models.ConfigTree) []string {
	return checkKeys(baseline, override, "")
}

func checkKeys(baseline, override models.ConfigTree, prefix string) []string {
	var unknown []string
	for key, overrideValue := range override {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		baseValue, exists := baseline[key]
		if !exists {
			unknown = append(unknown, path)
			continue
		}
		baseTree, baseIsTree := baseValue.(models.ConfigTree)
		overrideTree, overrideIsTree := overrideValue.(models.ConfigTree)
		if baseIsTree && overrideIsTree {
			unknown = append(unknown, checkKeys(baseTree, overrideTree, path)...)
		}
	}
	return unknown
}
