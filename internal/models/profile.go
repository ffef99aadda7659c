package models

import "fmt"

/**
 * ProfileType selects one of the fixed set of shipped profiles.
 */
type ProfileType string

const (
	ProfileMinimal     ProfileType = "minimal"
	ProfileWorkstation ProfileType = "workstation"
	ProfileServer      ProfileType = "server"
)

/**
 * ProfileTypes lists the valid profile selectors in their canonical order.
 */
func ProfileTypes() []ProfileType {
	return []ProfileType{ProfileMinimal, ProfileWorkstation, ProfileServer}
}

/**
 * ParseProfileType converts a raw selector string into a ProfileType.
 * @param {string} raw - Selector supplied by CLI flag or API request
 * @returns {ProfileType, error} Parsed type, or an error for anything
 *   outside the fixed enumeration (never a silent fallback)
 */
func ParseProfileType(raw string) (ProfileType, error) {
	switch ProfileType(raw) {
	case ProfileMinimal, ProfileWorkstation, ProfileServer:
		return ProfileType(raw), nil
	}
	return "", fmt.Errorf("unknown profile %q (expected minimal, workstation or server)", raw)
}

/**
 * Profile is a named bundle of parameter overrides applied over the
 * baseline defaults at composition time.
 * @property {ProfileType} type - Profile selector
 * @property {string} description - Operator-facing summary
 * @property {ConfigTree} overrides - Nested category -> parameter -> value
 *   override map; every key must exist in the baseline tree
 */
type Profile struct {
	Type        ProfileType `mapstructure:"type" json:"type"`
	Description string      `mapstructure:"description" json:"description,omitempty"`
	Overrides   ConfigTree  `mapstructure:"overrides" json:"overrides"`
}
