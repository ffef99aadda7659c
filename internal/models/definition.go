package models

/**
 * SystemDefinition is the optional on-disk system definition
 * (system-def.json). When present it replaces the shipped baseline and
 * profile tables, letting a host pin its own defaults without rebuilding.
 * @property {string} configuration - Definition format version
 * @property {string} platform - Target platform label
 * @property {ConfigTree} baseline - Replacement baseline defaults
 * @property {map[ProfileType]ConfigTree} profiles - Replacement override
 *   tables keyed by profile selector
 */
type SystemDefinition struct {
	Configuration string                     `json:"configuration"`
	Platform      string                     `json:"platform,omitempty"`
	Baseline      ConfigTree                 `json:"baseline,omitempty"`
	Profiles      map[ProfileType]ConfigTree `json:"profiles,omitempty"`
}
