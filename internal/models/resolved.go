package models

/**
 * ResolvedConfig is the final output handed to the external activation
 * engine: the composed and validated settings tree plus the order in which
 * enabled services must be started.
 * @property {ProfileType} profile - Profile the tree was composed from
 * @property {ConfigTree} tree - Validated settings tree
 * @property {[]string} startupOrder - Enabled services, dependencies first
 * @description
 * - Immutable after validation succeeds; callers never see a
 *   partially-validated tree
 */
type ResolvedConfig struct {
	Profile      ProfileType `json:"profile" yaml:"profile"`
	Tree         ConfigTree  `json:"tree" yaml:"tree"`
	StartupOrder []string    `json:"startupOrder" yaml:"startupOrder"`
}
