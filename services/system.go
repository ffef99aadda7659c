package services

import (
	"time"

	"sysconf-keeper/internal/compose"
	"sysconf-keeper/internal/config"
	"sysconf-keeper/internal/logger"
	"sysconf-keeper/internal/models"
	"sysconf-keeper/internal/option"
	"sysconf-keeper/internal/profiles"
	"sysconf-keeper/internal/validate"
)

/**
 * SystemService owns the configuration data for one host: baseline
 * defaults, profile override tables and the option schema. It runs the
 * resolve pipeline: compose, rebuild the service catalog, validate with
 * accumulation, order the startup sequence.
 * @description
 * - Shipped data applies unless the host carries a system definition
 *   (system-def.json), which replaces baseline and profile tables
 * - The service holds no mutable state; every resolve starts from the
 *   same immutable inputs
 */
type SystemService struct {
	baseline     models.ConfigTree
	overrides    map[models.ProfileType]models.ConfigTree
	descriptions map[models.ProfileType]string
	schema       map[string]*option.Descriptor
}

var systemService *SystemService

/**
 * Get the shared system service instance
 * @returns {*SystemService} Singleton built from shipped data plus the
 *   optional on-disk system definition
 */
func GetSystemService() *SystemService {
	if systemService != nil {
		return systemService
	}
	if err := config.LoadDefinition(); err != nil {
		logger.Warnf("system definition ignored: %v", err)
	}
	systemService = NewSystemService(config.Definition())
	return systemService
}

/**
 * Create a system service
 * @param {*models.SystemDefinition} def - Optional host definition; nil
 *   keeps the shipped baseline and profile tables
 */
func NewSystemService(def *models.SystemDefinition) *SystemService {
	svc := &SystemService{
		baseline:     profiles.Baseline(),
		overrides:    profiles.Overrides(),
		descriptions: profiles.Descriptions(),
		schema:       profiles.Schema(),
	}
	if def != nil {
		if def.Baseline != nil {
			svc.baseline = def.Baseline
		}
		if def.Profiles != nil {
			svc.overrides = def.Profiles
		}
	}
	return svc
}

/**
 * Profiles lists the registered profiles in canonical order.
 */
func (s *SystemService) Profiles() []models.Profile {
	var list []models.Profile
	for _, pt := range models.ProfileTypes() {
		overrides, ok := s.overrides[pt]
		if !ok {
			continue
		}
		list = append(list, models.Profile{
			Type:        pt,
			Description: s.descriptions[pt],
			Overrides:   overrides,
		})
	}
	return list
}

/**
 * Baseline returns a copy of the baseline defaults tree.
 */
func (s *SystemService) Baseline() models.ConfigTree {
	return models.Clone(s.baseline)
}

/**
 * Schema returns the option schema keyed by dotted config path.
 */
func (s *SystemService) Schema() map[string]*option.Descriptor {
	return s.schema
}

/**
 * Catalog builds the service entries for the given profile's composed
 * tree.
 * @param {models.ProfileType} profile - Profile selector
 * @returns {models.ServiceCatalog, error} Entries in declaration order,
 *   or the unknown-profile error from composition
 */
func (s *SystemService) Catalog(profile models.ProfileType) (models.ServiceCatalog, error) {
	tree, err := compose.Compose(profile, s.baseline, s.overrides)
	if err != nil {
		return nil, err
	}
	return profiles.BuildCatalog(tree), nil
}

/**
 * ValidateProfile composes the profile and runs every validation check,
 * accumulating all failures.
 * @param {models.ProfileType} profile - Profile selector
 * @returns {models.ValidationErrors, error} All problems found (empty on
 *   success), or the unknown-profile error when composition itself fails
 */
func (s *SystemService) ValidateProfile(profile models.ProfileType) (models.ValidationErrors, error) {
	tree, err := compose.Compose(profile, s.baseline, s.overrides)
	if err != nil {
		return nil, err
	}
	catalog := profiles.BuildCatalog(tree)
	return validate.Validate(tree, catalog, s.schema), nil
}

/**
 * Resolve runs the full pipeline for one profile.
 * @param {models.ProfileType} profile - Profile selector
 * @returns {*models.ResolvedConfig, error} Composed tree plus startup
 *   order on success; on failure the accumulated validation errors (or
 *   the unknown-profile error), never a partial result
 */
func (s *SystemService) Resolve(profile models.ProfileType) (*models.ResolvedConfig, error) {
	start := time.Now()

	tree, err := compose.Compose(profile, s.baseline, s.overrides)
	if err != nil {
		RecordResolution(string(profile), "unknown_profile", time.Since(start).Seconds())
		return nil, err
	}

	catalog := profiles.BuildCatalog(tree)
	if errs := validate.Validate(tree, catalog, s.schema); len(errs) > 0 {
		for _, e := range errs {
			RecordValidationFailure(string(e.Kind))
		}
		RecordResolution(string(profile), "invalid", time.Since(start).Seconds())
		return nil, errs
	}

	order, cycleErr := validate.ResolveDependencyOrder(catalog.Enabled(), catalog.DependencyMap())
	if cycleErr != nil {
		// unreachable after a clean Validate, kept as a guard
		RecordResolution(string(profile), "invalid", time.Since(start).Seconds())
		return nil, models.ValidationErrors{*cycleErr}
	}

	RecordResolution(string(profile), "ok", time.Since(start).Seconds())
	logger.Infof("resolved profile %s: %d services enabled", profile, len(order))
	return &models.ResolvedConfig{
		Profile:      profile,
		Tree:         tree,
		StartupOrder: order,
	}, nil
}
