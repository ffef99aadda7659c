package controllers

import (
	"errors"
	"net/http"

	"sysconf-keeper/internal/config"
	"sysconf-keeper/internal/models"
	"sysconf-keeper/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIController struct {
	system *services.SystemService
}

/**
 * Create new API controller instance
 * @param {*services.SystemService} system - System service owning the
 *   configuration data and the resolve pipeline
 * @returns {*APIController} New API controller instance
 */
func NewAPIController(system *services.SystemService) *APIController {
	return &APIController{
		system: system,
	}
}

/**
 * Register all API routes to Gin engine
 * @param {*gin.Engine} r - Gin router instance
 * @description
 * - Creates the /sysconf/api/v1 route group
 * - Registers routes for profiles, services, resolution and validation
 * - Serves prometheus metrics on /metrics when enabled
 */
func (a *APIController) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", a.Healthz)
	r.GET("/sysconf/api/v1/profiles", a.ListProfiles)
	r.GET("/sysconf/api/v1/services", a.ListServices)
	r.POST("/sysconf/api/v1/resolve", a.Resolve)
	r.POST("/sysconf/api/v1/validate", a.Validate)
	if config.Config.Metrics.IsEnabled() {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// @Summary Liveness probe
// @Description Reports that the keeper is up and which profiles it knows about
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /healthz [get]
func (a *APIController) Healthz(c *gin.Context) {
	profiles := a.system.Profiles()
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = string(p.Type)
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"profiles": names,
	})
}

// @Summary List registered profiles
// @Description Lists the registered profiles with their override tables
// @Tags Profile
// @Produce json
// @Success 200 {array} models.Profile
// @Router /sysconf/api/v1/profiles [get]
func (a *APIController) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, a.system.Profiles())
}

// @Summary List services for a profile
// @Description Builds the service catalog from the profile's composed tree
// @Tags Service
// @Produce json
// @Param profile query string false "Profile selector (defaults from config)"
// @Success 200 {array} models.ServiceEntry
// @Failure 400 {object} map[string]interface{}
// @Router /sysconf/api/v1/services [get]
func (a *APIController) ListServices(c *gin.Context) {
	raw := c.DefaultQuery("profile", config.Config.Resolve.Profile)
	profile, err := models.ParseProfileType(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "profile.unknown",
			"message": err.Error(),
		})
		return
	}
	catalog, err := a.system.Catalog(profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "profile.unknown",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

type resolveRequest struct {
	Profile string `json:"profile"`
}

// @Summary Resolve a profile
// @Description Composes the profile over the baseline, validates the result and returns the settings tree plus the service startup order
// @Tags Resolve
// @Accept json
// @Produce json
// @Param request body resolveRequest true "Resolve request"
// @Success 200 {object} models.ResolvedConfig
// @Failure 400 {object} map[string]interface{} "Unknown profile"
// @Failure 422 {object} map[string]interface{} "Validation failed; all problems are listed"
// @Router /sysconf/api/v1/resolve [post]
func (a *APIController) Resolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "request.invalid",
			"message": err.Error(),
		})
		return
	}
	if req.Profile == "" {
		req.Profile = config.Config.Resolve.Profile
	}
	profile, err := models.ParseProfileType(req.Profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "profile.unknown",
			"message": err.Error(),
		})
		return
	}

	resolved, err := a.system.Resolve(profile)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":   "config.invalid",
				"errors": verrs,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "profile.unknown",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// @Summary Validate a profile
// @Description Runs every validation check over the profile's composed tree, accumulating all failures instead of stopping at the first
// @Tags Validate
// @Accept json
// @Produce json
// @Param request body resolveRequest true "Validate request"
// @Success 200 {object} map[string]interface{} "Empty error list when the profile is consistent"
// @Failure 400 {object} map[string]interface{} "Unknown profile"
// @Router /sysconf/api/v1/validate [post]
func (a *APIController) Validate(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "request.invalid",
			"message": err.Error(),
		})
		return
	}
	if req.Profile == "" {
		req.Profile = config.Config.Resolve.Profile
	}
	profile, err := models.ParseProfileType(req.Profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "profile.unknown",
			"message": err.Error(),
		})
		return
	}

	errs, err := a.system.ValidateProfile(profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "profile.unknown",
			"message": err.Error(),
		})
		return
	}
	if errs == nil {
		errs = models.ValidationErrors{}
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}
