package services

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"sysconf-keeper/internal/models"
)

/**
 * Encode a resolved configuration for the activation engine
 * @param {*models.ResolvedConfig} resolved - Pipeline output
 * @param {string} format - "json" or "yaml"
 * @returns {[]byte, error} Serialized document
 */
func EncodeResolved(resolved *models.ResolvedConfig, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(resolved, "", "  ")
	case "yaml":
		return yaml.Marshal(resolved)
	default:
		return nil, fmt.Errorf("unsupported output format %q (expected json or yaml)", format)
	}
}
