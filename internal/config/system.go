package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sysconf-keeper/internal/env"
	"sysconf-keeper/internal/logger"
	"sysconf-keeper/internal/models"
)

func definitionPath() string {
	return filepath.Join(env.SysconfDir, "share", "system-def.json")
}

func loadLocalDefinition(fname string) (*models.SystemDefinition, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("load 'system-def.json' failed: %v", err)
	}
	var def models.SystemDefinition
	if err := json.Unmarshal(bytes, &def); err != nil {
		return nil, fmt.Errorf("unmarshal 'system-def.json' failed: %v", err)
	}
	return &def, nil
}

var definition *models.SystemDefinition

/**
 * Load the on-disk system definition, once
 * @returns {error} Load or parse failure
 * @description
 * - A missing file is normal: the shipped baseline and profile tables
 *   apply, and no error is returned
 */
func LoadDefinition() error {
	if definition != nil {
		return nil
	}
	fname := definitionPath()
	if _, err := os.Stat(fname); os.IsNotExist(err) {
		return nil
	}
	def, err := loadLocalDefinition(fname)
	if err != nil {
		logger.Errorf("Load failed: %v", err)
		return err
	}
	definition = def
	return nil
}

/**
 * Definition returns the loaded system definition, nil when the host has
 * none.
 */
func Definition() *models.SystemDefinition {
	return definition
}
