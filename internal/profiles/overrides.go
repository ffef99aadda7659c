package profiles

import "sysconf-keeper/internal/models"

/**
 * Overrides returns the shipped per-profile override tables.
 * @returns {map[models.ProfileType]models.ConfigTree} Fresh copies keyed
 *   by profile selector
 * @description
 * - minimal: headless baseline, everything optional switched off
 * - workstation: interactive desktop posture, proxy and power tuning on
 * - server: always-on posture with monitoring, backup and intrusion
 *   prevention
 * - Every key here must exist in Baseline(); the unit tests hold the
 *   tables to that invariant
 */
func Overrides() map[models.ProfileType]models.ConfigTree {
	return map[models.ProfileType]models.ConfigTree{
		models.ProfileMinimal: {
			"performance": models.ConfigTree{
				"cpu_governor": "powersave",
				"zram_percent": 0,
			},
			"services": models.ConfigTree{
				"firewall": models.ConfigTree{"enable": false},
			},
		},
		models.ProfileWorkstation: {
			"performance": models.ConfigTree{
				"swappiness":   10,
				"zram_percent": 50,
			},
			"services": models.ConfigTree{
				"proxy":      models.ConfigTree{"enable": true},
				"monitoring": models.ConfigTree{"enable": true},
				"tlp":        models.ConfigTree{"enable": true},
			},
		},
		models.ProfileServer: {
			"performance": models.ConfigTree{
				"cpu_governor": "performance",
				"swappiness":   1,
			},
			"maintenance": models.ConfigTree{
				"gc_schedule":     "daily",
				"backup_max_size": "50G",
			},
			"services": models.ConfigTree{
				"backup":               models.ConfigTree{"enable": true},
				"monitoring":           models.ConfigTree{"enable": true},
				"node_exporter":        models.ConfigTree{"enable": true},
				"intrusion_prevention": models.ConfigTree{"enable": true},
			},
		},
	}
}

/**
 * Descriptions maps each shipped profile to its operator-facing summary.
 */
func Descriptions() map[models.ProfileType]string {
	return map[models.ProfileType]string{
		models.ProfileMinimal:     "Bare system, optional services off, powersave governor",
		models.ProfileWorkstation: "Interactive desktop with proxy, monitoring and power tuning",
		models.ProfileServer:      "Always-on host with backup, monitoring and intrusion prevention",
	}
}
