// Package profiles carries the shipped configuration data: the baseline
// defaults every profile builds on, the per-profile override tables, the
// option schema the validator checks trees against, and the service
// catalog derived from a composed tree.
package profiles

import "sysconf-keeper/internal/models"

/**
 * Baseline returns the shared default settings tree. Profiles override
 * pieces of it; the tree itself is the single source of defaults.
 * @returns {models.ConfigTree} Fresh copy, callers may not mutate shared
 *   state
 */
func Baseline() models.ConfigTree {
	return models.ConfigTree{
		"performance": models.ConfigTree{
			"cpu_governor": "schedutil",
			"io_scheduler": "mq-deadline",
			"swappiness":   60,
			"zram_percent": 25,
		},
		"security": models.ConfigTree{
			"ssh_port":         22,
			"allowed_networks": []string{"192.168.1.0/24"},
			"harden_kernel":    true,
			"firewall_backend": "nftables",
		},
		"network": models.ConfigTree{
			"subnet":          "192.168.1.0/24",
			"proxy_port":      1080,
			"http_proxy_port": 8118,
		},
		"maintenance": models.ConfigTree{
			"gc_schedule":     "weekly",
			"backup_schedule": "daily",
			"backup_max_size": "10G",
			"state_dir":       "/var/lib/sysconf",
		},
		"services": models.ConfigTree{
			"networking":           models.ConfigTree{"enable": true},
			"firewall":             models.ConfigTree{"enable": true},
			"proxy":                models.ConfigTree{"enable": false},
			"backup":               models.ConfigTree{"enable": false},
			"monitoring":           models.ConfigTree{"enable": false},
			"node_exporter":        models.ConfigTree{"enable": false},
			"intrusion_prevention": models.ConfigTree{"enable": false},
			"tlp":                  models.ConfigTree{"enable": false},
			"power_profiles":       models.ConfigTree{"enable": false},
		},
	}
}
