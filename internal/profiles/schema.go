package profiles

import (
	"sysconf-keeper/internal/models"
	"sysconf-keeper/internal/option"
)

/**
 * Schema returns the option descriptors keyed by dotted config path.
 * These are what the validator checks composed trees against, and what
 * the merge engine consumes for type-checking and default filling.
 */
func Schema() map[string]*option.Descriptor {
	governor, _ := option.NewEnum("schedutil",
		[]string{"performance", "powersave", "schedutil", "ondemand"},
		"CPU frequency governor applied at boot")
	scheduler, _ := option.NewEnum("mq-deadline",
		[]string{"none", "mq-deadline", "bfq", "kyber"},
		"Block IO scheduler for the root disk")
	backend, _ := option.NewEnum("nftables",
		[]string{"nftables", "iptables"},
		"Firewall backend the ruleset is rendered for")

	schema := map[string]*option.Descriptor{
		"performance.cpu_governor": governor,
		"performance.io_scheduler": scheduler,
		"performance.swappiness":   option.NewPercentage(60, "Kernel vm.swappiness value"),
		"performance.zram_percent": option.NewPercentage(25, "Share of RAM given to the zram swap device"),

		"security.ssh_port":         option.NewPort(22, "Port the SSH daemon listens on"),
		"security.allowed_networks": option.NewStringList([]string{"192.168.1.0/24"}, "Networks allowed to reach management services"),
		"security.harden_kernel":    option.NewBool(true, "Apply the kernel hardening sysctl set"),
		"security.firewall_backend": backend,

		"network.subnet":          option.NewNetwork("192.168.1.0/24", "Primary LAN subnet"),
		"network.proxy_port":      option.NewPort(1080, "SOCKS port claimed by the proxy service"),
		"network.http_proxy_port": option.NewPort(8118, "HTTP port claimed by the proxy service"),

		"maintenance.gc_schedule":     option.NewSchedule("weekly", "When the store garbage collection runs"),
		"maintenance.backup_schedule": option.NewSchedule("daily", "When the backup service runs"),
		"maintenance.backup_max_size": option.NewMemory("10G", "Upper bound on the backup repository size"),
		"maintenance.state_dir":       option.NewPath("/var/lib/sysconf", "Directory for composed output and state"),
	}

	for name := range Baseline()["services"].(models.ConfigTree) {
		schema["services."+name+".enable"] = option.NewBool(false, "Whether the "+name+" service is enabled")
	}
	return schema
}
