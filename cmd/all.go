package cmd

import (
	_ "sysconf-keeper/cmd/profile"
	_ "sysconf-keeper/cmd/resolve"
	_ "sysconf-keeper/cmd/root"
	_ "sysconf-keeper/cmd/server"
	_ "sysconf-keeper/cmd/service"
	_ "sysconf-keeper/cmd/validate"
)
