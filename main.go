package main

import (
	"os"

	_ "sysconf-keeper/cmd"
	"sysconf-keeper/cmd/root"
	"sysconf-keeper/internal/config"
	"sysconf-keeper/internal/logger"
)

func main() {
	// server mode mirrors the log to stdout
	isServerMode := len(os.Args) > 1 && os.Args[1] == "server"

	logger.InitLogger(config.Config.Log.Path, config.Config.Log.Level, isServerMode)

	if err := root.RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
	os.Exit(0)
}
