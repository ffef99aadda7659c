package server

import (
	"context"
	"fmt"
	"log"

	"sysconf-keeper/cmd/root"
	"sysconf-keeper/controllers"
	"sysconf-keeper/internal/config"
	"sysconf-keeper/internal/middleware"
	"sysconf-keeper/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP service",
	Run: func(cmd *cobra.Command, args []string) {
		if err := startServer(context.Background()); err != nil {
			log.Fatal(err)
		}
	},
}

func startServer(ctx context.Context) error {
	if config.Config.Server.Mode != "" {
		gin.SetMode(config.Config.Server.Mode)
	}
	router := gin.Default()
	router.Use(middleware.MetricsMiddleware())

	system := services.GetSystemService()

	apiController := controllers.NewAPIController(system)
	apiController.RegisterRoutes(router)

	fmt.Printf("Listening on %s\n", config.Config.Server.Address)
	return router.Run(config.Config.Server.Address)
}

func init() {
	root.RootCmd.AddCommand(serverCmd)
}
