package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/besskit/bess-calculator/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sizing engine as an HTTP API",
	Long: `Serve starts the HTTP API.

Environment variables (a .env file is loaded when present):
  API_PORT  Listen port (default: 8080)
  API_ENV   Set to "production" to disable debug logging`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err == nil {
			log.Printf("Loaded environment from .env")
		}

		engine, err := loadEngine()
		if err != nil {
			return err
		}

		port := servePort
		if port == "" {
			port = os.Getenv("API_PORT")
		}
		if port == "" {
			port = "8080"
		}

		router := server.NewRouter(engine)
		addr := fmt.Sprintf(":%s", port)
		log.Printf("Starting API server on %s", addr)
		return router.Run(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides API_PORT)")
}
