package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/claritax/vatlens/internal/logging"
	"github.com/claritax/vatlens/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
	logLevel     string
	logFormat    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for validating invoices.

The API provides endpoints for:
  - POST /api/v1/validate        - Validate a single invoice
  - POST /api/v1/validate/batch  - Validate a batch of invoices
  - GET  /api/v1/countries       - List supported jurisdictions
  - GET  /health                 - Health check

Examples:
  # Start server on default port
  vatlens serve

  # Start on a custom port with a custom rule table
  vatlens serve --address :9090 --rules custom.yaml

  # Start in debug mode
  vatlens serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 2*time.Minute, "HTTP write timeout")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

func runServe(cmd *cobra.Command, args []string) error {
	table, err := loadRuleTable()
	if err != nil {
		return err
	}

	config := &server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
		Logger:       logging.New(logLevel, logFormat),
		Rules:        table,
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s (%d jurisdictions)\n", serverAddr, table.Len())
	return srv.Run()
}
