package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/claritax/vatlens/internal/engine"
	"github.com/claritax/vatlens/internal/model"
	"github.com/claritax/vatlens/internal/rules"
)

// maxBatchSize caps one batch request; larger imports should be chunked.
const maxBatchSize = 5000

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	Logger       *slog.Logger
	Rules        *rules.Table
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	table     *rules.Table
	validator *engine.Validator
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	table := config.Rules
	if table == nil {
		table = rules.Default()
	}

	var opts []engine.Option
	if config.Logger != nil {
		opts = append(opts, engine.WithLogger(config.Logger))
	}
	validator := engine.NewValidator(table, opts...)

	s := &Server{
		config:    config,
		router:    router,
		table:     table,
		validator: validator,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/validate", s.handleValidate)
		v1.POST("/validate/batch", s.handleValidateBatch)
		v1.GET("/countries", s.handleCountries)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	var inv model.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid invoice payload",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, s.validator.Validate(inv))
}

func (s *Server) handleValidateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid batch payload",
			Details: err.Error(),
		})
		return
	}

	if len(req.Invoices) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty batch"})
		return
	}
	if len(req.Invoices) > maxBatchSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: "batch too large, split into smaller chunks",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	results := make([]model.ValidationResult, len(req.Invoices))
	invalid := 0
	for i, inv := range req.Invoices {
		if ctx.Err() != nil {
			c.JSON(http.StatusRequestTimeout, ErrorResponse{Error: "batch validation timed out"})
			return
		}
		results[i] = s.validator.Validate(inv)
		if !results[i].Valid {
			invalid++
		}
	}

	c.JSON(http.StatusOK, BatchResponse{
		Results:      results,
		Total:        len(results),
		InvalidCount: invalid,
	})
}

func (s *Server) handleCountries(c *gin.Context) {
	countries := s.table.Countries()
	infos := make([]CountryInfo, 0, len(countries))
	for _, country := range countries {
		rs, ok := s.table.Rates(country)
		if !ok {
			continue
		}
		infos = append(infos, CountryInfo{Country: country, Rates: rs})
	}
	c.JSON(http.StatusOK, CountriesResponse{Countries: infos})
}
