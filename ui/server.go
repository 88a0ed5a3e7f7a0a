package ui

import (
	"windfit/app"
	"windfit/internal"

	"github.com/gin-gonic/gin"
)

// Server exposes the assessment pipeline over HTTP
type Server struct {
	router  *gin.Engine
	service *app.AssessmentService
	logger  *internal.Logger
}

// NewServer wires the routes
func NewServer(service *app.AssessmentService, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	s := &Server{
		router:  gin.New(),
		service: service,
		logger:  logger,
	}
	s.router.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/assessments", s.handleCreateAssessment)
		api.POST("/assessments/batch", s.handleBatchAssessment)
		api.GET("/assessments", s.handleListAssessments)
		api.GET("/assessments/:id", s.handleGetAssessment)
	}
}

// Router returns the underlying engine, used by tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the given port
func (s *Server) Run(port string) error {
	s.logger.Info("listening on :%s", port)
	return s.router.Run(":" + port)
}
