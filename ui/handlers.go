package ui

import (
	"errors"
	"net/http"
	"strconv"

	"windfit/app"
	"windfit/domain/core"
	"windfit/domain/wind"

	"github.com/gin-gonic/gin"
)

// assessRequest is one sample submitted for assessment
type assessRequest struct {
	Label    string    `json:"label" binding:"required"`
	Speeds   []float64 `json:"speeds" binding:"required"`
	Strategy string    `json:"strategy"`
}

// batchRequest carries several independent samples
type batchRequest struct {
	Samples  []assessRequest `json:"samples" binding:"required"`
	Strategy string          `json:"strategy"`
}

// batchItem is the per-sample outcome of a batch run
type batchItem struct {
	Label      string           `json:"label"`
	Assessment *wind.Assessment `json:"assessment,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCreateAssessment(c *gin.Context) {
	var req assessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sample := wind.NewSample(req.Label, req.Speeds)
	assessment, err := s.service.Assess(c.Request.Context(), sample, req.Strategy)
	if err != nil {
		s.logger.Warn("assessment of %q failed: %v", req.Label, err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

func (s *Server) handleBatchAssessment(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	samples := make([]wind.Sample, len(req.Samples))
	for i, r := range req.Samples {
		samples[i] = wind.NewSample(r.Label, r.Speeds)
	}

	results := s.service.AssessBatch(c.Request.Context(), samples, req.Strategy)
	items := make([]batchItem, len(results))
	for i, r := range results {
		items[i] = batchItem{Label: r.Label, Assessment: r.Assessment}
		if r.Err != nil {
			items[i].Error = r.Err.Error()
		}
	}

	c.JSON(http.StatusOK, gin.H{"results": items})
}

func (s *Server) handleGetAssessment(c *gin.Context) {
	id, err := core.ParseAssessmentID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment, err := s.service.Get(c.Request.Context(), core.ID(id))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (s *Server) handleListAssessments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	assessments, err := s.service.List(c.Request.Context(), c.Query("label"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": assessments})
}

// statusFor maps domain errors onto HTTP status codes. Sample defects are
// the caller's problem, estimation failures are a property of the data.
func statusFor(err error) int {
	switch {
	case core.IsNotFoundError(err):
		return http.StatusNotFound
	case core.IsSampleError(err), errors.Is(err, app.ErrUnknownStrategy):
		return http.StatusBadRequest
	case core.IsEstimationError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
