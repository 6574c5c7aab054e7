package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/resume-match-scorer/internal/errors"
	"github.com/gcbaptista/resume-match-scorer/internal/matcher"
	"github.com/gcbaptista/resume-match-scorer/services"
)

// API holds dependencies for API handlers, primarily the match scorer.
type API struct {
	matcher services.Matcher
}

// AnalyzeTextRequest is the JSON body of POST /analyze/text
type AnalyzeTextRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// NewAPI creates a new API handler structure.
func NewAPI(matcher services.Matcher) *API {
	return &API{matcher: matcher}
}

// SetupRoutes defines all the API routes for the match scorer.
func SetupRoutes(router *gin.Engine, matcher services.Matcher) {
	apiHandler := NewAPI(matcher)

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/metrics", apiHandler.GetMetricsHandler)

	router.POST("/extract", apiHandler.ExtractHandler) // PDF -> text

	analyzeRoutes := router.Group("/analyze")
	{
		analyzeRoutes.POST("", apiHandler.AnalyzeHandler)          // multipart resume PDF + job_description
		analyzeRoutes.POST("/text", apiHandler.AnalyzeTextHandler) // JSON resume_text + job_description
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "resume-match-scorer",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// GetMetricsHandler returns analysis counters and the success rate
func (api *API) GetMetricsHandler(c *gin.Context) {
	metrics := api.matcher.Metrics()

	c.JSON(http.StatusOK, gin.H{
		"metrics":      metrics,
		"success_rate": metrics.SuccessRate,
	})
}

// ExtractHandler returns the text of an uploaded resume PDF.
// Form: resume (file)
func (api *API) ExtractHandler(c *gin.Context) {
	pdfBytes, err := readResumeUpload(c)
	if err != nil {
		sendUploadError(c, err)
		return
	}

	if validation := ValidateResumeUpload(pdfBytes); validation.HasErrors() {
		SendMissingInputError(c, validation)
		return
	}

	extraction, err := api.matcher.Extract(pdfBytes)
	if err != nil {
		SendAnalysisError(c, "extraction", err)
		return
	}

	if strings.TrimSpace(extraction.Text) == "" {
		SendAnalysisError(c, "extraction", internalErrors.NewExtractionError(internalErrors.ErrNoExtractableText))
		return
	}

	c.JSON(http.StatusOK, extraction)
}

// AnalyzeHandler scores an uploaded resume PDF against a job description.
// Form: resume (file), job_description (text)
func (api *API) AnalyzeHandler(c *gin.Context) {
	// FormFile parses the whole multipart body, so size errors surface here
	pdfBytes, err := readResumeUpload(c)
	if err != nil {
		sendUploadError(c, err)
		return
	}
	jobDescription := c.PostForm(matcher.FieldJobDescription)

	if validation := ValidateAnalyzeUpload(pdfBytes, jobDescription); validation.HasErrors() {
		SendMissingInputError(c, validation)
		return
	}
	if validation := ValidateTextEncoding(matcher.FieldJobDescription, jobDescription); validation.HasErrors() {
		SendStructuredValidationError(c, validation)
		return
	}

	result, err := api.matcher.AnalyzePDF(pdfBytes, jobDescription)
	if err != nil {
		SendAnalysisError(c, "analysis", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeTextHandler scores already extracted resume text against a job description.
// Request Body: AnalyzeTextRequest
func (api *API) AnalyzeTextHandler(c *gin.Context) {
	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isBodyTooLarge(err) {
			sendUploadError(c, err)
			return
		}
		SendInvalidJSONError(c, err)
		return
	}

	if validation := ValidateAnalyzeTextRequest(req); validation.HasErrors() {
		SendMissingInputError(c, validation)
		return
	}

	result, err := api.matcher.Analyze(req.ResumeText, req.JobDescription)
	if err != nil {
		SendAnalysisError(c, "analysis", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
