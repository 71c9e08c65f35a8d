package handlers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/praxisgrc/praxis/internal/application/dto"
	"github.com/praxisgrc/praxis/internal/application/service"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// AnalyticsHandler handles HTTP requests for the analytics dispatcher.
type AnalyticsHandler struct {
	analytics service.AnalyticsAppService
	log       logger.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics service.AnalyticsAppService, log logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		log:       log.WithComponent("analytics_handler"),
	}
}

// Run executes one analysis and returns its envelope.
func (h *AnalyticsHandler) Run(c *gin.Context) {
	var req dto.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, bindingError(err, &req))
		return
	}

	if err := authorizedTenant(c, req.TenantID); err != nil {
		sendError(c, err)
		return
	}

	result, err := h.analytics.RunAnalysis(c.Request.Context(), &req)
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, result)
}

// bindingError maps validation failures to application errors. A failed
// analysis_type rule keeps its dedicated error code so callers can tell an
// unknown selector apart from a malformed request.
func bindingError(err error, req *dto.AnalysisRequest) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "analysis_type" {
				return errors.ErrUnknownAnalysisType(req.AnalysisType)
			}
		}
	}
	return errors.ErrInvalidRequest("malformed analysis request").WithCause(err)
}
