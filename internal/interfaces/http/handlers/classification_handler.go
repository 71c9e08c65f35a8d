package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/praxisgrc/praxis/internal/application/dto"
	"github.com/praxisgrc/praxis/internal/application/service"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// ClassificationObserver records classification outcomes for monitoring.
type ClassificationObserver interface {
	RecordClassification(matrixType string, usedDefaults bool)
}

// ClassificationHandler handles HTTP requests for risk classification and
// matrix inspection.
type ClassificationHandler struct {
	classification service.ClassificationAppService
	observer       ClassificationObserver
	log            logger.Logger
}

// NewClassificationHandler creates a new ClassificationHandler.
func NewClassificationHandler(
	classification service.ClassificationAppService,
	observer ClassificationObserver,
	log logger.Logger,
) *ClassificationHandler {
	return &ClassificationHandler{
		classification: classification,
		observer:       observer,
		log:            log.WithComponent("classification_handler"),
	}
}

// Classify resolves the tenant matrix and labels one (probability, impact)
// pair.
func (h *ClassificationHandler) Classify(c *gin.Context) {
	var req dto.ClassifyRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, errors.ErrInvalidRequest("malformed classification request").WithCause(err))
		return
	}

	if err := authorizedTenant(c, req.TenantID); err != nil {
		sendError(c, err)
		return
	}

	result, err := h.classification.ClassifyRisk(c.Request.Context(), &req)
	if err != nil {
		sendError(c, err)
		return
	}

	if h.observer != nil {
		h.observer.RecordClassification(result.MatrixType, result.UsedDefaults)
	}
	sendJSON(c, result)
}

// Matrix returns the matrix configuration the tenant classifies with.
func (h *ClassificationHandler) Matrix(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	if tenantID == "" {
		sendError(c, errors.ErrInvalidRequest("tenant_id is required"))
		return
	}

	if err := authorizedTenant(c, tenantID); err != nil {
		sendError(c, err)
		return
	}

	matrix, err := h.classification.GetMatrix(c.Request.Context(), tenantID)
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, gin.H{
		"success":   true,
		"tenant_id": tenantID,
		"matrix":    matrix,
	})
}
