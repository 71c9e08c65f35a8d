package service

import (
	"context"
	"fmt"

	"github.com/praxisgrc/praxis/internal/application/dto"
	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/internal/domain/service"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// ClassificationAppService serves the risk classification surface, which is
// independent of the analytics dispatcher: it only needs the tenant's
// resolved risk matrix.
type ClassificationAppService interface {
	// ClassifyRisk resolves the tenant's matrix and classifies one
	// (probability, impact) pair against it.
	ClassifyRisk(ctx context.Context, req *dto.ClassifyRiskRequest) (*dto.ClassifyRiskResponse, error)

	// GetMatrix returns the tenant's resolved risk matrix configuration,
	// including whether the built-in defaults were substituted.
	GetMatrix(ctx context.Context, tenantID string) (*models.RiskMatrixConfig, error)
}

type classificationAppServiceImpl struct {
	tenantRepo repository.TenantSettingsRepository
	resolver   *service.MatrixResolver
	logger     logger.Logger
}

// NewClassificationAppService creates the classification service.
func NewClassificationAppService(
	tenantRepo repository.TenantSettingsRepository,
	resolver *service.MatrixResolver,
	log logger.Logger,
) ClassificationAppService {
	return &classificationAppServiceImpl{
		tenantRepo: tenantRepo,
		resolver:   resolver,
		logger:     log.WithComponent("classification_app_service"),
	}
}

// ClassifyRisk classifies a (probability, impact) pair for a tenant.
func (s *classificationAppServiceImpl) ClassifyRisk(ctx context.Context, req *dto.ClassifyRiskRequest) (*dto.ClassifyRiskResponse, error) {
	cfg, err := s.resolveMatrix(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	// The static binding bound covers the largest matrix; the tenant's own
	// dimension can be smaller.
	dim := cfg.Dimension()
	if req.Probability > dim || req.Impact > dim {
		return nil, errors.ErrInvalidRequest(
			fmt.Sprintf("probability and impact must be between 1 and %d for a %s matrix", dim, cfg.Type)).
			WithMetadata("matrix_type", string(cfg.Type)).
			WithMetadata("probability", req.Probability).
			WithMetadata("impact", req.Impact)
	}

	classification := service.ClassifyRisk(cfg, req.Probability, req.Impact)

	return &dto.ClassifyRiskResponse{
		TenantID:     req.TenantID,
		Score:        classification.Score,
		Label:        string(classification.Label),
		MatrixType:   string(classification.MatrixType),
		UsedDefaults: cfg.UsedDefaults,
	}, nil
}

// GetMatrix returns the tenant's resolved matrix.
func (s *classificationAppServiceImpl) GetMatrix(ctx context.Context, tenantID string) (*models.RiskMatrixConfig, error) {
	return s.resolveMatrix(ctx, tenantID)
}

func (s *classificationAppServiceImpl) resolveMatrix(ctx context.Context, tenantID string) (*models.RiskMatrixConfig, error) {
	settings, err := s.tenantRepo.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(ctx, tenantID, settings), nil
}
