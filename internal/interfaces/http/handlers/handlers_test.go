package handlers_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/praxisgrc/praxis/internal/application/dto"
	"github.com/praxisgrc/praxis/internal/domain/models"
	httpiface "github.com/praxisgrc/praxis/internal/interfaces/http"
	"github.com/praxisgrc/praxis/pkg/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
	httpiface.RegisterValidators()
}

type mockAnalyticsService struct {
	mock.Mock
}

func (m *mockAnalyticsService) RunAnalysis(ctx context.Context, req *dto.AnalysisRequest) (*dto.AnalysisResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnalysisResponse), args.Error(1)
}

type mockClassificationService struct {
	mock.Mock
}

func (m *mockClassificationService) ClassifyRisk(ctx context.Context, req *dto.ClassifyRiskRequest) (*dto.ClassifyRiskResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClassifyRiskResponse), args.Error(1)
}

func (m *mockClassificationService) GetMatrix(ctx context.Context, tenantID string) (*models.RiskMatrixConfig, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RiskMatrixConfig), args.Error(1)
}

type stubClassificationObserver struct {
	matrixTypes  []string
	defaultsUsed int
}

func (s *stubClassificationObserver) RecordClassification(matrixType string, usedDefaults bool) {
	s.matrixTypes = append(s.matrixTypes, matrixType)
	if usedDefaults {
		s.defaultsUsed++
	}
}

// withTenantScope simulates the auth middleware establishing a tenant scope.
func withTenantScope(tenantID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(constants.ContextKeyTenantID), tenantID)
		c.Next()
	}
}
