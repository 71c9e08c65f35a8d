// Package repository defines the data-access interfaces consumed by the
// analytics core. Implementations live under internal/infrastructure; the
// core performs no retries and holds no connection state of its own. Every
// query is scoped by tenant id; that isolation is a precondition enforced
// here, not in the analytics components.
package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/praxisgrc/praxis/internal/domain/models"
)

// TimeRange optionally bounds a query to [Start, End]. A nil bound is open.
type TimeRange struct {
	Start *time.Time
	End   *time.Time
}

// TenantSettingsRepository is the key-value settings lookup for a tenant's
// raw settings document.
type TenantSettingsRepository interface {
	// GetTenant returns the tenant row, or a not_found error.
	GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error)

	// GetSettings returns the tenant's raw settings JSON. A missing settings
	// document is returned as nil with no error; the matrix resolver degrades
	// to defaults in that case.
	GetSettings(ctx context.Context, tenantID string) (json.RawMessage, error)
}

// AssessmentRepository is the relational query surface for assessments with
// their nested control responses.
type AssessmentRepository interface {
	// ListByTenant returns the tenant's assessments with responses preloaded,
	// optionally bounded by creation time, ordered by created_at.
	ListByTenant(ctx context.Context, tenantID string, tr *TimeRange) ([]models.AssessmentRecord, error)
}

// SnapshotRepository is the append-only analytics snapshot store.
type SnapshotRepository interface {
	// ListByTenant returns snapshot history ordered by calculated_at ascending,
	// optionally bounded by calculated_at.
	ListByTenant(ctx context.Context, tenantID string, tr *TimeRange) ([]models.AnalyticsSnapshot, error)

	// Append persists a new snapshot. Snapshots are never updated or deleted.
	Append(ctx context.Context, snapshot *models.AnalyticsSnapshot) error
}

// BenchmarkRepository serves the static, periodically refreshed industry
// baseline tables.
type BenchmarkRepository interface {
	// GetByIndustry returns the industry's metric → average table. An unknown
	// industry yields an empty table, not an error.
	GetByIndustry(ctx context.Context, industry string) (models.BenchmarkTable, error)

	// Upsert refreshes one baseline row. Used by the admin CLI seeder.
	Upsert(ctx context.Context, ref *models.BenchmarkReference) error
}
