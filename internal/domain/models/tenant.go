// Package models defines the domain models for the Praxis GRC analytics service.
package models

import (
	"encoding/json"
	"time"
)

// TenantStatus indicates whether a tenant partition is serviceable.
type TenantStatus string

const (
	// TenantStatusActive indicates the tenant accepts analysis requests
	TenantStatusActive TenantStatus = "active"

	// TenantStatusSuspended indicates the tenant is temporarily blocked
	TenantStatusSuspended TenantStatus = "suspended"
)

// Tenant represents an isolated customer partition. All assessment data,
// snapshots and risk-matrix configuration are scoped to exactly one tenant;
// query scoping by tenant id is enforced by the data-access layer.
type Tenant struct {
	TenantID   string       `json:"tenant_id" gorm:"column:tenant_id;primaryKey"`
	TenantName string       `json:"tenant_name" gorm:"column:tenant_name"`
	Industry   string       `json:"industry" gorm:"column:industry"`
	Status     TenantStatus `json:"status" gorm:"column:status"`

	// Settings is the tenant's raw settings document, including the optional
	// risk_matrix block. It stays loosely typed at rest; the matrix resolver
	// produces the validated RiskMatrixConfig from it at the boundary.
	Settings json.RawMessage `json:"settings" gorm:"column:settings;type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName maps the model to its table.
func (Tenant) TableName() string {
	return "tenants"
}

// IsActive reports whether the tenant may be served.
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}
