package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praxisgrc/praxis/internal/application/dto"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/errors"
)

// sendError writes the uniform error envelope with the status mapped from the
// application error code.
func sendError(c *gin.Context, err error) {
	traceID := c.GetString(string(constants.ContextKeyRequestID))
	c.JSON(errors.HTTPStatusOf(err), dto.NewErrorEnvelope(err, traceID))
}

func sendJSON(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// authorizedTenant enforces the tenant scope established by the auth
// middleware. An empty scope means auth is disabled and every tenant is
// reachable.
func authorizedTenant(c *gin.Context, tenantID string) error {
	scope := c.GetString(string(constants.ContextKeyTenantID))
	if scope != "" && scope != tenantID {
		return errors.ErrTenantForbidden(tenantID)
	}
	return nil
}
