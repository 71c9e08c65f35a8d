package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/logger"
)

const testSigningSecret = "unit-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authRouter(cfg *config.AuthConfig) *gin.Engine {
	engine := gin.New()
	engine.Use(RequireTenantScope(cfg, logger.NewNoopLogger()))
	engine.GET("/scoped", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tenant": c.GetString(string(constants.ContextKeyTenantID))})
	})
	return engine
}

func doGet(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRequireTenantScope_DisabledPassesThrough(t *testing.T) {
	engine := authRouter(&config.AuthConfig{Enabled: false})

	rec := doGet(engine, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tenant":""`)
}

func TestRequireTenantScope_MissingToken(t *testing.T) {
	engine := authRouter(&config.AuthConfig{Enabled: true, SigningSecret: testSigningSecret})

	rec := doGet(engine, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestRequireTenantScope_ValidTokenEstablishesScope(t *testing.T) {
	engine := authRouter(&config.AuthConfig{Enabled: true, SigningSecret: testSigningSecret})
	token := signToken(t, testSigningSecret, jwt.MapClaims{
		"tenant_id": "tenant-42",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	rec := doGet(engine, "Bearer "+token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tenant":"tenant-42"`)
}

func TestRequireTenantScope_WrongSecret(t *testing.T) {
	engine := authRouter(&config.AuthConfig{Enabled: true, SigningSecret: testSigningSecret})
	token := signToken(t, "some-other-secret", jwt.MapClaims{
		"tenant_id": "tenant-42",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	rec := doGet(engine, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireTenantScope_ExpiredToken(t *testing.T) {
	engine := authRouter(&config.AuthConfig{Enabled: true, SigningSecret: testSigningSecret})
	token := signToken(t, testSigningSecret, jwt.MapClaims{
		"tenant_id": "tenant-42",
		"exp":       time.Now().Add(-time.Minute).Unix(),
	})

	rec := doGet(engine, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireTenantScope_MissingTenantClaim(t *testing.T) {
	engine := authRouter(&config.AuthConfig{Enabled: true, SigningSecret: testSigningSecret})
	token := signToken(t, testSigningSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec := doGet(engine, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireTenantScope_IssuerMismatch(t *testing.T) {
	engine := authRouter(&config.AuthConfig{
		Enabled:       true,
		SigningSecret: testSigningSecret,
		Issuer:        "praxis-analytics",
	})
	token := signToken(t, testSigningSecret, jwt.MapClaims{
		"tenant_id": "tenant-42",
		"iss":       "someone-else",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	rec := doGet(engine, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractBearer(t *testing.T) {
	assert.Equal(t, "abc", extractBearer("Bearer abc"))
	assert.Equal(t, "abc", extractBearer("bearer abc"))
	assert.Equal(t, "", extractBearer(""))
	assert.Equal(t, "", extractBearer("Basic abc"))
	assert.Equal(t, "", extractBearer("Bearer"))
}
