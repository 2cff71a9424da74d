//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateCustomerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return h.generate(t, userID, jwt.RoleCustomer, nil)
}

// GenerateAdminToken issues a token scoped to shopID.
func (h *JWTHelper) GenerateAdminToken(t *testing.T, userID uuid.UUID, shopID uuid.UUID) string {
	t.Helper()
	return h.generate(t, userID, jwt.RoleAdmin, &shopID)
}

func (h *JWTHelper) generate(t *testing.T, userID uuid.UUID, role string, shopID *uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role, shopID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Hour)
	token, err := service.GenerateToken(userID, jwt.RoleCustomer, nil)
	require.NoError(t, err)
	return token
}
