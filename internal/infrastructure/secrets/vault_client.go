// Package secrets provides the optional Vault-backed secrets source.
package secrets

import (
	"context"
	"fmt"

	vault "github.com/hashicorp/vault/api"

	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// VaultClient reads service secrets from HashiCorp Vault's KVv2 engine.
type VaultClient struct {
	client *vault.Client
	cfg    *config.VaultConfig
	logger logger.Logger
}

// NewVaultClient creates and configures the Vault client. Token auth only; an
// AppRole flow would slot in here if the deployment needs it.
func NewVaultClient(cfg *config.VaultConfig, log logger.Logger) (*VaultClient, error) {
	vaultConfig := vault.DefaultConfig()
	vaultConfig.Address = cfg.Address

	client, err := vault.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("create vault client: %w", err)
	}
	client.SetToken(cfg.Token)

	return &VaultClient{
		client: client,
		cfg:    cfg,
		logger: log.WithComponent("vault"),
	}, nil
}

// DatabasePassword fetches the database password from the configured secret
// path.
func (v *VaultClient) DatabasePassword(ctx context.Context) (string, error) {
	secret, err := v.client.KVv2(v.cfg.MountPath).Get(ctx, v.cfg.SecretKey)
	if err != nil {
		return "", fmt.Errorf("read database secret: %w", err)
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("database secret %s/%s is empty", v.cfg.MountPath, v.cfg.SecretKey)
	}

	password, ok := secret.Data["password"].(string)
	if !ok || password == "" {
		return "", fmt.Errorf("database secret %s/%s has no password field", v.cfg.MountPath, v.cfg.SecretKey)
	}

	v.logger.Info(ctx, "Database password loaded from Vault")
	return password, nil
}
