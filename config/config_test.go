package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "wallet_verification", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 1, cfg.Crypto.ActiveVersion)
	assert.Equal(t, 5*time.Second, cfg.Verifier.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9999
database:
  host: db.internal
  dbname: walletgate
crypto:
  active_version: 2
  keys:
    "1": old-secret
    "2": 000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f
verifier:
  url: http://crypto.internal/verify
log:
  level: debug
  pretty: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 2, cfg.Crypto.ActiveVersion)
	assert.Equal(t, "old-secret", cfg.Crypto.Keys["1"])
	assert.Len(t, cfg.Crypto.Keys["2"], 64)
	assert.Equal(t, "http://crypto.internal/verify", cfg.Verifier.URL)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WVG_DATABASE_HOST", "env-db")
	t.Setenv("WVG_SERVER_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-db", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestCryptoConfig_KeyRingSecrets(t *testing.T) {
	c := CryptoConfig{
		Keys:          map[string]string{"1": "old-secret", "2": "new-secret"},
		ActiveVersion: 2,
	}

	secrets, active, err := c.KeyRingSecrets()

	require.NoError(t, err)
	assert.Equal(t, byte(2), active)
	assert.Equal(t, "old-secret", secrets[1])
	assert.Equal(t, "new-secret", secrets[2])
}

func TestCryptoConfig_KeyRingSecrets_BadVersion(t *testing.T) {
	c := CryptoConfig{
		Keys:          map[string]string{"one": "secret"},
		ActiveVersion: 1,
	}

	_, _, err := c.KeyRingSecrets()

	assert.Error(t, err)
}

func TestCryptoConfig_KeyRingSecrets_ActiveOutOfRange(t *testing.T) {
	c := CryptoConfig{
		Keys:          map[string]string{"1": "secret"},
		ActiveVersion: 300,
	}

	_, _, err := c.KeyRingSecrets()

	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "walletgate", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/walletgate?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
