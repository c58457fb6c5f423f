package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is the pre-Go-1.24 equivalent of t.Chdir.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: ":9090"
  app_name: "Cadastro Municipal"
database:
  host: "db.interna"
  port: 5432
  user: "cadastro"
  dbname: "cadastro_municipal"
  sslmode: "disable"
session:
  cookie_name: "sessao_teste"
  ttl: "2h"
  secure: true
seed:
  admin_email: "admin@prefeitura.gov.br"
  admin_password: "mudar123"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	chdir(t, dir)

	cfg := LoadConfig()

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "Cadastro Municipal", cfg.Server.AppName)
	assert.Equal(t, "db.interna", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "sessao_teste", cfg.Session.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Session.Secure)
	assert.Equal(t, "admin@prefeitura.gov.br", cfg.Seed.AdminEmail)
}

func TestLoadConfigSessionDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: ":8080"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	chdir(t, dir)

	cfg := LoadConfig()

	assert.Equal(t, "cadastro_session", cfg.Session.CookieName)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
}
