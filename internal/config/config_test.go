package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("JWT_SECRET", "s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestDSN(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "meals")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "mealbase")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "host=db.internal user=meals password=pw dbname=mealbase port=5433 sslmode=require", cfg.DSN())
}
