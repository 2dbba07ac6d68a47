package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cfg := &Config{
		SupabaseURL:     "https://example.supabase.co",
		SupabaseAnonKey: "anon-key",
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingSupabaseURL(t *testing.T) {
	cfg := &Config{SupabaseAnonKey: "anon-key"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingAnonKey(t *testing.T) {
	cfg := &Config{SupabaseURL: "https://example.supabase.co"}
	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "uploaded-photos", cfg.SupabaseStorageBucket)
	assert.Equal(t, "uk", cfg.DefaultLanguage)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
