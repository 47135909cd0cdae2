package config

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "mongo", cfg.StoreDriver)
	assert.Equal(t, "calo", cfg.MongoDatabase)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, int64(5<<20), cfg.UploadMaxBytes)
	assert.Equal(t, "calo-products", cfg.CloudinaryFolder)
	assert.Equal(t, 10*time.Minute, cfg.CatalogCacheTTL)
	assert.False(t, cfg.AuthConfigured(), "missing credentials must disable login")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "calo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://calo.com.ar,https://admin.calo.com.ar")
	t.Setenv("SMTP_USER", "web@calo.com.ar")
	t.Setenv("SMTP_FROM", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.True(t, cfg.AuthConfigured())
	assert.True(t, cfg.CloudinaryConfigured())
	assert.Equal(t, []string{"https://calo.com.ar", "https://admin.calo.com.ar"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "web@calo.com.ar", cfg.SMTPFrom, "sender defaults to the SMTP user")
}

func TestLoad_RejectsNonPositiveSessionTTL(t *testing.T) {
	for _, hours := range []int{0, -1} {
		t.Setenv("SESSION_TTL_HOURS", strconv.Itoa(hours))
		_, err := Load()
		assert.Error(t, err, "SESSION_TTL_HOURS=%d", hours)
	}
}
