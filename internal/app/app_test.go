package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/config"
	"worktime/internal/logger"
	"worktime/internal/models"
	"worktime/internal/password"
)

func testConfig(t *testing.T, hasher string) *config.Config {
	return &config.Config{
		DatabaseURL:    filepath.Join(t.TempDir(), "worktime.db"),
		LogLevel:       "error",
		Location:       time.UTC,
		PasswordHasher: hasher,
		DeriveHours:    true,
	}
}

func TestNew_SeedAndLogin(t *testing.T) {
	a, err := New(testConfig(t, "bcrypt"), logger.Discard())
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Seed())

	principal, err := a.Services.Auth.Authenticate("smirnov", "adm44")
	require.NoError(t, err)
	assert.True(t, principal.Roles.Has(models.RoleAdmin))
	assert.True(t, password.IsBcrypt(principal.Account.PasswordHash))

	entry, err := a.Services.Tracking.MarkTimeEntry(principal.EmployeeID(), models.EventIn, "test")
	require.NoError(t, err)
	assert.NotZero(t, entry.WorkDayID)
}

func TestNew_RejectsUnknownHasher(t *testing.T) {
	_, err := New(testConfig(t, "md5"), logger.Discard())
	assert.Error(t, err)
}
