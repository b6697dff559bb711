package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/logger"
	"worktime/internal/models"
	"worktime/internal/password"
)

func TestWithForeignKeys(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"worktime.db", "file:worktime.db?_foreign_keys=on"},
		{"file:x.db?mode=memory", "file:x.db?mode=memory&_foreign_keys=on"},
		{"file:x.db", "file:x.db?_foreign_keys=on"},
		{"file:x.db?_foreign_keys=off", "file:x.db?_foreign_keys=off"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, withForeignKeys(tt.dsn), tt.dsn)
	}
}

func TestMigrateAndSeed(t *testing.T) {
	db, err := OpenInMemory(t.Name(), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Seed(db, password.SHA256Hasher{}, logger.Discard()))

	counts := map[interface{}]int64{
		&models.Employee{}:    4,
		&models.Role{}:        4,
		&models.UserAccount{}: 4,
		&models.UserRole{}:    4,
		&models.AbsenceType{}: 4,
		&models.WorkDay{}:     4,
		&models.TimeEntry{}:   3,
	}
	for model, want := range counts {
		var got int64
		require.NoError(t, db.Model(model).Count(&got).Error)
		assert.Equal(t, want, got, "%T", model)
	}

	var account models.UserAccount
	require.NoError(t, db.Where("login = ?", "ivanov").First(&account).Error)
	assert.Equal(t, password.SHA256Hex("emp11"), account.PasswordHash)
	assert.True(t, account.Active())
}

func TestEnsureRoles_Idempotent(t *testing.T) {
	db, err := OpenInMemory(t.Name(), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, EnsureRoles(db))
	require.NoError(t, EnsureRoles(db))

	var roles []models.Role
	require.NoError(t, db.Order("role_id").Find(&roles).Error)
	require.Len(t, roles, 4)
	assert.Equal(t, models.RoleEmployee, roles[0].Name)
	assert.Equal(t, models.RoleAdmin, roles[3].Name)
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := OpenInMemory(t.Name(), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	err = db.Create(&models.Employee{LastName: "Иванов", FirstName: "Иван"}).Error
	require.NoError(t, err)

	err = db.Create(&models.WorkDay{EmployeeID: 42, WorkDate: models.NewDate(2025, 12, 1)}).Error
	assert.Error(t, err)
}

type foreignKey struct {
	From  string `gorm:"column:from"`
	Table string `gorm:"column:table"`
	To    string `gorm:"column:to"`
}

func TestForeignKeyDirection(t *testing.T) {
	db, err := OpenInMemory(t.Name(), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	foreignKeys := func(table string) []foreignKey {
		var keys []foreignKey
		require.NoError(t, db.Raw(`SELECT "from", "table", "to" FROM pragma_foreign_key_list(?) ORDER BY "from"`, table).Scan(&keys).Error)
		return keys
	}

	tests := []struct {
		table string
		want  []foreignKey
	}{
		{"Employee", nil},
		{"AbsenceType", nil},
		{"Roles", nil},
		{"WorkDays", []foreignKey{{"employee_id", "Employee", "employee_id"}}},
		{"TimeEntries", []foreignKey{{"workday_id", "WorkDays", "workday_id"}}},
		{"UserAccounts", []foreignKey{{"employee_id", "Employee", "employee_id"}}},
		{"Absences", []foreignKey{
			{"absence_type_id", "AbsenceType", "absence_type_id"},
			{"employee_id", "Employee", "employee_id"},
		}},
		{"UserRoles", []foreignKey{
			{"role_id", "Roles", "role_id"},
			{"user_id", "UserAccounts", "user_id"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			got := foreignKeys(tt.table)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeed_TimestampsStoredAsLocalText(t *testing.T) {
	db, err := OpenInMemory(t.Name(), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Seed(db, password.SHA256Hasher{}, logger.Discard()))

	var stored []string
	require.NoError(t, db.Raw("SELECT event_time FROM TimeEntries ORDER BY time_entry_id").Scan(&stored).Error)
	assert.Equal(t, []string{"2025-12-01 09:01:00", "2025-12-01 17:05:00", "2025-12-02 09:03:00"}, stored)

	var entry models.TimeEntry
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "2025-12-01 09:01:00", entry.FormatTime())
}

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worktime.db")

	db, err := Open(path, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, Close(db))

	assert.FileExists(t, path)
	require.NoError(t, Reset(path))
	assert.NoFileExists(t, path)
	require.NoError(t, Reset(path))
}
