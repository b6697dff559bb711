package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"worktime/internal/logger"
	"worktime/internal/models"
	"worktime/internal/password"
	"worktime/internal/repository/mock"
	"worktime/internal/service"
)

func boolPtr(b bool) *bool { return &b }

func TestAuthService_Authenticate(t *testing.T) {
	active := &models.UserAccount{ID: 7, EmployeeID: 3, Login: "petrov", PasswordHash: password.SHA256Hex("man22"), IsActive: boolPtr(true)}
	blocked := &models.UserAccount{ID: 8, EmployeeID: 4, Login: "blocked", PasswordHash: password.SHA256Hex("pw"), IsActive: boolPtr(false)}

	tests := []struct {
		name    string
		login   string
		pass    string
		setup   func(accounts *mock.MockUserAccountRepository, roles *mock.MockRoleRepository)
		wantErr error
		roles   []string
	}{
		{
			name:  "success",
			login: "petrov",
			pass:  "man22",
			setup: func(accounts *mock.MockUserAccountRepository, roles *mock.MockRoleRepository) {
				accounts.EXPECT().GetByLogin("petrov").Return(active, nil)
				roles.EXPECT().GetRolesForUser(uint(7)).Return([]models.Role{{ID: 3, Name: models.RoleManager}}, nil)
			},
			roles: []string{"Manager"},
		},
		{
			name:  "unknown login",
			login: "nobody",
			pass:  "x",
			setup: func(accounts *mock.MockUserAccountRepository, roles *mock.MockRoleRepository) {
				accounts.EXPECT().GetByLogin("nobody").Return(nil, nil)
			},
			wantErr: service.ErrNoMatch,
		},
		{
			name:  "wrong password",
			login: "petrov",
			pass:  "wrong",
			setup: func(accounts *mock.MockUserAccountRepository, roles *mock.MockRoleRepository) {
				accounts.EXPECT().GetByLogin("petrov").Return(active, nil)
			},
			wantErr: service.ErrNoMatch,
		},
		{
			name:  "inactive account",
			login: "blocked",
			pass:  "pw",
			setup: func(accounts *mock.MockUserAccountRepository, roles *mock.MockRoleRepository) {
				accounts.EXPECT().GetByLogin("blocked").Return(blocked, nil)
			},
			wantErr: service.ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accounts := mock.NewMockUserAccountRepository(ctrl)
			roles := mock.NewMockRoleRepository(ctrl)
			tt.setup(accounts, roles)

			svc := service.NewAuthService(accounts, roles, password.SHA256Hasher{}, logger.Discard())
			principal, err := svc.Authenticate(tt.login, tt.pass)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "неверный логин или пароль", err.Error())
				assert.Nil(t, principal)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.roles, principal.Roles.Names())
			assert.Equal(t, uint(3), principal.EmployeeID())
			assert.True(t, principal.CanLogin())
		})
	}
}

func TestAuthService_AuthenticateWithoutRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockUserAccountRepository(ctrl)
	roles := mock.NewMockRoleRepository(ctrl)

	hasher := password.BcryptHasher{Cost: 4}
	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	accounts.EXPECT().GetByLogin("lonely").Return(&models.UserAccount{ID: 1, Login: "lonely", PasswordHash: hash}, nil)
	roles.EXPECT().GetRolesForUser(uint(1)).Return(nil, nil)

	svc := service.NewAuthService(accounts, roles, hasher, logger.Discard())
	principal, err := svc.Authenticate("lonely", "secret")
	require.NoError(t, err)
	assert.False(t, principal.CanLogin())
}

func TestAuthService_AuthenticateStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockUserAccountRepository(ctrl)
	roles := mock.NewMockRoleRepository(ctrl)

	boom := errors.New("disk I/O error")
	accounts.EXPECT().GetByLogin("petrov").Return(nil, boom)

	svc := service.NewAuthService(accounts, roles, password.SHA256Hasher{}, logger.Discard())
	_, err := svc.Authenticate("petrov", "man22")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, service.ErrNoMatch)
}

func TestAuthService_Refresh(t *testing.T) {
	session := &service.Principal{
		Account: &models.UserAccount{ID: 7, EmployeeID: 3, Login: "petrov"},
		Roles:   models.NewRoleSet(models.RoleManager, models.RoleHR),
	}

	t.Run("roles reloaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accounts := mock.NewMockUserAccountRepository(ctrl)
		roles := mock.NewMockRoleRepository(ctrl)

		accounts.EXPECT().GetByID(uint(7)).Return(&models.UserAccount{ID: 7, EmployeeID: 3, Login: "petrov"}, nil)
		roles.EXPECT().GetRolesForUser(uint(7)).Return([]models.Role{{ID: 3, Name: models.RoleManager}}, nil)

		svc := service.NewAuthService(accounts, roles, password.SHA256Hasher{}, logger.Discard())
		fresh, err := svc.Refresh(session)
		require.NoError(t, err)
		assert.Equal(t, []string{"Manager"}, fresh.Roles.Names())
	})

	for name, account := range map[string]*models.UserAccount{
		"deactivated": {ID: 7, EmployeeID: 3, Login: "petrov", IsActive: boolPtr(false)},
		"deleted":     nil,
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accounts := mock.NewMockUserAccountRepository(ctrl)
			roles := mock.NewMockRoleRepository(ctrl)

			accounts.EXPECT().GetByID(uint(7)).Return(account, nil)

			svc := service.NewAuthService(accounts, roles, password.SHA256Hasher{}, logger.Discard())
			fresh, err := svc.Refresh(session)
			assert.ErrorIs(t, err, service.ErrNoMatch)
			assert.Nil(t, fresh)
		})
	}
}

func TestAllowed(t *testing.T) {
	employee := models.NewRoleSet(models.RoleEmployee)
	hr := models.NewRoleSet(models.RoleHR)
	manager := models.NewRoleSet(models.RoleManager, models.RoleEmployee)
	admin := models.NewRoleSet(models.RoleAdmin)

	assert.True(t, service.Allowed(employee, service.ActionClockIn))
	assert.False(t, service.Allowed(employee, service.ActionOrgTimesheet))
	assert.True(t, service.Allowed(hr, service.ActionEditEmployee))
	assert.False(t, service.Allowed(hr, service.ActionClockIn))
	assert.True(t, service.Allowed(manager, service.ActionDepartmentTimesheet))
	assert.True(t, service.Allowed(manager, service.ActionPersonalReport))
	assert.False(t, service.Allowed(manager, service.ActionCreateUser))
	assert.True(t, service.Allowed(admin, service.ActionCreateEmployeeWithUser))
	assert.False(t, service.Allowed(admin, service.Action(99)))

	assert.True(t, service.CanViewOrgTimesheet(hr))
	assert.True(t, service.CanViewOrgTimesheet(admin))
	assert.False(t, service.CanViewOrgTimesheet(manager))
}
