package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"worktime/internal/apperror"
	"worktime/internal/logger"
	"worktime/internal/models"
	"worktime/internal/password"
	"worktime/internal/repository/mock"
	"worktime/internal/service"
)

type accountMocks struct {
	accounts  *mock.MockUserAccountRepository
	roles     *mock.MockRoleRepository
	employees *mock.MockEmployeeRepository
}

func newAccounts(t *testing.T) (*service.AccountService, accountMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := accountMocks{
		accounts:  mock.NewMockUserAccountRepository(ctrl),
		roles:     mock.NewMockRoleRepository(ctrl),
		employees: mock.NewMockEmployeeRepository(ctrl),
	}
	svc := service.NewAccountService(m.accounts, m.roles, m.employees, password.SHA256Hasher{}, logger.Discard())
	return svc, m
}

func TestAccountService_CreateUserWithRole(t *testing.T) {
	svc, m := newAccounts(t)

	m.employees.EXPECT().GetByID(uint(1)).Return(&models.Employee{ID: 1}, nil)
	m.accounts.EXPECT().GetByLogin("ivanov2").Return(nil, nil)
	m.roles.EXPECT().GetByName(models.RoleHR).Return(&models.Role{ID: 2, Name: models.RoleHR}, nil)
	m.accounts.EXPECT().CreateWithRole(gomock.Any(), uint(2)).
		DoAndReturn(func(account *models.UserAccount, _ uint) error {
			assert.Equal(t, uint(1), account.EmployeeID)
			assert.Equal(t, password.SHA256Hex("pw"), account.PasswordHash)
			assert.True(t, account.Active())
			account.ID = 11
			return nil
		})

	id, err := svc.CreateUserWithRole(1, " ivanov2 ", "pw", "HR")
	require.NoError(t, err)
	assert.Equal(t, uint(11), id)
}

func TestAccountService_CreateUserWithRoleRejects(t *testing.T) {
	tests := []struct {
		name       string
		employeeID uint
		login      string
		role       string
		setup      func(m accountMocks)
		wantErr    error
		wantMsg    string
	}{
		{
			name:    "empty login",
			login:   "  ",
			role:    "HR",
			setup:   func(m accountMocks) {},
			wantErr: apperror.ErrInvalidInput,
		},
		{
			name:       "missing employee",
			employeeID: 99,
			login:      "ghost",
			role:       "HR",
			setup: func(m accountMocks) {
				m.employees.EXPECT().GetByID(uint(99)).Return(nil, nil)
			},
			wantErr: apperror.ErrNotFound,
			wantMsg: "Сотрудник с ID=99 не найден. Сначала добавьте сотрудника в Employee.",
		},
		{
			name:       "duplicate login",
			employeeID: 1,
			login:      "ivanov",
			role:       "HR",
			setup: func(m accountMocks) {
				m.employees.EXPECT().GetByID(uint(1)).Return(&models.Employee{ID: 1}, nil)
				m.accounts.EXPECT().GetByLogin("ivanov").Return(&models.UserAccount{ID: 1, Login: "ivanov"}, nil)
			},
			wantErr: apperror.ErrDuplicate,
			wantMsg: "Логин 'ivanov' уже используется.",
		},
		{
			name:       "unknown role",
			employeeID: 1,
			login:      "newbie",
			role:       "Director",
			setup: func(m accountMocks) {
				m.employees.EXPECT().GetByID(uint(1)).Return(&models.Employee{ID: 1}, nil)
				m.accounts.EXPECT().GetByLogin("newbie").Return(nil, nil)
			},
			wantErr: apperror.ErrInvalidReference,
			wantMsg: "Роль 'Director' не найдена. Используйте: Employee, HR, Manager, Admin.",
		},
		{
			name:       "role missing from storage",
			employeeID: 1,
			login:      "newbie",
			role:       "Manager",
			setup: func(m accountMocks) {
				m.employees.EXPECT().GetByID(uint(1)).Return(&models.Employee{ID: 1}, nil)
				m.accounts.EXPECT().GetByLogin("newbie").Return(nil, nil)
				m.roles.EXPECT().GetByName(models.RoleManager).Return(nil, nil)
			},
			wantErr: apperror.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAccounts(t)
			tt.setup(m)
			// CreateWithRole не ожидается: gomock упадет при любом вызове

			id, err := svc.CreateUserWithRole(tt.employeeID, tt.login, "pw", tt.role)
			assert.Zero(t, id)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestAccountService_AssignRole(t *testing.T) {
	svc, m := newAccounts(t)

	m.accounts.EXPECT().GetByID(uint(3)).Return(&models.UserAccount{ID: 3}, nil)
	m.roles.EXPECT().GetByName(models.RoleAdmin).Return(&models.Role{ID: 4, Name: models.RoleAdmin}, nil)
	m.roles.EXPECT().AddRoleToUser(uint(3), uint(4)).Return(nil)
	require.NoError(t, svc.AssignRole(3, "Admin"))

	m.accounts.EXPECT().GetByID(uint(404)).Return(nil, nil)
	assert.ErrorIs(t, svc.AssignRole(404, "Admin"), apperror.ErrNotFound)
}

func TestAccountService_RemoveRole(t *testing.T) {
	svc, m := newAccounts(t)

	m.accounts.EXPECT().GetByID(uint(3)).Return(&models.UserAccount{ID: 3}, nil)
	m.roles.EXPECT().GetByName(models.RoleEmployee).Return(&models.Role{ID: 1, Name: models.RoleEmployee}, nil)
	m.roles.EXPECT().RemoveRoleFromUser(uint(3), uint(1)).Return(nil)
	require.NoError(t, svc.RemoveRole(3, "Employee"))
}
