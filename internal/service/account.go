package service

import (
	"fmt"
	"strings"

	"worktime/internal/apperror"
	"worktime/internal/models"
	"worktime/internal/password"
	"worktime/internal/repository"

	"github.com/sirupsen/logrus"
)

type AccountService struct {
	accounts  repository.UserAccountRepository
	roles     repository.RoleRepository
	employees repository.EmployeeRepository
	hasher    password.Hasher
	logger    *logrus.Logger
}

func NewAccountService(
	accounts repository.UserAccountRepository,
	roles repository.RoleRepository,
	employees repository.EmployeeRepository,
	hasher password.Hasher,
	logger *logrus.Logger,
) *AccountService {
	return &AccountService{
		accounts:  accounts,
		roles:     roles,
		employees: employees,
		hasher:    hasher,
		logger:    logger,
	}
}

// CreateUserWithRole создает учетную запись для существующего сотрудника и назначает одну роль.
// При любой ошибке проверки ничего не создается.
func (s *AccountService) CreateUserWithRole(employeeID uint, login, plain, roleName string) (uint, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return 0, apperror.InvalidInput("логин не может быть пустым")
	}

	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	if employee == nil {
		return 0, apperror.NotFound("Сотрудник с ID=%d не найден. Сначала добавьте сотрудника в Employee.", employeeID)
	}

	existing, err := s.accounts.GetByLogin(login)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	if existing != nil {
		return 0, apperror.Duplicate("Логин '%s' уже используется.", login)
	}

	role, err := s.findRole(roleName)
	if err != nil {
		return 0, err
	}

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	active := true
	account := &models.UserAccount{
		EmployeeID:   employeeID,
		Login:        login,
		PasswordHash: hash,
		IsActive:     &active,
	}

	if err := s.accounts.CreateWithRole(account, role.ID); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":     account.ID,
		"employee_id": employeeID,
		"role":        role.Name,
	}).Info("User created with role")

	return account.ID, nil
}

func (s *AccountService) findRole(roleName string) (*models.Role, error) {
	name, err := models.ParseRoleName(roleName)
	if err != nil {
		s.logger.WithField("role", roleName).Warn("Unknown role")
		return nil, apperror.InvalidReference("Роль '%s' не найдена. Используйте: %s.", roleName, models.RoleList())
	}

	role, err := s.roles.GetByName(name)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.InvalidReference("Роль '%s' не найдена. Используйте: %s.", roleName, models.RoleList())
	}
	return role, nil
}

// AssignRole назначает пользователю дополнительную роль
func (s *AccountService) AssignRole(userID uint, roleName string) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}

	role, err := s.findRole(roleName)
	if err != nil {
		return err
	}

	return s.roles.AddRoleToUser(userID, role.ID)
}

func (s *AccountService) RemoveRole(userID uint, roleName string) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}

	role, err := s.findRole(roleName)
	if err != nil {
		return err
	}

	return s.roles.RemoveRoleFromUser(userID, role.ID)
}

func (s *AccountService) requireUser(userID uint) error {
	account, err := s.accounts.GetByID(userID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperror.NotFound("Пользователь с ID=%d не найден", userID)
	}
	return nil
}

// SetActive блокирует или разблокирует учетную запись
func (s *AccountService) SetActive(userID uint, active bool) error {
	return s.accounts.SetActive(userID, active)
}

// DeleteUser удаляет учетную запись вместе с ее ролями
func (s *AccountService) DeleteUser(userID uint) error {
	return s.accounts.Delete(userID)
}

func (s *AccountService) ListUsers() ([]*models.UserAccount, error) {
	return s.accounts.GetAll()
}

func (s *AccountService) GetRolesForUser(userID uint) ([]models.Role, error) {
	return s.roles.GetRolesForUser(userID)
}
