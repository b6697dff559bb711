package service

import (
	"errors"
	"fmt"

	"worktime/internal/models"
	"worktime/internal/password"
	"worktime/internal/repository"

	"github.com/sirupsen/logrus"
)

// ErrNoMatch неверный логин, неверный пароль и заблокированная учетка неразличимы для вызывающего
var ErrNoMatch = errors.New("неверный логин или пароль")

// Principal аутентифицированный пользователь и его роли
type Principal struct {
	Account *models.UserAccount
	Roles   models.RoleSet
}

// CanLogin пользователь без ролей не получает доступа
func (p *Principal) CanLogin() bool {
	return p != nil && !p.Roles.Empty()
}

func (p *Principal) EmployeeID() uint {
	return p.Account.EmployeeID
}

type AuthService struct {
	accounts repository.UserAccountRepository
	roles    repository.RoleRepository
	hasher   password.Hasher
	logger   *logrus.Logger
}

func NewAuthService(
	accounts repository.UserAccountRepository,
	roles repository.RoleRepository,
	hasher password.Hasher,
	logger *logrus.Logger,
) *AuthService {
	return &AuthService{
		accounts: accounts,
		roles:    roles,
		hasher:   hasher,
		logger:   logger,
	}
}

// Authenticate проверяет логин и пароль и возвращает учетку с полным набором ролей
func (s *AuthService) Authenticate(login, plain string) (*Principal, error) {
	account, err := s.accounts.GetByLogin(login)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if account == nil || !account.Active() || !s.hasher.Verify(account.PasswordHash, plain) {
		s.logger.WithField("login", login).Warn("Authentication failed")
		return nil, ErrNoMatch
	}

	roles, err := s.roles.GetRolesForUser(account.ID)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	principal := &Principal{Account: account, Roles: models.RoleSetOf(roles)}

	s.logger.WithFields(logrus.Fields{
		"user_id": account.ID,
		"roles":   principal.Roles.Names(),
	}).Info("User authenticated")

	return principal, nil
}

// Refresh перечитывает учетку и роли уже вошедшего пользователя.
// Удаленная или заблокированная учетка дает ErrNoMatch.
func (s *AuthService) Refresh(p *Principal) (*Principal, error) {
	account, err := s.accounts.GetByID(p.Account.ID)
	if err != nil {
		return nil, fmt.Errorf("refresh principal: %w", err)
	}
	if account == nil || !account.Active() {
		s.logger.WithField("user_id", p.Account.ID).Warn("Session revoked")
		return nil, ErrNoMatch
	}

	roles, err := s.roles.GetRolesForUser(account.ID)
	if err != nil {
		return nil, fmt.Errorf("refresh principal: %w", err)
	}

	return &Principal{Account: account, Roles: models.RoleSetOf(roles)}, nil
}
