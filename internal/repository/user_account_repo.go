package repository

import (
	"worktime/internal/apperror"
	"worktime/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserAccountRepository interface {
	Create(account *models.UserAccount) error
	CreateWithRole(account *models.UserAccount, roleID uint) error
	GetByID(id uint) (*models.UserAccount, error)
	GetByLogin(login string) (*models.UserAccount, error)
	GetAll() ([]*models.UserAccount, error)
	Update(account *models.UserAccount) error
	SetActive(id uint, active bool) error
	Delete(id uint) error
}

type GormUserAccountRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormUserAccountRepository(db *gorm.DB, logger *logrus.Logger) *GormUserAccountRepository {
	return &GormUserAccountRepository{db: db, logger: logger}
}

func (r *GormUserAccountRepository) Create(account *models.UserAccount) error {
	return r.create(r.db, account)
}

func (r *GormUserAccountRepository) create(db *gorm.DB, account *models.UserAccount) error {
	if account.IsActive == nil {
		active := true
		account.IsActive = &active
	}

	err := db.Omit(clause.Associations).Create(account).Error
	if isDuplicate(err) {
		r.logger.WithField("login", account.Login).Warn("Login already exists")
		return apperror.Duplicate("Логин '%s' уже используется.", account.Login)
	}
	if isForeignKeyViolation(err) {
		return apperror.NotFound("Сотрудник с ID=%d не найден.", account.EmployeeID)
	}
	return err
}

// CreateWithRole создает учетную запись и одну привязку роли атомарно
func (r *GormUserAccountRepository) CreateWithRole(account *models.UserAccount, roleID uint) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": account.EmployeeID,
		"login":       account.Login,
		"role_id":     roleID,
	}).Info("Creating user account")

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.create(tx, account); err != nil {
			return err
		}
		return addRole(tx, account.ID, roleID)
	})
	if err != nil {
		r.logger.WithError(err).Error("Failed to create user account")
		return err
	}

	r.logger.WithField("user_id", account.ID).Info("User account created successfully")
	return nil
}

func (r *GormUserAccountRepository) GetByID(id uint) (*models.UserAccount, error) {
	var account models.UserAccount
	result := r.db.First(&account, id)

	if isNotFound(result.Error) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get user account by ID")
		return nil, result.Error
	}

	return &account, nil
}

func (r *GormUserAccountRepository) GetByLogin(login string) (*models.UserAccount, error) {
	var account models.UserAccount
	result := r.db.Where("login = ?", login).First(&account)

	if isNotFound(result.Error) {
		r.logger.WithField("login", login).Debug("User account not found")
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get user account by login")
		return nil, result.Error
	}

	return &account, nil
}

func (r *GormUserAccountRepository) GetAll() ([]*models.UserAccount, error) {
	var accounts []*models.UserAccount
	if err := r.db.Order("user_id").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *GormUserAccountRepository) Update(account *models.UserAccount) error {
	if account.ID == 0 {
		return apperror.InvalidInput("user_id is required for update")
	}

	result := r.db.Model(&models.UserAccount{}).
		Where("user_id = ?", account.ID).
		Select("employee_id", "login", "password_hash", "is_active").
		Updates(account)
	if isDuplicate(result.Error) {
		return apperror.Duplicate("Логин '%s' уже используется.", account.Login)
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Пользователь не найден")
	}
	return nil
}

func (r *GormUserAccountRepository) SetActive(id uint, active bool) error {
	r.logger.WithFields(logrus.Fields{
		"user_id": id,
		"active":  active,
	}).Info("Changing user account status")

	result := r.db.Model(&models.UserAccount{}).Where("user_id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Пользователь не найден")
	}
	return nil
}

// Delete удаляет учетную запись вместе с привязками ролей
func (r *GormUserAccountRepository) Delete(id uint) error {
	r.logger.WithField("user_id", id).Info("Deleting user account")

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.UserAccount{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.NotFound("Пользователь не найден")
		}
		return nil
	})
}
