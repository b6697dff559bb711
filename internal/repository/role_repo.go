package repository

import (
	"worktime/internal/apperror"
	"worktime/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	GetAll() ([]models.Role, error)
	GetByName(name models.RoleName) (*models.Role, error)
	GetRolesForUser(userID uint) ([]models.Role, error)
	AddRoleToUser(userID, roleID uint) error
	RemoveRoleFromUser(userID, roleID uint) error
	DeleteAllForUser(userID uint) error
}

type GormRoleRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormRoleRepository(db *gorm.DB, logger *logrus.Logger) *GormRoleRepository {
	return &GormRoleRepository{db: db, logger: logger}
}

func (r *GormRoleRepository) GetAll() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("role_id").Find(&roles).Error
	return roles, err
}

func (r *GormRoleRepository) GetByName(name models.RoleName) (*models.Role, error) {
	var role models.Role
	result := r.db.Where("name = ?", name).First(&role)

	if isNotFound(result.Error) {
		r.logger.WithField("name", name).Debug("Role not found")
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &role, nil
}

func (r *GormRoleRepository) GetRolesForUser(userID uint) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Table("Roles AS r").
		Select("r.role_id, r.name, r.description").
		Joins("JOIN UserRoles ur ON ur.role_id = r.role_id").
		Where("ur.user_id = ?", userID).
		Order("r.role_id").
		Scan(&roles).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to get roles for user")
		return nil, err
	}
	return roles, nil
}

// AddRoleToUser повторное назначение той же роли ничего не меняет
func (r *GormRoleRepository) AddRoleToUser(userID, roleID uint) error {
	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"role_id": roleID,
	}).Info("Assigning role")

	return addRole(r.db, userID, roleID)
}

func addRole(db *gorm.DB, userID, roleID uint) error {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&models.UserRole{UserID: userID, RoleID: roleID}).Error
	if isForeignKeyViolation(err) {
		return apperror.InvalidReference("пользователь или роль не найдены")
	}
	return err
}

func (r *GormRoleRepository) RemoveRoleFromUser(userID, roleID uint) error {
	return r.db.Where("user_id = ? AND role_id = ?", userID, roleID).Delete(&models.UserRole{}).Error
}

func (r *GormRoleRepository) DeleteAllForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error
}
