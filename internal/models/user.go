package models

import (
	"fmt"
	"sort"
	"strings"
)

// RoleName одна из фиксированных ролей системы
type RoleName string

const (
	RoleEmployee RoleName = "Employee"
	RoleHR       RoleName = "HR"
	RoleManager  RoleName = "Manager"
	RoleAdmin    RoleName = "Admin"
)

// AllRoles в порядке, в котором они создаются в БД
var AllRoles = []RoleName{RoleEmployee, RoleHR, RoleManager, RoleAdmin}

func ParseRoleName(s string) (RoleName, error) {
	name := RoleName(strings.TrimSpace(s))
	for _, r := range AllRoles {
		if r == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("роль %q не найдена, используйте: %s", s, RoleList())
}

// RoleList перечисляет доступные роли через запятую
func RoleList() string {
	names := make([]string, len(AllRoles))
	for i, r := range AllRoles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

type Role struct {
	ID          uint     `gorm:"column:role_id;primaryKey;autoIncrement" json:"id"`
	Name        RoleName `gorm:"column:name;type:text;not null;uniqueIndex" json:"name"`
	Description *string  `gorm:"column:description" json:"description"`

	UserRoles []UserRole `gorm:"foreignKey:RoleID" json:"-"`
}

func (Role) TableName() string {
	return "Roles"
}

type UserAccount struct {
	ID           uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"id"`
	EmployeeID   uint   `gorm:"column:employee_id;not null;index" json:"employee_id"`
	Login        string `gorm:"column:login;not null;uniqueIndex" json:"login"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	IsActive     *bool  `gorm:"column:is_active" json:"is_active"`

	UserRoles []UserRole `gorm:"foreignKey:UserID" json:"-"`
}

func (UserAccount) TableName() string {
	return "UserAccounts"
}

// Active учетная запись блокируется только явным false
func (u *UserAccount) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

type UserRole struct {
	UserID uint `gorm:"column:user_id;primaryKey" json:"user_id"`
	RoleID uint `gorm:"column:role_id;primaryKey" json:"role_id"`
}

func (UserRole) TableName() string {
	return "UserRoles"
}

// RoleSet набор ролей пользователя; проверки доступа идут по членству в наборе
type RoleSet map[RoleName]struct{}

func NewRoleSet(names ...RoleName) RoleSet {
	set := make(RoleSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func RoleSetOf(roles []Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r.Name] = struct{}{}
	}
	return set
}

func (s RoleSet) Has(name RoleName) bool {
	_, ok := s[name]
	return ok
}

func (s RoleSet) Empty() bool {
	return len(s) == 0
}

// Names отсортированный список ролей
func (s RoleSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return names
}
