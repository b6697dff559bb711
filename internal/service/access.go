package service

import "worktime/internal/models"

// Action пункт меню, доступ к которому определяется ролями
type Action int

const (
	ActionClockIn Action = iota + 1
	ActionClockOut
	ActionPersonalReport
	ActionEditEmployee
	ActionOrgTimesheet
	ActionDepartmentTimesheet
	ActionCreateUser
	ActionExportTimesheet
	ActionCreateEmployeeWithUser
)

var actionRoles = map[Action]models.RoleName{
	ActionClockIn:                models.RoleEmployee,
	ActionClockOut:               models.RoleEmployee,
	ActionPersonalReport:         models.RoleEmployee,
	ActionEditEmployee:           models.RoleHR,
	ActionOrgTimesheet:           models.RoleHR,
	ActionDepartmentTimesheet:    models.RoleManager,
	ActionCreateUser:             models.RoleAdmin,
	ActionExportTimesheet:        models.RoleAdmin,
	ActionCreateEmployeeWithUser: models.RoleAdmin,
}

// Allowed проверяет, дает ли набор ролей доступ к действию
func Allowed(roles models.RoleSet, action Action) bool {
	role, ok := actionRoles[action]
	if !ok {
		return false
	}
	return roles.Has(role)
}

// CanViewOrgTimesheet табель по всей организации доступен HR и администратору
func CanViewOrgTimesheet(roles models.RoleSet) bool {
	return Allowed(roles, ActionOrgTimesheet) || Allowed(roles, ActionExportTimesheet)
}
