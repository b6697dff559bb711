package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoleName(t *testing.T) {
	for _, r := range AllRoles {
		got, err := ParseRoleName(string(r))
		assert.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := ParseRoleName(" HR ")
	assert.NoError(t, err)
	assert.Equal(t, RoleHR, got)

	for _, bad := range []string{"", "admin", "Director"} {
		_, err := ParseRoleName(bad)
		assert.Error(t, err, bad)
	}
}

func TestRoleSet(t *testing.T) {
	set := RoleSetOf([]Role{{Name: RoleManager}, {Name: RoleEmployee}})

	assert.True(t, set.Has(RoleEmployee))
	assert.True(t, set.Has(RoleManager))
	assert.False(t, set.Has(RoleAdmin))
	assert.Equal(t, []string{"Employee", "Manager"}, set.Names())
	assert.False(t, set.Empty())
	assert.True(t, NewRoleSet().Empty())
}

func TestUserAccount_Active(t *testing.T) {
	yes, no := true, false

	assert.True(t, (&UserAccount{}).Active())
	assert.True(t, (&UserAccount{IsActive: &yes}).Active())
	assert.False(t, (&UserAccount{IsActive: &no}).Active())
}

func TestEmployee_FullName(t *testing.T) {
	middle := "Иванович"
	tests := []struct {
		employee Employee
		want     string
	}{
		{Employee{LastName: "Иванов", FirstName: "Иван", MiddleName: &middle}, "Иванов Иван Иванович"},
		{Employee{LastName: "Ivanov", FirstName: "Ivan"}, "Ivanov Ivan"},
		{Employee{LastName: " Ivanov ", FirstName: "Ivan", MiddleName: OptionalString("")}, "Ivanov Ivan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.employee.FullName())
	}
}
