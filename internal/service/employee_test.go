package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"worktime/internal/apperror"
	"worktime/internal/logger"
	"worktime/internal/models"
	"worktime/internal/repository/mock"
	"worktime/internal/service"
)

func TestEmployeeService_CreateEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := mock.NewMockEmployeeRepository(ctrl)
	svc := service.NewEmployeeService(employees, logger.Discard())

	employees.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Employee) error {
		assert.Equal(t, "Кузнецова", e.LastName)
		assert.Nil(t, e.MiddleName)
		assert.Equal(t, "Отдел продаж", e.DepartmentName())
		e.ID = 5
		return nil
	})

	id, err := svc.CreateEmployee(" Кузнецова ", "Ольга", "", "Менеджер", "Отдел продаж")
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)

	_, err = svc.CreateEmployee("", "Ольга", "", "", "")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestEmployeeService_UpdateEmployeeDataKeepsBlankFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := mock.NewMockEmployeeRepository(ctrl)
	svc := service.NewEmployeeService(employees, logger.Discard())

	employees.EXPECT().GetByID(uint(2)).Return(&models.Employee{
		ID:         2,
		LastName:   "Сидорова",
		FirstName:  "Анна",
		Position:   models.OptionalString("HR-специалист"),
		Department: models.OptionalString("Отдел кадров"),
	}, nil)
	employees.EXPECT().Update(gomock.Any()).DoAndReturn(func(e *models.Employee) error {
		assert.Equal(t, "Старший HR", e.PositionName())
		assert.Equal(t, "Отдел кадров", e.DepartmentName())
		return nil
	})

	require.NoError(t, svc.UpdateEmployeeData(2, "Старший HR", "   "))
}

func TestEmployeeService_UpdateEmployeeDataErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := mock.NewMockEmployeeRepository(ctrl)
	svc := service.NewEmployeeService(employees, logger.Discard())

	assert.ErrorIs(t, svc.UpdateEmployeeData(0, "x", "y"), apperror.ErrInvalidInput)

	employees.EXPECT().GetByID(uint(77)).Return(nil, nil)
	assert.ErrorIs(t, svc.UpdateEmployeeData(77, "x", "y"), apperror.ErrNotFound)
}
