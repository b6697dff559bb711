package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"worktime/internal/apperror"
	"worktime/internal/logger"
	"worktime/internal/models"
	"worktime/internal/repository/mock"
	"worktime/internal/service"
)

func newReports(t *testing.T) (*service.ReportService, *mock.MockReportRepository, *mock.MockEmployeeRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reports := mock.NewMockReportRepository(ctrl)
	employees := mock.NewMockEmployeeRepository(ctrl)
	return service.NewReportService(reports, employees, logger.Discard()), reports, employees
}

func TestReportService_GenerateTimesheetRejectsInvertedRange(t *testing.T) {
	svc, _, _ := newReports(t)

	_, err := svc.GenerateTimesheet(
		models.NewDate(2025, time.December, 31),
		models.NewDate(2025, time.December, 1),
		nil,
	)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestReportService_GenerateTimesheetSingleDay(t *testing.T) {
	svc, reports, _ := newReports(t)
	day := models.NewDate(2025, time.December, 1)

	reports.EXPECT().Timesheet(day, day, gomock.Nil()).Return([]models.TimesheetRow{{FullName: "Иванов Иван", WorkDate: day, Hours: 8}}, nil)

	rows, err := svc.GenerateTimesheet(day, day, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReportService_GetDepartmentTimesheet(t *testing.T) {
	svc, reports, employees := newReports(t)
	from := models.NewDate(2025, time.December, 1)
	to := models.NewDate(2025, time.December, 31)

	employees.EXPECT().GetByID(uint(3)).Return(&models.Employee{ID: 3, Department: models.OptionalString("ИТ")}, nil)
	reports.EXPECT().Timesheet(from, to, gomock.Any()).DoAndReturn(func(_, _ models.Date, department *string) ([]models.TimesheetRow, error) {
		require.NotNil(t, department)
		assert.Equal(t, "ИТ", *department)
		return []models.TimesheetRow{{Department: "ИТ"}}, nil
	})

	dept, rows, err := svc.GetDepartmentTimesheet(3, from, to)
	require.NoError(t, err)
	assert.Equal(t, "ИТ", dept)
	assert.Len(t, rows, 1)
}

func TestReportService_GetDepartmentTimesheetWithoutDepartment(t *testing.T) {
	svc, _, employees := newReports(t)

	employees.EXPECT().GetByID(uint(3)).Return(&models.Employee{ID: 3}, nil)

	_, _, err := svc.GetDepartmentTimesheet(3, models.NewDate(2025, time.December, 1), models.NewDate(2025, time.December, 2))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Не удалось определить ваш отдел.", err.Error())
}
