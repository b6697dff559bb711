package service

// Services набор сервисов, общий для консоли и бота
type Services struct {
	Auth      *AuthService
	Tracking  *TimeTrackingService
	Reports   *ReportService
	Employees *EmployeeService
	Accounts  *AccountService
	Absences  *AbsenceService
}
