package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/models"
)

func TestDemo(t *testing.T) {
	svc := seededServices(t)

	_, err := svc.Absences.CreateAbsence(1, 1,
		models.NewDate(2025, time.July, 1), models.NewDate(2025, time.July, 14), "Approved")
	require.NoError(t, err)
	require.NoError(t, svc.Accounts.SetActive(2, false))

	var out bytes.Buffer
	require.NoError(t, Demo(&out, svc))
	text := out.String()

	assert.Contains(t, text, "= Все сотрудники =")
	assert.Contains(t, text, "Смирнов Алексей Олегович")
	assert.Contains(t, text, "Сотрудник: Иванов Иван Иванович (ID=1)")
	assert.Contains(t, text, "2025-12-02  09:00         7.5")
	assert.Contains(t, text, "Рабочий день ID=1, дата 2025-12-01")
	assert.Contains(t, text, "терминал")
	assert.Contains(t, text, "Отпуск  2025-07-01  2025-07-14  Approved")
	assert.Contains(t, text, "заблокирован")
	assert.Contains(t, text, "= Роли пользователя 3 =")
	assert.Contains(t, text, "Manager")
}
