package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("PASSWORD_HASHER", "sha256")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("PDF_FONT", "")
	t.Setenv("EXPORT_DIR", "out")
	t.Setenv("DERIVE_HOURS", "false")
	t.Setenv("CLOCK_SOURCE", "console")
	return filepath.Join(dir, "worktime.db")
}

func TestCommands(t *testing.T) {
	db := setupEnv(t)

	out := execute(t, "", "init-db", "--seed", "--db", db)
	assert.Contains(t, out, "Тестовые данные добавлены.")

	// повторная инициализация пересоздает файл без дублей
	execute(t, "", "init-db", "--seed", "--db", db)

	out = execute(t, "", "demo", "--db", db)
	assert.Contains(t, out, "= Все сотрудники =")
	assert.Contains(t, out, "Петров Пётр Петрович")

	csvPath := filepath.Join(t.TempDir(), "sales.csv")
	pdfPath := filepath.Join(t.TempDir(), "sales.pdf")
	out = execute(t, "", "timesheet", "--db", db,
		"--from", "2025-12-01", "--to", "2025-12-31",
		"--department", "Отдел продаж", "--csv", csvPath, "--pdf", pdfPath)
	assert.Contains(t, out, "Петров Пётр Петрович")
	assert.NotContains(t, out, "Иванов")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "Отдел;ФИО;Дата;Часы\nОтдел продаж;Петров Пётр Петрович;2025-12-01;7.0\n", string(data))

	pdf, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	exportDir := filepath.Join(t.TempDir(), "out")
	out = execute(t, "", "export", "--db", db, "--dir", exportDir)
	assert.Contains(t, out, "Экспорт завершён.")
	for _, name := range []string{"data.json", "data.csv", "data.xml", "data.yaml"} {
		assert.FileExists(t, filepath.Join(exportDir, name))
	}

	out = execute(t, "petrov\nman22\n0\n", "menu", "--db", db)
	assert.Contains(t, out, "6 - Просмотреть отчёт по своему подразделению")
	assert.Contains(t, out, "Выход из программы.")
}

func TestTimesheetRejectsBadDate(t *testing.T) {
	db := setupEnv(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"timesheet", "--db", db, "--from", "01.12.2025", "--to", "2025-12-31"})
	assert.Error(t, cmd.Execute())
}

func TestIsFilePath(t *testing.T) {
	assert.True(t, isFilePath("worktime.db"))
	assert.False(t, isFilePath("file:worktime.db?mode=memory"))
	assert.False(t, isFilePath(":memory:"))
	assert.False(t, isFilePath(""))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
