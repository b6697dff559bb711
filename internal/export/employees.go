package export

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"worktime/internal/models"
)

// EmployeeRecord сотрудник со списком рабочих дней для выгрузок
type EmployeeRecord struct {
	EmployeeID uint            `json:"employee_id" yaml:"employee_id"`
	LastName   string          `json:"last_name" yaml:"last_name"`
	FirstName  string          `json:"first_name" yaml:"first_name"`
	MiddleName *string         `json:"middle_name" yaml:"middle_name"`
	Position   *string         `json:"position" yaml:"position"`
	Department *string         `json:"department" yaml:"department"`
	WorkDays   []WorkDayRecord `json:"workdays" yaml:"workdays"`
}

type WorkDayRecord struct {
	ID           uint        `json:"id" yaml:"id"`
	Date         models.Date `json:"date" yaml:"date"`
	PlannedStart *string     `json:"planned_start" yaml:"planned_start"`
	TotalHours   *float64    `json:"total_hours" yaml:"total_hours"`
}

// Nest собирает плоские строки в сотрудников с вложенными днями.
// Порядок сотрудников сохраняется, сотрудник без дней получает пустой список.
func Nest(rows []models.EmployeeWorkDayRow) []EmployeeRecord {
	records := make([]EmployeeRecord, 0)
	index := make(map[uint]int)

	for _, row := range rows {
		i, ok := index[row.EmployeeID]
		if !ok {
			records = append(records, EmployeeRecord{
				EmployeeID: row.EmployeeID,
				LastName:   row.LastName,
				FirstName:  row.FirstName,
				MiddleName: row.MiddleName,
				Position:   row.Position,
				Department: row.Department,
				WorkDays:   []WorkDayRecord{},
			})
			i = len(records) - 1
			index[row.EmployeeID] = i
		}

		if row.WorkDayID == nil {
			continue
		}
		records[i].WorkDays = append(records[i].WorkDays, WorkDayRecord{
			ID:           *row.WorkDayID,
			Date:         row.WorkDayDate,
			PlannedStart: row.WorkDayPlannedStart,
			TotalHours:   row.WorkDayTotalHours,
		})
	}

	return records
}

func WriteJSON(w io.Writer, records []EmployeeRecord) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(records)
}

func WriteYAML(w io.Writer, records []EmployeeRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

var flatHeader = []string{
	"employee_id", "last_name", "first_name", "middle_name", "position", "department",
	"workday_id", "workday_date", "workday_planned_start", "workday_total_hours",
}

// WriteFlatCSV одна строка на пару сотрудник + рабочий день, разделитель ";"
func WriteFlatCSV(w io.Writer, rows []models.EmployeeWorkDayRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(flatHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.EmployeeID), 10),
			row.LastName,
			row.FirstName,
			models.StringValue(row.MiddleName),
			models.StringValue(row.Position),
			models.StringValue(row.Department),
			optionalID(row.WorkDayID),
			optionalDate(row.WorkDayDate),
			models.StringValue(row.WorkDayPlannedStart),
			optionalHours(row.WorkDayTotalHours),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type xmlEmployees struct {
	XMLName   xml.Name      `xml:"employees"`
	Employees []xmlEmployee `xml:"employee"`
}

type xmlEmployee struct {
	EmployeeID string       `xml:"employee_id"`
	LastName   string       `xml:"last_name"`
	FirstName  string       `xml:"first_name"`
	MiddleName string       `xml:"middle_name"`
	Position   string       `xml:"position"`
	Department string       `xml:"department"`
	WorkDays   []xmlWorkDay `xml:"workdays>workday"`
}

type xmlWorkDay struct {
	ID           string `xml:"id"`
	Date         string `xml:"date"`
	PlannedStart string `xml:"planned_start"`
	TotalHours   string `xml:"total_hours"`
}

// WriteXML <employees><employee>...<workdays><workday>...; пустые значения пишутся пустыми элементами
func WriteXML(w io.Writer, records []EmployeeRecord) error {
	doc := xmlEmployees{Employees: make([]xmlEmployee, 0, len(records))}
	for _, r := range records {
		e := xmlEmployee{
			EmployeeID: strconv.FormatUint(uint64(r.EmployeeID), 10),
			LastName:   r.LastName,
			FirstName:  r.FirstName,
			MiddleName: models.StringValue(r.MiddleName),
			Position:   models.StringValue(r.Position),
			Department: models.StringValue(r.Department),
		}
		for _, wd := range r.WorkDays {
			e.WorkDays = append(e.WorkDays, xmlWorkDay{
				ID:           strconv.FormatUint(uint64(wd.ID), 10),
				Date:         optionalDate(wd.Date),
				PlannedStart: models.StringValue(wd.PlannedStart),
				TotalHours:   optionalHours(wd.TotalHours),
			})
		}
		doc.Employees = append(doc.Employees, e)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// All пишет data.json, data.csv, data.xml и data.yaml в каталог dir и возвращает пути файлов
func All(dir string, rows []models.EmployeeWorkDayRow) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	records := Nest(rows)
	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"data.json", func(w io.Writer) error { return WriteJSON(w, records) }},
		{"data.csv", func(w io.Writer) error { return WriteFlatCSV(w, rows) }},
		{"data.xml", func(w io.Writer) error { return WriteXML(w, records) }},
		{"data.yaml", func(w io.Writer) error { return WriteYAML(w, records) }},
	}

	paths := make([]string, 0, len(writers))
	for _, wr := range writers {
		path := filepath.Join(dir, wr.name)
		if err := WriteFile(path, wr.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// WriteFile создает файл и закрывает его, возвращая первую из ошибок записи или закрытия
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func optionalID(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}

func optionalDate(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func optionalHours(h *float64) string {
	if h == nil {
		return ""
	}
	return models.FormatHours(*h)
}
