package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"worktime/internal/models"
)

var timesheetHeader = []string{"Отдел", "ФИО", "Дата", "Часы"}

// WriteTimesheetCSV табель в CSV с разделителем ";", открывается в Excel
func WriteTimesheetCSV(w io.Writer, rows []models.TimesheetRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(timesheetHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Department, row.FullName, row.WorkDate.String(), models.FormatHours(row.Hours)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type PDFOptions struct {
	Title    string
	FontPath string // TTF с кириллицей; без него текст транслитерируется
}

var pdfColumns = []float64{50, 75, 35, 25}

// WriteTimesheetPDF табель таблицей на листе A4
func WriteTimesheetPDF(w io.Writer, rows []models.TimesheetRow, opts PDFOptions) error {
	pdf := gofpdf.New("P", "mm", "A4", "")

	family := "Helvetica"
	text := Transliterate
	if opts.FontPath != "" {
		family = "body"
		pdf.AddUTF8Font(family, "", opts.FontPath)
		pdf.AddUTF8Font(family, "B", opts.FontPath)
		text = func(s string) string { return s }
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("load pdf font: %w", err)
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 14)
	pdf.Cell(0, 10, text(opts.Title))
	pdf.Ln(12)

	pdf.SetFont(family, "B", 10)
	for i, h := range timesheetHeader {
		pdf.CellFormat(pdfColumns[i], 8, text(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 10)
	var total float64
	for _, row := range rows {
		cells := []string{row.Department, row.FullName, row.WorkDate.String(), models.FormatHours(row.Hours)}
		for i, c := range cells {
			align := "L"
			if i >= 2 {
				align = "R"
			}
			pdf.CellFormat(pdfColumns[i], 7, text(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		total += row.Hours
	}

	pdf.SetFont(family, "B", 10)
	pdf.CellFormat(pdfColumns[0]+pdfColumns[1]+pdfColumns[2], 7, text("Итого"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(pdfColumns[3], 7, fmt.Sprintf("%.2f", total), "1", 0, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
