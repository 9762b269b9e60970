package stats

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExportCategoryReport writes the category report as an xlsx workbook:
// one header row, then one row per category bucket.
func ExportCategoryReport(report CategoryReport, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "Category")
	f.SetCellValue(sheet, "B1", "Count")
	f.SetCellValue(sheet, "C1", "TotalAmount")

	for i, c := range report.Categories {
		row := i + 2
		f.SetCellValue(sheet, "A"+fmt.Sprint(row), c.Category)
		f.SetCellValue(sheet, "B"+fmt.Sprint(row), c.Count)
		f.SetCellValue(sheet, "C"+fmt.Sprint(row), c.TotalAmount)
	}

	return f.Write(w)
}
