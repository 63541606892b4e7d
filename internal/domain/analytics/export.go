package analytics

import (
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Title", "Advertiser", "Budget", "Status", "Start Date", "End Date"}

// WriteCSV renders export rows as a CSV document with a header line
func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX renders export rows as a single-sheet spreadsheet
func WriteXLSX(w io.Writer, rows []ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Campaigns"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, row := range rows {
		for col, value := range row.fields() {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func (r ExportRow) fields() []string {
	return []string{r.Title, r.AdvertiserEmail, r.Budget, r.Status, r.StartDate, r.EndDate}
}
