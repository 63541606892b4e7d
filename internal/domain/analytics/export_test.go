package analytics

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleRows() []ExportRow {
	return []ExportRow{
		{
			Title:           "Summer promo",
			AdvertiserEmail: "ads@example.com",
			Budget:          "1500.00",
			Status:          "active",
			StartDate:       "2026-06-01",
			EndDate:         "2026-06-30",
		},
		{
			Title:           "Autumn, with commas",
			AdvertiserEmail: "other@example.com",
			Budget:          "0.00",
			Status:          "draft",
			StartDate:       "2026-09-01",
			EndDate:         "2026-09-30",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "Title" || records[0][5] != "End Date" {
		t.Fatalf("wrong header: %v", records[0])
	}
	if records[1][0] != "Summer promo" || records[1][2] != "1500.00" {
		t.Fatalf("wrong first row: %v", records[1])
	}
	if records[2][0] != "Autumn, with commas" {
		t.Fatalf("comma in title must survive quoting: %v", records[2])
	}
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleRows()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Campaigns")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Title" {
		t.Fatalf("wrong header: %v", rows[0])
	}
	if rows[1][1] != "ads@example.com" {
		t.Fatalf("wrong advertiser cell: %v", rows[1])
	}
	if rows[2][3] != "draft" {
		t.Fatalf("wrong status cell: %v", rows[2])
	}
}
