package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/repository"
)

func TestExportService_ExportSubmissions_Filtered(t *testing.T) {
	ts := setupTestServices()
	createSample(t, ts, "BSIT - 1A", "Ana", "Cruz")
	createSample(t, ts, "BSCS - 2A", "Ben", "Diaz")

	buf, filename, err := ts.export.ExportSubmissions(context.Background(), &dto.SubmissionFilter{Section: "BSCS - 2A"})
	if err != nil {
		t.Fatalf("ExportSubmissions should succeed: %v", err)
	}
	if filename != "CSO_Clearance_Payments.xlsx" {
		t.Errorf("unexpected filename %s", filename)
	}
	// .xlsx is a zip archive
	if b := buf.Bytes(); len(b) < 2 || b[0] != 'P' || b[1] != 'K' {
		t.Fatal("output is not an xlsx file")
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); !reflect.DeepEqual(sheets, []string{"Payments"}) {
		t.Errorf("expected single Payments sheet, got %v", sheets)
	}

	rows, err := f.GetRows("Payments")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	wantHeader := []string{"id", "firstName", "lastName", "middleName", "course", "section", "amount", "timestamp"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("unexpected header %v", rows[0])
	}
	// trailing empty cells are dropped by GetRows, middleName is empty here
	want := []string{"sub-2", "Ben", "Diaz", "", "BSCS", "2A", "10", "2025-01-15T08:30:00.000Z"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("unexpected row %v", rows[1])
	}
}

func TestExportService_ExportSubmissions_EmptyResult(t *testing.T) {
	ts := setupTestServices()

	buf, _, err := ts.export.ExportSubmissions(context.Background(), &dto.SubmissionFilter{Query: "nobody"})
	if err != nil {
		t.Fatalf("ExportSubmissions should succeed: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("Payments")
	if len(rows) != 1 {
		t.Errorf("expected header-only sheet, got %d rows", len(rows))
	}
}

func TestExportService_ExportSubmissions_StoreError(t *testing.T) {
	repo := repository.NewRepository(&failingStore{getErr: errStoreDown})
	svc := NewExportService(repo, zap.NewNop())

	_, _, err := svc.ExportSubmissions(context.Background(), nil)
	if !errors.Is(err, errStoreDown) {
		t.Errorf("expected store error, got %v", err)
	}
}
