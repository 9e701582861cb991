package service

import (
	"bytes"
	"context"
	"errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/model"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/repository"
)

// ── export errors ──

var (
	ErrExportGenerateFail = errors.New("generate Excel file failed")
)

// Export file layout
const (
	ExportSheetName = "Payments"
	ExportFilename  = "CSO_Clearance_Payments.xlsx"
)

// exportColumns Submission fields in their natural order
var exportColumns = []string{"id", "firstName", "lastName", "middleName", "course", "section", "amount", "timestamp"}

// ExportService export business interface
//
// The export is a snapshot of what the admin table shows: the filtered
// submissions, one row each, columns named after the Submission fields.
type ExportService interface {
	// ExportSubmissions returns the workbook and its download filename
	ExportSubmissions(ctx context.Context, filter *dto.SubmissionFilter) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportSubmissions(ctx context.Context, filter *dto.SubmissionFilter) (*bytes.Buffer, string, error) {
	subs, err := s.repo.Submission.List(ctx)
	if err != nil {
		s.logger.Error("list submissions failed", zap.Error(err))
		return nil, "", err
	}
	rows := FilterSubmissions(subs, filter)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		s.logger.Error("rename sheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		s.logger.Error("write header failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	for i := range rows {
		values := exportRow(&rows[i])
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ExportSheetName, cell, &values); err != nil {
			s.logger.Error("write row failed", zap.Int("row", i+2), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	s.logger.Info("submissions exported", zap.Int("rows", len(rows)))
	return buf, ExportFilename, nil
}

// exportRow values in exportColumns order
func exportRow(s *model.Submission) []interface{} {
	return []interface{}{
		s.ID,
		s.FirstName,
		s.LastName,
		s.MiddleName,
		s.Course,
		s.Section,
		s.Amount,
		s.Timestamp,
	}
}
