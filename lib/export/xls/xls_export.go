package xlsexport

import (
	"bytes"
	"fmt"

	reportapimodels "admin-dashboard-backend/models/api/report"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportProductStockReport(rows []reportapimodels.ProductStockRow) (*bytes.Buffer, error)
	ExportMakerCheckerSummary(rows []reportapimodels.MakerCheckerSummaryRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var stockHeaders = []string{"Code", "Name", "Category", "Stock", "Unit price", "Total value", "Stock status", "Active"}

var summaryHeaders = []string{"Entity type", "Total requests", "Pending", "Approved", "Rejected", "Approval rate", "Avg processing hours"}

func (i impl) ExportProductStockReport(rows []reportapimodels.ProductStockRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, stockHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the xlsx header")
	}
	if len(rows) != 0 {
		if err = writeStockData(f, sheet, rows, row); err != nil {
			return nil, errors.Wrap(err, "failed to write the xlsx data")
		}
	}
	f.SetSheetName(sheet, "Product stock")
	return f.WriteToBuffer()
}

func (i impl) ExportMakerCheckerSummary(rows []reportapimodels.MakerCheckerSummaryRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, summaryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the xlsx header")
	}
	if len(rows) != 0 {
		if err = writeSummaryData(f, sheet, rows, row); err != nil {
			return nil, errors.Wrap(err, "failed to write the xlsx data")
		}
	}
	f.SetSheetName(sheet, "Request summary")
	return f.WriteToBuffer()
}

func writeStockData(f *excelize.File, sheet string, rows []reportapimodels.ProductStockRow, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(stockHeaders), len(rows)+1); err != nil {
		return err
	}
	for _, item := range rows {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Code); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Category); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Stock); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.UnitPrice); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalValue); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.StockStatus); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, activeLabel(item.IsActive)); err != nil {
			return err
		}
	}
	return nil
}

func writeSummaryData(f *excelize.File, sheet string, rows []reportapimodels.MakerCheckerSummaryRow, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(summaryHeaders), len(rows)+1); err != nil {
		return err
	}
	for _, item := range rows {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.EntityType); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalRequests); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.PendingCount); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.ApprovedCount); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.RejectedCount); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.1f%%", item.ApprovalRate*100)); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.1f", item.AvgProcessingHours)); err != nil {
			return err
		}
	}
	return nil
}

func activeLabel(isActive bool) string {
	if isActive {
		return "Yes"
	}
	return "No"
}
