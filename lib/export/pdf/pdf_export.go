package pdfexport

import (
	"bytes"
	"fmt"

	reportapimodels "admin-dashboard-backend/models/api/report"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateProductStockReport renders the product stock report as a pdf table.
func GenerateProductStockReport(rows []reportapimodels.ProductStockRow) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateProductStockReport panic recover: %v", r)
		}
	}()
	pdf := newReportPdf("Product stock report")
	headers := []string{"Code", "Name", "Category", "Stock", "Unit price", "Total value", "Status", "Active"}
	widths := []float64{30, 60, 35, 20, 30, 30, 35, 17}
	writeTableHeader(pdf, headers, widths)
	pdf.SetFont("Arial", "", 9)
	for _, item := range rows {
		writeTableRow(pdf, widths, []string{
			item.Code,
			item.Name,
			item.Category,
			fmt.Sprintf("%d", item.Stock),
			fmt.Sprintf("%.2f", item.UnitPrice),
			fmt.Sprintf("%.2f", item.TotalValue),
			item.StockStatus,
			activeLabel(item.IsActive),
		})
	}
	return output(pdf)
}

// GenerateMakerCheckerSummary renders the request summary as a pdf table.
func GenerateMakerCheckerSummary(rows []reportapimodels.MakerCheckerSummaryRow) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateMakerCheckerSummary panic recover: %v", r)
		}
	}()
	pdf := newReportPdf("Change request summary")
	headers := []string{"Entity type", "Total", "Pending", "Approved", "Rejected", "Approval rate", "Avg hours"}
	widths := []float64{45, 30, 30, 30, 30, 40, 40}
	writeTableHeader(pdf, headers, widths)
	pdf.SetFont("Arial", "", 9)
	for _, item := range rows {
		writeTableRow(pdf, widths, []string{
			item.EntityType,
			fmt.Sprintf("%d", item.TotalRequests),
			fmt.Sprintf("%d", item.PendingCount),
			fmt.Sprintf("%d", item.ApprovedCount),
			fmt.Sprintf("%d", item.RejectedCount),
			fmt.Sprintf("%.1f%%", item.ApprovalRate*100),
			fmt.Sprintf("%.1f", item.AvgProcessingHours),
		})
	}
	return output(pdf)
}

func newReportPdf(title string) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)
	return pdf
}

func writeTableHeader(pdf *fpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for idx, header := range headers {
		pdf.CellFormat(widths[idx], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func writeTableRow(pdf *fpdf.Fpdf, widths []float64, values []string) {
	for idx, value := range values {
		pdf.CellFormat(widths[idx], 7, value, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func activeLabel(isActive bool) string {
	if isActive {
		return "Yes"
	}
	return "No"
}
