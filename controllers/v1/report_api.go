package apiv1

import (
	"bytes"

	"admin-dashboard-backend/controllers"
	pdfexport "admin-dashboard-backend/lib/export/pdf"
	xlsexport "admin-dashboard-backend/lib/export/xls"
	reporthandler "admin-dashboard-backend/lib/report"
	"admin-dashboard-backend/middleware"
	apimodels "admin-dashboard-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

const (
	formatJSON = "json"
	formatXLSX = "xlsx"
	formatPDF  = "pdf"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportController struct {
	controllers.BaseAPIController
}

func InitReportRouters(app *fiber.App) {
	controller := reportController{}
	app.Route("reports", func(reportsRootRoute fiber.Router) {
		reportsRootRoute.Use(middleware.AuthorizationRequired())
		reportsRootRoute.Get("product-stock", controller.ProductStockReport)
		reportsRootRoute.Get("request-summary", controller.MakerCheckerSummary)
	})
}

// @Summary Product stock report
// @Tags Reports
// @Description Get the product stock report as json, xlsx or pdf
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   format			query	string	false	"json (default), xlsx or pdf"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/reports/product-stock [get]
func (c *reportController) ProductStockReport(ctx *fiber.Ctx) error {
	spaceID := middleware.GetUserSpace(ctx)
	rows, err := reporthandler.Instance.ProductStockReport(spaceID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	switch ctx.Query("format", formatJSON) {
	case formatJSON:
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rows))
	case formatXLSX:
		buf, err := xlsexport.Instance.ExportProductStockReport(rows)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		return c.sendFile(ctx, "product_stock.xlsx", xlsxContentType, buf)
	case formatPDF:
		body, err := pdfexport.GenerateProductStockReport(rows)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		return c.sendFile(ctx, "product_stock.pdf", "application/pdf", bytes.NewBuffer(body))
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unknown report format"))
}

// @Summary Change request summary report
// @Tags Reports
// @Description Get the change request summary per entity type as json, xlsx or pdf
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   format			query	string	false	"json (default), xlsx or pdf"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/reports/request-summary [get]
func (c *reportController) MakerCheckerSummary(ctx *fiber.Ctx) error {
	spaceID := middleware.GetUserSpace(ctx)
	rows, err := reporthandler.Instance.MakerCheckerSummary(spaceID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	switch ctx.Query("format", formatJSON) {
	case formatJSON:
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rows))
	case formatXLSX:
		buf, err := xlsexport.Instance.ExportMakerCheckerSummary(rows)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		return c.sendFile(ctx, "request_summary.xlsx", xlsxContentType, buf)
	case formatPDF:
		body, err := pdfexport.GenerateMakerCheckerSummary(rows)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		return c.sendFile(ctx, "request_summary.pdf", "application/pdf", bytes.NewBuffer(body))
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unknown report format"))
}

func (c *reportController) sendFile(ctx *fiber.Ctx, fileName, contentType string, buf *bytes.Buffer) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
