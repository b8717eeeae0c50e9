package apiv1

import (
	"fmt"
	"io"

	"admin-dashboard-backend/controllers"
	filestoragehandler "admin-dashboard-backend/lib/file-storage"
	"admin-dashboard-backend/middleware"
	apimodels "admin-dashboard-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type fileController struct {
	controllers.BaseAPIController
}

func InitFileRouters(app *fiber.App) {
	controller := fileController{}
	app.Route("files", func(filesRootRoute fiber.Router) {
		filesRootRoute.Use(middleware.AuthorizationRequired())
		filesRootRoute.Post("", controller.UploadFile)
		filesRootRoute.Post("list", controller.ListFiles)
		filesRootRoute.Route(":id", func(filesIDRoute fiber.Router) {
			filesIDRoute.Get("", controller.DownloadFile)
			filesIDRoute.Delete("", middleware.SpaceAdminRequired(), controller.DeleteFile)
		})
	})
}

// @Summary Upload a file
// @Tags Files
// @Description Upload a file into the space storage
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	file			formData	file	true	"file body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/files [post]
func (c *fileController) UploadFile(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is not attached"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to open the attached file"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read the attached file"))
	}
	spaceID := middleware.GetUserSpace(ctx)
	uploadedBy := middleware.GetUserName(ctx)
	contentType := fileHeader.Header.Get("Content-Type")
	id, err := filestoragehandler.Instance.Upload(ctx.UserContext(), spaceID, uploadedBy, fileHeader.Filename, contentType, body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary List files
// @Tags Files
// @Description Get the paged list of files in the space storage
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body			body	apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]filesapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/files/list [post]
func (c *fileController) ListFiles(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	spaceID := middleware.GetUserSpace(ctx)
	list, rowCount, err := filestoragehandler.Instance.List(spaceID, page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Download a file
// @Tags Files
// @Description Download the file body
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"file ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/files/{id} [get]
func (c *fileController) DownloadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	body, rec, err := filestoragehandler.Instance.Download(ctx.UserContext(), spaceID, id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", rec.Name))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Delete a file
// @Tags Files
// @Description Delete a file from the space storage
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"file ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/files/{id} [delete]
func (c *fileController) DeleteFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	deletedBy := middleware.GetUserName(ctx)
	err = filestoragehandler.Instance.Delete(ctx.UserContext(), spaceID, id, deletedBy)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
