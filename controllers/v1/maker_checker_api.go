package apiv1

import (
	"admin-dashboard-backend/controllers"
	makercheckerhandler "admin-dashboard-backend/lib/maker-checker"
	"admin-dashboard-backend/middleware"
	apimodels "admin-dashboard-backend/models/api"
	mcapimodels "admin-dashboard-backend/models/api/makerchecker"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type makerCheckerController struct {
	controllers.BaseAPIController
}

func InitMakerCheckerRouters(app *fiber.App) {
	controller := makerCheckerController{}
	app.Route("maker_checker", func(requestsRootRoute fiber.Router) {
		requestsRootRoute.Use(middleware.AuthorizationRequired())
		requestsRootRoute.Post("", middleware.MakerRequired(), controller.Submit)
		requestsRootRoute.Post("list", controller.ListRequests)
		requestsRootRoute.Route(":id", func(requestsIDRoute fiber.Router) {
			requestsIDRoute.Get("", controller.GetRequestByID)
			requestsIDRoute.Post("approve", middleware.CheckerRequired(), controller.Approve)
			requestsIDRoute.Post("reject", middleware.CheckerRequired(), controller.Reject)
			requestsIDRoute.Post("execute", middleware.CheckerRequired(), controller.Execute)
		})
	})
}

// sendDecisionError maps the workflow error taxonomy onto HTTP statuses.
func (c *makerCheckerController) sendDecisionError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, makercheckerhandler.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, makercheckerhandler.ErrAlreadyProcessed),
		errors.Is(err, makercheckerhandler.ErrInvalidState):
		status = fiber.StatusConflict
	case errors.Is(err, makercheckerhandler.ErrSelfApproval):
		status = fiber.StatusForbidden
	case errors.Is(err, makercheckerhandler.ErrMissingComments),
		errors.Is(err, makercheckerhandler.ErrMalformedPayload),
		errors.Is(err, makercheckerhandler.ErrUnsupportedEntityType):
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}

// @Summary Submit a change request
// @Tags Change requests
// @Description Capture a pending change request for checker review
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body			body	mcapimodels.SubmitRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/maker_checker [post]
func (c *makerCheckerController) Submit(ctx *fiber.Ctx) error {
	var payload mcapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	makerID := middleware.GetUserID(ctx)
	makerName := middleware.GetUserName(ctx)
	id, err := makercheckerhandler.Instance.Submit(spaceID, payload, makerID, makerName)
	if err != nil {
		if errors.Is(err, makercheckerhandler.ErrMalformedPayload) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary List change requests
// @Tags Change requests
// @Description Get the paged list of change requests, optionally filtered by status
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body			body	mcapimodels.ListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]mcapimodels.PendingRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/maker_checker/list [post]
func (c *makerCheckerController) ListRequests(ctx *fiber.Ctx) error {
	var payload mcapimodels.ListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	spaceID := middleware.GetUserSpace(ctx)
	list, rowCount, err := makercheckerhandler.Instance.List(spaceID, payload.StatusFilter(), page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get a change request by ID
// @Tags Change requests
// @Description Get a change request by ID
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"change request ID"
// @Success 200 {object} apimodels.Response{data=mcapimodels.PendingRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/maker_checker/{id} [get]
func (c *makerCheckerController) GetRequestByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	request, err := makercheckerhandler.Instance.GetByID(spaceID, id)
	if err != nil {
		return c.sendDecisionError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(request))
}

// @Summary Approve a change request
// @Tags Change requests
// @Description Authorize the request and materialize the change
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"change request ID"
// @Param	body			body	mcapimodels.DecideRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=mcapimodels.DecisionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/maker_checker/{id}/approve [post]
func (c *makerCheckerController) Approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload mcapimodels.DecideRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	checkerID := middleware.GetUserID(ctx)
	checkerName := middleware.GetUserName(ctx)
	result, err := makercheckerhandler.Instance.Approve(spaceID, id, checkerID, checkerName, payload.Comments)
	if err != nil {
		return c.sendDecisionError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Reject a change request
// @Tags Change requests
// @Description Reject the request, comments are mandatory
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"change request ID"
// @Param	body			body	mcapimodels.DecideRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/maker_checker/{id}/reject [post]
func (c *makerCheckerController) Reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload mcapimodels.DecideRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	checkerID := middleware.GetUserID(ctx)
	checkerName := middleware.GetUserName(ctx)
	err = makercheckerhandler.Instance.Reject(spaceID, id, checkerID, checkerName, payload.Comments)
	if err != nil {
		return c.sendDecisionError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Execute an approved change request
// @Tags Change requests
// @Description Retry materialization of an approved but unexecuted request
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"change request ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/maker_checker/{id}/execute [post]
func (c *makerCheckerController) Execute(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = makercheckerhandler.Instance.ExecuteApproved(spaceID, id)
	if err != nil {
		return c.sendDecisionError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
