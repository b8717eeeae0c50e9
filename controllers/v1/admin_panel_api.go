package apiv1

import (
	"admin-dashboard-backend/controllers"
	adminpanelauthhandler "admin-dashboard-backend/lib/admin-panel/auth"
	spacehandler "admin-dashboard-backend/lib/space/handler"
	"admin-dashboard-backend/middleware"
	apimodels "admin-dashboard-backend/models/api"
	authapimodels "admin-dashboard-backend/models/api/auth"
	spaceapimodels "admin-dashboard-backend/models/api/space"

	"github.com/gofiber/fiber/v2"
)

type adminPanelController struct {
	controllers.BaseAPIController
}

func InitAdminPanelRouters(app *fiber.App) {
	controller := adminPanelController{}
	app.Route("admin_panel", func(adminRoute fiber.Router) {
		adminRoute.Post("login", controller.Login)
		adminRoute.Route("spaces", func(spacesRoute fiber.Router) {
			spacesRoute.Use(middleware.AdminPanelAuthorizationRequired())
			spacesRoute.Use(middleware.SuperAdminRoleRequired())
			spacesRoute.Post("", controller.CreateSpace)
			spacesRoute.Post("list", controller.ListSpaces)
			spacesRoute.Route(":id", func(spacesIDRoute fiber.Router) {
				spacesIDRoute.Get("", controller.GetSpaceByID)
				spacesIDRoute.Put("", controller.UpdateSpace)
			})
		})
	})
}

// @Summary Admin panel login
// @Tags Admin panel
// @Description Exchange email and password for an admin panel JWT
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/admin_panel/login [post]
func (c *adminPanelController) Login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response, err := adminpanelauthhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}

// @Summary Create a space
// @Tags Admin panel
// @Description Create a space together with its first space admin
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body			body	spaceapimodels.CreateSpace	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/spaces [post]
func (c *adminPanelController) CreateSpace(ctx *fiber.Ctx) error {
	var payload spaceapimodels.CreateSpace
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := spacehandler.Instance.CreateSpace(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary List spaces
// @Tags Admin panel
// @Description Get the paged list of spaces
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body			body	apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]spaceapimodels.SpaceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/spaces/list [post]
func (c *adminPanelController) ListSpaces(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	list, rowCount, err := spacehandler.Instance.List(page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get a space by ID
// @Tags Admin panel
// @Description Get a space by ID
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"space ID"
// @Success 200 {object} apimodels.Response{data=spaceapimodels.SpaceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/spaces/{id} [get]
func (c *adminPanelController) GetSpaceByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	space, err := spacehandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(space))
}

// @Summary Update a space
// @Tags Admin panel
// @Description Update a space
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"space ID"
// @Param	body			body	spaceapimodels.UpdateSpace	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/spaces/{id} [put]
func (c *adminPanelController) UpdateSpace(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload spaceapimodels.UpdateSpace
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = spacehandler.Instance.UpdateSpace(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
