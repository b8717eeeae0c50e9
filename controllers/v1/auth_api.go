package apiv1

import (
	"admin-dashboard-backend/controllers"
	spaceauthhandler "admin-dashboard-backend/lib/space/auth"
	apimodels "admin-dashboard-backend/models/api"
	authapimodels "admin-dashboard-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authController struct {
	controllers.BaseAPIController
}

func InitAuthRouters(app *fiber.App) {
	controller := authController{}
	app.Route("auth", func(authRoute fiber.Router) {
		authRoute.Post("login", controller.Login)
	})
}

// @Summary Space user login
// @Tags Auth
// @Description Exchange email and password for a JWT
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authController) Login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response, err := spaceauthhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}
