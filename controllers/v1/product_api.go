package apiv1

import (
	"admin-dashboard-backend/controllers"
	producthandler "admin-dashboard-backend/lib/product"
	"admin-dashboard-backend/middleware"
	apimodels "admin-dashboard-backend/models/api"
	productapimodels "admin-dashboard-backend/models/api/product"

	"github.com/gofiber/fiber/v2"
)

type productController struct {
	controllers.BaseAPIController
}

// InitProductRouters mounts direct product access. Mutations here bypass the
// change request flow and are limited to space admins.
func InitProductRouters(app *fiber.App) {
	controller := productController{}
	app.Route("products", func(productsRootRoute fiber.Router) {
		productsRootRoute.Use(middleware.AuthorizationRequired())
		productsRootRoute.Post("list", controller.ListProducts)
		productsRootRoute.Post("", middleware.SpaceAdminRequired(), controller.CreateProduct)
		productsRootRoute.Route(":id", func(productsIDRoute fiber.Router) {
			productsIDRoute.Get("", controller.GetProductByID)
			productsIDRoute.Put("", middleware.SpaceAdminRequired(), controller.UpdateProduct)
			productsIDRoute.Delete("", middleware.SpaceAdminRequired(), controller.DeleteProduct)
		})
	})
}

// @Summary Create a product
// @Tags Products
// @Description Create a product directly, without a change request
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body			body	productapimodels.CreateProduct	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/products [post]
func (c *productController) CreateProduct(ctx *fiber.Ctx) error {
	var payload productapimodels.CreateProduct
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	createdBy := middleware.GetUserName(ctx)
	id, err := producthandler.Instance.CreateProduct(spaceID, createdBy, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Update a product
// @Tags Products
// @Description Update a product directly, without a change request
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"product ID"
// @Param	body			body	productapimodels.UpdateProduct	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/products/{id} [put]
func (c *productController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload productapimodels.UpdateProduct
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	modifiedBy := middleware.GetUserName(ctx)
	err = producthandler.Instance.UpdateProduct(spaceID, id, modifiedBy, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a product
// @Tags Products
// @Description Delete a product directly, without a change request
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"product ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/products/{id} [delete]
func (c *productController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = producthandler.Instance.DeleteProduct(spaceID, id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List products
// @Tags Products
// @Description Get the paged list of products
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body			body	apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]productapimodels.ProductView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/products/list [post]
func (c *productController) ListProducts(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	spaceID := middleware.GetUserSpace(ctx)
	list, rowCount, err := producthandler.Instance.List(spaceID, page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get a product by ID
// @Tags Products
// @Description Get a product by ID
// @Param   Authorization	header	string	true	"Authorization token"
// @Param 	id 				path 	string  true 	"product ID"
// @Success 200 {object} apimodels.Response{data=productapimodels.ProductView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/products/{id} [get]
func (c *productController) GetProductByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	product, err := producthandler.Instance.GetByID(spaceID, id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(product))
}
