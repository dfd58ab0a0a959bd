package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightacademy/backend/core/testimonial"
)

type testimonialApi struct {
	service *testimonial.Service
}

func RegisterTestimonialAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *testimonial.Service) {
	api := testimonialApi{service: svc}

	tg := g.Group("/testimonials")

	// un-authed endpoints
	tg.GET("", api.testimonialQuery)

	// authed endpoints
	ag := tg.Group("", jwt)
	ag.POST("", api.testimonialCreate)
	ag.PUT("/:id", api.testimonialUpdate)
	ag.DELETE("/:id", api.testimonialDestroy)
}

// Handlers

func (api *testimonialApi) testimonialQuery(ctx echo.Context) error {
	tsts, err := api.service.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tsts)
}

func (api *testimonialApi) testimonialCreate(ctx echo.Context) error {
	data := new(testimonial.NewTestimonial)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	tst, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, tst)
}

func (api *testimonialApi) testimonialUpdate(ctx echo.Context) error {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Testimonial not found")
	}

	data := new(testimonial.UpdateTestimonial)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	tst, err := api.service.Update(ctx.Request().Context(), id, *data)
	if err != nil {
		if err == testimonial.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Testimonial not found")
		}
		return err
	}
	return ctx.JSON(http.StatusOK, tst)
}

func (api *testimonialApi) testimonialDestroy(ctx echo.Context) error {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Testimonial not found")
	}

	if err := api.service.Delete(ctx.Request().Context(), id); err != nil {
		if err == testimonial.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Testimonial not found")
		}
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"msg": "Testimonial removed"})
}
