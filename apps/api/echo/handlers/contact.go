package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightacademy/backend/core/contact"
)

type contactApi struct {
	service *contact.Service
}

func RegisterContactAPI(g *echo.Group, svc *contact.Service) {
	api := contactApi{service: svc}
	g.POST("/contact", api.contactSend)
}

func (api *contactApi) contactSend(ctx echo.Context) error {
	data := new(contact.Message)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	api.service.Send(*data)
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Message sent"})
}
