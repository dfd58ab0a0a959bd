package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightacademy/backend/apps/api/echo/helpers"
	"github.com/brightacademy/backend/core"
	"github.com/brightacademy/backend/core/admin"
)

type adminApi struct {
	service *admin.Service
	conf    *core.Config
}

func RegisterAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *admin.Service, conf *core.Config) {
	api := adminApi{service: svc, conf: conf}

	ag := g.Group("/admin")

	// un-authed endpoints
	ag.POST("/register", api.adminRegister)
	ag.POST("/login", api.adminLogin)

	// authed endpoints
	ag.GET("/profile", api.adminProfile, jwt)
}

// AuthResponse is the register/login response body.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Handlers

func (api *adminApi) adminRegister(ctx echo.Context) error {
	data := new(admin.NewAdmin)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	reqCtx := ctx.Request().Context()
	if err := data.Validate(reqCtx, api.service); err != nil {
		return err
	}

	adm, err := api.service.Register(reqCtx, *data)
	if err != nil {
		return err
	}

	token, err := helpers.GenerateToken(helpers.GetAdminClaims(adm, api.conf), api.conf)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, AuthResponse{
		ID:    adm.ID.Hex(),
		Name:  adm.Name,
		Email: adm.Email,
		Token: token,
	})
}

func (api *adminApi) adminLogin(ctx echo.Context) error {
	data := new(admin.Credentials)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	adm, err := helpers.Authenticate(ctx.Request().Context(), data.Email, data.Password, api.service)
	if err != nil {
		return err
	}

	token, err := helpers.GenerateToken(helpers.GetAdminClaims(adm, api.conf), api.conf)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, AuthResponse{
		ID:    adm.ID.Hex(),
		Name:  adm.Name,
		Email: adm.Email,
		Token: token,
	})
}

func (api *adminApi) adminProfile(ctx echo.Context) error {
	claims, err := helpers.GetContextClaims(ctx)
	if err != nil {
		return err
	}

	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "admin not found")
	}
	adm, err := api.service.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if err == admin.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusOK, adm)
}
