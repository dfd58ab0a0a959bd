package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightacademy/backend/core"
	"github.com/brightacademy/backend/core/catalog"
)

type catalogApi struct {
	service  *catalog.Service
	uploader core.Uploader
}

func RegisterCatalogAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *catalog.Service, uploader core.Uploader) {
	api := catalogApi{service: svc, uploader: uploader}

	cg := g.Group("/courses")

	// un-authed endpoints
	cg.GET("", api.courseQuery)
	cg.GET("/:courseCode", api.courseRetrieve)

	// authed endpoints
	ag := cg.Group("", jwt)
	ag.POST("", api.courseCreate)
	ag.POST("/upload", api.courseUploadImage)
	ag.PUT("/:courseCode", api.courseUpdate)
	ag.DELETE("/:courseCode", api.courseDestroy)
}

// UpdateCourseResponse echoes the possibly-renamed course code back so
// clients can re-key.
type UpdateCourseResponse struct {
	Message           string         `json:"message"`
	UpdatedCourseCode string         `json:"updatedCourseCode"`
	Course            catalog.Course `json:"course"`
}

// Handlers

func (api *catalogApi) courseQuery(ctx echo.Context) error {
	cats, err := api.service.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cats)
}

func (api *catalogApi) courseRetrieve(ctx echo.Context) error {
	detail, err := api.service.GetByCode(ctx.Request().Context(), ctx.Param("courseCode"))
	if err != nil {
		if err == catalog.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Course not found")
		}
		return err
	}
	return ctx.JSON(http.StatusOK, detail)
}

func (api *catalogApi) courseCreate(ctx echo.Context) error {
	data := new(catalog.NewCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	cat, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		if err == catalog.ErrCourseCodeExists {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, cat)
}

func (api *catalogApi) courseUpdate(ctx echo.Context) error {
	data := new(catalog.UpdateCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	crs, err := api.service.Update(ctx.Request().Context(), ctx.Param("courseCode"), *data)
	if err != nil {
		switch err {
		case catalog.ErrNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "Course not found")
		case catalog.ErrCourseCodeExists:
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusOK, UpdateCourseResponse{
		Message:           "Course updated successfully",
		UpdatedCourseCode: crs.CourseCode,
		Course:            crs,
	})
}

func (api *catalogApi) courseDestroy(ctx echo.Context) error {
	if err := api.service.Delete(ctx.Request().Context(), ctx.Param("courseCode")); err != nil {
		if err == catalog.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Course not found")
		}
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Course removed"})
}

func (api *catalogApi) courseUploadImage(ctx echo.Context) error {
	fh, err := ctx.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	asset, err := api.uploader.Upload(ctx.Request().Context(), fh.Filename, f)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, asset)
}
