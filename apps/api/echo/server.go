package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/brightacademy/backend/apps/api/echo/handlers"
	"github.com/brightacademy/backend/apps/api/echo/helpers"
	"github.com/brightacademy/backend/core"
	"github.com/brightacademy/backend/core/admin"
	"github.com/brightacademy/backend/core/catalog"
	"github.com/brightacademy/backend/core/contact"
	"github.com/brightacademy/backend/core/testimonial"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		Conf           *core.Config
		Logger         core.Logger
		AdminSvc       *admin.Service
		CatalogSvc     *catalog.Service
		TestimonialSvc *testimonial.Service
		ContactSvc     *contact.Service
		Uploader       core.Uploader
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	// only the fixed allow-list of origins may call us cross-origin
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     conf.Server.AllowedOrigins,
		AllowCredentials: true,
	}))

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	api := s.app.Group("/api")
	api.GET("/health", healthCheck)

	jwt := middleware.JWTWithConfig(helpers.NewJWTConfig(conf))

	handlers.RegisterAdminAPI(api, jwt, s.opts.AdminSvc, conf)
	handlers.RegisterCatalogAPI(api, jwt, s.opts.CatalogSvc, s.opts.Uploader)
	handlers.RegisterTestimonialAPI(api, jwt, s.opts.TestimonialSvc)
	handlers.RegisterContactAPI(api, s.opts.ContactSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "API is running...")
}

func healthCheck(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "OK"})
}
