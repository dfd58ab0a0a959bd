package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	echoapi "github.com/brightacademy/backend/apps/api/echo"
	"github.com/brightacademy/backend/core"
	"github.com/brightacademy/backend/core/admin"
	"github.com/brightacademy/backend/core/catalog"
	"github.com/brightacademy/backend/core/contact"
	"github.com/brightacademy/backend/core/testimonial"
	emailsvc "github.com/brightacademy/backend/services/email"
	sendgridmail "github.com/brightacademy/backend/services/email/sendgrid"
	logsvc "github.com/brightacademy/backend/services/logger"
	pingsvc "github.com/brightacademy/backend/services/ping"
	cloudinaryupload "github.com/brightacademy/backend/services/uploader/cloudinary"
	dummyupload "github.com/brightacademy/backend/services/uploader/dummy"
	mongodb "github.com/brightacademy/backend/storage/mongo"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug)

	// set up DB
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	db, err := mongodb.Open(ctx, conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Client().Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect", err)
		}
	}()
	if err = mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal(fmt.Sprintf("ensuring indexes: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = sendgridmail.NewService(conf, logger)
	}

	var upSvc core.Uploader
	if conf.Debug {
		upSvc = dummyupload.NewService()
	} else {
		if upSvc, err = cloudinaryupload.NewService(conf); err != nil {
			logger.Fatal(fmt.Sprintf("setting up uploader: %v", err), err)
		}
	}

	admSvc := admin.NewService(mongodb.NewAdminRepository(db))
	catSvc := catalog.NewService(mongodb.NewCatalogRepository(db))
	tstSvc := testimonial.NewService(mongodb.NewTestimonialRepository(db))
	ctcSvc := contact.NewService(mailSvc, conf.ContactEmail)

	// keep the free-tier host from idling us out
	if !conf.Debug && conf.Server.HealthPingURL != "" {
		pinger := pingsvc.NewService(conf.Server.HealthPingURL, logger)
		if err = pinger.Start(); err != nil {
			logger.Fatal(fmt.Sprintf("starting keep-alive pinger: %v", err), err)
		}
		defer pinger.Stop()
	}

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:           conf.Server.Addr(),
			Conf:           conf,
			Logger:         logger,
			AdminSvc:       admSvc,
			CatalogSvc:     catSvc,
			TestimonialSvc: tstSvc,
			ContactSvc:     ctcSvc,
			Uploader:       upSvc,
		},
	)
	app.Start()
}
