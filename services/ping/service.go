package pingsvc

import (
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/brightacademy/backend/core"
)

// schedule keeps the spacing under typical free-tier idle timeouts.
const schedule = "*/14 * * * *"

// Service periodically pings our own health endpoint to keep the host
// from idling the process out.
type Service struct {
	cron   *cron.Cron
	url    string
	client *http.Client
	logger core.Logger
}

func NewService(url string, logger core.Logger) *Service {
	return &Service{
		cron:   cron.New(),
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

func (svc *Service) Start() error {
	if _, err := svc.cron.AddFunc(schedule, svc.ping); err != nil {
		return err
	}
	svc.cron.Start()
	return nil
}

// Stop waits for a running ping to finish.
func (svc *Service) Stop() {
	<-svc.cron.Stop().Done()
}

func (svc *Service) ping() {
	res, err := svc.client.Get(svc.url)
	if err != nil {
		svc.logger.Error("keep-alive ping failed", err)
		return
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		svc.logger.Warn(fmt.Sprintf("keep-alive ping returned %d", res.StatusCode))
		return
	}
	svc.logger.Debug("keep-alive ping OK")
}
