package tests

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	echoapi "github.com/brightacademy/backend/apps/api/echo"
	"github.com/brightacademy/backend/apps/api/echo/helpers"
	"github.com/brightacademy/backend/core"
	"github.com/brightacademy/backend/core/admin"
	"github.com/brightacademy/backend/core/catalog"
	"github.com/brightacademy/backend/core/contact"
	"github.com/brightacademy/backend/core/testimonial"
	emailsvc "github.com/brightacademy/backend/services/email"
	logsvc "github.com/brightacademy/backend/services/logger"
	dummyupload "github.com/brightacademy/backend/services/uploader/dummy"
	inmemdb "github.com/brightacademy/backend/storage/inmem"
)

var (
	app  http.Handler
	conf *core.Config

	admRepo admin.Repository
	catSvc  *catalog.Service
	tstRepo testimonial.Repository
	upSvc   *dummyupload.Service

	errMissingToken = httpErr{Error: "access denied, no token provided"}
	errInvalidToken = httpErr{Error: "invalid or expired token"}
)

// setup rebuilds the whole app on a fresh in-memory store.
func setup(t *testing.T) {
	t.Helper()

	conf = &core.Config{
		TestMode:           true,
		Env:                "TEST",
		AppName:            "Bright Academy",
		SecretKey:          "0y+B_-KEEctmYeV2ZVZnqDBW3TCPK9ZWouNSCLZ4Qns",
		DefaultFromEmail:   mail.Address{Name: "Bright Academy", Address: "noreply@test.cd"},
		ContactEmail:       mail.Address{Name: "Bright Academy", Address: "hello@test.cd"},
		JWTExpirationDelta: 2 * time.Hour,
		Server:             core.ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}

	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)
	logger.Enable(false)

	db := inmemdb.NewDB()
	admRepo = inmemdb.NewAdminRepository(db)
	tstRepo = inmemdb.NewTestimonialRepository(db)

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	emailsvc.ClearSentMessages()
	upSvc = dummyupload.NewService()

	catSvc = catalog.NewService(inmemdb.NewCatalogRepository(db))

	app = echoapi.NewServer(
		&echoapi.Options{
			DisableReqLogs: true,
			Conf:           conf,
			Logger:         logger,
			AdminSvc:       admin.NewService(admRepo),
			CatalogSvc:     catSvc,
			TestimonialSvc: testimonial.NewService(tstRepo),
			ContactSvc:     contact.NewService(mailSvc, conf.ContactEmail),
			Uploader:       upSvc,
		},
	)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, adm admin.Admin) string {
	token, err := helpers.GenerateToken(helpers.GetAdminClaims(adm, conf), conf)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
