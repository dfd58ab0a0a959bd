package tests

import (
	"net/http"
	"testing"
)

func Test_server_home(t *testing.T) {
	setup(t)

	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "API is running..." {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func Test_server_healthCheck(t *testing.T) {
	setup(t)

	for _, path := range []string{"/api/health", "/api/health/"} {
		req, rec := newRequest(http.MethodGet, path)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, map[string]string{"status": "OK"})}, rec)
	}
}
