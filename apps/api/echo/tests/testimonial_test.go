package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/brightacademy/backend/core/testimonial"
	testutil "github.com/brightacademy/backend/tests"
)

func Test_testimonialApi_testimonialQuery(t *testing.T) {
	setup(t)

	empty := marchallList(t, []interface{}{}...)

	t.Run("no testimonials yet", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/testimonials")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: empty}, rec)
	})

	now := time.Now().UTC()
	oldest := testutil.CreateTestimonial(t, tstRepo, "Great course!", "Awe", "Student", 5, false, now.Add(-2*time.Hour))
	middle := testutil.CreateTestimonial(t, tstRepo, "Learned a lot", "King", "Developer", 4, true, now.Add(-time.Hour))
	newest := testutil.CreateTestimonial(t, tstRepo, "Best decision ever", "Hero", "Designer", 5, false, now)

	t.Run("newest first", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/testimonials")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallList(t, newest, middle, oldest)}, rec)
	})
}

func Test_testimonialApi_testimonialCreate(t *testing.T) {
	setup(t)

	adm := testutil.CreateAdmin(t, admRepo, "Awe", "awe@test.cd", "L0remIpsum!")
	admToken := getToken(t, adm)

	tests := []httpTest{
		{name: "auth required", body: []byte("{}"), wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "empty payload", token: admToken, body: []byte("{}"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"text":   "this field is required",
				"name":   "this field is required",
				"role":   "this field is required",
				"rating": "this field is required",
			}),
		},
		{
			name: "rating out of range", token: admToken,
			body:     []byte(`{"text":"Great!","name":"Awe","role":"Student","rating":6}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "created, not featured by default", token: admToken,
			body:     []byte(`{"text":"Great!","name":"Awe","role":"Student","rating":5}`),
			wantCode: http.StatusCreated, extra: false,
		},
		{
			name: "created featured", token: admToken,
			body:     []byte(`{"text":"Wow.","name":"King","role":"Developer","rating":4,"isFeatured":true}`),
			wantCode: http.StatusCreated, extra: true,
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/api/testimonials"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantData != nil {
				checkCodeAndData(t, tt, rec)
				return
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("failed! code = %v; wantCode %v; body = %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if wantFeatured, ok := tt.extra.(bool); ok {
				var tst testimonial.Testimonial
				if err := json.Unmarshal(rec.Body.Bytes(), &tst); err != nil {
					t.Fatalf("json.Unmarshal(): %v", err)
				}
				if tst.ID.IsZero() {
					t.Error("missing id in response")
				}
				if tst.IsFeatured != wantFeatured {
					t.Errorf("isFeatured = %v; want %v", tst.IsFeatured, wantFeatured)
				}
			}
		})
	}
}

func Test_testimonialApi_testimonialUpdate(t *testing.T) {
	setup(t)

	adm := testutil.CreateAdmin(t, admRepo, "Awe", "awe@test.cd", "L0remIpsum!")
	admToken := getToken(t, adm)

	tst := testutil.CreateTestimonial(t, tstRepo, "Great course!", "Awe", "Student", 5, true)
	path := "/api/testimonials/" + tst.ID.Hex()

	tests := []httpTest{
		{name: "auth required", path: path, body: []byte("{}"), wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "malformed id", path: "/api/testimonials/lol", token: admToken, body: []byte("{}"),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Testimonial not found"}),
		},
		{
			name: "unknown id", path: "/api/testimonials/60c72b2f9b1e8a5f4c8b4567", token: admToken, body: []byte("{}"),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Testimonial not found"}),
		},
		{
			name: "rating out of range", path: path, token: admToken, body: []byte(`{"rating":0}`),
			wantCode: http.StatusBadRequest,
		},
		{name: "text updated, rest kept", path: path, token: admToken, body: []byte(`{"text":"Still great!"}`), wantCode: http.StatusOK},
		// isFeatured:false must be honored, not treated as "not provided"
		{name: "unfeatured explicitly", path: path, token: admToken, body: []byte(`{"isFeatured":false}`), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		tt.method = http.MethodPut

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantData != nil {
				checkCodeAndData(t, tt, rec)
				return
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("failed! code = %v; wantCode %v; body = %s", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}

	t.Run("both updates stuck", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/testimonials")
		app.ServeHTTP(rec, req)

		var tsts []testimonial.Testimonial
		if err := json.Unmarshal(rec.Body.Bytes(), &tsts); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if len(tsts) != 1 {
			t.Fatalf("expected 1 testimonial, got %d", len(tsts))
		}
		got := tsts[0]
		if got.Text != "Still great!" || got.IsFeatured || got.Name != "Awe" || got.Rating != 5 {
			t.Errorf("unexpected record after updates: %+v", got)
		}
	})
}

func Test_testimonialApi_testimonialDestroy(t *testing.T) {
	setup(t)

	adm := testutil.CreateAdmin(t, admRepo, "Awe", "awe@test.cd", "L0remIpsum!")
	admToken := getToken(t, adm)

	tst := testutil.CreateTestimonial(t, tstRepo, "Great course!", "Awe", "Student", 5, false)
	path := "/api/testimonials/" + tst.ID.Hex()

	tests := []httpTest{
		{name: "auth required", path: path, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "malformed id", path: "/api/testimonials/lol", token: admToken,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Testimonial not found"}),
		},
		{name: "removed", path: path, token: admToken, wantCode: http.StatusOK, wantData: marchallObj(t, map[string]string{"msg": "Testimonial removed"})},
		{
			name: "removing twice fails", path: path, token: admToken,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Testimonial not found"}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodDelete

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
