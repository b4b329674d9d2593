// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// csrfHandler echoes the context token so tests can read it.
func csrfHandler(secure bool) http.Handler {
	return NewCSRF(secure)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(CSRFToken(r)))
	}))
}

func TestCSRFIssuesCookieAndContextToken(t *testing.T) {
	for _, secure := range []bool{true, false} {
		rr := httptest.NewRecorder()
		csrfHandler(secure).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		var cookie *http.Cookie
		for _, c := range rr.Result().Cookies() {
			if c.Name == CSRFCookieName {
				cookie = c
			}
		}
		if cookie == nil {
			t.Fatal("CSRF cookie not set")
		}
		if cookie.Secure != secure {
			t.Errorf("cookie Secure: got %v, want %v", cookie.Secure, secure)
		}
		if cookie.SameSite != http.SameSiteStrictMode {
			t.Errorf("cookie SameSite: got %v, want StrictMode", cookie.SameSite)
		}
		if len(cookie.Value) != csrfTokenLength*2 {
			t.Errorf("token length = %d", len(cookie.Value))
		}
		if rr.Body.String() != cookie.Value {
			t.Errorf("context token %q != cookie %q", rr.Body.String(), cookie.Value)
		}
	}
}

func TestCSRFReusesExistingCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "existing"})
	rr := httptest.NewRecorder()
	csrfHandler(false).ServeHTTP(rr, req)

	if len(rr.Result().Cookies()) != 0 {
		t.Error("a new cookie was issued although one existed")
	}
	if rr.Body.String() != "existing" {
		t.Errorf("context token = %q", rr.Body.String())
	}
}

func TestCSRFValidation(t *testing.T) {
	tests := []struct {
		name   string
		method string
		header string
		form   string
		want   int
	}{
		{"get passes without token", http.MethodGet, "", "", http.StatusOK},
		{"post without token", http.MethodPost, "", "", http.StatusForbidden},
		{"post wrong header", http.MethodPost, "nope", "", http.StatusForbidden},
		{"post header", http.MethodPost, "tok", "", http.StatusOK},
		{"post form field", http.MethodPost, "", "tok", http.StatusOK},
		{"delete header", http.MethodDelete, "tok", "", http.StatusOK},
		{"delete without token", http.MethodDelete, "", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.form != "" {
				body := url.Values{CSRFFormField: {tt.form}}.Encode()
				req = httptest.NewRequest(tt.method, "/generate", strings.NewReader(body))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			} else {
				req = httptest.NewRequest(tt.method, "/generate", nil)
			}
			req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "tok"})
			if tt.header != "" {
				req.Header.Set(CSRFHeaderName, tt.header)
			}

			rr := httptest.NewRecorder()
			csrfHandler(false).ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestCSRFTokenWithoutMiddleware(t *testing.T) {
	if got := CSRFToken(httptest.NewRequest(http.MethodGet, "/", nil)); got != "" {
		t.Errorf("CSRFToken outside middleware = %q, want empty", got)
	}
}
