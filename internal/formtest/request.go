// Package formtest provides request builders for exercising form endpoints
// in tests.
package formtest

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"go.inout.gg/foundations/must"
)

// NewFormRequest builds a url-encoded POST request carrying form.
func NewFormRequest(target string, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return r, httptest.NewRecorder()
}

// NewJSONRequest builds a POST request carrying a raw JSON body.
func NewJSONRequest(target string, body string) (*http.Request, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	return r, httptest.NewRecorder()
}

// NewMultipartRequest builds a multipart/form-data POST request from the
// given fields. Repeated values under one key are preserved in order.
func NewMultipartRequest(target string, fields url.Values) (*http.Request, *httptest.ResponseRecorder) {
	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, value := range values {
			must.Must1(mw.WriteField(key, value))
		}
	}

	must.Must1(mw.Close())

	r := httptest.NewRequest(http.MethodPost, target, &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	return r, httptest.NewRecorder()
}
