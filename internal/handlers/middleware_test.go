package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSSERequest(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	handler := ValidateSSERequest(testHandler)

	tests := []struct {
		name           string
		queryString    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no parameters",
			queryString:    "",
			expectedStatus: http.StatusOK,
			expectedBody:   "OK",
		},
		{
			name:           "valid datastar parameter",
			queryString:    "datastar=" + url.QueryEscape(`{"connId":"","username":"Alice"}`),
			expectedStatus: http.StatusOK,
			expectedBody:   "OK",
		},
		{
			name:           "invalid parameter",
			queryString:    "invalid=test",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid parameter",
		},
		{
			name:           "duplicate datastar parameter",
			queryString:    "datastar=%7B%7D&datastar=%7B%7D",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid datastar parameter",
		},
		{
			name:           "malformed json",
			queryString:    "datastar=" + url.QueryEscape(`{"connId":`),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid datastar JSON",
		},
		{
			name:           "unknown signal",
			queryString:    "datastar=" + url.QueryEscape(`{"isAdmin":true}`),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid signal in datastar",
		},
		{
			name:           "datastar parameter too large",
			queryString:    "datastar=" + url.QueryEscape(`{"username":"`+strings.Repeat("a", 8200)+`"}`),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Datastar state too large",
		},
		{
			name:           "query string too large",
			queryString:    "datastar=" + strings.Repeat("a", 10001),
			expectedStatus: http.StatusRequestURITooLong,
			expectedBody:   "Query string too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/sse?"+tt.queryString, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
