package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_DecodesEnvelopeAndSendsToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"emp-1","name":"Asha"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api/", time.Second, staticToken("tok"))

	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, client.Get(context.Background(), "/employees/emp-1", &out))
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/api/employees/emp-1", gotPath)
	assert.Equal(t, "Asha", out.Name)
}

func TestClient_ValidationFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"message":"Validation failed","code":"VALIDATION_ERROR","data":{"mobile":"Mobile number must be 10 digits"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)
	err := client.Post(context.Background(), "/employees", map[string]string{"mobile": "1"}, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.True(t, apiErr.HasFields())
	assert.Equal(t, "Mobile number must be 10 digits", apiErr.Fields["mobile"])
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestClient_UnauthorizedAndSuccessFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/soft" {
			_, _ = w.Write([]byte(`{"success":false,"message":"Salary already generated for this period"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid or expired token","code":"UNAUTHORIZED"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)

	err := client.Get(context.Background(), "/dashboard", nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid or expired token", err.Error())

	err = client.Get(context.Background(), "/soft", nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Salary already generated for this period", apiErr.Message)
	assert.False(t, apiErr.HasFields())
}

func TestClient_NetworkErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>proxy</html>`))
	}))
	client := NewClient(srv.URL, time.Second, nil)

	err := client.Get(context.Background(), "/dashboard", nil)
	assert.ErrorIs(t, err, ErrNetwork)

	srv.Close()
	err = client.Get(context.Background(), "/dashboard", nil)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_GetRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="salary-register-2024-06.xlsx"`)
		_, _ = w.Write([]byte("PK\x03\x04"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)
	data, filename, err := client.GetRaw(context.Background(), "/salaries/export?month=6&year=2024")
	require.NoError(t, err)
	assert.Equal(t, "salary-register-2024-06.xlsx", filename)
	assert.Equal(t, []byte("PK\x03\x04"), data)
}
