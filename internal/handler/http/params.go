package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/salary-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// pathID reads a UUID route param. A missing or malformed ID cannot match a
// row, so it is answered with notFound before any query runs.
func pathID(w http.ResponseWriter, r *http.Request, name string, notFound error) (string, bool) {
	id := chi.URLParam(r, name)
	if !validator.IsValidUUID(id) {
		response.HandleError(w, notFound)
		return "", false
	}
	return id, true
}

// monthYearParam reads integer month and year from the route,
// falling back to the query string for /salaries/export.
func monthYearParam(r *http.Request) (month, year int, ok bool) {
	rawMonth := chi.URLParam(r, "month")
	if rawMonth == "" {
		rawMonth = r.URL.Query().Get("month")
	}
	rawYear := chi.URLParam(r, "year")
	if rawYear == "" {
		rawYear = r.URL.Query().Get("year")
	}

	month, err := strconv.Atoi(rawMonth)
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(rawYear)
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}
