// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// parseIDParam reads a numeric path parameter. A zero return with
// ok=false means the value was missing or not a positive integer.
func parseIDParam(c echo.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

// parsePagination reads limit/offset query parameters with clamping.
func parsePagination(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}

	return limit, offset
}

// parsePage reads the 1-based page/limit pair used by the listing
// endpoints.
func parsePage(c echo.Context) (page, limit int) {
	page = 1
	if raw := c.QueryParam("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}

	limit = defaultPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return page, limit
}

// parseCSV splits a comma separated query parameter, dropping empty
// segments.
func parseCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	if len(values) == 0 {
		return nil
	}

	return values
}

func parseFloatPtr(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &v
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(raw)

	return err == nil && v
}
