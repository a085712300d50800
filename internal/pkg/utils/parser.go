package utils

import (
	"hospital-service/internal/pkg/constvars"
	"strconv"
)

// ParseLimitQueryParam interprets the `limit` query parameter for list
// endpoints. Absent or non-positive values fall back to the default.
func ParseLimitQueryParam(raw string) (int64, error) {
	if raw == "" {
		return constvars.DefaultListLimit, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if limit <= 0 {
		return constvars.DefaultListLimit, nil
	}
	return limit, nil
}
