package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseInt64 converts string to int64, reporting whether it parsed
func ParseInt64(value string) (int64, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}

	return result, true
}
