package utils

import "time"

// ParseDate parses an optional YYYY-MM-DD query parameter. An empty
// string yields nil, not an error.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
