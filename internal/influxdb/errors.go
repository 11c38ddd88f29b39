package influxdb

import "errors"

var (
	// ErrConnectionFailed indicates the initial ping failed.
	ErrConnectionFailed = errors.New("influxdb: connection failed")

	// ErrWriteFailed wraps errors returned by the write API.
	ErrWriteFailed = errors.New("influxdb: write failed")

	// ErrIncompleteConfig is returned when URL, org or bucket is missing.
	ErrIncompleteConfig = errors.New("influxdb: url, org and bucket are required")
)
