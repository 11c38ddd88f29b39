// Package utils provides small helpers shared by the server and the client:
// trace id generation and the resty-based HTTP client.
package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 string. It falls back to a random
// UUIDv4 when the v7 generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
