package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("entry not found")
	ErrBodyTooLarge        = errors.New("request body too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrGatewayTimeout      = errors.New("request timed out on server")
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Header().Get("WWW-Authenticate"))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Request.URL)
	case http.StatusRequestEntityTooLarge:
		return ErrBodyTooLarge
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusGatewayTimeout:
		return ErrGatewayTimeout
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
