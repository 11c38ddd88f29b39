package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/service"
	"github.com/MKhiriev/go-io-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_ReadInput(t *testing.T) {
	router, ioService := newMockedRouter(t, Settings{})
	ioService.EXPECT().ReadInput(gomock.Any(), "temp").Return("21.5C@100", nil)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/temp", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "21.5C@100", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_WriteOutput(t *testing.T) {
	router, ioService := newMockedRouter(t, Settings{})
	gomock.InOrder(
		ioService.EXPECT().LookupOutput(gomock.Any(), "setpoint").Return(nil),
		ioService.EXPECT().WriteOutput(gomock.Any(), "setpoint", "25").Return(nil),
	)

	rr := serve(router, httptest.NewRequest(http.MethodPost, "/setpoint", strings.NewReader("25")))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestInit_EntryNameFromPath(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "query is ignored", target: "/test?foo=bar", want: "test"},
		{name: "no decoding", target: "/a%20b", want: "a%20b"},
		{name: "no segment splitting", target: "/a/b", want: "a/b"},
		{name: "root", target: "/", want: ""},
		{name: "only the first slash is removed", target: "//x", want: "/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ioService := newMockedRouter(t, Settings{})
			ioService.EXPECT().ReadInput(gomock.Any(), tt.want).Return("ok", nil)

			rr := serve(router, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestInit_ServiceErrorsToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "input not found", err: service.ErrInputNotFound, wantStatus: http.StatusNotFound},
		{name: "input conversion", err: service.ErrInputConversion, wantStatus: http.StatusInternalServerError},
		{name: "converter panic", err: service.ErrConverterPanic, wantStatus: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("%w: %q", service.ErrInputNotFound, "x"), wantStatus: http.StatusNotFound},
		{name: "unexpected", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ioService := newMockedRouter(t, Settings{})
			ioService.EXPECT().ReadInput(gomock.Any(), "x").Return("", tt.err)

			rr := serve(router, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestInit_WriteErrorsToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "output not found", err: service.ErrOutputNotFound, wantStatus: http.StatusNotFound},
		{name: "output conversion", err: service.ErrOutputConversion, wantStatus: http.StatusBadRequest},
		{name: "converter panic", err: service.ErrConverterPanic, wantStatus: http.StatusInternalServerError},
		{name: "unresolved converter", err: service.ErrUnresolvedConverter, wantStatus: http.StatusInternalServerError},
		{name: "cancelled", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ioService := newMockedRouter(t, Settings{})
			ioService.EXPECT().LookupOutput(gomock.Any(), "x").Return(nil)
			ioService.EXPECT().WriteOutput(gomock.Any(), "x", "1").Return(tt.err)

			rr := serve(router, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("1")))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestInit_OtherMethodsAreNotFound(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions, http.MethodHead} {
		t.Run(method, func(t *testing.T) {
			// no EXPECT: the service must not be reached
			router, _ := newMockedRouter(t, Settings{})

			rr := serve(router, httptest.NewRequest(method, "/temp", nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestInit_UnknownOutputIsRejectedBeforeBody(t *testing.T) {
	router, ioService := newMockedRouter(t, Settings{MaxBodyBytes: 4})
	ioService.EXPECT().LookupOutput(gomock.Any(), "unknown").
		Return(fmt.Errorf("%w: %q", service.ErrOutputNotFound, "unknown"))

	rr := serve(router, httptest.NewRequest(http.MethodPost, "/unknown", strings.NewReader("far too long")))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestInit_BodyTooLarge(t *testing.T) {
	router, ioService := newMockedRouter(t, Settings{MaxBodyBytes: 4})
	ioService.EXPECT().LookupOutput(gomock.Any(), "setpoint").Return(nil)

	rr := serve(router, httptest.NewRequest(http.MethodPost, "/setpoint", strings.NewReader("12345")))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestInit_BodyAtLimit(t *testing.T) {
	router, ioService := newMockedRouter(t, Settings{MaxBodyBytes: 4})
	ioService.EXPECT().LookupOutput(gomock.Any(), "setpoint").Return(nil)
	ioService.EXPECT().WriteOutput(gomock.Any(), "setpoint", "1234").Return(nil)

	rr := serve(router, httptest.NewRequest(http.MethodPost, "/setpoint", strings.NewReader("1234")))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_RequestTimeout(t *testing.T) {
	router, ioService := newMockedRouter(t, Settings{RequestTimeout: 10 * time.Millisecond})
	ioService.EXPECT().ReadInput(gomock.Any(), "slow").DoAndReturn(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
}

// ─────────────────────────────────────────────
// Authentication through the router
// ─────────────────────────────────────────────

func TestInit_Auth(t *testing.T) {
	auth := &models.Auth{User: "user", Password: "pass", Realm: "test"}

	tests := []struct {
		name          string
		header        string
		path          string
		expectService bool
		wantStatus    int
	}{
		{name: "no header", path: "/temp", wantStatus: http.StatusUnauthorized},
		{name: "wrong password", header: (&models.Auth{User: "user", Password: "nope"}).Header(), path: "/temp", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Bearer token", path: "/temp", wantStatus: http.StatusUnauthorized},
		{name: "lowercase scheme", header: strings.Replace(auth.Header(), "Basic", "basic", 1), path: "/temp", wantStatus: http.StatusUnauthorized},
		{name: "unknown path without auth is 401", path: "/unknown", wantStatus: http.StatusUnauthorized},
		{name: "correct header", header: auth.Header(), path: "/temp", expectService: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ioService := newMockedRouter(t, Settings{Auth: auth})
			if tt.expectService {
				ioService.EXPECT().ReadInput(gomock.Any(), "temp").Return("ok", nil)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rr := serve(router, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="test"`, rr.Header().Get("WWW-Authenticate"))
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func TestInit_AuthenticatedUnknownPathIsNotFound(t *testing.T) {
	auth := &models.Auth{User: "user", Password: "pass", Realm: "test"}
	router, ioService := newMockedRouter(t, Settings{Auth: auth})
	ioService.EXPECT().ReadInput(gomock.Any(), "unknown").Return("", service.ErrInputNotFound)

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	req.Header.Set("Authorization", auth.Header())

	rr := serve(router, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
}

func TestInit_AuthenticatedOtherMethodIsNotFound(t *testing.T) {
	auth := &models.Auth{User: "user", Password: "pass", Realm: "test"}
	router, _ := newMockedRouter(t, Settings{Auth: auth})

	req := httptest.NewRequest(http.MethodPut, "/temp", nil)
	req.Header.Set("Authorization", auth.Header())

	assert.Equal(t, http.StatusNotFound, serve(router, req).Code)
}
