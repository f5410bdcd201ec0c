package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/internal/utils"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:          app.CodeInvalidArgument,
	http.StatusUnauthorized:        app.CodeUnauthenticated,
	http.StatusForbidden:           app.CodePermissionDenied,
	http.StatusNotFound:            app.CodeNotFound,
	http.StatusConflict:            app.CodeAlreadyExists,
	http.StatusPreconditionFailed:  app.CodeFailedPrecondition,
	http.StatusTooManyRequests:     app.CodeResourceExhausted,
	http.StatusInternalServerError: app.CodeInternal,
	http.StatusBadGateway:          app.CodeUnavailable,
	http.StatusServiceUnavailable:  app.CodeUnavailable,
	http.StatusGatewayTimeout:      app.CodeDeadlineExceeded,
}

// mapHTTPError returns nil for 2xx responses and a *BackendError otherwise.
// The code in the error body wins over the one derived from the status.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	be := &BackendError{Status: resp.StatusCode()}

	var body utils.ErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error.Code != "" {
		be.Code = body.Error.Code
		be.Message = body.Error.Message
	} else {
		be.Code = statusCodes[resp.StatusCode()]
		be.Message = strings.TrimSpace(string(resp.Body()))
	}

	if be.Code == "" {
		be.Code = app.CodeInternal
	}
	if be.Message == "" {
		be.Message = http.StatusText(resp.StatusCode())
	}
	return be
}

// isTransient reports whether a call failing with err may succeed when
// repeated.
func isTransient(err error) bool {
	var be *BackendError
	if !errors.As(err, &be) {
		return false
	}
	switch be.Code {
	case app.CodeUnavailable, app.CodeDeadlineExceeded, app.CodeNetworkFailed:
		return true
	}
	return be.Status == http.StatusServiceUnavailable || be.Status == http.StatusGatewayTimeout
}

// failMessage translates err into the user-facing message of a failed
// envelope.
func failMessage(err error) string {
	if code := CodeOf(err); code != "" {
		return app.BackendMessage(code)
	}
	return app.MsgUnknownBackendError
}
