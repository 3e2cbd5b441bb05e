package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/oelbekkali/colisops/models"
)

// mapHTTPError translates a non-2xx response into one of the package
// sentinels, carrying the backend's own message. When the body is an
// error envelope ({"success":false,"message":...}) the message field is
// preferred over the raw body so validation messages reach the caller
// verbatim.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := extractMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError {
			return fmt.Errorf("%w: %s", ErrBadRequest, body)
		}
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrInternalServerError, resp.StatusCode(), body)
	}
}

// extractMessage pulls the human message out of an error body: the
// envelope message when the body is an envelope, the trimmed raw body
// otherwise.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))

	var env models.APIResponse
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}

	return trimmed
}
