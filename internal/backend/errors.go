package backend

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/dwikikusuma/storefront/pkg/apperr"
)

// APIError is a non-2xx backend response. Error returns the backend's own
// message unchanged.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return apperr.ErrNotFound
	case http.StatusUnauthorized:
		return apperr.ErrNotAuthenticated
	case http.StatusForbidden:
		return apperr.ErrForbidden
	}
	return nil
}

func newAPIError(status int, body []byte, fallback string) *APIError {
	msg := ""
	if gjson.ValidBytes(body) {
		if m := gjson.GetBytes(body, "message"); m.Type == gjson.String {
			msg = m.String()
		}
	}
	if msg == "" {
		msg = fallback
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! Status: %d", status)
	}
	return &APIError{Status: status, Message: msg}
}
