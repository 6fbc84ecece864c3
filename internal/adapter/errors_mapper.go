package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiErrorBody is the error envelope of OpenAI-compatible APIs.
type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// upstreamMessage prefers the API's error message and falls back to the raw
// body or the status text.
func upstreamMessage(resp *resty.Response) string {
	var apiErr apiErrorBody
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := upstreamMessage(resp)

	switch status := resp.StatusCode(); {
	case status == http.StatusBadRequest, status == http.StatusNotFound, status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUpstreamBadRequest, msg)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUpstreamUnauthorized, msg)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrUpstreamRateLimited, msg)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, msg)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamFailure, status, msg)
	}
}
