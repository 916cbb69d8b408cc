package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// SuccessCode is the backend's convention for a successful operation.
const SuccessCode Code = 1

// Code is the envelope discriminator. The backend is not consistent about
// serializing it as a JSON number or a numeric string, so both forms
// unmarshal to the same numeric value.
type Code float64

func (c *Code) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("envelope code is missing")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("envelope code %q is not numeric", s)
	}

	*c = Code(v)
	return nil
}

// Result is the uniform response envelope every backend endpoint uses.
// Data is only meaningful when OK() reports true; failure envelopes may
// carry a zero-valued Data.
type Result[T any] struct {
	Code Code   `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// OK reports whether the envelope indicates success. A missing or unclear
// code never counts as success.
func (r *Result[T]) OK() bool {
	return r.Code == SuccessCode
}

// decodeResult narrows a 2xx response body into a typed envelope. A body
// that is not a well-formed envelope is a transport failure, not a business
// outcome.
func decodeResult[T any](resp *http.Response) (*Result[T], error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Cause: fmt.Errorf("failed to read response body: %w", err)}
	}

	var result Result[T]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Cause: fmt.Errorf("malformed response body: %w", err)}
	}

	return &result, nil
}
