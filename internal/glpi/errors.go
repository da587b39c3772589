package glpi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// RemoteError reports a failed GLPI API call: transport failure,
// non-2xx status or a body missing the expected fields.
type RemoteError struct {
	// Op is the API endpoint that failed (initSession, Computer, killSession)
	Op string
	// StatusCode and Status are set when a response was received
	StatusCode int
	Status     string
	// Code is GLPI's error identifier, e.g. ERROR_SESSION_TOKEN_INVALID
	Code    string
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "glpi %s", e.Op)
	if e.Status != "" {
		fmt.Fprintf(&b, ": %s", e.Status)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, ": %s", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// newStatusError builds a RemoteError from a non-2xx response. GLPI error
// bodies are a two element array ["ERROR_CODE", "message"]; anything else
// is kept verbatim as the message.
func newStatusError(op string, resp *http.Response, body []byte) *RemoteError {
	e := &RemoteError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	var pair []string
	if err := json.Unmarshal(body, &pair); err == nil && len(pair) > 0 {
		e.Code = pair[0]
		if len(pair) > 1 {
			e.Message = pair[1]
		}
		return e
	}

	e.Message = strings.TrimSpace(string(body))
	return e
}
