package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/officehub-dev/officehub/internal/cli/session"
)

// Client is the only component that talks to the OfficeHub backend. Every
// request carries the current credential (when present) and a JSON
// content type; every response is classified into exactly one of: business
// envelope, ErrUnauthorized, or TransportError.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	sessions       *session.Store
	onUnauthorized func()
}

// New creates an API client for the given server address. A bare host:port
// is assumed to be plain HTTP, matching how the console is deployed next to
// its backend.
func New(address string, sessions *session.Store) *Client {
	baseURL := address
	if !strings.Contains(address, "://") {
		baseURL = fmt.Sprintf("http://%s", address)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		sessions: sessions,
	}
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// OnUnauthorized registers the handler invoked after the backend rejects
// the credential. The handler runs after the session store is cleared;
// navigation back to the login screen belongs there, not inside the
// network call.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// do performs a request, attaching headers and classifying non-2xx
// responses. A 401 clears the session as a side effect before failing.
func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if cred, ok := c.sessions.CurrentSession(); ok {
		req.Header.Set("Authorization", cred.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if err := c.sessions.ClearSession(); err != nil {
			return nil, fmt.Errorf("failed to clear rejected session: %w", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrUnauthorized
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &TransportError{
			Status: resp.StatusCode,
			Cause:  fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))),
		}
	}

	return resp, nil
}

// Login authenticates against the backend. On a success envelope the raw
// token from data is normalized and stored together with a profile built
// from the entered username; the envelope is returned verbatim either way
// so the caller can surface msg on business failure.
func (c *Client) Login(req LoginRequest) (*Result[string], error) {
	resp, err := c.do(http.MethodPost, "/api/login", req)
	if err != nil {
		return nil, err
	}

	result, err := decodeResult[string](resp)
	if err != nil {
		return nil, err
	}

	if result.OK() {
		profile := session.Profile{
			Username: req.Username,
			RealName: req.Username,
			Position: "Employee",
			Status:   1,
		}
		if err := c.sessions.SetSession(session.Normalize(result.Data), profile); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Logout is purely client-side: the backend holds no session state for a
// stateless bearer token, so there is nothing to invalidate remotely.
func (c *Client) Logout() error {
	return c.sessions.ClearSession()
}

// SignIn records the start of the working day.
func (c *Client) SignIn(at time.Time) (*Result[*AttendanceRecord], error) {
	path := "/api/workspace/sign/in?signInTime=" + url.QueryEscape(at.UTC().Format(time.RFC3339))
	resp, err := c.do(http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[*AttendanceRecord](resp)
}

// SignOut records the end of the working day.
func (c *Client) SignOut(at time.Time) (*Result[*AttendanceRecord], error) {
	path := "/api/workspace/sign/out?signOutTime=" + url.QueryEscape(at.UTC().Format(time.RFC3339))
	resp, err := c.do(http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[*AttendanceRecord](resp)
}

// AttendanceRecords lists the caller's sign-in/out history.
func (c *Client) AttendanceRecords() (*Result[[]AttendanceRecord], error) {
	resp, err := c.do(http.MethodGet, "/api/workspace/records", nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[[]AttendanceRecord](resp)
}

// MeetingRoomStatus lists rooms and their current availability.
func (c *Client) MeetingRoomStatus() (*Result[[]MeetingRoom], error) {
	resp, err := c.do(http.MethodGet, "/api/workspace/meetingRoom", nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[[]MeetingRoom](resp)
}

// PageWorkers fetches one page of the employee directory.
func (c *Client) PageWorkers(req PageWorkersRequest) (*Result[WorkerPage], error) {
	resp, err := c.do(http.MethodPost, "/api/wim/page/get/workers", req)
	if err != nil {
		return nil, err
	}
	return decodeResult[WorkerPage](resp)
}

// UpdateWorker updates an employee record.
func (c *Client) UpdateWorker(worker Worker) (*Result[*Worker], error) {
	resp, err := c.do(http.MethodPost, "/api/wim/update/worker", worker)
	if err != nil {
		return nil, err
	}
	return decodeResult[*Worker](resp)
}

// DeleteWorkers removes employees by id. The backend expects the ids as a
// JSON array embedded in the path.
func (c *Client) DeleteWorkers(ids []int64) (*Result[int64], error) {
	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ids: %w", err)
	}

	resp, err := c.do(http.MethodDelete, "/api/wim/delete/workers/"+string(encoded), nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[int64](resp)
}

// AddLeave submits a leave application.
func (c *Client) AddLeave(req AddLeaveRequest) (*Result[*LeaveApproval], error) {
	resp, err := c.do(http.MethodPut, "/api/leave/add/leave", req)
	if err != nil {
		return nil, err
	}
	return decodeResult[*LeaveApproval](resp)
}

// LeaveTypes lists the selectable leave categories.
func (c *Client) LeaveTypes() (*Result[[]LeaveType], error) {
	resp, err := c.do(http.MethodGet, "/api/leave/type", nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[[]LeaveType](resp)
}

// LeaveApprovals lists the caller's applications and their review status.
func (c *Client) LeaveApprovals() (*Result[[]LeaveApproval], error) {
	resp, err := c.do(http.MethodGet, "/api/leave/get/approval", nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[[]LeaveApproval](resp)
}
