package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/officehub-dev/officehub/internal/config"
	"github.com/officehub-dev/officehub/internal/models"
)

// newTestServer spins up a server backed by a throwaway sqlite file, seeded
// with the default admin account (admin/123456)
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		HTTP:       config.HTTPConfig{Addr: ":0"},
		Database:   config.DatabaseConfig{URL: filepath.Join(t.TempDir(), "officehub.sqlite")},
		Auth:       config.AuthConfig{JWTSecret: "test-secret"},
		Attendance: config.AttendanceConfig{AutoCloseSchedule: "0 0 * * *"},
		Logging:    config.LoggingConfig{Level: "error", Format: "json"},
	}

	srv, err := New(cfg, zerolog.Nop(), "test")
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return srv
}

// doJSON performs a request against the router and decodes the envelope
func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) (int, Envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	var env Envelope
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("failed to decode envelope from %s %s: %v (body: %s)", method, path, err, w.Body.String())
		}
	}
	return w.Code, env
}

// loginAs fetches a token for the given credentials, failing the test on a
// business refusal
func loginAs(t *testing.T, srv *Server, username, password string) string {
	t.Helper()

	status, env := doJSON(t, srv, "POST", "/api/login", "", LoginRequest{Username: username, Password: password})
	if status != http.StatusOK {
		t.Fatalf("login returned status %d", status)
	}
	if env.Code != codeSuccess {
		t.Fatalf("login refused: %s", env.Msg)
	}

	token, ok := env.Data.(string)
	if !ok || token == "" {
		t.Fatalf("expected token string in data, got %#v", env.Data)
	}
	return token
}

func TestLogin_Success(t *testing.T) {
	srv := newTestServer(t)

	token := loginAs(t, srv, "admin", "123456")
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, "POST", "/api/login", "", LoginRequest{Username: "admin", Password: "nope"})
	if status != http.StatusOK {
		t.Fatalf("business failures must ride HTTP 200, got %d", status)
	}
	if env.Code == codeSuccess {
		t.Fatal("expected failure envelope for wrong password")
	}
	if env.Msg != "Invalid username or password" {
		t.Errorf("unexpected msg: %q", env.Msg)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, "POST", "/api/login", "", LoginRequest{Username: "ghost", Password: "123456"})
	if status != http.StatusOK {
		t.Fatalf("expected HTTP 200, got %d", status)
	}
	if env.Code == codeSuccess {
		t.Fatal("expected failure envelope for unknown user")
	}
}

func TestProtectedRoute_MissingToken(t *testing.T) {
	srv := newTestServer(t)

	status, _ := doJSON(t, srv, "GET", "/api/workspace/records", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
}

func TestProtectedRoute_GarbageToken(t *testing.T) {
	srv := newTestServer(t)

	status, _ := doJSON(t, srv, "GET", "/api/workspace/records", "not-a-jwt", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", status)
	}
}

func TestSignInSignOutFlow(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	at := time.Now().UTC().Format(time.RFC3339)

	// First sign-in opens a record
	_, env := doJSON(t, srv, "POST", "/api/workspace/sign/in?signInTime="+at, token, nil)
	if env.Code != codeSuccess {
		t.Fatalf("sign-in refused: %s", env.Msg)
	}

	// A second sign-in without signing out is refused
	_, env = doJSON(t, srv, "POST", "/api/workspace/sign/in?signInTime="+at, token, nil)
	if env.Code == codeSuccess {
		t.Fatal("expected second sign-in to be refused")
	}
	if env.Msg != "Already signed in" {
		t.Errorf("unexpected msg: %q", env.Msg)
	}

	// Sign out closes it
	out := time.Now().UTC().Add(8 * time.Hour).Format(time.RFC3339)
	_, env = doJSON(t, srv, "POST", "/api/workspace/sign/out?signOutTime="+out, token, nil)
	if env.Code != codeSuccess {
		t.Fatalf("sign-out refused: %s", env.Msg)
	}

	// Signing out again has nothing to close
	_, env = doJSON(t, srv, "POST", "/api/workspace/sign/out?signOutTime="+out, token, nil)
	if env.Code == codeSuccess {
		t.Fatal("expected second sign-out to be refused")
	}

	// Records show the closed day
	_, env = doJSON(t, srv, "GET", "/api/workspace/records", token, nil)
	if env.Code != codeSuccess {
		t.Fatalf("records refused: %s", env.Msg)
	}
	rows, ok := env.Data.([]interface{})
	if !ok || len(rows) != 1 {
		t.Fatalf("expected exactly one record, got %#v", env.Data)
	}
}

func TestPageWorkers(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	// Add a few workers directly
	for i := 0; i < 15; i++ {
		worker := models.Worker{
			Username:     fmt.Sprintf("worker%02d", i),
			PasswordHash: "x",
			RealName:     fmt.Sprintf("Worker %d", i),
			Position:     "Employee",
			Status:       1,
		}
		if err := srv.db.Create(&worker).Error; err != nil {
			t.Fatalf("failed to create worker: %v", err)
		}
	}

	_, env := doJSON(t, srv, "POST", "/api/wim/page/get/workers", token, PageWorkersRequest{PageNum: 2, PageSize: 10})
	if env.Code != codeSuccess {
		t.Fatalf("paging refused: %s", env.Msg)
	}

	page, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected page object, got %#v", env.Data)
	}
	// 15 workers plus the seeded admin
	if total := page["total"].(float64); total != 16 {
		t.Errorf("expected total 16, got %v", total)
	}
	rows := page["rows"].([]interface{})
	if len(rows) != 6 {
		t.Errorf("expected 6 rows on page 2, got %d", len(rows))
	}
}

func TestPageWorkers_StatusAndStartTimeFilters(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	old := models.Worker{Username: "veteran", PasswordHash: "x", Status: 1}
	if err := srv.db.Create(&old).Error; err != nil {
		t.Fatalf("failed to create worker: %v", err)
	}
	srv.db.Model(&old).Update("created_at", time.Now().UTC().Add(-72*time.Hour))

	disabled := models.Worker{Username: "gone", PasswordHash: "x", Status: 0}
	if err := srv.db.Create(&disabled).Error; err != nil {
		t.Fatalf("failed to create worker: %v", err)
	}

	// status=0 keeps only the disabled account
	zero := 0
	_, env := doJSON(t, srv, "POST", "/api/wim/page/get/workers", token, PageWorkersRequest{
		PageNum: 1, PageSize: 10, Status: &zero,
	})
	if env.Code != codeSuccess {
		t.Fatalf("paging refused: %s", env.Msg)
	}
	page := env.Data.(map[string]interface{})
	if total := page["total"].(float64); total != 1 {
		t.Errorf("status filter: expected total 1, got %v", total)
	}
	row := page["rows"].([]interface{})[0].(map[string]interface{})
	if row["username"].(string) != "gone" {
		t.Errorf("status filter returned %q", row["username"])
	}

	// startTime excludes the backdated worker
	since := time.Now().UTC().Add(-24 * time.Hour).Format(time.RFC3339)
	_, env = doJSON(t, srv, "POST", "/api/wim/page/get/workers", token, PageWorkersRequest{
		PageNum: 1, PageSize: 10, StartTime: since,
	})
	if env.Code != codeSuccess {
		t.Fatalf("paging refused: %s", env.Msg)
	}
	page = env.Data.(map[string]interface{})
	// seeded admin + disabled, not the backdated veteran
	if total := page["total"].(float64); total != 2 {
		t.Errorf("startTime filter: expected total 2, got %v", total)
	}

	// a malformed startTime is refused, not silently ignored
	_, env = doJSON(t, srv, "POST", "/api/wim/page/get/workers", token, PageWorkersRequest{
		PageNum: 1, PageSize: 10, StartTime: "last tuesday",
	})
	if env.Code == codeSuccess {
		t.Fatal("expected malformed startTime to be refused")
	}
}

func TestUpdateWorker(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	worker := models.Worker{Username: "jdoe", PasswordHash: "x", RealName: "J Doe", Status: 1}
	if err := srv.db.Create(&worker).Error; err != nil {
		t.Fatalf("failed to create worker: %v", err)
	}

	_, env := doJSON(t, srv, "POST", "/api/wim/update/worker", token, UpdateWorkerRequest{
		ID:       worker.ID,
		RealName: "Jane Doe",
		Position: "Manager",
		Status:   1,
	})
	if env.Code != codeSuccess {
		t.Fatalf("update refused: %s", env.Msg)
	}

	var updated models.Worker
	if err := srv.db.First(&updated, worker.ID).Error; err != nil {
		t.Fatalf("failed to reload worker: %v", err)
	}
	if updated.RealName != "Jane Doe" || updated.Position != "Manager" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Username != "jdoe" {
		t.Errorf("empty fields must be left untouched, got username %q", updated.Username)
	}
}

func TestUpdateWorker_RejectsBadEmail(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	worker := models.Worker{Username: "mmoore", PasswordHash: "x", Status: 1}
	if err := srv.db.Create(&worker).Error; err != nil {
		t.Fatalf("failed to create worker: %v", err)
	}

	_, env := doJSON(t, srv, "POST", "/api/wim/update/worker", token, UpdateWorkerRequest{
		ID:     worker.ID,
		Email:  "not-an-email",
		Status: 1,
	})
	if env.Code == codeSuccess {
		t.Fatal("expected invalid email to be refused")
	}

	var reloaded models.Worker
	if err := srv.db.First(&reloaded, worker.ID).Error; err != nil {
		t.Fatalf("failed to reload worker: %v", err)
	}
	if reloaded.Email != "" {
		t.Errorf("refused update must not be applied, got email %q", reloaded.Email)
	}
}

func TestDeleteWorkers(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	var ids []int64
	for _, name := range []string{"a", "b", "c"} {
		worker := models.Worker{Username: name, PasswordHash: "x", Status: 1}
		if err := srv.db.Create(&worker).Error; err != nil {
			t.Fatalf("failed to create worker: %v", err)
		}
		ids = append(ids, worker.ID)
	}

	path := fmt.Sprintf("/api/wim/delete/workers/[%d,%d]", ids[0], ids[1])
	_, env := doJSON(t, srv, "DELETE", path, token, nil)
	if env.Code != codeSuccess {
		t.Fatalf("delete refused: %s", env.Msg)
	}
	if deleted := env.Data.(float64); deleted != 2 {
		t.Errorf("expected 2 deletions, got %v", deleted)
	}

	var remaining int64
	srv.db.Model(&models.Worker{}).Count(&remaining)
	// seeded admin + worker "c"
	if remaining != 2 {
		t.Errorf("expected 2 workers left, got %d", remaining)
	}
}

func TestDeleteWorkers_RefusesSelf(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	var admin models.Worker
	if err := srv.db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("failed to find admin: %v", err)
	}

	path := fmt.Sprintf("/api/wim/delete/workers/[%d]", admin.ID)
	_, env := doJSON(t, srv, "DELETE", path, token, nil)
	if env.Code == codeSuccess {
		t.Fatal("expected self-deletion to be refused")
	}
}

func TestLeaveFlow(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	// Default leave types are seeded
	_, env := doJSON(t, srv, "GET", "/api/leave/type", token, nil)
	if env.Code != codeSuccess {
		t.Fatalf("leave types refused: %s", env.Msg)
	}
	types := env.Data.([]interface{})
	if len(types) == 0 {
		t.Fatal("expected seeded leave types")
	}
	first := types[0].(map[string]interface{})
	typeID := int64(first["id"].(float64))

	// Submit an application
	start := time.Now().UTC().Add(24 * time.Hour)
	_, env = doJSON(t, srv, "PUT", "/api/leave/add/leave", token, AddLeaveRequest{
		LeaveTypeID: typeID,
		StartTime:   start.Format(time.RFC3339),
		EndTime:     start.Add(48 * time.Hour).Format(time.RFC3339),
		Reason:      "family visit",
	})
	if env.Code != codeSuccess {
		t.Fatalf("add leave refused: %s", env.Msg)
	}

	// It shows up pending in the approval list
	_, env = doJSON(t, srv, "GET", "/api/leave/get/approval", token, nil)
	if env.Code != codeSuccess {
		t.Fatalf("approvals refused: %s", env.Msg)
	}
	approvals := env.Data.([]interface{})
	if len(approvals) != 1 {
		t.Fatalf("expected one approval, got %d", len(approvals))
	}
	approval := approvals[0].(map[string]interface{})
	if status := approval["status"].(float64); status != models.LeavePending {
		t.Errorf("expected pending status, got %v", status)
	}
	if approval["leaveTypeName"].(string) == "" {
		t.Error("expected leave type name to be joined in")
	}
}

func TestAddLeave_RejectsMalformedTimestamp(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	_, env := doJSON(t, srv, "PUT", "/api/leave/add/leave", token, AddLeaveRequest{
		LeaveTypeID: 1,
		StartTime:   "tomorrow morning",
		EndTime:     time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339),
	})
	if env.Code == codeSuccess {
		t.Fatal("expected malformed start time to be refused")
	}
}

func TestAddLeave_RejectsInvertedRange(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "admin", "123456")

	start := time.Now().UTC().Add(48 * time.Hour)
	_, env := doJSON(t, srv, "PUT", "/api/leave/add/leave", token, AddLeaveRequest{
		LeaveTypeID: 1,
		StartTime:   start.Format(time.RFC3339),
		EndTime:     start.Add(-24 * time.Hour).Format(time.RFC3339),
	})
	if env.Code == codeSuccess {
		t.Fatal("expected inverted time range to be refused")
	}
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from health check, got %d", w.Code)
	}
}
