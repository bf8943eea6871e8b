package host

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/panelgrid/panelgrid/pkg/element"
	"github.com/panelgrid/panelgrid/pkg/errors"
	"github.com/panelgrid/panelgrid/pkg/scene"
)

// consoleApp builds a minimal one-button scene for a session.
func consoleApp(sess *Session) error {
	element.NewButton(sess.Backend, "vote", element.ButtonSpec{
		Size:    scene.Size{Width: 0.4, Height: 0.2, Depth: 0.01},
		Text:    sess.Params["caption"],
		OnClick: func() {},
	})
	return nil
}

func newTestServer(t *testing.T, app App) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewServer(app, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t, consoleApp)

	// Create.
	resp, err := http.Post(ts.URL+"/sessions", "application/json",
		strings.NewReader(`{"params": {"caption": "Red"}}`))
	if err != nil {
		t.Fatalf("POST /sessions: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var created struct {
		ID    string `json:"id"`
		Nodes int    `json:"nodes"`
		Ops   int    `json:"ops"`
	}
	decodeBody(t, resp, &created)
	if created.ID == "" {
		t.Fatal("created session has no id")
	}
	// Button box plus label anchor plus label text.
	if created.Nodes != 3 {
		t.Errorf("nodes = %d, want 3", created.Nodes)
	}
	if created.Ops == 0 {
		t.Error("session created with an empty journal")
	}

	// Fetch the summary back.
	resp, err = http.Get(ts.URL + "/sessions/" + created.ID)
	if err != nil {
		t.Fatalf("GET session: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var fetched struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &fetched)
	if fetched.ID != created.ID {
		t.Errorf("fetched id = %q, want %q", fetched.ID, created.ID)
	}

	// Journal replay order: every create precedes its ready, and the bound
	// click behavior is recorded.
	resp, err = http.Get(ts.URL + "/sessions/" + created.ID + "/journal")
	if err != nil {
		t.Fatalf("GET journal: %v", err)
	}
	var journal struct {
		Ops []Op `json:"ops"`
	}
	decodeBody(t, resp, &journal)
	if len(journal.Ops) != created.Ops {
		t.Fatalf("journal has %d ops, summary said %d", len(journal.Ops), created.Ops)
	}
	readySeen := make(map[string]bool)
	behaviors := 0
	for i, op := range journal.Ops {
		if op.Seq != i {
			t.Errorf("op %d has seq %d", i, op.Seq)
		}
		switch op.Kind {
		case OpReady:
			readySeen[op.Node] = true
		case OpCreate:
			if readySeen[op.Node] {
				t.Errorf("create for %s after its ready", op.Node)
			}
		case OpBehavior:
			behaviors++
			if !readySeen[op.Node] {
				t.Errorf("behavior bound to %s before it was ready", op.Node)
			}
		}
	}
	if behaviors != 1 {
		t.Errorf("journal records %d behavior bindings, want 1", behaviors)
	}

	// Delete, then the summary is gone.
	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/sessions/"+created.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE session: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/sessions/" + created.ID)
	if err != nil {
		t.Fatalf("GET deleted session: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d after delete, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSessionErrors(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed create body",
			method:     http.MethodPost,
			path:       "/sessions",
			body:       `{"params":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "malformed session id",
			method:     http.MethodGet,
			path:       "/sessions/not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "unknown session",
			method:     http.MethodGet,
			path:       "/sessions/7f2c8ae0-0000-0000-0000-000000000000",
			wantStatus: http.StatusNotFound,
			wantCode:   "SESSION_NOT_FOUND",
		},
		{
			name:       "unknown session journal",
			method:     http.MethodGet,
			path:       "/sessions/7f2c8ae0-0000-0000-0000-000000000000/journal",
			wantStatus: http.StatusNotFound,
			wantCode:   "SESSION_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("%s %s: %v", tt.method, tt.path, err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var body map[string]string
			decodeBody(t, resp, &body)
			if body["code"] != tt.wantCode {
				t.Errorf("code = %q, want %q", body["code"], tt.wantCode)
			}
		})
	}
}

func TestCreateSessionAppError(t *testing.T) {
	failing := func(*Session) error {
		return errors.New(errors.ErrCodeInternal, "compose failed")
	}
	srv := NewServer(failing, nil)

	if _, err := srv.CreateSession(nil); err == nil {
		t.Fatal("CreateSession() succeeded, want app error")
	}

	// A failed composition leaves no half-built session behind.
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	resp, err := http.Post(ts.URL+"/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /sessions: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}
