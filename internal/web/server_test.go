package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sweeney/rescue-rover/internal/control"
	"github.com/sweeney/rescue-rover/internal/status"
)

func newTestServer(t *testing.T) (*httptest.Server, *status.Tracker) {
	t.Helper()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := status.Config{
		SimAddr:       "127.0.0.1:10021",
		Broker:        "tcp://192.168.1.200:1883",
		Channel:       1,
		TimeStepMs:    64,
		HTTPAddr:      ":8080",
		SurvivorLabel: control.DefaultSurvivorLabel,
	}
	tr := status.NewTracker(start, cfg)
	srv := New(":0", tr)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, tr
}

func TestJSONEndpoint(t *testing.T) {
	ts, tr := newTestServer(t)
	tr.Update(control.StepResult{
		State:   control.StateAvoidingObstacle,
		Command: control.MotorCommand{Left: 4, Right: -4},
		Tick:    7,
	}, control.Frame{Front: 0.1, Left: 0.2, Right: 0.5})
	tr.SetRadioConnected(true)

	resp, err := http.Get(ts.URL + "/index.json")
	if err != nil {
		t.Fatalf("GET /index.json: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var sj status.StatusJSON
	if err := json.NewDecoder(resp.Body).Decode(&sj); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}

	if sj.Status.State != "AVOIDING_OBSTACLE" {
		t.Errorf("state: got %q", sj.Status.State)
	}
	if sj.Status.Sensors.Front != 0.1 {
		t.Errorf("front: got %v", sj.Status.Sensors.Front)
	}
	if !sj.Status.Radio.Connected {
		t.Error("expected radio connected")
	}
}

func TestIndexPage(t *testing.T) {
	ts, tr := newTestServer(t)
	tr.Update(control.StepResult{
		State:   control.StateSearching,
		Command: control.MotorCommand{Left: 5, Right: 5},
	}, control.Frame{Front: 0.5, Left: 0.5, Right: 0.5})

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type: got %q, want text/html", ct)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, "Rescue Rover") {
		t.Error("page missing title")
	}
	if !strings.Contains(body, "SEARCHING") {
		t.Error("page missing state")
	}
}

func TestNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Errorf("status: got %d, want 404", resp.StatusCode)
	}
}

func TestLiveFeed(t *testing.T) {
	ts, tr := newTestServer(t)
	tr.Update(control.StepResult{
		State: control.StateDeployingAid,
		Timer: 30,
	}, control.Frame{Front: 0.5, Left: 0.2, Right: 0.5, SurvivorDetected: true})

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("dial websocket: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	var sj status.StatusJSON
	if err := json.Unmarshal(payload, &sj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if sj.Status.State != "DEPLOYING_AID" {
		t.Errorf("state: got %q", sj.Status.State)
	}
	if sj.Status.AidTicks != 30 {
		t.Errorf("aid_ticks: got %d", sj.Status.AidTicks)
	}
	if !sj.Status.SurvivorDetected {
		t.Error("expected survivor_detected")
	}
}
