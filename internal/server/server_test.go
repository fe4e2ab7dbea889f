package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockedBuffer is a bytes.Buffer safe for the server goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newTestServer(t *testing.T, opts Options) (*httptest.Server, *lockedBuffer) {
	t.Helper()
	logs := &lockedBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ts := httptest.NewServer(New(logger, opts).Handler())
	t.Cleanup(ts.Close)

	return ts, logs
}

func post(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return resp.StatusCode, out
}

func TestSolve(t *testing.T) {
	ts, logs := newTestServer(t, Options{})

	cases := []struct {
		name    string
		body    string
		outcome string
		message string
	}{
		{"tiles", `{"tiles":["02","04","42"]}`, "chain", "can be arranged: 02, 24, 40"},
		{"input line", `{"input":"11, 22, 33"}`, "no_chain", "cannot be arranged in a row"},
		{"isolated double", `{"input":"31,00,13"}`, "no_chain", "cannot be arranged in a row"},
		{"bad token", `{"tiles":["7","12"]}`, "invalid", "invalid input"},
		{"empty list", `{"tiles":[]}`, "invalid", "invalid input"},
		{"empty body", ``, "invalid", "invalid input"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, out := post(t, ts.URL+"/api/solve", c.body)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, c.outcome, out["outcome"])
			assert.Equal(t, c.message, out["message"])
		})
	}

	_, out := post(t, ts.URL+"/api/solve", `{"tiles":["02","04","42"]}`)
	assert.Equal(t, []any{"02", "24", "40"}, out["chain"])
	assert.EqualValues(t, 3, out["nodes"])

	assert.Eventually(t, func() bool {
		l := logs.String()
		return strings.Contains(l, "path=/api/solve") && strings.Contains(l, "status=200")
	}, time.Second, 10*time.Millisecond)
}

func TestSolve_BadJSON(t *testing.T) {
	ts, _ := newTestServer(t, Options{})
	status, out := post(t, ts.URL+"/api/solve", `{"tiles":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, out["error"], "invalid JSON")
}

func TestSolve_Precheck(t *testing.T) {
	ts, _ := newTestServer(t, Options{})
	_, out := post(t, ts.URL+"/api/solve", `{"input":"11,22,33"}`)
	assert.Equal(t, "no_chain", out["outcome"])
	assert.EqualValues(t, 0, out["nodes"])

	ts, _ = newTestServer(t, Options{SkipPrecheck: true})
	_, out = post(t, ts.URL+"/api/solve", `{"input":"11,22,33"}`)
	assert.Equal(t, "no_chain", out["outcome"])
	assert.EqualValues(t, 6, out["nodes"])
}

// hardInfeasible is the double-six set without 01 and 23: four odd pips,
// so no line exists, but a plain search does not finish in practice.
func hardInfeasible() string {
	var tiles []string
	for a := 0; a <= 6; a++ {
		for b := a; b <= 6; b++ {
			if (a == 0 && b == 1) || (a == 2 && b == 3) {
				continue
			}
			tiles = append(tiles, `"`+strconv.Itoa(a)+strconv.Itoa(b)+`"`)
		}
	}

	return `{"tiles":[` + strings.Join(tiles, ",") + `]}`
}

func TestSolve_HardInfeasibleAnsweredByPrecheck(t *testing.T) {
	ts, _ := newTestServer(t, Options{})

	start := time.Now()
	status, out := post(t, ts.URL+"/api/solve", hardInfeasible())
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "no_chain", out["outcome"])
	assert.EqualValues(t, 0, out["nodes"])
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSolve_RequestTimeout(t *testing.T) {
	ts, logs := newTestServer(t, Options{SkipPrecheck: true, RequestTimeout: 100 * time.Millisecond})

	start := time.Now()
	status, out := post(t, ts.URL+"/api/solve", hardInfeasible())
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, out["error"], "deadline exceeded")
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "status=503")
	}, time.Second, 10*time.Millisecond)
}

func TestAnalyze(t *testing.T) {
	ts, _ := newTestServer(t, Options{})

	_, out := post(t, ts.URL+"/api/analyze", `{"input":"02,04,42"}`)
	assert.Equal(t, "chain", out["outcome"])
	assert.Equal(t, []any{"02", "24", "40"}, out["trail"])
	report, ok := out["report"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, report["hasTrail"])

	_, out = post(t, ts.URL+"/api/analyze", `{"input":"11,22,33"}`)
	assert.Equal(t, "no_chain", out["outcome"])
	assert.Nil(t, out["trail"])

	_, out = post(t, ts.URL+"/api/analyze", `{"input":"x"}`)
	assert.Equal(t, "invalid", out["outcome"])
	assert.Nil(t, out["report"])
}

func TestExamplesAndHealth(t *testing.T) {
	ts, _ := newTestServer(t, Options{})

	resp, err := http.Get(ts.URL + "/api/examples")
	require.NoError(t, err)
	defer resp.Body.Close()
	var rows []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "02, 04, 42", rows[0]["input"])
	assert.Equal(t, "can be arranged: 02, 24, 40", rows[0]["message"])

	resp2, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp2.Body.Close()
	body, _ := io.ReadAll(resp2.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.NotEmpty(t, resp2.Header.Get("Content-Type"))
}

func TestMethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t, Options{})
	resp, err := http.Get(ts.URL + "/api/solve")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestListenAndServe_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s := New(slog.New(slog.NewTextHandler(io.Discard, nil)), Options{ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServe_AddrInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := New(slog.New(slog.NewTextHandler(io.Discard, nil)), Options{ShutdownTimeout: time.Second})
	err = s.ListenAndServe(context.Background(), ln.Addr().String())
	assert.ErrorContains(t, err, "server: listen")
}
