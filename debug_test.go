package tilestead

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// captureLog redirects log output for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() { SetLogOutput(io.Discard) })
	return &buf
}

func TestSpawnIsLogged(t *testing.T) {
	buf := captureLog(t)
	s, _, _ := newTestScene(t, false)
	s.RequestSpawn("Basic Chapel")
	s.RequestSpawn("Nope")
	s.Update()

	out := buf.String()
	if !strings.Contains(out, "[tilestead] spawning building: Basic Chapel") {
		t.Errorf("missing spawn line:\n%s", out)
	}
	if !strings.Contains(out, `unknown building kind "Nope"`) {
		t.Errorf("missing unknown kind line:\n%s", out)
	}
}

func TestDebugTracingOnlyInDebugMode(t *testing.T) {
	buf := captureLog(t)
	s, in, _ := newTestScene(t, true)
	in.mouseAt(0, 0, false)
	s.Update()
	if strings.Contains(buf.String(), "tick ") {
		t.Errorf("tick stats logged with debug off:\n%s", buf.String())
	}

	s.SetDebugMode(true)
	if !s.DebugMode() {
		t.Fatal("DebugMode() = false after SetDebugMode(true)")
	}
	s.Update()
	if !strings.Contains(buf.String(), "tick 2 | pick:") {
		t.Errorf("missing tick stats:\n%s", buf.String())
	}
}

func TestDebugTracesDragChanges(t *testing.T) {
	buf := captureLog(t)
	s, in, _ := newTestScene(t, true)
	s.SetDebugMode(true)
	spawnDefault(t, s)
	in.mouseAt(0, 0, true)
	s.Update()
	if !strings.Contains(buf.String(), "dragging 0 -> 1 entities") {
		t.Errorf("missing drag trace:\n%s", buf.String())
	}
}

func TestSetLogOutputNil(t *testing.T) {
	SetLogOutput(nil)
	defer SetLogOutput(io.Discard)
	logf("must not panic")
}

func TestHitReportNoHits(t *testing.T) {
	s, in, _ := newTestScene(t, false)
	in.mouseAt(5000, 5000, false)
	s.Update()
	if r := s.HitReport(); !strings.Contains(r, "pointer 0 (order 0): no hits") {
		t.Errorf("HitReport = %q", r)
	}
}
