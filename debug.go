package tilestead

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// logOutput receives lifecycle and debug lines. Single-threaded like the
// rest of the package.
var logOutput io.Writer = os.Stderr

// SetLogOutput redirects log lines. A nil writer discards them.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logOutput = w
}

// logf writes an always-on lifecycle line.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[tilestead] "+format+"\n", args...)
}

// debugf writes a line only when the scene is in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(logOutput, "[tilestead] "+format+"\n", args...)
}

// debugStats holds per-tick timing and picking metrics.
// Only logged when Scene.debug is true.
type debugStats struct {
	pickTime   time.Duration
	trackTime  time.Duration
	dragTime   time.Duration
	hits       int
	dragging   int
	hoverCount int
}

// debugLog prints the tick's stats.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	st := s.stats
	s.debugf("tick %d | pick: %v | track: %v | drag: %v | hits: %d | hovered: %d | dragging: %d",
		s.tick, st.pickTime, st.trackTime, st.dragTime, st.hits, st.hoverCount, st.dragging)
}

// SetDebugMode enables or disables per-tick tracing.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether per-tick tracing is on.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// HitReport formats the last tick's hit lists, one line per pointer, plus
// the position of every building. The host copies it to the clipboard.
func (s *Scene) HitReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick %d\n", s.tick)

	ids := make([]int, 0, len(s.lastHits))
	for id := range s.lastHits {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	for _, id := range ids {
		ph := s.lastHits[PointerID(id)]
		fmt.Fprintf(&b, "pointer %d (order %g):", id, ph.Order)
		if len(ph.Hits) == 0 {
			b.WriteString(" no hits")
		}
		for _, h := range ph.Hits {
			fmt.Fprintf(&b, " %s@%g", s.Describe(h.Entity), h.Data.Depth)
		}
		b.WriteByte('\n')
	}

	for _, e := range s.Buildings() {
		entry := s.world.Entry(e)
		tr := TransformComponent.Get(entry)
		state := interactionOf(entry)
		fmt.Fprintf(&b, "building %s at (%g,%g,%g) %s", entityName(entry), tr.X, tr.Y, tr.Z, state)
		if s.drag.Dragging(e) {
			b.WriteString(" dragging")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
