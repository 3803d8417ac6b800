package exc

import (
	"strings"
	"testing"
)

func leafCheck() {
	AssertThrow(false, "leaf", Message("from the leaf"))
}

func midCheck() {
	leafCheck()
}

func deepRaise(n int) {
	if n == 0 {
		AssertThrow(false, "bottom", Message("deep"))
		return
	}
	deepRaise(n - 1)
}

func frameLines(msg string) []string {
	var frames []string
	for _, line := range strings.Split(msg, "\n") {
		if strings.HasPrefix(line, "#") {
			frames = append(frames, line)
		}
	}
	return frames
}

func TestStackTraceRecordsCallPath(t *testing.T) {
	err := Do(midCheck)
	msg := err.Error()

	if !strings.Contains(msg, "leafCheck") || !strings.Contains(msg, "midCheck") {
		t.Errorf("call path missing from trace:\n%s", msg)
	}
	frames := frameLines(msg)
	if len(frames) == 0 {
		t.Fatalf("no stack frames rendered:\n%s", msg)
	}
	if !strings.HasPrefix(frames[0], "#0") || !strings.Contains(frames[0], "stack_test.go") {
		t.Errorf("first frame should be the raising site, got %q", frames[0])
	}
}

func TestStackTraceDepthIsBounded(t *testing.T) {
	err := Do(func() { deepRaise(64) })
	frames := frameLines(err.Error())
	if len(frames) < 20 {
		t.Errorf("expected a deep capture, got %d frames", len(frames))
	}
	if len(frames) > 40 {
		t.Errorf("capture should be bounded, got %d frames", len(frames))
	}
}

func TestSuppressionSkipsCaptureEntirely(t *testing.T) {
	SuppressStacktraces()
	defer pol.noTraces.Store(false)

	err := Do(midCheck)
	e := err.(*Error)
	if e.pcs != nil {
		t.Error("program counters captured despite suppression")
	}
	if len(frameLines(e.Error())) != 0 {
		t.Errorf("frames rendered despite suppression:\n%s", e.Error())
	}
}
