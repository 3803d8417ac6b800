package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mwichro/dealab/internal/exc"
	"github.com/mwichro/dealab/internal/lab"
)

func failedOutcome(t *testing.T) lab.Outcome {
	t.Helper()
	err := exc.Do(func() {
		exc.AssertThrow(false, "rows == cols", exc.DimensionMismatch(3, 4))
	})
	if err == nil {
		t.Fatal("expected a failure")
	}
	return lab.Outcome{
		Scenario: "shape",
		Err:      err,
		Report:   err.Error(),
		Duration: 3 * time.Millisecond,
	}
}

func TestOutcomeLine(t *testing.T) {
	pass := Outcome(lab.Outcome{Scenario: "trace", Duration: time.Millisecond})
	if !strings.Contains(pass, "PASS") || !strings.Contains(pass, "trace") {
		t.Errorf("pass line = %q", pass)
	}
	if strings.Contains(pass, "FAIL") {
		t.Errorf("pass line should not mention FAIL: %q", pass)
	}

	fail := Outcome(failedOutcome(t))
	if !strings.Contains(fail, "FAIL") || !strings.Contains(fail, "shape") {
		t.Errorf("fail line = %q", fail)
	}
	if !strings.Contains(fail, "DimensionMismatch") {
		t.Errorf("fail line should name the kind: %q", fail)
	}
}

func TestOutcomeLineForPlainErrors(t *testing.T) {
	line := Outcome(lab.Outcome{Scenario: "x", Err: errors.New("boom")})
	if !strings.Contains(line, "FAIL") {
		t.Errorf("line = %q", line)
	}
	if strings.Contains(line, "boom") {
		t.Errorf("one-line status should not inline the error text: %q", line)
	}
}

func TestDetailFramesTheReport(t *testing.T) {
	o := failedOutcome(t)
	detail := Detail(o)
	if !strings.Contains(detail, "They are 3 and 4.") {
		t.Errorf("detail should embed the report:\n%s", detail)
	}
	if !strings.Contains(detail, "╭") {
		t.Errorf("detail should be framed:\n%s", detail)
	}

	pass := Detail(lab.Outcome{Scenario: "trace"})
	if strings.Contains(pass, "╭") {
		t.Errorf("passing outcomes have no frame: %q", pass)
	}
}

func TestSummaryTallies(t *testing.T) {
	outcomes := []lab.Outcome{
		{Scenario: "a"},
		{Scenario: "b"},
		{Scenario: "c", Err: errors.New("x")},
	}
	s := Summary(outcomes)
	if !strings.Contains(s, "2 passed") || !strings.Contains(s, "1 failed") {
		t.Errorf("summary = %q", s)
	}

	s = Summary(outcomes[:2])
	if !strings.Contains(s, "2 passed") || strings.Contains(s, "failed") {
		t.Errorf("all-pass summary = %q", s)
	}
}
