package matrix

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/mwichro/dealab/internal/exc"
)

func TestMain(m *testing.M) {
	// Failed checks must be catchable instead of terminating the test
	// process.
	exc.DisableAbort()
	os.Exit(m.Run())
}

func TestTraceOfFilledMatrix(t *testing.T) {
	m := New(20, 20)
	m.Fill(func(i, j int) float64 { return float64(i + j) })

	// Diagonal entries are 2i, so the trace is 2 * (0 + 1 + ... + 19).
	if got := m.Trace(); got != 380 {
		t.Errorf("Trace() = %v, want 380", got)
	}
}

func TestTraceRequiresSquare(t *testing.T) {
	err := exc.Do(func() { New(3, 4).Trace() })
	if err == nil {
		t.Fatal("expected a shape failure")
	}
	e := err.(*exc.Error)
	if e.Name() != "DimensionMismatch" {
		t.Errorf("kind = %s", e.Name())
	}
	if !strings.Contains(e.Error(), "They are 3 and 4.") {
		t.Errorf("message should carry both dimensions:\n%s", e.Error())
	}
}

func TestIndexChecks(t *testing.T) {
	m := New(5, 5)
	m.Set(4, 4, 1.5)
	if got := m.At(4, 4); got != 1.5 {
		t.Errorf("At(4,4) = %v", got)
	}

	tests := []struct {
		name string
		fn   func()
	}{
		{"row past end", func() { m.At(5, 0) }},
		{"col past end", func() { m.At(0, 5) }},
		{"negative row", func() { m.At(-1, 0) }},
		{"set past end", func() { m.Set(0, 7, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exc.Do(tt.fn)
			if err == nil {
				t.Fatal("expected an index failure")
			}
			if e := err.(*exc.Error); e.Name() != "IndexRange" {
				t.Errorf("kind = %s", e.Name())
			}
		})
	}
}

func TestSetRejectsNonFiniteValues(t *testing.T) {
	m := New(2, 2)
	err := exc.Do(func() { m.Set(0, 0, math.NaN()) })
	if err == nil {
		t.Fatal("expected a finiteness failure")
	}
	if e := err.(*exc.Error); e.Name() != "NumberNotFinite" {
		t.Errorf("kind = %s", e.Name())
	}

	err = exc.Do(func() { m.Set(0, 0, math.Inf(1)) })
	if err == nil {
		t.Fatal("expected a finiteness failure for +inf")
	}
}

func TestAddChecksShapes(t *testing.T) {
	a := New(2, 3)
	a.Fill(func(i, j int) float64 { return 1 })
	b := New(2, 3)
	b.Fill(func(i, j int) float64 { return float64(j) })

	a.Add(b)
	if got := a.At(1, 2); got != 3 {
		t.Errorf("At(1,2) = %v, want 3", got)
	}

	err := exc.Do(func() { a.Add(New(3, 2)) })
	if err == nil {
		t.Fatal("expected a shape failure")
	}
	if e := err.(*exc.Error); e.Name() != "DimensionMismatch" {
		t.Errorf("kind = %s", e.Name())
	}
}

func TestNewRejectsNegativeSizes(t *testing.T) {
	err := exc.Do(func() { New(-1, 4) })
	if err == nil {
		t.Fatal("expected a range failure")
	}
	e := err.(*exc.Error)
	if e.Name() != "LowerRange" {
		t.Errorf("kind = %s", e.Name())
	}
	if !strings.Contains(e.Error(), "Number -1 must be larger than or equal to 0.") {
		t.Errorf("message:\n%s", e.Error())
	}
}
