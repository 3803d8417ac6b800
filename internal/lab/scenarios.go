package lab

import (
	"context"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mwichro/dealab/internal/exc"
	"github.com/mwichro/dealab/internal/geom"
	"github.com/mwichro/dealab/internal/matrix"
)

// The built-in scenarios. Each one either completes cleanly or fails a
// check in a characteristic way; the pairs with a "-corrupt"/"-mismatch"
// twin share one body with a switch for the deliberate defect.
func init() {
	traceRun := func(corrupt bool) func(context.Context) error {
		return func(ctx context.Context) error {
			m := matrix.New(20, 20)
			m.Fill(func(i, j int) float64 { return float64(i + j) })
			if corrupt {
				m.Set(7, 7, m.At(7, 7)+1)
			}
			want := 0
			for i := 0; i < m.Rows(); i++ {
				want += 2 * i
			}
			got := int(m.Trace())
			exc.AssertThrow(got == want, "int(m.Trace()) == want",
				exc.DimensionMismatch(got, want))
			return nil
		}
	}

	segmentsRun := func(mismatch bool) func(context.Context) error {
		return func(ctx context.Context) error {
			var d geom.DataOut
			d.BuildPatches([]geom.Segment{
				{Start: geom.Point{0, 0}, End: geom.Point{1, 0}},
				{Start: geom.Point{1, 0}, End: geom.Point{1, 1}},
				{Start: geom.Point{1, 1}, End: geom.Point{0, 0}},
			})
			rows := [][]float64{
				{1, 0},
				{1, 0.5},
				{math.Sqrt2, 0.5},
			}
			if mismatch {
				rows = rows[:2] // one row short
			}
			d.AddDatasets([]string{"length", "midheight"}, rows)
			return nil
		}
	}

	Register(Scenario{
		Name:  "trace",
		About: "fills a 20x20 matrix with i+j and checks its diagonal sum",
		Run:   traceRun(false),
	})
	Register(Scenario{
		Name:  "trace-corrupt",
		About: "corrupts one diagonal entry so the diagonal-sum check fails",
		Run:   traceRun(true),
	})
	Register(Scenario{
		Name:  "segments",
		About: "builds three segments and attaches two named datasets",
		Run:   segmentsRun(false),
	})
	Register(Scenario{
		Name:  "segments-mismatch",
		About: "attaches one dataset row too few, failing the size check",
		Run:   segmentsRun(true),
	})
	Register(Scenario{
		Name:  "index",
		About: "walks a matrix column one row past its end",
		Run: func(ctx context.Context) error {
			m := matrix.New(4, 4)
			sum := 0.0
			for i := 0; i <= m.Rows(); i++ {
				sum += m.At(i, 0)
			}
			_ = sum
			return nil
		},
	})
	Register(Scenario{
		Name:  "finite",
		About: "stores the result of a division by zero into a matrix",
		Run: func(ctx context.Context) error {
			m := matrix.New(2, 2)
			step := 0.0
			m.Set(0, 0, 1/step)
			return nil
		},
	})
	Register(Scenario{
		Name:  "rpc",
		About: "classifies a failed RPC call through its status code",
		Run: func(ctx context.Context) error {
			err := status.Error(codes.Unavailable, "mesh node offline")
			exc.AssertThrowRPC(err)
			return nil
		},
	})
	Register(Scenario{
		Name:  "callback",
		About: "a user callback signals failure through a nonzero return",
		Run: func(ctx context.Context) error {
			observer := func(step int) int {
				if step > 2 {
					return step
				}
				return 0
			}
			for step := 0; step < 5; step++ {
				rc := observer(step)
				exc.AssertThrow(rc == 0, "rc == 0",
					exc.FunctionNonzeroReturn("observer", rc))
			}
			return nil
		},
	})
}
