package lab

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mwichro/dealab/internal/exc"
)

// Outcome is the result of one scenario run. Report holds the full rendered
// failure text for failed runs and is empty otherwise.
type Outcome struct {
	Scenario string
	Err      error
	Report   string
	Duration time.Duration
}

func (o Outcome) Failed() bool { return o.Err != nil }

// Kind returns the failure kind name, or "" for a pass or a plain error.
func (o Outcome) Kind() string {
	var e *exc.Error
	if errors.As(o.Err, &e) {
		return e.Name()
	}
	return ""
}

// Runner executes scenarios and logs their outcomes. While a run is in
// progress, failed abort-or-throw checks throw instead of terminating the
// process; the prior policy is restored when the run finishes.
type Runner struct {
	log    *zap.Logger
	notify func(Outcome)
}

// NewRunner returns a runner logging to log. A nil log discards output.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Notify installs fn to be called with each outcome as soon as its
// scenario finishes. Set it before starting a run; RunParallel calls fn
// from its worker goroutines.
func (r *Runner) Notify(fn func(Outcome)) { r.notify = fn }

// Run executes the named scenarios one after another. On cancellation it
// returns the outcomes collected so far alongside ctx.Err().
func (r *Runner) Run(ctx context.Context, names []string) ([]Outcome, error) {
	scens, err := resolve(names)
	if err != nil {
		return nil, err
	}
	defer catchable()()

	outcomes := make([]Outcome, 0, len(scens))
	for _, s := range scens {
		if ctx.Err() != nil {
			return outcomes, ctx.Err()
		}
		outcomes = append(outcomes, r.one(ctx, s))
	}
	return outcomes, nil
}

// RunParallel executes the named scenarios on the given number of workers.
// The returned slice has one outcome per scenario, in input order,
// regardless of which worker ran it.
func (r *Runner) RunParallel(ctx context.Context, names []string, workers int) ([]Outcome, error) {
	scens, err := resolve(names)
	if err != nil {
		return nil, err
	}
	if workers <= 0 || workers > len(scens) {
		workers = len(scens)
	}
	defer catchable()()

	outcomes := make([]Outcome, len(scens))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = r.one(ctx, scens[idx])
			}
		}()
	}

feed:
	for i := range scens {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range outcomes {
			if outcomes[i].Scenario == "" {
				outcomes[i] = Outcome{Scenario: scens[i].Name, Err: err}
			}
		}
		return outcomes, err
	}
	return outcomes, nil
}

func (r *Runner) one(ctx context.Context, s Scenario) Outcome {
	start := time.Now()
	err := capture(ctx, s)
	o := Outcome{Scenario: s.Name, Err: err, Duration: time.Since(start)}
	if err != nil {
		o.Report = err.Error()
	}
	r.logOutcome(o)
	if r.notify != nil {
		r.notify(o)
	}
	return o
}

// capture runs one scenario, converting a thrown failure into its error.
func capture(ctx context.Context, s Scenario) (err error) {
	defer exc.Catch(&err)
	return s.Run(ctx)
}

// catchable turns off process aborts until the returned func runs.
func catchable() (restore func()) {
	prev := exc.AbortEnabled()
	exc.DisableAbort()
	return func() {
		if prev {
			exc.EnableAbort()
		}
	}
}

func (r *Runner) logOutcome(o Outcome) {
	if !o.Failed() {
		r.log.Info("scenario passed",
			zap.String("scenario", o.Scenario),
			zap.Duration("took", o.Duration))
		return
	}
	fields := []zap.Field{
		zap.String("scenario", o.Scenario),
		zap.Duration("took", o.Duration),
	}
	var e *exc.Error
	if errors.As(o.Err, &e) {
		fields = append(fields,
			zap.String("kind", e.Name()),
			zap.String("condition", e.Condition()),
			zap.String("file", e.File()),
			zap.Int("line", e.Line()))
	} else {
		fields = append(fields, zap.Error(o.Err))
	}
	r.log.Warn("scenario failed", fields...)
}

func resolve(names []string) ([]Scenario, error) {
	scens := make([]Scenario, len(names))
	for i, name := range names {
		s, err := Get(name)
		if err != nil {
			return nil, err
		}
		scens[i] = s
	}
	return scens, nil
}
