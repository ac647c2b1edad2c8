// Package stress runs the concurrent properties of the atomic primitives as
// scenarios. Each scenario starts its contexts together behind a gate, has
// every context perform its iterations, then checks the property the
// primitives promise and reports a wrapped sentinel error if it broke.
package stress

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Leon6rd0/parsec-benchmark/atomic"
	"github.com/Leon6rd0/parsec-benchmark/internal/opt"
	"github.com/Leon6rd0/parsec-benchmark/internal/spin"
)

// Report is the outcome of one scenario run.
type Report struct {
	Scenario   string
	Contexts   int
	Iterations int
	Ops        uint64
	Elapsed    time.Duration
	Err        error
}

// NsPerOp returns the mean wall time per operation.
func (r Report) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}

type scenario struct {
	name string
	run  func(ctx context.Context, cfg Config) (uint64, error)
	// contexts returns how many goroutines run actually starts for cfg, when
	// that differs from cfg.Contexts.
	contexts func(cfg Config) int
}

func (s scenario) contextsFor(cfg Config) int {
	if s.contexts != nil {
		return s.contexts(cfg)
	}
	return cfg.Contexts
}

var scenarios = []scenario{
	{"add-subtract/8", addSubtract[uint8], nil},
	{"add-subtract/16", addSubtract[uint16], nil},
	{"add-subtract/32", addSubtract[uint32], nil},
	{"add-subtract/64", addSubtract[uint64], nil},
	{"add-subtract/ptr", addSubtract[uintptr], nil},
	{"fetch-add", fetchAdd, nil},
	{"cas-counter", casCounter, nil},
	{"read-and-clear", readAndClear, nil},
	{"message-passing", messagePassing, mailboxContexts},
	{"set-clear/8", setClear8, nil},
	{"set-clear/64", setClear64, nil},
	{"seq-lock", seqLockSnapshots, nil},
	{"bit-lock", bitLockCounter, nil},
	{"ticket-lock", ticketLockCounter, nil},
}

// Scenarios returns the scenario names in run order.
func Scenarios() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return names
}

func lookup(name string) (scenario, error) {
	i := slices.IndexFunc(scenarios, func(s scenario) bool { return s.name == name })
	if i < 0 {
		return scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return scenarios[i], nil
}

// Run runs the named scenario once. The returned Report is filled in even
// when the property failed, and its Err matches the returned error.
// Report.Contexts is the number of goroutines that ran, which scenarios
// built from pairs round up to even.
func Run(ctx context.Context, name string, cfg Config) (Report, error) {
	s, err := lookup(name)
	if err != nil {
		return Report{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	r := Report{Scenario: name, Contexts: s.contextsFor(cfg), Iterations: cfg.Iterations}
	start := time.Now()
	r.Ops, err = s.run(ctx, cfg)
	r.Elapsed = time.Since(start)
	if err != nil {
		r.Err = fmt.Errorf("%s: %w", name, err)
	}
	return r, r.Err
}

// Observer is told about each scenario RunAll runs, before and after.
type Observer interface {
	Start(name string, cfg Config)
	Done(r Report)
}

// RunAll runs every scenario of the plan in order, notifying each observer
// around every run, and returns the reports together with the joined
// failures. A cancelled ctx stops it before the next scenario.
func RunAll(ctx context.Context, p Plan, obs ...Observer) ([]Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var reports []Report
	var errs []error
	for _, name := range p.names() {
		if err := ctx.Err(); err != nil {
			return reports, errors.Join(append(errs, err)...)
		}
		cfg := p.ConfigFor(name)
		for _, o := range obs {
			o.Start(name, cfg)
		}
		r, err := Run(ctx, name, cfg)
		for _, o := range obs {
			o.Done(r)
		}
		reports = append(reports, r)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return reports, errors.Join(errs...)
}

// batch is how many iterations a context runs between cancellation checks.
const batch = 1024

// runContexts runs fn on n goroutines released together and returns the
// sum of the operation counts they report. The first error cancels the
// others' ctx.
func runContexts(ctx context.Context, n int, fn func(ctx context.Context, id int) (int, error)) (uint64, error) {
	ops := make([]opt.Stripe, n)
	var start gate
	g, ctx := errgroup.WithContext(ctx)
	for id := range n {
		g.Go(func() error {
			start.wait()
			done, err := fn(ctx, id)
			atomic.AddUint64(&ops[id].C, uint64(done))
			return err
		})
	}
	start.open(n)
	err := g.Wait()

	var total uint64
	for i := range ops {
		total += atomic.LoadAcquireUint64(&ops[i].C)
	}
	return total, err
}

// each calls fn for i in [0, n) and returns how many calls succeeded.
func each(ctx context.Context, n int, fn func(i int) error) (int, error) {
	for i := range n {
		if i%batch == 0 {
			if err := ctx.Err(); err != nil {
				return i, err
			}
		}
		if err := fn(i); err != nil {
			return i, err
		}
	}
	return n, nil
}

// await polls cond until it holds or ctx is done.
func await(ctx context.Context, cond func() bool) error {
	var spins int
	for n := 1; !cond(); n++ {
		if n%batch == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		spin.Yield(&spins)
	}
	return nil
}
