// Command atomicstress runs the concurrent property scenarios of the atomic
// primitives and reports throughput.
//
//	atomicstress -contexts 8 -iterations 100000
//	atomicstress -config plan.yaml -metrics
//	atomicstress -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/shirou/gopsutil/v3/cpu"
	xcpu "golang.org/x/sys/cpu"

	"github.com/Leon6rd0/parsec-benchmark/atomic"
	"github.com/Leon6rd0/parsec-benchmark/internal/opt"
	"github.com/Leon6rd0/parsec-benchmark/stress"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("atomicstress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		contexts   = fs.Int("contexts", 0, "concurrent contexts per scenario (default: plan or GOMAXPROCS capped at 8)")
		iterations = fs.Int("iterations", 0, "operations per context (default: plan or 100000)")
		names      = fs.String("scenarios", "", "comma-separated scenarios to run (default: all)")
		config     = fs.String("config", "", "YAML plan file")
		metrics    = fs.Bool("metrics", false, "print Prometheus metrics after the report")
		list       = fs.Bool("list", false, "print the primitive catalogue and scenarios, then exit")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		printCatalogue(stdout)
		return 0
	}

	plan := stress.DefaultPlan()
	if *config != "" {
		data, err := os.ReadFile(*config)
		if err != nil {
			log.Error("read plan", "path", *config, "err", err)
			return 2
		}
		if plan, err = stress.ParsePlan(data); err != nil {
			log.Error("parse plan", "path", *config, "err", err)
			return 2
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "contexts":
			plan.Contexts = *contexts
		case "iterations":
			plan.Iterations = *iterations
		case "scenarios":
			plan.Scenarios = splitNames(*names)
		}
	})
	if err := plan.Validate(); err != nil {
		log.Error("invalid plan", "err", err)
		return 2
	}

	logHost(log)

	reg := prometheus.NewRegistry()
	m := stress.NewMetrics(reg)
	reports, err := stress.RunAll(ctx, plan, m, logObserver{log})
	printReports(stdout, reports)

	if *metrics {
		if err := dumpMetrics(stdout, reg); err != nil {
			log.Error("dump metrics", "err", err)
			return 1
		}
	}
	switch {
	case errors.Is(err, context.Canceled):
		log.Warn("interrupted", "completed", len(reports))
		return 130
	case err != nil:
		return 1
	}
	return 0
}

// logObserver writes one record when a scenario starts and one when it
// finishes.
type logObserver struct {
	log *slog.Logger
}

func (o logObserver) Start(name string, cfg stress.Config) {
	o.log.Info("scenario start", "scenario", name, "contexts", cfg.Contexts, "iterations", cfg.Iterations)
}

func (o logObserver) Done(r stress.Report) {
	attrs := []any{
		"scenario", r.Scenario,
		"contexts", r.Contexts,
		"iterations", r.Iterations,
		"ops", r.Ops,
		"elapsed", r.Elapsed,
	}
	if r.Err != nil {
		o.log.Error("property violated", append(attrs, "err", r.Err)...)
		return
	}
	o.log.Info("scenario done", attrs...)
}

func splitNames(s string) []string {
	var out []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func logHost(log *slog.Logger) {
	model := "unknown"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
	} else if err != nil {
		log.Debug("cpu info unavailable", "err", err)
	}
	cores, err := cpu.Counts(true)
	if err != nil {
		cores = runtime.NumCPU()
	}
	log.Info("host",
		"arch", runtime.GOARCH,
		"cpu", model,
		"logical_cores", cores,
		"gomaxprocs", runtime.GOMAXPROCS(0),
		"cache_line", opt.CacheLineSize_,
		"pointer_bits", atomic.PointerBits,
		"race", opt.Race_,
	)
	switch runtime.GOARCH {
	case "amd64":
		log.Debug("cpu features", "cx16", xcpu.X86.HasCX16, "avx2", xcpu.X86.HasAVX2)
	case "arm64":
		log.Debug("cpu features", "lse_atomics", xcpu.ARM64.HasATOMICS)
	}
}

func printCatalogue(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tOP\tWIDTH\tORDERING")
	for _, e := range atomic.Catalogue() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s -> %s\n", e.Name, e.Op, e.Width, e.Requested, e.Provided)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SCENARIO")
	for _, name := range stress.Scenarios() {
		fmt.Fprintln(tw, name)
	}
	tw.Flush()
}

func printReports(w io.Writer, reports []stress.Report) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "scenario\tcontexts\titerations\tops\telapsed\tns/op\tresult\t")
	for _, r := range reports {
		result := "ok"
		if r.Err != nil {
			result = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%v\t%.1f\t%s\t\n",
			r.Scenario, r.Contexts, r.Iterations, r.Ops, r.Elapsed.Round(time.Microsecond), r.NsPerOp(), result)
	}
	tw.Flush()
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
