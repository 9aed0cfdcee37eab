package bench

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/strand/internal/config"
	"github.com/dshills/strand/internal/engine/strand"
)

// Benchmark names.
const (
	BenchSplice = "splice"
	BenchScan   = "scan"
)

// Logger is the logging surface the runner needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}

// Result is one measurement.
type Result struct {
	Benchmark  string        `yaml:"benchmark"`
	Variant    string        `yaml:"variant"`
	SpliceeLen int           `yaml:"spliceeLen,omitempty"`
	Size       int           `yaml:"size"`
	Appends    int           `yaml:"appends"`
	Ops        int           `yaml:"ops"`
	Duration   time.Duration `yaml:"duration"`
}

// NsPerOp returns the best duration divided by the operations it covered.
func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Duration.Nanoseconds()) / float64(r.Ops)
}

// Report is the outcome of one Run.
type Report struct {
	RunID   string    `yaml:"runId"`
	Started time.Time `yaml:"started"`
	Source  string    `yaml:"source"`
	DNASize int       `yaml:"dnaSize"`
	Enzyme  string    `yaml:"enzyme"`
	Trials  int       `yaml:"trials"`
	Results []Result  `yaml:"results"`
}

// Runner executes benchmarks according to a BenchConfig.
type Runner struct {
	cfg      config.BenchConfig
	variants []strand.Variant
	logger   Logger
	now      func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(l Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithVariants restricts the variants measured.
func WithVariants(vs ...strand.Variant) RunnerOption {
	return func(r *Runner) {
		r.variants = vs
	}
}

// NewRunner creates a runner for the given settings.
func NewRunner(cfg config.BenchConfig, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:      cfg,
		variants: strand.Variants(),
		logger:   nopLogger{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cfg.Trials <= 0 {
		r.cfg.Trials = 1
	}
	return r
}

// Run benchmarks every variant against dna. Cancellation is checked between
// trials; a canceled run returns ctx.Err() and no report.
func (r *Runner) Run(ctx context.Context, source, dna string) (*Report, error) {
	if dna == "" {
		return nil, ErrEmptySource
	}

	report := &Report{
		RunID:   uuid.New().String(),
		Started: r.now(),
		Source:  source,
		DNASize: len(dna),
		Enzyme:  r.cfg.Enzyme,
		Trials:  r.cfg.Trials,
	}
	r.logger.Info("benchmark %s started: %d bases, %d variants", report.RunID, len(dna), len(r.variants))

	for _, v := range r.variants {
		results, err := r.runSplice(ctx, v, dna)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, results...)

		if r.cfg.ScanRepeats > 0 {
			res, err := r.runScan(ctx, v, dna)
			if err != nil {
				return nil, err
			}
			report.Results = append(report.Results, res)
		}
	}

	r.logger.Info("benchmark %s finished: %d results", report.RunID, len(report.Results))
	return report, nil
}

// runSplice measures CutAndSplice for every splicee length.
func (r *Runner) runSplice(ctx context.Context, v strand.Variant, dna string) ([]Result, error) {
	base, err := strand.New(v, dna)
	if err != nil {
		return nil, err
	}

	var results []Result
	for n := r.cfg.SpliceeStart; n > 0 && n <= r.cfg.SpliceeMax; n *= 2 {
		splicee := makeSplicee(n)
		res := Result{Benchmark: BenchSplice, Variant: v.String(), SpliceeLen: n, Ops: 1}

		for trial := 0; trial < r.cfg.Trials; trial++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			start := time.Now()
			out, err := strand.CutAndSplice(base, r.cfg.Enzyme, splicee)
			elapsed := time.Since(start)
			if err != nil {
				return nil, fmt.Errorf("splice %s: %w", v, err)
			}
			if trial == 0 || elapsed < res.Duration {
				res.Duration = elapsed
			}
			res.Size = out.Size()
			res.Appends = out.AppendCount()
		}

		r.logger.Debug("splice %s splicee=%d size=%d took %v", v, n, res.Size, res.Duration)
		results = append(results, res)
	}
	return results, nil
}

// runScan builds a strand from appended pieces and reads it sequentially.
func (r *Runner) runScan(ctx context.Context, v strand.Variant, dna string) (Result, error) {
	s, err := strand.New(v, "")
	if err != nil {
		return Result{}, err
	}
	piece := r.cfg.ScanPiece
	if piece <= 0 {
		piece = len(dna)
	}
	for i := 0; i < len(dna); i += piece {
		s.Append(dna[i:min(i+piece, len(dna))])
	}

	res := Result{
		Benchmark: BenchScan,
		Variant:   v.String(),
		Size:      s.Size(),
		Appends:   s.AppendCount(),
		Ops:       s.Size() * r.cfg.ScanRepeats,
	}

	for trial := 0; trial < r.cfg.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		start := time.Now()
		for rep := 0; rep < r.cfg.ScanRepeats; rep++ {
			for i := 0; i < s.Size(); i++ {
				if _, err := s.CharAt(i); err != nil {
					return Result{}, fmt.Errorf("scan %s: %w", v, err)
				}
			}
		}
		elapsed := time.Since(start)
		if trial == 0 || elapsed < res.Duration {
			res.Duration = elapsed
		}
	}

	r.logger.Debug("scan %s size=%d took %v", v, res.Size, res.Duration)
	return res, nil
}

// makeSplicee returns n bases of a repeating pattern.
func makeSplicee(n int) string {
	const pattern = "ttagcaggtc"
	return strings.Repeat(pattern, n/len(pattern)+1)[:n]
}
