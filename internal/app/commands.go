package app

import (
	"context"
	"time"

	"github.com/dshills/strand/internal/bench"
	"github.com/dshills/strand/internal/config"
	"github.com/dshills/strand/internal/engine/strand"
	"github.com/dshills/strand/internal/script"
)

// stdinSource names standard input as a DNA source.
const stdinSource = "-"

// BenchRequest selects the input and output of a benchmark run.
type BenchRequest struct {
	// Source is a DNA file, or "-" for stdin. Empty uses bench.source.
	Source string
	// Format overrides bench.format.
	Format string
}

// Bench runs the benchmark harness and writes the report.
func (app *Application) Bench(ctx context.Context, req BenchRequest) (*bench.Report, error) {
	source := req.Source
	if source == "" {
		source = app.cfg.Bench.Source
	}
	if source == "" {
		return nil, NewOperationError("bench", "", ErrNoSource)
	}

	format, err := app.reportFormat(req.Format)
	if err != nil {
		return nil, NewOperationError("bench", source, err)
	}

	dna, err := app.readDNA(source)
	if err != nil {
		return nil, NewOperationError("bench", source, err)
	}

	variants, err := app.cfg.BenchVariants()
	if err != nil {
		return nil, NewOperationError("bench", source, err)
	}

	log := app.Logger().WithComponent("bench")
	runner := bench.NewRunner(app.cfg.Bench,
		bench.WithLogger(log),
		bench.WithVariants(variants...),
	)

	report, err := runner.Run(ctx, source, dna)
	if err != nil {
		app.logComponentError("bench", err)
		return nil, NewOperationError("bench", source, err)
	}

	if err := report.Write(app.stdout, format); err != nil {
		return nil, NewOperationError("bench", source, err).WithContext("writing report")
	}
	return report, nil
}

// reportFormat resolves a format from the request, the config, then the
// terminal default.
func (app *Application) reportFormat(requested string) (bench.Format, error) {
	name := requested
	if name == "" {
		name = app.cfg.Bench.Format
	}
	if name == config.FormatAuto {
		if app.interactive {
			return bench.FormatText, nil
		}
		return bench.FormatJSON, nil
	}
	return bench.ParseFormat(name)
}

// SpliceRequest describes one cut-and-splice.
type SpliceRequest struct {
	Enzyme  string
	Splicee string
	// Source is a DNA file, or "-" or empty for stdin.
	Source string
	// Print also writes the resulting text.
	Print bool
}

// SpliceResult summarizes a splice.
type SpliceResult struct {
	Variant   strand.Variant
	InputSize int
	Size      int
	Appends   int
	Duration  time.Duration
	Text      string
}

// Splice cuts the source DNA at every enzyme site and splices in splicee.
func (app *Application) Splice(ctx context.Context, req SpliceRequest) (*SpliceResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dna, err := app.readDNA(req.Source)
	if err != nil {
		return nil, NewOperationError("splice", req.Source, err)
	}

	s, err := strand.New(app.variant, dna)
	if err != nil {
		return nil, NewOperationError("splice", req.Source, err)
	}

	log := app.Logger().WithComponent("splice").WithField("variant", app.variant)
	log.Debug("splicing %d bases at %q", len(dna), req.Enzyme)

	start := time.Now()
	out, err := strand.CutAndSplice(s, req.Enzyme, req.Splicee)
	if err != nil {
		app.logComponentError("splice", err)
		return nil, NewOperationError("splice", req.Source, err)
	}
	elapsed := time.Since(start)

	res := &SpliceResult{
		Variant:   app.variant,
		InputSize: len(dna),
		Size:      out.Size(),
		Appends:   out.AppendCount(),
		Duration:  elapsed,
	}
	log.Info("spliced %d -> %d bases in %v", res.InputSize, res.Size, res.Duration)

	app.printf("variant\t%s\n", res.Variant)
	app.printf("input\t%d\n", res.InputSize)
	app.printf("size\t%d\n", res.Size)
	app.printf("appends\t%d\n", res.Appends)
	app.printf("time\t%v\n", res.Duration)
	if req.Print {
		res.Text = out.String()
		app.printf("%s\n", res.Text)
	}
	return res, nil
}

// Reverse writes the reverse of the source DNA.
func (app *Application) Reverse(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dna, err := app.readDNA(source)
	if err != nil {
		return "", NewOperationError("reverse", source, err)
	}

	s, err := strand.New(app.variant, dna)
	if err != nil {
		return "", NewOperationError("reverse", source, err)
	}

	rev := s.Reverse().String()
	app.Logger().WithComponent("reverse").Debug("reversed %d bases", len(rev))
	app.printf("%s\n", rev)
	return rev, nil
}

// ScriptRequest describes a script run.
type ScriptRequest struct {
	Path string
	// Watch reruns the script on change. script.watch also enables it.
	Watch bool
}

// RunScript runs a Lua script once, or until ctx is canceled in watch mode.
func (app *Application) RunScript(ctx context.Context, req ScriptRequest) error {
	if req.Path == "" {
		return NewOperationError("script", "", ErrNoScript)
	}

	log := app.Logger().WithComponent("script").WithField("path", req.Path)
	sc := app.cfg.Script

	run := func() error {
		state := script.NewState(
			script.WithOpLimit(sc.OpLimit),
			script.WithVariant(app.variant),
			script.WithOutput(app.stdout),
		)
		defer state.Close()

		start := time.Now()
		if err := state.RunFile(ctx, req.Path); err != nil {
			return NewOperationError("script", req.Path, err)
		}
		log.Info("finished in %v, %d strand ops", time.Since(start), state.Ops())
		return nil
	}

	if !req.Watch && !sc.Watch {
		return run()
	}

	log.Info("watching for changes")
	debounce := time.Duration(sc.DebounceMillis) * time.Millisecond
	return script.Watch(ctx, req.Path, debounce, run, func(err error) {
		app.logComponentError("script", err)
	})
}

// readDNA loads DNA from a file, or from stdin for "" and "-".
func (app *Application) readDNA(source string) (string, error) {
	if source == "" || source == stdinSource {
		return bench.LoadDNA(app.stdin)
	}
	return bench.LoadDNAFile(source)
}
