package bench

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// Format is a report output format.
type Format string

// Report formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders the report to w in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		return r.writeText(w)
	case FormatJSON:
		return r.writeJSON(w)
	case FormatYAML:
		return r.writeYAML(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// writeText writes an aligned table.
func (r *Report) writeText(w io.Writer) error {
	fmt.Fprintf(w, "Run %s  source=%s  bases=%d  enzyme=%s  trials=%d\n\n",
		r.RunID, r.Source, r.DNASize, r.Enzyme, r.Trials)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "benchmark\tvariant\tsplicee\tsize\tappends\ttime\tns/op\t")
	for _, res := range r.Results {
		splicee := "-"
		if res.SpliceeLen > 0 {
			splicee = fmt.Sprint(res.SpliceeLen)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%v\t%.2f\t\n",
			res.Benchmark, res.Variant, splicee, res.Size, res.Appends,
			res.Duration.Round(time.Microsecond), res.NsPerOp())
	}
	return tw.Flush()
}

// writeJSON builds the document incrementally and pretty-prints it.
func (r *Report) writeJSON(w io.Writer) error {
	doc := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, v)
	}

	set("runId", r.RunID)
	set("started", r.Started.Format(time.RFC3339Nano))
	set("source", r.Source)
	set("dnaSize", r.DNASize)
	set("enzyme", r.Enzyme)
	set("trials", r.Trials)
	set("results", []any{})
	for _, res := range r.Results {
		set("results.-1", map[string]any{
			"benchmark":  res.Benchmark,
			"variant":    res.Variant,
			"spliceeLen": res.SpliceeLen,
			"size":       res.Size,
			"appends":    res.Appends,
			"ops":        res.Ops,
			"durationNs": res.Duration.Nanoseconds(),
			"nsPerOp":    res.NsPerOp(),
		})
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	_, err = w.Write(pretty.Pretty(doc))
	return err
}

// writeYAML writes the report as a YAML document.
func (r *Report) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
