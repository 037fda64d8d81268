// Package printer renders ranges, stages and answers as text or JSON.
package printer

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/rangekit/remap/span"
	"github.com/joshuapare/rangekit/remap/stage"
	"github.com/joshuapare/rangekit/remap/verify"
)

const (
	DefaultIndentSize = 2
	DefaultMaxRanges  = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// Group inserts thousands separators in text output ("1,234,567").
	// JSON output always carries plain numbers.
	// Default: false
	Group bool

	// Sort orders ranges by start before printing.
	// Default: true
	Sort bool

	// MaxRanges limits how many ranges are listed (0 = unlimited).
	// The count of omitted ranges is reported.
	// Default: 0
	MaxRanges int

	// ShowRules lists every rule when printing stages.
	// Default: false
	ShowRules bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		Group:      false,
		Sort:       true,
		MaxRanges:  DefaultMaxRanges,
		ShowRules:  false,
	}
}

// Printer writes engine values to an io.Writer.
type Printer struct {
	writer io.Writer
	opts   Options
	num    *message.Printer
}

// New creates a printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Printer{
		writer: w,
		opts:   opts,
		num:    message.NewPrinter(language.English),
	}
}

// Answer is one named scalar result, such as the lowest location of a part.
type Answer struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// TraceStep is one value in a per-stage trace.
type TraceStep struct {
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

// PrintRanges prints ranges with a total length summary.
func (p *Printer) PrintRanges(ranges []span.Range) error {
	if p.opts.Sort {
		ranges = slices.Clone(ranges)
		slices.SortFunc(ranges, func(a, b span.Range) int {
			return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.Len, b.Len))
		})
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printRangesJSON(ranges)
	case FormatText:
		return p.printRangesText(ranges)
	default:
		return fmt.Errorf("unsupported format: %s", p.opts.Format)
	}
}

// PrintStages prints each stage's label and rule count.
func (p *Printer) PrintStages(stages []*stage.Stage) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printStagesJSON(stages)
	case FormatText:
		return p.printStagesText(stages)
	default:
		return fmt.Errorf("unsupported format: %s", p.opts.Format)
	}
}

// PrintAnswers prints named scalar results.
func (p *Printer) PrintAnswers(answers []Answer) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.encodeJSON(answers)
	case FormatText:
		for _, a := range answers {
			if _, err := fmt.Fprintf(p.writer, "%s: %s\n", a.Name, p.fmtInt(a.Value)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", p.opts.Format)
	}
}

// PrintTrace prints a value's path through the stages.
func (p *Printer) PrintTrace(steps []TraceStep) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.encodeJSON(steps)
	case FormatText:
		for i, step := range steps {
			indent := ""
			if i > 0 {
				indent = p.indent(1)
			}
			if _, err := fmt.Fprintf(p.writer, "%s%s %s\n", indent, step.Category, p.fmtInt(step.Value)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", p.opts.Format)
	}
}

// PrintReport prints the summary of a pipeline verification.
func (p *Printer) PrintReport(rep verify.Report) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.encodeJSON(rep)
	case FormatText:
		fmt.Fprintf(p.writer, "Stages: %d, Inputs: %d\n", rep.Stages, rep.Inputs)
		for i, n := range rep.PerStage {
			fmt.Fprintf(p.writer, "%sstage %d: %s pieces\n", p.indent(1), i, p.fmtInt(int64(n)))
		}
		_, err := fmt.Fprintf(p.writer, "Pieces checked: %s, Length: %s\n", p.fmtInt(int64(rep.Pieces)), p.fmtInt(rep.Length))
		return err
	default:
		return fmt.Errorf("unsupported format: %s", p.opts.Format)
	}
}

// fmtInt renders n, grouped when Options.Group is set.
func (p *Printer) fmtInt(n int64) string {
	if p.opts.Group {
		return p.num.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func (p *Printer) indent(depth int) string {
	return fmt.Sprintf("%*s", depth*p.opts.IndentSize, "")
}
