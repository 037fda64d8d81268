package printer

import (
	"fmt"

	"github.com/joshuapare/rangekit/remap/reduce"
	"github.com/joshuapare/rangekit/remap/span"
	"github.com/joshuapare/rangekit/remap/stage"
)

// printRangesText prints one "[start, end) len n" line per range.
func (p *Printer) printRangesText(ranges []span.Range) error {
	shown := ranges
	if p.opts.MaxRanges > 0 && len(shown) > p.opts.MaxRanges {
		shown = shown[:p.opts.MaxRanges]
	}

	for _, r := range shown {
		if _, err := fmt.Fprintf(p.writer, "[%s, %s) len %s\n", p.fmtInt(r.Start), p.fmtInt(r.End()), p.fmtInt(r.Len)); err != nil {
			return err
		}
	}
	if omitted := len(ranges) - len(shown); omitted > 0 {
		fmt.Fprintf(p.writer, "... %d more\n", omitted)
	}

	_, err := fmt.Fprintf(p.writer, "Ranges: %d, Total length: %s\n", len(ranges), p.fmtInt(reduce.TotalLength(ranges)))
	return err
}

func (p *Printer) printStagesText(stages []*stage.Stage) error {
	for i, st := range stages {
		label := st.Label()
		if label == "" {
			label = "(unlabeled)"
		}
		if _, err := fmt.Fprintf(p.writer, "%d. %s: %d rules\n", i+1, label, st.Len()); err != nil {
			return err
		}
		if !p.opts.ShowRules {
			continue
		}
		for _, r := range st.Rules() {
			fmt.Fprintf(p.writer, "%s[%s, %s) -> [%s, %s)\n", p.indent(1),
				p.fmtInt(r.Source), p.fmtInt(r.SourceEnd()), p.fmtInt(r.Dest), p.fmtInt(r.Dest+r.Len))
		}
	}
	return nil
}
