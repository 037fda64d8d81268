package printer

import (
	"encoding/json"

	"github.com/joshuapare/rangekit/remap/reduce"
	"github.com/joshuapare/rangekit/remap/span"
	"github.com/joshuapare/rangekit/remap/stage"
)

// jsonRange represents a range in JSON format.
type jsonRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
	Len   int64 `json:"len"`
}

// jsonRanges is the PrintRanges document.
type jsonRanges struct {
	Count  int         `json:"count"`
	Length int64       `json:"total_length"`
	Ranges []jsonRange `json:"ranges"`
}

// jsonRule represents a rule in JSON format.
type jsonRule struct {
	Source int64 `json:"source"`
	Dest   int64 `json:"dest"`
	Len    int64 `json:"len"`
}

// jsonStage represents a stage in JSON format.
type jsonStage struct {
	From  string     `json:"from,omitempty"`
	To    string     `json:"to,omitempty"`
	Count int        `json:"rules"`
	Rules []jsonRule `json:"rule_list,omitempty"`
}

func (p *Printer) printRangesJSON(ranges []span.Range) error {
	doc := jsonRanges{
		Count:  len(ranges),
		Length: reduce.TotalLength(ranges),
		Ranges: make([]jsonRange, 0, len(ranges)),
	}
	shown := ranges
	if p.opts.MaxRanges > 0 && len(shown) > p.opts.MaxRanges {
		shown = shown[:p.opts.MaxRanges]
	}
	for _, r := range shown {
		doc.Ranges = append(doc.Ranges, jsonRange{Start: r.Start, End: r.End(), Len: r.Len})
	}
	return p.encodeJSON(doc)
}

func (p *Printer) printStagesJSON(stages []*stage.Stage) error {
	out := make([]jsonStage, 0, len(stages))
	for _, st := range stages {
		js := jsonStage{From: st.From(), To: st.To(), Count: st.Len()}
		if p.opts.ShowRules {
			for _, r := range st.Rules() {
				js.Rules = append(js.Rules, jsonRule{Source: r.Source, Dest: r.Dest, Len: r.Len})
			}
		}
		out = append(out, js)
	}
	return p.encodeJSON(out)
}

func (p *Printer) encodeJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
