// Package output provides the finding sink and the formatters that render
// scan reports in different formats.
package output

import (
	"io"

	"github.com/ancients-collective/privsift/internal/types"
)

// Sink receives classified verdicts in emission order. The scanner emits
// category by category, so a sink that preserves arrival order also
// preserves the deterministic per-category grouping.
type Sink interface {
	Emit(v types.Verdict)
}

// Formatter writes a scan report to the given writer.
type Formatter interface {
	Write(w io.Writer, report *types.ScanReport) error
}

// Collector is a Sink that buffers verdicts grouped by category, preserving
// category first-seen order and per-category verdict order.
type Collector struct {
	order  []types.Category
	groups map[types.Category]*types.CategoryGroup
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{groups: make(map[types.Category]*types.CategoryGroup)}
}

// Emit appends a verdict to its category group.
func (c *Collector) Emit(v types.Verdict) {
	g, ok := c.groups[v.Category]
	if !ok {
		g = &types.CategoryGroup{Category: v.Category}
		c.groups[v.Category] = g
		c.order = append(c.order, v.Category)
	}
	g.Verdicts = append(g.Verdicts, v)
}

// Groups returns the collected category groups in emission order.
func (c *Collector) Groups() []types.CategoryGroup {
	out := make([]types.CategoryGroup, 0, len(c.order))
	for _, cat := range c.order {
		out = append(out, *c.groups[cat])
	}
	return out
}

// Summary tallies the collected verdicts. Duration is filled by the caller.
func (c *Collector) Summary() types.ScanSummary {
	var s types.ScanSummary
	for _, cat := range c.order {
		for _, v := range c.groups[cat].Verdicts {
			s.Total++
			switch v.Severity {
			case types.SeverityPotential:
				s.Potential++
			case types.SeverityOK:
				s.OK++
			case types.SeverityInfo:
				s.Info++
			}
		}
	}
	return s
}
