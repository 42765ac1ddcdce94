// Package stats renders human-readable compile statistics: token and
// AST node counts, per-function IR instruction counts before and after
// optimization, how many times each optimizer pass fired, and wall-clock
// duration. It never participates in compilation itself — a driver
// collects the raw numbers and asks a Report to render them.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"cxxc/internal/optimizer"
)

// FunctionCounts records an individual function's instruction count
// before and after running the optimizer.
type FunctionCounts struct {
	Name   string
	Before int
	After  int
}

// Report aggregates the statistics for a single compilation.
type Report struct {
	Filename      string
	TokenCount    int
	NodeCount     int
	ErrorCount    int
	Functions     []FunctionCounts
	OptimizeLevel int
	Passes        *optimizer.Report
	Duration      time.Duration
}

// New creates an empty Report for filename.
func New(filename string) *Report {
	return &Report{Filename: filename}
}

// AddFunction records one function's before/after instruction counts.
func (r *Report) AddFunction(name string, before, after int) {
	r.Functions = append(r.Functions, FunctionCounts{Name: name, Before: before, After: after})
}

// TotalBefore sums instruction counts across every function prior to
// optimization.
func (r *Report) TotalBefore() int {
	total := 0
	for _, f := range r.Functions {
		total += f.Before
	}
	return total
}

// TotalAfter sums instruction counts across every function after
// optimization.
func (r *Report) TotalAfter() int {
	total := 0
	for _, f := range r.Functions {
		total += f.After
	}
	return total
}

// String renders the report the way a developer would read it on a
// terminal: comma-grouped counts via humanize.Comma and a duration
// rendered the same "short and approximate" way humanize.Time formats
// relative times, applied here to an elapsed interval instead of a
// timestamp.
func (r *Report) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", r.Filename)
	fmt.Fprintf(&sb, "  tokens:       %s\n", humanize.Comma(int64(r.TokenCount)))
	fmt.Fprintf(&sb, "  ast nodes:    %s\n", humanize.Comma(int64(r.NodeCount)))
	fmt.Fprintf(&sb, "  diagnostics:  %s\n", humanize.Comma(int64(r.ErrorCount)))
	fmt.Fprintf(&sb, "  elapsed:      %s\n", humanizeDuration(r.Duration))

	if len(r.Functions) > 0 {
		before, after := r.TotalBefore(), r.TotalAfter()
		fmt.Fprintf(&sb, "  ir instructions: %s before, %s after optimization (level %d)\n",
			humanize.Comma(int64(before)), humanize.Comma(int64(after)), r.OptimizeLevel)

		names := make([]string, 0, len(r.Functions))
		byName := make(map[string]FunctionCounts, len(r.Functions))
		for _, f := range r.Functions {
			names = append(names, f.Name)
			byName[f.Name] = f
		}
		sort.Strings(names)
		for _, name := range names {
			f := byName[name]
			fmt.Fprintf(&sb, "    %-24s %s -> %s\n", f.Name, humanize.Comma(int64(f.Before)), humanize.Comma(int64(f.After)))
		}
	}

	if r.Passes != nil {
		passNames := passTotals(r.Passes)
		if len(passNames) > 0 {
			fmt.Fprintf(&sb, "  passes fired:\n")
			for _, name := range sortedKeys(passNames) {
				fmt.Fprintf(&sb, "    %-20s %s\n", name, humanize.Comma(int64(passNames[name])))
			}
		}
	}

	return sb.String()
}

func passTotals(r *optimizer.Report) map[string]int {
	totals := map[string]int{}
	for _, passes := range r.Functions {
		for name, n := range passes {
			totals[name] += n
		}
	}
	return totals
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// humanizeDuration renders d the way humanize.Time renders a relative
// timestamp: the coarsest unit that keeps the number readable, never
// more than one decimal place.
func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fus", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
}
