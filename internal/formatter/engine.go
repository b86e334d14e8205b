package formatter

import (
	"fmt"

	"github.com/donaldgifford/swiftfmt/internal/config"
	"github.com/donaldgifford/swiftfmt/internal/diag"
	"github.com/donaldgifford/swiftfmt/internal/syntax"
)

// Mode selects whether the rewritten tree is kept.
type Mode int

const (
	// ModeLint reports diagnostics and discards the rewritten tree.
	ModeLint Mode = iota
	// ModeFormat reports diagnostics and returns the rewritten tree.
	ModeFormat
)

func (m Mode) String() string {
	switch m {
	case ModeLint:
		return "lint"
	case ModeFormat:
		return "format"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Result is the outcome of one driver run.
type Result struct {
	// File is the rewritten tree; nil in lint mode.
	File        *syntax.SourceFile
	Diagnostics *diag.Collector
}

// Driver applies an ordered set of rules to syntax trees. It holds no
// per-run state and may be shared between goroutines.
type Driver struct {
	rules  []FormatRule
	cfg    *config.FormatterConfig
	byKind map[syntax.Kind][]int
}

// NewDriver indexes rules by the kinds they visit. A nil cfg uses the
// default formatter settings.
func NewDriver(rules []FormatRule, cfg *config.FormatterConfig) *Driver {
	if cfg == nil {
		cfg = &config.DefaultConfig().Formatter
	}
	d := &Driver{rules: rules, cfg: cfg, byKind: make(map[syntax.Kind][]int)}
	for i, r := range rules {
		for _, k := range r.Kinds() {
			idx := d.byKind[k]
			if len(idx) > 0 && idx[len(idx)-1] == i {
				continue
			}
			d.byKind[k] = append(idx, i)
		}
	}
	return d
}

// Rules returns the driver's rules in execution order.
func (d *Driver) Rules() []FormatRule { return d.rules }

// Run rewrites tree depth-first, innermost nodes first. At each node the
// rules visiting its current kind run in order, each receiving the result
// of the previous one.
func (d *Driver) Run(file string, tree *syntax.SourceFile, mode Mode) *Result {
	diags := diag.NewCollector(file)

	out := syntax.Rewrite(tree, func(n syntax.Node) syntax.Node {
		last := -1
		for {
			i := d.next(n.Kind(), last)
			if i < 0 {
				return n
			}
			r := d.rules[i]
			ctx := &Context{File: file, Config: d.cfg, rule: r.Name(), diags: diags}
			res := r.Format(ctx, n)
			if res == nil {
				panic(fmt.Sprintf("formatter: rule %s returned nil for %s", r.Name(), n.Kind()))
			}
			n = res
			last = i
		}
	})

	res := &Result{Diagnostics: diags}
	if mode == ModeFormat {
		f, ok := out.(*syntax.SourceFile)
		if !ok {
			panic(fmt.Sprintf("formatter: rewrite replaced the source file with %T", out))
		}
		res.File = f
	}
	return res
}

// next returns the index of the first rule after last that visits kind k,
// or -1.
func (d *Driver) next(k syntax.Kind, last int) int {
	for _, i := range d.byKind[k] {
		if i > last {
			return i
		}
	}
	return -1
}
