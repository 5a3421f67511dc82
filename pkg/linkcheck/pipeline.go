package linkcheck

import (
	"context"

	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/mdlinkcheck/pkg/linkcheck/anchors"
)

// Document describes the owning document of a link table: everything
// the rules need beyond the table itself.
type Document struct {
	// Dir is the directory containing the document, used as the first
	// candidate base for cross-page resolution.
	Dir string

	// Headings are the document's heading texts, in document order.
	Headings []string

	// Root is the document's AST, used to discover inline anchor
	// spans. May be nil.
	Root ast.Node

	// Source is the raw document source backing Root. May be nil.
	Source []byte
}

// Option configures a pipeline run.
type Option func(*options)

type options struct {
	registry    *Registry
	checker     ReachabilityChecker
	contentDirs []string
	disabled    map[string]bool
}

// WithRegistry runs the pipeline with a custom rule registry instead of
// the built-in rules.
func WithRegistry(registry *Registry) Option {
	return func(o *options) { o.registry = registry }
}

// WithReachabilityChecker enables the all_reachable rule with the given
// checker.
func WithReachabilityChecker(checker ReachabilityChecker) Option {
	return func(o *options) { o.checker = checker }
}

// WithContentDirs appends extra content-folder names to the known list
// searched one level above the document's directory.
func WithContentDirs(dirs ...string) Option {
	return func(o *options) { o.contentDirs = append(o.contentDirs, dirs...) }
}

// WithDisabledRules skips the named rules (by ID or column name); their
// columns stay unset on every row.
func WithDisabledRules(names ...string) Option {
	return func(o *options) {
		for _, name := range names {
			o.disabled[name] = true
		}
	}
}

// Validate runs the full validation pipeline over the table, mutating
// its verdict columns in place and returning it.
//
// A nil or empty table means "nothing to validate": Validate returns
// nil and the caller must treat that as a no-op, not an error. The
// column set is fixed on every record before any rule runs (the verdict
// fields exist on the struct), classification is computed exactly once,
// and each rule then writes its own column for its applicable rows.
// Rules are column-disjoint, so the result does not depend on their
// order.
func Validate(ctx context.Context, table *LinkTable, doc Document, opts ...Option) *LinkTable {
	if table.Empty() {
		return nil
	}

	o := &options{
		registry: DefaultRegistry,
		disabled: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(o)
	}

	rctx := &RuleContext{
		Ctx:      ctx,
		Table:    table,
		Class:    Classify(table),
		Anchors:  anchors.Build(doc.Headings, doc.Root, doc.Source),
		Resolver: NewResolver(doc.Dir, o.contentDirs...),
		Reach:    o.checker,
	}

	for _, rule := range o.registry.Rules() {
		if o.disabled[rule.ID()] || o.disabled[rule.Name()] {
			continue
		}
		rule.Apply(rctx)
	}

	return table
}
