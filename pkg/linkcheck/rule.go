package linkcheck

import (
	"context"

	"github.com/yaklabco/mdlinkcheck/pkg/linkcheck/anchors"
)

// Rule is one validation check over the link table. A rule owns exactly
// one verdict column: Apply writes that column for the rows its
// applicability predicate selects and leaves every other row unset.
// Rules never fail; an inapplicable or undecidable row simply keeps its
// unset verdict.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "LC001").
	ID() string

	// Name returns the verdict column this rule writes
	// (e.g., "known_protocol").
	Name() string

	// Description returns a short description of what the rule checks.
	Description() string

	// Tags returns categorization tags for this rule.
	Tags() []string

	// Apply writes the rule's verdict column on the shared table.
	Apply(ctx *RuleContext)
}

// RuleContext carries everything a rule may read: the shared table, the
// per-row classification, the document's anchor set, and the file
// existence resolver. It is a short-lived parameter object created once
// per pipeline run; storing the context.Context on it keeps the Rule
// interface to a single Apply method while still allowing filesystem
// probes to observe cancellation.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Table is the shared result table. Rules mutate verdict columns
	// in place and nothing else.
	Table *LinkTable

	// Class is the per-row source classification, index-aligned with
	// Table.Records. Read-only input to every rule.
	Class []RowClass

	// Anchors is the set of valid fragment targets for this document.
	Anchors *anchors.Set

	// Resolver probes the filesystem for cross-page targets.
	Resolver *Resolver

	// Reach checks external URL reachability. nil leaves the
	// all_reachable column unset.
	Reach ReachabilityChecker
}

// BaseRule provides the descriptive half of the Rule interface. Embed
// it and implement Apply.
type BaseRule struct {
	id   string
	name string
	desc string
	tags []string
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string) BaseRule {
	return BaseRule{id: id, name: name, desc: desc, tags: tags}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string { return r.id }

// Name returns the verdict column this rule writes.
func (r *BaseRule) Name() string { return r.name }

// Description returns a short description of what the rule checks.
func (r *BaseRule) Description() string { return r.desc }

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string { return r.tags }
