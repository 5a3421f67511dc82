package linkcheck

// InternalAnchorRule verifies that in-page fragments name an anchor
// that actually exists in the document.
type InternalAnchorRule struct {
	BaseRule
}

// NewInternalAnchorRule creates the internal_anchor rule.
func NewInternalAnchorRule() *InternalAnchorRule {
	return &InternalAnchorRule{
		BaseRule: NewBaseRule(
			"LC003",
			ColInternalAnchor,
			"In-page links must point to an existing anchor",
			[]string{"links", "anchors"},
		),
	}
}

// Apply writes internal_anchor for in-page rows.
func (r *InternalAnchorRule) Apply(ctx *RuleContext) {
	for i, rec := range ctx.Table.Records {
		if !ctx.Class[i].InPage {
			continue
		}
		rec.InternalAnchor = verdictOf(ctx.Anchors != nil && ctx.Anchors.Has(rec.Fragment))
	}
}

// InternalFileRule verifies that cross-page targets resolve to a file
// on disk, via the multi-directory resolver.
type InternalFileRule struct {
	BaseRule
}

// NewInternalFileRule creates the internal_file rule.
func NewInternalFileRule() *InternalFileRule {
	return &InternalFileRule{
		BaseRule: NewBaseRule(
			"LC004",
			ColInternalFile,
			"Cross-page links must point to an existing file",
			[]string{"links", "files"},
		),
	}
}

// Apply writes internal_file for cross-page rows whose path is a real
// path rather than a reference-definition key.
func (r *InternalFileRule) Apply(ctx *RuleContext) {
	for i, rec := range ctx.Table.Records {
		if !ctx.Class[i].CrossPage || ctx.Class[i].RefKey {
			continue
		}
		rec.InternalFile = verdictOf(ctx.Resolver != nil && ctx.Resolver.Exists(ctx.Ctx, rec.Path))
	}
}

// InternalWellFormedRule flags cross-page rows whose path is actually a
// reference-definition key. That shape only arises from malformed
// reference-to-anchor syntax, so the row always fails, whether or not a
// file with that name happens to exist.
type InternalWellFormedRule struct {
	BaseRule
}

// NewInternalWellFormedRule creates the internal_well_formed rule.
func NewInternalWellFormedRule() *InternalWellFormedRule {
	return &InternalWellFormedRule{
		BaseRule: NewBaseRule(
			"LC005",
			ColInternalWellFormed,
			"Reference-style links must not be used as paths",
			[]string{"links", "syntax"},
		),
	}
}

// Apply writes internal_well_formed for cross-page rows that collide
// with a reference-definition key.
func (r *InternalWellFormedRule) Apply(ctx *RuleContext) {
	for i, rec := range ctx.Table.Records {
		if !ctx.Class[i].CrossPage || !ctx.Class[i].RefKey {
			continue
		}
		rec.InternalWellFormed = VerdictFail
	}
}
