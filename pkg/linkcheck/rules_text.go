package linkcheck

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// uninformativePattern matches link text that tells the reader nothing
// about the destination. The match is anchored to the whole trimmed
// string, with surrounding punctuation stripped, case-insensitively;
// "here" and "more" variants swallow a trailing "for ..." / "about ..."
// so "click here for more information" still counts as uninformative.
var uninformativePattern = regexp.MustCompile(
	`(?i)^\W*((a |this )?link|this|link to|(click |over )?here( for.*)?|(read )?more( info(rmation)?)?( about.*)?|read on( about.*)?)\W*$`,
)

// minLinkTextLength is the shortest visible text that can plausibly
// describe a destination.
const minLinkTextLength = 2

// ImgAltTextRule checks that images carry an alt attribute. An empty
// alt is a deliberate decorative-image marker and passes; only a
// missing attribute fails.
type ImgAltTextRule struct {
	BaseRule
}

// NewImgAltTextRule creates the img_alt_text rule.
func NewImgAltTextRule() *ImgAltTextRule {
	return &ImgAltTextRule{
		BaseRule: NewBaseRule(
			"LC007",
			ColImgAltText,
			"Images must have an alt attribute",
			[]string{"images", "accessibility"},
		),
	}
}

// Apply writes img_alt_text for image rows.
func (r *ImgAltTextRule) Apply(ctx *RuleContext) {
	for _, rec := range ctx.Table.Records {
		if !rec.Type.IsImage() {
			continue
		}
		rec.ImgAltText = verdictOf(rec.Alt != nil)
	}
}

// DescriptiveRule checks that link text describes the destination
// instead of being a "click here" style filler phrase.
type DescriptiveRule struct {
	BaseRule
}

// NewDescriptiveRule creates the descriptive rule.
func NewDescriptiveRule() *DescriptiveRule {
	return &DescriptiveRule{
		BaseRule: NewBaseRule(
			"LC008",
			ColDescriptive,
			"Link text must describe its destination",
			[]string{"links", "accessibility"},
		),
	}
}

// Apply writes descriptive for non-anchor rows.
func (r *DescriptiveRule) Apply(ctx *RuleContext) {
	for _, rec := range ctx.Table.Records {
		if rec.Anchor {
			continue
		}
		text := strings.TrimSpace(rec.Text)
		rec.Descriptive = verdictOf(!uninformativePattern.MatchString(text))
	}
}

// LinkLengthRule checks that visible link text is long enough to be
// readable on its own.
type LinkLengthRule struct {
	BaseRule
}

// NewLinkLengthRule creates the link_length rule.
func NewLinkLengthRule() *LinkLengthRule {
	return &LinkLengthRule{
		BaseRule: NewBaseRule(
			"LC009",
			ColLinkLength,
			"Link text must be at least two characters",
			[]string{"links", "accessibility"},
		),
	}
}

// Apply writes link_length for non-anchor link rows.
func (r *LinkLengthRule) Apply(ctx *RuleContext) {
	for _, rec := range ctx.Table.Records {
		if !rec.Type.IsLink() || rec.Anchor {
			continue
		}
		text := strings.TrimSpace(rec.Text)
		rec.LinkLength = verdictOf(utf8.RuneCountInString(text) >= minLinkTextLength)
	}
}
