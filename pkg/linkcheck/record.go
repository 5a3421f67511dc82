// Package linkcheck validates hyperlinks and images extracted from a
// Markdown document. It classifies each link by source, checks protocol
// safety, verifies that in-document and cross-document targets resolve,
// and applies accessibility rules to link text.
//
// The unit of work is the LinkTable: one LinkRecord per link or image
// node, in document order. Validate augments the table with one
// tri-state verdict column per rule and returns it to the caller, who
// owns reporting.
package linkcheck

// Verdict is a tri-state rule result. The zero value is VerdictUnset,
// which means the rule did not apply to the row, as opposed to the row
// failing the check.
type Verdict int8

const (
	// VerdictUnset marks a row the rule does not apply to.
	VerdictUnset Verdict = iota

	// VerdictFail marks a row that failed the check.
	VerdictFail

	// VerdictPass marks a row that passed the check.
	VerdictPass
)

// IsSet returns true if the rule applied to the row.
func (v Verdict) IsSet() bool { return v != VerdictUnset }

// Passed returns true if the row passed the check.
func (v Verdict) Passed() bool { return v == VerdictPass }

// Failed returns true if the row failed the check.
func (v Verdict) Failed() bool { return v == VerdictFail }

// String returns "pass", "fail", or "unset".
func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictFail:
		return "fail"
	default:
		return "unset"
	}
}

// verdictOf converts a boolean check result to a Verdict.
func verdictOf(ok bool) Verdict {
	if ok {
		return VerdictPass
	}
	return VerdictFail
}

// NodeType identifies the kind of node a record came from.
type NodeType string

const (
	// TypeLink is an inline link: [text](url).
	TypeLink NodeType = "link"

	// TypeImage is an inline image: ![alt](url).
	TypeImage NodeType = "image"

	// TypeRefLink is a reference-style link: [text][key].
	TypeRefLink NodeType = "ref_link"

	// TypeRefImage is a reference-style image: ![alt][key].
	TypeRefImage NodeType = "ref_image"
)

// IsLink returns true for link nodes, inline or reference-style.
func (t NodeType) IsLink() bool { return t == TypeLink || t == TypeRefLink }

// IsImage returns true for image nodes, inline or reference-style.
func (t NodeType) IsImage() bool { return t == TypeImage || t == TypeRefImage }

// LinkRecord is one row of the link table: a single link or image node
// together with its decomposed URL components and the verdict columns
// the rules fill in.
//
// URL components are empty strings where the component is not present.
// Alt is nil when the node has no alt attribute at all; an empty,
// non-nil Alt is a deliberate decorative-image marker and is distinct.
type LinkRecord struct {
	// Orig is the raw reference string as written in the source.
	Orig string

	// Type is the node kind.
	Type NodeType

	// Text is the visible link text (alt text content for images).
	Text string

	// Alt is the image alt attribute. nil means absent.
	Alt *string

	// Anchor is true when the link targets an anchor in the same
	// document (the original reference starts with "#").
	Anchor bool

	// Decomposed URL components.
	Scheme   string
	User     string
	Server   string
	Port     string
	Path     string
	Query    string
	Fragment string

	// Rel is the normalized reference-definition key for
	// reference-style rows, empty otherwise.
	Rel string

	// Verdict columns, one per rule. All columns exist on every row;
	// a rule writes only the rows its applicability predicate selects
	// and never touches another rule's column.
	KnownProtocol      Verdict
	EnforceHTTPS       Verdict
	InternalAnchor     Verdict
	InternalFile       Verdict
	InternalWellFormed Verdict
	AllReachable       Verdict
	ImgAltText         Verdict
	Descriptive        Verdict
	LinkLength         Verdict
}

// Column names of the verdict columns. These are part of the output
// contract with reporting collaborators and must not change.
const (
	ColKnownProtocol      = "known_protocol"
	ColEnforceHTTPS       = "enforce_https"
	ColInternalAnchor     = "internal_anchor"
	ColInternalFile       = "internal_file"
	ColInternalWellFormed = "internal_well_formed"
	ColAllReachable       = "all_reachable"
	ColImgAltText         = "img_alt_text"
	ColDescriptive        = "descriptive"
	ColLinkLength         = "link_length"
)

// Columns returns the verdict column names in pipeline order.
func Columns() []string {
	return []string{
		ColKnownProtocol,
		ColEnforceHTTPS,
		ColInternalAnchor,
		ColInternalFile,
		ColInternalWellFormed,
		ColAllReachable,
		ColImgAltText,
		ColDescriptive,
		ColLinkLength,
	}
}

// Result returns the verdict for a named column.
func (r *LinkRecord) Result(column string) Verdict {
	switch column {
	case ColKnownProtocol:
		return r.KnownProtocol
	case ColEnforceHTTPS:
		return r.EnforceHTTPS
	case ColInternalAnchor:
		return r.InternalAnchor
	case ColInternalFile:
		return r.InternalFile
	case ColInternalWellFormed:
		return r.InternalWellFormed
	case ColAllReachable:
		return r.AllReachable
	case ColImgAltText:
		return r.ImgAltText
	case ColDescriptive:
		return r.Descriptive
	case ColLinkLength:
		return r.LinkLength
	default:
		return VerdictUnset
	}
}

// LinkTable is the ordered collection of link records for one document.
type LinkTable struct {
	Records []*LinkRecord
}

// NewLinkTable creates a table from the given records.
func NewLinkTable(records ...*LinkRecord) *LinkTable {
	return &LinkTable{Records: records}
}

// Len returns the number of rows.
func (t *LinkTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Empty returns true when there is nothing to validate.
func (t *LinkTable) Empty() bool { return t.Len() == 0 }
