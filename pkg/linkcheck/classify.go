package linkcheck

// RowClass is the derived source classification for one row. It is
// computed once from URL-component emptiness and read by every rule;
// no rule writes to it.
type RowClass struct {
	// External is true when the row has any off-document component
	// (scheme, host, port, or user info).
	External bool

	// Internal is true when the row has none of those.
	Internal bool

	// InPage is true for internal rows with no path and a fragment:
	// an anchor within the same document.
	InPage bool

	// CrossPage is true for internal rows with a non-empty path:
	// another file relative to this document.
	CrossPage bool

	// RefKey is true when the row's path is exactly some row's
	// reference-definition key. The "path" is then not a filesystem
	// path at all, which signals malformed reference syntax.
	RefKey bool
}

// Classify derives the source classification for every row. It never
// fails: absent URL components are treated as empty.
func Classify(table *LinkTable) []RowClass {
	if table == nil {
		return nil
	}

	keys := make(map[string]struct{})
	for _, rec := range table.Records {
		if rec.Rel != "" {
			keys[rec.Rel] = struct{}{}
		}
	}

	classes := make([]RowClass, len(table.Records))
	for i, rec := range table.Records {
		external := rec.Scheme != "" || rec.Server != "" || rec.Port != "" || rec.User != ""
		internal := !external

		classes[i] = RowClass{
			External:  external,
			Internal:  internal,
			InPage:    internal && rec.Path == "" && rec.Fragment != "",
			CrossPage: internal && rec.Path != "",
		}

		if rec.Path != "" {
			_, classes[i].RefKey = keys[rec.Path]
		}
	}

	return classes
}
