package linkcheck

import "regexp"

// rotPattern pairs a dead-host pattern with its suggested replacement.
type rotPattern struct {
	pattern     *regexp.Regexp
	suggestion  string
	description string
}

// knownRotPatterns are hosts known to be dead or deprecated, with the
// replacement a maintainer should migrate to.
var knownRotPatterns = []rotPattern{
	{
		pattern:     regexp.MustCompile(`(^|\.)software-carpentry\.org$`),
		suggestion:  "carpentries.org",
		description: "software-carpentry.org redirects to carpentries.org",
	},
	{
		pattern:     regexp.MustCompile(`(^|\.)rawgit\.com$`),
		suggestion:  "cdn.jsdelivr.net",
		description: "RawGit shut down in 2019",
	},
	{
		pattern:     regexp.MustCompile(`^goo\.gl$`),
		suggestion:  "the expanded URL",
		description: "goo.gl short links stopped resolving in 2025",
	},
	{
		pattern:     regexp.MustCompile(`(^|\.)bitbucket\.org$`),
		suggestion:  "the repository's current host",
		description: "Bitbucket removed Mercurial repositories in 2020",
	},
}

// RotMatch reports one row whose host matched a known-dead pattern.
type RotMatch struct {
	// Row is the table index of the matching record.
	Row int

	// Host is the record's server component.
	Host string

	// Suggestion is the replacement to migrate to.
	Suggestion string

	// Reason says why the host is considered dead.
	Reason string
}

// CheckLinkRot scans every record's host against the known-dead-host
// patterns. It is an advisory check: matches are reported alongside the
// validation table, not written into it.
func CheckLinkRot(table *LinkTable) (bool, []RotMatch) {
	if table == nil {
		return false, nil
	}

	var matches []RotMatch
	for i, rec := range table.Records {
		if rec.Server == "" {
			continue
		}
		for _, rot := range knownRotPatterns {
			if !rot.pattern.MatchString(rec.Server) {
				continue
			}
			matches = append(matches, RotMatch{
				Row:        i,
				Host:       rec.Server,
				Suggestion: rot.suggestion,
				Reason:     rot.description,
			})
			break
		}
	}

	return len(matches) > 0, matches
}
