// Package slug converts heading text and inline anchor markers into the
// canonical identifiers a Markdown renderer would generate for them.
// Matching the renderer's convention exactly is the whole point: the ids
// produced here are compared against link fragments, so any drift makes
// valid anchors look broken.
package slug

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// attrBlockPattern matches a trailing attribute block: "Heading {...}".
	attrBlockPattern = regexp.MustCompile(`\{([^{}]*)\}\s*$`)

	// explicitIDPattern finds "#custom-id" inside an attribute block.
	explicitIDPattern = regexp.MustCompile(`#([^\s#}]+)`)

	// emojiPattern matches emoji shortcodes like ":smile:" or ":tada_1:".
	emojiPattern = regexp.MustCompile(`:[a-z0-9_]+:`)

	// separatorPattern matches runs of punctuation and whitespace that
	// collapse into a single hyphen.
	separatorPattern = regexp.MustCompile(`[[:punct:][:space:]]+`)
)

// Slugger generates slugs for one document. It tracks how many times each
// generated slug has been seen so repeats get "-1", "-2", ... suffixes,
// mirroring renderer auto-id numbering. A Slugger must not be shared
// between documents.
type Slugger struct {
	seen map[string]int
}

// New returns a Slugger with an empty occurrence table.
func New() *Slugger {
	return &Slugger{seen: make(map[string]int)}
}

// Slug converts text to its canonical identifier.
//
// An explicit "{#id}" attribute wins over the generated form and is
// returned verbatim, even when it collides with an earlier slug. Explicit
// ids still bump the occurrence count so later generated duplicates are
// suffixed correctly.
func (s *Slugger) Slug(text string) string {
	id, explicit := generate(text)

	count := s.seen[id]
	s.seen[id] = count + 1

	if explicit || count == 0 {
		return id
	}
	return id + "-" + strconv.Itoa(count)
}

// generate produces the base slug and reports whether it came from an
// explicit "{#id}" attribute rather than the heading text.
func generate(text string) (string, bool) {
	if m := attrBlockPattern.FindStringSubmatch(text); m != nil {
		if id := explicitIDPattern.FindStringSubmatch(m[1]); id != nil {
			return id[1], true
		}
		// A trailing block without an id contributes nothing.
		text = attrBlockPattern.ReplaceAllString(text, "")
	}

	text = emojiPattern.ReplaceAllString(text, "")
	text = strings.ToLower(text)
	text = separatorPattern.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")

	return text, false
}
