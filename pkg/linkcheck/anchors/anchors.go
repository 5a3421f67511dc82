// Package anchors assembles the set of valid in-document fragment
// targets for one document: slugified heading texts plus slugified
// inline anchor spans like "[text]{#id}".
package anchors

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/mdlinkcheck/pkg/slug"
)

// Set holds the valid fragment identifiers for one document.
type Set struct {
	ids   map[string]struct{}
	order []string
}

// Build creates the anchor set from the document's ordered heading
// texts and its AST. Headings feed the slug generator first, in
// document order, so duplicate-suffix numbering matches what a
// renderer would produce; inline anchor spans follow.
//
// root and source may be nil when the caller has no tree; the set then
// contains heading anchors only.
func Build(headings []string, root ast.Node, source []byte) *Set {
	set := &Set{ids: make(map[string]struct{})}
	slugger := slug.New()

	for _, heading := range headings {
		set.add(slugger.Slug(heading))
	}

	for _, span := range inlineSpans(root, source) {
		// Spans are slugified as if they were headings so that an
		// explicit "{#id}" attribute takes the usual extraction path.
		set.add(slugger.Slug("h1 " + span))
	}

	return set
}

// add records an id, keeping first-seen order for IDs.
func (s *Set) add(id string) {
	if id == "" {
		return
	}
	if _, ok := s.ids[id]; ok {
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

// Has returns true if id is a valid fragment target.
func (s *Set) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of distinct anchors.
func (s *Set) Len() int { return len(s.ids) }

// IDs returns the anchors in first-seen order.
func (s *Set) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// inlineSpans finds inline anchor spans in the tree. A span shows up in
// the AST as a text node that is exactly "]" immediately followed by a
// sibling text node beginning with "{#"; the sibling's content through
// the closing "}" is the span payload.
func inlineSpans(root ast.Node, source []byte) []string {
	if root == nil || source == nil {
		return nil
	}

	var spans []string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		txt, ok := n.(*ast.Text)
		if !ok || string(txt.Segment.Value(source)) != "]" {
			return ast.WalkContinue, nil
		}

		next, ok := n.NextSibling().(*ast.Text)
		if !ok {
			return ast.WalkContinue, nil
		}

		content := string(next.Segment.Value(source))
		if !strings.HasPrefix(content, "{#") {
			return ast.WalkContinue, nil
		}

		end := strings.IndexByte(content, '}')
		if end < 0 {
			return ast.WalkContinue, nil
		}

		spans = append(spans, content[:end+1])
		return ast.WalkContinue, nil
	})

	return spans
}
