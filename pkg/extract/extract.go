// Package extract builds a link table from Markdown source. It parses
// the document with goldmark, collects every link and image node in
// document order, decomposes destinations into URL components, and
// gathers the heading texts the anchor set is built from.
//
// The validation pipeline itself is parser-agnostic and takes the table
// this package produces; nothing in pkg/linkcheck imports it.
package extract

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdlinkcheck/pkg/linkcheck"
)

// Result is the parsed document handed to the validation pipeline.
type Result struct {
	// Table holds one record per link/image node, in document order.
	Table *linkcheck.LinkTable

	// Headings are the document's heading texts, in document order.
	Headings []string

	// Root is the goldmark AST.
	Root ast.Node

	// Source is the raw Markdown backing Root.
	Source []byte
}

// Document packages the parse result for linkcheck.Validate, with dir
// as the document's containing directory.
func (r *Result) Document(dir string) linkcheck.Document {
	return linkcheck.Document{
		Dir:      dir,
		Headings: r.Headings,
		Root:     r.Root,
		Source:   r.Source,
	}
}

// FromSource parses Markdown source and extracts its link table.
func FromSource(source []byte) *Result {
	md := goldmark.New()
	pctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	ex := &extractor{
		source: source,
		refs:   referencesByDestination(pctx),
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			ex.headings = append(ex.headings, textContent(node, source))
		case *ast.Link:
			ex.addLink(string(node.Destination), textContent(node, source))
		case *ast.AutoLink:
			dest := string(node.URL(source))
			ex.addLink(dest, dest)
		case *ast.Image:
			ex.addImage(string(node.Destination), textContent(node, source))
		case *ast.HTMLBlock:
			ex.addHTMLImages(htmlContent(node, source))
		case *ast.RawHTML:
			ex.addHTMLImages(rawHTMLContent(node, source))
		}
		return ast.WalkContinue, nil
	})

	return &Result{
		Table:    linkcheck.NewLinkTable(ex.records...),
		Headings: ex.headings,
		Root:     root,
		Source:   source,
	}
}

// extractor accumulates records during the AST walk.
type extractor struct {
	source   []byte
	refs     map[string][]string
	records  []*linkcheck.LinkRecord
	headings []string
}

// addLink appends a record for a link node.
func (e *extractor) addLink(dest, visible string) {
	rec := e.newRecord(dest, visible)
	rec.Type = linkcheck.TypeLink
	if rel, ok := e.referenceKey(dest, visible); ok {
		rec.Type = linkcheck.TypeRefLink
		rec.Rel = rel
	}
	e.records = append(e.records, rec)
}

// addImage appends a record for a Markdown image node. Markdown image
// syntax always carries an alt segment, so Alt is non-nil even when the
// alt text is empty (the decorative-image marker).
func (e *extractor) addImage(dest, alt string) {
	rec := e.newRecord(dest, alt)
	rec.Type = linkcheck.TypeImage
	rec.Alt = &alt
	if rel, ok := e.referenceKey(dest, alt); ok {
		rec.Type = linkcheck.TypeRefImage
		rec.Rel = rel
	}
	e.records = append(e.records, rec)
}

var (
	imgTagPattern  = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	srcAttrPattern = regexp.MustCompile(`(?i)\bsrc\s*=\s*["']([^"']*)["']`)
	altAttrPattern = regexp.MustCompile(`(?i)\balt\s*=\s*["']([^"']*)["']`)
)

// addHTMLImages scans raw HTML for <img> tags. Unlike Markdown images,
// an HTML image can genuinely lack an alt attribute, which is the case
// the img_alt_text rule exists to catch.
func (e *extractor) addHTMLImages(content []byte) {
	for _, tag := range imgTagPattern.FindAll(content, -1) {
		src := srcAttrPattern.FindSubmatch(tag)
		if src == nil {
			continue
		}

		rec := e.newRecord(string(src[1]), "")
		rec.Type = linkcheck.TypeImage
		if alt := altAttrPattern.FindSubmatch(tag); alt != nil {
			altText := string(alt[1])
			rec.Alt = &altText
			rec.Text = altText
		}
		e.records = append(e.records, rec)
	}
}

// newRecord builds a record with the destination decomposed into URL
// components.
func (e *extractor) newRecord(dest, visible string) *linkcheck.LinkRecord {
	rec := &linkcheck.LinkRecord{
		Orig:   dest,
		Text:   visible,
		Anchor: strings.HasPrefix(dest, "#"),
	}

	u, err := url.Parse(dest)
	if err != nil {
		// An unparseable destination is still a row; treat the whole
		// string as a path so the file rules get a chance to flag it.
		rec.Path = dest
		return rec
	}

	rec.Scheme = u.Scheme
	rec.Server = u.Hostname()
	rec.Port = u.Port()
	if u.User != nil {
		rec.User = u.User.Username()
	}
	rec.Path = u.Path
	if u.Opaque != "" {
		rec.Path = u.Opaque
	}
	rec.Query = u.RawQuery
	rec.Fragment = u.Fragment

	return rec
}

// referenceKey reports whether a node with the given destination and
// visible text came from a reference definition, and returns the
// normalized key. Goldmark resolves reference links into plain link
// nodes, so the style is reconstructed from the definitions in the
// parse context plus the source text.
func (e *extractor) referenceKey(dest, visible string) (string, bool) {
	labels, ok := e.refs[dest]
	if !ok {
		return "", false
	}

	// Shortcut or collapsed style: the visible text is the label.
	normalized := normalizeLabel(visible)
	for _, label := range labels {
		if label == normalized {
			return label, true
		}
	}

	// Full style: "[text][label]" appears literally in the source.
	if bytes.Contains(e.source, []byte("["+visible+"][")) {
		return labels[0], true
	}

	return "", false
}

// referencesByDestination indexes the parse context's reference
// definitions by destination.
func referencesByDestination(pctx parser.Context) map[string][]string {
	refs := make(map[string][]string)
	for _, ref := range pctx.References() {
		dest := string(ref.Destination())
		refs[dest] = append(refs[dest], normalizeLabel(string(ref.Label())))
	}
	return refs
}

// normalizeLabel lowercases and whitespace-collapses a reference label,
// per CommonMark matching rules.
func normalizeLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), " ")
}

// textContent concatenates the text nodes under n.
func textContent(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if txt, ok := child.(*ast.Text); ok {
			buf.Write(txt.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// htmlContent returns the source text of an HTML block.
func htmlContent(n *ast.HTMLBlock, source []byte) []byte {
	var buf bytes.Buffer
	for i := 0; i < n.Lines().Len(); i++ {
		seg := n.Lines().At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// rawHTMLContent returns the source text of an inline raw HTML node.
func rawHTMLContent(n *ast.RawHTML, source []byte) []byte {
	var buf bytes.Buffer
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}
