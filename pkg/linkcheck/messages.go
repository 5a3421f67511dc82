package linkcheck

// Message templates for failed rows, keyed by verdict column name.
// Placeholders {scheme}, {text}, and {orig} are substituted by the
// reporting layer. The all_reachable template is deliberately empty:
// no message is emitted while the check is unimplemented. The keys and
// placeholder names are part of the reporting contract.
var Templates = map[string]string{
	ColKnownProtocol:      "[unknown protocol: {scheme}]: {orig}",
	ColEnforceHTTPS:       "[needs HTTPS]: {orig}",
	ColInternalAnchor:     "[missing anchor]: {orig}",
	ColInternalFile:       "[missing file (or external link missing protocol)]: {orig}",
	ColInternalWellFormed: "[incorrect formatting: [{text}]({orig})]",
	ColAllReachable:       "",
	ColImgAltText:         "[image missing alt-text]: {orig}",
	ColDescriptive:        "[uninformative link text: \"{text}\"]: {orig}",
	ColLinkLength:         "[link text too short: \"{text}\"]: {orig}",
}

// Explanation is the long-form rationale for a rule, with a reference
// URL a reader can follow.
type Explanation struct {
	Text string
	URL  string
}

// Explanations map verdict column names to their rationale.
var Explanations = map[string]Explanation{
	ColKnownProtocol: {
		Text: "The link uses a protocol outside the allow-list. Unusual " +
			"schemes are frequently typos and can be abused to run code " +
			"in the reader's browser.",
		URL: "https://developer.mozilla.org/en-US/docs/Web/URI/Schemes",
	},
	ColEnforceHTTPS: {
		Text: "The link uses plain HTTP. Serving content over HTTPS " +
			"protects readers from tampering and is expected by modern " +
			"browsers.",
		URL: "https://developer.mozilla.org/en-US/docs/Glossary/HTTPS",
	},
	ColInternalAnchor: {
		Text: "The link points to a section anchor that does not exist " +
			"in this document. Anchors are generated from headings, so " +
			"check the heading text or its {#custom-id} attribute.",
		URL: "https://pandoc.org/MANUAL.html#extension-auto_identifiers",
	},
	ColInternalFile: {
		Text: "The link points to a file that could not be found next " +
			"to this document or in any known content folder. Check the " +
			"path, the file extension, and letter case.",
		URL: "https://carpentries.github.io/sandpaper/articles/include-child-documents.html",
	},
	ColInternalWellFormed: {
		Text: "The link target matches a reference definition key, " +
			"which means reference-style syntax was mixed with an " +
			"inline path. Write [text][key] or [text](path), not a " +
			"blend of both.",
		URL: "https://spec.commonmark.org/0.31.2/#reference-link",
	},
	ColAllReachable: {
		Text: "Reachability checking of external links is not " +
			"implemented.",
		URL:  "",
	},
	ColImgAltText: {
		Text: "The image has no alt attribute. Screen readers need alt " +
			"text; purely decorative images should carry an explicitly " +
			"empty one.",
		URL: "https://www.w3.org/WAI/tutorials/images/",
	},
	ColDescriptive: {
		Text: "The link text does not describe its destination. Text " +
			"like \"click here\" forces readers, especially screen " +
			"reader users scanning a link list, to hunt for context.",
		URL: "https://webaim.org/techniques/hypertext/link_text",
	},
	ColLinkLength: {
		Text: "The link text is too short to be read or clicked " +
			"comfortably. Use a descriptive phrase instead of a single " +
			"character.",
		URL: "https://webaim.org/techniques/hypertext/link_text",
	},
}
