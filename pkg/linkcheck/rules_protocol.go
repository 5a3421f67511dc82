package linkcheck

import "slices"

// allowedProtocols is the protocol allow-list, in its canonical order.
// The empty string admits scheme-less (relative and in-page) links.
var allowedProtocols = []string{
	"",
	"http",
	"https",
	"ftp",
	"ftps",
	"mailto",
	"news",
	"irc",
	"irc6",
	"ircs",
	"gopher",
	"nntp",
	"feed",
	"telnet",
	"mms",
	"rtsp",
	"sms",
	"svn",
	"tel",
	"fax",
	"xmpp",
	"webcal",
	"urn",
}

// protocolAllowed returns true if scheme is on the allow-list.
func protocolAllowed(scheme string) bool {
	return slices.Contains(allowedProtocols, scheme)
}

// KnownProtocolRule checks every row's scheme against the allow-list.
type KnownProtocolRule struct {
	BaseRule
}

// NewKnownProtocolRule creates the known_protocol rule.
func NewKnownProtocolRule() *KnownProtocolRule {
	return &KnownProtocolRule{
		BaseRule: NewBaseRule(
			"LC001",
			ColKnownProtocol,
			"Link protocol must be on the allow-list",
			[]string{"links", "security"},
		),
	}
}

// Apply writes known_protocol for all rows.
func (r *KnownProtocolRule) Apply(ctx *RuleContext) {
	for _, rec := range ctx.Table.Records {
		rec.KnownProtocol = verdictOf(protocolAllowed(rec.Scheme))
	}
}

// EnforceHTTPSRule fails rows that use plain HTTP or an unknown scheme.
type EnforceHTTPSRule struct {
	BaseRule
}

// NewEnforceHTTPSRule creates the enforce_https rule.
func NewEnforceHTTPSRule() *EnforceHTTPSRule {
	return &EnforceHTTPSRule{
		BaseRule: NewBaseRule(
			"LC002",
			ColEnforceHTTPS,
			"Links must use HTTPS rather than HTTP",
			[]string{"links", "security"},
		),
	}
}

// Apply writes enforce_https for all rows. The check re-derives
// allow-list membership instead of reading the known_protocol column so
// the rules stay column-independent; an unknown scheme fails here too.
func (r *EnforceHTTPSRule) Apply(ctx *RuleContext) {
	for _, rec := range ctx.Table.Records {
		rec.EnforceHTTPS = verdictOf(protocolAllowed(rec.Scheme) && rec.Scheme != "http")
	}
}
