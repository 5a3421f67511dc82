package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlinkcheck/pkg/config"
	"github.com/yaklabco/mdlinkcheck/pkg/linkcheck"
)

func TestFromTableNil(t *testing.T) {
	assert.Empty(t, FromTable("doc.md", nil))
}

func TestFromTable(t *testing.T) {
	rec := &linkcheck.LinkRecord{
		Orig:   "bitcoin:175tWpb8K1S7NmH4Zx6rewF9WQrcZv245W",
		Type:   "link",
		Text:   "here",
		Scheme: "bitcoin",
	}
	rec.KnownProtocol = linkcheck.VerdictFail
	rec.Descriptive = linkcheck.VerdictFail
	rec.LinkLength = linkcheck.VerdictPass

	table := linkcheck.NewLinkTable(rec)
	warnings := FromTable("episodes/01-intro.md", table)
	require.Len(t, warnings, 2)

	assert.Equal(t, "episodes/01-intro.md", warnings[0].Path)
	assert.Equal(t, 0, warnings[0].Row)
	assert.Equal(t, linkcheck.ColKnownProtocol, warnings[0].Rule)
	assert.Equal(t, "LC001", warnings[0].RuleID)
	assert.Equal(t, config.SeverityError, warnings[0].Severity)
	assert.Equal(t,
		"[unknown protocol: bitcoin]: bitcoin:175tWpb8K1S7NmH4Zx6rewF9WQrcZv245W",
		warnings[0].Message)

	assert.Equal(t, linkcheck.ColDescriptive, warnings[1].Rule)
	assert.Equal(t, config.SeverityWarning, warnings[1].Severity)
	assert.Contains(t, warnings[1].Message, "here")
}

func TestFromTableSkipsEmptyTemplates(t *testing.T) {
	rec := &linkcheck.LinkRecord{Orig: "https://example.com", Type: "link", Text: "docs"}
	rec.AllReachable = linkcheck.VerdictFail

	warnings := FromTable("doc.md", linkcheck.NewLinkTable(rec))
	assert.Empty(t, warnings, "reachability has no message template")
}

func TestRender(t *testing.T) {
	rec := &linkcheck.LinkRecord{Orig: "http://example.com", Text: "Example", Scheme: "http"}
	got := Render("[{scheme}] {text}: {orig}", rec)
	assert.Equal(t, "[http] Example: http://example.com", got)
}

func TestCountBySeverity(t *testing.T) {
	warnings := []Warning{
		{Severity: config.SeverityError},
		{Severity: config.SeverityError},
		{Severity: config.SeverityWarning},
	}

	counts := CountBySeverity(warnings)
	assert.Equal(t, 2, counts[config.SeverityError])
	assert.Equal(t, 1, counts[config.SeverityWarning])
}

func TestExplain(t *testing.T) {
	text, url := Explain(linkcheck.ColEnforceHTTPS)
	assert.NotEmpty(t, text)
	assert.NotEmpty(t, url)
}
