// Package report turns the failed cells of a validated link table into
// warnings for human or machine consumption, using the fixed message
// templates keyed by rule name.
package report

import (
	"strings"

	"github.com/yaklabco/mdlinkcheck/pkg/config"
	"github.com/yaklabco/mdlinkcheck/pkg/linkcheck"
)

// Warning is one failed check on one table row.
type Warning struct {
	// Path is the document the row came from.
	Path string

	// Row is the record's index within the table (document order).
	Row int

	// RuleID identifies the failing rule (e.g., "LC002").
	RuleID string

	// Rule is the rule's column name (e.g., "enforce_https").
	Rule string

	// Severity classifies the warning for exit-code purposes.
	Severity config.Severity

	// Message is the rendered template for this row.
	Message string
}

// severities maps each rule column to the severity of its failures.
// Broken targets and unsafe protocols are errors; readability and
// accessibility issues are warnings.
var severities = map[string]config.Severity{
	linkcheck.ColKnownProtocol:      config.SeverityError,
	linkcheck.ColEnforceHTTPS:       config.SeverityError,
	linkcheck.ColInternalAnchor:     config.SeverityError,
	linkcheck.ColInternalFile:       config.SeverityError,
	linkcheck.ColInternalWellFormed: config.SeverityError,
	linkcheck.ColAllReachable:       config.SeverityWarning,
	linkcheck.ColImgAltText:         config.SeverityWarning,
	linkcheck.ColDescriptive:        config.SeverityWarning,
	linkcheck.ColLinkLength:         config.SeverityWarning,
}

// FromTable collects a warning for every failed cell of a validated
// table, in row order then column order. A nil table (nothing was
// validated) yields no warnings. Rules with an empty template emit
// nothing even when a cell fails.
func FromTable(path string, table *linkcheck.LinkTable) []Warning {
	if table == nil {
		return nil
	}

	var warnings []Warning
	for i, rec := range table.Records {
		for _, col := range linkcheck.Columns() {
			if !rec.Result(col).Failed() {
				continue
			}

			tmpl := linkcheck.Templates[col]
			if tmpl == "" {
				continue
			}

			ruleID := ""
			if rule, ok := linkcheck.DefaultRegistry.Get(col); ok {
				ruleID = rule.ID()
			}

			warnings = append(warnings, Warning{
				Path:     path,
				Row:      i,
				RuleID:   ruleID,
				Rule:     col,
				Severity: severities[col],
				Message:  Render(tmpl, rec),
			})
		}
	}
	return warnings
}

// Render substitutes the {scheme}, {text}, and {orig} placeholders of a
// message template with the record's values.
func Render(template string, rec *linkcheck.LinkRecord) string {
	return strings.NewReplacer(
		"{scheme}", rec.Scheme,
		"{text}", rec.Text,
		"{orig}", rec.Orig,
	).Replace(template)
}

// Explain returns the long-form explanation and reference URL for a
// rule column.
func Explain(column string) (string, string) {
	exp := linkcheck.Explanations[column]
	return exp.Text, exp.URL
}

// CountBySeverity tallies warnings per severity level.
func CountBySeverity(warnings []Warning) map[config.Severity]int {
	counts := make(map[config.Severity]int)
	for _, w := range warnings {
		counts[w.Severity]++
	}
	return counts
}

// Stats aggregates the results of a check run across files.
type Stats struct {
	FilesProcessed     int
	FilesWithIssues    int
	WarningsTotal      int
	WarningsBySeverity map[config.Severity]int
	RotMatches         int
}

// NewStats returns zeroed stats ready for accumulation.
func NewStats() *Stats {
	return &Stats{WarningsBySeverity: make(map[config.Severity]int)}
}

// AddFile folds one file's warnings into the stats.
func (s *Stats) AddFile(warnings []Warning) {
	s.FilesProcessed++
	if len(warnings) == 0 {
		return
	}
	s.FilesWithIssues++
	s.WarningsTotal += len(warnings)
	for sev, n := range CountBySeverity(warnings) {
		s.WarningsBySeverity[sev] += n
	}
}
