package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlinkcheck/internal/logging"
	"github.com/yaklabco/mdlinkcheck/pkg/linkcheck"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

func newRulesCommand() *cobra.Command {
	var format string
	var explain bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available link checks",
		Long: `List all available link and image checks with their IDs and
descriptions. With --explain, print the long-form rationale and a
reference URL for each check.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rules := linkcheck.DefaultRegistry.Rules()

			if format == formatJSON {
				return outputRulesJSON(rules)
			}

			logger := logging.NewInteractive()

			logger.Info("available checks")

			for _, rule := range rules {
				if explain {
					exp := linkcheck.Explanations[rule.Name()]
					logger.Info(rule.ID(),
						logging.FieldName, rule.Name(),
						logging.FieldDescription, exp.Text,
						logging.FieldURL, exp.URL,
					)
					continue
				}

				logger.Info(rule.ID(),
					logging.FieldName, rule.Name(),
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text, json")
	cmd.Flags().BoolVar(&explain, "explain", false,
		"show long-form explanations with reference URLs")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []linkcheck.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			URL:         linkcheck.Explanations[rule.Name()].URL,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
