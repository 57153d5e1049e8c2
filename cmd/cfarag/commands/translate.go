// ABOUTME: CLI command to translate a French query to English retrieval terms
// ABOUTME: Pure dictionary translation, no network calls
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramadvisor/cfarag/internal/translate"
)

// NewTranslateCmd creates the translate command
func NewTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <query>",
		Short: "Translate a French query to English retrieval terms",
		Long: `Translate a French financial query to English retrieval terms.

Shows the translated query and the keyword set it expands to. English
input passes through unchanged, so the command is safe to apply to
every query.

Examples:
  cfarag translate "gestion de patrimoine pour ma retraite"
  cfarag translate --format json "allocation d'actifs"`,
		Args: cobra.ExactArgs(1),
		RunE: runTranslate,
	}

	return cmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	query := args[0]
	translated := translate.Translate(query)
	keywords := translate.ExpandKeywords(query)

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(map[string]any{
			"query":      query,
			"translated": translated,
			"keywords":   keywords,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Query:      %s\n", query)
	fmt.Fprintf(cmd.OutOrStdout(), "Translated: %s\n", translated)
	fmt.Fprintf(cmd.OutOrStdout(), "Keywords:   %s\n", strings.Join(keywords, ", "))
	return nil
}
