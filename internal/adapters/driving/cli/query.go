package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var queryJSON bool

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Retrieve background context for a question",
	Long: `Scores the background document's chunks against the question and
prints the formatted context block an assistant would receive.

Prints nothing and exits non-zero when no document is available.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}

	block, ok := contextService.QueryContext(cmd.Context(), args[0])

	if queryJSON {
		out := struct {
			Context   string `json:"context"`
			Available bool   `json:"available"`
		}{Context: block, Available: ok}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if !ok {
		return errors.New("no background context available for this query")
	}

	cmd.Println(block)
	return nil
}
