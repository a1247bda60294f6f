package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload the background document",
	Long: `Rereads the background document from its source and rebuilds chunks.

Backdrop never watches the file for changes; run this after editing
the document.`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}

	if contextService.ForceRefresh(cmd.Context()) {
		stats := contextService.Stats()
		cmd.Printf("Document refreshed: %d chunks ready.\n", stats.ChunkCount)
		return nil
	}

	cmd.Println("Document refreshed: no usable document found.")
	return nil
}
