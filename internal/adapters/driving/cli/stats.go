package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show retrieval state",
	Long:  `Prints availability, chunk count, and document metadata without touching the source.`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output stats as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}

	// Make sure uninitialized stats still reflect the document on disk.
	contextService.Initialize(cmd.Context())
	stats := contextService.Stats()

	if statsJSON {
		out := struct {
			Available     bool   `json:"available"`
			ChunkCount    int    `json:"chunk_count"`
			SizeBytes     int64  `json:"size_bytes"`
			ModifiedAt    string `json:"modified_at,omitempty"`
			LastRefreshed string `json:"last_refreshed,omitempty"`
			Source        string `json:"source,omitempty"`
		}{
			Available:     stats.Available,
			ChunkCount:    stats.ChunkCount,
			SizeBytes:     stats.SizeBytes,
			ModifiedAt:    formatTime(stats.ModifiedAt),
			LastRefreshed: formatTime(stats.LastRefreshed),
			Source:        stats.Source,
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Background Context")
	cmd.Println("==================")
	if stats.Available {
		cmd.Println("  Status: available")
	} else {
		cmd.Println("  Status: unavailable")
	}
	cmd.Printf("  Chunks: %d\n", stats.ChunkCount)
	cmd.Printf("  Size: %d bytes\n", stats.SizeBytes)
	if !stats.ModifiedAt.IsZero() {
		cmd.Printf("  Modified: %s\n", formatTime(stats.ModifiedAt))
	}
	if !stats.LastRefreshed.IsZero() {
		cmd.Printf("  Refreshed: %s\n", formatTime(stats.LastRefreshed))
	}
	if stats.Source != "" {
		cmd.Printf("  Source: %s\n", stats.Source)
	}

	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
