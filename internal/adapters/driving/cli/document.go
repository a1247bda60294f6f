package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage the background document",
	Long:  `Point Backdrop at a background document, inspect it, or replace its content.`,
}

var documentSetCmd = &cobra.Command{
	Use:   "set [path]",
	Short: "Set the background document",
	Long: `Sets the background document path, or with --text replaces the
document content at the configured source directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocumentSet,
}

var documentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the background document",
	RunE:  runDocumentShow,
}

var documentPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the document source location",
	RunE:  runDocumentPath,
}

var documentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the background document from its source",
	RunE:  runDocumentClear,
}

// documentText is the inline content flag for the set command.
var documentText string

func init() {
	documentSetCmd.Flags().StringVar(&documentText, "text", "", "document content to store instead of a path")

	documentCmd.AddCommand(documentSetCmd)
	documentCmd.AddCommand(documentShowCmd)
	documentCmd.AddCommand(documentPathCmd)
	documentCmd.AddCommand(documentClearCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentSet(cmd *cobra.Command, args []string) error {
	if documentText != "" {
		return putDocumentText(cmd, documentText)
	}

	if len(args) == 0 {
		return errors.New("provide a document path or --text content")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("document not readable: %w", err)
	}

	if err := settingsService.SetDocumentPath(path); err != nil {
		return fmt.Errorf("saving document path: %w", err)
	}

	cmd.Printf("Background document set to %s\n", path)

	// The running engine was wired from the previous settings; rebuild
	// it so the refresh reads the path just saved.
	service, err := buildContextService()
	if err != nil {
		return fmt.Errorf("rewiring document source: %w", err)
	}
	contextService = service

	if contextService.Refresh(cmd.Context()) {
		stats := contextService.Stats()
		cmd.Printf("Loaded %d chunks.\n", stats.ChunkCount)
	} else {
		cmd.Println("Warning: document could not be loaded; check the file content.")
	}
	return nil
}

// putDocumentText writes inline content through the source's writer.
func putDocumentText(cmd *cobra.Command, text string) error {
	writer, ok := documentSource.(driven.DocumentWriter)
	if !ok {
		return errors.New("the configured document source is read-only")
	}

	if err := writer.Put(cmd.Context(), text); err != nil {
		return fmt.Errorf("storing document: %w", err)
	}

	cmd.Printf("Stored %d bytes at %s\n", len(text), documentSource.Describe())

	if contextService != nil {
		contextService.Refresh(cmd.Context())
	}
	return nil
}

func runDocumentShow(cmd *cobra.Command, _ []string) error {
	if documentSource == nil {
		return errors.New("document source not configured")
	}

	if !documentSource.Exists(cmd.Context()) {
		return errors.New("no background document found")
	}

	text, err := documentSource.ReadText(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	cmd.Println(strings.TrimRight(text, "\n"))
	return nil
}

func runDocumentPath(cmd *cobra.Command, _ []string) error {
	if documentSource == nil {
		return errors.New("document source not configured")
	}

	cmd.Println(documentSource.Describe())
	return nil
}

func runDocumentClear(cmd *cobra.Command, _ []string) error {
	writer, ok := documentSource.(driven.DocumentWriter)
	if !ok {
		return errors.New("the configured document source is read-only")
	}

	if err := writer.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing document: %w", err)
	}

	if contextService != nil {
		contextService.Cleanup()
	}

	cmd.Println("Background document removed.")
	return nil
}
