// Package cli provides the cobra-based command line interface for Backdrop.
// It is a driving adapter: commands call into core services through the
// driving ports and render the results.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/backdrop-labs/backdrop-cli/internal/adapters/driven/config/file"
	"github.com/backdrop-labs/backdrop-cli/internal/adapters/driven/storage/filesystem"
	"github.com/backdrop-labs/backdrop-cli/internal/adapters/driven/storage/memory"
	"github.com/backdrop-labs/backdrop-cli/internal/adapters/driven/storage/sqlite"
	"github.com/backdrop-labs/backdrop-cli/internal/adapters/driven/validation"
	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driving"
	"github.com/backdrop-labs/backdrop-cli/internal/core/services"
	"github.com/backdrop-labs/backdrop-cli/internal/logger"
	"github.com/backdrop-labs/backdrop-cli/internal/postprocessors"
)

// version is set at build time via ldflags.
var version = "dev"

// Environment variables honoured before config resolution.
const (
	envConfigDir = "BACKDROP_CONFIG_DIR"
	envDocument  = "BACKDROP_DOCUMENT"
)

// Flags shared across commands.
var (
	verbose          bool
	documentOverride string
)

// Services wired by initServices. Tests inject mocks here directly.
var (
	configStore     driven.ConfigStore
	contextService  driving.ContextService
	settingsService driving.SettingsService
	documentSource  driven.DocumentSource
)

var rootCmd = &cobra.Command{
	Use:   "backdrop",
	Short: "Background context for AI conversations",
	Long: `Backdrop turns a single background document into relevant excerpts
for conversational AI prompts.

Point it at a markdown or plain text file describing yourself or your
project, then query it for the context block to inject ahead of a
question. Relevance is lexical keyword matching; nothing leaves your
machine.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&documentOverride, "document", "", "background document path (overrides config)")
}

// initServices builds the service graph before any command runs.
// Already-set services are kept, which keeps the wiring idempotent and
// lets tests install mocks ahead of execution.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if contextService != nil && settingsService != nil {
		return nil
	}

	// Best-effort .env load; a missing file is the normal case.
	_ = godotenv.Load() //nolint:errcheck

	if configStore == nil {
		store, err := file.NewConfigStore(os.Getenv(envConfigDir))
		if err != nil {
			return fmt.Errorf("opening config store: %w", err)
		}
		configStore = store
	}

	if settingsService == nil {
		settingsService = services.NewSettingsService(configStore, validation.New())
	}

	if contextService == nil {
		service, err := buildContextService()
		if err != nil {
			return err
		}
		contextService = service
	}

	return nil
}

// buildContextService assembles the retrieval engine from settings.
func buildContextService() (driving.ContextService, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	// An invalid stored retrieval config falls back to defaults so the
	// CLI stays usable and `config set` can repair it.
	retrieval, err := settingsService.Retrieval()
	if err != nil {
		logger.Warn("Ignoring invalid retrieval configuration: %v", err)
		retrieval = domain.DefaultRetrievalConfig()
	}

	source, err := buildDocumentSource(settings)
	if err != nil {
		return nil, err
	}
	documentSource = source

	pipeline, err := postprocessors.BuildPipeline(settingsService.GetPipelineConfig())
	if err != nil {
		return nil, err
	}

	builder := services.NewPromptBuilder()
	if promptStore, err := file.NewPromptStore(promptDir()); err == nil {
		builder.SetPromptStore(promptStore)
	}

	return services.NewContextService(
		services.NewDocumentStore(source),
		pipeline,
		services.NewRelevanceScorer(retrieval),
		builder,
		retrieval,
	), nil
}

// buildDocumentSource selects the backend configured in settings.
// The --document flag and BACKDROP_DOCUMENT force the filesystem
// backend regardless of configuration.
func buildDocumentSource(settings *domain.AppSettings) (driven.DocumentSource, error) {
	if documentOverride != "" {
		return filesystem.NewDocumentSource(documentOverride), nil
	}
	if path := os.Getenv(envDocument); path != "" {
		return filesystem.NewDocumentSource(path), nil
	}

	switch settings.Document.Backend {
	case domain.SourceFilesystem:
		return filesystem.NewDocumentSource(settings.Document.Path), nil
	case domain.SourceMemory:
		return memory.NewDocumentSource(), nil
	case domain.SourceSQLite:
		return sqlite.NewStore(settings.Document.Path)
	default:
		return nil, fmt.Errorf("%w: unknown source backend %q",
			domain.ErrInvalidConfig, settings.Document.Backend)
	}
}

// promptDir derives the prompt directory from the config location so
// both live under the same root.
func promptDir() string {
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir + string(os.PathSeparator) + "prompts"
	}
	return "" // PromptStore falls back to ~/.backdrop/prompts
}
