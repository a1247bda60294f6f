package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Read and write configuration values by dot-notation key.

Common keys:
  document.source            filesystem, memory, or sqlite
  document.path              background document location
  retrieval.chunk_size       words per chunk window
  retrieval.chunk_overlap    words shared by consecutive windows
  retrieval.score_threshold  minimum relevance score
  retrieval.top_k            chunks returned per query
  retrieval.fallback_count   chunks returned when nothing clears the threshold
  keywords.max               keywords kept per chunk
  keywords.min_word_length   shortest token kept`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}

	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	prev, existed := configStore.Get(key)

	if err := configStore.Set(key, parseConfigValue(raw)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	// A value that fails retrieval validation is rolled back; invalid
	// values never stay persisted.
	if settingsService != nil {
		if _, err := settingsService.Retrieval(); err != nil {
			if existed {
				_ = configStore.Set(key, prev) //nolint:errcheck
			} else {
				_ = configStore.Delete(key) //nolint:errcheck
			}
			return fmt.Errorf("rejecting %s=%s: %w", key, raw, err)
		}
	}

	cmd.Printf("%s = %s\n", key, raw)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}

// parseConfigValue keeps TOML-friendly types: bools and numbers are
// stored as such, everything else as the raw string.
func parseConfigValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
