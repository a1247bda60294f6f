package services

import (
	"strings"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
	"github.com/backdrop-labs/backdrop-cli/internal/logger"
)

// Ensure PromptBuilder can receive custom prompts.
var _ driven.PromptStoreAware = (*PromptBuilder)(nil)

// Default templates used when no prompt store is configured or a
// template cannot be loaded.
const (
	defaultContextPreamble = "The user has shared the following background information about themselves. " +
		"It was written by the user and may help you answer their questions:"

	defaultContextClosing = "Use this background naturally where it is relevant, " +
		"and acknowledge that you are aware of it."
)

// PromptBuilder formats selected chunks into one context block ready
// for injection ahead of a user's question. It holds no mutable state
// beyond the optional prompt store.
type PromptBuilder struct {
	promptStore driven.PromptStore
}

// NewPromptBuilder creates a prompt builder using built-in templates.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SetPromptStore sets the store used to load customised templates.
func (b *PromptBuilder) SetPromptStore(store driven.PromptStore) {
	b.promptStore = store
}

// Build renders the selection into a single context block.
//
// Each chunk appears under a bold section label when it has one, with
// chunks separated by blank lines, between the preamble and the closing
// instruction. The query is accepted for future per-query templating
// but does not affect the output today. An empty selection returns
// ("", false); no block is ever emitted without content.
func (b *PromptBuilder) Build(query string, selection []domain.ScoredChunk) (string, bool) {
	if len(selection) == 0 {
		return "", false
	}

	_ = query

	var sb strings.Builder
	sb.WriteString(b.loadPrompt(driven.PromptContextPreamble, defaultContextPreamble))
	sb.WriteString("\n\n")

	for i, sc := range selection {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if sc.Chunk.SectionTitle != "" {
			sb.WriteString("**" + sc.Chunk.SectionTitle + ":**\n")
		}
		sb.WriteString(sc.Chunk.Text)
	}

	sb.WriteString("\n\n")
	sb.WriteString(b.loadPrompt(driven.PromptContextClosing, defaultContextClosing))

	logger.Debug("Built context block from %d chunks", len(selection))
	return sb.String(), true
}

// loadPrompt fetches a template, falling back to the built-in default
// when no store is configured or the load fails.
func (b *PromptBuilder) loadPrompt(name, fallback string) string {
	if b.promptStore == nil {
		return fallback
	}
	prompt, err := b.promptStore.Load(name)
	if err != nil || strings.TrimSpace(prompt) == "" {
		logger.Debug("Prompt %q unavailable, using built-in default", name)
		return fallback
	}
	return prompt
}
