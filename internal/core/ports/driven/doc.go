// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentSource: Access to the background document bytes
//   - PostProcessor: A chunk-producing or chunk-annotating pipeline stage
//   - PostProcessorPipeline: Ordered processor execution
//   - ConfigStore: Application configuration
//   - ConfigValidator: Retrieval tuning validation
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PromptStore: Custom prompt templates. Without it, built-in defaults are used.
//   - DocumentWriter: Sources that accept new content. Read-only sources skip it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or processor package
package driven
