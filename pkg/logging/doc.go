// Package logging configures the structured loggers used by conneg.
//
// It wraps log/slog so that the CLI, the negotiation middleware and any
// embedding service share one way of building a logger from configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//
//	logger.Debug("negotiated", "accept", accept, "selected", selected)
//
// Components take a *slog.Logger in their constructor or through an option.
// A nil logger is replaced with Nop().
package logging
