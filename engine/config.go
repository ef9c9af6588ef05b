package engine

import "github.com/rs/zerolog"

// Config controls how a Matcher scans its input.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.Prefilter = false // scan every rune
//	m := engine.New(tokens, config)
type Config struct {
	// Prefilter enables skipping to the next position where the first token
	// can match while no match attempt is in progress. It never changes the
	// result of a match.
	// Default: true
	Prefilter bool

	// Logger receives the compiled token list at debug level and one event
	// per scan step at trace level.
	// Default: zerolog.Nop()
	Logger zerolog.Logger
}

// DefaultConfig returns a configuration with prefiltering on and logging off.
func DefaultConfig() Config {
	return Config{
		Prefilter: true,
		Logger:    zerolog.Nop(),
	}
}
