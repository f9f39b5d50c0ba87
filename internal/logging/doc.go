// Package logging provides structured logging for scrollprompt.
//
// This package wraps a zap logger with convenience functions for common
// logging patterns, plus prompt-specific helpers used by the navigation
// core and the device adapters.
//
// # Log Levels
//
//   - Debug: every rendered frame and every input event (the device trace)
//   - Info: decisions, panel connections, state changes
//   - Warn: dropped input, non-fatal adapter issues
//   - Error: render failures, startup failures
//
// # Silent by Default
//
// The logger is a no-op until a level is configured, so interactive output
// (the emulator, the simulate transcript) stays clean:
//
//	if err := logging.Initialize(""); err != nil { // reads SCROLLPROMPT_LOG_LEVEL
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Specialized Logging
//
//	logging.LogFrame("Amount", 0, 3, []string{"12.5 ETH"})
//	logging.LogEvent("scroller", "next")
//	logging.LogDecision("accepted")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
