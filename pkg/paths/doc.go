// Package paths provides centralized path handling for actionq.
//
// It implements the XDG Base Directory specification for the few locations
// actionq touches: the user configuration directory, the state directory that
// holds the log file, and the project configuration files looked up next to
// the documents being built.
//
// # Environment Variables
//
//   - ACTIONQ_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/actionq)
//   - ACTIONQ_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/actionq)
package paths
