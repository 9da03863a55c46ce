// Package paths resolves the directories and files tagterm reads and writes.
//
// Locations follow the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/tagterm (config.toml)
//   - State: $XDG_STATE_HOME/tagterm (tagterm.log)
//
// # Environment Variables
//
//   - TAGTERM_CONFIG_DIR: Override the config directory
//   - TAGTERM_STATE_DIR: Override the state directory
//
// Both overrides accept a leading ~ for the home directory.
//
// # Usage
//
//	p := paths.New()
//	cfg := p.ConfigFile() // /home/user/.config/tagterm/config.toml
//	log := p.LogFile()    // /home/user/.local/state/tagterm/tagterm.log
package paths
