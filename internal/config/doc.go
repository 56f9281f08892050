// Package config manages the basemaster configuration file.
//
// The file stores preferences only; the converted value itself is never
// persisted.
//
// # File Location
//
//   - Linux: $XDG_CONFIG_HOME/basemaster/config.yaml or ~/.config/basemaster/config.yaml
//   - macOS: ~/.config/basemaster/config.yaml
//   - Windows: %LOCALAPPDATA%\basemaster\config.yaml
//
// A config.toml in the same directory is read when no config.yaml exists.
// The --config flag names any other file; its extension picks the format.
//
// # File Format
//
//	version: 1
//	parse:
//	  mode: permissive
//	ui:
//	  start_field: dec
//	  alt_screen: true
//	theme:
//	  primary: "#7D56F4"
//	  bit_set: "#43BF6D"
//	log:
//	  level: debug
//	  file: /tmp/basemaster.log
//
// Missing sections and colours fall back to defaults. Saves are atomic
// (temporary file plus rename) with user-only permissions.
package config
