// Package config manages device profiles and workflow scripts.
//
// A profile names a screen geometry (characters per line, lines per screen,
// page indicator) so commands can be run against "nanox" instead of raw
// numbers. Three profiles are built in and user profiles are stored in a
// YAML registry that follows OS-specific conventions for its location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/scrollprompt/config.yaml or $HOME/.config/scrollprompt/config.yaml
//   - macOS: $HOME/.config/scrollprompt/config.yaml
//   - Windows: %LOCALAPPDATA%\scrollprompt\config.yaml
//
// # Built-in Profiles
//
//	nanos  16 cells x 1 line, page index in the title
//	nanox  16 cells x 3 lines, page index in the title
//	wide   20 cells x 4 lines
//
// # Workflow Scripts
//
// A script is a separate YAML file describing named workflows: the
// sessions to scroll through and the lines shown before the final
// accept/reject choice.
//
//	workflows:
//	  - name: transfer
//	    sessions:
//	      - title: To
//	        text: 0x12ab34cd56ef7890
//	      - title: Amount
//	        text: 12.5 ETH
//	    confirm:
//	      - Sign transfer?
//
// # Usage Example
//
//	registry, err := config.LoadRegistry("")
//	if err != nil {
//	    return err
//	}
//	layout, err := registry.Layout("nanox")
package config
