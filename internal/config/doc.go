// Package config loads the lifeos configuration from
// ~/.config/lifeos/config.toml. Every path setting is validated
// (absolute or ~-prefixed) and tilde-expanded here, so the rest of the
// tool only ever sees absolute paths and never consults the home
// directory itself.
package config
