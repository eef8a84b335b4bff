// SPDX-License-Identifier: MPL-2.0

// Package config handles modgraph's own configuration using Viper with CUE as
// the file format.
//
// The file lives at config.cue inside the platform configuration directory
// ($XDG_CONFIG_HOME/modgraph on Linux, ~/Library/Application Support/modgraph
// on macOS, %APPDATA%\modgraph on Windows) and is validated against the
// embedded config_schema.cue. Environment variables prefixed with MODGRAPH_
// override file values.
//
// Publishing credentials are never read from the file. They come from
// MODGRAPH_PUBLISH_USERNAME and MODGRAPH_PUBLISH_PASSWORD, or from the
// gradle_username and gradle_password variables older build scripts export.
package config
