// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for forecast.
//
// # Configuration Precedence
//
//   - Environment variables (FORECAST_*), including a .env file
//   - ~/.forecast/config.toml
//   - Built-in defaults
//
// # Example File
//
//	[reply]
//	delay = "500ms"
//	policy = "per-submission"
//
//	[ui]
//	theme = "auto"
//	show_help = true
//
//	[log]
//	file = ""
//	debug = false
//
// # Live Reload
//
// Watch reloads the file on change and hands the new Config to a callback.
// The TUI uses it to switch reply policy and theme without restarting.
package config
