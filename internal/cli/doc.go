// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the command-line interface for forecast.
//
// # Commands
//
//	forecast                 start the dashboard
//	forecast version         print version information
//	forecast config show     print the effective configuration
//	forecast config path     print the configuration file path
//	forecast config init     write a default configuration file
//
// # Global Flags
//
//	-c, --config       config file path
//	--reply-policy     per-submission or single-inflight
//	--reply-delay      placeholder reply delay
//	--theme            dark, light or auto
//	--log-file         log file path
//	--debug            verbose logging
//
// Flags override FORECAST_* environment variables, which override the file.
package cli
