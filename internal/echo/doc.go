// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package echo answers every user message with a fixed acknowledgment
// after a short delay. It stands in for a forecasting backend.
//
// Each reply is a task in a tasks.Registry. The command returned by
// OnUserMessage waits for the delay or for cancellation, and the caller
// confirms delivery with Accept so a reply canceled at the last moment is
// never shown.
package echo
