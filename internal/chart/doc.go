// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart draws the resort operations forecast chart.
//
// A Widget is mounted on a Surface and shows three series: room occupancy,
// cleaning staff and security staff. Until Update supplies points it renders
// a placeholder. A Host keeps exactly one live widget across remounts.
package chart
