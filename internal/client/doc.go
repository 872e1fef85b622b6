// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the tinyfs command line tool.
//
// It turns positional arguments into a [models.Command], validates it,
// resolves credentials for encrypted containers and dispatches to the
// container service. The terminal browser is reached through [Browser].
package client
