// SPDX-License-Identifier: MIT

package qr

import "log/slog"

// Test bridge (white-box): exposes resolved defaults to qr_test without
// widening the production API.

// DefaultLoggerTestOnly returns the logger an engine gets without WithLogger.
func DefaultLoggerTestOnly() *slog.Logger { return gatherOptions().logger }
