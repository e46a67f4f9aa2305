// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"

	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// WithLogger adds the given Logger to the context so that it can be retrieved with GetLogger
func WithLogger(parent context.Context, logger *zap.Logger) context.Context {
	return sallust.With(parent, logger)
}

// GetLogger retrieves the logger associated with the context.  If no logger is
// present in the context, Default is returned instead.
func GetLogger(ctx context.Context) *zap.Logger {
	return sallust.Get(ctx)
}
