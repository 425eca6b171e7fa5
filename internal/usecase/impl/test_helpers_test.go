package impl

import (
	"io"
	"log/slog"

	"returnwiz/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(allowEmptyReturns, allowUnscopedList bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		ReturnPolicy: &config.ReturnPolicyConfig{
			TrackingPrefix:    "RW",
			AllowEmptyReturns: allowEmptyReturns,
			AllowUnscopedList: allowUnscopedList,
		},
	}
}
