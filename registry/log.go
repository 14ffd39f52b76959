package registry

import (
	cosmoslog "cosmossdk.io/log"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

// iavlLogger bridges the node logger to the cosmos log interface the
// iavl tree wants.
type iavlLogger struct {
	logger cmtlog.Logger
}

func wrapIavlLogger(lg cmtlog.Logger) cosmoslog.Logger {
	return iavlLogger{logger: lg}
}

func (l iavlLogger) Info(msg string, keyVals ...any) {
	l.logger.Info(msg, keyVals...)
}

func (l iavlLogger) Error(msg string, keyVals ...any) {
	l.logger.Error(msg, keyVals...)
}

func (l iavlLogger) Debug(msg string, keyVals ...any) {
	l.logger.Debug(msg, keyVals...)
}

func (l iavlLogger) With(keyVals ...any) cosmoslog.Logger {
	return iavlLogger{l.logger.With(keyVals...)}
}

func (l iavlLogger) Impl() any {
	return l.logger
}
