package handler

import (
	"context"

	cmtlog "github.com/cometbft/cometbft/libs/log"
)

type CriticalHandler struct {
	logger cmtlog.Logger
}

func NewCriticalHandler(logger cmtlog.Logger) (h *CriticalHandler) {
	logger = logger.With("module", "criticalExec")
	h = &CriticalHandler{
		logger: logger,
	}
	return
}

func (h *CriticalHandler) Execute(ctx context.Context, proposal uint64, ec ExecContext) (succ bool, err error) {
	h.logger.Debug("execute critical proposal", "proposal", proposal, "executor", ec.Executor)
	return true, nil
}
