package handler

import (
	"context"

	cmtlog "github.com/cometbft/cometbft/libs/log"
)

type EmergencyHandler struct {
	logger cmtlog.Logger
}

func NewEmergencyHandler(logger cmtlog.Logger) (h *EmergencyHandler) {
	logger = logger.With("module", "emergencyExec")
	h = &EmergencyHandler{
		logger: logger,
	}
	return
}

func (h *EmergencyHandler) Execute(ctx context.Context, proposal uint64, ec ExecContext) (succ bool, err error) {
	h.logger.Debug("execute emergency proposal", "proposal", proposal, "executor", ec.Executor)
	return true, nil
}
