package handler

import (
	"context"

	cmtlog "github.com/cometbft/cometbft/libs/log"
)

// ParameterHandler is the seam for the parameter-store module; the
// stub acknowledges the proposal without mutating any parameter.
type ParameterHandler struct {
	logger cmtlog.Logger
}

func NewParameterHandler(logger cmtlog.Logger) (h *ParameterHandler) {
	logger = logger.With("module", "parameterExec")
	h = &ParameterHandler{
		logger: logger,
	}
	return
}

func (h *ParameterHandler) Execute(ctx context.Context, proposal uint64, ec ExecContext) (succ bool, err error) {
	h.logger.Debug("execute parameter proposal", "proposal", proposal, "executor", ec.Executor)
	return true, nil
}
