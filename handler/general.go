package handler

import (
	"context"

	cmtlog "github.com/cometbft/cometbft/libs/log"
)

// GeneralHandler is a stub; general proposals carry no on-platform
// effect until an external module replaces it via Dispatcher.Register.
type GeneralHandler struct {
	logger cmtlog.Logger
}

func NewGeneralHandler(logger cmtlog.Logger) (h *GeneralHandler) {
	logger = logger.With("module", "generalExec")
	h = &GeneralHandler{
		logger: logger,
	}
	return
}

func (h *GeneralHandler) Execute(ctx context.Context, proposal uint64, ec ExecContext) (succ bool, err error) {
	h.logger.Debug("execute general proposal", "proposal", proposal, "executor", ec.Executor)
	return true, nil
}
