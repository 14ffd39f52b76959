package handler

import (
	"context"

	cmtlog "github.com/cometbft/cometbft/libs/log"
)

// FundingHandler is the seam for the treasury module. The stub never
// moves funds; it only acknowledges the proposal.
type FundingHandler struct {
	logger cmtlog.Logger
}

func NewFundingHandler(logger cmtlog.Logger) (h *FundingHandler) {
	logger = logger.With("module", "fundingExec")
	h = &FundingHandler{
		logger: logger,
	}
	return
}

func (h *FundingHandler) Execute(ctx context.Context, proposal uint64, ec ExecContext) (succ bool, err error) {
	h.logger.Debug("execute funding proposal", "proposal", proposal, "executor", ec.Executor)
	return true, nil
}
