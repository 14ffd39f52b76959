package handler

import (
	"context"

	"github.com/calehh/gov-core/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

// ExecContext carries the execution-time facts a handler may need.
type ExecContext struct {
	Executor  string
	Timestamp uint64
}

// Handler performs the type-specific effect of an approved proposal.
// The returned bool is the business verdict: false records a failed
// execution but must not abort the surrounding operation. An error is
// reserved for truly exceptional conditions only.
type Handler interface {
	Execute(ctx context.Context, proposal uint64, ec ExecContext) (succ bool, err error)
}

type Dispatcher struct {
	logger   cmtlog.Logger
	handlers map[types.ProposalType]Handler
	fallback Handler
}

func NewDispatcher(logger cmtlog.Logger) (d *Dispatcher) {
	logger = logger.With("module", "dispatch")
	d = &Dispatcher{
		logger:   logger,
		handlers: make(map[types.ProposalType]Handler),
		fallback: newUnknownHandler(logger),
	}
	d.registerHandlers()
	return
}

func (d *Dispatcher) registerHandlers() {
	d.handlers = map[types.ProposalType]Handler{
		types.ProposalTypeGeneral:   NewGeneralHandler(d.logger),
		types.ProposalTypeParameter: NewParameterHandler(d.logger),
		types.ProposalTypeCritical:  NewCriticalHandler(d.logger),
		types.ProposalTypeFunding:   NewFundingHandler(d.logger),
		types.ProposalTypeEmergency: NewEmergencyHandler(d.logger),
	}
}

// Register replaces the handler for a proposal type. This is the seam
// where the surrounding system wires in treasury, parameter-store and
// emergency-action modules.
func (d *Dispatcher) Register(tp types.ProposalType, h Handler) {
	d.handlers[tp] = h
}

func (d *Dispatcher) Dispatch(ctx context.Context, tp types.ProposalType, proposal uint64, ec ExecContext) (succ bool, err error) {
	h, ok := d.handlers[tp]
	if !ok {
		return d.fallback.Execute(ctx, proposal, ec)
	}
	return h.Execute(ctx, proposal, ec)
}

// unknownHandler reports failure for type codes nothing is registered
// for; registration validation makes it unreachable in practice.
type unknownHandler struct {
	logger cmtlog.Logger
}

func newUnknownHandler(logger cmtlog.Logger) (h *unknownHandler) {
	h = &unknownHandler{
		logger: logger,
	}
	return
}

func (h *unknownHandler) Execute(ctx context.Context, proposal uint64, ec ExecContext) (succ bool, err error) {
	h.logger.Error("execute proposal with unknown type", "proposal", proposal)
	return false, nil
}
