package registry

import (
	"context"

	"github.com/calehh/gov-core/handler"
	"github.com/calehh/gov-core/types"
)

// Execute runs one approved proposal through its type handler and
// records the verdict. A handler reporting false is a normal, recorded
// outcome: the proposal still reaches its terminal state and Execute
// returns (false, nil). Precondition failures abort before any
// mutation.
func (r *Registry) Execute(ctx context.Context, cap *Capability, id uint64, executor string) (succ bool, err error) {
	if !cap.Authorized(executor) {
		return false, ErrUnauthorized
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.executeLocked(ctx, id, executor)
}

func (r *Registry) executeLocked(ctx context.Context, id uint64, executor string) (succ bool, err error) {
	p, ok := r.proposals[id]
	if !ok {
		return false, ErrProposalNotFound
	}
	if !p.Approved {
		return false, ErrNotApproved
	}
	if p.Executed() {
		return false, ErrAlreadyExecuted
	}
	now := r.now()
	succ, err = r.dispatcher.Dispatch(ctx, p.Type, id, handler.ExecContext{
		Executor:  executor,
		Timestamp: now,
	})
	if err != nil {
		r.logger.Error("proposal handler aborted", "proposal", id, "err", err)
		return false, err
	}
	p.Outcome = &ExecutionOutcome{
		Success:   succ,
		Timestamp: now,
	}
	r.totalProcessed += 1
	if !succ {
		r.failedExecutions += 1
	}
	r.removeQueued(id)
	r.logger.Debug("proposal executed", "proposal", id, "type", p.Type.String(), "success", succ)
	r.sink.Emit(types.EncodeEventExecution(&types.EventExecution{
		Proposal:  id,
		Type:      uint64(p.Type),
		Executor:  executor,
		Success:   succ,
		Timestamp: now,
	}))
	return succ, nil
}
