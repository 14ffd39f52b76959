package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/calehh/gov-core/handler"
	"github.com/calehh/gov-core/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/require"
)

type verdictHandler struct {
	succ     bool
	err      error
	executed []uint64
}

func (h *verdictHandler) Execute(ctx context.Context, proposal uint64, ec handler.ExecContext) (bool, error) {
	h.executed = append(h.executed, proposal)
	return h.succ, h.err
}

func TestExecuteUnauthorized(t *testing.T) {
	r, sink := newTestRegistry(t)
	require.NoError(t, r.Register(1, types.ProposalTypeGeneral, descHash("a"), "alice"))
	require.NoError(t, r.Approve(1))

	cap := testCapability("bob")
	_, err := r.Execute(context.Background(), cap, 1, "mallory")
	require.ErrorIs(t, err, ErrUnauthorized)

	// nothing changed: an authorized retry succeeds against the same state
	require.Equal(t, 1, r.QueueLength())
	require.Equal(t, uint64(0), r.TotalProcessed())
	require.Empty(t, sink.byType(types.EventExecutionType))

	succ, err := r.Execute(context.Background(), cap, 1, "bob")
	require.NoError(t, err)
	require.True(t, succ)
}

func TestExecuteUnknownProposal(t *testing.T) {
	r, _ := newTestRegistry(t)
	_, err := r.Execute(context.Background(), testCapability("bob"), 9, "bob")
	require.ErrorIs(t, err, ErrProposalNotFound)
}

func TestExecuteUnapproved(t *testing.T) {
	r, _ := newTestRegistry(t)
	require.NoError(t, r.Register(1, types.ProposalTypeCritical, descHash("a"), "alice"))
	_, err := r.Execute(context.Background(), testCapability("bob"), 1, "bob")
	require.ErrorIs(t, err, ErrNotApproved)
	require.Equal(t, uint64(0), r.TotalProcessed())
}

func TestExecuteTwice(t *testing.T) {
	r, _ := newTestRegistry(t)
	cap := testCapability("bob")
	require.NoError(t, r.Register(1, types.ProposalTypeGeneral, descHash("a"), "alice"))
	require.NoError(t, r.Approve(1))

	succ, err := r.Execute(context.Background(), cap, 1, "bob")
	require.NoError(t, err)
	require.True(t, succ)

	_, err = r.Execute(context.Background(), cap, 1, "bob")
	require.ErrorIs(t, err, ErrAlreadyExecuted)
	require.Equal(t, uint64(1), r.TotalProcessed())
}

func TestExecuteRecordsOutcomeAndDequeues(t *testing.T) {
	r, sink := newTestRegistry(t)
	cap := testCapability("bob")
	require.NoError(t, r.Register(1, types.ProposalTypeFunding, descHash("a"), "alice"))
	require.NoError(t, r.Approve(1))
	require.Equal(t, 1, r.QueueLength())

	succ, err := r.Execute(context.Background(), cap, 1, "bob")
	require.NoError(t, err)
	require.True(t, succ)
	require.Equal(t, 0, r.QueueLength())
	require.Equal(t, uint64(1), r.TotalProcessed())
	require.Equal(t, uint64(0), r.FailedExecutions())

	p, err := r.Proposal(1)
	require.NoError(t, err)
	require.True(t, p.Executed())
	require.True(t, p.Outcome.Success)
	require.NotZero(t, p.Outcome.Timestamp)

	events := sink.byType(types.EventExecutionType)
	require.Len(t, events, 1)
	ev := types.DecodeEventExecution(events[0])
	require.NotNil(t, ev)
	require.Equal(t, uint64(1), ev.Proposal)
	require.Equal(t, "bob", ev.Executor)
	require.True(t, ev.Success)
}

func TestExecuteHandlerFailureIsRecordedNotAborted(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.dispatcher.Register(types.ProposalTypeGeneral, &verdictHandler{succ: false})
	cap := testCapability("bob")
	require.NoError(t, r.Register(1, types.ProposalTypeGeneral, descHash("a"), "alice"))
	require.NoError(t, r.Approve(1))

	succ, err := r.Execute(context.Background(), cap, 1, "bob")
	require.NoError(t, err)
	require.False(t, succ)

	p, err := r.Proposal(1)
	require.NoError(t, err)
	require.True(t, p.Executed())
	require.False(t, p.Outcome.Success)
	require.Equal(t, uint64(1), r.TotalProcessed())
	require.Equal(t, uint64(1), r.FailedExecutions())
	require.Equal(t, 0, r.QueueLength())
}

func TestExecuteHandlerHardErrorAborts(t *testing.T) {
	r, _ := newTestRegistry(t)
	hardErr := errors.New("treasury offline")
	r.dispatcher.Register(types.ProposalTypeFunding, &verdictHandler{err: hardErr})
	cap := testCapability("bob")
	require.NoError(t, r.Register(1, types.ProposalTypeFunding, descHash("a"), "alice"))
	require.NoError(t, r.Approve(1))

	_, err := r.Execute(context.Background(), cap, 1, "bob")
	require.ErrorIs(t, err, hardErr)

	p, errGet := r.Proposal(1)
	require.NoError(t, errGet)
	require.False(t, p.Executed())
	require.Equal(t, uint64(0), r.TotalProcessed())
	require.Equal(t, 1, r.QueueLength())
}

func TestSuccessRateBasisPoints(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.dispatcher.Register(types.ProposalTypeParameter, &verdictHandler{succ: false})
	cap := testCapability("bob")

	require.NoError(t, r.Register(1, types.ProposalTypeGeneral, descHash("a"), "alice"))
	require.NoError(t, r.Register(2, types.ProposalTypeGeneral, descHash("b"), "alice"))
	require.NoError(t, r.Register(3, types.ProposalTypeParameter, descHash("c"), "alice"))
	for id := uint64(1); id <= 3; id++ {
		require.NoError(t, r.Approve(id))
		_, err := r.Execute(context.Background(), cap, id, "bob")
		require.NoError(t, err)
	}

	// 2 of 3 succeeded: floor(2*10000/3)
	require.Equal(t, uint64(6666), r.GetSuccessRate())

	stats := r.GetStats()
	require.Equal(t, uint64(3), stats.TotalProcessed)
	require.Equal(t, uint64(1), stats.FailedExecutions)
	require.Equal(t, uint64(6666), stats.SuccessRateBps)
	require.Equal(t, 0, stats.QueueLength)
}

func TestDefaultDispatcherStubsSucceed(t *testing.T) {
	logger := cmtlog.NewNopLogger()
	d := handler.NewDispatcher(logger)
	for tp := types.ProposalTypeGeneral; tp <= types.ProposalTypeEmergency; tp++ {
		succ, err := d.Dispatch(context.Background(), tp, 1, handler.ExecContext{Executor: "bob"})
		require.NoError(t, err)
		require.True(t, succ)
	}
}
