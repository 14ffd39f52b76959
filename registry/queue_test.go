package registry

import (
	"context"
	"testing"

	"github.com/calehh/gov-core/types"
	"github.com/stretchr/testify/require"
)

func TestProcessQueueUnauthorized(t *testing.T) {
	r, _ := newTestRegistry(t)
	_, err := r.ProcessQueue(context.Background(), testCapability("bob"), 5, "mallory")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestProcessQueueEmptyEmitsSummary(t *testing.T) {
	r, sink := newTestRegistry(t)
	res, err := r.ProcessQueue(context.Background(), testCapability("bob"), 5, "bob")
	require.NoError(t, err)
	require.Equal(t, BatchResult{}, res)

	events := sink.byType(types.EventQueueProcessedType)
	require.Len(t, events, 1)
	ev := types.DecodeEventQueueProcessed(events[0])
	require.NotNil(t, ev)
	require.Equal(t, uint64(0), ev.Processed)
}

func TestProcessQueueBoundedFIFO(t *testing.T) {
	r, sink := newTestRegistry(t)
	rec := &verdictHandler{succ: true}
	r.dispatcher.Register(types.ProposalTypeGeneral, rec)
	cap := testCapability("bob")

	for id := uint64(1); id <= 4; id++ {
		require.NoError(t, r.Register(id, types.ProposalTypeGeneral, descHash("d"), "alice"))
		require.NoError(t, r.Approve(id))
	}

	res, err := r.ProcessQueue(context.Background(), cap, 3, "bob")
	require.NoError(t, err)
	require.Equal(t, BatchResult{Processed: 3, Successful: 3, Failed: 0}, res)
	require.Equal(t, []uint64{1, 2, 3}, rec.executed)
	require.Equal(t, 1, r.QueueLength())

	events := sink.byType(types.EventQueueProcessedType)
	require.Len(t, events, 1)
}

func TestProcessQueueBoundLargerThanQueue(t *testing.T) {
	r, _ := newTestRegistry(t)
	cap := testCapability("bob")
	require.NoError(t, r.Register(1, types.ProposalTypeGeneral, descHash("d"), "alice"))
	require.NoError(t, r.Approve(1))

	res, err := r.ProcessQueue(context.Background(), cap, 100, "bob")
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.Processed)
	require.Equal(t, 0, r.QueueLength())
}

func TestProcessQueueCountsFailures(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.dispatcher.Register(types.ProposalTypeParameter, &verdictHandler{succ: false})
	cap := testCapability("bob")

	require.NoError(t, r.Register(1, types.ProposalTypeGeneral, descHash("a"), "alice"))
	require.NoError(t, r.Register(2, types.ProposalTypeParameter, descHash("b"), "alice"))
	require.NoError(t, r.Approve(1))
	require.NoError(t, r.Approve(2))

	res, err := r.ProcessQueue(context.Background(), cap, 10, "bob")
	require.NoError(t, err)
	require.Equal(t, BatchResult{Processed: 2, Successful: 1, Failed: 1}, res)
	require.Equal(t, res.Processed, res.Successful+res.Failed)
}

// A double-approved proposal leaves a ghost queue entry behind once
// executed; draining into the ghost aborts the batch and keeps the
// progress made before it.
func TestProcessQueueGhostEntryAbortsBatch(t *testing.T) {
	r, sink := newTestRegistry(t)
	cap := testCapability("bob")
	require.NoError(t, r.Register(1, types.ProposalTypeGeneral, descHash("a"), "alice"))
	require.NoError(t, r.Register(2, types.ProposalTypeGeneral, descHash("b"), "alice"))
	require.NoError(t, r.Approve(1))
	require.NoError(t, r.Approve(1))
	require.NoError(t, r.Approve(2))
	// queue: [1, 1, 2]; executing 1 removes only the first entry

	res, err := r.ProcessQueue(context.Background(), cap, 3, "bob")
	require.ErrorIs(t, err, ErrAlreadyExecuted)
	require.Equal(t, uint64(1), res.Processed)
	require.Equal(t, uint64(1), r.TotalProcessed())
	require.Empty(t, sink.byType(types.EventQueueProcessedType))
	// ghost entry still at the front
	require.Equal(t, 2, r.QueueLength())
}

func TestEndToEndScenario(t *testing.T) {
	r, sink := newTestRegistry(t)
	cap := testCapability("bob")

	ids := []uint64{100, 200, 300}
	tps := []types.ProposalType{types.ProposalTypeGeneral, types.ProposalTypeParameter, types.ProposalTypeCritical}
	for i, id := range ids {
		require.NoError(t, r.Register(id, tps[i], descHash("d"), "alice"))
	}
	for _, id := range ids {
		require.NoError(t, r.Approve(id))
	}
	require.Equal(t, 3, r.QueueLength())

	res, err := r.ProcessQueue(context.Background(), cap, 2, "bob")
	require.NoError(t, err)
	require.Equal(t, BatchResult{Processed: 2, Successful: 2, Failed: 0}, res)
	require.Equal(t, 1, r.QueueLength())
	require.Equal(t, uint64(2), r.TotalProcessed())
	require.Equal(t, uint64(0), r.FailedExecutions())
	require.Equal(t, uint64(SuccessRateScale), r.GetSuccessRate())

	// A and B executed, C still pending
	for _, id := range ids[:2] {
		view, err := r.GetProposal(id)
		require.NoError(t, err)
		require.True(t, view.Executed)
	}
	view, err := r.GetProposal(300)
	require.NoError(t, err)
	require.False(t, view.Executed)

	execEvents := sink.byType(types.EventExecutionType)
	require.Len(t, execEvents, 2)
	require.Equal(t, uint64(100), types.DecodeEventExecution(execEvents[0]).Proposal)
	require.Equal(t, uint64(200), types.DecodeEventExecution(execEvents[1]).Proposal)
}
