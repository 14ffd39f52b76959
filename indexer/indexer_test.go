package indexer

import (
	"path/filepath"
	"testing"

	gov_types "github.com/calehh/gov-core/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/require"
)

func newTestIndexer(t *testing.T) *Indexer {
	t.Helper()
	ix, err := NewIndexer(cmtlog.NewNopLogger(), filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestIndexerRecordsLifecycle(t *testing.T) {
	ix := newTestIndexer(t)

	ix.Emit(gov_types.EncodeEventRegistered(&gov_types.EventRegistered{
		Proposal: 1, Type: 3, Creator: "alice", Timestamp: 10,
	}))
	ix.Emit(gov_types.EncodeEventApproved(&gov_types.EventApproved{
		Proposal: 1, Type: 3, Timestamp: 11,
	}))
	ix.Emit(gov_types.EncodeEventExecution(&gov_types.EventExecution{
		Proposal: 1, Type: 3, Executor: "bob", Success: true, Timestamp: 12,
	}))
	ix.Emit(gov_types.EncodeEventQueueProcessed(&gov_types.EventQueueProcessed{
		Processed: 1, Successful: 1, Failed: 0, Timestamp: 12,
	}))

	regs, total, err := ix.GetRegistrations(0, 10)
	require.NoError(t, err)
	require.Equal(t, uint64(1), total)
	require.Len(t, regs, 1)
	require.Equal(t, "alice", regs[0].Creator)
	require.Equal(t, uint64(3), regs[0].Type)

	execs, err := ix.GetExecutionsByProposal(1)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	require.Equal(t, "bob", execs[0].Executor)
	require.True(t, execs[0].Success)

	runs, total, err := ix.GetBatchRuns(0, 10)
	require.NoError(t, err)
	require.Equal(t, uint64(1), total)
	require.Equal(t, uint64(1), runs[0].Processed)
}

func TestIndexerIgnoresUnknownEvents(t *testing.T) {
	ix := newTestIndexer(t)
	ix.Emit(gov_types.EncodeEventRegistered(&gov_types.EventRegistered{Proposal: 1}))

	ev := gov_types.EncodeEventRegistered(&gov_types.EventRegistered{Proposal: 2})
	ev.Type = "something_else"
	ix.Emit(ev)

	_, total, err := ix.GetRegistrations(0, 10)
	require.NoError(t, err)
	require.Equal(t, uint64(1), total)
}
