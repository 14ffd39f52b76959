package handler

import (
	"context"
	"testing"

	"github.com/calehh/gov-core/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	calls []uint64
	succ  bool
}

func (h *recordingHandler) Execute(ctx context.Context, proposal uint64, ec ExecContext) (bool, error) {
	h.calls = append(h.calls, proposal)
	return h.succ, nil
}

func TestDispatchRoutesAllKnownTypes(t *testing.T) {
	d := NewDispatcher(cmtlog.NewNopLogger())
	for tp := types.ProposalTypeGeneral; tp <= types.ProposalTypeEmergency; tp++ {
		succ, err := d.Dispatch(context.Background(), tp, 7, ExecContext{Executor: "bob", Timestamp: 1})
		require.NoError(t, err)
		require.True(t, succ, "type %v", tp)
	}
}

func TestDispatchUnknownTypeFailsWithoutError(t *testing.T) {
	d := NewDispatcher(cmtlog.NewNopLogger())
	succ, err := d.Dispatch(context.Background(), types.ProposalType(42), 7, ExecContext{Executor: "bob"})
	require.NoError(t, err)
	require.False(t, succ)
}

func TestRegisterReplacesHandler(t *testing.T) {
	d := NewDispatcher(cmtlog.NewNopLogger())
	rec := &recordingHandler{succ: false}
	d.Register(types.ProposalTypeFunding, rec)

	succ, err := d.Dispatch(context.Background(), types.ProposalTypeFunding, 9, ExecContext{Executor: "bob"})
	require.NoError(t, err)
	require.False(t, succ)
	require.Equal(t, []uint64{9}, rec.calls)
}
