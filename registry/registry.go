package registry

import (
	"sync"
	"time"

	"github.com/calehh/gov-core/handler"
	"github.com/calehh/gov-core/notify"
	"github.com/calehh/gov-core/types"
	"github.com/ethereum/go-ethereum/common"

	cmtlog "github.com/cometbft/cometbft/libs/log"
)

// Registry is the shared proposal aggregate. One mutex serializes every
// mutation and view so each public operation is observed atomically,
// the way StateDB guards chain state.
type Registry struct {
	mtx    sync.Mutex
	logger cmtlog.Logger

	dispatcher *handler.Dispatcher
	sink       notify.Sink
	now        func() uint64

	proposals        map[uint64]*ProposalInfo
	byType           map[types.ProposalType][]uint64
	queue            []uint64
	totalProcessed   uint64
	failedExecutions uint64
}

func NewRegistry(logger cmtlog.Logger, dispatcher *handler.Dispatcher, sink notify.Sink) (r *Registry) {
	logger = logger.With("module", "registry")
	if sink == nil {
		sink = notify.NopSink{}
	}
	r = &Registry{
		logger:     logger,
		dispatcher: dispatcher,
		sink:       sink,
		now:        func() uint64 { return uint64(time.Now().Unix()) },
		proposals:  make(map[uint64]*ProposalInfo),
		byType:     make(map[types.ProposalType][]uint64),
		queue:      make([]uint64, 0),
	}
	return
}

// Register records a new proposal. The id is minted by the caller and
// must be fresh; the execution queue is untouched.
func (r *Registry) Register(id uint64, tp types.ProposalType, descHash common.Hash, creator string) (err error) {
	if !tp.Valid() {
		return ErrInvalidProposalType
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, ok := r.proposals[id]; ok {
		return ErrDuplicateProposal
	}
	now := r.now()
	p := &ProposalInfo{
		Id:              id,
		Type:            tp,
		Creator:         creator,
		Approved:        false,
		CreatedAt:       now,
		DescriptionHash: descHash,
	}
	r.proposals[id] = p
	r.byType[tp] = append(r.byType[tp], id)
	r.logger.Debug("proposal registered", "proposal", id, "type", tp.String(), "creator", creator)
	r.sink.Emit(types.EncodeEventRegistered(&types.EventRegistered{
		Proposal:  id,
		Type:      uint64(tp),
		Creator:   creator,
		Timestamp: now,
	}))
	return
}

// Approve marks a proposal approved and enqueues it for execution. The
// caller's authority is the voting component's concern, not checked
// here. Approval is not idempotent: approving twice enqueues the id
// twice.
func (r *Registry) Approve(id uint64) (err error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	p, ok := r.proposals[id]
	if !ok {
		return ErrProposalNotFound
	}
	p.Approved = true
	r.queue = append(r.queue, id)
	now := r.now()
	r.logger.Debug("proposal approved", "proposal", id, "queue", len(r.queue))
	r.sink.Emit(types.EncodeEventApproved(&types.EventApproved{
		Proposal:  id,
		Type:      uint64(p.Type),
		Timestamp: now,
	}))
	return
}

// removeQueued drops the first occurrence of id from the queue; a
// missing id is a no-op.
func (r *Registry) removeQueued(id uint64) {
	for i, qid := range r.queue {
		if qid == id {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			return
		}
	}
}
