package registry

import (
	"context"

	"github.com/calehh/gov-core/types"
)

// BatchResult aggregates one ProcessQueue run.
type BatchResult struct {
	Processed  uint64 `json:"processed"`
	Successful uint64 `json:"successful"`
	Failed     uint64 `json:"failed"`
}

// ProcessQueue drains up to max proposals from the front of the
// execution queue, oldest first. The bound is fixed at entry, so ids
// approved mid-batch are left for the next run. Each drained proposal
// commits on its own: when a sub-execution aborts, the batch stops
// with the earlier executions retained and no summary is emitted.
func (r *Registry) ProcessQueue(ctx context.Context, cap *Capability, max uint64, executor string) (res BatchResult, err error) {
	if !cap.Authorized(executor) {
		return res, ErrUnauthorized
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	bound := max
	if l := uint64(len(r.queue)); l < bound {
		bound = l
	}
	for i := uint64(0); i < bound; i++ {
		id := r.queue[0]
		succ, err1 := r.executeLocked(ctx, id, executor)
		if err1 != nil {
			r.logger.Error("queue processing aborted", "proposal", id, "err", err1, "processed", res.Processed)
			return res, err1
		}
		res.Processed += 1
		if succ {
			res.Successful += 1
		} else {
			res.Failed += 1
		}
	}
	now := r.now()
	r.logger.Info("queue processed", "processed", res.Processed, "successful", res.Successful, "failed", res.Failed)
	r.sink.Emit(types.EncodeEventQueueProcessed(&types.EventQueueProcessed{
		Processed:  res.Processed,
		Successful: res.Successful,
		Failed:     res.Failed,
		Timestamp:  now,
	}))
	return res, nil
}
