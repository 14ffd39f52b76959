package registry

import (
	"github.com/calehh/gov-core/types"
)

// SuccessRateScale is the basis-point scale of GetSuccessRate.
const SuccessRateScale = 10000

// ProposalView is the read-only state tuple of one proposal.
type ProposalView struct {
	Type     types.ProposalType `json:"type"`
	Creator  string             `json:"creator"`
	Approved bool               `json:"approved"`
	Executed bool               `json:"executed"`
}

func (r *Registry) GetProposal(id uint64) (view ProposalView, err error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	p, ok := r.proposals[id]
	if !ok {
		err = ErrProposalNotFound
		return
	}
	view = ProposalView{
		Type:     p.Type,
		Creator:  p.Creator,
		Approved: p.Approved,
		Executed: p.Executed(),
	}
	return
}

// Proposal returns a copy of the full record; mutating it does not
// touch the registry.
func (r *Registry) Proposal(id uint64) (p *ProposalInfo, err error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	stored, ok := r.proposals[id]
	if !ok {
		err = ErrProposalNotFound
		return
	}
	p = stored.Clone()
	return
}

func (r *Registry) QueueLength() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.queue)
}

func (r *Registry) TotalProcessed() uint64 {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.totalProcessed
}

func (r *Registry) FailedExecutions() uint64 {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.failedExecutions
}

// CountByType reports how many proposals were registered with the
// given type; a type nothing was registered under counts zero.
func (r *Registry) CountByType(tp types.ProposalType) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.byType[tp])
}

// GetSuccessRate reports the successful share of all execution
// attempts in basis points, 10000 while nothing has been processed.
func (r *Registry) GetSuccessRate() uint64 {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.totalProcessed == 0 {
		return SuccessRateScale
	}
	successful := r.totalProcessed - r.failedExecutions
	return successful * SuccessRateScale / r.totalProcessed
}

// Stats bundles the registry counters for the query surface.
type Stats struct {
	QueueLength      int    `json:"queueLength"`
	TotalProcessed   uint64 `json:"totalProcessed"`
	FailedExecutions uint64 `json:"failedExecutions"`
	SuccessRateBps   uint64 `json:"successRateBps"`
}

func (r *Registry) GetStats() Stats {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	rate := uint64(SuccessRateScale)
	if r.totalProcessed > 0 {
		rate = (r.totalProcessed - r.failedExecutions) * SuccessRateScale / r.totalProcessed
	}
	return Stats{
		QueueLength:      len(r.queue),
		TotalProcessed:   r.totalProcessed,
		FailedExecutions: r.failedExecutions,
		SuccessRateBps:   rate,
	}
}
