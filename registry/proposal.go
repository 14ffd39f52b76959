package registry

import (
	"github.com/calehh/gov-core/types"
	"github.com/ethereum/go-ethereum/common"
)

// ExecutionOutcome records one execution attempt. A proposal carries
// it only once executed, so "executed implies a result" holds by
// construction.
type ExecutionOutcome struct {
	Success   bool   `json:"success"`
	Timestamp uint64 `json:"timestamp"`
}

// ProposalInfo is the registry's record of one proposal. Id, Type,
// Creator and DescriptionHash are immutable after registration.
type ProposalInfo struct {
	Id              uint64             `json:"id"`
	Type            types.ProposalType `json:"type"`
	Creator         string             `json:"creator"`
	Approved        bool               `json:"approved"`
	Outcome         *ExecutionOutcome  `json:"outcome,omitempty"`
	CreatedAt       uint64             `json:"createdAt"`
	DescriptionHash common.Hash        `json:"descriptionHash"`
}

func (p *ProposalInfo) Executed() bool {
	return p.Outcome != nil
}

func (p *ProposalInfo) Clone() *ProposalInfo {
	n := *p
	if p.Outcome != nil {
		o := *p.Outcome
		n.Outcome = &o
	}
	return &n
}
