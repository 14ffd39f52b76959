package types

type ProposalType uint64

const (
	ProposalTypeGeneral   ProposalType = 0
	ProposalTypeParameter ProposalType = 1
	ProposalTypeCritical  ProposalType = 2
	ProposalTypeFunding   ProposalType = 3
	ProposalTypeEmergency ProposalType = 4
)

// MaxProposalType is the highest type code accepted at registration.
const MaxProposalType = ProposalTypeEmergency

func (t ProposalType) Valid() bool {
	return t <= MaxProposalType
}

func (t ProposalType) String() string {
	switch t {
	case ProposalTypeGeneral:
		return "general"
	case ProposalTypeParameter:
		return "parameter"
	case ProposalTypeCritical:
		return "critical"
	case ProposalTypeFunding:
		return "funding"
	case ProposalTypeEmergency:
		return "emergency"
	default:
		return "unknown"
	}
}
