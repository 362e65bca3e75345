package model

import "math"

const wageRankPowf = 2.2
const rankPriceWageMult = 1500.0

// CrewId :
// Opaque identifier of a crew member within its owning ship or station.
type CrewId uint32

// CrewMemberType :
// Tagged variant over the crew roles.
type CrewMemberType int

const (
	Pilot CrewMemberType = iota
	Operator
	Trader
	Soldier
)

func (t CrewMemberType) String() string {
	switch t {
	case Pilot:
		return "Pilot"
	case Operator:
		return "Operator"
	case Trader:
		return "Trader"
	case Soldier:
		return "Soldier"
	default:
		return "Unknown"
	}
}

// ParseCrewMemberType :
// The inverse of String, used by the HTTP collaborator to turn a path
// segment back into a CrewMemberType.
func ParseCrewMemberType(s string) (CrewMemberType, *GameError) {
	for _, t := range []CrewMemberType{Pilot, Operator, Trader, Soldier} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, ErrInvalidArgument("crewtype")
}

func (t CrewMemberType) baseWage() float64 {
	switch t {
	case Pilot:
		return 5.0
	case Operator:
		return 0.5
	case Trader:
		return 2.5
	case Soldier:
		return 1.5
	default:
		return 0
	}
}

// CrewMember :
// A single crew member with a rank that only ever increases.
type CrewMember struct {
	MemberType CrewMemberType
	Rank       uint8
}

// NewCrewMember :
// Creates a rank-1 member of the given type.
func NewCrewMember(memberType CrewMemberType) CrewMember {
	return CrewMember{MemberType: memberType, Rank: 1}
}

// Wage :
// Currency billed per second for this member: `base(type) * rank^2.2`.
func (m *CrewMember) Wage() float64 {
	return m.MemberType.baseWage() * math.Pow(float64(m.Rank), wageRankPowf)
}

// PriceNextRank :
// Cost to rank this member up by one: `1500 * current wage`.
func (m *CrewMember) PriceNextRank() float64 {
	return m.Wage() * rankPriceWageMult
}

// Crew :
// An ordered mapping of crew members by id. Sum-of-wages is a pure
// projection over the current members.
type Crew map[CrewId]*CrewMember

// SumWages :
// Total wage draw of every member in this crew.
func (c Crew) SumWages() float64 {
	total := 0.0
	for _, m := range c {
		total += m.Wage()
	}
	return total
}
