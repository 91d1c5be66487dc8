package domain

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type InitiativeStatus string

const (
	InitiativeIdea       InitiativeStatus = "idea"
	InitiativeShaping    InitiativeStatus = "shaping"
	InitiativeInProgress InitiativeStatus = "in_progress"
	InitiativeDone       InitiativeStatus = "done"
	InitiativeOnHold     InitiativeStatus = "on_hold"
)

type ProjectStatus string

const (
	ProjectIdea    ProjectStatus = "idea"
	ProjectInPrep  ProjectStatus = "in_prep"
	ProjectRunning ProjectStatus = "running"
	ProjectDone    ProjectStatus = "done"
)

type RestaurantCategory string

const (
	CategoryNew      RestaurantCategory = "new"
	CategoryFacelift RestaurantCategory = "facelift"
)

// RestaurantPhase values are category-scoped: the "new" category walks
// scouting → lease → build_out → opening, the "facelift" category walks
// closure → reconstruction → reopening.
type RestaurantPhase string

const (
	PhaseScouting       RestaurantPhase = "scouting"
	PhaseLease          RestaurantPhase = "lease"
	PhaseBuildOut       RestaurantPhase = "build_out"
	PhaseOpening        RestaurantPhase = "opening"
	PhaseClosure        RestaurantPhase = "closure"
	PhaseReconstruction RestaurantPhase = "reconstruction"
	PhaseReopening      RestaurantPhase = "reopening"
)

// ValidPhases is the accepted phase set per restaurant category.
var ValidPhases = map[RestaurantCategory][]RestaurantPhase{
	CategoryNew:      {PhaseScouting, PhaseLease, PhaseBuildOut, PhaseOpening},
	CategoryFacelift: {PhaseClosure, PhaseReconstruction, PhaseReopening},
}

// ValidPhase reports whether phase belongs to the given category.
func ValidPhase(cat RestaurantCategory, phase RestaurantPhase) bool {
	for _, p := range ValidPhases[cat] {
		if p == phase {
			return true
		}
	}
	return false
}

type InfluenceType string

const (
	InfluenceExternal InfluenceType = "external"
	InfluenceInternal InfluenceType = "internal"
)

type SignalStatus string

const (
	SignalInbox     SignalStatus = "inbox"
	SignalTriaged   SignalStatus = "triaged"
	SignalConverted SignalStatus = "converted"
	SignalArchived  SignalStatus = "archived"
)
