package domain

// Signal is an inbox item owned by the external signal service. Once Status
// is SignalConverted the signal is immutable with respect to Status and
// ProjectID; further edits must go through direct field updates, never through
// the conversion workflow again.
type Signal struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Body          string       `json:"body"`
	Status        SignalStatus `json:"status"`
	ThemeIDs      LinkSet      `json:"themeIds"`
	InfluenceIDs  LinkSet      `json:"influenceIds"`
	RestaurantIDs LinkSet      `json:"restaurantIds"`
	ProjectID     string       `json:"projectId,omitempty"`
	Audit
}

func (sg *Signal) EntityID() string { return sg.ID }
func (sg *Signal) SetID(id string)  { sg.ID = id }
func (sg *Signal) Kind() Kind       { return KindSignal }
func (sg *Signal) Meta() *Audit     { return &sg.Audit }

func (sg *Signal) Apply(p Patch) {
	p.Str("title", &sg.Title)
	p.Str("body", &sg.Body)
	p.Str("status", (*string)(&sg.Status))
	p.IDs("themeIds", &sg.ThemeIDs)
	p.IDs("influenceIds", &sg.InfluenceIDs)
	p.IDs("restaurantIds", &sg.RestaurantIDs)
	p.Str("projectId", &sg.ProjectID)
}

// Converted reports whether the signal has already produced a planning entity.
func (sg *Signal) Converted() bool { return sg.Status == SignalConverted }

func (sg *Signal) Clone() Entity {
	c := *sg
	c.ThemeIDs = sg.ThemeIDs.Clone()
	c.InfluenceIDs = sg.InfluenceIDs.Clone()
	c.RestaurantIDs = sg.RestaurantIDs.Clone()
	return &c
}
