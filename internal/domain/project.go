package domain

// Project belongs to a Theme and optionally to an Initiative under that
// theme. SignalID records provenance when the project was converted from an
// inbox signal.
type Project struct {
	ID           string        `json:"id"`
	ThemeID      string        `json:"themeId"`
	InitiativeID *string       `json:"initiativeId"`
	Title        string        `json:"title"`
	Notes        string        `json:"notes"`
	Status       ProjectStatus `json:"status"`
	BrandIDs     LinkSet       `json:"brandIds"`
	SignalID     string        `json:"signalId,omitempty"`
	Audit
}

func (pr *Project) EntityID() string { return pr.ID }
func (pr *Project) SetID(id string)  { pr.ID = id }
func (pr *Project) Kind() Kind       { return KindProject }
func (pr *Project) Meta() *Audit     { return &pr.Audit }

func (pr *Project) Apply(p Patch) {
	p.Str("themeId", &pr.ThemeID)
	p.StrPtr("initiativeId", &pr.InitiativeID)
	p.Str("title", &pr.Title)
	p.Str("notes", &pr.Notes)
	p.Str("status", (*string)(&pr.Status))
	p.IDs("brandIds", &pr.BrandIDs)
	p.Str("signalId", &pr.SignalID)
}

func (pr *Project) Clone() Entity {
	c := *pr
	c.BrandIDs = pr.BrandIDs.Clone()
	if pr.InitiativeID != nil {
		v := *pr.InitiativeID
		c.InitiativeID = &v
	}
	return &c
}
