package domain

// Influence is a root-level factor (market trend, internal constraint) linked
// into the hierarchy through its connected theme and project sets.
type Influence struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Type                InfluenceType `json:"type"`
	Notes               string        `json:"notes"`
	ConnectedThemeIDs   LinkSet       `json:"connectedThemeIds"`
	ConnectedProjectIDs LinkSet       `json:"connectedProjectIds"`
	Audit
}

func (f *Influence) EntityID() string { return f.ID }
func (f *Influence) SetID(id string)  { f.ID = id }
func (f *Influence) Kind() Kind       { return KindInfluence }
func (f *Influence) Meta() *Audit     { return &f.Audit }

func (f *Influence) Apply(p Patch) {
	p.Str("title", &f.Title)
	p.Str("type", (*string)(&f.Type))
	p.Str("notes", &f.Notes)
	p.IDs("connectedThemeIds", &f.ConnectedThemeIDs)
	p.IDs("connectedProjectIds", &f.ConnectedProjectIDs)
}

func (f *Influence) Clone() Entity {
	c := *f
	c.ConnectedThemeIDs = f.ConnectedThemeIDs.Clone()
	c.ConnectedProjectIDs = f.ConnectedProjectIDs.Clone()
	return &c
}
