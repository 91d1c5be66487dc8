package domain

type Initiative struct {
	ID      string           `json:"id"`
	ThemeID string           `json:"themeId"`
	Title   string           `json:"title"`
	Status  InitiativeStatus `json:"status"`
	Audit
}

func (i *Initiative) EntityID() string { return i.ID }
func (i *Initiative) SetID(id string)  { i.ID = id }
func (i *Initiative) Kind() Kind       { return KindInitiative }
func (i *Initiative) Meta() *Audit     { return &i.Audit }

func (i *Initiative) Apply(p Patch) {
	p.Str("themeId", &i.ThemeID)
	p.Str("title", &i.Title)
	p.Str("status", (*string)(&i.Status))
}

func (i *Initiative) Clone() Entity {
	c := *i
	return &c
}
