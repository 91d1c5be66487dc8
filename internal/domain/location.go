package domain

type Location struct {
	ID      string `json:"id"`
	BrandID string `json:"brandId"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Audit
}

func (l *Location) EntityID() string { return l.ID }
func (l *Location) SetID(id string)  { l.ID = id }
func (l *Location) Kind() Kind       { return KindLocation }
func (l *Location) Meta() *Audit     { return &l.Audit }

func (l *Location) Apply(p Patch) {
	p.Str("brandId", &l.BrandID)
	p.Str("name", &l.Name)
	p.Str("address", &l.Address)
}

func (l *Location) Clone() Entity {
	c := *l
	return &c
}
