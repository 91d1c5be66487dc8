package domain

type Vision struct {
	ID          string  `json:"id"`
	YearID      string  `json:"yearId"`
	Title       string  `json:"title"`
	Statement   string  `json:"statement"`
	BrandIDs    LinkSet `json:"brandIds"`
	LocationIDs LinkSet `json:"locationIds"`
	Audit
}

func (v *Vision) EntityID() string { return v.ID }
func (v *Vision) SetID(id string)  { v.ID = id }
func (v *Vision) Kind() Kind       { return KindVision }
func (v *Vision) Meta() *Audit     { return &v.Audit }

func (v *Vision) Apply(p Patch) {
	p.Str("yearId", &v.YearID)
	p.Str("title", &v.Title)
	p.Str("statement", &v.Statement)
	p.IDs("brandIds", &v.BrandIDs)
	p.IDs("locationIds", &v.LocationIDs)
}

func (v *Vision) Clone() Entity {
	c := *v
	c.BrandIDs = v.BrandIDs.Clone()
	c.LocationIDs = v.LocationIDs.Clone()
	return &c
}
