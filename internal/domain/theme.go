package domain

// Theme belongs to a Vision. Influences link back to themes from their own
// ConnectedThemeIDs; the theme itself carries no influence list.
type Theme struct {
	ID          string   `json:"id"`
	VisionID    string   `json:"visionId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	BrandIDs    LinkSet  `json:"brandIds"`
	LocationIDs LinkSet  `json:"locationIds"`
	Audit
}

func (t *Theme) EntityID() string { return t.ID }
func (t *Theme) SetID(id string)  { t.ID = id }
func (t *Theme) Kind() Kind       { return KindTheme }
func (t *Theme) Meta() *Audit     { return &t.Audit }

func (t *Theme) Apply(p Patch) {
	p.Str("visionId", &t.VisionID)
	p.Str("title", &t.Title)
	p.Str("description", &t.Description)
	p.Str("priority", (*string)(&t.Priority))
	p.IDs("brandIds", &t.BrandIDs)
	p.IDs("locationIds", &t.LocationIDs)
}

func (t *Theme) Clone() Entity {
	c := *t
	c.BrandIDs = t.BrandIDs.Clone()
	c.LocationIDs = t.LocationIDs.Clone()
	return &c
}
