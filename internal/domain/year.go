package domain

// Year is the root of the strategy hierarchy; Title is free text, typically a
// year label like "2027".
type Year struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Audit
}

func (y *Year) EntityID() string { return y.ID }
func (y *Year) SetID(id string)  { y.ID = id }
func (y *Year) Kind() Kind       { return KindYear }
func (y *Year) Meta() *Audit     { return &y.Audit }

func (y *Year) Apply(p Patch) {
	p.Str("title", &y.Title)
}

func (y *Year) Clone() Entity {
	c := *y
	return &c
}
