package domain

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Audit
}

func (b *Brand) EntityID() string { return b.ID }
func (b *Brand) SetID(id string)  { b.ID = id }
func (b *Brand) Kind() Kind       { return KindBrand }
func (b *Brand) Meta() *Audit     { return &b.Audit }

func (b *Brand) Apply(p Patch) {
	p.Str("name", &b.Name)
}

func (b *Brand) Clone() Entity {
	c := *b
	return &c
}
