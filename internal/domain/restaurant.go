package domain

import "time"

// NewRestaurant is a tagged union: Category selects which field set applies.
// "new" restaurants carry opening fields (OpeningDate, Seats); "facelift"
// restaurants reference an existing Location and carry closure/reconstruction
// fields. Phase values are category-scoped, see ValidPhases.
type NewRestaurant struct {
	ID       string             `json:"id"`
	Category RestaurantCategory `json:"category"`
	Name     string             `json:"name"`
	BrandIDs LinkSet            `json:"brandIds"`
	Phase    RestaurantPhase    `json:"phase"`

	// Category "new" only.
	OpeningDate *time.Time `json:"openingDate"`
	Seats       int        `json:"seats"`

	// Category "facelift" only.
	LocationID    *string    `json:"locationId"`
	ClosureDate   *time.Time `json:"closureDate"`
	ReopeningDate *time.Time `json:"reopeningDate"`

	Audit
}

func (r *NewRestaurant) EntityID() string { return r.ID }
func (r *NewRestaurant) SetID(id string)  { r.ID = id }
func (r *NewRestaurant) Kind() Kind       { return KindNewRestaurant }
func (r *NewRestaurant) Meta() *Audit     { return &r.Audit }

func (r *NewRestaurant) Apply(p Patch) {
	p.Str("category", (*string)(&r.Category))
	p.Str("name", &r.Name)
	p.IDs("brandIds", &r.BrandIDs)
	p.Str("phase", (*string)(&r.Phase))
	p.Time("openingDate", &r.OpeningDate)
	p.Int("seats", &r.Seats)
	p.StrPtr("locationId", &r.LocationID)
	p.Time("closureDate", &r.ClosureDate)
	p.Time("reopeningDate", &r.ReopeningDate)
}

func (r *NewRestaurant) Clone() Entity {
	c := *r
	c.BrandIDs = r.BrandIDs.Clone()
	if r.LocationID != nil {
		v := *r.LocationID
		c.LocationID = &v
	}
	if r.OpeningDate != nil {
		v := *r.OpeningDate
		c.OpeningDate = &v
	}
	if r.ClosureDate != nil {
		v := *r.ClosureDate
		c.ClosureDate = &v
	}
	if r.ReopeningDate != nil {
		v := *r.ReopeningDate
		c.ReopeningDate = &v
	}
	return &c
}
