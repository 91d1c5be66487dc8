// Package testutil provides entity fixtures and fake gateways for tests.
package testutil

import (
	"time"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/store"
	"github.com/google/uuid"
)

func stamp() domain.Audit {
	now := time.Now().UTC()
	return domain.Audit{CreatedAt: now, UpdatedAt: now}
}

func NewTestYear(title string) *domain.Year {
	return &domain.Year{ID: uuid.New().String(), Title: title, Audit: stamp()}
}

func NewTestVision(yearID, title string) *domain.Vision {
	return &domain.Vision{ID: uuid.New().String(), YearID: yearID, Title: title, Audit: stamp()}
}

// Theme options
type ThemeOption func(*domain.Theme)

func WithPriority(p domain.Priority) ThemeOption {
	return func(t *domain.Theme) {
		t.Priority = p
	}
}

func WithThemeBrands(ids ...string) ThemeOption {
	return func(t *domain.Theme) {
		t.BrandIDs = domain.LinkSet(ids)
	}
}

func NewTestTheme(visionID, title string, opts ...ThemeOption) *domain.Theme {
	t := &domain.Theme{
		ID:       uuid.New().String(),
		VisionID: visionID,
		Title:    title,
		Priority: domain.PriorityMedium,
		Audit:    stamp(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestInitiative(themeID, title string) *domain.Initiative {
	return &domain.Initiative{
		ID:      uuid.New().String(),
		ThemeID: themeID,
		Title:   title,
		Status:  domain.InitiativeIdea,
		Audit:   stamp(),
	}
}

// Project options
type ProjectOption func(*domain.Project)

func WithInitiativeID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.InitiativeID = &id
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(themeID, title string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:      uuid.New().String(),
		ThemeID: themeID,
		Title:   title,
		Status:  domain.ProjectIdea,
		Audit:   stamp(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestBrand(name string) *domain.Brand {
	return &domain.Brand{ID: uuid.New().String(), Name: name, Audit: stamp()}
}

func NewTestLocation(brandID, name string) *domain.Location {
	return &domain.Location{ID: uuid.New().String(), BrandID: brandID, Name: name, Audit: stamp()}
}

// Restaurant options
type RestaurantOption func(*domain.NewRestaurant)

func WithPhase(p domain.RestaurantPhase) RestaurantOption {
	return func(r *domain.NewRestaurant) {
		r.Phase = p
	}
}

func WithFacelift(locationID string) RestaurantOption {
	return func(r *domain.NewRestaurant) {
		r.Category = domain.CategoryFacelift
		r.LocationID = &locationID
		r.Phase = domain.PhaseClosure
		r.OpeningDate = nil
		r.Seats = 0
	}
}

func NewTestRestaurant(name string, opts ...RestaurantOption) *domain.NewRestaurant {
	opening := time.Now().UTC().AddDate(0, 6, 0)
	r := &domain.NewRestaurant{
		ID:          uuid.New().String(),
		Category:    domain.CategoryNew,
		Name:        name,
		Phase:       domain.PhaseScouting,
		OpeningDate: &opening,
		Seats:       80,
		Audit:       stamp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewTestInfluence(title string, typ domain.InfluenceType) *domain.Influence {
	return &domain.Influence{ID: uuid.New().String(), Title: title, Type: typ, Audit: stamp()}
}

// Signal options
type SignalOption func(*domain.Signal)

func WithSignalStatus(s domain.SignalStatus) SignalOption {
	return func(sg *domain.Signal) {
		sg.Status = s
	}
}

func WithSignalThemes(ids ...string) SignalOption {
	return func(sg *domain.Signal) {
		sg.ThemeIDs = domain.LinkSet(ids)
	}
}

func WithSignalProject(id string) SignalOption {
	return func(sg *domain.Signal) {
		sg.Status = domain.SignalConverted
		sg.ProjectID = id
	}
}

func NewTestSignal(title string, opts ...SignalOption) *domain.Signal {
	sg := &domain.Signal{
		ID:     uuid.New().String(),
		Title:  title,
		Status: domain.SignalInbox,
		Audit:  stamp(),
	}
	for _, opt := range opts {
		opt(sg)
	}
	return sg
}

// SeedStore builds a store holding the given entities, grouped by kind.
func SeedStore(entities ...domain.Entity) *store.Store {
	s := store.New()
	byKind := make(map[domain.Kind][]domain.Entity)
	for _, e := range entities {
		byKind[e.Kind()] = append(byKind[e.Kind()], e)
	}
	for kind, coll := range byKind {
		s.ReplaceCollection(kind, coll)
	}
	return s
}
