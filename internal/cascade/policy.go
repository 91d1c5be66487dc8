// Package cascade computes the transitive set of dependent entities removed
// alongside a deletion target, before the entity store mutates. Ownership
// chains cascade (Year→Vision→Theme→Initiative/Project, Brand→Location);
// cross-entity link sets do not: deleting an Influence leaves its id dangling
// in any signal or theme view, and read paths filter unresolvable ids.
package cascade

import (
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/store"
)

// Ref identifies one entity scheduled for removal.
type Ref struct {
	Kind domain.Kind
	ID   string
}

// Dependents returns every entity transitively owned by (kind, id), in
// top-down order. The target itself is not included.
func Dependents(s *store.Store, kind domain.Kind, id string) []Ref {
	var out []Ref
	switch domain.ResolveKind(kind) {
	case domain.KindYear:
		for _, v := range childVisions(s, id) {
			out = append(out, Ref{domain.KindVision, v.ID})
			out = append(out, themeSubtree(s, v.ID)...)
		}
	case domain.KindVision:
		out = themeSubtree(s, id)
	case domain.KindTheme:
		out = themeChildren(s, id)
	case domain.KindBrand:
		for _, e := range s.List(domain.KindLocation) {
			if loc := e.(*domain.Location); loc.BrandID == id {
				out = append(out, Ref{domain.KindLocation, loc.ID})
			}
		}
	}
	return out
}

// themeSubtree returns every theme under the vision plus each theme's
// initiatives and projects.
func themeSubtree(s *store.Store, visionID string) []Ref {
	var out []Ref
	for _, e := range s.List(domain.KindTheme) {
		if t := e.(*domain.Theme); t.VisionID == visionID {
			out = append(out, Ref{domain.KindTheme, t.ID})
			out = append(out, themeChildren(s, t.ID)...)
		}
	}
	return out
}

// themeChildren returns the initiatives and projects owned by a theme.
// Initiatives cascade along with projects: an initiative orphaned by its
// theme's removal is deleted, not left parentless.
func themeChildren(s *store.Store, themeID string) []Ref {
	var out []Ref
	for _, e := range s.List(domain.KindInitiative) {
		if i := e.(*domain.Initiative); i.ThemeID == themeID {
			out = append(out, Ref{domain.KindInitiative, i.ID})
		}
	}
	for _, e := range s.List(domain.KindProject) {
		if p := e.(*domain.Project); p.ThemeID == themeID {
			out = append(out, Ref{domain.KindProject, p.ID})
		}
	}
	return out
}

func childVisions(s *store.Store, yearID string) []*domain.Vision {
	var out []*domain.Vision
	for _, e := range s.List(domain.KindVision) {
		if v := e.(*domain.Vision); v.YearID == yearID {
			out = append(out, v)
		}
	}
	return out
}
