package domain

// Kind names a collection in the entity store. Kind values double as the
// collection segment in primary-store URLs.
type Kind string

const (
	KindYear           Kind = "years"
	KindVision         Kind = "visions"
	KindTheme          Kind = "themes"
	KindInitiative     Kind = "initiatives"
	KindProject        Kind = "projects"
	KindBrand          Kind = "brands"
	KindLocation       Kind = "locations"
	KindNewRestaurant  Kind = "new_restaurants"
	KindInfluence      Kind = "influences"
	KindSignal         Kind = "signals"
)

// Alias kinds: restaurant openings and facelifts are two logical kinds that
// share the new_restaurants collection, disambiguated by Category.
const (
	KindRestaurantOpening Kind = "restaurant_openings"
	KindFacelift          Kind = "facelifts"
)

// AllKinds lists every physical collection, in display order.
var AllKinds = []Kind{
	KindYear, KindVision, KindTheme, KindInitiative, KindProject,
	KindBrand, KindLocation, KindNewRestaurant, KindInfluence, KindSignal,
}

// ResolveKind maps alias kinds onto their physical collection.
func ResolveKind(k Kind) Kind {
	switch k {
	case KindRestaurantOpening, KindFacelift:
		return KindNewRestaurant
	default:
		return k
	}
}

// ValidKind reports whether k names a physical collection or a known alias.
func ValidKind(k Kind) bool {
	switch ResolveKind(k) {
	case KindYear, KindVision, KindTheme, KindInitiative, KindProject,
		KindBrand, KindLocation, KindNewRestaurant, KindInfluence, KindSignal:
		return true
	}
	return false
}
