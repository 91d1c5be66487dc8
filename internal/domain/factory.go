package domain

// NewEntity returns a zero value of the entity type stored under kind.
// Alias kinds produce a NewRestaurant with the matching category preset.
func NewEntity(kind Kind) (Entity, bool) {
	switch kind {
	case KindYear:
		return &Year{}, true
	case KindVision:
		return &Vision{}, true
	case KindTheme:
		return &Theme{}, true
	case KindInitiative:
		return &Initiative{}, true
	case KindProject:
		return &Project{}, true
	case KindBrand:
		return &Brand{}, true
	case KindLocation:
		return &Location{}, true
	case KindNewRestaurant:
		return &NewRestaurant{}, true
	case KindRestaurantOpening:
		return &NewRestaurant{Category: CategoryNew}, true
	case KindFacelift:
		return &NewRestaurant{Category: CategoryFacelift}, true
	case KindInfluence:
		return &Influence{}, true
	case KindSignal:
		return &Signal{}, true
	}
	return nil, false
}
