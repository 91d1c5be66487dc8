package domain

// LinkSet is an ordered-unique sequence of entity ids, used for every
// many-to-many link field. Add/Remove/Toggle are idempotent: adding a present
// id or removing an absent one is a no-op, never an error.
type LinkSet []string

// Has reports whether id is a member.
func (s LinkSet) Has(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add returns the set with id appended, unless already present.
func (s LinkSet) Add(id string) LinkSet {
	if id == "" || s.Has(id) {
		return s
	}
	out := make(LinkSet, len(s), len(s)+1)
	copy(out, s)
	return append(out, id)
}

// Remove returns the set without id, preserving order.
func (s LinkSet) Remove(id string) LinkSet {
	if !s.Has(id) {
		return s
	}
	out := make(LinkSet, 0, len(s)-1)
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Toggle flips membership: present ids are removed, absent ids appended.
func (s LinkSet) Toggle(id string) LinkSet {
	if s.Has(id) {
		return s.Remove(id)
	}
	return s.Add(id)
}

// Union returns the set extended with every id from other that it lacks.
func (s LinkSet) Union(other LinkSet) LinkSet {
	out := s.Clone()
	for _, id := range other {
		out = out.Add(id)
	}
	return out
}

// Clone returns an independent copy.
func (s LinkSet) Clone() LinkSet {
	if s == nil {
		return nil
	}
	out := make(LinkSet, len(s))
	copy(out, s)
	return out
}
