package model

// Collection is the stored document: every pin in insertion order.
type Collection []Pin

// Append adds p and drops the oldest entries so at most limit pins remain.
// A limit of zero or less disables trimming.
func (c Collection) Append(p Pin, limit int) Collection {
	c = append(c, p)
	if limit > 0 && len(c) > limit {
		trimmed := make(Collection, limit)
		copy(trimmed, c[len(c)-limit:])

		return trimmed
	}

	return c
}
