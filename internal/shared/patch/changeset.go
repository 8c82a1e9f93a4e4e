package patch

// Change is one typed field assignment of an update.
type Change interface {
	Field() string
}

// ChangeSet is an ordered set of changes keyed by field name.
// An empty set means no scalar column changes.
type ChangeSet[C Change] struct {
	changes []C
}

// NewChangeSet builds a set from changes; later changes to the same field
// replace earlier ones.
func NewChangeSet[C Change](changes ...C) ChangeSet[C] {
	var cs ChangeSet[C]
	for _, c := range changes {
		cs.Put(c)
	}
	return cs
}

// Put adds c, replacing an existing change of the same field in place.
func (cs *ChangeSet[C]) Put(c C) {
	for i, existing := range cs.changes {
		if existing.Field() == c.Field() {
			cs.changes[i] = c
			return
		}
	}
	cs.changes = append(cs.changes, c)
}

// Lookup returns the change for field, if any.
func (cs ChangeSet[C]) Lookup(field string) (C, bool) {
	for _, c := range cs.changes {
		if c.Field() == field {
			return c, true
		}
	}
	var zero C
	return zero, false
}

// Changes returns a copy of the changes in insertion order.
func (cs ChangeSet[C]) Changes() []C {
	out := make([]C, len(cs.changes))
	copy(out, cs.changes)
	return out
}

// Fields lists the field names in insertion order.
func (cs ChangeSet[C]) Fields() []string {
	fields := make([]string, 0, len(cs.changes))
	for _, c := range cs.changes {
		fields = append(fields, c.Field())
	}
	return fields
}

func (cs ChangeSet[C]) Len() int { return len(cs.changes) }

func (cs ChangeSet[C]) IsEmpty() bool { return len(cs.changes) == 0 }
