package fragments

// Slot names a placeholder marker inside a boilerplate template.
type Slot string

const (
	SlotFields       Slot = "/* Fields */"
	SlotCreateSchema Slot = "/* Create Schema */"
	SlotUpdateSchema Slot = "/* Update Schema */"
	SlotUpdateFields Slot = "/* Update Fields */"
	SlotUpdateLogic  Slot = "/* Update Logic */"
	SlotListData     Slot = "/* List Data */"
	SlotSingleData   Slot = "/* Single Data */"
)

// AllSlots lists every marker in the order the artifacts consume them.
func AllSlots() []Slot {
	return []Slot{
		SlotFields,
		SlotCreateSchema,
		SlotUpdateSchema,
		SlotUpdateFields,
		SlotUpdateLogic,
		SlotListData,
		SlotSingleData,
	}
}

// Marker returns the literal text searched for in templates.
func (s Slot) Marker() string {
	return string(s)
}

// Set maps slots to generated fragment text.
type Set map[Slot]string

// Pick returns a subset containing only the requested slots.
func (s Set) Pick(slots ...Slot) Set {
	out := make(Set, len(slots))
	for _, slot := range slots {
		out[slot] = s[slot]
	}
	return out
}
