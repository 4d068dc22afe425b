package fragments

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

const (
	schemaIndent      = "    "
	updateLogicIndent = "  "
	listIndent        = "          "
	singleIndent      = "        "

	entrySeparator = ",\n"
)

// Build computes every slot fragment for the descriptor.
func Build(d resource.Descriptor) Set {
	return Set{
		SlotFields:       SchemaFields(d),
		SlotCreateSchema: CreateSchema(d),
		SlotUpdateSchema: UpdateSchema(d),
		SlotUpdateFields: UpdateFields(d),
		SlotUpdateLogic:  UpdateLogic(d),
		SlotListData:     ListData(d),
		SlotSingleData:   SingleData(d),
	}
}

// SchemaFields renders the storage model field clauses, e.g.
// `title: { type: String, required: true }`.
func SchemaFields(d resource.Descriptor) string {
	return joinEntries(d.Fields, schemaIndent, entrySeparator, func(f resource.Field) string {
		if f.Required {
			return fmt.Sprintf("%s: { type: %s, required: true }", f.Key, f.Type)
		}
		return fmt.Sprintf("%s: { type: %s, default: %s }", f.Key, f.Type, DefaultLiteral(f))
	})
}

// CreateSchema renders the Joi rules for the create payload.
func CreateSchema(d resource.Descriptor) string {
	return joinEntries(d.Fields, schemaIndent, entrySeparator, func(f resource.Field) string {
		modifier := "optional()"
		if f.Required {
			modifier = "required()"
		}
		return fmt.Sprintf("%s: %s.%s", f.Key, validationRule(f.Type), modifier)
	})
}

// UpdateSchema renders the Joi rules for the update payload. Every field is
// optional on update; optional fields additionally accept an empty string.
func UpdateSchema(d resource.Descriptor) string {
	return joinEntries(d.Fields, schemaIndent, entrySeparator, func(f resource.Field) string {
		modifier := `optional().allow("")`
		if f.Required {
			modifier = "optional()"
		}
		return fmt.Sprintf("%s: %s.%s", f.Key, validationRule(f.Type), modifier)
	})
}

// UpdateFields renders the destructuring list used by the update handler.
func UpdateFields(d resource.Descriptor) string {
	keys := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		keys[i] = f.Key
	}
	return strings.Join(keys, ", ")
}

// UpdateLogic renders the conditional assignments applied to the stored
// instance during an update.
func UpdateLogic(d resource.Descriptor) string {
	lower := d.Names().Lower
	return joinEntries(d.Fields, updateLogicIndent, entrySeparator, func(f resource.Field) string {
		return fmt.Sprintf("%s.%s = %s ? %s : %s.%s", lower, f.Key, UpdateCondition(f), f.Key, lower, f.Key)
	})
}

// ListData renders the projection used for every element of a list response.
// Identity and timestamps bracket the declared fields.
func ListData(d resource.Descriptor) string {
	lower := d.Names().Lower

	var b strings.Builder
	fmt.Fprintf(&b, "_id: %s._id,\n", lower)
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "%s%s: %s.%s,\n", listIndent, f.Key, lower, f.Key)
	}
	fmt.Fprintf(&b, "%screatedAt: %s.createdAt,\n", listIndent, lower)
	fmt.Fprintf(&b, "%supdatedAt: %s.updatedAt", listIndent, lower)
	return b.String()
}

// SingleData renders the projection for a single-document response. The
// template supplies identity and timestamps around it, so every entry keeps
// its trailing comma.
func SingleData(d resource.Descriptor) string {
	return joinEntries(d.Fields, singleIndent, "\n", func(f resource.Field) string {
		return fmt.Sprintf("%s: data.%s,", f.Key, f.Key)
	})
}

func validationRule(t resource.FieldType) string {
	return fmt.Sprintf("Joi.%s()", t.Lower())
}

func joinEntries(fields []resource.Field, indent, sep string, entry func(resource.Field) string) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(sep)
			b.WriteString(indent)
		}
		b.WriteString(entry(f))
	}
	return b.String()
}
