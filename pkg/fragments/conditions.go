package fragments

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

var identifierPath = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)

// UpdateCondition returns the expression deciding whether an inbound value
// replaces the stored one. Falsy values that are still meaningful (empty
// string, zero, false) must pass, otherwise a client could never reset a
// field to its zero value.
func UpdateCondition(f resource.Field) string {
	key := f.Key
	switch f.Type {
	case resource.FieldTypeNumber:
		return fmt.Sprintf("%s || %s === 0", key, key)
	case resource.FieldTypeBoolean:
		return fmt.Sprintf("%s || %s === false", key, key)
	case resource.FieldTypeString:
		return stringCondition(f)
	default:
		// Date and unrecognised tags follow the string rule.
		return stringCondition(f)
	}
}

func stringCondition(f resource.Field) string {
	if f.Required {
		return f.Key
	}
	return fmt.Sprintf(`%s || %s === ""`, f.Key, f.Key)
}

// DefaultLiteral renders a field's default value as a JavaScript literal.
// Strings are quoted, except that Date fields may reference an identifier
// such as `Date.now`.
func DefaultLiteral(f resource.Field) string {
	switch v := f.DefaultValue.(type) {
	case nil:
		return "null"
	case string:
		if f.Type == resource.FieldTypeDate && identifierPath.MatchString(v) {
			return v
		}
		return quote(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case json.Number:
		return v.String()
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return quote(fmt.Sprint(v))
		}
		return string(payload)
	}
}

func quote(s string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
