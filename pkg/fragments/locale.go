package fragments

import (
	"encoding/json"
	"html"
	"strings"
	"sync"

	"github.com/iancoleman/orderedmap"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// LocaleMessages returns the five message keys for the resource in their
// fixed order. Overrides from the descriptor are stripped of markup; one that
// is empty afterwards falls back to the default text.
func LocaleMessages(d resource.Descriptor) *orderedmap.OrderedMap {
	names := d.Names()
	defaults := map[string]string{
		resource.MessageCreated:  names.Name + " created.",
		resource.MessageNotFound: names.Name + " not found with the id of",
		resource.MessageFound:    names.Name + " found.",
		resource.MessageUpdated:  names.Name + " updated.",
		resource.MessageDeleted:  names.Name + " deleted.",
	}

	messages := orderedmap.New()
	for _, key := range resource.MessageKeys() {
		text := defaults[key]
		if override, ok := d.Messages[key]; ok {
			if clean := sanitizeMessage(override); clean != "" {
				text = clean
			}
		}
		messages.Set(messageKey(names, key), text)
	}
	return messages
}

func messageKey(names resource.Names, key string) string {
	if key == resource.MessageNotFound {
		return key
	}
	return names.Lower + strings.ToUpper(key[:1]) + key[1:]
}

// LocaleSectionKey returns the top-level key the resource occupies in every
// locale file.
func LocaleSectionKey(d resource.Descriptor) string {
	return d.Names().Plural
}

// LocaleEntry returns the section keyed by the plural resource name. The
// same entry is used for every locale; no translation happens here.
func LocaleEntry(d resource.Descriptor) *orderedmap.OrderedMap {
	entry := orderedmap.New()
	entry.Set(LocaleSectionKey(d), *LocaleMessages(d))
	return entry
}

// LocaleEntryText renders LocaleEntry as indented JSON.
func LocaleEntryText(d resource.Descriptor) (string, error) {
	payload, err := json.MarshalIndent(LocaleEntry(d), "", "  ")
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// sanitizeMessage strips every tag and returns plain text; the policy's
// entity escaping is undone since locale files hold text, not HTML.
func sanitizeMessage(raw string) string {
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(messagePolicy.Sanitize(raw)))
}
