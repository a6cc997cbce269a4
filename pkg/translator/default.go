package translator

import (
	"maps"
	"slices"
	"strings"
)

// Default translates from a fixed in-memory table and needs no catalogs.
type Default struct {
	messages map[string]string
}

// NewDefault returns a Default translator with the built-in English messages.
// Entries in overrides replace or extend the built-in table.
func NewDefault(overrides ...map[string]string) *Default {
	messages := maps.Clone(defaultMessages)
	for _, o := range overrides {
		maps.Copy(messages, o)
	}
	return &Default{messages: messages}
}

// Translate looks up key and substitutes %name% placeholders from params.
// An unknown key is returned unchanged.
func (d *Default) Translate(key string, params Params) string {
	tmpl, ok := d.messages[key]
	if !ok {
		return key
	}
	if len(params) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, len(params)*2)
	for _, name := range slices.Sorted(maps.Keys(params)) {
		pairs = append(pairs, "%"+name+"%", params[name])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
