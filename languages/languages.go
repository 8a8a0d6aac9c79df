// Package languages carries the provider's language-code table. Translation
// endpoints speak integer codes while TTS speaks BCP-47 tags; this table
// bridges the two and gives the CLI something human-readable to print.
package languages

import (
	_ "embed"
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

//go:embed languages.yaml
var rawTable []byte

// Language is one provider language entry.
type Language struct {
	Code int    `yaml:"code"`
	Name string `yaml:"name"`
	Tag  string `yaml:"tag"`
}

type table struct {
	Languages []Language `yaml:"languages"`
}

var (
	all    []Language
	byCode map[int]Language
	byName map[string]Language
)

func init() {
	var t table
	if err := yaml.Unmarshal(rawTable, &t); err != nil {
		panic(fmt.Sprintf("languages: embedded table is invalid: %v", err))
	}
	all = t.Languages
	byCode = make(map[int]Language, len(all))
	byName = make(map[string]Language, len(all))
	for _, l := range all {
		byCode[l.Code] = l
		byName[strings.ToLower(l.Name)] = l
		byName[strings.ToLower(l.Tag)] = l
	}
}

// All returns every known language in table order.
func All() []Language {
	out := make([]Language, len(all))
	copy(out, all)
	return out
}

// ByCode looks up a language by its provider integer code.
func ByCode(code int) (Language, bool) {
	l, ok := byCode[code]
	return l, ok
}

// Lookup resolves a language from a name or BCP-47 tag, case-insensitively.
func Lookup(nameOrTag string) (Language, bool) {
	l, ok := byName[strings.ToLower(strings.TrimSpace(nameOrTag))]
	return l, ok
}
