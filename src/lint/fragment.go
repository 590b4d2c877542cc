package lint

import "sort"

// NamePrefix namespaces every fragment name this package produces.
const NamePrefix = "lintcompose"

// Plugin references a rule provider by the package the linter imports.
type Plugin struct {
	Package string `json:"package" yaml:"package"`
	Export  string `json:"export,omitempty" yaml:"export,omitempty"`
}

// Fragment is one flat-config entry. The linter applies fragments in order
// and a later fragment wins for any rule it redefines on a matching file.
// Nil fields are unset and never serialized; empty non-nil fields are
// written as [] or {}.
type Fragment struct {
	Name            string            `json:"name,omitempty" yaml:"name,omitempty"`
	Files           []string          `json:"files,omitempty" yaml:"files,omitempty"`
	Ignores         []string          `json:"ignores,omitempty" yaml:"ignores,omitempty"`
	Plugins         map[string]Plugin `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	LanguageOptions map[string]any    `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty"`
	Settings        map[string]any    `json:"settings,omitempty" yaml:"settings,omitempty"`
	Rules           Rules             `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// fragmentWire distinguishes unset from empty: omitempty drops only nil pointers.
type fragmentWire struct {
	Name            string             `json:"name,omitempty" yaml:"name,omitempty"`
	Files           *[]string          `json:"files,omitempty" yaml:"files,omitempty"`
	Ignores         *[]string          `json:"ignores,omitempty" yaml:"ignores,omitempty"`
	Plugins         *map[string]Plugin `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	LanguageOptions *map[string]any    `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty"`
	Settings        *map[string]any    `json:"settings,omitempty" yaml:"settings,omitempty"`
	Rules           *Rules             `json:"rules,omitempty" yaml:"rules,omitempty"`
}

func (f Fragment) wire() fragmentWire {
	w := fragmentWire{Name: f.Name}
	if f.Files != nil {
		w.Files = &f.Files
	}
	if f.Ignores != nil {
		w.Ignores = &f.Ignores
	}
	if f.Plugins != nil {
		w.Plugins = &f.Plugins
	}
	if f.LanguageOptions != nil {
		w.LanguageOptions = &f.LanguageOptions
	}
	if f.Settings != nil {
		w.Settings = &f.Settings
	}
	if f.Rules != nil {
		w.Rules = &f.Rules
	}
	return w
}

func (f Fragment) MarshalJSON() ([]byte, error) {
	return marshalJSON(f.wire())
}

func (f Fragment) MarshalYAML() (any, error) {
	return f.wire(), nil
}

// IsGlobalIgnore reports whether the fragment only carries ignore patterns,
// which the linter treats as excluding files from every other fragment.
func (f Fragment) IsGlobalIgnore() bool {
	return len(f.Ignores) > 0 &&
		f.Files == nil &&
		f.Plugins == nil &&
		f.LanguageOptions == nil &&
		f.Settings == nil &&
		f.Rules == nil
}

// FragmentNames returns the names of fragments in sequence order.
func FragmentNames(fragments []Fragment) []string {
	names := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f.Name != "" {
			names = append(names, f.Name)
		}
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
