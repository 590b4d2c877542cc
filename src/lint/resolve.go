package lint

// Effective is the configuration the linter ends up applying to one file.
type Effective struct {
	Path    string
	Ignored bool

	// Applied lists the names of matching fragments in application order.
	Applied []string

	Plugins         map[string]Plugin
	LanguageOptions map[string]any
	Settings        map[string]any
	Rules           Rules

	// Sources maps each rule to the fragment that set it last.
	Sources map[string]string
}

// Resolve applies fragments to path left to right, the way the linter does:
// a fragment matches when it has no Files or one of its Files globs matches,
// and none of its Ignores do. Fragments holding only Ignores exclude the
// path from everything.
func Resolve(fragments []Fragment, path string) Effective {
	path = normalizeSlashPath(path)
	eff := Effective{
		Path:            path,
		Plugins:         map[string]Plugin{},
		LanguageOptions: map[string]any{},
		Settings:        map[string]any{},
		Rules:           Rules{},
		Sources:         map[string]string{},
	}

	for _, f := range fragments {
		if f.IsGlobalIgnore() && matchesAny(f.Ignores, path) {
			eff.Ignored = true
			eff.Applied = nil
			eff.Rules = Rules{}
			eff.Sources = map[string]string{}
			return eff
		}
	}

	for _, f := range fragments {
		if f.IsGlobalIgnore() || !f.matches(path) {
			continue
		}
		if f.Name != "" {
			eff.Applied = append(eff.Applied, f.Name)
		}
		for ns, p := range f.Plugins {
			eff.Plugins[ns] = p
		}
		eff.LanguageOptions = deepMerge(eff.LanguageOptions, f.LanguageOptions)
		eff.Settings = deepMerge(eff.Settings, f.Settings)
		for name, e := range f.Rules {
			prev, had := eff.Rules[name]
			eff.Rules[name] = mergeEntry(prev, e, had)
			eff.Sources[name] = f.Name
		}
	}
	return eff
}

func (f Fragment) matches(path string) bool {
	if f.Files != nil {
		matched := false
		for _, pattern := range f.Files {
			if MatchGlob(normalizeSlashPath(pattern), path) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return !matchesAny(f.Ignores, path)
}

// mergeEntry follows the linter: a later entry with only a severity keeps
// the earlier entry's options; one with options replaces them.
func mergeEntry(prev, next RuleEntry, hadPrev bool) RuleEntry {
	if hadPrev && len(next.Options) == 0 {
		return RuleEntry{Severity: next.Severity, Options: prev.Options}
	}
	return next
}

// deepMerge returns dst with src layered on; nested maps merge, everything
// else is replaced.
func deepMerge(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := out[k].(map[string]any)
		if srcIsMap && dstIsMap {
			out[k] = deepMerge(dstMap, srcMap)
			continue
		}
		out[k] = v
	}
	return out
}
