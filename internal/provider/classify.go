package provider

import "regexp"

// Rule maps a build-kit label pattern to a provider.
type Rule struct {
	Pattern *regexp.Regexp
	ID      ID
}

// DefaultRules returns the classification rules in priority order.
// First match wins, so the order must not change: the 64-bit patterns sit
// ahead of their 32-bit siblings and a bare "cygwin" falls through to the
// 32-bit rule.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`(?i)msys2?`), MSYS2},
		{regexp.MustCompile(`(?i)ucrt\s*64`), UCRT64},
		{regexp.MustCompile(`(?i)mingw\s*64`), MinGW64},
		{regexp.MustCompile(`(?i)mingw\s*32`), MinGW32},
		{regexp.MustCompile(`(?i)clang\s*64`), Clang64},
		{regexp.MustCompile(`(?i)clang\s*32`), Clang32},
		{regexp.MustCompile(`(?i)cygwin\s*64`), Cygwin64},
		{regexp.MustCompile(`(?i)cygwin(\s*32)?`), Cygwin32},
	}
}

// LegacyRules returns DefaultRules without the UCRT and Clang subsystems.
func LegacyRules() []Rule {
	var rules []Rule
	for _, r := range DefaultRules() {
		if r.ID.Family() == FamilyLLVM || r.ID == UCRT64 {
			continue
		}
		rules = append(rules, r)
	}
	return rules
}

// Classify returns the provider of the first rule matching label.
// An empty label or a label no rule matches yields None.
func Classify(label string, rules []Rule) ID {
	if label == "" {
		return None
	}
	for _, r := range rules {
		if r.Pattern.MatchString(label) {
			return r.ID
		}
	}
	return None
}
