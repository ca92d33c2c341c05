package extractor

import (
	"regexp"
	"sort"
)

// The detection heuristics are intentionally approximate, tuned against the
// upstream exercise collections. Pattern semantics (word boundaries, case
// rules, fallback order) must stay stable so regenerated records remain
// compatible with existing question banks.
var (
	namespaceFlagPattern = regexp.MustCompile(`-n\s+([a-z0-9-]+)`)
	namespaceWordPattern = regexp.MustCompile(`namespace\s+([a-z0-9-]+)`)
)

// detectNamespaces scans a section body for namespace hints. `-n <name>`
// flags win; `namespace <name>` phrases are only consulted when no flag is
// present. First occurrence order is preserved, duplicates dropped.
func detectNamespaces(body []byte, fallback string) []string {
	matches := namespaceFlagPattern.FindAllSubmatch(body, -1)
	if len(matches) == 0 {
		matches = namespaceWordPattern.FindAllSubmatch(body, -1)
	}

	seen := map[string]struct{}{}
	namespaces := make([]string, 0, len(matches))
	for _, match := range matches {
		name := string(match[1])
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		namespaces = append(namespaces, name)
	}

	if len(namespaces) == 0 {
		return []string{fallback}
	}
	return namespaces
}

type resourceMatcher struct {
	pattern   *regexp.Regexp
	canonical string
}

// compileResourceMatchers turns the alias table into whole-word,
// case-insensitive matchers. Aliases are compiled in sorted order so matcher
// iteration is deterministic.
func compileResourceMatchers(aliases map[string]string) []resourceMatcher {
	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)

	matchers := make([]resourceMatcher, 0, len(keys))
	for _, alias := range keys {
		matchers = append(matchers, resourceMatcher{
			pattern:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(alias) + `\b`),
			canonical: aliases[alias],
		})
	}
	return matchers
}

// detectResources reports the canonical resource types whose aliases appear
// in the body, sorted alphabetically.
func detectResources(matchers []resourceMatcher, body []byte) []string {
	found := map[string]struct{}{}
	for _, m := range matchers {
		if m.pattern.Match(body) {
			found[m.canonical] = struct{}{}
		}
	}

	resources := make([]string, 0, len(found))
	for name := range found {
		resources = append(resources, name)
	}
	sort.Strings(resources)
	return resources
}
