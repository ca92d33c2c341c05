package normalizer

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	ErrNoNamespaces        = errors.New("normalizer: namespace list is empty")
	ErrDuplicateNamespaces = errors.New("normalizer: namespace list contains duplicates")
)

// questionNumberPattern grabs the first run of digits in a filename.
var questionNumberPattern = regexp.MustCompile(`\d+`)

// ruleSet holds the per-namespace rewrite machinery, compiled once at
// service construction. Pattern semantics mirror the heuristics the question
// bank was generated with: no smarter matching, to keep output identical.
type ruleSet struct {
	namespaces []string
	index      map[string]int
	markers    []*regexp.Regexp
	shortFlag  []*regexp.Regexp
	longFlag   []*regexp.Regexp
}

func newRuleSet(namespaces []string) (*ruleSet, error) {
	if len(namespaces) == 0 {
		return nil, ErrNoNamespaces
	}

	rs := &ruleSet{
		namespaces: append([]string(nil), namespaces...),
		index:      make(map[string]int, len(namespaces)),
		markers:    make([]*regexp.Regexp, len(namespaces)),
		shortFlag:  make([]*regexp.Regexp, len(namespaces)),
		longFlag:   make([]*regexp.Regexp, len(namespaces)),
	}

	for i, ns := range namespaces {
		if _, dup := rs.index[ns]; dup {
			return nil, ErrDuplicateNamespaces
		}
		rs.index[ns] = i

		quoted := regexp.QuoteMeta(ns)
		rs.markers[i] = regexp.MustCompile(`\|\|` + quoted + `\|\|`)
		rs.shortFlag[i] = regexp.MustCompile(`-n\s+` + quoted + `\b`)
		rs.longFlag[i] = regexp.MustCompile(`--namespace\s+` + quoted + `\b`)
	}
	return rs, nil
}

// assign maps a question number onto its namespace.
func (r *ruleSet) assign(number int) string {
	return r.namespaces[number%len(r.namespaces)]
}

// eligible reports whether a single-element namespaces entry may be
// reassigned. The empty string counts as a placeholder; any name outside the
// recognized set marks the file as custom and must be left alone.
func (r *ruleSet) eligible(current string) bool {
	if current == "" {
		return true
	}
	_, ok := r.index[current]
	return ok
}

// rewriteMarkers replaces every ||other|| delimiter referencing a recognized
// namespace other than assigned.
func (r *ruleSet) rewriteMarkers(text, assigned string) string {
	replacement := "||" + assigned + "||"
	for i, ns := range r.namespaces {
		if ns == assigned {
			continue
		}
		text = r.markers[i].ReplaceAllLiteralString(text, replacement)
	}
	return text
}

// rewriteCommand replaces -n and --namespace flags that reference a
// recognized namespace other than assigned. Every occurrence is rewritten.
func (r *ruleSet) rewriteCommand(text, assigned string) string {
	for i, ns := range r.namespaces {
		if ns == assigned {
			continue
		}
		text = r.shortFlag[i].ReplaceAllLiteralString(text, "-n "+assigned)
		text = r.longFlag[i].ReplaceAllLiteralString(text, "--namespace "+assigned)
	}
	return text
}

// questionNumber extracts the first digit run from a filename. Digit runs
// that overflow int are treated the same as no number: the file is skipped
// and counted as failed.
func questionNumber(fileName string) (int, bool) {
	match := questionNumberPattern.FindString(fileName)
	if match == "" {
		return 0, false
	}
	number, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return number, true
}
