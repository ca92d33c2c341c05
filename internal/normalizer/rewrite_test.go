package normalizer

import "testing"

var planetNamespaces = []string{"saturn", "venus", "pluto", "mars", "mercury", "jupiter", "uranus", "neptune"}

func testRules(t *testing.T) *ruleSet {
	t.Helper()
	rules, err := newRuleSet(planetNamespaces)
	if err != nil {
		t.Fatalf("newRuleSet: %v", err)
	}
	return rules
}

func TestAssignWrapsAroundList(t *testing.T) {
	rules := testRules(t)

	cases := []struct {
		number int
		want   string
	}{
		{0, "saturn"},
		{1, "venus"},
		{7, "neptune"},
		{8, "saturn"},
		{16, "saturn"},
		{21, "jupiter"},
	}
	for _, tc := range cases {
		if got := rules.assign(tc.number); got != tc.want {
			t.Fatalf("assign(%d): expected %q, got %q", tc.number, tc.want, got)
		}
	}
}

func TestEligibleGuard(t *testing.T) {
	rules := testRules(t)

	if !rules.eligible("") {
		t.Fatal("empty namespace must be eligible for assignment")
	}
	if !rules.eligible("pluto") {
		t.Fatal("recognized namespace must be eligible")
	}
	if rules.eligible("payments") {
		t.Fatal("custom namespace must not be eligible")
	}
}

func TestRewriteMarkersReplacesOtherNamespaces(t *testing.T) {
	rules := testRules(t)

	got := rules.rewriteMarkers("Deploy into ||venus|| then check ||mars|| and ||saturn||.", "saturn")
	want := "Deploy into ||saturn|| then check ||saturn|| and ||saturn||."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRewriteMarkersIgnoresUnrecognizedNames(t *testing.T) {
	rules := testRules(t)

	input := "Work in ||payments|| please."
	if got := rules.rewriteMarkers(input, "saturn"); got != input {
		t.Fatalf("expected unrecognized marker untouched, got %q", got)
	}
}

func TestRewriteCommandShortAndLongFlags(t *testing.T) {
	rules := testRules(t)

	got := rules.rewriteCommand("kubectl get pods -n venus && kubectl get svc --namespace mars", "saturn")
	want := "kubectl get pods -n saturn && kubectl get svc --namespace saturn"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRewriteCommandAllOccurrences(t *testing.T) {
	rules := testRules(t)

	got := rules.rewriteCommand("kubectl -n pluto get pods; kubectl -n pluto get svc", "mars")
	want := "kubectl -n mars get pods; kubectl -n mars get svc"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRewriteCommandWordBoundary(t *testing.T) {
	rules := testRules(t)

	// "venusian" must not match "venus".
	input := "kubectl get pods -n venusian"
	if got := rules.rewriteCommand(input, "saturn"); got != input {
		t.Fatalf("expected word boundary to hold, got %q", got)
	}
}

func TestRewriteCommandLeavesAssignedAlone(t *testing.T) {
	rules := testRules(t)

	input := "kubectl get pods -n saturn"
	if got := rules.rewriteCommand(input, "saturn"); got != input {
		t.Fatalf("expected assigned namespace untouched, got %q", got)
	}
}

func TestRewriteCommandCollapsesFlagWhitespace(t *testing.T) {
	rules := testRules(t)

	got := rules.rewriteCommand("kubectl get pods -n   venus", "saturn")
	if got != "kubectl get pods -n saturn" {
		t.Fatalf("expected single-space rewrite, got %q", got)
	}
}

func TestQuestionNumber(t *testing.T) {
	cases := []struct {
		name   string
		number int
		ok     bool
	}{
		{"q16.json", 16, true},
		{"ckad-i-101.json", 101, true},
		{"question-7-extra-9.json", 7, true},
		{"notes.json", 0, false},
	}
	for _, tc := range cases {
		number, ok := questionNumber(tc.name)
		if ok != tc.ok || number != tc.number {
			t.Fatalf("questionNumber(%q): expected (%d,%v), got (%d,%v)", tc.name, tc.number, tc.ok, number, ok)
		}
	}
}

func TestNewRuleSetRejectsBadLists(t *testing.T) {
	if _, err := newRuleSet(nil); err != ErrNoNamespaces {
		t.Fatalf("expected ErrNoNamespaces, got %v", err)
	}
	if _, err := newRuleSet([]string{"saturn", "saturn"}); err != ErrDuplicateNamespaces {
		t.Fatalf("expected ErrDuplicateNamespaces, got %v", err)
	}
}
