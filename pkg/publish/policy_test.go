package publish

import "testing"

func TestPolicyFromFlags(t *testing.T) {
	tests := []struct {
		alwaysFirst bool
		includeAll  bool
		want        Policy
	}{
		{false, false, MatchedOnly},
		{true, false, AlwaysFirstPage},
		{false, true, AllPages},
		// include-all-pages takes precedence.
		{true, true, AllPages},
	}

	for _, tt := range tests {
		got := PolicyFromFlags(tt.alwaysFirst, tt.includeAll)
		if got != tt.want {
			t.Errorf("PolicyFromFlags(%v, %v) = %v, want %v", tt.alwaysFirst, tt.includeAll, got, tt.want)
		}
	}
}

func TestPolicyString(t *testing.T) {
	if MatchedOnly.String() != "matched-only" {
		t.Errorf("Unexpected name: %s", MatchedOnly)
	}
	if AlwaysFirstPage.String() != "always-add-first-page" {
		t.Errorf("Unexpected name: %s", AlwaysFirstPage)
	}
	if AllPages.String() != "include-all-pages" {
		t.Errorf("Unexpected name: %s", AllPages)
	}
}
