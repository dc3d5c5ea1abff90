package name

import (
	"regexp"
	"testing"
)

var namePattern = regexp.MustCompile(`^(session|channel)-[a-z]+-[a-z]+-[0-9a-f]{8}$`)

func TestSession(t *testing.T) {
	got := Session()
	if !namePattern.MatchString(got) {
		t.Errorf("Session() = %q, want prefix-adjective-animal-hex format", got)
	}
}

func TestChannel(t *testing.T) {
	got := Channel()
	if !namePattern.MatchString(got) {
		t.Errorf("Channel() = %q, want prefix-adjective-animal-hex format", got)
	}
}

func TestUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := Session()
		if seen[n] {
			t.Errorf("duplicate name after %d generations: %s", i, n)
		}
		seen[n] = true
	}
}
