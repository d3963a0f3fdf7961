package main

import "testing"

// Extra exists only in tests, so it is not described.
const Extra Level = 9 //descgen:"extra"

func TestDescription(t *testing.T) {
	if got := High.Description(); got != "high" {
		t.Errorf("High.Description() = %q", got)
	}
	if got := Extra.Description(); got != "" {
		t.Errorf("Extra.Description() = %q", got)
	}
}
