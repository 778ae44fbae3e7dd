package plp

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchUnrolled, "unrolled"},
		{DispatchPacked, "packed"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestCurrentLevelConsistent(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel().String())
	}
	if NoUnrollEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("PLP_NO_UNROLL set but level is %s", CurrentLevel())
	}
}

func TestNoUnrollEnv(t *testing.T) {
	t.Setenv("PLP_NO_UNROLL", "")
	if NoUnrollEnv() {
		t.Error("empty PLP_NO_UNROLL reported as set")
	}
	t.Setenv("PLP_NO_UNROLL", "1")
	if !NoUnrollEnv() {
		t.Error("PLP_NO_UNROLL=1 not reported")
	}
	t.Setenv("PLP_NO_UNROLL", "false")
	if NoUnrollEnv() {
		t.Error("PLP_NO_UNROLL=false reported as set")
	}
}
