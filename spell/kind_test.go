package spell

import "testing"

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestParseKindCaseInsensitive(t *testing.T) {
	got, err := ParseKind("  LightNing ")
	if err != nil || got != Lightning {
		t.Errorf("Expected Lightning, got %v (%v)", got, err)
	}
	if _, err := ParseKind("meteor"); err == nil {
		t.Error("Expected error for unknown spell")
	}
}

func TestKindClass(t *testing.T) {
	tests := []struct {
		k    Kind
		want Class
	}{
		{Burst, ClassArea},
		{Bolt, ClassProjectile},
		{Fireball, ClassProjectile},
		{Lightning, ClassBeam},
		{Frost, ClassArea},
	}
	for _, tc := range tests {
		if got := tc.k.Class(); got != tc.want {
			t.Errorf("%v.Class() = %v, want %v", tc.k, got, tc.want)
		}
	}
	if Kind(99).Valid() {
		t.Error("Expected out of range kind to be invalid")
	}
}
