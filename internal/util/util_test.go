package util

import (
	"strings"
	"testing"
)

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		input      string
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{"640x480", 640, 480, false},
		{"1X1", 1, 1, false},
		{"3000x2", 3000, 2, false},
		{"0x10", 0, 0, true},
		{"10x0", 0, 0, true},
		{"10x", 0, 0, true},
		{"x10", 0, 0, true},
		{"-5x10", 0, 0, true},
		{"10 x 10", 0, 0, true},
		{"photo.png", 0, 0, true},
		{"", 0, 0, true},
		{"99999999999999999999x1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := ParseDimensions(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDimensions(%q) expected error, got %dx%d", tt.input, w, h)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDimensions(%q) unexpected error: %v", tt.input, err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("ParseDimensions(%q) = %dx%d, want %dx%d", tt.input, w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestIsDimensions(t *testing.T) {
	if !IsDimensions("64x64") {
		t.Error("Expected 64x64 to be a dimensions literal")
	}
	if IsDimensions("64x64.png") {
		t.Error("Expected 64x64.png not to be a dimensions literal")
	}
}

func TestDeriveSeed(t *testing.T) {
	a := DeriveSeed(42, "mask", 0)
	if a != DeriveSeed(42, "mask", 0) {
		t.Error("DeriveSeed should be deterministic")
	}

	seen := map[uint64]bool{a: true}
	for _, s := range []uint64{
		DeriveSeed(42, "mask", 1),
		DeriveSeed(43, "mask", 0),
		DeriveSeed(42, "other", 0),
	} {
		if seen[s] {
			t.Errorf("Expected distinct seeds, got duplicate %d", s)
		}
		seen[s] = true
	}
}

func TestClockSeed(t *testing.T) {
	if ClockSeed() == 0 {
		t.Error("ClockSeed should never be 0")
	}
}

func TestGenerateDeterministicUID(t *testing.T) {
	seeds := []string{"test", "mask_0001", "this_is_a_very_long_seed_string_for_testing_uid_generation", "a/b/c.dcm"}

	for _, seed := range seeds {
		t.Run(seed, func(t *testing.T) {
			uid := GenerateDeterministicUID(seed)

			if !strings.HasPrefix(uid, uidRoot+".") {
				t.Errorf("UID should start with %s, got: %s", uidRoot, uid)
			}
			if len(uid) > 64 {
				t.Errorf("UID too long: %d chars: %s", len(uid), uid)
			}
			for _, c := range uid {
				if c != '.' && (c < '0' || c > '9') {
					t.Errorf("UID contains invalid character '%c': %s", c, uid)
					break
				}
			}
			for _, part := range strings.Split(uid, ".") {
				if len(part) > 1 && part[0] == '0' {
					t.Errorf("UID component %q has a leading zero: %s", part, uid)
				}
			}
			if uid != GenerateDeterministicUID(seed) {
				t.Error("UID should be deterministic")
			}
		})
	}

	if GenerateDeterministicUID("a") == GenerateDeterministicUID("b") {
		t.Error("Different seeds should give different UIDs")
	}
}
