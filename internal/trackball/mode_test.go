package trackball

import "testing"

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Rotate, "rotate"},
		{Zoom, "zoom"},
		{Pan, "pan"},
		{Mode(9), "Mode(9)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range []Mode{Rotate, Zoom, Pan} {
		if !m.Valid() {
			t.Errorf("%v should be valid", m)
		}
	}
	if Mode(3).Valid() {
		t.Error("Mode(3) should not be valid")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Rotate, Zoom, Pan} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseMode("spin"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
