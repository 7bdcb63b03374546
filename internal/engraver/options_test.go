package engraver

import "testing"

func TestParseNormalMode(t *testing.T) {
	cases := map[string]NormalMode{
		"raw":   NormalModeRaw,
		" UNIT": NormalModeUnit,
		"Unit ": NormalModeUnit,
		"unit2": "",
		"":      "",
	}
	for in, want := range cases {
		if got := ParseNormalMode(in); got != want {
			t.Errorf("ParseNormalMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := NewEngraverOptions("in.png").Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	cases := map[string]func(o *EngraverOptions){
		"no input":         func(o *EngraverOptions) { o.Input = "" },
		"negative radius":  func(o *EngraverOptions) { o.CaptureRadius = -1 },
		"no workers":       func(o *EngraverOptions) { o.Workers = 0 },
		"bad normals":      func(o *EngraverOptions) { o.NormalMode = "" },
		"bad precision":    func(o *EngraverOptions) { o.Precision = -2 },
		"empty name":       func(o *EngraverOptions) { o.SolidName = "" },
		"name with spaces": func(o *EngraverOptions) { o.SolidName = "my surface" },
	}
	for name, mutate := range cases {
		opts := NewEngraverOptions("in.png")
		mutate(opts)
		if err := opts.Validate(); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	opts := NewEngraverOptions("in.png")
	opts.CaptureRadius = 0
	if err := opts.Validate(); err != nil {
		t.Errorf("radius 0 should be accepted: %v", err)
	}
}

func TestHeightOffset(t *testing.T) {
	opts := NewEngraverOptions("in.png")
	if opts.HeightOffset() != 0 {
		t.Errorf("expected no offset, got %v", opts.HeightOffset())
	}
	opts.GeneratePlane = true
	if opts.HeightOffset() != 0.001 {
		t.Errorf("expected 0.001, got %v", opts.HeightOffset())
	}

	copied := opts.Copy()
	copied.Output = "other.stl"
	if opts.Output != DefaultOutput {
		t.Error("Copy must not share state")
	}
}
