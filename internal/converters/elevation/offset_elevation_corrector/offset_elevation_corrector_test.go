package offset_elevation_corrector

import "testing"

func TestCorrectElevation(t *testing.T) {
	cases := []struct {
		offset float64
		z      float64
		want   float64
	}{
		{0, 0, 0},
		{0, 3.5, 3.5},
		{0.001, 0, 0.001},
		{0.001, 64, 64.001},
	}
	for _, c := range cases {
		got := NewOffsetElevationCorrector(c.offset).CorrectElevation(3, 4, c.z)
		if got != c.want {
			t.Errorf("offset %v, z %v: got %v, want %v", c.offset, c.z, got, c.want)
		}
	}
}
