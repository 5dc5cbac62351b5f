package transform_test

import (
	"testing"

	"Trendline/internal/transform"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"PT0S", 0},
		{"PT1H", 60},
		{"PT1H30M", 90},
		{"PT45S", 0.75},
		{"PT10M30S", 10.5},
		{"PT1H5M", 65},
		{"PT2M3S", 2.05},
		{"PT1H0M1S", 60.02},
		{"PT", 0},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, transform.ParseDuration(c.in))
		})
	}
}

func TestParseDurationMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "P1DT2H", "PT1.5S", "PT5S10M", "PTxM", "1H"} {
		assert.Equal(t, 0.0, transform.ParseDuration(in), in)
	}
}
