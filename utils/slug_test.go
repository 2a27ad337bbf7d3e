package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Course! 2.0", "my-course-20"},
		{"Intro to Robotics", "intro-to-robotics"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-Hyphenated --- Title", "already-hyphenated-title"},
		{"UPPER lower 123", "upper-lower-123"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyIsDeterministic(t *testing.T) {
	first := Slugify("Advanced Electronics & IoT")
	second := Slugify("Advanced Electronics & IoT")
	assert.Equal(t, first, second)
	assert.Equal(t, "advanced-electronics-iot", first)
}
