package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"100%", "100\\%"},
		{"a_b", "a\\_b"},
		{"back\\slash", "back\\\\slash"},
		{"%_\\", "\\%\\_\\\\"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, EscapeLike(tc.in), "input %q", tc.in)
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%go%", likePattern("go"))
	assert.Equal(t, "%100\\%%", likePattern("100%"))
}
