package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_Distance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"home", "home", 0},
		{"home", "hom", 1},
		{"flaw", "lawn", 2},
		{"ключ", "ключи", 1},
	}

	var m Matcher

	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Distance(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.want, m.Distance(tt.b, tt.a), "%q vs %q", tt.b, tt.a)
	}
}

func TestClosest(t *testing.T) {
	t.Parallel()

	candidates := []string{"home", "home-outline", "house", "account", "Hone", "heart"}

	assert.Equal(t, []string{"home", "Hone"}, Closest("homw", candidates, 0))
	assert.Equal(t, []string{"home"}, Closest("hom", candidates, 0))
	assert.Equal(t, []string{"home"}, Closest("home", candidates, 1))
	assert.Empty(t, Closest("zzzzzz", candidates, 3))
	assert.Empty(t, Closest("x", nil, 3))
}

func TestHint(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Hint(nil))
	assert.Equal(t, " (did you mean: home, house?)", Hint([]string{"home", "house"}))
}
