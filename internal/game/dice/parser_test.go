package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wildshelper/internal/game/dice"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want dice.Expression
	}{
		{"d6", dice.Expression{Raw: "d6", Count: 1, Sides: 6}},
		{"2d6", dice.Expression{Raw: "2d6", Count: 2, Sides: 6}},
		{"2D6+1", dice.Expression{Raw: "2d6+1", Count: 2, Sides: 6, Modifier: 1}},
		{"3d8 - 2", dice.Expression{Raw: "3d8-2", Count: 3, Sides: 8, Modifier: -2}},
		{"4d6kh3", dice.Expression{Raw: "4d6kh3", Count: 4, Sides: 6, KeepHighest: 3}},
		{"4d6kh3+2", dice.Expression{Raw: "4d6kh3+2", Count: 4, Sides: 6, KeepHighest: 3, Modifier: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := dice.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "6", "0d6", "2d1", "2d", "d6+", "4d6kh4", "4d6kh0", "xd6", "2d6*2",
		"1000000000d6", "101d6", "2d1001", "2d6+9223372036854775807", "2d6-1001", "99999999999999999999d6",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := dice.Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestParse_Bounds(t *testing.T) {
	e, err := dice.Parse("100d1000+1000")
	require.NoError(t, err)
	assert.Equal(t, dice.MaxCount, e.Count)
	assert.Equal(t, dice.MaxSides, e.Sides)
	assert.Equal(t, dice.MaxModifier, e.Modifier)

	e, err = dice.Parse("d6-1000")
	require.NoError(t, err)
	assert.Equal(t, -dice.MaxModifier, e.Modifier)
}

func TestPropertyParsedExpressionsStayBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 1_000_000).Draw(t, "count")
		sides := rapid.IntRange(2, 1_000_000).Draw(t, "sides")
		mod := rapid.IntRange(-1_000_000, 1_000_000).Draw(t, "modifier")
		e, err := dice.Parse(fmt.Sprintf("%dd%d%+d", count, sides, mod))
		inBounds := count <= dice.MaxCount && sides <= dice.MaxSides && mod >= -dice.MaxModifier && mod <= dice.MaxModifier
		if inBounds != (err == nil) {
			t.Fatalf("count=%d sides=%d mod=%d: err=%v", count, sides, mod, err)
		}
		if err == nil && (e.Count != count || e.Sides != sides || e.Modifier != mod) {
			t.Fatalf("parsed %+v", e)
		}
	})
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nope") })
}
