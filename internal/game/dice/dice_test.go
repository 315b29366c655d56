package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wildshelper/internal/game/dice"
)

// sequenceSource returns vals in order, wrapping around; each value is reduced modulo n.
type sequenceSource struct {
	vals []int
	i    int
}

func (s *sequenceSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, 12, r.Total())
}

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, "2d6+3 → [4 5] +3 = 12", r.String())
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

func TestRollResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolled := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "dice")
		modifier := rapid.IntRange(-100, 100).Draw(rt, "modifier")

		expected := modifier
		for _, d := range rolled {
			expected += d
		}
		r := dice.RollResult{Expression: "Nd6", Dice: rolled, Modifier: modifier}
		assert.Equal(rt, expected, r.Total())
		assert.True(rt, strings.HasSuffix(r.String(), fmt.Sprintf("= %d", expected)))
	})
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(6), b.Intn(6))
	}
}

func TestSeededSource_Intn_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(-3) })
}

func TestRollDie_Property_InRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sides := rapid.IntRange(1, 100).Draw(rt, "sides")
		seed := rapid.Int64().Draw(rt, "seed")
		v := dice.RollDie(dice.NewSeededSource(seed), sides)
		if v < 1 || v > sides {
			rt.Fatalf("RollDie(%d) = %d, out of [1, %d]", sides, v, sides)
		}
	})
}

func TestRollDie_PanicsOnZeroSides(t *testing.T) {
	assert.Panics(t, func() { dice.RollDie(dice.NewCryptoSource(), 0) })
}

func TestRoll2d6_Forced(t *testing.T) {
	res := dice.Roll2d6(&sequenceSource{vals: []int{1, 2}})
	assert.Equal(t, []int{2, 3}, res.Dice)
	assert.Equal(t, 5, res.Total())
	assert.Equal(t, "2d6", res.Expression)
}

func TestRoll2d6_Distribution(t *testing.T) {
	const trials = 100000
	src := dice.NewSeededSource(20240601)
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		total := dice.Roll2d6(src).Total()
		require.GreaterOrEqual(t, total, 2)
		require.LessOrEqual(t, total, 12)
		counts[total]++
	}
	for sum := 2; sum <= 12; sum++ {
		ways := 6 - abs(sum-7)
		expected := float64(trials) * float64(ways) / 36.0
		assert.InDelta(t, expected, float64(counts[sum]), 0.01*trials,
			"sum %d: got %d, want about %.0f", sum, counts[sum], expected)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestRoll_KeepHighest(t *testing.T) {
	expr := dice.MustParse("4d6kh3")
	res := dice.Roll(expr, &sequenceSource{vals: []int{0, 5, 2, 3}}) // 1 6 3 4
	assert.Equal(t, []int{6, 4, 3}, res.Dice)
	assert.Equal(t, 13, res.Total())
}

func TestRollExpr_InvalidExpression(t *testing.T) {
	_, err := dice.RollExpr("banana", dice.NewCryptoSource())
	assert.Error(t, err)
}
