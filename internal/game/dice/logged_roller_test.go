package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/wildshelper/internal/game/dice"
)

func TestRoller_LogsEveryRoll(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(&sequenceSource{vals: []int{3, 4, 5}}, zap.New(core))

	assert.Equal(t, 4, r.Die(6))
	res := r.TwoD6()
	assert.Equal(t, []int{5, 6}, res.Dice)

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "d6", entries[0].ContextMap()["expression"])
	assert.Equal(t, int64(11), entries[1].ContextMap()["total"])
}

func TestRoller_RollExpr(t *testing.T) {
	r := dice.NewLoggedRoller(&sequenceSource{vals: []int{0}}, zap.NewNop())
	res, err := r.RollExpr("3d4+2")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, res.Dice)
	assert.Equal(t, 5, res.Total())

	_, err = r.RollExpr("3x4")
	assert.Error(t, err)
}
