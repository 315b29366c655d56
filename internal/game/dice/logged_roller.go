package dice

import (
	"strconv"

	"go.uber.org/zap"
)

// Roller wraps a Source and logger. Every roll is logged at debug level with
// expression, dice values, modifier, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Die rolls a single die with the given number of sides.
//
// Precondition: sides >= 1.
// Postcondition: Returns a value in [1, sides].
func (r *Roller) Die(sides int) int {
	v := RollDie(r.src, sides)
	r.log(RollResult{Expression: "d" + strconv.Itoa(sides), Dice: []int{v}})
	return v
}

// TwoD6 rolls 2d6.
//
// Postcondition: Total() in [2, 12].
func (r *Roller) TwoD6() RollResult {
	res := Roll2d6(r.src)
	r.log(res)
	return res
}

// Roll evaluates a parsed expression.
func (r *Roller) Roll(expr Expression) RollResult {
	res := Roll(expr, r.src)
	r.log(res)
	return res
}

// RollExpr parses expr and rolls it.
//
// Postcondition: Returns a RollResult or a parse error.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(e), nil
}

func (r *Roller) log(res RollResult) {
	r.logger.Debug("dice roll",
		zap.String("expression", res.Expression),
		zap.Ints("dice", res.Dice),
		zap.Int("modifier", res.Modifier),
		zap.Int("total", res.Total()),
	)
}
