package dice

import "sort"

// RollDie returns a uniformly distributed value in [1, sides].
//
// Precondition: sides >= 1; src must be non-nil.
func RollDie(src Source, sides int) int {
	if sides < 1 {
		panic("dice: RollDie called with sides < 1")
	}
	return src.Intn(sides) + 1
}

// Roll2d6 rolls two independent six-sided dice.
//
// Postcondition: result.Total() is in [2, 12] and len(result.Dice) == 2.
func Roll2d6(src Source) RollResult {
	return RollResult{
		Expression: "2d6",
		Dice:       []int{RollDie(src, 6), RollDie(src, 6)},
	}
}

// Roll evaluates an Expression using src.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count, or expr.KeepHighest when set.
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = RollDie(src, expr.Sides)
	}

	kept := rolled
	if expr.KeepHighest > 0 {
		sorted := make([]int, len(rolled))
		copy(sorted, rolled)
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		kept = sorted[:expr.KeepHighest]
	}

	return RollResult{
		Expression: expr.Raw,
		Dice:       kept,
		Modifier:   expr.Modifier,
	}
}

// RollExpr parses expr and rolls it using src in a single call.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src), nil
}
