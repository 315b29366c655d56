package resolve

import (
	"github.com/cory-johannsen/wildshelper/internal/game/campaign"
	"github.com/cory-johannsen/wildshelper/internal/game/dice"
	"github.com/cory-johannsen/wildshelper/internal/game/oracle"
)

// OracleResult is a single roll against an oracle table.
type OracleResult struct {
	Table string
	Roll  int
	Text  string
}

// Resolver draws dice from a logged roller and resolves them against the
// rules and an oracle book. It holds no per-call state.
type Resolver struct {
	roller *dice.Roller
	book   *oracle.Book
}

// NewResolver creates a Resolver.
//
// Precondition: roller and book must be non-nil.
func NewResolver(roller *dice.Roller, book *oracle.Book) *Resolver {
	return &Resolver{roller: roller, book: book}
}

// SkillCheck rolls 2d6 and resolves in against it.
func (r *Resolver) SkillCheck(in SkillCheckInput) SkillCheckResult {
	rolled := r.roller.TwoD6()
	res := EvaluateSkillCheck(rolled.Total(), in)
	res.Dice = rolled.Dice
	return res
}

// YesNo rolls a d6 and answers the oracle at likelihood l.
func (r *Resolver) YesNo(l Likelihood) YesNoResult {
	return EvaluateYesNo(r.roller.Die(oracle.Die), l)
}

// Oracle rolls a d6 against the flat table c.
//
// Postcondition: Returns a *oracle.LookupError only for an unknown category.
func (r *Resolver) Oracle(c oracle.Category) (OracleResult, error) {
	roll := r.roller.Die(oracle.Die)
	text, err := r.book.Lookup(c, roll)
	if err != nil {
		return OracleResult{}, err
	}
	return OracleResult{Table: string(c), Roll: roll, Text: text}, nil
}

// Weather rolls a d6 against the weather table for season.
//
// Postcondition: Returns a *oracle.LookupError only for an unknown season.
func (r *Resolver) Weather(season campaign.Season) (OracleResult, error) {
	roll := r.roller.Die(oracle.Die)
	text, err := r.book.Weather(season, roll)
	if err != nil {
		return OracleResult{}, err
	}
	return OracleResult{Table: "weather/" + string(season), Roll: roll, Text: text}, nil
}

// Roll evaluates a free-form dice expression such as "2d6+1".
func (r *Resolver) Roll(expr string) (dice.RollResult, error) {
	return r.roller.RollExpr(expr)
}
