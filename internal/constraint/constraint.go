// Package constraint implements a minimal boolean predicate language
// for filtering generated deals, e.g. "N.hcp>=15" or "S.spades>=5".
// Deliberately small: it is an external collaborator to the solver
// core, not part of the search itself.
//
// Shaped after the BiddingEvaluator in internal/ai/rule_based/bidding.go,
// which reduces a Hands to HCP and suit-length scores for a bid
// decision — this package reduces the same quantities to a filter
// predicate instead.
package constraint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bran/bridgesolve/internal/engine"
)

// Field names a measurable quantity of one seat's hand.
type Field string

const (
	FieldHCP     Field = "hcp"
	FieldSpades  Field = "spades"
	FieldHearts  Field = "hearts"
	FieldDiamond Field = "diamonds"
	FieldClubs   Field = "clubs"
)

// Op is a comparison operator.
type Op string

const (
	OpEQ Op = "="
	OpGE Op = ">="
	OpLE Op = "<="
	OpGT Op = ">"
	OpLT Op = "<"
)

// Predicate is one "seat.field op value" clause, e.g. N.hcp>=15.
type Predicate struct {
	Seat  engine.Seat
	Field Field
	Op    Op
	Value int
}

// Expr is a conjunction of predicates: a Hands satisfies it only if
// every predicate holds. The language has no disjunction or negation
// — a filter that needs either is built by combining multiple Exprs
// at the call site.
type Expr struct {
	Predicates []Predicate
}

// Parse reads a comma-separated list of predicates, e.g.
// "N.hcp>=15,N.spades>=5".
func Parse(text string) (Expr, error) {
	var expr Expr
	for _, clause := range strings.Split(text, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		p, err := parsePredicate(clause)
		if err != nil {
			return Expr{}, err
		}
		expr.Predicates = append(expr.Predicates, p)
	}
	return expr, nil
}

var ops = []Op{OpGE, OpLE, OpEQ, OpGT, OpLT} // longest operators first

func parsePredicate(clause string) (Predicate, error) {
	dot := strings.IndexByte(clause, '.')
	if dot < 0 {
		return Predicate{}, fmt.Errorf("constraint %q: missing seat.field prefix", clause)
	}
	seatTok, rest := clause[:dot], clause[dot+1:]
	seat, ok := engine.SeatFromRune(runeOf(seatTok))
	if !ok || len(seatTok) != 1 {
		return Predicate{}, fmt.Errorf("constraint %q: unknown seat %q", clause, seatTok)
	}

	var op Op
	var opIdx int
	for _, candidate := range ops {
		if i := strings.Index(rest, string(candidate)); i >= 0 {
			op, opIdx = candidate, i
			break
		}
	}
	if op == "" {
		return Predicate{}, fmt.Errorf("constraint %q: no comparison operator found", clause)
	}

	field := Field(rest[:opIdx])
	switch field {
	case FieldHCP, FieldSpades, FieldHearts, FieldDiamond, FieldClubs:
	default:
		return Predicate{}, fmt.Errorf("constraint %q: unknown field %q", clause, field)
	}

	valueTok := rest[opIdx+len(op):]
	value, err := strconv.Atoi(valueTok)
	if err != nil {
		return Predicate{}, fmt.Errorf("constraint %q: non-integer value %q", clause, valueTok)
	}

	return Predicate{Seat: seat, Field: field, Op: op, Value: value}, nil
}

func runeOf(s string) rune {
	if len(s) == 0 {
		return 0
	}
	return rune(s[0])
}

// Eval reports whether every predicate in e holds against h.
func Eval(e Expr, h engine.Hands) bool {
	for _, p := range e.Predicates {
		if !evalPredicate(p, h) {
			return false
		}
	}
	return true
}

func evalPredicate(p Predicate, h engine.Hands) bool {
	cards := h.Hand(p.Seat)
	var actual int
	switch p.Field {
	case FieldHCP:
		actual = engine.HCP(cards)
	case FieldSpades:
		actual = cards.Suit(engine.Spades).Size()
	case FieldHearts:
		actual = cards.Suit(engine.Hearts).Size()
	case FieldDiamond:
		actual = cards.Suit(engine.Diamonds).Size()
	case FieldClubs:
		actual = cards.Suit(engine.Clubs).Size()
	}
	switch p.Op {
	case OpEQ:
		return actual == p.Value
	case OpGE:
		return actual >= p.Value
	case OpLE:
		return actual <= p.Value
	case OpGT:
		return actual > p.Value
	case OpLT:
		return actual < p.Value
	}
	return false
}
