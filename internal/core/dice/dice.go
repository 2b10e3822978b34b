// Package dice rolls the small dice expressions used by loot tables and
// damage variance ("1d3", "2d4+1", "5").
package dice

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// Expr is a parsed dice expression of the form NdS+M, NdS-M or a constant.
type Expr struct {
	Count    int
	Sides    int
	Modifier int
	raw      string
}

var exprRegex = regexp.MustCompile(`^(?:(\d+)d(\d+))?([+-]?\d+)?$`)

// Parse parses a dice expression.
func Parse(s string) (Expr, error) {
	raw := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	if raw == "" {
		return Expr{}, fmt.Errorf("empty dice expression")
	}

	m := exprRegex.FindStringSubmatch(raw)
	if m == nil || (m[1] == "" && m[3] == "") {
		return Expr{}, fmt.Errorf("invalid dice expression: %s", s)
	}

	e := Expr{raw: raw}
	if m[1] != "" {
		e.Count, _ = strconv.Atoi(m[1])
		e.Sides, _ = strconv.Atoi(m[2])
		if e.Count <= 0 || e.Sides <= 0 {
			return Expr{}, fmt.Errorf("invalid dice specification: %s", s)
		}
	}
	if m[3] != "" {
		e.Modifier, _ = strconv.Atoi(m[3])
	}
	return e, nil
}

// MustParse is Parse for static tables.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Min returns the lowest possible total.
func (e Expr) Min() int {
	return e.Count + e.Modifier
}

// Max returns the highest possible total.
func (e Expr) Max() int {
	return e.Count*e.Sides + e.Modifier
}

// String returns the normalized expression.
func (e Expr) String() string {
	return e.raw
}

// Roller rolls expressions with its own random source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll rolls e.
func (r *Roller) Roll(e Expr) int {
	total := e.Modifier
	for i := 0; i < e.Count; i++ {
		total += r.rng.Intn(e.Sides) + 1
	}
	return total
}

// RollString parses and rolls s.
func (r *Roller) RollString(s string) (int, error) {
	e, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return r.Roll(e), nil
}

// Chance returns true with probability p.
func (r *Roller) Chance(p float64) bool {
	return r.rng.Float64() < p
}
