// Package progression tracks character level, experience and discovered
// regions.
package progression

import "sort"

// Growth per level gained
const (
	HealthPerLevel = 10
	DamagePerLevel = 2
	MaxLevel       = 30
)

// XPToNext returns the experience needed to advance from level to level+1.
// Zero at the level cap.
func XPToNext(level int) int {
	if level >= MaxLevel {
		return 0
	}
	return 50 * max(level, 1)
}

// LevelUp describes one level gained
type LevelUp struct {
	Level       int
	HealthBonus int
	DamageBonus int
}

// Progression holds level and experience. Experience counts toward the next
// level and carries over.
type Progression struct {
	Level      int
	Experience int

	discovered map[string]bool
}

// New returns a level 1 character with nothing discovered
func New() *Progression {
	return &Progression{Level: 1, discovered: make(map[string]bool)}
}

// AddExperience awards xp and returns every level gained, in order.
func (p *Progression) AddExperience(xp int) []LevelUp {
	if xp <= 0 || p.Level >= MaxLevel {
		return nil
	}
	p.Experience += xp

	var ups []LevelUp
	for p.Level < MaxLevel && p.Experience >= XPToNext(p.Level) {
		p.Experience -= XPToNext(p.Level)
		p.Level++
		ups = append(ups, LevelUp{Level: p.Level, HealthBonus: HealthPerLevel, DamageBonus: DamagePerLevel})
	}
	if p.Level >= MaxLevel {
		p.Experience = 0
	}
	return ups
}

// Fraction returns progress toward the next level in [0, 1]
func (p *Progression) Fraction() float64 {
	need := XPToNext(p.Level)
	if need == 0 {
		return 1
	}
	return float64(p.Experience) / float64(need)
}

// Discover records a region and reports whether it was new
func (p *Progression) Discover(region string) bool {
	if region == "" || p.discovered[region] {
		return false
	}
	p.discovered[region] = true
	return true
}

// Discovered reports whether a region has been visited
func (p *Progression) Discovered(region string) bool {
	return p.discovered[region]
}

// Regions returns every discovered region sorted
func (p *Progression) Regions() []string {
	out := make([]string, 0, len(p.discovered))
	for r := range p.discovered {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Restore replaces level, experience and regions from a save. Values are
// clamped into range.
func (p *Progression) Restore(level, xp int, regions []string) {
	p.Level = min(max(level, 1), MaxLevel)
	p.Experience = max(xp, 0)
	p.discovered = make(map[string]bool, len(regions))
	for _, r := range regions {
		p.Discover(r)
	}
}

// BonusHealth returns total max-health growth from levels gained
func (p *Progression) BonusHealth() int {
	return (p.Level - 1) * HealthPerLevel
}

// BonusDamage returns total damage growth from levels gained
func (p *Progression) BonusDamage() int {
	return (p.Level - 1) * DamagePerLevel
}
