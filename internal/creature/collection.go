package creature

import "creature-forge/internal/rarity"

// Collection is an ordered batch of creatures from one Build call.
type Collection []*Creature

// Duplicates counts members whose signature repeats an earlier member.
func (c Collection) Duplicates() int {
	seen := make(map[string]bool, len(c))
	n := 0
	for _, cr := range c {
		sig := cr.Signature()
		if seen[sig] {
			n++
		}
		seen[sig] = true
	}
	return n
}

// Tally counts members per overall rarity.
func (c Collection) Tally() map[rarity.Overall]int {
	t := make(map[rarity.Overall]int, len(rarity.Overalls))
	for _, cr := range c {
		t[cr.Overall]++
	}
	return t
}
