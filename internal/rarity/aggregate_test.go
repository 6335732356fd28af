package rarity

import (
	"errors"
	"math"
	"testing"

	"creature-forge/internal/catalog"
)

func card(tiers ...Tier) Scorecard {
	s := make(Scorecard, len(tiers))
	for i, t := range tiers {
		s[i] = Entry{Category: catalog.Categories[i%catalog.NumCategories], Tier: t}
	}
	return s
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		card  Scorecard
		score int
		want  Overall
	}{
		{"empty", nil, 0, OverallCommon},
		{"six common", card(Common, Common, Common, Common, Common, Common), 6, OverallCommon},
		{"one rare", card(Rare, Common, Common, Common, Common, Common), 8, OverallCommon},
		{"two rare", card(Rare, Rare, Common, Common, Common, Common), 10, OverallRare},
		{"epic and rare", card(Epic, Rare, Common, Common, Common, Common), 14, OverallRare},
		{"two epic", card(Epic, Epic, Common, Common, Common, Common), 18, OverallRare},
		{"legendary", card(Legendary, Rare, Common, Common, Common, Common), 22, OverallEpic},
		{"legendary epic", card(Legendary, Epic, Epic, Common, Common, Common), 32, OverallLegendary},
		{"three legendary", card(Legendary, Legendary, Legendary, Common, Common, Common), 48, OverallLegendary},
		{"mythic", card(Legendary, Legendary, Legendary, Rare, Common, Common), 50, OverallMythic},
		{"all legendary", card(Legendary, Legendary, Legendary, Legendary, Legendary, Legendary), 90, OverallMythic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.card); got != tt.score {
				t.Errorf("Score = %d, want %d", got, tt.score)
			}
			if got := Aggregate(tt.card); got != tt.want {
				t.Errorf("Aggregate = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyIsMonotonic(t *testing.T) {
	prev := Classify(0)
	for p := 1; p <= 100; p++ {
		got := Classify(p)
		if got < prev {
			t.Fatalf("Classify(%d) = %s dropped below %s", p, got, prev)
		}
		prev = got
	}
}

func TestUpgradingATierNeverLowersOverall(t *testing.T) {
	base := card(Common, Rare, Epic, Common, Rare, Common)
	for i := range base {
		for _, tier := range Tiers {
			if tier <= base[i].Tier {
				continue
			}
			up := append(Scorecard(nil), base...)
			up[i].Tier = tier
			if Aggregate(up) < Aggregate(base) {
				t.Errorf("raising entry %d to %s lowered overall", i, tier)
			}
		}
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers {
		got, err := ParseTier(" " + tier.String() + " ")
		if err != nil || got != tier {
			t.Errorf("ParseTier(%q) = %v, %v", tier.String(), got, err)
		}
	}
	if _, err := ParseTier("mythic"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("ParseTier(mythic) err = %v, want ErrUnknownTier", err)
	}
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name string
		w    Weights
		ok   bool
	}{
		{"defaults", DefaultTable()[catalog.Body], true},
		{"zero", Weights{}, true},
		{"unnormalized", Weights{Common: 7, Rare: 2, Epic: 1}, true},
		{"negative", Weights{Common: 50, Rare: -1}, false},
		{"nan", Weights{Epic: math.NaN()}, false},
		{"inf", Weights{Legendary: math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidWeight) {
				t.Errorf("Validate() = %v, want ErrInvalidWeight", err)
			}
		})
	}
}

func TestTableSet(t *testing.T) {
	tbl := DefaultTable()
	if err := tbl.SetTier(catalog.Eyes, Legendary, 40); err != nil {
		t.Fatal(err)
	}
	if got := tbl.Get(catalog.Eyes).Legendary; got != 40 {
		t.Errorf("eyes legendary = %v, want 40", got)
	}
	if err := tbl.Set(catalog.Mouth, Weights{Common: -5}); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Set negative = %v", err)
	}
	if tbl.Get(catalog.Mouth) != DefaultTable()[catalog.Mouth] {
		t.Error("rejected weights were stored")
	}
	if err := tbl.Set(catalog.Category(42), Weights{}); !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Errorf("Set unknown category = %v", err)
	}
}
