package config

import "sort"

// Schedule maps simulated years to spawn cadence and feature unlocks.
// It is read-only once built; only the year passed in changes over time.
type Schedule struct {
	steps      []SpawnStep
	weaponYear int
	phrases    map[int]string
}

// NewSchedule builds a schedule from timeline configuration.
func NewSchedule(cfg TimelineConfig) *Schedule {
	phrases := make(map[int]string, len(cfg.Phrases))
	for year, phrase := range cfg.Phrases {
		phrases[year] = phrase
	}
	return &Schedule{
		steps:      sortedSteps(cfg.SpawnDelays),
		weaponYear: cfg.WeaponYear,
		phrases:    phrases,
	}
}

// SpawnDelay returns the number of ticks between garbage spawns in the given
// year. Zero means spawning is paused for that year.
func (s *Schedule) SpawnDelay(year int) int {
	// Index of the first step that starts after year.
	i := sort.Search(len(s.steps), func(i int) bool {
		return s.steps[i].From > year
	})
	if i == 0 {
		return 0
	}
	if d := s.steps[i-1].Ticks; d > 0 {
		return d
	}
	return 0
}

// WeaponUnlocked reports whether the plasma gun can be fired in the given year.
func (s *Schedule) WeaponUnlocked(year int) bool {
	return year >= s.weaponYear
}

// WeaponYear returns the first year the weapon is available.
func (s *Schedule) WeaponYear() int {
	return s.weaponYear
}

// Phrase returns the headline for the given year, or "" if there is none.
func (s *Schedule) Phrase(year int) string {
	return s.phrases[year]
}

// Era returns the headline of the latest year at or before year that has
// one, or "" if year comes before every headline.
func (s *Schedule) Era(year int) string {
	from, phrase, found := 0, "", false
	for y, p := range s.phrases {
		if y <= year && (!found || y > from) {
			from, phrase, found = y, p, true
		}
	}
	return phrase
}
