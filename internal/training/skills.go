package training

import (
	"sort"

	"github.com/samdwyer/dungeontower/internal/dice"
	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/stats"
)

const (
	historyWindow = 10
	topStatCount  = 3
	offerCount    = 3
)

// TopTrainedStats returns up to three stats trained most often in the last
// ten sessions. Ties keep the order in which the stats first appear in that
// window.
func TopTrainedStats(history []stats.StatType) []stats.StatType {
	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	counts := make(map[stats.StatType]int)
	var order []stats.StatType
	for _, st := range recent {
		if counts[st] == 0 {
			order = append(order, st)
		}
		counts[st]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topStatCount {
		order = order[:topStatCount]
	}
	return order
}

// RandomSkills picks up to three unlearned skills to offer on level-up.
// Skills related to the top stats are preferred when there are at least
// three of them.
func RandomSkills(top []stats.StatType, known []gamedata.SkillDef, catalog []gamedata.SkillDef, src dice.Source) []gamedata.SkillDef {
	learned := make(map[string]bool, len(known))
	for _, s := range known {
		learned[s.ID] = true
	}

	isTop := make(map[stats.StatType]bool, len(top))
	for _, st := range top {
		isTop[st] = true
	}

	var available, related []gamedata.SkillDef
	for _, s := range catalog {
		if learned[s.ID] {
			continue
		}
		available = append(available, s)
		if isTop[s.RelatedStat] {
			related = append(related, s)
		}
	}

	pool := available
	if len(related) >= offerCount {
		pool = related
	}
	return dice.Sample(src, pool, offerCount)
}
