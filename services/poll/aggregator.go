package poll

import (
	"sort"

	"studycompass/models"
)

// RankOverlaps flattens every participant's selected blocks, groups them by
// exact (start, end) pair, and returns the groups chosen by two or more
// participants, ranked by participant count descending. Ties keep encounter
// order.
//
// Grouping is deliberately exact-match: a 10:00-11:00 selection and a
// 10:30-11:30 selection never merge even though they share 30 minutes.
// Rankings are externally visible, so this stays as-is until product decides
// partial intersection is wanted.
func RankOverlaps(responses []models.PollResponse) []models.OverlapWindow {
	type key struct {
		start, end int64
	}
	index := make(map[key]int)
	var windows []models.OverlapWindow

	for _, resp := range responses {
		who := resp.DisplayName
		if who == "" {
			who = resp.ParticipantID
		}
		for _, b := range resp.SelectedBlocks {
			k := key{start: b.Start.UnixNano(), end: b.End.UnixNano()}
			i, ok := index[k]
			if !ok {
				index[k] = len(windows)
				windows = append(windows, models.OverlapWindow{Start: b.Start, End: b.End})
				i = len(windows) - 1
			}
			windows[i].Participants = append(windows[i].Participants, who)
		}
	}

	ranked := windows[:0]
	for _, w := range windows {
		if len(w.Participants) >= 2 {
			ranked = append(ranked, w)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].Participants) > len(ranked[j].Participants)
	})
	return ranked
}
