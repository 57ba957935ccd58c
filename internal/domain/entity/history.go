package entity

import (
	"sort"
	"strings"
)

// HistoryItem is a previously submitted query and how often it was used.
type HistoryItem struct {
	Text  string `json:"text"`
	Count int64  `json:"count"`
}

// NewHistoryItem creates a history item for a first use.
func NewHistoryItem(text string) HistoryItem {
	return HistoryItem{Text: text, Count: 1}
}

// IncrementVisit records one more use of the item.
func (h *HistoryItem) IncrementVisit() {
	h.Count++
}

// RecordHistory returns items with text counted once more: an existing entry
// (case-insensitive) is incremented, otherwise a new entry is appended.
// The result is sorted by descending count; ties keep their previous order.
func RecordHistory(items []HistoryItem, text string) []HistoryItem {
	out := make([]HistoryItem, len(items), len(items)+1)
	copy(out, items)

	found := false
	for i := range out {
		if strings.EqualFold(out[i].Text, text) {
			out[i].IncrementVisit()
			found = true
			break
		}
	}
	if !found {
		out = append(out, NewHistoryItem(text))
	}

	SortHistory(out)
	return out
}

// SortHistory sorts items by descending count, keeping insertion order for ties.
func SortHistory(items []HistoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
}
