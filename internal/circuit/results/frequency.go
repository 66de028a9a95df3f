// Package results tabulates sampled measurement outcomes.
package results

import (
	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Frequency is how often one distinct outcome occurred in a batch
type Frequency struct {
	Outcome quantum.Outcome `json:"outcome"`
	Count   int             `json:"count"`
	// Percent is the exact share, 100 * Count / Total
	Percent decimal.Decimal `json:"-"`
	// Display is Percent rounded to zero decimals with a trailing '%'
	Display string `json:"percent"`
}

// FrequencyTable lists distinct outcomes in order of first occurrence
type FrequencyTable struct {
	Entries []Frequency `json:"entries"`
	Total   int         `json:"total"`
	// Single marks a one-outcome batch, shown as the bare value
	Single bool `json:"single"`
}

// Aggregate counts each distinct outcome in outcomes
func Aggregate(outcomes []quantum.Outcome) *FrequencyTable {
	table := &FrequencyTable{
		Entries: make([]Frequency, 0),
		Total:   len(outcomes),
		Single:  len(outcomes) == 1,
	}
	if len(outcomes) == 0 {
		return table
	}

	index := make(map[quantum.Outcome]int)
	for _, o := range outcomes {
		if i, seen := index[o]; seen {
			table.Entries[i].Count++
			continue
		}
		index[o] = len(table.Entries)
		table.Entries = append(table.Entries, Frequency{Outcome: o, Count: 1})
	}

	total := decimal.NewFromInt(int64(len(outcomes)))
	for i := range table.Entries {
		e := &table.Entries[i]
		e.Percent = decimal.NewFromInt(int64(e.Count)).Mul(hundred).Div(total)
		e.Display = e.Percent.Round(0).String() + "%"
	}

	return table
}

// Lookup returns the entry for outcome o
func (t *FrequencyTable) Lookup(o quantum.Outcome) (Frequency, bool) {
	for _, e := range t.Entries {
		if e.Outcome == o {
			return e, true
		}
	}
	return Frequency{}, false
}

// PercentSum adds up the exact percentages; 100 for any non-empty table up to
// division precision
func (t *FrequencyTable) PercentSum() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Percent)
	}
	return sum
}
