package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
)

// TopExpenseLimit is the default number of ranked categories returned.
const TopExpenseLimit = 5

// UncategorizedLabel groups expenses with no category reference.
const UncategorizedLabel = "Outros"

// RankTopExpenses groups all expense transactions by category label, sums
// their magnitudes, and ranks the top `limit` by share of the grand total.
// There is intentionally no date filter here: an expense with a broken date
// still counts toward its category, so one corrupt record never blanks the
// ranking. A zero grand total returns an empty slice rather than dividing
// by zero.
func RankTopExpenses(transactions []ledger.Transaction, limit int) []TopExpense {
	if limit <= 0 {
		limit = TopExpenseLimit
	}

	type group struct {
		name   string
		amount float64
	}

	index := make(map[string]*group)
	var groups []*group
	var totalExpenses float64

	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		name := tx.CategoryName
		if name == "" {
			name = UncategorizedLabel
		}
		g, ok := index[name]
		if !ok {
			g = &group{name: name}
			index[name] = g
			groups = append(groups, g)
		}
		g.amount += tx.Magnitude()
		totalExpenses += tx.Magnitude()
	}

	if totalExpenses == 0 {
		return nil
	}

	// Stable sort keeps first-seen order among equal amounts deterministic.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].amount > groups[j].amount
	})

	if len(groups) > limit {
		groups = groups[:limit]
	}

	ranked := make([]TopExpense, len(groups))
	for i, g := range groups {
		ranked[i] = TopExpense{
			Position:   i + 1,
			Name:       g.name,
			Amount:     g.amount,
			Percentage: fmt.Sprintf("%d%%", int(math.Round(g.amount/totalExpenses*100))),
		}
	}
	return ranked
}
