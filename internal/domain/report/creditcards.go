package report

import "github.com/parishbooks/parishbooks-backend/internal/domain/ledger"

// CreditCards projects credit-card accounts into a limit/used/available
// view. There is no stored credit-limit field, so limit = 2 x used is a
// placeholder heuristic, not a modeled credit limit. Do not build on it.
func CreditCards(accounts []ledger.Account) []CreditCardSummary {
	var cards []CreditCardSummary
	for _, acc := range accounts {
		if !acc.Category.IsCreditCard() {
			continue
		}
		used := acc.Balance.Float64()
		cards = append(cards, CreditCardSummary{
			Name:      acc.Name,
			Limit:     used * 2,
			Used:      used,
			Available: used,
		})
	}
	return cards
}
