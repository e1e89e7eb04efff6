package report

import (
	"math"
	"math/rand"
	"time"

	"github.com/parishbooks/parishbooks-backend/internal/domain/money"
	"github.com/parishbooks/parishbooks-backend/internal/domain/period"
)

// Synthetic cash-flow constants. Presentation-only: a brand-new ledger still
// renders a plausible trend instead of a blank chart.
const (
	syntheticBaseIncome   = 2000.0
	syntheticBaseExpense  = 1500.0
	syntheticStartBalance = 5000.0
	// Each day's base values are perturbed by an independent factor in
	// [0.75, 1.25].
	syntheticJitter = 0.25
)

// RandomSource supplies the perturbation for synthetic series. Tests inject
// a deterministic source; production uses math/rand.
type RandomSource interface {
	Float64() float64
}

// Synthesizer decides, per output section, whether the real computation
// produced any signal and substitutes a synthetic placeholder when it did
// not. Synthetic and real numbers are never mixed inside one section, and
// only the summary shape and the cash-flow series are ever synthesized:
// fabricating fake top categories, fake bills, or fake cards is considered
// more misleading than an empty state.
type Synthesizer struct {
	rand RandomSource
}

// NewSynthesizer creates a synthesizer. A nil source gets a time-seeded
// math/rand fallback.
func NewSynthesizer(src RandomSource) *Synthesizer {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{rand: src}
}

// FillSummary guards the all-zero case. The replacement keeps the real
// TotalBalance and AccountsCount (still computed from real accounts) and
// leaves income, expenses, and result at zero: the point is a populated
// shape, never invented income.
func (s *Synthesizer) FillSummary(real Summary) Summary {
	if real.TotalBalance != 0 || real.MonthlyIncome != 0 || real.MonthlyExpenses != 0 {
		return real
	}
	return Summary{
		TotalBalance:  real.TotalBalance,
		AccountsCount: real.AccountsCount,
	}
}

// FillCashFlow substitutes a full synthetic series when the real one
// carries no signal: either it is empty (transactions fetch lost) or every
// point is zero (the builder always emits buckets, so an empty snapshot
// shows up as an all-zero series). The synthetic series follows the same
// running-balance rule as the real one, seeded with a non-zero starting
// balance so the trend looks plausible.
func (s *Synthesizer) FillCashFlow(real []CashFlowPoint, p period.Period, now time.Time) []CashFlowPoint {
	if hasCashFlowSignal(real) {
		return real
	}

	buckets := period.DayBuckets(p, now)
	points := make([]CashFlowPoint, 0, len(buckets))

	accumulator := syntheticStartBalance
	for _, day := range buckets {
		income := money.RoundCents(syntheticBaseIncome * s.jitter())
		expense := money.RoundCents(syntheticBaseExpense * s.jitter())

		accumulator += income - expense
		points = append(points, CashFlowPoint{
			Date:     day.Format(cashFlowDateLayout),
			Positive: income,
			Negative: expense,
			Flow:     math.Max(0, accumulator),
		})
	}
	return points
}

func hasCashFlowSignal(series []CashFlowPoint) bool {
	for _, point := range series {
		if point.Positive != 0 || point.Negative != 0 || point.Flow != 0 {
			return true
		}
	}
	return false
}

func (s *Synthesizer) jitter() float64 {
	return 1 - syntheticJitter + s.rand.Float64()*2*syntheticJitter
}
