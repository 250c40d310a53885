package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sipslabs/sips-api/internal/models"
)

// ===============================
// Aggregates
// ===============================

// Summary resume um conjunto de lançamentos. Um conjunto vazio
// produz zeros em todos os campos, nunca erro.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`

	MaxIncome  decimal.Decimal `json:"max_income"`
	MaxExpense decimal.Decimal `json:"max_expense"`

	MeanIncome  decimal.Decimal `json:"mean_income"`
	MeanExpense decimal.Decimal `json:"mean_expense"`
}

type CategorySummary struct {
	Category string          `json:"category"`
	Kind     Kind            `json:"kind"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
	Mean     decimal.Decimal `json:"mean"`
}

type BalancePoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// SignedAmount devolve o valor com sinal: entradas somam, saídas subtraem.
func SignedAmount(e *models.LedgerEntry) decimal.Decimal {
	if Kind(e.Kind) == KindExpense {
		return e.Amount.Neg()
	}
	return e.Amount
}

func Summarize(entries []models.LedgerEntry) Summary {
	s := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
		MaxIncome:    decimal.Zero,
		MaxExpense:   decimal.Zero,
		MeanIncome:   decimal.Zero,
		MeanExpense:  decimal.Zero,
	}

	var incomeCount, expenseCount int64

	for i := range entries {
		e := &entries[i]
		switch Kind(e.Kind) {
		case KindIncome:
			s.TotalIncome = s.TotalIncome.Add(e.Amount)
			incomeCount++
			if e.Amount.GreaterThan(s.MaxIncome) {
				s.MaxIncome = e.Amount
			}
		case KindExpense:
			s.TotalExpense = s.TotalExpense.Add(e.Amount)
			expenseCount++
			if e.Amount.GreaterThan(s.MaxExpense) {
				s.MaxExpense = e.Amount
			}
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	if incomeCount > 0 {
		s.MeanIncome = s.TotalIncome.Div(decimal.NewFromInt(incomeCount)).Round(2)
	}
	if expenseCount > 0 {
		s.MeanExpense = s.TotalExpense.Div(decimal.NewFromInt(expenseCount)).Round(2)
	}

	return s
}

// SummarizeByCategory agrupa por (categoria, tipo) com total, quantidade
// e média, ordenado por categoria e tipo para saída estável.
func SummarizeByCategory(entries []models.LedgerEntry) []CategorySummary {
	type key struct {
		category string
		kind     Kind
	}

	groups := make(map[key]*CategorySummary)
	for i := range entries {
		e := &entries[i]
		k := key{category: e.Category, kind: Kind(e.Kind)}

		g, ok := groups[k]
		if !ok {
			g = &CategorySummary{
				Category: e.Category,
				Kind:     Kind(e.Kind),
				Total:    decimal.Zero,
			}
			groups[k] = g
		}

		g.Total = g.Total.Add(e.Amount)
		g.Count++
	}

	out := make([]CategorySummary, 0, len(groups))
	for _, g := range groups {
		g.Mean = g.Total.Div(decimal.NewFromInt(int64(g.Count))).Round(2)
		out = append(out, *g)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Kind < out[j].Kind
	})

	return out
}

// RunningBalance devolve o saldo acumulado em ordem cronológica,
// um ponto por lançamento.
func RunningBalance(entries []models.LedgerEntry) []BalancePoint {
	ordered := make([]models.LedgerEntry, len(entries))
	copy(ordered, entries)

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID < ordered[j].ID
	})

	points := make([]BalancePoint, 0, len(ordered))
	acc := decimal.Zero
	for i := range ordered {
		acc = acc.Add(SignedAmount(&ordered[i]))
		points = append(points, BalancePoint{
			Date:    ordered[i].Date,
			Balance: acc,
		})
	}

	return points
}
