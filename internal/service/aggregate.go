package service

import (
	"sort"

	"github.com/shopspring/decimal"
)

// summarize totals a filtered, sorted transaction list: income and expense
// amounts summed separately, balance = income − expense.
func summarize(list []Transaction) Summary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, tx := range list {
		if tx.Kind == KindIncome {
			totalIncome = totalIncome.Add(tx.Amount)
		} else {
			totalExpense = totalExpense.Add(tx.Amount)
		}
	}

	return Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
		Transactions: list,
	}
}

// categoryTotals groups expense amounts by category, sorted by total
// descending with category name as the tie-break for a stable order.
func categoryTotals(list []Transaction) []CategoryTotal {
	totals := make(map[Category]decimal.Decimal)
	for _, tx := range list {
		if tx.Kind != KindExpense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		cmp := result[i].Total.Cmp(result[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return result[i].Category < result[j].Category
	})

	return result
}
