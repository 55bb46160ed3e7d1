package fliplog

// ExpenseShare returns the even share of the expense carried by each linked
// lot: amount/K for K linked lots. The split is always equal, never
// cost-weighted. An expense linked to no lot contributes to none and the
// share is zero.
func ExpenseShare(e Expense) Money {
	k := len(e.LotIDs)
	if k == 0 {
		return M(0, e.Amount.Currency())
	}
	return e.Amount.DivBy(k)
}

// LotExpenseTotal sums the shares of every expense linked to the given lot.
func LotExpenseTotal(lotID string, expenses []Expense) Money {
	var total Money
	for _, e := range expenses {
		if e.LinkedTo(lotID) {
			total = total.Add(ExpenseShare(e))
		}
	}
	return total
}

// UnlinkedExpenseTotal sums expenses linked to no lot at all. They are
// excluded from every lot aggregation but still belong in period totals.
func UnlinkedExpenseTotal(expenses []Expense) Money {
	var total Money
	for _, e := range expenses {
		if len(e.LotIDs) == 0 {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// ExpenseTotal sums the full amount of all expenses.
func ExpenseTotal(expenses []Expense) Money {
	var total Money
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
