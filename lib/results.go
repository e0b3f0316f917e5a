package lib

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Result is one row of the running balance: every transaction dated Date,
// summed, along with the balance at the end of that day.
type Result struct {
	Date               time.Time
	Balance            decimal.Decimal
	CumulativeIncome   decimal.Decimal
	CumulativeExpenses decimal.Decimal
	DayIncome          decimal.Decimal
	DayExpenses        decimal.Decimal
	DayNet             decimal.Decimal
	// Descriptions of the day's transactions in id order; empty descriptions
	// are skipped.
	DayTransactionNames string
	Count               int
}

// GetResults groups txs by date, oldest first, and accumulates a running
// balance across the days. The final Balance equals Balance(txs).
func GetResults(txs []Transaction) []Result {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].ID < sorted[j].ID
		}

		return sorted[i].Date.Before(sorted[j].Date)
	})

	results := []Result{}
	balance := decimal.Zero
	income := decimal.Zero
	expenses := decimal.Zero

	var names []string

	for i := range sorted {
		tx := sorted[i]

		if len(results) == 0 || !results[len(results)-1].Date.Equal(tx.Date) {
			names = []string{}

			results = append(results, Result{
				Date:        tx.Date,
				DayIncome:   decimal.Zero,
				DayExpenses: decimal.Zero,
				DayNet:      decimal.Zero,
			})
		}

		r := &results[len(results)-1]

		switch tx.Kind {
		case KindIncome:
			r.DayIncome = r.DayIncome.Add(tx.Amount)
			income = income.Add(tx.Amount)
		case KindExpense:
			r.DayExpenses = r.DayExpenses.Add(tx.Amount)
			expenses = expenses.Add(tx.Amount)
		}

		balance = balance.Add(tx.Signed())

		if tx.Description != "" {
			names = append(names, tx.Description)
		}

		r.Count++
		r.DayNet = r.DayIncome.Sub(r.DayExpenses)
		r.Balance = balance
		r.CumulativeIncome = income
		r.CumulativeExpenses = expenses
		r.DayTransactionNames = strings.Join(names, "; ")
	}

	return results
}

// GetStats summarizes results for the results page: the totals, and the
// lowest and highest the balance has been.
func GetStats(results []Result, currency string) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("there are no transactions to summarize")
	}

	low := results[0]
	high := results[0]
	count := 0

	for i := range results {
		count += results[i].Count

		if results[i].Balance.LessThan(low.Balance) {
			low = results[i]
		}

		if results[i].Balance.GreaterThan(high.Balance) {
			high = results[i]
		}
	}

	last := results[len(results)-1]
	first := results[0]

	b := new(strings.Builder)
	p := message.NewPrinter(language.English)

	p.Fprintf(b, "Transactions: %d over %d days, %v to %v\n",
		count, len(results), FormatAsDate(first.Date), FormatAsDate(last.Date))
	fmt.Fprintf(b, "Total income: %v\nTotal expenses: %v\nBalance: %v\n",
		FormatAsCurrency(last.CumulativeIncome, currency),
		FormatAsCurrency(last.CumulativeExpenses, currency),
		FormatAsCurrency(last.Balance, currency),
	)
	fmt.Fprintf(b, "Balance in words: %v\n", AmountInWords(last.Balance))
	fmt.Fprintf(b, "Lowest balance: %v on %v\nHighest balance: %v on %v",
		FormatAsCurrency(low.Balance, currency), FormatAsDate(low.Date),
		FormatAsCurrency(high.Balance, currency), FormatAsDate(high.Date),
	)

	return b.String(), nil
}
