package presenter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"
	"git.cmcode.dev/cmcode/finance-manager-tui/lib"
	m "git.cmcode.dev/cmcode/finance-manager-tui/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rivo/tview"
	"github.com/shopspring/decimal"
)

// Lister is the read side of the store.
type Lister interface {
	ReadAll(ctx context.Context) ([]lib.Transaction, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
}

// View is everything shown about the store at one moment.
type View struct {
	// Rows are the transactions that pass the current filter, in id order.
	Rows []lib.Transaction
	// All is every transaction in the store, in id order.
	All []lib.Transaction
	// Total is the number of transactions in the store, ignoring the filter.
	Total int
	// Balance always covers the whole store.
	Balance decimal.Decimal
}

// Presenter re-derives the transaction list and balance from the store on
// every Refresh. Nothing is cached between refreshes.
type Presenter struct {
	store Lister

	// Currency symbol prefixed to amounts, e.g. "$".
	currency string

	// Theme colors, keyed like the entries in themes/*.yml.
	colors map[string]string

	// Translations; missing keys fall back to English defaults.
	t map[string]string

	filter string
	view   View
}

func New(store Lister, currency string, colors, t map[string]string) *Presenter {
	if currency == "" {
		currency = c.DefaultCurrencySymbol
	}

	return &Presenter{
		store:    store,
		currency: currency,
		colors:   colors,
		t:        t,
		view:     View{Rows: []lib.Transaction{}, All: []lib.Transaction{}, Balance: decimal.Zero},
	}
}

// SetFilter sets the fuzzy filter applied on the next Refresh. An empty
// string shows everything.
func (p *Presenter) SetFilter(q string) {
	p.filter = strings.TrimSpace(q)
}

func (p *Presenter) Filter() string {
	return p.filter
}

// Refresh re-queries the store and rebuilds the view.
func (p *Presenter) Refresh(ctx context.Context) (View, error) {
	all, err := p.store.ReadAll(ctx)
	if err != nil {
		return p.view, fmt.Errorf("failed to read transactions: %w", err)
	}

	bal, err := p.store.Balance(ctx)
	if err != nil {
		return p.view, fmt.Errorf("failed to compute balance: %w", err)
	}

	v := View{Rows: make([]lib.Transaction, 0, len(all)), All: all, Total: len(all), Balance: bal}

	for i := range all {
		if p.matches(all[i]) {
			v.Rows = append(v.Rows, all[i])
		}
	}

	p.view = v

	return v, nil
}

// View returns the result of the latest Refresh.
func (p *Presenter) View() View {
	return p.view
}

func (p *Presenter) matches(tx lib.Transaction) bool {
	if p.filter == "" {
		return true
	}

	if strconv.FormatInt(tx.ID, 10) == p.filter {
		return true
	}

	return fuzzy.MatchFold(p.filter, tx.Description) ||
		fuzzy.MatchFold(p.filter, tx.Kind.String()) ||
		strings.Contains(tx.DateString(), p.filter)
}

func (p *Presenter) tr(key, def string) string {
	if v, ok := p.t[key]; ok && v != "" {
		return v
	}

	return def
}

// BalanceLabel is the plain balance text, e.g. "Balance: $-140.00".
func (p *Presenter) BalanceLabel() string {
	return fmt.Sprintf("%v: %v", p.tr("BalanceLabel", "Balance"), lib.FormatAsCurrency(p.view.Balance, p.currency))
}

// BalanceMarkup is BalanceLabel with tview color tags from the theme.
func (p *Presenter) BalanceMarkup() string {
	color := p.colors["BalancePositive"]
	if p.view.Balance.IsNegative() {
		color = p.colors["BalanceNegative"]
	}

	return fmt.Sprintf("%v%v%v", color, p.BalanceLabel(), c.ResetStyle)
}

// Summary describes how many rows are shown, e.g. "2/5 transactions
// matching "food"".
func (p *Presenter) Summary() string {
	noun := p.tr("PresenterTransactions", "transactions")

	if p.filter == "" {
		return fmt.Sprintf("%v %v", p.view.Total, noun)
	}

	return fmt.Sprintf(
		"%v/%v %v %v %q",
		len(p.view.Rows),
		p.view.Total,
		noun,
		p.tr("PresenterMatching", "matching"),
		p.filter,
	)
}

// Headers returns the header row of the transactions table.
func (p *Presenter) Headers() []m.TableCell {
	cells := make([]m.TableCell, 0, len(c.TransactionsColumns))

	for _, col := range c.TransactionsColumns {
		cell := m.TableCell{
			Color: p.colors["TransactionsHeader"],
			Text:  p.tr("TransactionsColumn"+col, col),
		}

		if col == c.ColumnDescription {
			cell.Expand = 1
		}

		cells = append(cells, cell)
	}

	return cells
}

// Cells returns one table row for tx, in c.TransactionsColumns order.
func (p *Presenter) Cells(tx lib.Transaction) []m.TableCell {
	amountColor := p.colors["TransactionsColumnIncome"]
	if tx.Kind == lib.KindExpense {
		amountColor = p.colors["TransactionsColumnExpense"]
	}

	return []m.TableCell{
		c.ColumnIDIndex: {
			Color: p.colors["TransactionsColumnID"],
			Text:  strconv.FormatInt(tx.ID, 10),
		},
		c.ColumnKindIndex: {
			Color: amountColor,
			Text:  p.kindText(tx.Kind),
		},
		c.ColumnAmountIndex: {
			Color: amountColor,
			Text:  lib.FormatAsCurrency(tx.Amount, p.currency),
			Align: tview.AlignRight,
		},
		c.ColumnDescriptionIndex: {
			Color:  p.colors["TransactionsColumnDescription"],
			Text:   tx.Description,
			Expand: 1,
		},
		c.ColumnDateIndex: {
			Color: p.colors["TransactionsColumnDate"],
			Text:  tx.DateString(),
		},
	}
}

func (p *Presenter) kindText(k lib.Kind) string {
	switch k {
	case lib.KindIncome:
		return p.tr("KindIncome", k.String())
	case lib.KindExpense:
		return p.tr("KindExpense", k.String())
	default:
		return k.String()
	}
}

// RowOf returns the table row showing the transaction with id, or -1.
func (p *Presenter) RowOf(id int64) int {
	for i := range p.view.Rows {
		if p.view.Rows[i].ID == id {
			return i + 1
		}
	}

	return -1
}

// Results is the running balance by day over the whole store, ignoring the
// filter.
func (p *Presenter) Results() []lib.Result {
	return lib.GetResults(p.view.All)
}

// Stats summarizes Results, or explains why there is nothing to summarize.
func (p *Presenter) Stats(results []lib.Result) string {
	stats, err := lib.GetStats(results, p.currency)
	if err != nil {
		return fmt.Sprintf("%v%v%v", p.colors["StatusPassive"], err.Error(), c.ResetStyle)
	}

	return fmt.Sprintf("%v%v%v", p.colors["ResultsDescriptionStats"], stats, c.ResetStyle)
}

// ResultsHeaders returns the header row of the results table.
func (p *Presenter) ResultsHeaders() []m.TableCell {
	cells := make([]m.TableCell, 0, len(c.ResultsColumns))

	for _, col := range c.ResultsColumns {
		cell := m.TableCell{
			Color: p.colors["TransactionsHeader"],
			Text:  p.tr("ResultsColumn"+col, col),
		}

		if col == c.ResultsColumnNames {
			cell.Expand = 1
		}

		cells = append(cells, cell)
	}

	return cells
}

// ResultCells returns one results table row, in c.ResultsColumns order.
func (p *Presenter) ResultCells(r lib.Result) []m.TableCell {
	balanceColor := p.colors["BalancePositive"]
	if r.Balance.IsNegative() {
		balanceColor = p.colors["BalanceNegative"]
	}

	money := func(color string, d decimal.Decimal) m.TableCell {
		return m.TableCell{
			Color: p.colors[color],
			Text:  lib.FormatAsCurrency(d, p.currency),
			Align: tview.AlignRight,
		}
	}

	cells := []m.TableCell{
		c.ResultsColumnDateIndex: {
			Color: p.colors["TransactionsColumnDate"],
			Text:  lib.FormatAsDate(r.Date),
		},
		c.ResultsColumnBalanceIndex: {
			Color: balanceColor,
			Text:  lib.FormatAsCurrency(r.Balance, p.currency),
			Align: tview.AlignRight,
		},
		c.ResultsColumnDayIncomeIndex:   money("TransactionsColumnIncome", r.DayIncome),
		c.ResultsColumnDayExpensesIndex: money("TransactionsColumnExpense", r.DayExpenses),
		c.ResultsColumnDayNetIndex:      money("ResultsColumnDayNet", r.DayNet),
		c.ResultsColumnNamesIndex: {
			Color:  p.colors["TransactionsColumnDescription"],
			Text:   r.DayTransactionNames,
			Expand: 1,
		},
	}

	return cells
}
