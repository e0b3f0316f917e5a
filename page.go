package main

import (
	"context"
	"fmt"
	"strings"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"
	"git.cmcode.dev/cmcode/finance-manager-tui/lib"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (fm *FinanceManager) setStatus(color, msg string) {
	fm.StatusText.SetText(fmt.Sprintf("[gray]%v%v %v%v%v", lib.GetNowStr(), c.ResetStyle, fm.Colors[color], tview.Escape(msg), c.ResetStyle))
}

func (fm *FinanceManager) setStatusSuccess(msg string) {
	fm.setStatus("StatusSuccess", msg)
}

func (fm *FinanceManager) setStatusPassive(msg string) {
	fm.setStatus("StatusPassive", msg)
}

func (fm *FinanceManager) setStatusError(err error) {
	fm.setStatus("StatusError", fm.errorText(err))
}

// errorText turns an error from the form controller into a status line.
func (fm *FinanceManager) errorText(err error) string {
	switch {
	case lib.IsValidation(err):
		return fmt.Sprintf("%v: %v", fm.T["StatusInvalidInput"], err.Error())
	case lib.IsNotFound(err):
		return fm.T["StatusNotFound"]
	default:
		return fmt.Sprintf("%v: %v", fm.T["StatusError"], err.Error())
	}
}

// returns a flex view with two columns:
// - the entry form, balance and status (left side)
// - the transactions table and the shared input field (right side)
func (fm *FinanceManager) getMainPage() *tview.Flex {
	fm.BalanceText = tview.NewTextView()
	fm.BalanceText.SetBorder(true)
	fm.BalanceText.SetDynamicColors(true)

	fm.StatusText = tview.NewTextView()
	fm.StatusText.SetBorder(true)
	fm.StatusText.SetDynamicColors(true)
	fm.setStatusPassive(fm.T["StatusReady"])

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(fm.getEntryForm(), 0, 1, true).
		AddItem(fm.BalanceText, 3, 0, false).
		AddItem(fm.StatusText, 3, 0, false)

	fm.TransactionsTable = tview.NewTable().SetFixed(1, 0).SetSelectable(true, false)
	fm.TransactionsTable.SetBorder(true)
	fm.TransactionsTable.SetSelectedStyle(tcell.StyleDefault.Background(tcell.NewRGBColor(50, 50, 50)))
	fm.TransactionsTable.SetSelectedFunc(func(row, _ int) {
		fm.selectRow(row)
	})

	fm.TransactionsInputField = tview.NewInputField()
	fm.TransactionsInputField.SetBorder(true)
	fm.TransactionsInputField.SetChangedFunc(fm.transactionsInputFieldChanged)
	fm.TransactionsInputField.SetDoneFunc(fm.transactionsInputFieldDone)
	fm.deactivateTransactionsInputField()

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(fm.TransactionsTable, 0, 1, false).
		AddItem(fm.TransactionsInputField, 3, 0, false)

	return tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(left, 0, 2, true).
		AddItem(right, 0, 3, false)
}

// refresh re-queries the store and repaints everything derived from it.
func (fm *FinanceManager) refresh() {
	_, err := fm.Presenter.Refresh(context.Background())
	if err != nil {
		fm.Log.Warn().Err(err).Msg("failed to refresh transactions")
		fm.setStatusError(err)
	}

	fm.render()
}

// render paints the presenter's current view without querying the store.
func (fm *FinanceManager) render() {
	fm.getTransactionsTable()
	fm.getResultsTable()
	fm.BalanceText.SetText(" " + fm.Presenter.BalanceMarkup())
}

// setBottomPageNavText shows the keys for the most common actions on the
// current page.
func (fm *FinanceManager) setBottomPageNavText() {
	p, _ := fm.Pages.GetFrontPage()

	var actions []string

	switch p {
	case PageHelp:
		fm.BottomPageNavText.SetText(fmt.Sprintf("[::b]Esc[::-] %v", fm.T["BottomNavBack"]))

		return
	case PageResults:
		actions = []string{
			c.ActionGlobalHelp,
			c.ActionMain,
			c.ActionRefresh,
			c.ActionQuit,
		}
	default:
		actions = []string{
			c.ActionGlobalHelp,
			c.ActionAdd,
			c.ActionSubmit,
			c.ActionDelete,
			c.ActionRepeat,
			c.ActionSearch,
			c.ActionCancel,
			c.ActionResults,
			c.ActionQuit,
		}
	}

	items := make([]string, 0, len(actions))

	for _, a := range actions {
		keys := fm.ActionBindings[a]
		if len(keys) == 0 {
			continue
		}

		items = append(items, fmt.Sprintf("[::b]%v[::-] %v", keys[0], fm.T["Action"+actionKeys[a]]))
	}

	fm.BottomPageNavText.SetText(strings.Join(items, "  "))
}
