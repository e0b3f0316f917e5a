package main

import (
	"context"
	"fmt"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"
	m "git.cmcode.dev/cmcode/finance-manager-tui/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (fm *FinanceManager) resetTransactionsInputFieldAutocomplete() {
	fm.TransactionsInputField.SetAutocompleteFunc(func(currentText string) []string {
		return []string{}
	})
}

func (fm *FinanceManager) deactivateTransactionsInputField() {
	fm.InputMode = inputNone

	fm.TransactionsInputField.SetFieldBackgroundColor(tcell.ColorBlack)
	fm.TransactionsInputField.SetLabel(fmt.Sprintf("[gray] %v%v", fm.T["InputFieldAppearsHere"], c.ResetStyle))
	fm.TransactionsInputField.SetText("")

	if fm.Previous != nil && fm.App != nil {
		fm.App.SetFocus(fm.Previous)
	}
}

// focuses the transactions input field, updates its label, and sets
// its background color to something noticeable
func (fm *FinanceManager) activateTransactionsInputField(mode int, msg, value string) {
	fm.resetTransactionsInputFieldAutocomplete()

	// SetText triggers the changed func, which reads InputMode
	fm.InputMode = inputNone

	fm.TransactionsInputField.SetFieldBackgroundColor(tcell.ColorDimGray)
	fm.TransactionsInputField.SetLabel(fmt.Sprintf("%v %v%v", fm.Colors["InputFieldLabel"], msg, c.ResetStyle))
	fm.TransactionsInputField.SetText(value)

	fm.InputMode = mode

	// don't mess with the previously stored focus if the text field is already
	// focused
	currentFocus := fm.App.GetFocus()
	if currentFocus == fm.TransactionsInputField {
		return
	}

	fm.Previous = currentFocus

	fm.App.SetFocus(fm.TransactionsInputField)
}

// filters the table as the user types a search
func (fm *FinanceManager) transactionsInputFieldChanged(text string) {
	if fm.InputMode != inputSearch {
		return
	}

	fm.Presenter.SetFilter(text)
	fm.refresh()
}

func (fm *FinanceManager) transactionsInputFieldDone(key tcell.Key) {
	text := fm.TransactionsInputField.GetText()
	mode := fm.InputMode

	switch key {
	case tcell.KeyEnter:
		switch mode {
		case inputSearch:
			if text == "" {
				fm.setStatusPassive(fm.T["StatusFilterCleared"])
			} else {
				fm.setStatusPassive(fm.Presenter.Summary())
			}
		case inputRepeat:
			fm.deactivateTransactionsInputField()
			fm.repeat(fm.RepeatID, text)

			return
		}
	case tcell.KeyEscape:
		if mode == inputSearch {
			fm.Presenter.SetFilter(fm.PrevFilter)
			fm.refresh()
		}
	default:
		return
	}

	fm.deactivateTransactionsInputField()
}

func (fm *FinanceManager) repeat(id int64, rule string) {
	ids, err := fm.Controller.Repeat(context.Background(), id, rule)

	fm.writeForm()
	fm.render()

	if err != nil {
		fm.setStatusError(err)

		return
	}

	fm.setStatusSuccess(fmt.Sprintf("%v %v", fm.T["StatusRepeated"], len(ids)))
}

func getTableCell(cell m.TableCell) *tview.TableCell {
	return tview.NewTableCell(fmt.Sprintf("%v%v", cell.Color, tview.Escape(cell.Text))).
		SetExpansion(cell.Expand).
		SetAlign(cell.Align)
}

// getTransactionsTable repaints the table from the presenter's view, keeping
// the same transaction highlighted where possible.
func (fm *FinanceManager) getTransactionsTable() {
	selected, hadSelection := fm.selectedTransactionID()
	_, cc := fm.TransactionsTable.GetSelection()

	fm.TransactionsTable.Clear()

	for i, cell := range fm.Presenter.Headers() {
		fm.TransactionsTable.SetCell(0, i, getTableCell(cell).SetSelectable(false))
	}

	v := fm.Presenter.View()

	for r := range v.Rows {
		for i, cell := range fm.Presenter.Cells(v.Rows[r]) {
			fm.TransactionsTable.SetCell(r+1, i, getTableCell(cell).SetReference(v.Rows[r].ID))
		}
	}

	fm.TransactionsTable.SetTitle(fmt.Sprintf(" %v (%v) ", fm.T["TransactionsTitle"], fm.Presenter.Summary()))

	row := -1
	if hadSelection {
		row = fm.Presenter.RowOf(selected)
	}

	if row == -1 && len(v.Rows) > 0 {
		row = 1
	}

	if row != -1 {
		fm.TransactionsTable.Select(row, cc)
	}
}

// rowID is the id of the transaction painted at table row r.
func (fm *FinanceManager) rowID(r int) (int64, bool) {
	cell := fm.TransactionsTable.GetCell(r, c.ColumnIDIndex)
	if cell == nil {
		return 0, false
	}

	id, ok := cell.GetReference().(int64)

	return id, ok
}

// selectedTransactionID is the id of the highlighted table row, if any.
func (fm *FinanceManager) selectedTransactionID() (int64, bool) {
	r, _ := fm.TransactionsTable.GetSelection()

	return fm.rowID(r)
}

// selectTransaction highlights the row showing id, if it is visible.
func (fm *FinanceManager) selectTransaction(id int64) {
	r := fm.Presenter.RowOf(id)
	if r == -1 {
		return
	}

	fm.TransactionsTable.Select(r, 0)
}
