package main

import (
	"fmt"

	"github.com/rivo/tview"
)

// getResultsPage returns a flex view with the running balance table on top
// and a summary of it underneath.
func (fm *FinanceManager) getResultsPage() *tview.Flex {
	fm.ResultsTable = tview.NewTable().SetFixed(1, 1)
	fm.ResultsTable.SetBorder(true)
	fm.ResultsTable.SetTitle(fmt.Sprintf(" %v ", fm.T["ResultsTableTitle"]))
	fm.ResultsTable.SetBorders(false).
		SetSelectable(true, false).
		SetSeparator(' ')

	fm.ResultsDescription = tview.NewTextView().SetDynamicColors(true)
	fm.ResultsDescription.SetBorder(true)
	fm.ResultsDescription.SetTitle(fmt.Sprintf(" %v ", fm.T["ResultsDescriptionTitle"]))

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(fm.ResultsTable, 0, 3, true).
		AddItem(fm.ResultsDescription, 9, 0, false)
}

// getResultsTable repaints the results page from the presenter's latest
// refresh. The newest day is selected so the current balance is in view.
func (fm *FinanceManager) getResultsTable() {
	fm.ResultsTable.Clear()

	for i, cell := range fm.Presenter.ResultsHeaders() {
		fm.ResultsTable.SetCell(0, i, getTableCell(cell).SetSelectable(false))
	}

	results := fm.Presenter.Results()

	for r := range results {
		for i, cell := range fm.Presenter.ResultCells(results[r]) {
			fm.ResultsTable.SetCell(r+1, i, getTableCell(cell))
		}
	}

	if len(results) > 0 {
		fm.ResultsTable.Select(len(results), 0)
	}

	fm.ResultsDescription.SetText(fm.Presenter.Stats(results))
}
