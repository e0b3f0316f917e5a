package main

import (
	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"

	"github.com/gdamore/tcell/v2"
)

// typing reports whether a text input has focus, in which case plain keys
// such as runes and Delete belong to the input rather than to an action.
func (fm *FinanceManager) typing() bool {
	switch fm.App.GetFocus() {
	case fm.AmountField, fm.DescriptionField, fm.DateField, fm.TransactionsInputField:
		return true
	default:
		return false
	}
}

func (fm *FinanceManager) onMainPage() bool {
	pageName, _ := fm.Pages.GetFrontPage()

	return pageName == PageMain
}

// targetID is the transaction an action applies to: the highlighted row when
// the table has focus, otherwise the one being edited.
func (fm *FinanceManager) targetID() (int64, bool) {
	if fm.App.GetFocus() == fm.TransactionsTable {
		return fm.selectedTransactionID()
	}

	return fm.Controller.EditingID()
}

func (fm *FinanceManager) actionQuit() *tcell.EventKey {
	fm.promptExit()

	return nil
}

func (fm *FinanceManager) actionAdd(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() {
		return e
	}

	if fm.App.GetFocus() == fm.TransactionsInputField {
		return e
	}

	fm.Controller.Clear()
	fm.writeForm()
	fm.setStatusPassive(fm.T["StatusReady"])
	fm.focusForm()

	return nil
}

func (fm *FinanceManager) actionSubmit(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() {
		return e
	}

	if fm.App.GetFocus() == fm.TransactionsInputField {
		return e
	}

	fm.submit()

	return nil
}

func (fm *FinanceManager) actionDelete(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() {
		return e
	}

	if fm.typing() && e.Key() == tcell.KeyDelete {
		return e
	}

	if fm.App.GetFocus() == fm.TransactionsInputField {
		return e
	}

	id, ok := fm.targetID()
	if !ok {
		fm.setStatusPassive(fm.T["StatusNothingSelected"])

		return nil
	}

	fm.promptDelete(id)

	return nil
}

func (fm *FinanceManager) actionRepeat(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() {
		return e
	}

	if fm.App.GetFocus() == fm.TransactionsInputField {
		return e
	}

	id, ok := fm.targetID()
	if !ok {
		fm.setStatusPassive(fm.T["StatusNothingSelected"])

		return nil
	}

	fm.RepeatID = id
	fm.activateTransactionsInputField(inputRepeat, fm.T["InputFieldRepeat"], "1 monthly")

	return nil
}

func (fm *FinanceManager) actionSearch(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() {
		return e
	}

	if fm.typing() && e.Key() == tcell.KeyRune {
		return e
	}

	if fm.App.GetFocus() == fm.TransactionsInputField {
		return e
	}

	fm.PrevFilter = fm.Presenter.Filter()
	fm.activateTransactionsInputField(inputSearch, fm.T["InputFieldSearch"], fm.PrevFilter)

	return nil
}

func (fm *FinanceManager) actionCancel(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() {
		return e
	}

	if fm.App.GetFocus() == fm.TransactionsInputField {
		return e
	}

	fm.clearForm()

	return nil
}

func (fm *FinanceManager) actionRefresh(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := fm.Pages.GetFrontPage()
	if pageName == PageHelp {
		return e
	}

	fm.refresh()
	fm.setStatusPassive(fm.T["StatusRefreshed"])

	return nil
}

func (fm *FinanceManager) actionEnd(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() || fm.App.GetFocus() != fm.TransactionsTable {
		return e
	}

	r := fm.TransactionsTable.GetRowCount() - 1
	if r < 1 {
		return nil
	}

	fm.TransactionsTable.Select(r, 0)

	return nil
}

func (fm *FinanceManager) actionHome(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() || fm.App.GetFocus() != fm.TransactionsTable {
		return e
	}

	if fm.TransactionsTable.GetRowCount() < 2 {
		return nil
	}

	fm.TransactionsTable.Select(1, 0)

	return nil
}

// lastFormIndex is the focus index of the form's last button.
func (fm *FinanceManager) lastFormIndex() int {
	return fm.Form.GetFormItemCount() + buttonClear
}

func (fm *FinanceManager) actionBackTab(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() {
		return e
	}

	switch fm.App.GetFocus() {
	case fm.TransactionsInputField:
		return nil
	case fm.TransactionsTable:
		fm.Form.SetFocus(fm.lastFormIndex())
		fm.App.SetFocus(fm.Form)

		return nil
	}

	if fm.KindDropDown.IsOpen() {
		return e
	}

	// it's more intuitive to go to the table when backtabbing from the
	// first field in the form
	if item, _ := fm.Form.GetFocusedItemIndex(); item == 0 {
		fm.App.SetFocus(fm.TransactionsTable)

		return nil
	}

	return e
}

func (fm *FinanceManager) actionTab(e *tcell.EventKey) *tcell.EventKey {
	if !fm.onMainPage() {
		return e
	}

	switch fm.App.GetFocus() {
	case fm.TransactionsInputField:
		return nil
	case fm.TransactionsTable:
		fm.focusForm()

		return nil
	}

	if fm.KindDropDown.IsOpen() {
		return e
	}

	if _, button := fm.Form.GetFocusedItemIndex(); button == buttonClear {
		fm.App.SetFocus(fm.TransactionsTable)

		return nil
	}

	return e
}

func (fm *FinanceManager) actionEsc(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := fm.Pages.GetFrontPage()
	switch pageName {
	case PageHelp:
		fm.Pages.SwitchToPage(fm.HelpPrevPage)
		fm.setBottomPageNavText()

		if fm.HelpPrevious != nil {
			fm.App.SetFocus(fm.HelpPrevious)
		}

		return nil
	case PageResults:
		return fm.actionMain()
	}

	if fm.KindDropDown.IsOpen() {
		return e
	}

	switch fm.App.GetFocus() {
	case fm.TransactionsInputField:
		return e
	case fm.TransactionsTable:
		fm.focusForm()

		return nil
	}

	if _, editing := fm.Controller.EditingID(); editing {
		fm.clearForm()

		return nil
	}

	fm.promptExit()

	return nil
}

func (fm *FinanceManager) actionGlobalHelp(e *tcell.EventKey) *tcell.EventKey {
	// the input field would lose track of the focus it restores on close
	if fm.App.GetFocus() == fm.TransactionsInputField {
		return e
	}

	pageName, _ := fm.Pages.GetFrontPage()
	if pageName != PageHelp {
		fm.HelpPrevPage = pageName
		fm.HelpPrevious = fm.App.GetFocus()
	}

	fm.Pages.SwitchToPage(PageHelp)
	fm.setBottomPageNavText()
	fm.App.SetFocus(fm.HelpTextView)

	return nil
}

func (fm *FinanceManager) actionResults(e *tcell.EventKey) *tcell.EventKey {
	if fm.App.GetFocus() == fm.TransactionsInputField {
		return e
	}

	// if the user is already on the results page, focus the table instead
	p, _ := fm.Pages.GetFrontPage()
	if p != PageResults {
		fm.refresh()
	}

	fm.Pages.SwitchToPage(PageResults)
	fm.setBottomPageNavText()
	fm.App.SetFocus(fm.ResultsTable)

	return nil
}

func (fm *FinanceManager) actionMain() *tcell.EventKey {
	p, _ := fm.Pages.GetFrontPage()
	alreadyOnPage := p == PageMain

	fm.Pages.SwitchToPage(PageMain)
	fm.setBottomPageNavText()

	if !alreadyOnPage {
		fm.focusForm()
	}

	return nil
}

func (fm *FinanceManager) actionHelp(e *tcell.EventKey) *tcell.EventKey {
	if fm.typing() {
		return e
	}

	return fm.actionGlobalHelp(e)
}

// action is the primary decision tree that is triggered when a key event
// is triggered. Please ensure that every case statement has a return.
//
//nolint:cyclop
func (fm *FinanceManager) action(action string, e *tcell.EventKey) *tcell.EventKey {
	switch action {
	case c.ActionQuit:
		return fm.actionQuit()
	case c.ActionAdd:
		return fm.actionAdd(e)
	case c.ActionSubmit:
		return fm.actionSubmit(e)
	case c.ActionDelete:
		return fm.actionDelete(e)
	case c.ActionRepeat:
		return fm.actionRepeat(e)
	case c.ActionSearch:
		return fm.actionSearch(e)
	case c.ActionCancel:
		return fm.actionCancel(e)
	case c.ActionRefresh:
		return fm.actionRefresh(e)
	case c.ActionEnd:
		return fm.actionEnd(e)
	case c.ActionHome:
		return fm.actionHome(e)
	case c.ActionBackTab:
		return fm.actionBackTab(e)
	case c.ActionTab:
		return fm.actionTab(e)
	case c.ActionEsc:
		return fm.actionEsc(e)
	case c.ActionResults:
		return fm.actionResults(e)
	case c.ActionMain:
		if fm.App.GetFocus() == fm.TransactionsInputField {
			return e
		}

		return fm.actionMain()
	case c.ActionGlobalHelp:
		return fm.actionGlobalHelp(e)
	case c.ActionHelp:
		return fm.actionHelp(e)
	default:
		fm.Log.Debug().Str("action", action).Str("key", e.Name()).Msg("unknown action")

		return e
	}
}
