package main

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"
	"git.cmcode.dev/cmcode/finance-manager-tui/form"
	"git.cmcode.dev/cmcode/finance-manager-tui/lib"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Button indexes in the entry form.
const (
	buttonSubmit = iota
	buttonDelete
	buttonClear
)

// amountFieldValidator only lets through characters that can appear in an
// amount, including the separators and symbols lib.ParseDraft strips.
func amountFieldValidator(textToCheck string, _ rune) bool {
	for _, r := range textToCheck {
		if unicode.IsDigit(r) || strings.ContainsRune(".,$€£¥ +-*/()", r) {
			continue
		}

		return false
	}

	return true
}

func dateFieldValidator(textToCheck string, _ rune) bool {
	if len(textToCheck) > len(c.DateLayout) {
		return false
	}

	for _, r := range textToCheck {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}

	return true
}

func (fm *FinanceManager) getFormLabel(key string) string {
	return fmt.Sprintf("%v%v%v", fm.Colors["InputFieldLabel"], fm.T[key], c.ResetStyle)
}

// kindOptions are the drop down's entries; index 0 is the unset placeholder
// and the rest follow lib.Kinds.
func (fm *FinanceManager) kindOptions() []string {
	opts := []string{fm.T["FormKindPlaceholder"]}

	for _, k := range lib.Kinds {
		switch k {
		case lib.KindIncome:
			opts = append(opts, fm.T["KindIncome"])
		case lib.KindExpense:
			opts = append(opts, fm.T["KindExpense"])
		}
	}

	return opts
}

func kindAt(index int) string {
	if index < 1 || index > len(lib.Kinds) {
		return ""
	}

	return lib.Kinds[index-1].String()
}

func kindIndex(kind string) int {
	for i, k := range lib.Kinds {
		if k.String() == kind {
			return i + 1
		}
	}

	return 0
}

// getEntryForm builds the form used both to add and to edit transactions.
func (fm *FinanceManager) getEntryForm() *tview.Form {
	fm.KindDropDown = tview.NewDropDown().
		SetLabel(fm.getFormLabel("FormLabelKind")).
		SetOptions(fm.kindOptions(), nil).
		SetCurrentOption(0)

	fm.AmountField = tview.NewInputField().
		SetLabel(fm.getFormLabel("FormLabelAmount")).
		SetFieldWidth(16).
		SetAcceptanceFunc(amountFieldValidator)

	fm.DescriptionField = tview.NewInputField().
		SetLabel(fm.getFormLabel("FormLabelDescription"))

	fm.DateField = tview.NewInputField().
		SetLabel(fm.getFormLabel("FormLabelDate")).
		SetFieldWidth(len(c.DateLayout) + 1).
		SetPlaceholder("YYYY-MM-DD").
		SetAcceptanceFunc(dateFieldValidator)

	fm.Form = tview.NewForm().
		AddFormItem(fm.KindDropDown).
		AddFormItem(fm.AmountField).
		AddFormItem(fm.DescriptionField).
		AddFormItem(fm.DateField).
		AddButton(fm.T["FormButtonAdd"], fm.submit).
		AddButton(fm.T["FormButtonDelete"], fm.requestDeleteFromForm).
		AddButton(fm.T["FormButtonClear"], fm.clearForm)

	fm.Form.SetBorder(true)
	fm.Form.SetFieldBackgroundColor(tcell.ColorDimGray)
	fm.Form.SetButtonBackgroundColor(tcell.ColorDarkSlateGray)

	fm.writeForm()

	return fm.Form
}

// readForm copies what the user has entered into the controller.
func (fm *FinanceManager) readForm() {
	i, _ := fm.KindDropDown.GetCurrentOption()

	fm.Controller.SetValues(form.Values{
		Kind:        kindAt(i),
		Amount:      fm.AmountField.GetText(),
		Description: fm.DescriptionField.GetText(),
		Date:        fm.DateField.GetText(),
	})
}

// writeForm copies the controller's values and mode into the form.
func (fm *FinanceManager) writeForm() {
	v := fm.Controller.Values()

	fm.KindDropDown.SetCurrentOption(kindIndex(v.Kind))
	fm.AmountField.SetText(v.Amount)
	fm.DescriptionField.SetText(v.Description)
	fm.DateField.SetText(v.Date)

	submit := fm.Form.GetButton(buttonSubmit)

	if id, editing := fm.Controller.EditingID(); editing {
		fm.Form.SetTitle(fmt.Sprintf(" %v%v %v%v ", fm.Colors["FormModeEdit"], fm.T["FormTitleEdit"], id, c.ResetStyle))
		submit.SetLabel(fm.T["FormButtonSave"])

		return
	}

	fm.Form.SetTitle(fmt.Sprintf(" %v%v%v ", fm.Colors["FormModeCreate"], fm.T["FormTitleCreate"], c.ResetStyle))
	submit.SetLabel(fm.T["FormButtonAdd"])
}

func (fm *FinanceManager) focusForm() {
	fm.Form.SetFocus(0)
	fm.App.SetFocus(fm.Form)
}

func (fm *FinanceManager) submit() {
	fm.readForm()

	mode := fm.Controller.Mode()

	id, err := fm.Controller.Submit(context.Background())
	if err != nil {
		fm.setStatusError(err)

		return
	}

	fm.writeForm()
	fm.render()
	fm.selectTransaction(id)

	if mode == form.ModeEdit {
		fm.setStatusSuccess(fmt.Sprintf("%v %v", fm.T["StatusUpdated"], id))
	} else {
		fm.setStatusSuccess(fmt.Sprintf("%v %v", fm.T["StatusAdded"], id))
	}

	fm.focusForm()
}

// clearForm returns the form to create mode, dropping any edit in progress.
func (fm *FinanceManager) clearForm() {
	_, editing := fm.Controller.EditingID()

	fm.Controller.Cancel()
	fm.writeForm()

	if editing {
		fm.setStatusPassive(fm.T["StatusEditCancelled"])
	} else {
		fm.setStatusPassive(fm.T["StatusReady"])
	}

	fm.focusForm()
}

func (fm *FinanceManager) requestDeleteFromForm() {
	id, editing := fm.Controller.EditingID()
	if !editing {
		fm.setStatusPassive(fm.T["StatusNothingSelected"])

		return
	}

	fm.promptDelete(id)
}

// selectRow loads the transaction shown at a table row into the form.
func (fm *FinanceManager) selectRow(row int) {
	id, ok := fm.rowID(row)
	if !ok {
		return
	}

	err := fm.Controller.Select(context.Background(), id)
	if err != nil {
		fm.setStatusError(err)
		fm.refresh()

		return
	}

	fm.writeForm()
	fm.setStatusPassive(fmt.Sprintf("%v %v", fm.T["StatusEditing"], id))
	fm.Form.SetFocus(1)
	fm.App.SetFocus(fm.Form)
}
