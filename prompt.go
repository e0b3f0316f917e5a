package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// This file mainly contains functions for the hidden prompt page in the
// application.

// showPrompt remembers the current page and focus so that closePrompt can
// restore them. It returns false if a prompt is already showing.
func (fm *FinanceManager) showPrompt() bool {
	// check if we are already prompting
	currentPage, _ := fm.Pages.GetFrontPage()
	if currentPage == PagePrompt {
		return false
	}

	fm.PrevPage = currentPage
	fm.PromptPrevious = fm.App.GetFocus()

	return true
}

func (fm *FinanceManager) closePrompt() {
	fm.Pages.SwitchToPage(fm.PrevPage)

	if fm.PromptPrevious != nil {
		fm.App.SetFocus(fm.PromptPrevious)
	}
}

func (fm *FinanceManager) promptExit() {
	if !fm.showPrompt() {
		return
	}

	fm.PromptBox.ClearButtons().AddButtons(
		[]string{
			fm.T["PromptExitButtonExit"],
			fm.T["PromptExitButtonCancel"],
		},
	).SetText(fm.T["PromptExitText"]).SetDoneFunc(
		func(buttonIndex int, buttonLabel string) {
			switch buttonIndex {
			case 0:
				fm.App.Stop()
			default:
				fm.closePrompt()
			}
		},
	).SetBackgroundColor(tcell.ColorGoldenrod).
		SetTextColor(tcell.ColorBlack)

	fm.Pages.SwitchToPage(PagePrompt)
	fm.PromptBox.SetFocus(1)
	fm.App.SetFocus(fm.PromptBox)
}

// promptDelete asks the user to confirm deleting the transaction with id.
// Nothing is deleted unless the user picks the delete button.
func (fm *FinanceManager) promptDelete(id int64) {
	if !fm.showPrompt() {
		return
	}

	fm.Controller.RequestDelete(id)

	fm.PromptBox.ClearButtons().AddButtons(
		[]string{
			fm.T["PromptDeleteButtonDelete"],
			fm.T["PromptDeleteButtonCancel"],
		},
	).SetText(fmt.Sprintf("#%v\n\n%v", id, fm.T["PromptDeleteText"])).SetDoneFunc(
		func(buttonIndex int, buttonLabel string) {
			fm.closePrompt()

			switch buttonIndex {
			case 0:
				fm.confirmDelete()
			default:
				fm.Controller.CancelDelete()
				fm.setStatusPassive(fm.T["StatusDeleteCancelled"])
			}
		},
	).SetBackgroundColor(tcell.ColorDarkRed).
		SetTextColor(tcell.ColorWhite)

	fm.Pages.SwitchToPage(PagePrompt)
	fm.PromptBox.SetFocus(1)
	fm.App.SetFocus(fm.PromptBox)
}

func (fm *FinanceManager) confirmDelete() {
	id, err := fm.Controller.ConfirmDelete(context.Background())

	fm.writeForm()
	fm.render()

	if err != nil {
		fm.setStatusError(err)

		return
	}

	fm.setStatusSuccess(fmt.Sprintf("%v %v", fm.T["StatusDeleted"], id))
}

// promptKBMode switches to the prompt page and shows a modal that informs the
// user that they are in keyboard echo mode. If KB echo mode is not enabled,
// this gracefully returns immediately and does nothing.
func (fm *FinanceManager) promptKBMode() {
	if !fm.Flags.KeyboardEchoMode {
		return
	}

	// temporarily turn off KB echo mode so that the user's keys are captured
	// properly until they can give consent to entering the mode
	fm.Flags.KeyboardEchoMode = false

	fm.PromptBox.ClearButtons().AddButtons(
		[]string{
			fm.T["PromptKeyboardEchoModeButtonTurnOff"],
			fm.T["PromptKeyboardEchoModeButtonExitNow"],
			fm.T["PromptKeyboardEchoModeButtonContinue"],
		},
	).SetText(fm.T["PromptKeyboardEchoModeText"]).SetDoneFunc(
		func(buttonIndex int, buttonLabel string) {
			switch buttonIndex {
			case 0:
				fm.Flags.KeyboardEchoMode = false
				fm.Pages.SwitchToPage(PageMain)
				fm.App.SetFocus(fm.Form)
			case 1:
				fm.App.Stop()
			case 2:
				fm.Flags.KeyboardEchoMode = true
				fm.Pages.SwitchToPage(PageMain)
			default:
				fm.App.Stop()
			}
		},
	).SetBackgroundColor(tcell.ColorDimGray).
		SetTextColor(tcell.ColorWhite)

	fm.Pages.SwitchToPage(PagePrompt)
	fm.PromptBox.SetFocus(2)
	fm.App.SetFocus(fm.PromptBox)
}
