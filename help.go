package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"

	"github.com/rivo/tview"
)

const HelpTextTemplate = `[lightgreen::b]{{ .Title }}[-:-:-:-]

[lightgreen::b]General information[-:-:-:-]

[white]Record your [lightgreen]income[white] and [gold]expenses[white] on the left, and see every
transaction along with the overall balance on the right.

- Pick a [blue]{{ .KindLabel }}[white] first; the form refuses to save until you do.
- The [blue]{{ .AmountLabel }}[white] must be greater than zero. Expenses are not entered as
  negative numbers, their type makes them count against the balance.
  Simple arithmetic such as [aqua]12.50+3.20[white] is worked out for you.
- The [blue]{{ .DateLabel }}[white] is [aqua]YYYY[white]-[lightgreen]MM[white]-[gold]DD[white] and is filled in with today's date.
- Press [aqua]Enter[white] on a row in the table to load it into the form, change
  what you need and save it again. The id of a transaction never changes.
- Deleting always asks for confirmation.
- Repeating copies a transaction onto later dates, for example [aqua]3 monthly[white]
  creates three copies one month apart.
- The filter narrows the table but never the balance, which always covers
  every stored transaction.

Transactions are kept in [gray]{{ .DatabaseFile }}[white].
Configuration is read from [gray]{{ .ConfigFile }}[white].

[lightgreen::b]Keyboard Shortcuts:[-:-:-:-]
{{ range .Actions }}
[gold]{{ printf "%-12s" .Name }}[white] {{ .Keys }}
             [gray]{{ .Description }}[white]
{{- end }}
`

// actionKeys maps an action to the suffix of its translation keys, e.g.
// T["ActionAdd"] and T["HelpActionAdd"].
var actionKeys = map[string]string{
	c.ActionAdd:        "Add",
	c.ActionSubmit:     "Submit",
	c.ActionDelete:     "Delete",
	c.ActionRepeat:     "Repeat",
	c.ActionSearch:     "Search",
	c.ActionCancel:     "Cancel",
	c.ActionRefresh:    "Refresh",
	c.ActionMain:       "Main",
	c.ActionResults:    "Results",
	c.ActionTab:        "Tab",
	c.ActionBackTab:    "BackTab",
	c.ActionEsc:        "Esc",
	c.ActionHome:       "Home",
	c.ActionEnd:        "End",
	c.ActionGlobalHelp: "GlobalHelp",
	c.ActionHelp:       "Help",
	c.ActionQuit:       "Quit",
}

type helpAction struct {
	Name        string
	Keys        string
	Description string
}

// getHelpText renders the help page, listing every action with the keys
// currently bound to it.
func (fm *FinanceManager) getHelpText() (string, error) {
	type tmplDataShape struct {
		Title        string
		KindLabel    string
		AmountLabel  string
		DateLabel    string
		DatabaseFile string
		ConfigFile   string
		Actions      []helpAction
	}

	tmplData := tmplDataShape{
		Title:        fm.T["AppTitle"],
		KindLabel:    tview.Escape(fm.T["FormLabelKind"]),
		AmountLabel:  tview.Escape(fm.T["FormLabelAmount"]),
		DateLabel:    tview.Escape(fm.T["FormLabelDate"]),
		DatabaseFile: tview.Escape(fm.Config.DatabaseFile),
		ConfigFile:   tview.Escape(fm.ConfigFile),
		Actions:      make([]helpAction, 0, len(c.AllActions)),
	}

	for _, a := range c.AllActions {
		keys := make([]string, 0, len(fm.ActionBindings[a]))
		for _, k := range fm.ActionBindings[a] {
			keys = append(keys, tview.Escape(k))
		}

		tmplData.Actions = append(tmplData.Actions, helpAction{
			Name:        a,
			Keys:        strings.Join(keys, ", "),
			Description: fm.T["HelpAction"+actionKeys[a]],
		})
	}

	tmpl, err := template.New("help").Parse(HelpTextTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse help text template: %w", err)
	}

	var b bytes.Buffer

	err = tmpl.Execute(&b, tmplData)
	if err != nil {
		return "", fmt.Errorf("failed to render help text: %w", err)
	}

	return b.String(), nil
}

func (fm *FinanceManager) getHelpPage() error {
	text, err := fm.getHelpText()
	if err != nil {
		return fmt.Errorf("%v: %w", fm.T["ErrorFailedToRenderHelp"], err)
	}

	fm.HelpTextView = tview.NewTextView()
	fm.HelpTextView.SetBorder(true)
	fm.HelpTextView.SetDynamicColors(true).SetText(text)

	return nil
}
