package main

import (
	"errors"
	"testing"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"
	"git.cmcode.dev/cmcode/finance-manager-tui/lib"
	m "git.cmcode.dev/cmcode/finance-manager-tui/models"
	"git.cmcode.dev/cmcode/finance-manager-tui/translations"

	"github.com/stretchr/testify/require"
)

func testFinanceManager(t *testing.T) *FinanceManager {
	t.Helper()

	tr, _, err := translations.Load(AllTranslations, translations.DefaultLanguage)
	require.NoError(t, err)

	conf := m.Config{
		DatabaseFile: "/tmp/[x]/finance_manager.db",
		Keybindings:  map[string][]string{"F9": {c.ActionQuit}},
	}

	return &FinanceManager{
		Config:         conf,
		ConfigFile:     "config.yml",
		T:              tr,
		KeyBindings:    GetCombinedKeybindings(conf.Keybindings, c.DefaultMappings),
		ActionBindings: GetAllBoundActions(conf.Keybindings, c.DefaultMappings),
	}
}

func TestGetHelpText(t *testing.T) {
	fm := testFinanceManager(t)

	text, err := fm.getHelpText()
	require.NoError(t, err)
	require.Contains(t, text, "Finance Manager")
	require.Contains(t, text, "Ctrl+S")
	require.Contains(t, text, "F9")
	require.Contains(t, text, fm.T["HelpActionRepeat"])

	// paths and keys are escaped so tview doesn't read them as color tags
	require.Contains(t, text, "/tmp/[x[]/finance_manager.db")

	for _, a := range c.AllActions {
		require.Contains(t, text, a)
	}
}

func TestGetHelpText_FormLabelsFollowTranslations(t *testing.T) {
	fm := testFinanceManager(t)
	fm.T["FormLabelKind"] = "Sorte"
	fm.T["FormLabelAmount"] = "Betrag"
	fm.T["FormLabelDate"] = "Datum"

	text, err := fm.getHelpText()
	require.NoError(t, err)
	require.Contains(t, text, "Pick a [blue]Sorte[white] first")
	require.Contains(t, text, "The [blue]Betrag[white] must")
	require.Contains(t, text, "The [blue]Datum[white] is")
	require.NotContains(t, text, "[blue]Type[white]")
}

func TestActionTranslations(t *testing.T) {
	fm := testFinanceManager(t)

	for _, a := range c.AllActions {
		k, ok := actionKeys[a]
		require.True(t, ok, a)
		require.NotEmpty(t, fm.T["Action"+k], a)
		require.NotEmpty(t, fm.T["HelpAction"+k], a)
	}
}

func TestErrorText(t *testing.T) {
	fm := testFinanceManager(t)

	require.Equal(t,
		"invalid input: amount must be greater than zero",
		fm.errorText(&lib.ValidationError{Field: c.ColumnAmount, Reason: "amount must be greater than zero"}),
	)
	require.Equal(t, fm.T["StatusNotFound"], fm.errorText(&lib.NotFoundError{ID: 3}))
	require.Equal(t, "error: disk full", fm.errorText(errors.New("disk full")))
}

func TestKindOptions(t *testing.T) {
	fm := testFinanceManager(t)

	opts := fm.kindOptions()
	require.Equal(t, []string{"Select", "income", "expense"}, opts)

	require.Equal(t, "", kindAt(0))
	require.Equal(t, c.KindIncome, kindAt(1))
	require.Equal(t, c.KindExpense, kindAt(2))
	require.Equal(t, "", kindAt(3))
	require.Equal(t, "", kindAt(-1))

	for i := range opts {
		require.Equal(t, i, kindIndex(kindAt(i)))
	}
}

func TestFieldValidators(t *testing.T) {
	for _, ok := range []string{"", "12", "1,234.50", "$ 5", "€3", "12.50+3*(2-1)"} {
		require.True(t, amountFieldValidator(ok, 0), ok)
	}

	for _, bad := range []string{"abc", "1e5", "12x"} {
		require.False(t, amountFieldValidator(bad, 0), bad)
	}

	require.True(t, dateFieldValidator("2024-01-31", 0))
	require.False(t, dateFieldValidator("2024-01-311", 0))
	require.False(t, dateFieldValidator("2024/01/31", 0))
}
