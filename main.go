package main

import (
	"embed"
	"flag"
	"os"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"
	"git.cmcode.dev/cmcode/finance-manager-tui/form"
	"git.cmcode.dev/cmcode/finance-manager-tui/logger"
	m "git.cmcode.dev/cmcode/finance-manager-tui/models"
	"git.cmcode.dev/cmcode/finance-manager-tui/presenter"
	"git.cmcode.dev/cmcode/finance-manager-tui/store"
	"git.cmcode.dev/cmcode/finance-manager-tui/themes"
	"git.cmcode.dev/cmcode/finance-manager-tui/translations"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

//go:embed translations/*.yml
var AllTranslations embed.FS

//go:embed themes/*.yml
var AllThemes embed.FS

//go:embed example.yml
var ExampleConfig embed.FS

const (
	// PageMain is not shown to the user ever, and is only used in the code.
	// It holds the entry form and the transactions table.
	PageMain = "Main"
	// PageResults is not shown to the user ever, and is only used in the code.
	// It holds the running balance by day.
	PageResults = "Results"
	// PageHelp is not shown to the user ever, and is only used in the code.
	PageHelp = "Help"
	// PagePrompt is not shown to the user ever, and is only used in the code.
	// Its primary purpose is for use in switch/case statements to determine the
	// current page.
	PagePrompt = "Prompt"
)

// What the shared input field below the transactions table is being used for.
const (
	inputNone = iota
	inputSearch
	inputRepeat
)

type Flags struct {
	ConfigFile   string
	DatabaseFile string

	// Allows the colors of the application to be changed. If this is set to a
	// value ending in .yml or .yaml, the file is loaded at runtime; otherwise
	// one of the embedded themes/$Theme.yml files is used.
	Theme string

	// If true, the application only shows the user the keyboard keys that
	// they press. They are prompted to proceed before entering this mode.
	KeyboardEchoMode bool
}

type FinanceManager struct {
	// The tview/tcell terminal application.
	App *tview.Application

	// The currently loaded configuration.
	Config m.Config

	// The path the configuration was loaded from, or would be saved to.
	ConfigFile string

	Store      *store.Store
	Presenter  *presenter.Presenter
	Controller *form.Controller

	Log zerolog.Logger

	// Translations that are loaded at runtime.
	T map[string]string

	// All default & custom colors are stored in here at runtime.
	Colors map[string]string

	// All activated key bindings, the user's merged on top of the defaults.
	//
	// usage example: KeyBindings["Ctrl+S"] = ["submit"].
	KeyBindings map[string][]string

	// The inverse of KeyBindings.
	//
	// usage example: ActionBindings["delete"] = ["Ctrl+D", "Delete"].
	ActionBindings map[string][]string

	// The primary primitive that the app uses as its root in the terminal.
	Layout *tview.Flex

	// The primary page-switching primitive.
	Pages *tview.Pages

	// The page and focus to return to once the prompt is dismissed.
	PrevPage       string
	PromptPrevious tview.Primitive

	// The focus to return to once the transactions input field closes.
	Previous tview.Primitive

	// Where Esc returns to from the help page.
	HelpPrevPage string
	HelpPrevious tview.Primitive

	Form             *tview.Form
	KindDropDown     *tview.DropDown
	AmountField      *tview.InputField
	DescriptionField *tview.InputField
	DateField        *tview.InputField

	// Shows the balance of every stored transaction.
	BalanceText *tview.TextView

	// Status and error messages for the last action.
	StatusText *tview.TextView

	TransactionsTable *tview.Table

	ResultsTable *tview.Table

	// Summary statistics shown below the results table.
	ResultsDescription *tview.TextView

	// Shared by the search and repeat actions; InputMode says which.
	TransactionsInputField *tview.InputField
	InputMode              int

	// The target of an in-progress repeat prompt.
	RepeatID int64

	// The filter in place before a search prompt was opened, restored when
	// the prompt is abandoned.
	PrevFilter string

	// Shows the gigantic help text on the help page.
	HelpTextView *tview.TextView

	// Always shown on every page - renders the keyboard shortcuts for the
	// current page.
	BottomPageNavText *tview.TextView

	// There is a hidden page that only shows a modal, used for confirmations.
	PromptBox *tview.Modal

	Flags Flags
}

// New wires the store into a presenter and form controller. It does not touch
// the terminal; call bootstrap for that.
func New(conf m.Config, t, colors map[string]string, st *store.Store, log zerolog.Logger) *FinanceManager {
	p := presenter.New(st, conf.CurrencySymbol, colors, t)

	return &FinanceManager{
		Config:         conf,
		Store:          st,
		Presenter:      p,
		Controller:     form.New(st, p, log),
		Log:            log,
		T:              t,
		Colors:         colors,
		KeyBindings:    GetCombinedKeybindings(conf.Keybindings, c.DefaultMappings),
		ActionBindings: GetAllBoundActions(conf.Keybindings, c.DefaultMappings),
	}
}

// capture is the primary input capture handler for the app, and should be used
// like: app.SetInputCapture(fm.capture)
func (fm *FinanceManager) capture(e *tcell.EventKey) *tcell.EventKey {
	n := e.Name()
	if fm.Flags.KeyboardEchoMode {
		fm.StatusText.SetDynamicColors(false).SetText(n)

		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			fm.App.Stop()
		}

		return nil
	}

	// the modal handles its own keys
	if p, _ := fm.Pages.GetFrontPage(); p == PagePrompt {
		return e
	}

	actions, ok := fm.KeyBindings[n]
	if !ok {
		return e
	}

	// every bound action runs; the key is swallowed if any of them used it
	final := e

	for i := range actions {
		if fm.action(actions[i], e) == nil {
			final = nil
		}
	}

	return final
}

// bootstrap builds every page and primitive. It should only ever be run once.
func (fm *FinanceManager) bootstrap() error {
	fm.App = tview.NewApplication()
	fm.Pages = tview.NewPages()
	fm.PromptBox = tview.NewModal()

	if err := fm.getHelpPage(); err != nil {
		return err
	}

	fm.Pages.AddPage(PageMain, fm.getMainPage(), true, true).
		AddPage(PageResults, fm.getResultsPage(), true, true).
		AddPage(PageHelp, fm.HelpTextView, true, true).
		AddPage(PagePrompt, fm.PromptBox, true, true)

	fm.Pages.SwitchToPage(PageMain)

	fm.BottomPageNavText = tview.NewTextView()
	fm.BottomPageNavText.SetDynamicColors(true)
	fm.setBottomPageNavText()

	fm.Layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(fm.Pages, 0, 1, true).AddItem(fm.BottomPageNavText, 1, 0, false)

	fm.refresh()
	fm.App.SetFocus(fm.Form)

	fm.promptKBMode()

	fm.App.SetInputCapture(fm.capture)

	return nil
}

// parseFlags parses the command line flags, using t as the translation map.
func parseFlags(t map[string]string) Flags {
	var f Flags

	flag.StringVar(&f.ConfigFile, t["FlagConfigFileFlag"], "", t["FlagConfigFileDesc"])
	flag.StringVar(&f.DatabaseFile, t["FlagDatabaseFileFlag"], "", t["FlagDatabaseFileDesc"])
	flag.StringVar(&f.Theme, t["FlagThemeFlag"], "", t["FlagThemeDesc"])
	flag.BoolVar(&f.KeyboardEchoMode, t["FlagKeyboardEchoModeFlag"], false, t["FlagKeyboardEchoModeDesc"])
	flag.Parse()

	return f
}

func main() {
	console := logger.NewConsole()

	t, _, err := translations.LoadFromEnv(AllTranslations)
	if err != nil {
		console.Fatal().Err(err).Msg("failed to load translations")
	}

	flags := parseFlags(t)

	conf, confFile, err := loadConfig(flags.ConfigFile, t, ExampleConfig)
	if err != nil {
		console.Fatal().Err(err).Msg(t["ErrorFailedToLoadConfig"])
	}

	applyFlags(&conf, flags)

	err = processConfig(&conf)
	if err != nil {
		console.Fatal().Err(err).Msg(t["ErrorFailedToProcessConfig"])
	}

	colors, err := themes.Load(AllThemes, conf.Theme)
	if err != nil {
		console.Fatal().Err(err).Msg(t["ErrorFailedToLoadThemes"])
	}

	log, logFile, err := logger.NewFile(conf.LogFile, conf.LogLevel)
	if err != nil {
		console.Fatal().Err(err).Str("file", conf.LogFile).Msg(t["ErrorFailedToOpenLog"])
	}

	log.Info().Str("config", confFile).Str("database", conf.DatabaseFile).Msg("starting")

	st, err := store.Open(conf.DatabaseFile, log)
	if err != nil {
		log.Error().Err(err).Msg(t["ErrorFailedToOpenDatabase"])
		console.Fatal().Err(err).Str("file", conf.DatabaseFile).Msg(t["ErrorFailedToOpenDatabase"])
	}

	fm := New(conf, t, colors, st, log)
	fm.ConfigFile = confFile
	fm.Flags = flags

	err = fm.bootstrap()
	if err == nil {
		err = fm.App.SetRoot(fm.Layout, true).EnableMouse(true).Run()
	}

	if err != nil {
		log.Error().Err(err).Msg("application exited with an error")
	}

	if cerr := st.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close database")
	}

	log.Info().Msg("stopped")

	_ = logFile.Close()

	if err != nil {
		console.Error().Err(err).Msg("application exited with an error")
		os.Exit(1)
	}
}
