package constants

const (
	ColumnID          = "ID"
	ColumnKind        = "Kind"
	ColumnAmount      = "Amount"
	ColumnDescription = "Description"
	ColumnDate        = "Date"

	KindIncome  = "income"
	KindExpense = "expense"

	// DateLayout is the only accepted representation of a transaction date,
	// both in the form and in the database.
	DateLayout = "2006-01-02"

	DefaultCurrencySymbol = "$"

	ConfigVersion = "1"

	DefaultConfig          = "config.yml"
	DefaultConfigParentDir = "finance-manager"
	DefaultDatabaseFile    = "finance_manager.db"
	DefaultLogFile         = "finance-manager.log"
	DefaultLogLevel        = "info"
)

const ResetStyle = "[-:-:-:-]"

// Column indexes in the transactions table.
const (
	ColumnIDIndex = iota
	ColumnKindIndex
	ColumnAmountIndex
	ColumnDescriptionIndex
	ColumnDateIndex
)

var TransactionsColumns = []string{
	ColumnID,
	ColumnKind,
	ColumnAmount,
	ColumnDescription,
	ColumnDate,
}

const (
	ResultsColumnDate        = "Date"
	ResultsColumnBalance     = "Balance"
	ResultsColumnDayIncome   = "DayIncome"
	ResultsColumnDayExpenses = "DayExpenses"
	ResultsColumnDayNet      = "DayNet"
	ResultsColumnNames       = "Names"
)

// Column indexes in the results table.
const (
	ResultsColumnDateIndex = iota
	ResultsColumnBalanceIndex
	ResultsColumnDayIncomeIndex
	ResultsColumnDayExpensesIndex
	ResultsColumnDayNetIndex
	ResultsColumnNamesIndex
)

var ResultsColumns = []string{
	ResultsColumnDate,
	ResultsColumnBalance,
	ResultsColumnDayIncome,
	ResultsColumnDayExpenses,
	ResultsColumnDayNet,
	ResultsColumnNames,
}

// Recurrence frequencies accepted by the repeat action.
const (
	WEEKLY  = "WEEKLY"
	MONTHLY = "MONTHLY"
	YEARLY  = "YEARLY"
)

// MaxRepeatCount caps how many copies a single repeat action may create.
const MaxRepeatCount = 120

const (
	ActionAdd        = "add"
	ActionSubmit     = "submit"
	ActionDelete     = "delete"
	ActionRepeat     = "repeat"
	ActionSearch     = "search"
	ActionCancel     = "cancel"
	ActionTab        = "tab"
	ActionBackTab    = "backtab"
	ActionEsc        = "esc"
	ActionHome       = "home"
	ActionEnd        = "end"
	ActionGlobalHelp = "globalhelp"
	ActionHelp       = "help"
	ActionQuit       = "quit"
	ActionRefresh    = "refresh"
	ActionResults    = "results"
	ActionMain       = "transactions"
)

// AllActions is the order in which actions are listed on the help page.
var AllActions = []string{
	ActionAdd,
	ActionSubmit,
	ActionDelete,
	ActionRepeat,
	ActionSearch,
	ActionCancel,
	ActionRefresh,
	ActionMain,
	ActionResults,
	ActionTab,
	ActionBackTab,
	ActionEsc,
	ActionHome,
	ActionEnd,
	ActionGlobalHelp,
	ActionHelp,
	ActionQuit,
}

// DefaultMappings maps a tcell key name (event.Name()) to an action.
var DefaultMappings = map[string]string{
	"Ctrl+N":  ActionAdd,
	"Ctrl+S":  ActionSubmit,
	"Delete":  ActionDelete,
	"Ctrl+D":  ActionDelete,
	"Ctrl+R":  ActionRepeat,
	"Ctrl+F":  ActionSearch,
	"Rune[/]": ActionSearch,
	"Ctrl+X":  ActionCancel,
	"Ctrl+L":  ActionRefresh,
	"Tab":     ActionTab,
	"Backtab": ActionBackTab,
	"Esc":     ActionEsc,
	"Home":    ActionHome,
	"End":     ActionEnd,
	"F1":      ActionGlobalHelp,
	"F2":      ActionMain,
	"F3":      ActionResults,
	"Rune[?]": ActionHelp,
	"Ctrl+Q":  ActionQuit,
}
