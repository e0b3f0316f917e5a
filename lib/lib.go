package lib

import (
	"fmt"
	"math"
	"strings"
	"time"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
)

// Kind is either income or expense. The zero value is KindUnset, which is
// what a form holds before the user has chosen anything; it is never
// persisted.
type Kind string

const (
	KindUnset   Kind = ""
	KindIncome  Kind = c.KindIncome
	KindExpense Kind = c.KindExpense
)

// Kinds lists the selectable kinds in the order they are offered to the user.
var Kinds = []Kind{KindIncome, KindExpense}

// Valid reports whether k is income or expense.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind converts user input into a Kind. An empty string is KindUnset;
// anything else that isn't income or expense is an error.
func ParseKind(input string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(input)))
	if k == KindUnset || k.Valid() {
		return k, nil
	}

	return KindUnset, &ValidationError{Field: c.ColumnKind, Reason: fmt.Sprintf("unknown transaction kind %q", input)}
}

// Fields holds everything about a transaction that an edit may replace.
type Fields struct {
	Kind        Kind
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// Validate checks the invariants that must hold for anything written to the
// store: a chosen kind, a strictly positive amount and a date. Defaulting an
// absent date to today is up to the caller (see Validate).
func (f Fields) Validate() error {
	if !f.Amount.IsPositive() {
		return &ValidationError{Field: c.ColumnAmount, Reason: "amount must be greater than zero"}
	}

	if !f.Kind.Valid() {
		return &ValidationError{Field: c.ColumnKind, Reason: "select income or expense"}
	}

	if f.Date.IsZero() {
		return &ValidationError{Field: c.ColumnDate, Reason: "date is required"}
	}

	return nil
}

// Transaction is one income or expense record as persisted. ID is assigned
// by the store and never changes.
type Transaction struct {
	ID int64
	Fields
}

// DateString returns the transaction's date as YYYY-MM-DD.
func (tx Transaction) DateString() string {
	return FormatAsDate(tx.Date)
}

// Signed returns the amount as it affects the balance: positive for income,
// negative for expenses.
func (tx Transaction) Signed() decimal.Decimal {
	if tx.Kind == KindExpense {
		return tx.Amount.Neg()
	}

	return tx.Amount
}

// Balance sums income minus expenses over txs.
func Balance(txs []Transaction) decimal.Decimal {
	total := decimal.Zero

	for i := range txs {
		total = total.Add(txs[i].Signed())
	}

	return total
}

// FormatAsDate takes an input time and formats it as YYYY-MM-DD.
func FormatAsDate(t time.Time) string {
	return t.Format(c.DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(input string) (time.Time, error) {
	t, err := time.Parse(c.DateLayout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", input, err)
	}

	return t, nil
}

// Today returns the calendar date of now (in now's location) as a UTC
// midnight time, matching what ParseDate produces.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatAsCurrency renders an amount with two decimals, English digit
// grouping and the given currency symbol in front, e.g. "$1,234.50".
// Negative values render as "$-40.00".
func FormatAsCurrency(a decimal.Decimal, symbol string) string {
	s := a.StringFixed(2)
	sign := ""

	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	return fmt.Sprintf("%v%v%v.%v", symbol, sign, groupThousands(whole), frac)
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	b := new(strings.Builder)
	head := len(digits) % 3

	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}

		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// AmountInWords spells out an amount the way it is written on a cheque, e.g.
// "one hundred twenty-three and 45/100". Cents are rounded. Whole parts too
// large for an int are written as digits.
func AmountInWords(a decimal.Decimal) string {
	a = a.Round(2)
	sign := ""

	if a.IsNegative() {
		sign = "minus "
		a = a.Abs()
	}

	whole := a.Truncate(0)
	cents := a.Sub(whole).Shift(2).IntPart()

	words := whole.String()
	if whole.LessThanOrEqual(decimal.NewFromInt(int64(math.MaxInt))) {
		words = num2words.Convert(int(whole.IntPart()))
	}

	return fmt.Sprintf("%v%v and %02d/100", sign, words, cents)
}

// FormatAmount renders an amount for an input field: plain digits, no
// grouping, no symbol, trailing zeros kept to two places.
func FormatAmount(a decimal.Decimal) string {
	if a.Exponent() >= -2 {
		return a.StringFixed(2)
	}

	return a.String()
}

// GetNowStr returns the current time in HH:MM:SS (24 hr) format.
func GetNowStr() string {
	return time.Now().Format("15:04:05")
}
