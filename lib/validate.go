package lib

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"

	"github.com/Knetic/govaluate"
	"github.com/shopspring/decimal"
)

// amount expressions are rounded to this many decimal places
const expressionPlaces = 2

// Draft is what the user proposes before validation. Absent values are
// explicit: an unset Kind, a nil Amount, a nil Date.
type Draft struct {
	Kind        Kind
	Amount      *decimal.Decimal
	Description string
	Date        *time.Time
}

// ParseDraft converts raw form text into a Draft. Empty amount and date
// strings become nil; text that cannot be read as a number or as YYYY-MM-DD
// is a *ValidationError. The amount may carry a leading currency symbol and
// thousands separators, or be simple arithmetic such as "12.50+3.20".
func ParseDraft(kind, amount, description, date string) (Draft, error) {
	d := Draft{Description: strings.TrimSpace(description)}

	k, err := ParseKind(kind)
	if err != nil {
		return d, err
	}

	d.Kind = k

	a, err := cleanAmount(amount)
	if err != nil {
		return d, err
	}

	if a != "" {
		v, err := parseAmount(a)
		if err != nil {
			return d, &ValidationError{Field: c.ColumnAmount, Reason: "amount must be a number"}
		}

		d.Amount = &v
	}

	date = strings.TrimSpace(date)
	if date != "" {
		t, err := ParseDate(date)
		if err != nil {
			return d, &ValidationError{Field: c.ColumnDate, Reason: "date must be formatted as YYYY-MM-DD"}
		}

		d.Date = &t
	}

	return d, nil
}

// parseAmount reads a plain decimal exactly. Anything containing an operator
// is evaluated as an arithmetic expression and rounded to cents.
func parseAmount(a string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(a)
	if err == nil {
		return v, nil
	}

	if !strings.ContainsAny(strings.TrimLeft(a, "+-"), "+-*/()") {
		return decimal.Zero, err
	}

	expr, err := govaluate.NewEvaluableExpression(a)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount expression %v: %w", a, err)
	}

	result, err := expr.Evaluate(nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to evaluate amount expression %v: %w", a, err)
	}

	f, ok := result.(float64)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, fmt.Errorf("amount expression %v is not a number", a)
	}

	return decimal.NewFromFloat(f).Round(expressionPlaces), nil
}

var (
	numberRun = regexp.MustCompile(`[0-9.,]+`)
	grouped   = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$`)
)

// strips whitespace and any currency symbols. Commas are only accepted as
// thousands separators ("1,234.50"); anything else, such as the decimal comma
// in "12,50", is rejected rather than read as a larger number.
func cleanAmount(input string) (string, error) {
	b := new(strings.Builder)

	for _, r := range strings.TrimSpace(input) {
		switch {
		case r == ' ', r == '$', r == '€', r == '£', r == '¥':
			continue
		default:
			// keep anything else so that decimal parsing rejects it
			b.WriteRune(r)
		}
	}

	for _, n := range numberRun.FindAllString(b.String(), -1) {
		if strings.Contains(n, ",") && !grouped.MatchString(n) {
			return "", &ValidationError{Field: c.ColumnAmount, Reason: "use commas only to group thousands, e.g. 1,234.50"}
		}
	}

	return strings.ReplaceAll(b.String(), ",", ""), nil
}

// Validate turns a Draft into Fields that can be written to the store. The
// amount must be present and strictly positive and the kind must be chosen.
// A missing date becomes the calendar date of now.
func Validate(d Draft, now time.Time) (Fields, error) {
	if d.Amount == nil {
		return Fields{}, &ValidationError{Field: c.ColumnAmount, Reason: "please enter a valid amount"}
	}

	f := Fields{
		Kind:        d.Kind,
		Amount:      *d.Amount,
		Description: d.Description,
		Date:        Today(now),
	}

	if d.Date != nil {
		f.Date = *d.Date
	}

	if err := f.Validate(); err != nil {
		return Fields{}, err
	}

	return f, nil
}
