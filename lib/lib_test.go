package lib

import (
	"testing"
	"time"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := ParseDate(s)
	require.NoError(t, err)

	return d
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"income", KindIncome, false},
		{" Expense ", KindExpense, false},
		{"", KindUnset, false},
		{"Select", KindUnset, true},
		{"refund", KindUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := ParseKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, IsValidation(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, k)
		})
	}
}

func TestParseDraft(t *testing.T) {
	d, err := ParseDraft("income", "$1,234.50", "  salary ", "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, KindIncome, d.Kind)
	require.NotNil(t, d.Amount)
	require.True(t, d.Amount.Equal(decimal.RequireFromString("1234.5")))
	require.Equal(t, "salary", d.Description)
	require.NotNil(t, d.Date)
	require.Equal(t, "2024-01-01", FormatAsDate(*d.Date))

	d, err = ParseDraft("", "", "", "")
	require.NoError(t, err)
	require.Equal(t, KindUnset, d.Kind)
	require.Nil(t, d.Amount)
	require.Nil(t, d.Date)

	_, err = ParseDraft("expense", "12abc", "", "")
	require.True(t, IsValidation(err))

	_, err = ParseDraft("expense", "12", "", "01/02/2024")
	require.True(t, IsValidation(err))

	// a decimal comma must not turn 12.50 into 1250
	for _, bad := range []string{"12,50", "1,5", "1,2345", "12,345,6", "1,000.5+2,5"} {
		_, err = ParseDraft("expense", bad, "", "")
		require.True(t, IsValidation(err), bad)
	}

	d, err = ParseDraft("expense", "1,234,567.89", "", "")
	require.NoError(t, err)
	require.True(t, d.Amount.Equal(decimal.RequireFromString("1234567.89")))
}

func TestFieldsValidate(t *testing.T) {
	f := Fields{Kind: KindIncome, Amount: decimal.NewFromInt(5), Date: date(t, "2024-01-01")}
	require.NoError(t, f.Validate())

	f.Date = time.Time{}
	err := f.Validate()
	require.True(t, IsValidation(err))

	var v *ValidationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, c.ColumnDate, v.Field)
}

func TestParseDraft_Expressions(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   bool
	}{
		{input: "12.50+3.20", want: "15.7"},
		{input: "$ 1,000 - 250", want: "750"},
		{input: "(2+3)*4", want: "20"},
		{input: "10/3", want: "3.33"},
		{input: "0.1+0.2", want: "0.3"},
		{input: "2*", err: true},
		{input: "2*abc", err: true},
		{input: "3/(1-1)", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDraft("expense", tt.input, "", "")
			if tt.err {
				require.True(t, IsValidation(err))

				return
			}

			require.NoError(t, err)
			require.NotNil(t, d.Amount)
			require.True(t, d.Amount.Equal(decimal.RequireFromString(tt.want)), d.Amount.String())
		})
	}
}

func TestValidate(t *testing.T) {
	now := time.Date(2024, 3, 9, 22, 15, 0, 0, time.UTC)
	hundred := decimal.NewFromInt(100)
	zero := decimal.Zero
	negative := decimal.NewFromInt(-3)
	jan := date(t, "2024-01-01")

	tests := []struct {
		name    string
		draft   Draft
		wantErr bool
		want    Fields
	}{
		{
			name:  "valid with date",
			draft: Draft{Kind: KindIncome, Amount: &hundred, Description: "salary", Date: &jan},
			want:  Fields{Kind: KindIncome, Amount: hundred, Description: "salary", Date: jan},
		},
		{
			name:  "missing date defaults to today",
			draft: Draft{Kind: KindExpense, Amount: &hundred},
			want:  Fields{Kind: KindExpense, Amount: hundred, Date: date(t, "2024-03-09")},
		},
		{
			name:    "missing amount",
			draft:   Draft{Kind: KindExpense},
			wantErr: true,
		},
		{
			name:    "zero amount",
			draft:   Draft{Kind: KindExpense, Amount: &zero},
			wantErr: true,
		},
		{
			name:    "negative amount",
			draft:   Draft{Kind: KindIncome, Amount: &negative},
			wantErr: true,
		},
		{
			name:    "unset kind",
			draft:   Draft{Amount: &hundred},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Validate(tt.draft, now)
			if tt.wantErr {
				require.True(t, IsValidation(err), "expected validation error, got %v", err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want.Kind, f.Kind)
			require.True(t, tt.want.Amount.Equal(f.Amount))
			require.Equal(t, tt.want.Description, f.Description)
			require.True(t, tt.want.Date.Equal(f.Date))
		})
	}
}

func TestBalance(t *testing.T) {
	require.True(t, Balance(nil).IsZero())

	txs := []Transaction{
		{ID: 1, Fields: Fields{Kind: KindIncome, Amount: decimal.RequireFromString("100")}},
		{ID: 2, Fields: Fields{Kind: KindExpense, Amount: decimal.RequireFromString("40.10")}},
		{ID: 3, Fields: Fields{Kind: KindExpense, Amount: decimal.RequireFromString("0.20")}},
	}

	require.Equal(t, "59.7", Balance(txs).String())
}

func TestFormatAsCurrency(t *testing.T) {
	require.Equal(t, "$100.00", FormatAsCurrency(decimal.NewFromInt(100), "$"))
	require.Equal(t, "$1,234.50", FormatAsCurrency(decimal.RequireFromString("1234.5"), "$"))
	require.Equal(t, "€0.00", FormatAsCurrency(decimal.Zero, "€"))
	require.Equal(t, "$-40.00", FormatAsCurrency(decimal.NewFromInt(-40), "$"))
	require.Equal(t, "$-1,000.01", FormatAsCurrency(decimal.RequireFromString("-1000.005"), "$"))
	require.Equal(t, "$999.99", FormatAsCurrency(decimal.RequireFromString("999.99"), "$"))
	require.Equal(t, "$123,456.00", FormatAsCurrency(decimal.NewFromInt(123456), "$"))
	require.Equal(t,
		"$12,345,678,901,234,567.89",
		FormatAsCurrency(decimal.RequireFromString("12345678901234567.89"), "$"),
	)
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "100.00", FormatAmount(decimal.NewFromInt(100)))
	require.Equal(t, "40.50", FormatAmount(decimal.RequireFromString("40.5")))
	require.Equal(t, "1.125", FormatAmount(decimal.RequireFromString("1.125")))
}

func TestParseRepeat(t *testing.T) {
	r, err := ParseRepeat("3")
	require.NoError(t, err)
	require.Equal(t, 3, r.Count)
	require.Equal(t, rrule.MONTHLY, r.Frequency)

	r, err = ParseRepeat("2 Weekly")
	require.NoError(t, err)
	require.Equal(t, rrule.WEEKLY, r.Frequency)

	for _, input := range []string{"", "0", "x monthly", "3 daily", "1 2 3", "9999"} {
		_, err = ParseRepeat(input)
		require.True(t, IsValidation(err), "input %q", input)
	}
}

func TestRepeatDates(t *testing.T) {
	r := Repeat{Count: 3, Frequency: rrule.MONTHLY}

	dates, err := r.Dates(date(t, "2024-01-15"))
	require.NoError(t, err)
	require.Len(t, dates, 3)
	require.Equal(t, "2024-02-15", FormatAsDate(dates[0]))
	require.Equal(t, "2024-03-15", FormatAsDate(dates[1]))
	require.Equal(t, "2024-04-15", FormatAsDate(dates[2]))

	r = Repeat{Count: 2, Frequency: rrule.WEEKLY}

	dates, err = r.Dates(date(t, "2024-01-01"))
	require.NoError(t, err)
	require.Equal(t, "2024-01-08", FormatAsDate(dates[0]))
	require.Equal(t, "2024-01-15", FormatAsDate(dates[1]))
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("x", -5*60*60)
	now := time.Date(2024, 12, 31, 23, 30, 0, 0, loc)

	require.Equal(t, "2024-12-31", FormatAsDate(Today(now)))
}
