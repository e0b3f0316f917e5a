package form

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"git.cmcode.dev/cmcode/finance-manager-tui/lib"
	"git.cmcode.dev/cmcode/finance-manager-tui/presenter"
	"git.cmcode.dev/cmcode/finance-manager-tui/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Controller, *store.Store, *presenter.Presenter) {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "finance_manager.db"), zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	p := presenter.New(s, "$", map[string]string{}, map[string]string{})
	ctl := New(s, p, zerolog.Nop())
	ctl.Now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	ctl.Clear()

	return ctl, s, p
}

func submit(t *testing.T, ctl *Controller, v Values) int64 {
	t.Helper()

	ctl.SetValues(v)

	id, err := ctl.Submit(context.Background())
	require.NoError(t, err)

	return id
}

func TestController_Clear(t *testing.T) {
	ctl, _, _ := setup(t)

	require.Equal(t, ModeCreate, ctl.Mode())
	require.Equal(t, Values{Date: "2024-06-01"}, ctl.Values())

	_, editing := ctl.EditingID()
	require.False(t, editing)
}

func TestController_Scenario(t *testing.T) {
	ctx := context.Background()
	ctl, _, p := setup(t)

	first := submit(t, ctl, Values{Kind: "income", Amount: "100", Description: "salary", Date: "2024-01-01"})
	require.Equal(t, "Balance: $100.00", p.BalanceLabel())

	second := submit(t, ctl, Values{Kind: "expense", Amount: "40", Description: "food", Date: "2024-01-02"})
	require.Equal(t, "Balance: $60.00", p.BalanceLabel())
	require.Len(t, p.View().Rows, 2)

	require.NoError(t, ctl.Select(ctx, first))
	require.Equal(t, ModeEdit, ctl.Mode())
	require.Equal(t, Values{Kind: "income", Amount: "100.00", Description: "salary", Date: "2024-01-01"}, ctl.Values())

	v := ctl.Values()
	v.Kind = "expense"
	ctl.SetValues(v)

	id, err := ctl.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, first, id)
	require.Equal(t, ModeCreate, ctl.Mode())
	require.Equal(t, "Balance: $-140.00", p.BalanceLabel())

	ctl.RequestDelete(second)

	pending, ok := ctl.PendingDelete()
	require.True(t, ok)
	require.Equal(t, second, pending)

	// nothing happens until confirmation
	require.Equal(t, "Balance: $-140.00", p.BalanceLabel())

	_, err = ctl.ConfirmDelete(ctx)
	require.NoError(t, err)
	require.Equal(t, "Balance: $-100.00", p.BalanceLabel())
	require.Len(t, p.View().Rows, 1)
	require.Equal(t, first, p.View().Rows[0].ID)
}

func TestController_SubmitInvalidChangesNothing(t *testing.T) {
	ctx := context.Background()
	ctl, s, _ := setup(t)

	for _, v := range []Values{
		{Kind: "", Amount: "10", Date: "2024-01-01"},
		{Kind: "income", Amount: "", Date: "2024-01-01"},
		{Kind: "income", Amount: "0", Date: "2024-01-01"},
		{Kind: "expense", Amount: "-4", Date: "2024-01-01"},
		{Kind: "expense", Amount: "abc", Date: "2024-01-01"},
		{Kind: "expense", Amount: "4", Date: "June 1st"},
	} {
		ctl.SetValues(v)

		_, err := ctl.Submit(ctx)
		require.True(t, lib.IsValidation(err), "values %+v: %v", v, err)

		// the form keeps what the user typed so they can fix it
		require.Equal(t, v, ctl.Values())
	}

	all, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestController_SubmitDefaultsDate(t *testing.T) {
	ctx := context.Background()
	ctl, s, _ := setup(t)

	id := submit(t, ctl, Values{Kind: "income", Amount: "5"})

	tx, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", tx.DateString())
}

func TestController_EditVanished(t *testing.T) {
	ctx := context.Background()
	ctl, s, _ := setup(t)

	id := submit(t, ctl, Values{Kind: "income", Amount: "5", Date: "2024-01-01"})

	require.NoError(t, ctl.Select(ctx, id))
	require.NoError(t, s.Delete(ctx, id))

	_, err := ctl.Submit(ctx)
	require.True(t, lib.IsNotFound(err))

	all, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	require.True(t, lib.IsNotFound(ctl.Select(ctx, id)))
}

func TestController_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	ctl, _, p := setup(t)

	id := submit(t, ctl, Values{Kind: "expense", Amount: "5", Date: "2024-01-01"})

	ctl.RequestDelete(id)
	_, err := ctl.ConfirmDelete(ctx)
	require.NoError(t, err)

	for _, tx := range p.View().Rows {
		require.NotEqual(t, id, tx.ID)
	}

	ctl.RequestDelete(id)
	_, err = ctl.ConfirmDelete(ctx)
	require.True(t, lib.IsNotFound(err))

	_, ok := ctl.PendingDelete()
	require.False(t, ok)

	_, err = ctl.ConfirmDelete(ctx)
	require.Error(t, err)
}

func TestController_CancelDelete(t *testing.T) {
	ctx := context.Background()
	ctl, s, _ := setup(t)

	id := submit(t, ctl, Values{Kind: "expense", Amount: "5", Date: "2024-01-01"})

	ctl.RequestDelete(id)
	ctl.CancelDelete()

	_, err := ctl.ConfirmDelete(ctx)
	require.Error(t, err)

	_, err = s.Get(ctx, id)
	require.NoError(t, err)
}

func TestController_CancelEdit(t *testing.T) {
	ctx := context.Background()
	ctl, s, _ := setup(t)

	id := submit(t, ctl, Values{Kind: "expense", Amount: "5", Description: "tea", Date: "2024-01-01"})

	require.NoError(t, ctl.Select(ctx, id))

	v := ctl.Values()
	v.Description = "coffee"
	ctl.SetValues(v)
	ctl.Cancel()

	require.Equal(t, ModeCreate, ctl.Mode())

	tx, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "tea", tx.Description)
}

func TestController_Repeat(t *testing.T) {
	ctx := context.Background()
	ctl, s, p := setup(t)

	id := submit(t, ctl, Values{Kind: "expense", Amount: "950", Description: "rent", Date: "2024-01-01"})

	ids, err := ctl.Repeat(ctx, id, "3 monthly")
	require.NoError(t, err)
	require.Len(t, ids, 3)
	require.Len(t, p.View().Rows, 4)
	require.Equal(t, "Balance: $-3,800.00", p.BalanceLabel())

	want := []string{"2024-02-01", "2024-03-01", "2024-04-01"}

	for i, n := range ids {
		tx, err := s.Get(ctx, n)
		require.NoError(t, err)
		require.Equal(t, want[i], tx.DateString())
		require.Equal(t, "rent", tx.Description)
		require.Equal(t, lib.KindExpense, tx.Kind)
	}

	_, err = ctl.Repeat(ctx, id, "3 hourly")
	require.True(t, lib.IsValidation(err))

	_, err = ctl.Repeat(ctx, id+100, "1")
	require.True(t, lib.IsNotFound(err))
}
