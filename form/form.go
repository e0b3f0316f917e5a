package form

import (
	"context"
	"fmt"
	"time"

	"git.cmcode.dev/cmcode/finance-manager-tui/lib"
	"git.cmcode.dev/cmcode/finance-manager-tui/presenter"

	"github.com/rs/zerolog"
)

// Store is the write side of the store, plus Get for select-to-edit.
type Store interface {
	Create(ctx context.Context, f lib.Fields) (int64, error)
	Get(ctx context.Context, id int64) (lib.Transaction, error)
	Update(ctx context.Context, id int64, f lib.Fields) error
	Delete(ctx context.Context, id int64) error
}

// Refresher is satisfied by *presenter.Presenter.
type Refresher interface {
	Refresh(ctx context.Context) (presenter.View, error)
}

type Mode int

const (
	// ModeCreate means submitting adds a new transaction.
	ModeCreate Mode = iota
	// ModeEdit means submitting replaces the fields of the selected
	// transaction.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}

	return "create"
}

// Values is the raw text held by the form's inputs. An empty Kind means the
// user hasn't chosen income or expense yet.
type Values struct {
	Kind        string
	Amount      string
	Description string
	Date        string
}

// Controller mediates between the form's inputs and the store. It holds no
// widgets, so it can be driven without a terminal.
type Controller struct {
	store     Store
	presenter Refresher
	log       zerolog.Logger

	// Now is used for date defaults; replaceable in tests.
	Now func() time.Time

	mode    Mode
	editing int64
	values  Values

	pendingDelete    int64
	hasPendingDelete bool
}

func New(store Store, p Refresher, log zerolog.Logger) *Controller {
	ctl := &Controller{
		store:     store,
		presenter: p,
		log:       log,
		Now:       time.Now,
	}

	ctl.Clear()

	return ctl
}

func (ctl *Controller) Mode() Mode {
	return ctl.mode
}

// EditingID returns the id loaded by Select, if the controller is in Edit
// mode.
func (ctl *Controller) EditingID() (int64, bool) {
	return ctl.editing, ctl.mode == ModeEdit
}

func (ctl *Controller) Values() Values {
	return ctl.values
}

// SetValues records what the user has typed. It does not change the mode.
func (ctl *Controller) SetValues(v Values) {
	ctl.values = v
}

// Clear empties the form and returns to Create mode. The date is prefilled
// with today.
func (ctl *Controller) Clear() {
	ctl.mode = ModeCreate
	ctl.editing = 0
	ctl.values = Values{Date: lib.FormatAsDate(lib.Today(ctl.Now()))}
}

// Cancel abandons an edit without writing anything.
func (ctl *Controller) Cancel() {
	ctl.Clear()
	ctl.CancelDelete()
}

// Select loads the stored transaction with id into the form and switches to
// Edit mode.
func (ctl *Controller) Select(ctx context.Context, id int64) error {
	tx, err := ctl.store.Get(ctx, id)
	if err != nil {
		ctl.log.Warn().Err(err).Int64("id", id).Msg("failed to select transaction")

		return err
	}

	ctl.mode = ModeEdit
	ctl.editing = tx.ID
	ctl.values = Values{
		Kind:        tx.Kind.String(),
		Amount:      lib.FormatAmount(tx.Amount),
		Description: tx.Description,
		Date:        tx.DateString(),
	}

	return nil
}

// Submit validates the current values and creates (Create mode) or updates
// (Edit mode) a transaction. On success the form is cleared and the
// presenter refreshed; on failure nothing changes. The returned id is the
// created or updated transaction.
func (ctl *Controller) Submit(ctx context.Context) (int64, error) {
	v := ctl.values

	draft, err := lib.ParseDraft(v.Kind, v.Amount, v.Description, v.Date)
	if err != nil {
		ctl.log.Warn().Err(err).Str("mode", ctl.mode.String()).Msg("rejected form input")

		return 0, err
	}

	f, err := lib.Validate(draft, ctl.Now())
	if err != nil {
		ctl.log.Warn().Err(err).Str("mode", ctl.mode.String()).Msg("rejected form input")

		return 0, err
	}

	var id int64

	switch ctl.mode {
	case ModeEdit:
		id = ctl.editing

		err = ctl.store.Update(ctx, id, f)
	default:
		id, err = ctl.store.Create(ctx, f)
	}

	if err != nil {
		ctl.log.Warn().Err(err).Int64("id", id).Str("mode", ctl.mode.String()).Msg("failed to submit transaction")

		return 0, err
	}

	ctl.Clear()

	return id, ctl.refresh(ctx)
}

// RequestDelete is the first phase of a delete. Nothing is removed until
// ConfirmDelete.
func (ctl *Controller) RequestDelete(id int64) {
	ctl.pendingDelete = id
	ctl.hasPendingDelete = true
}

// PendingDelete returns the id awaiting confirmation, if any.
func (ctl *Controller) PendingDelete() (int64, bool) {
	return ctl.pendingDelete, ctl.hasPendingDelete
}

func (ctl *Controller) CancelDelete() {
	ctl.pendingDelete = 0
	ctl.hasPendingDelete = false
}

// ConfirmDelete removes the transaction requested by RequestDelete. The
// pending request is consumed whether or not the delete succeeds.
func (ctl *Controller) ConfirmDelete(ctx context.Context) (int64, error) {
	id, ok := ctl.PendingDelete()
	if !ok {
		return 0, fmt.Errorf("no transaction was requested for deletion")
	}

	ctl.CancelDelete()

	err := ctl.store.Delete(ctx, id)
	if err != nil {
		ctl.log.Warn().Err(err).Int64("id", id).Msg("failed to delete transaction")

		return id, err
	}

	ctl.Clear()

	return id, ctl.refresh(ctx)
}

// Repeat copies the stored transaction with id onto the future dates
// described by rule (see lib.ParseRepeat). Each copy is a regular create and
// gets its own id.
func (ctl *Controller) Repeat(ctx context.Context, id int64, rule string) ([]int64, error) {
	r, err := lib.ParseRepeat(rule)
	if err != nil {
		return nil, err
	}

	tx, err := ctl.store.Get(ctx, id)
	if err != nil {
		ctl.log.Warn().Err(err).Int64("id", id).Msg("failed to repeat transaction")

		return nil, err
	}

	dates, err := r.Dates(tx.Date)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(dates))

	for _, d := range dates {
		f := tx.Fields
		f.Date = d

		n, err := ctl.store.Create(ctx, f)
		if err != nil {
			ctl.log.Warn().Err(err).Int64("id", id).Int("created", len(ids)).Msg("repeat stopped early")

			_ = ctl.refresh(ctx)

			return ids, fmt.Errorf("failed to create copy for %v: %w", lib.FormatAsDate(d), err)
		}

		ids = append(ids, n)
	}

	ctl.Clear()

	return ids, ctl.refresh(ctx)
}

func (ctl *Controller) refresh(ctx context.Context) error {
	if ctl.presenter == nil {
		return nil
	}

	if _, err := ctl.presenter.Refresh(ctx); err != nil {
		ctl.log.Warn().Err(err).Msg("failed to refresh transactions")

		return err
	}

	return nil
}
