package console

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/aussiebroadwan/records/pkg/recordsdk"
)

// NewRecordKey is the busy-marker key for the add form. Record ids start at 1.
const NewRecordKey int64 = 0

var (
	// ErrBusy is returned when an action is already in flight for the same key.
	ErrBusy = errors.New("console: action already in progress")

	// ErrBlankName is returned when the add or edit text is blank after trimming.
	ErrBlankName = errors.New("console: name is required")

	// ErrNotEditing is returned by SaveEdit when no row is being edited.
	ErrNotEditing = errors.New("console: no row is being edited")

	// ErrDeclined is returned by Delete when the user does not confirm.
	ErrDeclined = errors.New("console: delete declined")
)

// Notices shown to the user. Failure notices stay generic; details go to the
// debug log.
const (
	NoticeNameRequired = "Please enter a name."
	NoticeLoadFailed   = "Could not load records. Please try again."
	NoticeAddFailed    = "Could not add the record. Please try again."
	NoticeUpdateFailed = "Could not update the record. Please try again."
	NoticeDeleteFailed = "Could not delete the record. Please try again."
)

// Client is the slice of recordsdk.SDKClient the view-model needs.
type Client interface {
	GetHealth(ctx context.Context) (*recordsdk.MessageResponse, error)
	ListRecords(ctx context.Context) ([]recordsdk.Record, error)
	CreateRecord(ctx context.Context, name string) (*recordsdk.Record, error)
	UpdateRecord(ctx context.Context, id int64, name string) (*recordsdk.Record, error)
	DeleteRecord(ctx context.Context, id int64) (*recordsdk.MessageResponse, error)
}

// Prompter shows blocking prompts to the user.
type Prompter interface {
	// Confirm asks a yes/no question and reports whether the user agreed.
	Confirm(ctx context.Context, message string) bool

	// Notice shows a message the user must acknowledge.
	Notice(ctx context.Context, message string)
}

// Snapshot is a copy of the view-model state at one point in time.
type Snapshot struct {
	Connection ConnectionState
	Visible    bool
	Records    []recordsdk.Record

	// Editing is the id of the row in edit mode, or 0.
	Editing  int64
	EditText string

	AddOpen bool
	AddText string

	// Busy lists the keys with an action in flight, ascending.
	Busy []int64
}

// ViewModel is safe for concurrent use. Actions on different keys may run at
// the same time; a second action on a busy key fails with ErrBusy.
type ViewModel struct {
	client   Client
	prompter Prompter
	logger   *slog.Logger

	mu         sync.Mutex
	connection ConnectionState
	visible    bool
	records    []recordsdk.Record
	editing    int64
	editText   string
	addOpen    bool
	addText    string
	busy       map[int64]struct{}
}

func NewViewModel(client Client, prompter Prompter, logger *slog.Logger) *ViewModel {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewModel{
		client:   client,
		prompter: prompter,
		logger:   logger,
		busy:     make(map[int64]struct{}),
	}
}

// Snapshot returns a copy of the current state.
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	busy := make([]int64, 0, len(vm.busy))
	for k := range vm.busy {
		busy = append(busy, k)
	}
	slices.Sort(busy)

	return Snapshot{
		Connection: vm.connection,
		Visible:    vm.visible,
		Records:    slices.Clone(vm.records),
		Editing:    vm.editing,
		EditText:   vm.editText,
		AddOpen:    vm.addOpen,
		AddText:    vm.addText,
		Busy:       busy,
	}
}

// Mount runs the one-off health check. Later calls are no-ops; the
// connection is never re-checked.
func (vm *ViewModel) Mount(ctx context.Context) ConnectionState {
	vm.mu.Lock()
	if vm.connection != ConnUnknown {
		state := vm.connection
		vm.mu.Unlock()
		return state
	}
	vm.connection = ConnChecking
	vm.mu.Unlock()

	state := ConnConnected
	if _, err := vm.client.GetHealth(ctx); err != nil {
		vm.logger.Debug("health check failed", "error", err)
		state = ConnFailed
	}

	vm.mu.Lock()
	vm.connection = state
	vm.mu.Unlock()
	return state
}

// Fetch loads the whole collection and makes it visible. The previous
// collection is replaced, never merged.
func (vm *ViewModel) Fetch(ctx context.Context) error {
	records, err := vm.client.ListRecords(ctx)
	if err != nil {
		vm.fail(ctx, NoticeLoadFailed, "list records failed", err)
		return err
	}

	vm.mu.Lock()
	vm.records = records
	vm.visible = true
	vm.mu.Unlock()
	return nil
}

// BeginEdit puts the row with the given id into edit mode, seeded with its
// current name. Any other row's unsaved edit text is discarded.
func (vm *ViewModel) BeginEdit(id int64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.editing = id
	vm.editText = ""
	for _, rec := range vm.records {
		if rec.ID == id {
			vm.editText = rec.Name
			break
		}
	}
}

func (vm *ViewModel) SetEditText(text string) {
	vm.mu.Lock()
	vm.editText = text
	vm.mu.Unlock()
}

// CancelEdit leaves edit mode without saving.
func (vm *ViewModel) CancelEdit() {
	vm.mu.Lock()
	vm.editing = 0
	vm.editText = ""
	vm.mu.Unlock()
}

// SaveEdit sends the edited name for the row in edit mode.
func (vm *ViewModel) SaveEdit(ctx context.Context) error {
	vm.mu.Lock()
	id, text := vm.editing, vm.editText
	vm.mu.Unlock()

	if id == 0 {
		return ErrNotEditing
	}
	name := strings.TrimSpace(text)
	if name == "" {
		vm.prompter.Notice(ctx, NoticeNameRequired)
		return ErrBlankName
	}

	return vm.mutate(ctx, id, NoticeUpdateFailed, func() error {
		_, err := vm.client.UpdateRecord(ctx, id, name)
		return err
	}, func() {
		vm.clearEdit(id)
	})
}

// ToggleAdd opens or closes the add form. Closing keeps the typed text.
func (vm *ViewModel) ToggleAdd() {
	vm.mu.Lock()
	vm.addOpen = !vm.addOpen
	vm.mu.Unlock()
}

func (vm *ViewModel) SetAddText(text string) {
	vm.mu.Lock()
	vm.addText = text
	vm.mu.Unlock()
}

// SubmitAdd creates a record from the add form. Blank text is rejected with a
// notice before any request is made.
func (vm *ViewModel) SubmitAdd(ctx context.Context) error {
	vm.mu.Lock()
	text := vm.addText
	vm.mu.Unlock()

	name := strings.TrimSpace(text)
	if name == "" {
		vm.prompter.Notice(ctx, NoticeNameRequired)
		return ErrBlankName
	}

	return vm.mutate(ctx, NewRecordKey, NoticeAddFailed, func() error {
		_, err := vm.client.CreateRecord(ctx, name)
		return err
	}, func() {
		vm.addOpen = false
		vm.addText = ""
	})
}

// Delete asks for confirmation and then deletes the record.
func (vm *ViewModel) Delete(ctx context.Context, id int64) error {
	if !vm.prompter.Confirm(ctx, "Are you sure you want to delete this record?") {
		return ErrDeclined
	}

	return vm.mutate(ctx, id, NoticeDeleteFailed, func() error {
		_, err := vm.client.DeleteRecord(ctx, id)
		return err
	}, func() {
		vm.clearEdit(id)
	})
}

// mutate runs call under the busy marker for key. On success it reloads the
// collection and then runs reset with the lock held, whether or not the
// reload worked. reset clears only the state owned by the finished action.
func (vm *ViewModel) mutate(ctx context.Context, key int64, notice string, call func() error, reset func()) error {
	if !vm.acquire(key) {
		return ErrBusy
	}
	defer vm.release(key)

	if err := call(); err != nil {
		vm.fail(ctx, notice, "mutation failed", err, "key", key)
		return err
	}

	reloadErr := vm.Fetch(ctx)

	vm.mu.Lock()
	reset()
	vm.mu.Unlock()

	return reloadErr
}

// clearEdit leaves edit mode if id is still the row being edited. Callers
// hold vm.mu.
func (vm *ViewModel) clearEdit(id int64) {
	if vm.editing != id {
		return
	}
	vm.editing = 0
	vm.editText = ""
}

func (vm *ViewModel) acquire(key int64) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if _, ok := vm.busy[key]; ok {
		return false
	}
	vm.busy[key] = struct{}{}
	return true
}

func (vm *ViewModel) release(key int64) {
	vm.mu.Lock()
	delete(vm.busy, key)
	vm.mu.Unlock()
}

func (vm *ViewModel) fail(ctx context.Context, notice, msg string, err error, attrs ...any) {
	vm.logger.Debug(msg, append([]any{"error", err}, attrs...)...)
	vm.prompter.Notice(ctx, notice)
}
