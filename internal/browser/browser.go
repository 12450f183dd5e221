package browser

import (
	"context"
	"errors"
	"slices"

	"github.com/muurk/plantdeck/internal/catalog"
)

// Lifecycle is the status of one asynchronous read
type Lifecycle int

const (
	LifecycleIdle Lifecycle = iota
	LifecycleLoading
	LifecycleSuccess
	LifecycleError
)

// String returns the lifecycle name
func (l Lifecycle) String() string {
	switch l {
	case LifecycleIdle:
		return "idle"
	case LifecycleLoading:
		return "loading"
	case LifecycleSuccess:
		return "success"
	case LifecycleError:
		return "error"
	default:
		return "unknown"
	}
}

// CategoryPanel is what the category area shows
type CategoryPanel int

const (
	CategoryPending CategoryPanel = iota
	CategoryFailed
	CategoryButtons
)

// ItemPanel is what the item area shows, in precedence order
type ItemPanel int

const (
	ItemPending ItemPanel = iota
	ItemFailed
	ItemGrid
	ItemPrompt
)

// Ticket tags one item read. Only the ticket of the latest selection can
// commit its result.
type Ticket struct {
	Generation uint64
	Category   string
}

// Fetch runs one read and turns a failure into a *LoadError of the given
// kind. On failure the returned value is always the zero value.
func Fetch[T any](ctx context.Context, kind ErrorKind, read func(context.Context) (T, error)) (T, error) {
	v, err := read(ctx)
	if err != nil {
		var zero T
		return zero, &LoadError{Kind: kind, Err: err}
	}
	return v, nil
}

// Browser holds the category loader and item browser state.
// It has no I/O of its own; callers issue the reads and report back.
// The zero value is ready to use.
type Browser struct {
	categoriesRequested bool
	categoryState       Lifecycle
	categories          []catalog.Category
	categoryErr         *LoadError

	selected   string
	generation uint64
	itemState  Lifecycle
	items      []catalog.Item
	itemErr    *LoadError
}

// New returns an empty browser: no categories, no selection
func New() Browser {
	return Browser{}
}

// BeginCategories marks the category read as in flight. It reports true
// only the first time it is called; the category list is read once per
// browser lifetime.
func (b *Browser) BeginCategories() bool {
	if b.categoriesRequested {
		return false
	}
	b.categoriesRequested = true
	b.categoryState = LifecycleLoading
	return true
}

// CompleteCategories stores the outcome of the category read
func (b *Browser) CompleteCategories(categories []catalog.Category, err error) {
	if err != nil {
		b.categoryErr = asLoadError(CategoryLoadError, err)
		b.categories = nil
		b.categoryState = LifecycleError
		return
	}
	b.categoryErr = nil
	b.categories = slices.Clone(categories)
	b.categoryState = LifecycleSuccess
}

// Categories returns the loaded categories in API order
func (b *Browser) Categories() []catalog.Category {
	return slices.Clone(b.categories)
}

// CategoryState returns the lifecycle of the category read
func (b *Browser) CategoryState() Lifecycle {
	return b.categoryState
}

// CategoryError returns the category load failure, or nil
func (b *Browser) CategoryError() error {
	if b.categoryErr == nil {
		return nil
	}
	return b.categoryErr
}

// CategoryPanel reports what the category area should show
func (b *Browser) CategoryPanel() CategoryPanel {
	switch b.categoryState {
	case LifecycleError:
		return CategoryFailed
	case LifecycleSuccess:
		return CategoryButtons
	default:
		return CategoryPending
	}
}

// SelectCategory starts a new browsing action for name. It synchronously
// records the selection, clears items and error, enters loading and
// returns the ticket the caller must hand back to CompleteItems.
func (b *Browser) SelectCategory(name string) Ticket {
	b.selected = name
	b.items = nil
	b.itemErr = nil
	b.itemState = LifecycleLoading
	b.generation++
	return b.Current()
}

// Current returns the ticket of the latest selection
func (b *Browser) Current() Ticket {
	return Ticket{Generation: b.generation, Category: b.selected}
}

// IsStale reports whether a later selection superseded t
func (b *Browser) IsStale(t Ticket) bool {
	return t.Generation != b.generation
}

// CompleteItems commits the outcome of the item read tagged t. A stale
// ticket is dropped without touching state; the return value reports
// whether the result was committed.
func (b *Browser) CompleteItems(t Ticket, items []catalog.Item, err error) bool {
	if b.IsStale(t) {
		return false
	}
	if err != nil {
		b.itemErr = asLoadError(ItemLoadError, err)
		b.items = nil
		b.itemState = LifecycleError
		return true
	}
	b.itemErr = nil
	b.items = slices.Clone(items)
	b.itemState = LifecycleSuccess
	return true
}

// Selected returns the selected category name ("" when none)
func (b *Browser) Selected() string {
	return b.selected
}

// IsSelected reports whether name is the selected category
func (b *Browser) IsSelected(name string) bool {
	return b.generation > 0 && b.selected == name
}

// Items returns the current items in API order
func (b *Browser) Items() []catalog.Item {
	return slices.Clone(b.items)
}

// ItemState returns the lifecycle of the latest browsing action
func (b *Browser) ItemState() Lifecycle {
	return b.itemState
}

// Loading reports whether an item read is in flight
func (b *Browser) Loading() bool {
	return b.itemState == LifecycleLoading
}

// ItemError returns the item load failure, or nil
func (b *Browser) ItemError() error {
	if b.itemErr == nil {
		return nil
	}
	return b.itemErr
}

// ItemPanel reports what the item area should show:
// loading, then error, then a non-empty grid, then the prompt.
func (b *Browser) ItemPanel() ItemPanel {
	switch {
	case b.itemState == LifecycleLoading:
		return ItemPending
	case b.itemErr != nil:
		return ItemFailed
	case len(b.items) > 0:
		return ItemGrid
	default:
		return ItemPrompt
	}
}

func asLoadError(kind ErrorKind, err error) *LoadError {
	var loadErr *LoadError
	if errors.As(err, &loadErr) && loadErr.Kind == kind {
		return loadErr
	}
	return &LoadError{Kind: kind, Err: err}
}
