package table

import (
	"slices"

	"github.com/compozy/members/engine/user"
)

// Table is the view-state model behind the user table. It owns the
// authoritative list; the filtered list, the page slice and the visible
// selection are always derived from it and never stored separately.
//
// Table is not safe for concurrent use; it is driven from a single event loop.
type Table struct {
	users      []user.User
	search     string
	page       int
	pageSize   int
	selection  Selection
	allChecked bool
	editing    map[string]bool
}

// View is a read-only snapshot of what a renderer needs.
type View struct {
	Items      []user.User `json:"items"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	Total      int         `json:"total"`
	TotalPages int         `json:"total_pages"`
	Search     string      `json:"search,omitempty"`
	Selected   []string    `json:"selected,omitempty"`
	AllChecked bool        `json:"all_checked,omitempty"`
}

// New returns an empty table. A page size below 1 selects DefaultPageSize.
func New(pageSize int) *Table {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Table{
		page:     1,
		pageSize: pageSize,
		editing:  make(map[string]bool),
	}
}

// Load replaces the authoritative list and resets all view state except
// the search term.
func (t *Table) Load(users []user.User) {
	t.users = slices.Clone(users)
	t.editing = make(map[string]bool)
	t.selection.Clear()
	t.allChecked = false
	t.page = 1
}

// Users returns a copy of the authoritative list
func (t *Table) Users() []user.User {
	return slices.Clone(t.users)
}

// Len is the size of the authoritative list
func (t *Table) Len() int {
	return len(t.users)
}

func (t *Table) Search() string {
	return t.search
}

// SetSearch replaces the search term. A new result set invalidates the
// pagination position, so the table returns to page 1.
func (t *Table) SetSearch(term string) {
	t.search = term
	t.allChecked = false
	t.moveTo(1)
}

// Filtered returns the users matching the search term
func (t *Table) Filtered() []user.User {
	return user.Filter(t.users, t.search)
}

func (t *Table) PageSize() int {
	return t.pageSize
}

func (t *Table) Page() int {
	return t.page
}

// PageCount is the number of pages of the filtered list, at least 1.
func (t *Table) PageCount() int {
	return PageCount(len(t.Filtered()), t.pageSize)
}

// Visible returns the rows of the current page
func (t *Table) Visible() []user.User {
	return PageSlice(t.Filtered(), t.page, t.pageSize)
}

// SetPage navigates to page n, clamped into range. Navigation clears the
// header checkbox and drops selections that are no longer visible.
func (t *Table) SetPage(n int) {
	t.allChecked = false
	t.moveTo(n)
}

func (t *Table) FirstPage() {
	t.SetPage(1)
}

func (t *Table) LastPage() {
	t.SetPage(t.PageCount())
}

func (t *Table) NextPage() {
	t.SetPage(t.page + 1)
}

func (t *Table) PrevPage() {
	t.SetPage(t.page - 1)
}

// ToggleRow flips the selection of a visible row. Ids that are not on the
// current page are ignored. It reports whether the row is selected afterwards.
func (t *Table) ToggleRow(id string) bool {
	if !t.isVisible(id) {
		return false
	}
	return t.selection.Toggle(id)
}

// ToggleAll drives the header checkbox: when it is checked the selection is
// emptied, otherwise every visible row is selected.
func (t *Table) ToggleAll() {
	if t.allChecked {
		t.selection.Clear()
	} else {
		t.selection.Set(user.IDs(t.Visible()))
	}
	t.allChecked = !t.allChecked
}

// AllChecked is the header checkbox state. It is tracked separately from
// the selection contents.
func (t *Table) AllChecked() bool {
	return t.allChecked
}

// Selected returns the selected ids that are on the current page, in
// selection order.
func (t *Table) Selected() []string {
	visible := t.visibleIDs()
	ids := t.selection.IDs()
	return slices.DeleteFunc(ids, func(id string) bool { return !visible[id] })
}

func (t *Table) IsSelected(id string) bool {
	return t.selection.Has(id) && t.isVisible(id)
}

func (t *Table) HasSelection() bool {
	return len(t.Selected()) > 0
}

// BeginEdit switches the row to editing. It reports false for unknown ids.
func (t *Table) BeginEdit(id string) bool {
	if !t.exists(id) {
		return false
	}
	t.editing[id] = true
	return true
}

// ConfirmEdit leaves editing mode. Field updates are written as they happen,
// so there is nothing else to commit.
func (t *Table) ConfirmEdit(id string) bool {
	if !t.editing[id] {
		return false
	}
	delete(t.editing, id)
	return true
}

func (t *Table) IsEditing(id string) bool {
	return t.editing[id]
}

// Editing returns the ids currently in edit mode
func (t *Table) Editing() []string {
	ids := make([]string, 0, len(t.editing))
	for _, u := range t.users {
		if t.editing[u.ID] && !slices.Contains(ids, u.ID) {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

// UpdateField overwrites field f on every record with the given id. The
// value is not validated. Unlike deletion the current page is kept; the
// edited record may leave the filtered view, in which case the page is
// clamped, the selection pruned and the header checkbox cleared.
func (t *Table) UpdateField(id string, f user.Field, value string) bool {
	before := user.IDs(t.Visible())
	updated := false
	for i := range t.users {
		if t.users[i].ID == id && t.users[i].Set(f, value) {
			updated = true
		}
	}
	if updated {
		t.moveTo(t.page)
		t.uncheckIfChanged(before)
	}
	return updated
}

// DeleteOne removes every record with the given id from the authoritative
// list. Like any change to the list, the table returns to page 1. The header
// checkbox is cleared when the visible rows change.
func (t *Table) DeleteOne(id string) bool {
	if !t.exists(id) {
		return false
	}
	before := user.IDs(t.Visible())
	t.remove(map[string]bool{id: true})
	t.moveTo(1)
	t.uncheckIfChanged(before)
	return true
}

// DeleteSelected removes the visible selected rows from the authoritative
// list, clears the selection and the header checkbox, and keeps the current
// page unless it no longer exists. It returns the number of records removed.
func (t *Table) DeleteSelected() int {
	ids := t.Selected()
	if len(ids) == 0 {
		t.selection.Clear()
		t.allChecked = false
		return 0
	}
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}
	before := len(t.users)
	t.remove(doomed)
	t.selection.Clear()
	t.allChecked = false
	t.moveTo(t.page)
	return before - len(t.users)
}

// Snapshot captures the current view
func (t *Table) Snapshot() View {
	filtered := t.Filtered()
	return View{
		Items:      PageSlice(filtered, t.page, t.pageSize),
		Page:       t.page,
		PageSize:   t.pageSize,
		Total:      len(filtered),
		TotalPages: PageCount(len(filtered), t.pageSize),
		Search:     t.search,
		Selected:   t.Selected(),
		AllChecked: t.allChecked,
	}
}

// moveTo sets the page, clamped, and drops selections outside the page.
func (t *Table) moveTo(page int) {
	t.page = ClampPage(page, len(t.Filtered()), t.pageSize)
	visible := t.visibleIDs()
	t.selection.Retain(func(id string) bool { return visible[id] })
}

func (t *Table) remove(ids map[string]bool) {
	t.users = slices.DeleteFunc(t.users, func(u user.User) bool { return ids[u.ID] })
	for id := range ids {
		delete(t.editing, id)
		t.selection.Remove(id)
	}
}

// uncheckIfChanged clears the header checkbox when the visible rows differ
// from before.
func (t *Table) uncheckIfChanged(before []string) {
	if !slices.Equal(before, user.IDs(t.Visible())) {
		t.allChecked = false
	}
}

func (t *Table) exists(id string) bool {
	return slices.ContainsFunc(t.users, func(u user.User) bool { return u.ID == id })
}

func (t *Table) isVisible(id string) bool {
	return slices.ContainsFunc(t.Visible(), func(u user.User) bool { return u.ID == id })
}

func (t *Table) visibleIDs() map[string]bool {
	visible := t.Visible()
	ids := make(map[string]bool, len(visible))
	for _, u := range visible {
		ids[u.ID] = true
	}
	return ids
}
