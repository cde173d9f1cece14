package components

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/compozy/members/cli/helpers"
	"github.com/compozy/members/cli/tui/styles"
	usertable "github.com/compozy/members/engine/table"
	"github.com/compozy/members/engine/table/pager"
	"github.com/compozy/members/engine/user"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeEdit
)

const (
	checkboxOn   = "[x]"
	checkboxOff  = "[ ]"
	editMarker   = "▏"
	actionsLabel = "e edit · d del"
	editingLabel = "enter save"
	// header row plus its bottom border
	gridHeaderHeight = 2
	// lines outside the grid: title, search box, editor, pager, status, help
	chromeHeight = 10
)

// UserTableOption configures a UserTable
type UserTableOption func(*UserTable)

// WithClipboard replaces the system clipboard writer
func WithClipboard(write func(string) error) UserTableOption {
	return func(ut *UserTable) {
		ut.copy = write
	}
}

// WithPagerOptions shapes the page-number control
func WithPagerOptions(opts pager.Options) UserTableOption {
	return func(ut *UserTable) {
		ut.pagerOpts = opts
	}
}

// UserTable is the interactive members table. All state lives in the
// underlying view model; the component only renders it and maps keys to
// operations.
type UserTable struct {
	state     *usertable.Table
	grid      table.Model
	search    textinput.Model
	editor    *rowEditor
	help      help.Model
	keys      UserTableKeyMap
	pagerOpts pager.Options
	mode      inputMode
	status    string
	copy      func(string) error
	width     int
	height    int
}

// NewUserTable creates an empty table showing pageSize rows per page
func NewUserTable(pageSize int, opts ...UserTableOption) *UserTable {
	search := textinput.New()
	search.Placeholder = "Search by name, email or role"
	search.Prompt = "🔍 "
	search.CharLimit = 128

	grid := table.New(
		table.WithColumns(buildUserTableColumns(0, false)),
		table.WithFocused(true),
		table.WithHeight(max(pageSize, 1)+gridHeaderHeight),
	)
	grid.SetStyles(defaultUserTableStyles())

	ut := &UserTable{
		state:     usertable.New(pageSize),
		grid:      grid,
		search:    search,
		help:      help.New(),
		keys:      DefaultUserTableKeyMap(),
		pagerOpts: pager.DefaultOptions(),
		copy:      clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(ut)
	}
	ut.refresh()
	return ut
}

func buildUserTableColumns(width int, allChecked bool) []table.Column {
	header := checkboxOff
	if allChecked {
		header = checkboxOn
	}
	if width <= 0 {
		return []table.Column{
			{Title: header, Width: 3},
			{Title: user.FieldName.Title(), Width: 24},
			{Title: user.FieldEmail.Title(), Width: 32},
			{Title: user.FieldRole.Title(), Width: 10},
			{Title: "Actions", Width: 14},
		}
	}
	available := max(width-3-14-10, 30) // checkbox, actions, padding
	return []table.Column{
		{Title: header, Width: 3},
		{Title: user.FieldName.Title(), Width: max(10, available*35/100)},
		{Title: user.FieldEmail.Title(), Width: max(14, available*45/100)},
		{Title: user.FieldRole.Title(), Width: max(6, available*20/100)},
		{Title: "Actions", Width: 14},
	}
}

func defaultUserTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.Highlight).
		Background(styles.Surface).
		Bold(true)
	return s
}

// SetUsers replaces the table contents
func (ut *UserTable) SetUsers(users []user.User) {
	ut.closeEditor()
	ut.state.Load(users)
	ut.grid.SetCursor(0)
	ut.refresh()
}

// SetSearch sets the search term as if it had been typed
func (ut *UserTable) SetSearch(term string) {
	ut.search.SetValue(term)
	ut.state.SetSearch(ut.search.Value())
	ut.grid.SetCursor(0)
	ut.refresh()
}

// SetPage navigates to page n, clamped into range
func (ut *UserTable) SetPage(n int) {
	ut.state.SetPage(n)
	ut.grid.SetCursor(0)
	ut.refresh()
}

// SetSize sets the component size
func (ut *UserTable) SetSize(width, height int) {
	ut.width = width
	ut.height = height
	ut.help.Width = width
	ut.search.Width = max(width-8, 10)
	rows := max(1, min(ut.state.PageSize(), height-chromeHeight-gridHeaderHeight))
	ut.grid.SetHeight(rows + gridHeaderHeight)
	ut.refresh()
}

// State exposes the view model
func (ut *UserTable) State() *usertable.Table {
	return ut.state
}

// KeyMap returns the active key bindings
func (ut *UserTable) KeyMap() UserTableKeyMap {
	return ut.keys
}

// Capturing reports whether keystrokes are going to a text input
func (ut *UserTable) Capturing() bool {
	return ut.mode != modeBrowse
}

// Status is the message left by the last action
func (ut *UserTable) Status() string {
	return ut.status
}

// Focused returns the user under the cursor
func (ut *UserTable) Focused() (user.User, bool) {
	visible := ut.state.Visible()
	i := ut.grid.Cursor()
	if i < 0 || i >= len(visible) {
		return user.User{}, false
	}
	return visible[i], true
}

// Update handles component updates
func (ut *UserTable) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return ut.forward(msg)
	}
	switch ut.mode {
	case modeSearch:
		return ut.updateSearch(keyMsg)
	case modeEdit:
		return ut.updateEditor(keyMsg)
	default:
		ut.status = ""
		return ut.updateBrowse(keyMsg)
	}
}

func (ut *UserTable) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	switch ut.mode {
	case modeSearch:
		ut.search, cmd = ut.search.Update(msg)
		cmds = append(cmds, cmd)
	case modeEdit:
		cmds = append(cmds, ut.editor.update(msg))
	}
	ut.grid, cmd = ut.grid.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (ut *UserTable) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, ut.keys.Search):
		ut.mode = modeSearch
		ut.grid.Blur()
		return ut.search.Focus()
	case key.Matches(msg, ut.keys.ClearSearch):
		if ut.search.Value() != "" {
			ut.SetSearch("")
		}
	case key.Matches(msg, ut.keys.Toggle):
		if u, ok := ut.Focused(); ok {
			ut.state.ToggleRow(u.ID)
		}
	case key.Matches(msg, ut.keys.ToggleAll):
		ut.state.ToggleAll()
	case key.Matches(msg, ut.keys.Edit):
		return ut.openEditor()
	case key.Matches(msg, ut.keys.Delete):
		if u, ok := ut.Focused(); ok && ut.state.DeleteOne(u.ID) {
			ut.status = fmt.Sprintf("Deleted %s", displayName(u))
			ut.grid.SetCursor(0)
		}
	case key.Matches(msg, ut.keys.DeleteSelected):
		n := ut.state.DeleteSelected()
		ut.status = fmt.Sprintf("Deleted %d %s", n, helpers.Pluralize(n, "user", "users"))
	case key.Matches(msg, ut.keys.NextPage):
		ut.movePage(ut.state.NextPage)
	case key.Matches(msg, ut.keys.PrevPage):
		ut.movePage(ut.state.PrevPage)
	case key.Matches(msg, ut.keys.FirstPage):
		ut.movePage(ut.state.FirstPage)
	case key.Matches(msg, ut.keys.LastPage):
		ut.movePage(ut.state.LastPage)
	case key.Matches(msg, ut.keys.Copy):
		ut.copyEmail()
	case key.Matches(msg, ut.keys.Help):
		ut.help.ShowAll = !ut.help.ShowAll
	default:
		var cmd tea.Cmd
		ut.grid, cmd = ut.grid.Update(msg)
		return cmd
	}
	ut.refresh()
	return nil
}

func (ut *UserTable) movePage(move func()) {
	before := ut.state.Page()
	move()
	if ut.state.Page() != before {
		ut.grid.SetCursor(0)
	}
}

func (ut *UserTable) copyEmail() {
	u, ok := ut.Focused()
	if !ok {
		return
	}
	if err := ut.copy(u.Email); err != nil {
		ut.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	ut.status = fmt.Sprintf("Copied %s", u.Email)
}

func (ut *UserTable) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
		ut.mode = modeBrowse
		ut.search.Blur()
		ut.grid.Focus()
		ut.refresh()
		return nil
	}
	var cmd tea.Cmd
	before := ut.search.Value()
	ut.search, cmd = ut.search.Update(msg)
	if term := ut.search.Value(); term != before {
		ut.state.SetSearch(term)
		ut.grid.SetCursor(0)
		ut.refresh()
	}
	return cmd
}

func (ut *UserTable) openEditor() tea.Cmd {
	u, ok := ut.Focused()
	if !ok || !ut.state.BeginEdit(u.ID) {
		return nil
	}
	ut.editor = newRowEditor(u, ut.width)
	ut.mode = modeEdit
	ut.grid.Blur()
	ut.refresh()
	return ut.editor.focusCurrent()
}

func (ut *UserTable) closeEditor() {
	if ut.editor != nil {
		ut.state.ConfirmEdit(ut.editor.id)
	}
	ut.editor = nil
	ut.mode = modeBrowse
	ut.grid.Focus()
}

func (ut *UserTable) updateEditor(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, ut.keys.Confirm):
		ut.closeEditor()
		ut.refresh()
		return nil
	case key.Matches(msg, ut.keys.NextField):
		return ut.editor.cycle(1)
	case key.Matches(msg, ut.keys.PrevField):
		return ut.editor.cycle(-1)
	}
	field, before := ut.editor.current()
	cmd := ut.editor.update(msg)
	if _, after := ut.editor.current(); after != before {
		ut.state.UpdateField(ut.editor.id, field, after)
		ut.refresh()
	}
	return cmd
}

// refresh rebuilds the grid rows from the view model
func (ut *UserTable) refresh() {
	ut.keys.DeleteSelected.SetEnabled(ut.state.HasSelection())
	columns := buildUserTableColumns(ut.width, ut.state.AllChecked())
	ut.grid.SetColumns(columns)
	visible := ut.state.Visible()
	rows := make([]table.Row, 0, len(visible))
	for _, u := range visible {
		rows = append(rows, ut.buildRow(u, columns))
	}
	ut.grid.SetRows(rows)
	if ut.grid.Cursor() >= len(rows) {
		ut.grid.SetCursor(max(len(rows)-1, 0))
	}
}

// buildRow renders u with each field cut to its column width
func (ut *UserTable) buildRow(u user.User, columns []table.Column) table.Row {
	check := checkboxOff
	if ut.state.IsSelected(u.ID) {
		check = checkboxOn
	}
	cells := make([]string, 0, len(user.Fields()))
	for i, f := range user.Fields() {
		width := columns[i+1].Width
		value := u.Get(f)
		if ut.editor != nil && ut.editor.id == u.ID && ut.editor.focus == i {
			value = helpers.Truncate(value, width-1) + editMarker
		} else {
			value = helpers.Truncate(value, width)
		}
		cells = append(cells, value)
	}
	actions := actionsLabel
	if ut.state.IsEditing(u.ID) {
		actions = editingLabel
	}
	return table.Row{check, cells[0], cells[1], cells[2], actions}
}

// View renders the table
func (ut *UserTable) View() string {
	sections := []string{
		ut.renderHeader(),
		ut.renderSearch(),
		ut.grid.View(),
	}
	if len(ut.state.Visible()) == 0 {
		sections = append(sections, styles.HelpStyle.Render("No users found"))
	}
	if ut.editor != nil {
		sections = append(sections, ut.editor.view())
	}
	sections = append(sections, ut.renderFooter())
	if ut.status != "" {
		sections = append(sections, styles.SuccessStyle.Render(ut.status))
	}
	sections = append(sections, ut.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (ut *UserTable) renderHeader() string {
	parts := []string{
		styles.TitleStyle.Render("Members"),
		styles.InfoStyle.Render(fmt.Sprintf("Total: %d", len(ut.state.Filtered()))),
	}
	if n := len(ut.state.Selected()); n > 0 {
		parts = append(parts, styles.WarningStyle.Render(fmt.Sprintf("Selected: %d", n)))
	}
	if n := len(ut.state.Editing()); n > 0 {
		parts = append(parts, styles.WarningStyle.Render(fmt.Sprintf("Editing: %d", n)))
	}
	if term := ut.state.Search(); term != "" {
		parts = append(parts, styles.HelpStyle.Render(fmt.Sprintf("Search: %s", term)))
	}
	return strings.Join(parts, " • ")
}

func (ut *UserTable) renderSearch() string {
	style := styles.SearchStyle
	if ut.mode == modeSearch {
		style = styles.SearchFocusedStyle
	}
	return style.Render(ut.search.View())
}

func (ut *UserTable) renderFooter() string {
	button := styles.DeleteButtonDisabledStyle.Render("Delete Selected")
	if ut.state.HasSelection() {
		button = styles.DeleteButtonStyle.Render("Delete Selected")
	}
	pages := RenderPager(ut.state.PageCount(), ut.state.Page(), ut.pagerOpts)
	info := styles.PaginationStyle.Render(fmt.Sprintf("Page %d of %d", ut.state.Page(), ut.state.PageCount()))
	return lipgloss.JoinHorizontal(lipgloss.Center, button, "  ", pages, info)
}

func (ut *UserTable) renderHelp() string {
	if ut.mode == modeEdit {
		return ut.help.View(editKeyMap{ut.keys})
	}
	return ut.help.View(ut.keys)
}

func displayName(u user.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.ID
}
