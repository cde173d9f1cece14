package components

import "github.com/charmbracelet/bubbles/key"

// UserTableKeyMap defines key bindings for the user table
type UserTableKeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Search         key.Binding
	ClearSearch    key.Binding
	Toggle         key.Binding
	ToggleAll      key.Binding
	Edit           key.Binding
	Confirm        key.Binding
	NextField      key.Binding
	PrevField      key.Binding
	Delete         key.Binding
	DeleteSelected key.Binding
	NextPage       key.Binding
	PrevPage       key.Binding
	FirstPage      key.Binding
	LastPage       key.Binding
	Copy           key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultUserTableKeyMap returns the default key bindings
func DefaultUserTableKeyMap() UserTableKeyMap {
	return UserTableKeyMap{
		Up:             newBinding([]string{"up", "k"}, "move up", "↑/k"),
		Down:           newBinding([]string{"down", "j"}, "move down", "↓/j"),
		Search:         newBinding([]string{"/"}, "search", "/"),
		ClearSearch:    newBinding([]string{"esc"}, "clear search", "esc"),
		Toggle:         newBinding([]string{" "}, "select row", "space"),
		ToggleAll:      newBinding([]string{"a"}, "select page", "a"),
		Edit:           newBinding([]string{"e"}, "edit row", "e"),
		Confirm:        newBinding([]string{"enter", "esc"}, "confirm", "enter"),
		NextField:      newBinding([]string{"tab"}, "next field", "tab"),
		PrevField:      newBinding([]string{"shift+tab"}, "prev field", "shift+tab"),
		Delete:         newBinding([]string{"d"}, "delete row", "d"),
		DeleteSelected: newBinding([]string{"D"}, "delete selected", "D"),
		NextPage:       newBinding([]string{"n", "right"}, "next page", "n/→"),
		PrevPage:       newBinding([]string{"p", "left"}, "prev page", "p/←"),
		FirstPage:      newBinding([]string{"home"}, "first page", "home"),
		LastPage:       newBinding([]string{"end"}, "last page", "end"),
		Copy:           newBinding([]string{"y"}, "copy email", "y"),
		Help:           newBinding([]string{"?"}, "toggle help", "?"),
		Quit:           newBinding([]string{"q"}, "quit", "q"),
	}
}

func newBinding(keys []string, help, display string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(display, help),
	)
}

// ShortHelp implements help.KeyMap
func (k UserTableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Toggle, k.Edit, k.Delete, k.DeleteSelected, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k UserTableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage, k.FirstPage, k.LastPage},
		{k.Search, k.ClearSearch, k.Toggle, k.ToggleAll},
		{k.Edit, k.NextField, k.PrevField, k.Confirm},
		{k.Delete, k.DeleteSelected, k.Copy, k.Help, k.Quit},
	}
}

// editKeyMap is shown while a row is being edited
type editKeyMap struct {
	UserTableKeyMap
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Confirm}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
