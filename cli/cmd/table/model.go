package table

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/compozy/members/cli/tui/components"
	"github.com/compozy/members/cli/tui/models"
	"github.com/compozy/members/cli/tui/styles"
	usertable "github.com/compozy/members/engine/table"
	"github.com/compozy/members/engine/table/pager"
	"github.com/compozy/members/engine/user"
	"github.com/compozy/members/pkg/config"
	"github.com/compozy/members/pkg/logger"
)

var _ tea.Model = (*UsersModel)(nil)

// UsersModel is the root model of the interactive table. It shows a spinner
// while the feed loads and then hands the screen to the table component.
type UsersModel struct {
	models.BaseModel
	loader  *usertable.Loader
	spinner spinner.Model
	table   *components.UserTable
	loading bool
	search  string
	page    int
}

type usersLoadedMsg struct {
	users []user.User
}

// NewUsersModel creates the root model. The fetch starts with Init and is
// canceled when the model quits.
func NewUsersModel(
	ctx context.Context,
	loader *usertable.Loader,
	cfg *config.Config,
	search string,
	page int,
	opts ...components.UserTableOption,
) *UsersModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.InfoStyle
	pagerOpts := pager.DefaultOptions()
	pagerOpts.BoundaryCount = cfg.Table.BoundaryCount
	pagerOpts.SiblingCount = cfg.Table.SiblingCount
	opts = append([]components.UserTableOption{components.WithPagerOptions(pagerOpts)}, opts...)
	return &UsersModel{
		BaseModel: models.NewBaseModel(ctx, models.ModeTUI),
		loader:    loader,
		spinner:   s,
		table:     components.NewUserTable(cfg.Table.PageSize, opts...),
		loading:   true,
		search:    search,
		page:      page,
	}
}

func (m *UsersModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadUsers,
	)
}

func (m *UsersModel) loadUsers() tea.Msg {
	ctx := m.Context()
	users := m.loader.Load(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return usersLoadedMsg{users: users}
}

func (m *UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.BaseModel.Update(msg)
		m.table.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if quit := m.BaseModel.Update(msg); quit != nil {
			return m, quit
		}
		if key.Matches(msg, m.table.KeyMap().Quit) && (m.loading || !m.table.Capturing()) {
			m.Quit()
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}
		return m, m.table.Update(msg)
	case usersLoadedMsg:
		if m.IsQuitting() {
			return m, nil
		}
		m.loading = false
		m.table.SetUsers(msg.users)
		if m.search != "" {
			m.table.SetSearch(m.search)
		}
		if m.page > 1 {
			m.table.SetPage(m.page)
		}
		log := logger.FromContext(m.Context())
		if err := m.loader.Err(); err != nil && len(msg.users) == 0 {
			log.Debug("members table is empty after a failed fetch", "fetch_error", err)
		}
		log.Debug("members table ready", "count", len(msg.users))
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.loading {
		return m, nil
	}
	return m, m.table.Update(msg)
}

func (m *UsersModel) View() string {
	if m.IsQuitting() {
		return ""
	}
	if m.loading {
		width, _ := m.Size()
		return fmt.Sprintf("%s\n   %s Loading users...\n\n", components.RenderBanner(width), m.spinner.View())
	}
	return m.table.View()
}

// Loading reports whether the fetch is still running
func (m *UsersModel) Loading() bool {
	return m.loading
}

// Table returns the table component
func (m *UsersModel) Table() *components.UserTable {
	return m.table
}

// Remaining is the number of users left in the table
func (m *UsersModel) Remaining() int {
	return m.table.State().Len()
}
