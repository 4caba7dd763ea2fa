package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
)

type AccountsModel struct {
	CommonModel
	accountService *account.Service

	table    table.Model
	accounts []*account.Account

	loading bool
	err     error
	status  string
}

func NewAccountsModel(accountSvc *account.Service) AccountsModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 16},
		{Title: "Currency", Width: 8},
		{Title: "Balance", Width: 14},
		{Title: "Active", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return AccountsModel{
		accountService: accountSvc,
		table:          t,
	}
}

func (m AccountsModel) Title() string { return "Accounts" }
func (m AccountsModel) ShortHelp() string {
	return "Esc: back | b: recompute balance | r: refresh"
}

func (m AccountsModel) Init() tea.Cmd {
	return m.loadAccountsCmd()
}

func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAccountsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.accounts = msg.accounts
		m.refreshTable()
		return m, nil

	case recomputeMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error recomputing: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Balance recomputed: %s", FormatAmount(msg.balance))
		return m, m.loadAccountsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadAccountsCmd()
		case "b":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.accounts) {
				return m, m.recomputeCmd(m.accounts[idx].ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m AccountsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *AccountsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.accounts))
	for _, acc := range m.accounts {
		active := "yes"
		if !acc.Active {
			active = "no"
		}
		rows = append(rows, table.Row{
			acc.Name,
			string(acc.Type),
			acc.Currency,
			FormatAmount(acc.Balance),
			active,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadAccountsMsg struct {
	accounts []*account.Account
	err      error
}

func (m AccountsModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.accountService.List(ctx, uuid.Nil)
		return loadAccountsMsg{accounts: accounts, err: err}
	}
}

type recomputeMsg struct {
	balance decimal.Decimal
	err     error
}

func (m AccountsModel) recomputeCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		balance, err := m.accountService.RecomputeBalance(ctx, id)
		return recomputeMsg{balance: balance, err: err}
	}
}
