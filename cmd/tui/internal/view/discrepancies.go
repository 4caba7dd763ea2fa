package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/reconcile"
)

type discrepancyState int

const (
	discrepancyStatePick discrepancyState = iota
	discrepancyStateReport
)

// DiscrepancyModel walks an account's latest checkpoint window and shows the
// dates where declared balances disagree with the rolled-forward ledger.
type DiscrepancyModel struct {
	CommonModel
	accountService   *account.Service
	reconcileService *reconcile.Service

	state discrepancyState

	accountTable table.Model
	accounts     []*account.Account

	reportTable table.Model
	report      *reconcile.Report

	loading bool
	err     error
}

func NewDiscrepancyModel(accountSvc *account.Service, reconcileSvc *reconcile.Service) DiscrepancyModel {
	accountColumns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 16},
		{Title: "Balance", Width: 14},
	}

	at := table.New(
		table.WithColumns(accountColumns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	reportColumns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Expected", Width: 14},
		{Title: "Declared", Width: 14},
		{Title: "Difference", Width: 14},
		{Title: "Txs", Width: 5},
	}

	rt := table.New(
		table.WithColumns(reportColumns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	for _, t := range []*table.Model{&at, &rt} {
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
	}

	return DiscrepancyModel{
		accountService:   accountSvc,
		reconcileService: reconcileSvc,
		accountTable:     at,
		reportTable:      rt,
	}
}

func (m DiscrepancyModel) Title() string { return "Discrepancies" }
func (m DiscrepancyModel) ShortHelp() string {
	if m.state == discrepancyStateReport {
		return "Esc: back to accounts"
	}
	return "Esc: back | Enter: investigate latest checkpoint"
}

func (m DiscrepancyModel) Init() tea.Cmd {
	return m.loadAccountsCmd()
}

func (m DiscrepancyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case discrepancyAccountsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.accounts = msg.accounts
		m.refreshAccountTable()
		return m, nil

	case discrepancyReportMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.report = msg.report
		m.state = discrepancyStateReport
		m.refreshReportTable()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.state == discrepancyStateReport {
				m.state = discrepancyStatePick
				m.report = nil
				m.err = nil
				return m, nil
			}
			return m, Back
		case "enter":
			if m.state == discrepancyStatePick {
				idx := m.accountTable.Cursor()
				if idx >= 0 && idx < len(m.accounts) {
					m.loading = true
					return m, m.investigateCmd(m.accounts[idx].ID)
				}
			}
		}
	}

	var cmd tea.Cmd
	if m.state == discrepancyStateReport {
		m.reportTable, cmd = m.reportTable.Update(msg)
	} else {
		m.accountTable, cmd = m.accountTable.Update(msg)
	}
	return m, cmd
}

func (m DiscrepancyModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Investigating...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	if m.state == discrepancyStateReport && m.report != nil {
		windowStart := "ledger start"
		if m.report.WindowStart != nil {
			windowStart = FormatDate(*m.report.WindowStart)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Window: %s to %s\n", windowStart, FormatDate(m.report.WindowEnd))
		fmt.Fprintf(&b, "Opening: %s | Expected closing: %s | Declared closing: %s\n",
			FormatAmount(m.report.OpeningBalance),
			FormatAmount(m.report.ExpectedClosing),
			FormatAmount(m.report.DeclaredClosing))

		if len(m.report.Discrepancies) == 0 {
			b.WriteString("\nNo discrepancies. The ledger agrees with every declared balance.")
			return lipgloss.NewStyle().Padding(1).Render(b.String())
		}

		content := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(b.String()),
			border.Render(m.reportTable.View()),
		)

		return lipgloss.NewStyle().Padding(1).Render(content)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render("Pick an account to reconcile"),
		border.Render(m.accountTable.View()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *DiscrepancyModel) refreshAccountTable() {
	rows := make([]table.Row, 0, len(m.accounts))
	for _, acc := range m.accounts {
		rows = append(rows, table.Row{
			acc.Name,
			string(acc.Type),
			FormatAmount(acc.Balance),
		})
	}
	m.accountTable.SetRows(rows)
}

func (m *DiscrepancyModel) refreshReportTable() {
	rows := make([]table.Row, 0, len(m.report.Discrepancies))
	for _, d := range m.report.Discrepancies {
		rows = append(rows, table.Row{
			FormatDate(d.Date),
			FormatAmount(d.Expected),
			FormatAmount(d.Declared),
			FormatAmount(d.Difference),
			fmt.Sprintf("%d", len(d.Transactions)),
		})
	}
	m.reportTable.SetRows(rows)
}

// Messages

type discrepancyAccountsMsg struct {
	accounts []*account.Account
	err      error
}

func (m DiscrepancyModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.accountService.List(ctx, uuid.Nil)
		return discrepancyAccountsMsg{accounts: accounts, err: err}
	}
}

type discrepancyReportMsg struct {
	report *reconcile.Report
	err    error
}

func (m DiscrepancyModel) investigateCmd(accountID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		report, err := m.reconcileService.Investigate(ctx, accountID, nil)
		return discrepancyReportMsg{report: report, err: err}
	}
}
