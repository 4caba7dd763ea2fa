package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/split"
)

type ledgerState int

const (
	ledgerStateBrowse ledgerState = iota
	ledgerStateSplit
)

type LedgerModel struct {
	CommonModel
	ledgerService *ledger.Service
	splitService  *split.Service

	state ledgerState
	table table.Model
	txs   []*ledger.RawTransaction
	form  *huh.Form

	dateFilterIdx int

	filter  ledger.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formAmount string
	formType   string
}

func NewLedgerModel(ledgerSvc *ledger.Service, splitSvc *split.Service) LedgerModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Debit", Width: 12},
		{Title: "Credit", Width: 12},
		{Title: "Balance", Width: 12},
		{Title: "Description", Width: 44},
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

	return LedgerModel{
		ledgerService: ledgerSvc,
		splitService:  splitSvc,
		table:         t,
		filter:        ledger.ListFilter{},
	}
}

func (m LedgerModel) Title() string { return "Ledger" }
func (m LedgerModel) ShortHelp() string {
	if m.state == ledgerStateSplit {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | s: split | u: unsplit | d: date filter | r: refresh"
}

func (m LedgerModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLedgerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.txs = msg.txs
		m.refreshTable()
		return m, nil

	case ledgerActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = ledgerStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case ledgerStateBrowse:
		return m.updateBrowse(msg)
	case ledgerStateSplit:
		return m.updateSplit(msg)
	}

	return m, nil
}

func (m LedgerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			m.applyFilter()
			return m, m.loadTxsCmd()
		case "s":
			return m.enterSplitMode()
		case "u":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.txs) {
				return m, m.unsplitCmd(m.txs[idx].ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// enterSplitMode opens a form that carves one line item out of the selected
// transaction; the remainder keeps the direction default.
func (m LedgerModel) enterSplitMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return m, nil
	}

	tx := m.txs[idx]
	m.formAmount = ""
	m.formType = string(ledger.TypeExpense)

	typeOptions := []huh.Option[string]{
		huh.NewOption("Expense", string(ledger.TypeExpense)),
		huh.NewOption("Income", string(ledger.TypeIncome)),
		huh.NewOption("Transfer out", string(ledger.TypeTransferOut)),
		huh.NewOption("Transfer in", string(ledger.TypeTransferIn)),
		huh.NewOption("Card payment", string(ledger.TypeCardPayment)),
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("First line amount (of %s)", FormatAmount(tx.Amount()))).
				Value(&m.formAmount).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("invalid amount")
					}
					if !d.IsPositive() || !d.LessThan(tx.Amount()) {
						return fmt.Errorf("amount must be between 0 and %s", FormatAmount(tx.Amount()))
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("type").
				Title("First line type").
				Options(typeOptions...).
				Value(&m.formType),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = ledgerStateSplit
	m.table.Blur()
	return m, m.form.Init()
}

func (m LedgerModel) updateSplit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = ledgerStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.splitCmd()
}

func (m LedgerModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	dateLabels := []string{"All Time", "This Month", "Last Month"}

	header := fmt.Sprintf("Filter: [d] Date: %s", activeStyle(dateLabels[m.dateFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == ledgerStateSplit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Split Transaction\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *LedgerModel) applyFilter() {
	now := time.Now()
	switch m.dateFilterIdx {
	case 1:
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.filter.StartDate = &s
		m.filter.EndDate = &e
	case 2:
		s := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.filter.StartDate = &s
		m.filter.EndDate = &e
	default:
		m.filter.StartDate = nil
		m.filter.EndDate = nil
	}
}

func (m *LedgerModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		debit, credit, balance := "", "", ""
		if tx.Debit != nil {
			debit = FormatAmount(*tx.Debit)
		}
		if tx.Credit != nil {
			credit = FormatAmount(*tx.Credit)
		}
		if tx.Balance != nil {
			balance = FormatAmount(*tx.Balance)
		}
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			debit,
			credit,
			balance,
			tx.Description,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadLedgerMsg struct {
	txs []*ledger.RawTransaction
	err error
}

func (m LedgerModel) loadTxsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.ledgerService.List(ctx, m.filter)
		return loadLedgerMsg{txs: txs, err: err}
	}
}

type ledgerActionMsg struct {
	status string
	err    error
}

func (m LedgerModel) splitCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	tx := m.txs[idx]
	first, err := decimal.NewFromString(strings.TrimSpace(m.formAmount))
	if err != nil {
		return func() tea.Msg { return ledgerActionMsg{err: err} }
	}

	rest := tx.Amount().Sub(first)
	typ := ledger.TypeCode(m.formType)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.splitService.Split(ctx, tx.ID, []split.Item{
			{Type: typ, Amount: first},
			{Amount: rest},
		})
		if err != nil {
			return ledgerActionMsg{err: err}
		}

		return ledgerActionMsg{status: "Transaction split"}
	}
}

func (m LedgerModel) unsplitCmd(rawID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.splitService.Unsplit(ctx, rawID); err != nil {
			return ledgerActionMsg{err: err}
		}

		return ledgerActionMsg{status: "Transaction restored to a single line"}
	}
}
