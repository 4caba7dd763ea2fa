package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateAccountSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	accountService *account.Service
	importService  *importer.Service
	ledgerService  *ledger.Service

	state      importState
	filePicker filepicker.Model

	accounts      []*account.Account
	accountCursor int

	status string
	err    error
}

func NewImportModel(accountSvc *account.Service, impSvc *importer.Service, ledgerSvc *ledger.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		accountService: accountSvc,
		importService:  impSvc,
		ledgerService:  ledgerSvc,
		filePicker:     fp,
	}
}

func (m ImportModel) Title() string { return "Import Statement" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return tea.Batch(m.filePicker.Init(), m.loadAccountsCmd())
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateAccountSelect {
			return m.updateAccountSelect(msg)
		}

	case importAccountsMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = importStateResult
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.accounts = msg.accounts
		return m, nil

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		if len(msg.result.Conflicts) > 0 {
			m.status = fmt.Sprintf(
				"Nothing imported: %d of %d rows already exist in the ledger.",
				len(msg.result.Conflicts), len(msg.result.Conflicts)+len(msg.result.New))
			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d transactions.", len(msg.result.Imported))
		if msg.result.CheckpointID != nil {
			m.status += " A checkpoint was recorded from the statement's closing balance."
		}
		return m, nil
	}

	if m.state == importStateFilePick {
		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if ok, path := m.filePicker.DidSelectFile(msg); ok {
			m.state = importStateImporting
			return m, m.importCmd(path)
		}

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateAccountSelect
		return m, nil
	case importStateResult:
		m.state = importStateAccountSelect
		m.status = ""
		m.err = nil
		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateAccountSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.accountCursor > 0 {
			m.accountCursor--
		}
	case "down", "j":
		if m.accountCursor < len(m.accounts)-1 {
			m.accountCursor++
		}
	case "enter":
		if len(m.accounts) > 0 {
			m.state = importStateFilePick
			return m, m.filePicker.Init()
		}
	}

	return m, nil
}

func (m ImportModel) View() string {
	pad := lipgloss.NewStyle().Padding(1, 2)

	switch m.state {
	case importStateAccountSelect:
		s := "Import into which account?\n\n"
		for i, acc := range m.accounts {
			cursor := "  "
			if i == m.accountCursor {
				cursor = "> "
			}
			s += fmt.Sprintf("%s%s (%s)\n", cursor, acc.Name, acc.Type)
		}
		if len(m.accounts) == 0 {
			s += "No accounts yet. Create one through the API first.\n"
		}
		return pad.Render(s)

	case importStateFilePick:
		return pad.Render("Pick a statement file:\n\n" + m.filePicker.View())

	case importStateImporting:
		return pad.Render("Importing...")

	case importStateResult:
		return pad.Render(m.status + "\n\nEsc: import another")
	}

	return ""
}

// Messages

type importAccountsMsg struct {
	accounts []*account.Account
	err      error
}

func (m ImportModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.accountService.List(ctx, uuid.Nil)
		return importAccountsMsg{accounts: accounts, err: err}
	}
}

type importResultMsg struct {
	result *ledger.ImportResult
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	accountID := m.accounts[m.accountCursor].ID

	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer file.Close()

		rows, err := m.importService.Import(importer.FormatStatement, file)
		if err != nil {
			return importResultMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.ledgerService.ImportStatement(ctx, accountID, rows)
		return importResultMsg{result: result, err: err}
	}
}
