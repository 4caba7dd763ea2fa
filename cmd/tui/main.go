package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/tally/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/tally/internal/account"
	accountStore "github.com/MrJamesThe3rd/tally/internal/account/store"
	"github.com/MrJamesThe3rd/tally/internal/config"
	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/tally/internal/ledger/store"
	"github.com/MrJamesThe3rd/tally/internal/reconcile"
	"github.com/MrJamesThe3rd/tally/internal/split"
)

type model struct {
	accountService   *account.Service
	ledgerService    *ledger.Service
	splitService     *split.Service
	reconcileService *reconcile.Service
	importService    *importer.Service

	currentView View

	accountsView      view.AccountsModel
	ledgerView        view.LedgerModel
	discrepanciesView view.DiscrepancyModel
	importView        view.ImportModel
}

type View int

const (
	ViewMenu          View = 0
	ViewAccounts      View = 1
	ViewLedger        View = 2
	ViewDiscrepancies View = 3
	ViewImport        View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	store := ledgerStore.New(db)

	accountSvc := account.NewService(accountStore.New(db))
	ledgerSvc := ledger.NewService(store)
	splitSvc := split.NewService(store)
	reconcileSvc := reconcile.NewService(ledgerStore.NewReconcile(db))
	importSvc := importer.NewService()

	return model{
		accountService:    accountSvc,
		ledgerService:     ledgerSvc,
		splitService:      splitSvc,
		reconcileService:  reconcileSvc,
		importService:     importSvc,
		currentView:       ViewMenu,
		accountsView:      view.NewAccountsModel(accountSvc),
		ledgerView:        view.NewLedgerModel(ledgerSvc, splitSvc),
		discrepanciesView: view.NewDiscrepancyModel(accountSvc, reconcileSvc),
		importView:        view.NewImportModel(accountSvc, importSvc, ledgerSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAccounts
				m.accountsView = view.NewAccountsModel(m.accountService)

				return m, m.accountsView.Init()
			case "2":
				m.currentView = ViewLedger
				m.ledgerView = view.NewLedgerModel(m.ledgerService, m.splitService)

				return m, m.ledgerView.Init()
			case "3":
				m.currentView = ViewDiscrepancies
				m.discrepanciesView = view.NewDiscrepancyModel(m.accountService, m.reconcileService)

				return m, m.discrepanciesView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.accountService, m.importService, m.ledgerService)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAccounts:
		var newModel tea.Model
		newModel, cmd = m.accountsView.Update(msg)
		m.accountsView = newModel.(view.AccountsModel)
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewDiscrepancies:
		var newModel tea.Model
		newModel, cmd = m.discrepanciesView.Update(msg)
		m.discrepanciesView = newModel.(view.DiscrepancyModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Tally TUI\n\n" +
				"1. Accounts\n" +
				"2. Ledger\n" +
				"3. Discrepancies\n" +
				"4. Import Statement\n\n" +
				"q. Quit",
		)
	case ViewAccounts:
		return m.accountsView.View()
	case ViewLedger:
		return m.ledgerView.View()
	case ViewDiscrepancies:
		return m.discrepanciesView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
