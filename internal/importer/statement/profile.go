package statement

type amountMode int

const (
	// amountSplit reads separate debit and credit columns.
	amountSplit amountMode = iota
	// amountSingle reads a single signed amount column.
	amountSingle
)

// Profile describes one statement CSV layout.
type Profile struct {
	Name       string
	DateCol    string
	DateFormat string
	DescCol    string
	AmountMode amountMode
	AmountCol  string // amountSingle
	DebitCol   string // amountSplit
	CreditCol  string // amountSplit
	BalanceCol string // running balance, optional per profile
}

func (p *Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	if p.AmountMode == amountSingle {
		return append(cols, p.AmountCol)
	}

	return append(cols, p.DebitCol, p.CreditCol)
}

var profiles = []Profile{
	{
		Name:       "ledger-export",
		DateCol:    "Date",
		DateFormat: "2006-01-02",
		DescCol:    "Description",
		AmountMode: amountSplit,
		DebitCol:   "Debit",
		CreditCol:  "Credit",
		BalanceCol: "Balance",
	},
	{
		Name:       "statement-eu",
		DateCol:    "Data mov.",
		DateFormat: "02-01-2006",
		DescCol:    "Descrição",
		AmountMode: amountSplit,
		DebitCol:   "Débito",
		CreditCol:  "Crédito",
		BalanceCol: "Saldo contabilístico",
	},
	{
		Name:       "card-signed",
		DateCol:    "Data",
		DateFormat: "02-01-2006",
		DescCol:    "Movimento",
		AmountMode: amountSingle,
		AmountCol:  "Montante",
	},
}
