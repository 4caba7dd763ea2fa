package statement_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/tally/internal/importer/statement"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_LedgerExport(t *testing.T) {
	csv := `Date;Description;Debit;Credit;Balance
2025-01-05;SUPPLIER PAYMENT;200.00;;800.00
2025-01-09;CLIENT TRANSFER;;500.00;1300.00
`

	p := statement.New()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, date(2025, 1, 5), rows[0].Date)
	assert.Equal(t, "SUPPLIER PAYMENT", rows[0].Description)
	require.NotNil(t, rows[0].Debit)
	assert.Equal(t, "200", rows[0].Debit.String())
	assert.Nil(t, rows[0].Credit)
	require.NotNil(t, rows[0].Balance)
	assert.Equal(t, "800", rows[0].Balance.String())

	assert.Equal(t, date(2025, 1, 9), rows[1].Date)
	require.NotNil(t, rows[1].Credit)
	assert.Equal(t, "500", rows[1].Credit.String())
	assert.Nil(t, rows[1].Debit)
}

func TestParser_StatementEU(t *testing.T) {
	csv := `Consultar movimentos - 31-01-2026
Nome cliente;JOHN DOE
Intervalo de;01-01-2026 a 31-01-2026

Data mov.;Data-valor;Descrição;Débito;Crédito;Saldo contabilístico
30-01-2026;30-01-2026;INSTITUTO GESTAO FINA;588,74;;48.825,46
09-01-2026;09-01-2026;TFI Wise;;8.608,52;52.532,78
 ; ; ; ;Página 1/1 ;
`

	p := statement.New()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, date(2026, 1, 30), rows[0].Date)
	assert.Equal(t, "INSTITUTO GESTAO FINA", rows[0].Description)
	require.NotNil(t, rows[0].Debit)
	assert.Equal(t, "588.74", rows[0].Debit.String())
	require.NotNil(t, rows[0].Balance)
	assert.Equal(t, "48825.46", rows[0].Balance.String())

	assert.Equal(t, date(2026, 1, 9), rows[1].Date)
	require.NotNil(t, rows[1].Credit)
	assert.Equal(t, "8608.52", rows[1].Credit.String())
}

func TestParser_CardSigned(t *testing.T) {
	csv := `Consultar movimentos de cartões - 15-02-2026
Conta cartão;4163 **** **** 8016 - EUR - Business

Data;Data valor;Movimento;Montante
16-12-2025;14-12-2025;PA GONDOMAR;-64,00
31-12-2025;29-12-2025;REEMBOLSO COMPRA;12,50
`

	p := statement.New()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Negative signed amounts become debits, positive become credits.
	require.NotNil(t, rows[0].Debit)
	assert.Equal(t, "64", rows[0].Debit.String())
	assert.Nil(t, rows[0].Credit)
	assert.Nil(t, rows[0].Balance)

	require.NotNil(t, rows[1].Credit)
	assert.Equal(t, "12.5", rows[1].Credit.String())
}

func TestParser_SkipsFooterAndZeroRows(t *testing.T) {
	csv := `Date;Description;Debit;Credit;Balance
2025-01-05;REAL MOVEMENT;10.00;;90.00
2025-01-06;ZERO ROW;0,00;;90.00
Total;;;;
`

	p := statement.New()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "REAL MOVEMENT", rows[0].Description)
}

func TestParser_Windows1252Input(t *testing.T) {
	csv := `Data mov.;Data-valor;Descrição;Débito;Crédito;Saldo contabilístico
30-01-2026;30-01-2026;CAFÉ LISBOA;5,00;;95,00
`

	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(csv))
	require.NoError(t, err)

	p := statement.New()
	rows, err := p.Parse(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CAFÉ LISBOA", rows[0].Description)
}

func TestParser_UnknownLayout(t *testing.T) {
	csv := `Foo;Bar
1;2
`

	p := statement.New()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
}
