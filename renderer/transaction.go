package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/AndreKlarosk/finance"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx finance.Transaction, currency string) string {
	amount := M(tx.Amount, currency)
	switch tx.Type {
	case finance.Income:
		return fmt.Sprintf("Received %s (%s) on %s", amount, tx.Description, tx.Date)
	default:
		return fmt.Sprintf("Spent %s on %s (%s) on %s", amount, tx.Category, tx.Description, tx.Date)
	}
}

// TransactionsMarkdown renders a transaction list as a markdown table,
// newest first. An empty list renders to a short notice instead of an empty
// table.
func TransactionsMarkdown(txs []finance.Transaction, currency string) string {
	var b strings.Builder
	b.WriteString("# Transactions\n")

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n| ID | Date | Description | Category | Tags | Amount |\n")
		fmt.Fprintf(w, "|---:|:---|:---|:---|:---|---:|\n")
		for _, tx := range finance.RecentTransactions(txs, len(txs)) {
			row := TransactionRow{Type: tx.Type, Amount: M(tx.Amount, currency)}
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s |\n",
				tx.ID, tx.Date, tx.Description, tx.Category, tx.Tags, row.SignedAmount())
		}
		return len(txs) > 0
	})
	if len(txs) == 0 {
		b.WriteString("\nNo transactions recorded.\n")
	}
	return b.String()
}

// InvestmentsMarkdown renders the investment positions as a markdown table
// followed by the portfolio summary.
func InvestmentsMarkdown(investments []finance.Investment, currency string) string {
	var b strings.Builder
	b.WriteString("# Investments\n")
	if len(investments) == 0 {
		b.WriteString("\nNo investments recorded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\n| ID | Name | Type | Invested | Current | Return |\n")
	fmt.Fprintf(&b, "|---:|:---|:---|---:|---:|---:|\n")
	for _, inv := range investments {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			inv.ID, inv.Name, inv.Type, M(inv.Amount, currency), M(inv.CurrentValue, currency), M(inv.Return(), currency).SignedString())
	}

	o := finance.InvestmentSummary(investments)
	fmt.Fprintf(&b, "| **Total** | | | **%s** | **%s** | **%s (%+.2f%%)** |\n",
		M(o.TotalInvested, currency), M(o.CurrentValue, currency), M(o.TotalReturn, currency).SignedString(), o.ReturnPercentage)
	return b.String()
}
