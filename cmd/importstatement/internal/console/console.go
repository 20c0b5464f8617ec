// Package console renders the import command's terminal output.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
	"github.com/MrJamesThe3rd/ledger/internal/importer"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	arrowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Title(cmd, description string) {
	fmt.Fprintln(p.w, titleStyle.Render(cmd+": "+description))
	fmt.Fprintln(p.w)
}

// Stage prints a ` ==> step` progress line.
func (p *Printer) Stage(parts ...string) {
	fmt.Fprintln(p.w, arrowStyle.Render(" ==>"), boldStyle.Render(strings.Join(parts, " ")))
}

// Importers lists the importers of module, marking the selected one.
func (p *Printer) Importers(module string, entries []importer.Entry, selected string) {
	fmt.Fprintln(p.w, "Available importers in the", boldStyle.Render(module), "module:")

	for _, e := range entries {
		line := fmt.Sprintf(" - %s %s", boldStyle.Render(e.Name), dimStyle.Render("("+e.FullName()+")"))
		if e.FullName() == selected {
			line += " " + successStyle.Render("*")
		}

		fmt.Fprintln(p.w, line)
	}

	fmt.Fprintln(p.w)
}

func (p *Printer) Transactions(txs []*transaction.Transaction) {
	for _, tx := range txs {
		fmt.Fprintln(p.w, "  "+tx.String())
	}
}

func (p *Printer) Summary(res *importer.Result, dryRun bool) {
	fmt.Fprintf(p.w, "\n%d transactions, %d new aliases\n", len(res.Transactions), res.AliasesCreated)

	switch {
	case res.Committed:
		fmt.Fprintln(p.w, successStyle.Render("Import committed to database"))
	case dryRun:
		fmt.Fprintln(p.w, warnStyle.Render("Not committing to database"), dimStyle.Render("(-dry-run specified)"))
	default:
		fmt.Fprintln(p.w, warnStyle.Render("Import rolled back"))
	}
}

// Aliases prints the aliases a pattern would claim.
func (p *Printer) Aliases(usages []counterparty.AliasUsage) {
	if len(usages) == 0 {
		fmt.Fprintln(p.w, dimStyle.Render("No existing aliases match"))
		return
	}

	for _, u := range usages {
		owner := u.Alias.Counterparty.Name
		note := ""

		if u.CounterpartyAliases > 1 {
			note = " " + warnStyle.Render(fmt.Sprintf("(shared with %d other aliases)", u.CounterpartyAliases-1))
		}

		fmt.Fprintf(p.w, " - %s %s%s\n", boldStyle.Render(u.Alias.Name), dimStyle.Render("-> "+owner), note)
	}
}

func (p *Printer) PatternAdded(res *counterparty.PatternResult) {
	fmt.Fprintf(p.w, "%s %s\n",
		successStyle.Render("Pattern saved for"), boldStyle.Render(res.Counterparty.Name))

	for _, a := range res.Reassigned {
		fmt.Fprintf(p.w, " - %s\n", a.Name)
	}

	fmt.Fprintf(p.w, "%d aliases reassigned, %d orphaned counterparties deleted\n", len(res.Reassigned), res.OrphansDeleted)
}

func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, errorStyle.Render("Error"), err)
}
