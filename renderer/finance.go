package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"
	"github.com/vilacaiz/club"
)

// Revenues renders the season's revenue ledger.
func Revenues(revenues []club.Revenue) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Revenues")
	if len(revenues) == 0 {
		doc.PlainText("No revenues recorded.")
		return doc.String()
	}

	var rows [][]string
	for _, r := range revenues {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.RecordDate.String(),
			r.Description,
			r.Category,
			orDash(r.Source),
			r.Amount.String(),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Description", "Category", "Source", "Amount"},
		Rows:   rows,
	})
	return doc.String()
}

// Expenses renders the season's expense ledger.
func Expenses(expenses []club.Expense) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")
	if len(expenses) == 0 {
		doc.PlainText("No expenses recorded.")
		return doc.String()
	}

	var rows [][]string
	for _, e := range expenses {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.ID),
			e.RecordDate.String(),
			e.Description,
			e.Category,
			orDash(e.Vendor),
			e.Amount.String(),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Description", "Category", "Vendor", "Amount"},
		Rows:   rows,
	})
	return doc.String()
}

// FinancialSummary renders season totals and the per-category breakdown.
func FinancialSummary(seasonName string, s club.FinancialSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Summary: %s", seasonName))

	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Total Revenue", s.TotalRevenue.String()},
			{"Total Expense", s.TotalExpense.String()},
			{"Balance", s.Balance.String()},
		},
	})

	if len(s.Revenue) > 0 {
		doc.H2("Revenue by Category")
		doc.Table(md.TableSet{
			Header: []string{"Category", "Amount"},
			Rows:   categoryRows(s.Revenue),
		})
	}

	if len(s.Expense) > 0 {
		doc.H2("Expense by Category")
		doc.Table(md.TableSet{
			Header: []string{"Category", "Amount"},
			Rows:   categoryRows(s.Expense),
		})
	}

	return doc.String()
}

func categoryRows(byCategory map[string]club.Amount) [][]string {
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var rows [][]string
	for _, c := range categories {
		rows = append(rows, []string{c, byCategory[c].String()})
	}
	return rows
}
