package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vilacaiz/club"
	"github.com/vilacaiz/club/renderer"
)

type revenueAddCmd struct {
	description string
	amount      string
	category    string
	date        string
	source      string
}

func (*revenueAddCmd) Name() string     { return "revenue-add" }
func (*revenueAddCmd) Synopsis() string { return "record a revenue" }
func (*revenueAddCmd) Usage() string {
	return `vcc revenue-add -description <text> -amount <amount> -category <category> [-date <date>] [-source <text>]

  Records a revenue in the active season.
`
}

func (c *revenueAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "What the revenue is.")
	f.StringVar(&c.amount, "amount", "", "Amount received.")
	f.StringVar(&c.category, "category", "", "Revenue category.")
	f.StringVar(&c.date, "date", "0d", "Record date (defaults to today).")
	f.StringVar(&c.source, "source", "", "Who paid.")
}

func (c *revenueAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := club.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	date, err := club.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var source *string
	if c.source != "" {
		source = &c.source
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	revenue, err := service.AddRevenue(c.description, amount, c.category, date, source)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded revenue %d: %s\n", revenue.ID, revenue.Amount)
	return subcommands.ExitSuccess
}

type revenueListCmd struct {
	all bool
}

func (*revenueListCmd) Name() string     { return "revenue-list" }
func (*revenueListCmd) Synopsis() string { return "list revenues" }
func (*revenueListCmd) Usage() string {
	return `vcc revenue-list [-all]

  Lists revenues of the active season.
`
}

func (c *revenueListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List revenues of all seasons.")
}

func (c *revenueListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Revenues(service.ListRevenues(c.all)))
	return subcommands.ExitSuccess
}

type revenueEditCmd struct {
	id          int
	description string
	amount      string
	category    string
	date        string
	source      string
}

func (*revenueEditCmd) Name() string     { return "revenue-edit" }
func (*revenueEditCmd) Synopsis() string { return "edit a revenue" }
func (*revenueEditCmd) Usage() string {
	return `vcc revenue-edit -id <revenue_id> [options]

  Updates the given fields of a revenue. Fee and dues revenues are managed
  automatically; edit them only to correct mistakes.
`
}

func (c *revenueEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Revenue id to edit.")
	f.StringVar(&c.description, "description", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.date, "date", "", "New record date.")
	f.StringVar(&c.source, "source", "", "New source. An empty value clears it.")
}

func (c *revenueEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.RevenuePatch
	if seen["description"] {
		patch.Description = club.Set(c.description)
	}
	if seen["amount"] {
		amount, err := club.ParseAmount(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.Amount = club.Set(amount)
	}
	if seen["category"] {
		patch.Category = club.Set(c.category)
	}
	if seen["date"] {
		d, err := club.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.RecordDate = club.Set(d)
	}
	if seen["source"] {
		if c.source == "" {
			patch.Source = club.Null[string]()
		} else {
			patch.Source = club.Set(c.source)
		}
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	revenue, err := service.UpdateRevenue(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated revenue %d\n", revenue.ID)
	return subcommands.ExitSuccess
}

type revenueRmCmd struct {
	id int
}

func (*revenueRmCmd) Name() string     { return "revenue-rm" }
func (*revenueRmCmd) Synopsis() string { return "remove a revenue" }
func (*revenueRmCmd) Usage() string {
	return `vcc revenue-rm -id <revenue_id>

  Removes a revenue.
`
}

func (c *revenueRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Revenue id to remove.")
}

func (c *revenueRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveRevenue(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed revenue %d\n", c.id)
	return subcommands.ExitSuccess
}

type expenseAddCmd struct {
	description string
	amount      string
	category    string
	date        string
	vendor      string
}

func (*expenseAddCmd) Name() string     { return "expense-add" }
func (*expenseAddCmd) Synopsis() string { return "record an expense" }
func (*expenseAddCmd) Usage() string {
	return `vcc expense-add -description <text> -amount <amount> -category <category> [-date <date>] [-vendor <text>]

  Records an expense in the active season.
`
}

func (c *expenseAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "What the expense is.")
	f.StringVar(&c.amount, "amount", "", "Amount spent.")
	f.StringVar(&c.category, "category", "", "Expense category.")
	f.StringVar(&c.date, "date", "0d", "Record date (defaults to today).")
	f.StringVar(&c.vendor, "vendor", "", "Who was paid.")
}

func (c *expenseAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := club.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	date, err := club.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var vendor *string
	if c.vendor != "" {
		vendor = &c.vendor
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	expense, err := service.AddExpense(c.description, amount, c.category, date, vendor)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded expense %d: %s\n", expense.ID, expense.Amount)
	return subcommands.ExitSuccess
}

type expenseListCmd struct {
	all bool
}

func (*expenseListCmd) Name() string     { return "expense-list" }
func (*expenseListCmd) Synopsis() string { return "list expenses" }
func (*expenseListCmd) Usage() string {
	return `vcc expense-list [-all]

  Lists expenses of the active season.
`
}

func (c *expenseListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List expenses of all seasons.")
}

func (c *expenseListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Expenses(service.ListExpenses(c.all)))
	return subcommands.ExitSuccess
}

type expenseEditCmd struct {
	id          int
	description string
	amount      string
	category    string
	date        string
	vendor      string
}

func (*expenseEditCmd) Name() string     { return "expense-edit" }
func (*expenseEditCmd) Synopsis() string { return "edit an expense" }
func (*expenseEditCmd) Usage() string {
	return `vcc expense-edit -id <expense_id> [options]

  Updates the given fields of an expense.
`
}

func (c *expenseEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Expense id to edit.")
	f.StringVar(&c.description, "description", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.date, "date", "", "New record date.")
	f.StringVar(&c.vendor, "vendor", "", "New vendor. An empty value clears it.")
}

func (c *expenseEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.ExpensePatch
	if seen["description"] {
		patch.Description = club.Set(c.description)
	}
	if seen["amount"] {
		amount, err := club.ParseAmount(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.Amount = club.Set(amount)
	}
	if seen["category"] {
		patch.Category = club.Set(c.category)
	}
	if seen["date"] {
		d, err := club.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.RecordDate = club.Set(d)
	}
	if seen["vendor"] {
		if c.vendor == "" {
			patch.Vendor = club.Null[string]()
		} else {
			patch.Vendor = club.Set(c.vendor)
		}
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	expense, err := service.UpdateExpense(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated expense %d\n", expense.ID)
	return subcommands.ExitSuccess
}

type expenseRmCmd struct {
	id int
}

func (*expenseRmCmd) Name() string     { return "expense-rm" }
func (*expenseRmCmd) Synopsis() string { return "remove an expense" }
func (*expenseRmCmd) Usage() string {
	return `vcc expense-rm -id <expense_id>

  Removes an expense.
`
}

func (c *expenseRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Expense id to remove.")
}

func (c *expenseRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveExpense(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed expense %d\n", c.id)
	return subcommands.ExitSuccess
}

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the season's financial summary" }
func (*summaryCmd) Usage() string {
	return `vcc summary

  Displays totals and the per-category breakdown of the active season.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.FinancialSummary(service.ActiveSeason().Name, service.FinancialSummary()))
	return subcommands.ExitSuccess
}
