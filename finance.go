package club

import "strings"

// Revenues --------------------------------------------------------------

// AddRevenue records a revenue entry in the active season.
func (s *Service) AddRevenue(description string, amount Amount, category string, recordDate Date, source *string) (Revenue, error) {
	if strings.TrimSpace(description) == "" {
		return Revenue{}, validationf("revenue description is empty")
	}
	if strings.TrimSpace(category) == "" {
		return Revenue{}, validationf("revenue category is empty")
	}
	if recordDate.IsZero() {
		return Revenue{}, validationf("revenue record date is missing")
	}
	rev := s.addRevenue(description, amount, category, recordDate, source)
	if err := s.persist(); err != nil {
		return Revenue{}, err
	}
	return rev, nil
}

// addRevenue appends a revenue entry in memory, without persisting. Used by
// operations that bundle the ledger entry with a primary entity write.
func (s *Service) addRevenue(description string, amount Amount, category string, recordDate Date, source *string) Revenue {
	rev := Revenue{
		ID:          nextID(s.doc.Revenues),
		Description: description,
		Amount:      amount,
		Category:    category,
		RecordDate:  recordDate,
		Source:      source,
		SeasonID:    s.ActiveSeasonID(),
	}
	s.doc.Revenues = append(s.doc.Revenues, rev)
	return rev
}

// ListRevenues returns the active season's revenues in insertion order.
// With all true, it returns every season's.
func (s *Service) ListRevenues(all bool) []Revenue {
	if all {
		out := make([]Revenue, len(s.doc.Revenues))
		copy(out, s.doc.Revenues)
		return out
	}
	return filterSeason(s.doc.Revenues, func(r Revenue) int { return r.SeasonID }, s.ActiveSeasonID())
}

// RevenuePatch describes a partial revenue update.
type RevenuePatch struct {
	Description Opt[string]
	Amount      Opt[Amount]
	Category    Opt[string]
	RecordDate  Opt[Date]
	Source      Opt[string]
}

// UpdateRevenue merges the provided fields into the revenue entry.
func (s *Service) UpdateRevenue(id int, patch RevenuePatch) (Revenue, error) {
	i := findIndex(s.doc.Revenues, id)
	if i < 0 {
		return Revenue{}, notFound("revenue", id)
	}
	rev := s.doc.Revenues[i]
	applyRevenuePatch(&rev, patch)
	s.doc.Revenues[i] = rev
	if err := s.persist(); err != nil {
		return Revenue{}, err
	}
	return rev, nil
}

func applyRevenuePatch(rev *Revenue, patch RevenuePatch) {
	patch.Description.apply(&rev.Description)
	patch.Amount.apply(&rev.Amount)
	patch.Category.apply(&rev.Category)
	patch.RecordDate.apply(&rev.RecordDate)
	patch.Source.applyPtr(&rev.Source)
}

// RemoveRevenue deletes a revenue entry.
func (s *Service) RemoveRevenue(id int) error {
	if !s.removeRevenue(id) {
		return notFound("revenue", id)
	}
	return s.persist()
}

// removeRevenue deletes in memory, reporting whether the id existed.
func (s *Service) removeRevenue(id int) bool {
	i := findIndex(s.doc.Revenues, id)
	if i < 0 {
		return false
	}
	s.doc.Revenues = removeAt(s.doc.Revenues, i)
	return true
}

// Expenses --------------------------------------------------------------

// AddExpense records an expense entry in the active season.
func (s *Service) AddExpense(description string, amount Amount, category string, recordDate Date, vendor *string) (Expense, error) {
	if strings.TrimSpace(description) == "" {
		return Expense{}, validationf("expense description is empty")
	}
	if strings.TrimSpace(category) == "" {
		return Expense{}, validationf("expense category is empty")
	}
	if recordDate.IsZero() {
		return Expense{}, validationf("expense record date is missing")
	}
	exp := Expense{
		ID:          nextID(s.doc.Expenses),
		Description: description,
		Amount:      amount,
		Category:    category,
		RecordDate:  recordDate,
		Vendor:      vendor,
		SeasonID:    s.ActiveSeasonID(),
	}
	s.doc.Expenses = append(s.doc.Expenses, exp)
	if err := s.persist(); err != nil {
		return Expense{}, err
	}
	return exp, nil
}

// ListExpenses returns the active season's expenses in insertion order.
// With all true, it returns every season's.
func (s *Service) ListExpenses(all bool) []Expense {
	if all {
		out := make([]Expense, len(s.doc.Expenses))
		copy(out, s.doc.Expenses)
		return out
	}
	return filterSeason(s.doc.Expenses, func(e Expense) int { return e.SeasonID }, s.ActiveSeasonID())
}

// ExpensePatch describes a partial expense update.
type ExpensePatch struct {
	Description Opt[string]
	Amount      Opt[Amount]
	Category    Opt[string]
	RecordDate  Opt[Date]
	Vendor      Opt[string]
}

// UpdateExpense merges the provided fields into the expense entry.
func (s *Service) UpdateExpense(id int, patch ExpensePatch) (Expense, error) {
	i := findIndex(s.doc.Expenses, id)
	if i < 0 {
		return Expense{}, notFound("expense", id)
	}
	exp := s.doc.Expenses[i]
	patch.Description.apply(&exp.Description)
	patch.Amount.apply(&exp.Amount)
	patch.Category.apply(&exp.Category)
	patch.RecordDate.apply(&exp.RecordDate)
	patch.Vendor.applyPtr(&exp.Vendor)
	s.doc.Expenses[i] = exp
	if err := s.persist(); err != nil {
		return Expense{}, err
	}
	return exp, nil
}

// RemoveExpense deletes an expense entry.
func (s *Service) RemoveExpense(id int) error {
	i := findIndex(s.doc.Expenses, id)
	if i < 0 {
		return notFound("expense", id)
	}
	s.doc.Expenses = removeAt(s.doc.Expenses, i)
	return s.persist()
}

// Summary ---------------------------------------------------------------

// FinancialSummary aggregates the active season's revenues and expenses.
// All amounts are rounded to cents. Expenses are stored positive and
// subtracted in the balance.
type FinancialSummary struct {
	TotalRevenue Amount
	TotalExpense Amount
	Balance      Amount
	Revenue      map[string]Amount // per revenue category
	Expense      map[string]Amount // per expense category
}

// FinancialSummary computes the active season's totals and per-category
// breakdown.
func (s *Service) FinancialSummary() FinancialSummary {
	revenues := s.ListRevenues(false)
	expenses := s.ListExpenses(false)

	var totalRevenue, totalExpense Amount
	byRevenueCategory := make(map[string]Amount)
	byExpenseCategory := make(map[string]Amount)

	for _, r := range revenues {
		totalRevenue = totalRevenue.Add(r.Amount)
		byRevenueCategory[r.Category] = byRevenueCategory[r.Category].Add(r.Amount)
	}
	for _, e := range expenses {
		totalExpense = totalExpense.Add(e.Amount)
		byExpenseCategory[e.Category] = byExpenseCategory[e.Category].Add(e.Amount)
	}
	for cat, v := range byRevenueCategory {
		byRevenueCategory[cat] = v.Round()
	}
	for cat, v := range byExpenseCategory {
		byExpenseCategory[cat] = v.Round()
	}

	return FinancialSummary{
		TotalRevenue: totalRevenue.Round(),
		TotalExpense: totalExpense.Round(),
		Balance:      totalRevenue.Sub(totalExpense).Round(),
		Revenue:      byRevenueCategory,
		Expense:      byExpenseCategory,
	}
}
