package club

import (
	"errors"
	"testing"
)

// amt parses a user style amount, failing the test on bad input.
func amt(t *testing.T, s string) Amount {
	t.Helper()
	a, err := ParseAmount(s)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestAddRevenueValidation(t *testing.T) {
	s := newTestService(t)
	on := NewDate(2025, 9, 1)

	cases := []struct {
		name        string
		description string
		category    string
		date        Date
	}{
		{"blank description", "  ", "Bilheteira", on},
		{"blank category", "Jogo em casa", "", on},
		{"missing date", "Jogo em casa", "Bilheteira", Date{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.AddRevenue(c.description, A(100), c.category, c.date, nil)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want validation error", err)
			}
		})
	}
}

func TestFinancialSummaryTotals(t *testing.T) {
	s := newTestService(t)
	on := NewDate(2025, 9, 1)

	if _, err := s.AddRevenue("Jogo em casa", amt(t, "350,50"), "Bilheteira", on, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddRevenue("Camisolas", A(120), "Merchandising", on, ptr("Loja")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddRevenue("Cachecóis", amt(t, "30,25"), "Merchandising", on, ptr("Loja")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddExpense("Bolas de treino", amt(t, "80,75"), "Material", on, ptr("Desporto Lda")); err != nil {
		t.Fatal(err)
	}

	sum := s.FinancialSummary()
	if got := sum.TotalRevenue.String(); got != "€500.75" {
		t.Errorf("total revenue = %s", got)
	}
	if got := sum.TotalExpense.String(); got != "€80.75" {
		t.Errorf("total expense = %s", got)
	}
	if got := sum.Balance.String(); got != "€420.00" {
		t.Errorf("balance = %s", got)
	}
	if got := sum.Revenue["Merchandising"].String(); got != "€150.25" {
		t.Errorf("merchandising breakdown = %s", got)
	}
	if got := sum.Expense["Material"].String(); got != "€80.75" {
		t.Errorf("material breakdown = %s", got)
	}
}

func TestFinancialSummaryScopedToActiveSeason(t *testing.T) {
	s := newTestService(t)
	if _, err := s.AddRevenue("Bilheteira setembro", A(200), "Bilheteira", NewDate(2025, 9, 1), nil); err != nil {
		t.Fatal(err)
	}

	next, err := s.CreateSeason("Época 2026/2027", NewDate(2026, 7, 1), NewDate(2027, 6, 30), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetActiveSeason(next.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddExpense("Seguro anual", A(90), "Seguros", NewDate(2026, 8, 1), nil); err != nil {
		t.Fatal(err)
	}

	sum := s.FinancialSummary()
	if !sum.TotalRevenue.IsZero() {
		t.Errorf("revenue from previous season leaked into %q: %s", next.Name, sum.TotalRevenue)
	}
	if got := sum.TotalExpense.String(); got != "€90.00" {
		t.Errorf("total expense = %s", got)
	}
}

func TestUpdateRevenueClearsSource(t *testing.T) {
	s := newTestService(t)
	rev, err := s.AddRevenue("Patrocínio", A(500), "Patrocínios", NewDate(2025, 8, 15), ptr("Café Central"))
	if err != nil {
		t.Fatal(err)
	}

	rev, err = s.UpdateRevenue(rev.ID, RevenuePatch{
		Amount: Set(A(750)),
		Source: Null[string](),
	})
	if err != nil {
		t.Fatal(err)
	}
	if rev.Source != nil {
		t.Errorf("source = %q, want cleared", *rev.Source)
	}
	if got := rev.Amount.String(); got != "€750.00" {
		t.Errorf("amount = %s", got)
	}
}

func TestRemoveExpense(t *testing.T) {
	s := newTestService(t)
	exp, err := s.AddExpense("Lavandaria", A(45), "Serviços", NewDate(2025, 9, 10), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveExpense(exp.ID); err != nil {
		t.Fatal(err)
	}
	if got := len(s.ListExpenses(true)); got != 0 {
		t.Fatalf("got %d expenses, want 0", got)
	}

	err = s.RemoveExpense(exp.ID)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("got %v, want not found", err)
	}
}
