package add

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	"dailyspend/internal/expense"
	"dailyspend/internal/testutil"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	if cmd == nil {
		t.Error("NewCommand() returned nil")
	}
}

func TestDescription(t *testing.T) {
	cmd := NewCommand()
	if cmd.Description() != "Records a new expense for today" {
		t.Errorf("Description() = %v", cmd.Description())
	}
}

func TestSetFlags(t *testing.T) {
	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)

	for _, name := range []string{"name", "amount", "category"} {
		if fs.Lookup(name) == nil {
			t.Errorf("%s flag not registered", name)
		}
	}
}

func TestRun(t *testing.T) {
	clk := &testutil.FixedClock{Time: time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)}
	s := testutil.SetupTestStore(t, clk)
	log := testutil.TestLogger(t)

	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse([]string{"-name", "Groceries", "-amount", "45.99", "-category", "food"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	var out bytes.Buffer
	if err := cmd.Run(&out, s, log); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Groceries") {
		t.Errorf("Run() output = %q, want it to mention the expense", out.String())
	}

	expenses := s.List()
	if len(expenses) != 1 {
		t.Fatalf("Store has %d expenses, want 1", len(expenses))
	}
	if expenses[0].Amount != 4599 {
		t.Errorf("Stored amount = %d, want 4599", expenses[0].Amount)
	}
}

func TestRunValidationError(t *testing.T) {
	clk := &testutil.FixedClock{Time: time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)}
	s := testutil.SetupTestStore(t, clk)
	log := testutil.TestLogger(t)

	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse([]string{"-name", "", "-amount", "45.99", "-category", "food"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	var out bytes.Buffer
	err := cmd.Run(&out, s, log)
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	var validationErr *expense.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Error = %T, want *expense.ValidationError", err)
	}
	if len(s.List()) != 0 {
		t.Errorf("Store has %d expenses after rejected add, want 0", len(s.List()))
	}
}
