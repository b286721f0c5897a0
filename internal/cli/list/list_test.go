package list

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"

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
	if cmd.Description() != "Lists all recorded expenses" {
		t.Errorf("Description() = %v", cmd.Description())
	}
}

func TestRunEmpty(t *testing.T) {
	clk := &testutil.FixedClock{Time: time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)}
	s := testutil.SetupTestStore(t, clk)
	log := testutil.TestLogger(t)

	cmd := NewCommand()
	cmd.SetFlags(flag.NewFlagSet("test", flag.ContinueOnError))

	var out bytes.Buffer
	if err := cmd.Run(&out, s, log); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "No expenses recorded") {
		t.Errorf("Run() output = %q, want the empty message", out.String())
	}
}

func TestRun(t *testing.T) {
	clk := &testutil.FixedClock{Time: time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)}
	s := testutil.SetupTestStore(t, clk)
	log := testutil.TestLogger(t)

	if _, err := s.Add("Groceries", "45.99", "food"); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if _, err := s.Add("Bus ticket", "2.50", "transport"); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	cmd := NewCommand()
	cmd.SetFlags(flag.NewFlagSet("test", flag.ContinueOnError))

	var out bytes.Buffer
	if err := cmd.Run(&out, s, log); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{"Groceries", "Bus ticket", "2024-06-10", "food", "transport", "48,49"} {
		if !strings.Contains(output, want) {
			t.Errorf("Run() output missing %q:\n%s", want, output)
		}
	}
}
