package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/ledger"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/fatih/color"
)

type opening struct {
	name   string
	code   money.Code
	amount string
}

type step struct {
	note     string // printed before the step when set
	name     string
	kind     string
	code     money.Code
	amount   string
	rejected bool // the step is expected to fail
}

var openings = []opening{
	{"Alice", money.USD, "1000.00"},
	{"Bob", money.EUR, "500.50"},
	{"Charlie", money.JPY, "12345"},
	{"David", money.BTC, "0.51234567"},
}

var steps = []step{
	{name: "Alice", kind: "deposit", code: money.USD, amount: "250.75"},
	{name: "Bob", kind: "withdraw", code: money.EUR, amount: "100.25"},
	{
		note: "Attempting invalid transaction: Alice tries to deposit EUR into USD account...",
		name: "Alice", kind: "deposit", code: money.EUR, amount: "50.00", rejected: true,
	},
	{name: "Charlie", kind: "deposit", code: money.JPY, amount: "5000"},
	{name: "David", kind: "withdraw", code: money.BTC, amount: "0.12345678"},
	{name: "David", kind: "withdraw", code: money.BTC, amount: "0.00000001"},
	{
		note: "Attempting invalid transaction: Alice tries to withdraw too much USD...",
		name: "Alice", kind: "withdraw", code: money.USD, amount: "2000.00", rejected: true,
	},
}

const rule = "----------------------------------------------"

// demo replays a scripted sequence of ledger operations and reports to w.
type demo struct {
	w      io.Writer
	ledger *ledger.Ledger
	format func(money.Money) string

	title   *color.Color
	success *color.Color
	failure *color.Color
}

func newDemo(w io.Writer, deps *initializer.Deps) *demo {
	return &demo{
		w:       w,
		ledger:  deps.Ledger,
		format:  deps.Format,
		title:   color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (d *demo) run() error {
	d.title.Fprintln(d.w, rule)
	d.title.Fprintln(d.w, "  Ledger System: Currency & Scaling Units")
	d.title.Fprintln(d.w, rule)

	for _, o := range openings {
		m, err := d.money(o.code, o.amount)
		if err != nil {
			return err
		}
		if err := d.ledger.Open(o.name, m); err != nil {
			return err
		}
		fmt.Fprintf(d.w, "Initialized account '%s' with %s\n", o.name, d.format(m))
	}
	d.balances()

	d.title.Fprintln(d.w, "\n--- Processing Transactions ---")
	for _, s := range steps {
		if err := d.step(s); err != nil {
			return err
		}
	}
	d.balances()

	d.title.Fprintln(d.w, "\n"+rule)
	d.title.Fprintln(d.w, "  Ledger System Demo Complete.")
	d.title.Fprintln(d.w, rule)
	return nil
}

// step reports an expected rejection and continues; any other failure aborts the demo.
func (d *demo) step(s step) error {
	if s.note != "" {
		fmt.Fprintf(d.w, "\n%s\n", s.note)
	}
	kind, err := ledger.ParseKind(s.kind)
	if err != nil {
		return err
	}
	amount, err := d.money(s.code, s.amount)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.w, "Processing %s for '%s': %s\n", kind, s.name, d.format(amount))
	r, err := d.ledger.Process(s.name, kind, amount)
	if err != nil {
		d.failure.Fprintf(d.w, "  -> ERROR: %v\n", err)
		if s.rejected {
			return nil
		}
		return fmt.Errorf("%s for %s: %w", kind, s.name, err)
	}
	d.success.Fprintf(d.w, "  -> Success! New balance for '%s': %s\n", r.Account, d.format(r.Balance))
	if s.rejected {
		return fmt.Errorf("%s for %s: expected a rejection", kind, s.name)
	}
	return nil
}

func (d *demo) balances() {
	d.title.Fprintln(d.w, "\n--- Current Account Balances ---")
	entries := d.ledger.Balances()
	if len(entries) == 0 {
		fmt.Fprintln(d.w, "  No accounts found.")
	}
	for _, e := range entries {
		fmt.Fprintf(d.w, "  %-10s: %s\n", e.Account, d.format(e.Balance))
	}
	fmt.Fprintln(d.w, strings.Repeat("-", 32))
}

func (d *demo) money(code money.Code, amount string) (money.Money, error) {
	c, err := money.Lookup(string(code))
	if err != nil {
		return money.Money{}, err
	}
	return money.FromString(amount, c)
}
