// Package ledger provides a small in-memory ledger mapping account names to
// money balances. It drives the money package through deposits and withdrawals
// and never touches minor units directly.
//
// A Ledger is not safe for concurrent use.
package ledger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists is returned when opening an account under a name already in use.
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidAccountName is returned when an account name is blank.
	ErrInvalidAccountName = errors.New("invalid account name")

	// ErrAmountMustBePositive is returned when a transaction amount is not positive.
	ErrAmountMustBePositive = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTransactionType is returned for transaction kinds other than deposit and withdraw.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

// Kind is the type of a ledger transaction.
type Kind string

const (
	Deposit  Kind = "deposit"
	Withdraw Kind = "withdraw"
)

// ParseKind matches s against the known kinds ignoring case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Deposit, Withdraw:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
	}
}

// Receipt records a successfully applied transaction.
type Receipt struct {
	ID        uuid.UUID
	Account   string
	Kind      Kind
	Amount    money.Money
	Balance   money.Money // balance after the transaction
	CreatedAt time.Time
}

// Entry is one account in a balances report.
type Entry struct {
	Account string
	Balance money.Money
}

// Ledger holds one balance per account name.
type Ledger struct {
	balances map[string]money.Money
	order    []string
	logger   *slog.Logger
}

// New creates an empty ledger. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		balances: make(map[string]money.Money),
		logger:   logger.With("component", "ledger"),
	}
}

// Open creates an account holding initial. The account's currency is the
// currency of initial and never changes.
func (l *Ledger) Open(name string, initial money.Money) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidAccountName
	}
	if initial.Currency().IsZero() {
		return fmt.Errorf("open account %q: %w", name, money.ErrNullCurrency)
	}
	if _, ok := l.balances[name]; ok {
		return fmt.Errorf("%w: %s", ErrAccountExists, name)
	}
	l.balances[name] = initial
	l.order = append(l.order, name)
	l.logger.Info("Account opened", "account", name, "balance", initial.ExactString())
	return nil
}

// Balance returns the current balance of the named account.
func (l *Ledger) Balance(name string) (money.Money, error) {
	b, ok := l.balances[name]
	if !ok {
		return money.Money{}, fmt.Errorf("%w: %s", ErrAccountNotFound, name)
	}
	return b, nil
}

// Balances returns every account in the order it was opened.
func (l *Ledger) Balances() []Entry {
	entries := make([]Entry, 0, len(l.order))
	for _, name := range l.order {
		entries = append(entries, Entry{Account: name, Balance: l.balances[name]})
	}
	return entries
}

// Deposit adds amount to the named account.
func (l *Ledger) Deposit(name string, amount money.Money) (Receipt, error) {
	return l.Process(name, Deposit, amount)
}

// Withdraw removes amount from the named account.
func (l *Ledger) Withdraw(name string, amount money.Money) (Receipt, error) {
	return l.Process(name, Withdraw, amount)
}

// Process applies a transaction of the given kind.
// Invariants enforced:
//   - The account must exist.
//   - The amount currency must match the account currency.
//   - The amount must be positive.
//   - A withdrawal cannot exceed the current balance.
//
// On error the balance is left unchanged.
func (l *Ledger) Process(name string, kind Kind, amount money.Money) (Receipt, error) {
	current, err := l.Balance(name)
	if err != nil {
		return Receipt{}, err
	}

	balance, err := apply(name, kind, current, amount)
	if err != nil {
		l.logger.Warn("Transaction rejected",
			"account", name,
			"kind", kind,
			"amount", amount.String(),
			"error", err,
		)
		return Receipt{}, err
	}

	l.balances[name] = balance
	r := Receipt{
		ID:        uuid.New(),
		Account:   name,
		Kind:      kind,
		Amount:    amount,
		Balance:   balance,
		CreatedAt: time.Now(),
	}
	l.logger.Debug("Transaction applied",
		"id", r.ID,
		"account", name,
		"kind", kind,
		"amount", amount.ExactString(),
		"balance", balance.ExactString(),
	)
	return r, nil
}

func apply(name string, kind Kind, current, amount money.Money) (money.Money, error) {
	if !current.IsSameCurrency(amount) {
		return money.Money{}, fmt.Errorf(
			"%w: transaction currency (%s) does not match account currency (%s) for account '%s'",
			money.ErrCurrencyMismatch,
			amount.Currency(),
			current.Currency(),
			name,
		)
	}
	if !amount.IsPositive() {
		return money.Money{}, fmt.Errorf("%w: %s", ErrAmountMustBePositive, amount)
	}

	switch kind {
	case Deposit:
		return current.Add(amount)
	case Withdraw:
		enough, err := current.GreaterThanOrEqual(amount)
		if err != nil {
			return money.Money{}, err
		}
		if !enough {
			return money.Money{}, fmt.Errorf(
				"%w for account '%s'. Current: %s, Attempted withdrawal: %s",
				ErrInsufficientFunds,
				name,
				current,
				amount,
			)
		}
		return current.Subtract(amount)
	default:
		return money.Money{}, fmt.Errorf("%w: %q", ErrInvalidTransactionType, kind)
	}
}
