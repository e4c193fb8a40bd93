package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/chris/in-memory-ledger/pkg/clock"
	"github.com/chris/in-memory-ledger/pkg/idgen"
	"github.com/chris/in-memory-ledger/pkg/models"
	"github.com/chris/in-memory-ledger/pkg/storage"
	"github.com/google/uuid"
)

const maxIDAttempts = 8

// ErrIDExhausted is returned when the ID generator keeps producing IDs that are already in use.
var ErrIDExhausted = errors.New("no unused account id generated")

// Store implements the Storage interface in process memory.
// Every account carries its own lock, so operations on different accounts never contend.
type Store struct {
	Clock clock.Clock
	IDs   idgen.Generator

	accounts sync.Map // uuid.UUID -> *accountLedger
}

// accountLedger is an account together with its append-only transaction sequence.
type accountLedger struct {
	account models.Account

	mu           sync.Mutex
	transactions []models.Transaction
}

// New creates a new, empty Store.
func New(clk clock.Clock, ids idgen.Generator) *Store {
	return &Store{
		Clock: clk,
		IDs:   ids,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// CreateAccount creates a new account with a freshly generated ID and an empty ledger.
// An ID already in use is regenerated, up to maxIDAttempts times.
func (s *Store) CreateAccount(ctx context.Context) (*models.Account, error) {
	for range maxIDAttempts {
		l := &accountLedger{account: models.Account{ID: s.IDs.Generate()}}
		if _, loaded := s.accounts.LoadOrStore(l.account.ID, l); loaded {
			continue
		}
		account := l.account
		return &account, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrIDExhausted, maxIDAttempts)
}

// FindAccount retrieves an account by its ID.
func (s *Store) FindAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	l, err := s.ledger(id)
	if err != nil {
		return nil, err
	}
	account := l.account
	return &account, nil
}

// CurrentBalance folds the account's transactions, in order, into its balance.
func (s *Store) CurrentBalance(ctx context.Context, account *models.Account) (int64, error) {
	l, err := s.lookup(account)
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balance(), nil
}

// MakeDeposit validates the amount and appends a DEPOSIT transaction to the account's ledger.
func (s *Store) MakeDeposit(ctx context.Context, account *models.Account, amountInMinorUnits int64) (*models.Transaction, error) {
	l, err := s.lookup(account)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amountInMinorUnits); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balance()
	if balance > math.MaxInt64-amountInMinorUnits {
		return nil, storage.ErrBalanceOverflow
	}

	return s.record(l, models.DEPOSIT, amountInMinorUnits, balance+amountInMinorUnits), nil
}

// MakeWithdrawal validates the amount and appends a WITHDRAWAL transaction to the account's ledger.
// The balance check and the append happen under the account's lock, so concurrent
// withdrawals can never jointly overdraw the account.
func (s *Store) MakeWithdrawal(ctx context.Context, account *models.Account, amountInMinorUnits int64) (*models.Transaction, error) {
	l, err := s.lookup(account)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amountInMinorUnits); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balance()
	if balance < amountInMinorUnits {
		return nil, storage.ErrInsufficientFunds
	}

	return s.record(l, models.WITHDRAWAL, amountInMinorUnits, balance-amountInMinorUnits), nil
}

// AllTransactions returns a copy of the account's transactions in the order they were recorded.
func (s *Store) AllTransactions(ctx context.Context, account *models.Account) (*models.Transactions, error) {
	l, err := s.lookup(account)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	txs := make([]models.Transaction, len(l.transactions))
	copy(txs, l.transactions)

	return &models.Transactions{
		AccountID:    l.account.ID,
		Transactions: txs,
	}, nil
}

func (s *Store) lookup(account *models.Account) (*accountLedger, error) {
	if account == nil {
		return nil, storage.ErrUnknownAccount
	}
	return s.ledger(account.ID)
}

func (s *Store) ledger(id uuid.UUID) (*accountLedger, error) {
	v, ok := s.accounts.Load(id)
	if !ok {
		return nil, storage.ErrUnknownAccount
	}
	return v.(*accountLedger), nil
}

// record appends a new transaction. The caller must hold l.mu.
func (s *Store) record(l *accountLedger, txType models.TransactionType, amountInMinorUnits, balanceAfter int64) *models.Transaction {
	tx := models.Transaction{
		ID:                       s.IDs.Generate(),
		AccountID:                l.account.ID,
		Type:                     txType,
		AmountInMinorUnits:       amountInMinorUnits,
		BalanceAfterInMinorUnits: balanceAfter,
		Date:                     s.Clock.Now(),
	}
	l.transactions = append(l.transactions, tx)
	return &tx
}

// balance must be called with l.mu held.
func (l *accountLedger) balance() int64 {
	var sum int64
	for _, tx := range l.transactions {
		sum += tx.Signed()
	}
	return sum
}

// validateAmount checks for zero before negative; the order decides which error is reported.
func validateAmount(amountInMinorUnits int64) error {
	if amountInMinorUnits == 0 {
		return storage.ErrZeroAmount
	}
	if amountInMinorUnits < 0 {
		return storage.ErrNegativeAmount
	}
	return nil
}
