package memory

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/chris/in-memory-ledger/pkg/clock"
	"github.com/chris/in-memory-ledger/pkg/idgen"
	"github.com/chris/in-memory-ledger/pkg/idgen/mocks"
	"github.com/chris/in-memory-ledger/pkg/models"
	"github.com/chris/in-memory-ledger/pkg/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 10, 4, 18, 0, 0, 0, time.UTC)

func newStore() *Store {
	return New(clock.Fixed{At: now}, idgen.Random{})
}

func accountWithBalance(t *testing.T, s *Store, amount int64) *models.Account {
	t.Helper()
	ctx := context.Background()
	account, err := s.CreateAccount(ctx)
	require.NoError(t, err)
	if amount > 0 {
		_, err = s.MakeDeposit(ctx, account, amount)
		require.NoError(t, err)
	}
	return account
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses Generated ID", func(t *testing.T) {
		ids := mocks.NewGenerator(t)
		accountID := uuid.New()
		ids.On("Generate").Return(accountID).Once()

		s := New(clock.Fixed{At: now}, ids)

		account, err := s.CreateAccount(ctx)

		require.NoError(t, err)
		assert.Equal(t, accountID, account.ID)
	})

	t.Run("Starts With Zero Balance", func(t *testing.T) {
		s := newStore()
		account, err := s.CreateAccount(ctx)
		require.NoError(t, err)

		balance, err := s.CurrentBalance(ctx, account)

		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("Regenerates On Collision", func(t *testing.T) {
		ids := mocks.NewGenerator(t)
		first, second := uuid.New(), uuid.New()
		ids.On("Generate").Return(first).Twice()
		ids.On("Generate").Return(second).Once()

		s := New(clock.Fixed{At: now}, ids)

		a, err := s.CreateAccount(ctx)
		require.NoError(t, err)
		b, err := s.CreateAccount(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, a.ID)
		assert.Equal(t, second, b.ID)
	})

	t.Run("Gives Up After Repeated Collisions", func(t *testing.T) {
		ids := mocks.NewGenerator(t)
		taken := uuid.New()
		ids.On("Generate").Return(taken).Times(1 + maxIDAttempts)

		s := New(clock.Fixed{At: now}, ids)
		_, err := s.CreateAccount(ctx)
		require.NoError(t, err)

		account, err := s.CreateAccount(ctx)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, ErrIDExhausted)
	})
}

func TestFindAccount(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	t.Run("Success", func(t *testing.T) {
		created, err := s.CreateAccount(ctx)
		require.NoError(t, err)

		found, err := s.FindAccount(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("Unknown Account", func(t *testing.T) {
		_, err := s.FindAccount(ctx, uuid.New())

		assert.ErrorIs(t, err, storage.ErrUnknownAccount)
	})
}

func TestMakeDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ids := mocks.NewGenerator(t)
		accountID, depositID := uuid.New(), uuid.New()
		ids.On("Generate").Return(accountID).Once()
		ids.On("Generate").Return(depositID).Once()

		s := New(clock.Fixed{At: now}, ids)
		account, err := s.CreateAccount(ctx)
		require.NoError(t, err)

		tx, err := s.MakeDeposit(ctx, account, 1042)

		require.NoError(t, err)
		assert.Equal(t, &models.Transaction{
			ID:                       depositID,
			AccountID:                accountID,
			Type:                     models.DEPOSIT,
			AmountInMinorUnits:       1042,
			BalanceAfterInMinorUnits: 1042,
			Date:                     now,
		}, tx)

		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(1042), balance)
	})

	t.Run("Multiple Deposits Accumulate", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, 1042)

		_, err := s.MakeDeposit(ctx, account, 958)
		require.NoError(t, err)

		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), balance)
	})

	t.Run("Invalid Amounts", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, 500)

		tests := []struct {
			name   string
			amount int64
			want   error
		}{
			{"Zero", 0, storage.ErrZeroAmount},
			{"Negative", -10000, storage.ErrNegativeAmount},
			{"Most Negative", math.MinInt64, storage.ErrNegativeAmount},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tx, err := s.MakeDeposit(ctx, account, tt.amount)

				assert.Nil(t, tx)
				assert.ErrorIs(t, err, tt.want)
			})
		}

		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(500), balance)
	})

	t.Run("Unknown Account Checked Before Amount", func(t *testing.T) {
		s := newStore()

		_, err := s.MakeDeposit(ctx, &models.Account{ID: uuid.New()}, 0)

		assert.ErrorIs(t, err, storage.ErrUnknownAccount)
	})

	t.Run("Overflow", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, math.MaxInt64)

		_, err := s.MakeDeposit(ctx, account, 1)

		assert.ErrorIs(t, err, storage.ErrBalanceOverflow)
		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), balance)
	})
}

func TestMakeWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, 2000)

		tx, err := s.MakeWithdrawal(ctx, account, 1400)

		require.NoError(t, err)
		assert.Equal(t, models.WITHDRAWAL, tx.Type)
		assert.Equal(t, int64(1400), tx.AmountInMinorUnits)
		assert.Equal(t, int64(600), tx.BalanceAfterInMinorUnits)
		assert.Equal(t, account.ID, tx.AccountID)
		assert.Equal(t, now, tx.Date)

		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(600), balance)
	})

	t.Run("Withdraw Entire Balance", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, 1000)

		_, err := s.MakeWithdrawal(ctx, account, 622)
		require.NoError(t, err)
		_, err = s.MakeWithdrawal(ctx, account, 378)
		require.NoError(t, err)

		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, 4264)

		tx, err := s.MakeWithdrawal(ctx, account, 6442)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(4264), balance)
	})

	t.Run("Zero Reported Regardless Of Balance", func(t *testing.T) {
		s := newStore()
		empty := accountWithBalance(t, s, 0)
		funded := accountWithBalance(t, s, 1042)

		_, err := s.MakeWithdrawal(ctx, empty, 0)
		assert.ErrorIs(t, err, storage.ErrZeroAmount)
		_, err = s.MakeWithdrawal(ctx, funded, 0)
		assert.ErrorIs(t, err, storage.ErrZeroAmount)
	})

	t.Run("Negative Reported Before Insufficient Funds", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, 0)

		_, err := s.MakeWithdrawal(ctx, account, -1)

		assert.ErrorIs(t, err, storage.ErrNegativeAmount)
	})

	t.Run("Unknown Account", func(t *testing.T) {
		s := newStore()

		_, err := s.MakeWithdrawal(ctx, &models.Account{ID: uuid.New()}, 10)
		assert.ErrorIs(t, err, storage.ErrUnknownAccount)

		_, err = s.MakeWithdrawal(ctx, nil, 10)
		assert.ErrorIs(t, err, storage.ErrUnknownAccount)
	})
}

func TestAllTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, 0)

		txs, err := s.AllTransactions(ctx, account)

		require.NoError(t, err)
		assert.Equal(t, account.ID, txs.AccountID)
		assert.NotNil(t, txs.Transactions)
		assert.Empty(t, txs.Transactions)
	})

	t.Run("Both Types In Recorded Order", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, 0)

		steps := []struct {
			txType models.TransactionType
			amount int64
		}{
			{models.DEPOSIT, 2000},
			{models.WITHDRAWAL, 1000},
			{models.DEPOSIT, 2200},
			{models.WITHDRAWAL, 222},
		}
		var recorded []models.Transaction
		for _, step := range steps {
			var tx *models.Transaction
			var err error
			if step.txType == models.DEPOSIT {
				tx, err = s.MakeDeposit(ctx, account, step.amount)
			} else {
				tx, err = s.MakeWithdrawal(ctx, account, step.amount)
			}
			require.NoError(t, err)
			recorded = append(recorded, *tx)
		}

		txs, err := s.AllTransactions(ctx, account)

		require.NoError(t, err)
		assert.Equal(t, recorded, txs.Transactions)
		for i, step := range steps {
			assert.Equal(t, step.txType, txs.Transactions[i].Type)
			assert.Equal(t, step.amount, txs.Transactions[i].AmountInMinorUnits)
		}

		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(2000-1000+2200-222), balance)
	})

	t.Run("Returned Slice Is A Copy", func(t *testing.T) {
		s := newStore()
		account := accountWithBalance(t, s, 100)

		txs, err := s.AllTransactions(ctx, account)
		require.NoError(t, err)
		txs.Transactions[0].AmountInMinorUnits = 1

		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})

	t.Run("Unknown Account", func(t *testing.T) {
		s := newStore()

		_, err := s.AllTransactions(ctx, &models.Account{ID: uuid.New()})

		assert.ErrorIs(t, err, storage.ErrUnknownAccount)
	})
}

func TestCurrentBalance_UnknownAccount(t *testing.T) {
	s := newStore()

	_, err := s.CurrentBalance(context.Background(), &models.Account{ID: uuid.New()})

	assert.ErrorIs(t, err, storage.ErrUnknownAccount)
}

func TestConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	account := accountWithBalance(t, s, 500)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.MakeWithdrawal(ctx, account, 10)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, storage.ErrInsufficientFunds):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, succeeded)
	assert.Equal(t, 50, rejected)
	balance, err := s.CurrentBalance(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestConcurrentAccountsAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	accounts := make([]*models.Account, 8)
	for i := range accounts {
		accounts[i] = accountWithBalance(t, s, 0)
	}

	var wg sync.WaitGroup
	for _, account := range accounts {
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(account *models.Account) {
				defer wg.Done()
				_, err := s.MakeDeposit(ctx, account, 3)
				assert.NoError(t, err)
			}(account)
		}
	}
	wg.Wait()

	for _, account := range accounts {
		balance, err := s.CurrentBalance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(150), balance)

		txs, err := s.AllTransactions(ctx, account)
		require.NoError(t, err)
		assert.Len(t, txs.Transactions, 50)
	}
}

func TestConcurrentDepositsReportTheirOwnBalance(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	account := accountWithBalance(t, s, 0)

	const deposits = 2000
	balances := make(chan int64, deposits)

	var wg sync.WaitGroup
	for i := 0; i < deposits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := s.MakeDeposit(ctx, account, 1)
			if assert.NoError(t, err) {
				balances <- tx.BalanceAfterInMinorUnits
			}
		}()
	}
	wg.Wait()
	close(balances)

	seen := make(map[int64]bool, deposits)
	for b := range balances {
		assert.False(t, seen[b], "balance %d reported twice", b)
		seen[b] = true
	}
	assert.Len(t, seen, deposits)
	for b := int64(1); b <= deposits; b++ {
		assert.True(t, seen[b], "balance %d never reported", b)
	}

	txs, err := s.AllTransactions(ctx, account)
	require.NoError(t, err)
	for i, tx := range txs.Transactions {
		assert.Equal(t, int64(i+1), tx.BalanceAfterInMinorUnits)
	}
}
