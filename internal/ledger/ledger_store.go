package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/storage/kv"
)

const DefaultStorageKey = "transactions"

// Store owns the ordered transaction sequence and keeps it persisted under a
// single key. Every successful mutation is written through before it returns;
// a failed write rolls the mutation back.
type Store struct {
	mu     sync.RWMutex
	kv     kv.IKeyValueStore
	logger *logrus.Logger
	key    string
	now    func() time.Time

	transactions []Transaction
	lastID       int64
	loaded       bool
}

func NewStore(store kv.IKeyValueStore, logger *logrus.Logger, key string) *Store {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Store{
		kv:     store,
		logger: logger,
		key:    key,
		now:    time.Now,
	}
}

// Open creates a Store and loads it.
func Open(ctx context.Context, store kv.IKeyValueStore, logger *logrus.Logger, key string) *Store {
	s := NewStore(store, logger, key)
	s.Load(ctx)
	return s
}

func (s *Store) Key() string {
	return s.key
}

// Load replaces the in-memory sequence with the stored one. Missing, unreadable
// and undecodable data all load as an empty ledger; each case is logged differently.
func (s *Store) Load(ctx context.Context) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithField("storageKey", s.key)

	var txs []Transaction
	data, err := s.kv.Get(ctx, s.key)
	switch {
	case errors.Is(err, kv.ErrKeyNotFound):
		log.Info("LedgerStore.Load.firstRun")
	case err != nil:
		log.WithError(err).Error("LedgerStore.Load.readFailed")
	default:
		txs, err = decodeTransactions(data)
		if err != nil {
			decodeErr := &StorageDecodeError{Key: s.key, Err: err}
			log.WithError(decodeErr).Warn("LedgerStore.Load.decodeFailed")
			txs = nil
		}
	}

	if txs == nil {
		txs = []Transaction{}
	}

	s.transactions = txs
	s.lastID = 0
	for _, tx := range txs {
		if tx.ID > s.lastID {
			s.lastID = tx.ID
		}
	}
	s.loaded = true

	log.WithField("transactionCount", len(txs)).Info("LedgerStore.Load.Complete")
	return cloneTransactions(txs)
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Add appends a new transaction with a fresh id.
func (s *Store) Add(ctx context.Context, input TransactionInput) (Transaction, error) {
	normalized, err := input.Normalize()
	if err != nil {
		return Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return Transaction{}, ErrNotLoaded
	}

	previousLastID := s.lastID
	tx := Transaction{
		ID:          s.nextID(),
		Date:        normalized.Date,
		Type:        normalized.Type,
		Description: normalized.Description,
		Amount:      normalized.Amount,
	}

	s.transactions = append(s.transactions, tx)
	if err := s.persistLocked(ctx); err != nil {
		s.transactions = s.transactions[:len(s.transactions)-1]
		s.lastID = previousLastID
		return Transaction{}, err
	}

	return tx, nil
}

// Edit replaces the editable fields of the first transaction with req.ID,
// keeping its id and position.
func (s *Store) Edit(ctx context.Context, req EditRequest) (Transaction, error) {
	normalized, err := req.TransactionInput.Normalize()
	if err != nil {
		return Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return Transaction{}, ErrNotLoaded
	}

	index := s.indexOf(req.ID)
	if index < 0 {
		return Transaction{}, &NotFoundError{ID: req.ID}
	}

	previous := s.transactions[index]
	updated := Transaction{
		ID:          previous.ID,
		Date:        normalized.Date,
		Type:        normalized.Type,
		Description: normalized.Description,
		Amount:      normalized.Amount,
	}

	s.transactions[index] = updated
	if err := s.persistLocked(ctx); err != nil {
		s.transactions[index] = previous
		return Transaction{}, err
	}

	return updated, nil
}

// Delete removes every transaction with id. Ids loaded from older data may repeat.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotLoaded
	}

	kept := make([]Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	if len(kept) == len(s.transactions) {
		return &NotFoundError{ID: id}
	}

	previous := s.transactions
	s.transactions = kept
	if err := s.persistLocked(ctx); err != nil {
		s.transactions = previous
		return err
	}
	return nil
}

// Persist writes the whole sequence under the storage key.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotLoaded
	}
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := encodeTransactions(s.transactions)
	if err != nil {
		return &PersistError{Key: s.key, Err: err}
	}

	if err := s.kv.Put(ctx, s.key, data); err != nil {
		s.logger.WithError(err).WithField("storageKey", s.key).Error("LedgerStore.Persist.writeFailed")
		return &PersistError{Key: s.key, Err: err}
	}
	return nil
}

// Transactions returns a copy of the sequence in ledger order.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTransactions(s.transactions)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

// Find returns the first transaction with id.
func (s *Store) Find(id int64) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.indexOf(id)
	if index < 0 {
		return Transaction{}, false
	}
	return s.transactions[index], true
}

// Filter returns the matching transactions in ledger order.
func (s *Store) Filter(filter TransactionFilter) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Transaction{}
	for _, tx := range s.transactions {
		if filter.Matches(tx) {
			result = append(result, tx)
		}
	}
	return result
}

// CurrentBalance is the signed sum of every transaction.
func (s *Store) CurrentBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return signedSum(s.transactions)
}

// RunningBalance is the signed sum of the transactions at positions 0 through index.
func (s *Store) RunningBalance(index int) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.transactions) {
		return decimal.Zero, ErrIndexOutOfRange
	}
	return signedSum(s.transactions[:index+1]), nil
}

func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := Summary{
		Count:   len(s.transactions),
		Credits: decimal.Zero,
		Debits:  decimal.Zero,
	}
	for _, tx := range s.transactions {
		if tx.Type == TransactionTypeCredit {
			summary.Credits = summary.Credits.Add(tx.Amount)
		} else {
			summary.Debits = summary.Debits.Add(tx.Amount)
		}
	}
	summary.Balance = summary.Credits.Sub(summary.Debits)
	return summary
}

// RunningBalances returns the running balance after each transaction of txs.
func RunningBalances(txs []Transaction) []decimal.Decimal {
	balances := make([]decimal.Decimal, len(txs))
	balance := decimal.Zero
	for i, tx := range txs {
		balance = balance.Add(tx.SignedAmount())
		balances[i] = balance
	}
	return balances
}

// nextID issues millisecond timestamps, bumped past the last issued id so two
// calls within the same millisecond still get distinct ids.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) indexOf(id int64) int {
	for i, tx := range s.transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

func signedSum(txs []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range txs {
		balance = balance.Add(tx.SignedAmount())
	}
	return balance
}

func cloneTransactions(txs []Transaction) []Transaction {
	copied := make([]Transaction, len(txs))
	copy(copied, txs)
	return copied
}
