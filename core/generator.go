package core


import (
	"math/rand"

	"github.com/diem/client-sdk-go/diemtypes"
)


// Produce signed transactions for batches of accounts.
// A generator owns its randomness stream and is driven by a single goroutine
// at a time. Different generators may run concurrently as long as they are
// not given the same accounts at the same time.
//
type TransactionGenerator interface {
	// Return `transactionsPerAccount` transactions for each account of
	// `accounts`, grouped by account in the order of `accounts`.
	// On error, no transaction is returned and the account sequence
	// numbers are left as they were before the call.
	//
	GenerateTransactions(accounts []*LocalAccount, transactionsPerAccount int) ([]*diemtypes.SignedTransaction, error)
}

// Mint independent generators sharing the state of one workload.
// Safe for concurrent use.
//
type TransactionGeneratorCreator interface {
	CreateTransactionGenerator() (TransactionGenerator, error)
}


// A set of code packages that can be picked, rewritten for a publisher and
// turned into transactions.
// `PickPackage` must be safe for concurrent callers.
//
type PackageCatalog interface {
	PickPackage(rng *rand.Rand, account *LocalAccount) (PackageHandle, error)
}

// A package variant picked for one account.
// Only valid while the batch of this account is being generated.
//
type PackageHandle interface {
	Name() string

	PublishTransaction(account *LocalAccount, factory *TransactionFactory) (*diemtypes.SignedTransaction, error)

	UseTransaction(rng *rand.Rand, account *LocalAccount, factory *TransactionFactory, gasPrice uint64) (*diemtypes.SignedTransaction, error)
}


// Check the parts of the generation contract common to every workload.
//
func CheckBatch(op string, accounts []*LocalAccount, transactionsPerAccount, minimum int) error {
	var i int

	if transactionsPerAccount < minimum {
		return NewContractViolation(op, "transactions per account " +
			"must be at least %d (got %d)", minimum,
			transactionsPerAccount)
	}

	for i = range accounts {
		if accounts[i] == nil {
			return NewContractViolation(op, "account %d is nil", i)
		}
	}

	return nil
}

// Remember the sequence numbers of `accounts` so a failed generation can
// put them back.
//
type SequenceSnapshot struct {
	accounts   []*LocalAccount
	sequences  []uint64
}

func TakeSequenceSnapshot(accounts []*LocalAccount) *SequenceSnapshot {
	var ret SequenceSnapshot
	var i int

	ret.accounts = accounts
	ret.sequences = make([]uint64, len(accounts))

	for i = range accounts {
		ret.sequences[i] = accounts[i].SequenceNumber()
	}

	return &ret
}

func (this *SequenceSnapshot) Restore() {
	var i int

	for i = range this.accounts {
		this.accounts[i].SetSequenceNumber(this.sequences[i])
	}
}
