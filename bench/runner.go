package bench


import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/diem/client-sdk-go/diemtypes"

	"move-emitter/core"
)


// Drive the generators of one workload over a set of accounts.
// Accounts are split in contiguous shares, one per worker, so that no account
// is ever handed to two generators at the same time. Each worker creates its
// own generator and feeds it its share batch after batch.
//
type Runner struct {
	logger                  core.Logger
	creator                 core.TransactionGeneratorCreator
	workers                 int
	batch                   int
	transactionsPerAccount  int
}

func NewRunner(logger core.Logger, creator core.TransactionGeneratorCreator, workers, batch, transactionsPerAccount int) *Runner {
	return &Runner{
		logger: logger,
		creator: creator,
		workers: workers,
		batch: batch,
		transactionsPerAccount: transactionsPerAccount,
	}
}

func share(accounts []*core.LocalAccount, index, total int) []*core.LocalAccount {
	var from, to int

	from = index * len(accounts) / total
	to = (index + 1) * len(accounts) / total

	return accounts[from:to]
}

// Return the transactions of every worker, concatenated in worker order.
// The first failing worker cancels the others and its error is returned.
//
func (this *Runner) Run(ctx context.Context, accounts []*core.LocalAccount) ([]*diemtypes.SignedTransaction, error) {
	var results [][]*diemtypes.SignedTransaction
	var ret []*diemtypes.SignedTransaction
	var group *errgroup.Group
	var total, worker int

	if this.workers < 1 || this.batch < 1 {
		return nil, core.NewContractViolation("run", "%d workers " +
			"with batches of %d", this.workers, this.batch)
	}

	results = make([][]*diemtypes.SignedTransaction, this.workers)
	group, ctx = errgroup.WithContext(ctx)

	for worker = 0; worker < this.workers; worker++ {
		var index int = worker
		var mine []*core.LocalAccount

		mine = share(accounts, index, this.workers)

		group.Go(func () error {
			var txs []*diemtypes.SignedTransaction
			var err error

			txs, err = this.runWorker(ctx, index, mine)
			if err != nil {
				return err
			}

			results[index] = txs

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for worker = range results {
		total += len(results[worker])
	}

	ret = make([]*diemtypes.SignedTransaction, 0, total)
	for worker = range results {
		ret = append(ret, results[worker]...)
	}

	this.logger.Infof("generated %d transactions for %d accounts with " +
		"%d workers", len(ret), len(accounts), this.workers)

	return ret, nil
}

func (this *Runner) runWorker(ctx context.Context, index int, accounts []*core.LocalAccount) ([]*diemtypes.SignedTransaction, error) {
	var ret, txs []*diemtypes.SignedTransaction
	var generator core.TransactionGenerator
	var from, to int
	var err error

	generator, err = this.creator.CreateTransactionGenerator()
	if err != nil {
		return nil, fmt.Errorf("worker %d: %w", index, err)
	}

	this.logger.Debugf("worker %d: %d accounts", index, len(accounts))

	ret = make([]*diemtypes.SignedTransaction, 0,
		len(accounts) * this.transactionsPerAccount)

	for from = 0; from < len(accounts); from = to {
		err = ctx.Err()
		if err != nil {
			return nil, err
		}

		to = from + this.batch
		if to > len(accounts) {
			to = len(accounts)
		}

		txs, err = generator.GenerateTransactions(accounts[from:to],
			this.transactionsPerAccount)
		if err != nil {
			return nil, fmt.Errorf("worker %d: accounts %d to %d: " +
				"%w", index, from, to, err)
		}

		this.logger.Tracef("worker %d: batch %d-%d gave %d " +
			"transactions", index, from, to, len(txs))

		ret = append(ret, txs...)
	}

	return ret, nil
}
