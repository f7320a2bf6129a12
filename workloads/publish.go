package workloads


import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/diem/client-sdk-go/diemtypes"

	"move-emitter/core"
)


const PublishWorkload = "publish"


// Publish a package for each account, call it, then publish another one.
// Every account gets one publish transaction, `k - 2` use transactions of the
// published package and a second publish transaction.
//
type PublishPackageGenerator struct {
	logger     core.Logger
	metrics    *core.Metrics
	rng        *rand.Rand
	catalog    core.PackageCatalog
	factory    *core.TransactionFactory
	gasPrice   uint64
}

func NewPublishPackageGenerator(logger core.Logger, metrics *core.Metrics, rng *rand.Rand, catalog core.PackageCatalog, factory *core.TransactionFactory, gasPrice uint64) *PublishPackageGenerator {
	return &PublishPackageGenerator{
		logger: logger,
		metrics: metrics,
		rng: rng,
		catalog: catalog,
		factory: factory,
		gasPrice: gasPrice,
	}
}

func (this *PublishPackageGenerator) GenerateTransactions(accounts []*core.LocalAccount, transactionsPerAccount int) ([]*diemtypes.SignedTransaction, error) {
	var snapshot *core.SequenceSnapshot
	var ret []*diemtypes.SignedTransaction
	var err error

	err = core.CheckBatch("generate publish transactions", accounts,
		transactionsPerAccount, 2)
	if err != nil {
		return nil, err
	}

	snapshot = core.TakeSequenceSnapshot(accounts)

	ret, err = this.generate(accounts, transactionsPerAccount)
	if err != nil {
		snapshot.Restore()
		this.metrics.RecordFailure(PublishWorkload)
		this.logger.Debugf("failed to generate for %d accounts: %s",
			len(accounts), err.Error())
		return nil, err
	}

	this.metrics.RecordGenerated(PublishWorkload, core.KindPublish,
		2 * len(accounts))
	this.metrics.RecordGenerated(PublishWorkload, core.KindUse,
		(transactionsPerAccount - 2) * len(accounts))

	this.logger.Tracef("generate %d transactions for %d accounts",
		len(ret), len(accounts))

	return ret, nil
}

func (this *PublishPackageGenerator) generate(accounts []*core.LocalAccount, transactionsPerAccount int) ([]*diemtypes.SignedTransaction, error) {
	var ret []*diemtypes.SignedTransaction
	var stx *diemtypes.SignedTransaction
	var account *core.LocalAccount
	var pkg core.PackageHandle
	var err error
	var i int

	ret = make([]*diemtypes.SignedTransaction, 0,
		len(accounts) * transactionsPerAccount)

	for _, account = range accounts {
		// First publish the package, then use it.
		pkg, stx, err = this.publish(account)
		if err != nil {
			return nil, err
		}
		ret = append(ret, stx)

		for i = 0; i < transactionsPerAccount - 2; i++ {
			stx, err = pkg.UseTransaction(this.rng, account,
				this.factory, this.gasPrice)
			if err != nil {
				return nil, errors.Wrapf(err, "use package " +
					"'%s' from %s", pkg.Name(), account)
			}
			ret = append(ret, stx)
		}

		_, stx, err = this.publish(account)
		if err != nil {
			return nil, err
		}
		ret = append(ret, stx)
	}

	return ret, nil
}

func (this *PublishPackageGenerator) publish(account *core.LocalAccount) (core.PackageHandle, *diemtypes.SignedTransaction, error) {
	var stx *diemtypes.SignedTransaction
	var pkg core.PackageHandle
	var err error

	pkg, err = this.catalog.PickPackage(this.rng, account)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "pick package for %s",
			account)
	}

	stx, err = pkg.PublishTransaction(account, this.factory)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "publish package '%s' " +
			"from %s", pkg.Name(), account)
	}

	return pkg, stx, nil
}


// Create publish generators sharing one catalog.
// The address pool is shared through the catalog, which draws the address
// arguments of use transactions from it.
//
type PublishPackageCreator struct {
	logger     core.Logger
	metrics    *core.Metrics
	seeds      *core.SeedSource
	catalog    core.PackageCatalog
	factory    *core.TransactionFactory
	gasPrice   uint64
}

func NewPublishPackageCreator(logger core.Logger, metrics *core.Metrics, seeds *core.SeedSource, catalog core.PackageCatalog, factory *core.TransactionFactory, gasPrice uint64) *PublishPackageCreator {
	return &PublishPackageCreator{
		logger: logger,
		metrics: metrics,
		seeds: seeds,
		catalog: catalog,
		factory: factory,
		gasPrice: gasPrice,
	}
}

func (this *PublishPackageCreator) CreateTransactionGenerator() (core.TransactionGenerator, error) {
	return NewPublishPackageGenerator(this.logger, this.metrics,
		this.seeds.Derive(), this.catalog, this.factory,
		this.gasPrice), nil
}
