package workloads


import (
	"math/rand"

	"github.com/diem/client-sdk-go/diemtypes"
	"github.com/diem/client-sdk-go/stdlib"

	"move-emitter/core"
)


const TransferWorkload = "transfer"


// Send `amount` coins from each account to random accounts of the pool.
//
type TransferGenerator struct {
	logger     core.Logger
	metrics    *core.Metrics
	rng        *rand.Rand
	factory    *core.TransactionFactory
	addresses  *core.AddressPool
	gasPrice   uint64
	amount     uint64
}

func NewTransferGenerator(logger core.Logger, metrics *core.Metrics, rng *rand.Rand, factory *core.TransactionFactory, addresses *core.AddressPool, gasPrice, amount uint64) *TransferGenerator {
	return &TransferGenerator{
		logger: logger,
		metrics: metrics,
		rng: rng,
		factory: factory,
		addresses: addresses,
		gasPrice: gasPrice,
		amount: amount,
	}
}

func (this *TransferGenerator) GenerateTransactions(accounts []*core.LocalAccount, transactionsPerAccount int) ([]*diemtypes.SignedTransaction, error) {
	var factory *core.TransactionFactory
	var ret []*diemtypes.SignedTransaction
	var account *core.LocalAccount
	var to diemtypes.AccountAddress
	var script diemtypes.Script
	var err error
	var ok bool
	var i int

	err = core.CheckBatch("generate transfer transactions", accounts,
		transactionsPerAccount, 1)
	if err != nil {
		return nil, err
	}

	factory = this.factory.WithGasUnitPrice(this.gasPrice)

	ret = make([]*diemtypes.SignedTransaction, 0,
		len(accounts) * transactionsPerAccount)

	for _, account = range accounts {
		for i = 0; i < transactionsPerAccount; i++ {
			to, ok = this.addresses.Random(this.rng)
			if !ok {
				to = account.Address()
			}

			script = stdlib.EncodePeerToPeerWithMetadataScript(
				diemtypes.Currency(factory.Currency()), to,
				this.amount, nil, nil)

			ret = append(ret, factory.Sign(account,
				&diemtypes.TransactionPayload__Script{
					Value: script,
				}))
		}
	}

	this.metrics.RecordGenerated(TransferWorkload, core.KindTransfer,
		len(ret))

	this.logger.Tracef("generate %d transfers for %d accounts", len(ret),
		len(accounts))

	return ret, nil
}


type TransferCreator struct {
	logger     core.Logger
	metrics    *core.Metrics
	seeds      *core.SeedSource
	factory    *core.TransactionFactory
	addresses  *core.AddressPool
	gasPrice   uint64
	amount     uint64
}

func NewTransferCreator(logger core.Logger, metrics *core.Metrics, seeds *core.SeedSource, factory *core.TransactionFactory, addresses *core.AddressPool, gasPrice, amount uint64) *TransferCreator {
	return &TransferCreator{
		logger: logger,
		metrics: metrics,
		seeds: seeds,
		factory: factory,
		addresses: addresses,
		gasPrice: gasPrice,
		amount: amount,
	}
}

func (this *TransferCreator) CreateTransactionGenerator() (core.TransactionGenerator, error) {
	return NewTransferGenerator(this.logger, this.metrics,
		this.seeds.Derive(), this.factory, this.addresses,
		this.gasPrice, this.amount), nil
}
