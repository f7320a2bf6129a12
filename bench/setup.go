package bench


import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/diem/client-sdk-go/diemtypes"

	"move-emitter/configs"
	"move-emitter/core"
	"move-emitter/publishing"
	"move-emitter/util"
	"move-emitter/workloads"
)


// Everything a generation run needs, built from an emitter configuration.
//
type Run struct {
	Id        uuid.UUID
	Seed      int64
	Accounts  []*core.LocalAccount
	Addresses *core.AddressPool
	Factory   *core.TransactionFactory
	Catalog   *publishing.PackageHandler
	Creator   core.TransactionGeneratorCreator
	Runner    *Runner
}

func Setup(config *configs.EmitterConfig, logger core.Logger, metrics *core.Metrics) (*Run, error) {
	var env workloads.Environment
	var accounts []*core.LocalAccount
	var ret Run
	var path string
	var err error

	ret.Id = uuid.New()
	logger = logger.Extend(ret.Id.String()[:8])

	ret.Seed = config.Workload.Seed
	if ret.Seed == 0 {
		ret.Seed = time.Now().UnixNano()
	}
	logger.Infof("run %s with seed %d", ret.Id, ret.Seed)

	ret.Accounts = make([]*core.LocalAccount, 0)
	for _, path = range config.Accounts {
		accounts, err = configs.LoadAccounts(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		logger.Debugf("load %d accounts from '%s'", len(accounts), path)
		ret.Accounts = append(ret.Accounts, accounts...)
	}

	ret.Addresses = core.NewAddressPool()
	for _, account := range ret.Accounts {
		ret.Addresses.Append(account.Address())
	}

	ret.Factory = core.NewTransactionFactory(config.Chain.Id).
		WithCurrency(config.Chain.Currency).
		WithMaxGasAmount(config.Chain.MaxGas).
		WithGasUnitPrice(config.Chain.GasPrice).
		WithExpirationDelay(time.Duration(config.Chain.Expiration) *
			time.Second)

	if config.Workload.Name == workloads.PublishWorkload {
		ret.Catalog, err = setupCatalog(config, ret.Addresses,
			logger.Extend("catalog"), metrics)
		if err != nil {
			return nil, err
		}
	}

	env.Logger = logger
	env.Metrics = metrics
	env.Seeds = core.NewSeedSource(ret.Seed)
	env.Factory = ret.Factory
	env.Addresses = ret.Addresses
	env.GasPrice = config.Workload.GasPrice
	env.Amount = config.Workload.Amount
	if ret.Catalog != nil {
		env.Catalog = ret.Catalog
	}

	ret.Creator, err = workloads.NewCreator(config.Workload.Name, &env)
	if err != nil {
		return nil, err
	}

	ret.Runner = NewRunner(logger.Extend("runner"), ret.Creator,
		config.Workload.Workers, config.Workload.Batch,
		config.Workload.TransactionsPerAccount)

	return &ret, nil
}

func setupCatalog(config *configs.EmitterConfig, addresses *core.AddressPool, logger core.Logger, metrics *core.Metrics) (*publishing.PackageHandler, error) {
	var templates, loaded []*publishing.PackageTemplate
	var compiler *publishing.MoveCompiler
	var stdlibs []string
	var dir string
	var err error

	if config.Compiler.Stdlib != "" {
		stdlibs, err = publishing.ListStdlibs(config.Compiler.Stdlib)
		if err != nil {
			return nil, fmt.Errorf("cannot list stdlib files in " +
				"'%s': %w", config.Compiler.Stdlib, err)
		}
	}

	compiler = publishing.NewMoveCompiler(logger, config.Compiler.Command,
		stdlibs)

	templates = make([]*publishing.PackageTemplate, 0)
	for _, dir = range config.Packages {
		loaded, err = publishing.LoadPackages(dir, compiler, logger)
		if err != nil {
			return nil, err
		}

		templates = append(templates, loaded...)
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no package found in %v: %w",
			config.Packages, core.ErrCatalogExhausted)
	}

	logger.Infof("catalog of %d packages", len(templates))

	return publishing.NewPackageHandler(templates, addresses, logger,
		metrics)
}

// Write `txs` in `path` as transaction frames.
//
func WriteTransactions(path string, txs []*diemtypes.SignedTransaction) error {
	var writer *util.TransactionWriter
	var stx *diemtypes.SignedTransaction
	var file *os.File
	var err error

	file, err = os.Create(path)
	if err != nil {
		return err
	}

	defer file.Close()

	writer = util.NewTransactionWriter(file)
	for _, stx = range txs {
		err = writer.Write(stx)
		if err != nil {
			return err
		}
	}

	err = writer.Flush()
	if err != nil {
		return err
	}

	return file.Sync()
}
