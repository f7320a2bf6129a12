package configs

import (
	"errors"
	"fmt"

	"move-emitter/core"
)

// Default values used for the fields left empty in the configuration file.
const (
	DefaultChainId                = 4
	DefaultTransactionsPerAccount = 10
	DefaultBatchSize              = 16
	DefaultWorkers                = 1
	DefaultWorkload               = "publish"
)

// EmitterConfig is the whole configuration of a generation run.
type EmitterConfig struct {
	Chain    ChainInfo    `yaml:"chain"`    // Chain metadata stamped on transactions
	Workload WorkloadInfo `yaml:"workload"` // Shape of the generated workload
	Packages []string     `yaml:"packages"` // Directories of package templates
	Accounts []string     `yaml:"accounts"` // Premade account files
	Compiler CompilerInfo `yaml:"compiler"` // How to compile package sources
}

// ChainInfo holds what the transaction factory needs.
type ChainInfo struct {
	Id         uint8  `yaml:"id"`         // Chain identifier
	Currency   string `yaml:"currency"`   // Gas currency code
	MaxGas     uint64 `yaml:"max-gas"`    // Maximum gas amount per transaction
	GasPrice   uint64 `yaml:"gas-price"`  // Gas unit price of publish transactions
	Expiration uint64 `yaml:"expiration"` // Seconds before a transaction expires
}

// WorkloadInfo describes which generators run and how.
type WorkloadInfo struct {
	Name                   string `yaml:"name"`                     // Registered workload name
	TransactionsPerAccount int    `yaml:"transactions-per-account"` // Transactions per account and batch
	GasPrice               uint64 `yaml:"gas-price"`                // Gas unit price of the other transactions
	Amount                 uint64 `yaml:"amount"`                   // Coins per transfer
	Batch                  int    `yaml:"batch"`                    // Accounts per generation call
	Workers                int    `yaml:"workers"`                  // Concurrent generators
	Seed                   int64  `yaml:"seed"`                     // Master seed, 0 for the current time
}

// CompilerInfo locates move-build and the Move standard library.
type CompilerInfo struct {
	Command string `yaml:"command"` // Path to move-build
	Stdlib  string `yaml:"stdlib"`  // Directory of the stdlib sources
}

// Fill the fields the configuration file left empty.
func (c *EmitterConfig) applyDefaults() {
	if c.Chain.Id == 0 {
		c.Chain.Id = DefaultChainId
	}
	if c.Chain.Currency == "" {
		c.Chain.Currency = core.DefaultCurrency
	}
	if c.Chain.MaxGas == 0 {
		c.Chain.MaxGas = core.DefaultMaxGasAmount
	}
	if c.Chain.Expiration == 0 {
		c.Chain.Expiration = uint64(core.DefaultExpirationDelay.Seconds())
	}
	if c.Workload.Name == "" {
		c.Workload.Name = DefaultWorkload
	}
	if c.Workload.TransactionsPerAccount == 0 {
		c.Workload.TransactionsPerAccount = DefaultTransactionsPerAccount
	}
	if c.Workload.Batch == 0 {
		c.Workload.Batch = DefaultBatchSize
	}
	if c.Workload.Workers == 0 {
		c.Workload.Workers = DefaultWorkers
	}
}

// Validate checks the fields that the generators cannot work around.
func (c *EmitterConfig) Validate() error {
	if c.Workload.Name == "publish" {
		if c.Workload.TransactionsPerAccount < 2 {
			return fmt.Errorf("workload 'publish' needs at least 2 "+
				"transactions per account (got %d)",
				c.Workload.TransactionsPerAccount)
		}

		if len(c.Packages) == 0 {
			return errors.New("workload 'publish' needs package directories")
		}
	}

	if c.Workload.TransactionsPerAccount < 1 {
		return fmt.Errorf("transactions per account cannot be %d",
			c.Workload.TransactionsPerAccount)
	}

	if c.Workload.Batch < 1 {
		return fmt.Errorf("batch size cannot be %d", c.Workload.Batch)
	}

	if c.Workload.Workers < 1 {
		return fmt.Errorf("worker count cannot be %d", c.Workload.Workers)
	}

	if len(c.Accounts) == 0 {
		return errors.New("no account file provided")
	}

	return nil
}
