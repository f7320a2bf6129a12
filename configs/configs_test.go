package configs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"move-emitter/core"
)

const sampleConfig = `
chain:
  id: 31
  currency: "XDX"
  gas-price: 2
workload:
  name: "publish"
  transactions-per-account: 5
  gas-price: 100
  batch: 4
  workers: 3
  seed: 1234
packages:
  - "packages"
accounts:
  - "/abs/accounts.yaml"
  - "accounts.yaml"
`

func TestParseSampleEmitterConfig(t *testing.T) {

	check := func(fn string, expected, got interface{}) {
		if got != expected {
			t.Errorf(
				"%s mismatch: expected %v, got: %v",
				fn,
				expected,
				got,
			)
		}
	}

	t.Run("test all values present", func(t *testing.T) {
		config, err := parseEmitterYaml([]byte(sampleConfig))
		require.NoError(t, err)

		check("chain id", uint8(31), config.Chain.Id)
		check("currency", "XDX", config.Chain.Currency)
		check("chain gas price", uint64(2), config.Chain.GasPrice)
		check("workload", "publish", config.Workload.Name)
		check("transactions", 5, config.Workload.TransactionsPerAccount)
		check("workload gas price", uint64(100), config.Workload.GasPrice)
		check("batch", 4, config.Workload.Batch)
		check("workers", 3, config.Workload.Workers)
		check("seed", int64(1234), config.Workload.Seed)
		assert.NoError(t, config.Validate())
	})

	t.Run("test defaults", func(t *testing.T) {
		config, err := parseEmitterYaml([]byte("accounts: [a.yaml]\npackages: [p]\n"))
		require.NoError(t, err)

		check("chain id", uint8(DefaultChainId), config.Chain.Id)
		check("currency", core.DefaultCurrency, config.Chain.Currency)
		check("max gas", uint64(core.DefaultMaxGasAmount), config.Chain.MaxGas)
		check("expiration", uint64(86400), config.Chain.Expiration)
		check("workload", DefaultWorkload, config.Workload.Name)
		check("transactions", DefaultTransactionsPerAccount, config.Workload.TransactionsPerAccount)
		check("batch", DefaultBatchSize, config.Workload.Batch)
		check("workers", DefaultWorkers, config.Workload.Workers)
		assert.NoError(t, config.Validate())
	})

	t.Run("test invalid yaml", func(t *testing.T) {
		_, err := parseEmitterYaml([]byte("workload: [1, 2"))
		assert.Error(t, err)
	})

	t.Run("test relative paths", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "emitter.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

		config, err := ParseEmitterConfig(path)
		require.NoError(t, err)

		assert.Equal(t, []string{filepath.Join(dir, "packages")}, config.Packages)
		assert.Equal(t, []string{"/abs/accounts.yaml", filepath.Join(dir, "accounts.yaml")}, config.Accounts)
	})
}

func TestValidateEmitterConfig(t *testing.T) {
	valid := func() *EmitterConfig {
		config, err := parseEmitterYaml([]byte(sampleConfig))
		require.NoError(t, err)
		return config
	}

	t.Run("publish needs two transactions", func(t *testing.T) {
		config := valid()
		config.Workload.TransactionsPerAccount = 1
		assert.Error(t, config.Validate())
	})

	t.Run("publish needs packages", func(t *testing.T) {
		config := valid()
		config.Packages = nil
		assert.Error(t, config.Validate())
	})

	t.Run("transfer accepts one transaction", func(t *testing.T) {
		config := valid()
		config.Workload.Name = "transfer"
		config.Workload.TransactionsPerAccount = 1
		config.Packages = nil
		assert.NoError(t, config.Validate())
	})

	t.Run("negative values", func(t *testing.T) {
		config := valid()
		config.Workload.Batch = -1
		assert.Error(t, config.Validate())

		config = valid()
		config.Workload.Workers = -2
		assert.Error(t, config.Validate())
	})

	t.Run("accounts required", func(t *testing.T) {
		config := valid()
		config.Accounts = nil
		assert.Error(t, config.Validate())
	})
}

func TestAccounts(t *testing.T) {
	dir := t.TempDir()

	t.Run("round trip", func(t *testing.T) {
		accounts := make([]*core.LocalAccount, 3)
		for i := range accounts {
			account, err := core.NewLocalAccountFromSeed(bytes.Repeat([]byte{byte(i + 1)}, 32), 5)
			require.NoError(t, err)
			accounts[i] = account
		}

		path := filepath.Join(dir, "accounts.yaml")
		require.NoError(t, WriteAccounts(path, accounts))

		loaded, err := LoadAccounts(path)
		require.NoError(t, err)
		require.Len(t, loaded, 3)
		for i := range accounts {
			assert.Equal(t, accounts[i].Address(), loaded[i].Address())
			assert.Equal(t, uint64(0), loaded[i].SequenceNumber())
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0600))

		loaded, err := LoadAccounts(path)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("bad seed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- \"zz\"\n- \"0102\"\n"), 0600))

		_, err := LoadAccounts(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadAccounts(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})
}
