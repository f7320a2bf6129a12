package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diem/client-sdk-go/diemjsonrpctypes"
	"github.com/diem/client-sdk-go/diemtypes"

	"move-emitter/configs"
	"move-emitter/core"
	"move-emitter/util"
	"move-emitter/workloads"
)

func newAccounts(t *testing.T, n int) []*core.LocalAccount {
	accounts := make([]*core.LocalAccount, n)
	for i := range accounts {
		account, err := core.NewLocalAccountFromSeed(bytes.Repeat([]byte{byte(i + 1)}, 32), 0)
		require.NoError(t, err)
		accounts[i] = account
	}
	return accounts
}

func transferCreator(accounts []*core.LocalAccount) core.TransactionGeneratorCreator {
	pool := core.NewAddressPool()
	for _, account := range accounts {
		pool.Append(account.Address())
	}
	return workloads.NewTransferCreator(core.NewNoLogger(),
		core.NewUnregisteredMetrics(), core.NewSeedSource(1),
		core.NewTransactionFactory(4), pool, 1, 10)
}

func TestShare(t *testing.T) {
	accounts := newAccounts(t, 10)
	seen := make(map[*core.LocalAccount]bool)

	for i := 0; i < 3; i++ {
		for _, account := range share(accounts, i, 3) {
			assert.False(t, seen[account])
			seen[account] = true
		}
	}
	assert.Len(t, seen, 10)

	assert.Empty(t, share(newAccounts(t, 1), 0, 4))
	assert.Len(t, share(newAccounts(t, 1), 3, 4), 1)
}

func TestRunner(t *testing.T) {
	accounts := newAccounts(t, 11)
	runner := NewRunner(core.NewNoLogger(), transferCreator(accounts), 3, 2, 4)

	txs, err := runner.Run(context.Background(), accounts)
	require.NoError(t, err)
	require.Len(t, txs, 44)

	for i, stx := range txs {
		assert.Equal(t, accounts[i/4].Address(), stx.RawTxn.Sender)
		assert.Equal(t, uint64(i%4), stx.RawTxn.SequenceNumber)
	}

	t.Run("invalid shape", func(t *testing.T) {
		runner := NewRunner(core.NewNoLogger(), transferCreator(accounts), 0, 2, 4)
		_, err := runner.Run(context.Background(), accounts)
		assert.ErrorIs(t, err, core.ErrContractViolation)
	})

	t.Run("generator error", func(t *testing.T) {
		runner := NewRunner(core.NewNoLogger(), transferCreator(accounts), 2, 2, 0)
		txs, err := runner.Run(context.Background(), accounts)
		assert.Nil(t, txs)
		assert.ErrorIs(t, err, core.ErrContractViolation)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := runner.Run(ctx, accounts)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type fakeReader struct {
	sequences map[diemtypes.AccountAddress]uint64
	fail      bool
}

func (r *fakeReader) GetAccount(address diemtypes.AccountAddress) (*diemjsonrpctypes.Account, error) {
	if r.fail {
		return nil, errors.New("connection refused")
	}
	sequence, ok := r.sequences[address]
	if !ok {
		return nil, nil
	}
	return &diemjsonrpctypes.Account{SequenceNumber: sequence}, nil
}

func TestSyncSequenceNumbers(t *testing.T) {
	accounts := newAccounts(t, 2)
	reader := &fakeReader{sequences: map[diemtypes.AccountAddress]uint64{
		accounts[0].Address(): 12,
		accounts[1].Address(): 3,
	}}

	require.NoError(t, SyncSequenceNumbers(core.NewNoLogger(), reader, accounts))
	assert.Equal(t, uint64(12), accounts[0].SequenceNumber())
	assert.Equal(t, uint64(3), accounts[1].SequenceNumber())

	unknown := newAccounts(t, 3)[2:]
	assert.Error(t, SyncSequenceNumbers(core.NewNoLogger(), reader, unknown))

	reader.fail = true
	assert.Error(t, SyncSequenceNumbers(core.NewNoLogger(), reader, accounts))
}

const packageManifest = `
name: simple
module: Simple
code: simple.mv
placeholder: "0x00000000000000000000000000c0ffee"
functions:
  - name: step
    args: [u64, address]
`

func writeRunFiles(t *testing.T, workload string, naccounts int) string {
	dir := t.TempDir()

	pkg := filepath.Join(dir, "packages", "simple")
	require.NoError(t, os.MkdirAll(pkg, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pkg, "package.yaml"), []byte(packageManifest), 0644))
	code := append([]byte{0xa1, 0x1c, 0xeb, 0x0b}, make([]byte, 13)...)
	code = append(code, 0xc0, 0xff, 0xee)
	require.NoError(t, os.WriteFile(filepath.Join(pkg, "simple.mv"), code, 0644))

	require.NoError(t, configs.WriteAccounts(filepath.Join(dir, "accounts.yaml"), newAccounts(t, naccounts)))

	config := fmt.Sprintf(`
workload:
  name: %s
  transactions-per-account: 3
  gas-price: 5
  batch: 2
  workers: 2
  seed: 99
packages: [packages]
accounts: [accounts.yaml]
`, workload)
	path := filepath.Join(dir, "emitter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0644))

	return path
}

func TestSetupAndWrite(t *testing.T) {
	path := writeRunFiles(t, "publish", 5)
	config, err := configs.ParseEmitterConfig(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	run, err := Setup(config, core.NewNoLogger(), core.NewUnregisteredMetrics())
	require.NoError(t, err)

	assert.Equal(t, int64(99), run.Seed)
	assert.Len(t, run.Accounts, 5)
	assert.Equal(t, 5, run.Addresses.Len())
	require.NotNil(t, run.Catalog)
	assert.Equal(t, []string{"simple"}, run.Catalog.Names())

	txs, err := run.Runner.Run(context.Background(), run.Accounts)
	require.NoError(t, err)
	require.Len(t, txs, 15)

	out := filepath.Join(t.TempDir(), "txs.bin")
	require.NoError(t, WriteTransactions(out, txs))

	file, err := os.Open(out)
	require.NoError(t, err)
	defer file.Close()

	reader := util.NewTransactionReader(file)
	count := 0
	for {
		stx, err := reader.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, txs[count].RawTxn.Sender, stx.RawTxn.Sender)
		assert.Equal(t, txs[count].RawTxn.SequenceNumber, stx.RawTxn.SequenceNumber)
		count++
	}
	assert.Equal(t, 15, count)

	t.Run("transfer workload has no catalog", func(t *testing.T) {
		config, err := configs.ParseEmitterConfig(writeRunFiles(t, "transfer", 2))
		require.NoError(t, err)

		run, err := Setup(config, core.NewNoLogger(), core.NewUnregisteredMetrics())
		require.NoError(t, err)
		assert.Nil(t, run.Catalog)
		assert.IsType(t, &workloads.TransferCreator{}, run.Creator)
	})

	t.Run("unknown workload", func(t *testing.T) {
		config, err := configs.ParseEmitterConfig(writeRunFiles(t, "mint", 2))
		require.NoError(t, err)

		_, err = Setup(config, core.NewNoLogger(), core.NewUnregisteredMetrics())
		assert.Error(t, err)
	})

	t.Run("empty catalog", func(t *testing.T) {
		config, err := configs.ParseEmitterConfig(writeRunFiles(t, "publish", 2))
		require.NoError(t, err)
		config.Packages = []string{t.TempDir()}

		_, err = Setup(config, core.NewNoLogger(), core.NewUnregisteredMetrics())
		assert.ErrorIs(t, err, core.ErrCatalogExhausted)
	})
}
