package bench


import (
	"fmt"

	"github.com/diem/client-sdk-go/diemclient"
	"github.com/diem/client-sdk-go/diemjsonrpctypes"
	"github.com/diem/client-sdk-go/diemtypes"

	"move-emitter/core"
)


// The part of a node client needed to read account states.
// `diemclient.Client` satisfies it.
//
type AccountReader interface {
	GetAccount(address diemtypes.AccountAddress) (*diemjsonrpctypes.Account, error)
}

func NewAccountReader(chainId uint8, endpoint string) AccountReader {
	return diemclient.New(chainId, "http://" + endpoint)
}

// Set the local sequence number of each account to its on-chain value.
// Nothing is submitted.
//
func SyncSequenceNumbers(logger core.Logger, reader AccountReader, accounts []*core.LocalAccount) error {
	var state *diemjsonrpctypes.Account
	var account *core.LocalAccount
	var err error

	for _, account = range accounts {
		state, err = reader.GetAccount(account.Address())
		if err != nil {
			return fmt.Errorf("account %s: %w", account, err)
		}

		if state == nil {
			return fmt.Errorf("account %s does not exist", account)
		}

		logger.Tracef("account %s at sequence %d", account,
			state.SequenceNumber)

		account.SetSequenceNumber(state.SequenceNumber)
	}

	return nil
}
