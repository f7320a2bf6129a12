package cmd

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ed25519"

	"move-emitter/configs"
	"move-emitter/core"
)

// keygenCmd represents the command provider for premade account files
var keygenCmd = &cobra.Command{
	Use:           "keygen <path>",
	Short:         "Writes an account file of fresh ed25519 seeds",
	Args:          cobra.ExactArgs(1),
	RunE:          cmdRunKeygen,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	keygenCmd.Flags().IntP("count", "n", 16, "number of accounts to create")
	rootCmd.AddCommand(keygenCmd)
}

// generateAccounts creates count accounts with random keys and sequence number 0
func generateAccounts(count int) ([]*core.LocalAccount, error) {
	if count < 0 {
		return nil, fmt.Errorf("cannot create %d accounts", count)
	}

	accounts := make([]*core.LocalAccount, count)
	for i := range accounts {
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		accounts[i] = core.NewLocalAccount(key, 0)
	}

	return accounts, nil
}

// cmdRunKeygen executes the keygen command
func cmdRunKeygen(command *cobra.Command, args []string) error {
	count, err := command.Flags().GetInt("count")
	if err != nil {
		return err
	}

	accounts, err := generateAccounts(count)
	if err != nil {
		return err
	}

	err = configs.WriteAccounts(args[0], accounts)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		fmt.Fprintln(command.OutOrStdout(), core.HexAddress(account.Address()))
	}

	return nil
}
