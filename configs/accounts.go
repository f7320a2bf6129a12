package configs

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"move-emitter/core"
)

// LoadAccounts reads a premade account file: a YAML list of hex encoded
// ed25519 seeds. Sequence numbers start at zero.
func LoadAccounts(path string) ([]*core.LocalAccount, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open account file: %v", err)
	}
	defer file.Close()

	var keys []string
	err = yaml.NewDecoder(file).Decode(&keys)
	if err == io.EOF {
		return []*core.LocalAccount{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode account file: %v", err)
	}

	accounts := make([]*core.LocalAccount, 0, len(keys))
	for _, key := range keys {
		seed, err := hex.DecodeString(strings.TrimPrefix(key, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to decode hex key: %v", err)
		}

		account, err := core.NewLocalAccountFromSeed(seed, 0)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

// WriteAccounts stores accounts in the format read by LoadAccounts.
func WriteAccounts(path string, accounts []*core.LocalAccount) error {
	keys := make([]string, 0, len(accounts))
	for _, account := range accounts {
		keys = append(keys, hex.EncodeToString(account.Seed()))
	}

	content, err := yaml.Marshal(keys)
	if err != nil {
		return err
	}

	return os.WriteFile(path, content, 0600)
}
