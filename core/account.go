package core


import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/diem/client-sdk-go/diemkeys"
	"github.com/diem/client-sdk-go/diemtypes"
)


// An account able to sign transactions on its own.
// The sequence number is local: it is advanced every time a transaction is
// signed for this account and never read back from the network unless the
// caller does it explicitly with `SetSequenceNumber`.
// A `LocalAccount` must not be used by two goroutines at the same time.
//
type LocalAccount struct {
	key       ed25519.PrivateKey
	keys      *diemkeys.Keys
	addr      diemtypes.AccountAddress
	sequence  uint64
}

func NewLocalAccount(key ed25519.PrivateKey, sequence uint64) *LocalAccount {
	var keys *diemkeys.Keys

	keys = diemkeys.NewKeysFromPublicAndPrivateKeys(
		diemkeys.NewEd25519PublicKey(key.Public().(ed25519.PublicKey)),
		diemkeys.NewEd25519PrivateKey(key))

	return &LocalAccount{
		key: key,
		keys: keys,
		addr: keys.AccountAddress(),
		sequence: sequence,
	}
}

func NewLocalAccountFromSeed(seed []byte, sequence uint64) (*LocalAccount, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length %d (expected %d)",
			len(seed), ed25519.SeedSize)
	}

	return NewLocalAccount(ed25519.NewKeyFromSeed(seed), sequence), nil
}

func (this *LocalAccount) Address() diemtypes.AccountAddress {
	return this.addr
}

func (this *LocalAccount) Keys() *diemkeys.Keys {
	return this.keys
}

func (this *LocalAccount) Seed() []byte {
	return this.key.Seed()
}

func (this *LocalAccount) SequenceNumber() uint64 {
	return this.sequence
}

func (this *LocalAccount) SetSequenceNumber(sequence uint64) {
	this.sequence = sequence
}

// Return the current sequence number and advance it by one.
//
func (this *LocalAccount) IncrementSequenceNumber() uint64 {
	var ret uint64 = this.sequence

	this.sequence += 1

	return ret
}

func (this *LocalAccount) String() string {
	return HexAddress(this.addr)
}


func HexAddress(addr diemtypes.AccountAddress) string {
	return hex.EncodeToString(addr[:])
}

func ParseHexAddress(str string) (diemtypes.AccountAddress, error) {
	var addr diemtypes.AccountAddress
	var raw []byte
	var err error

	if len(str) > 1 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X') {
		str = str[2:]
	}

	raw, err = hex.DecodeString(str)
	if err != nil {
		return addr, err
	}

	if len(raw) != len(addr) {
		return addr, fmt.Errorf("invalid address length %d (expected %d)",
			len(raw), len(addr))
	}

	copy(addr[:], raw)

	return addr, nil
}
