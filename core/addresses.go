package core


import (
	"math/rand"
	"sync"

	"github.com/diem/client-sdk-go/diemtypes"
)


// The addresses of every account taking part in a run.
// Shared by a creator and all the generators it spawns. Reads are
// concurrent, appends exclude readers.
//
type AddressPool struct {
	lock   sync.RWMutex
	addrs  []diemtypes.AccountAddress
}

func NewAddressPool(addrs ...diemtypes.AccountAddress) *AddressPool {
	var pool AddressPool

	pool.addrs = make([]diemtypes.AccountAddress, 0, len(addrs))
	pool.addrs = append(pool.addrs, addrs...)

	return &pool
}

func (this *AddressPool) Append(addrs ...diemtypes.AccountAddress) {
	this.lock.Lock()
	defer this.lock.Unlock()

	this.addrs = append(this.addrs, addrs...)
}

func (this *AddressPool) Len() int {
	this.lock.RLock()
	defer this.lock.RUnlock()

	return len(this.addrs)
}

func (this *AddressPool) At(index int) diemtypes.AccountAddress {
	this.lock.RLock()
	defer this.lock.RUnlock()

	return this.addrs[index]
}

// Pick an address with the given randomness stream.
// Return false if the pool is empty.
//
func (this *AddressPool) Random(rng *rand.Rand) (diemtypes.AccountAddress, bool) {
	var addr diemtypes.AccountAddress

	this.lock.RLock()
	defer this.lock.RUnlock()

	if len(this.addrs) == 0 {
		return addr, false
	}

	return this.addrs[rng.Intn(len(this.addrs))], true
}

func (this *AddressPool) Snapshot() []diemtypes.AccountAddress {
	var ret []diemtypes.AccountAddress

	this.lock.RLock()
	defer this.lock.RUnlock()

	ret = make([]diemtypes.AccountAddress, len(this.addrs))
	copy(ret, this.addrs)

	return ret
}
