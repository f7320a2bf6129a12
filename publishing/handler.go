package publishing


import (
	"math/rand"
	"sync"

	"github.com/diem/client-sdk-go/diemtypes"

	"move-emitter/core"
)


type packageTracker struct {
	template    *PackageTemplate
	publishers  map[diemtypes.AccountAddress]uint64
}

// The catalog of packages a publish workload draws from.
// Picking a package records which account published which template at which
// version; this is the only mutation and it is serialized. Building the
// transactions of a picked package happens outside of the catalog lock.
//
type PackageHandler struct {
	lock       sync.RWMutex
	trackers   []*packageTracker
	rewriter   *rewriter
	addresses  *core.AddressPool
	logger     core.Logger
	metrics    *core.Metrics
}

// Create a catalog over `templates`.
// The `addresses` pool provides the address arguments of use transactions.
//
func NewPackageHandler(templates []*PackageTemplate, addresses *core.AddressPool, logger core.Logger, metrics *core.Metrics) (*PackageHandler, error) {
	var template *PackageTemplate
	var ret PackageHandler
	var err error

	ret.rewriter, err = newRewriter(defaultRewriteCacheSize)
	if err != nil {
		return nil, err
	}

	ret.trackers = make([]*packageTracker, 0, len(templates))
	for _, template = range templates {
		err = template.Validate()
		if err != nil {
			return nil, err
		}

		ret.trackers = append(ret.trackers, &packageTracker{
			template: template,
			publishers: make(map[diemtypes.AccountAddress]uint64),
		})
	}

	ret.addresses = addresses
	ret.logger = logger
	ret.metrics = metrics

	return &ret, nil
}

func (this *PackageHandler) Len() int {
	this.lock.RLock()
	defer this.lock.RUnlock()

	return len(this.trackers)
}

func (this *PackageHandler) Names() []string {
	var ret []string
	var tracker *packageTracker

	this.lock.RLock()
	defer this.lock.RUnlock()

	ret = make([]string, 0, len(this.trackers))
	for _, tracker = range this.trackers {
		ret = append(ret, tracker.template.Name)
	}

	return ret
}

// Return the version `owner` got on its last pick of the package `name`, or
// false if it never picked it.
//
func (this *PackageHandler) LastVersion(name string, owner diemtypes.AccountAddress) (uint64, bool) {
	var tracker *packageTracker
	var version uint64
	var ok bool

	this.lock.RLock()
	defer this.lock.RUnlock()

	for _, tracker = range this.trackers {
		if tracker.template.Name != name {
			continue
		}

		version, ok = tracker.publishers[owner]
		return version, ok
	}

	return 0, false
}

func (this *PackageHandler) PickPackage(rng *rand.Rand, account *core.LocalAccount) (core.PackageHandle, error) {
	var owner diemtypes.AccountAddress = account.Address()
	var tracker *packageTracker
	var version uint64
	var ok bool

	this.lock.Lock()

	if len(this.trackers) == 0 {
		this.lock.Unlock()
		return nil, core.ErrCatalogExhausted
	}

	tracker = this.trackers[rng.Intn(len(this.trackers))]

	version, ok = tracker.publishers[owner]
	if ok {
		version += 1
	}
	tracker.publishers[owner] = version

	this.lock.Unlock()

	this.logger.Tracef("pick package '%s' version %d for %s",
		tracker.template.Name, version, account)
	this.metrics.RecordPick(tracker.template.Name)

	return &Package{
		template: tracker.template,
		owner: owner,
		version: version,
		rewriter: this.rewriter,
		addresses: this.addresses,
	}, nil
}
