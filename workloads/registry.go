package workloads


import (
	"fmt"
	"sort"

	"move-emitter/core"
)


// What a run shares between the generators of a workload.
//
type Environment struct {
	Logger     core.Logger
	Metrics    *core.Metrics
	Seeds      *core.SeedSource
	Factory    *core.TransactionFactory
	Addresses  *core.AddressPool
	GasPrice   uint64

	// Only used by the publish workload.
	Catalog    core.PackageCatalog

	// Only used by the transfer workload.
	Amount     uint64
}

type CreatorBuilder func(env *Environment) (core.TransactionGeneratorCreator, error)


var registry = map[string]CreatorBuilder{
	PublishWorkload: buildPublishCreator,
	TransferWorkload: buildTransferCreator,
}


func Lookup(name string) (CreatorBuilder, bool) {
	var builder CreatorBuilder
	var ok bool

	builder, ok = registry[name]

	return builder, ok
}

func Names() []string {
	var ret []string = make([]string, 0, len(registry))
	var name string

	for name = range registry {
		ret = append(ret, name)
	}

	sort.Strings(ret)

	return ret
}

func NewCreator(name string, env *Environment) (core.TransactionGeneratorCreator, error) {
	var builder CreatorBuilder
	var ok bool

	builder, ok = Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown workload '%s'", name)
	}

	return builder(env)
}

func buildPublishCreator(env *Environment) (core.TransactionGeneratorCreator, error) {
	if env.Catalog == nil {
		return nil, fmt.Errorf("workload '%s' needs a package catalog",
			PublishWorkload)
	}

	return NewPublishPackageCreator(env.Logger.Extend(PublishWorkload),
		env.Metrics, env.Seeds, env.Catalog, env.Factory,
		env.GasPrice), nil
}

func buildTransferCreator(env *Environment) (core.TransactionGeneratorCreator, error) {
	return NewTransferCreator(env.Logger.Extend(TransferWorkload),
		env.Metrics, env.Seeds, env.Factory, env.Addresses,
		env.GasPrice, env.Amount), nil
}
