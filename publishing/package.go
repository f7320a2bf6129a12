package publishing


import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/diem/client-sdk-go/diemtypes"

	"move-emitter/core"
)


// A package template picked for one owner at one version.
//
type Package struct {
	template   *PackageTemplate
	owner      diemtypes.AccountAddress
	version    uint64
	rewriter   *rewriter
	addresses  *core.AddressPool
}

func (this *Package) Name() string {
	return this.template.Name
}

func (this *Package) Version() uint64 {
	return this.version
}

func (this *Package) Owner() diemtypes.AccountAddress {
	return this.owner
}

func (this *Package) Code() []byte {
	return this.rewriter.code(this.template, this.owner, this.version)
}

func (this *Package) checkOwner(op string, account *core.LocalAccount) error {
	if account.Address() != this.owner {
		return errors.Errorf("%s of package '%s': account %s is not " +
			"the owner %s", op, this.template.Name, account,
			core.HexAddress(this.owner))
	}

	return nil
}

// Sign the publication of this package by its owner with the gas price of
// `factory`.
//
func (this *Package) PublishTransaction(account *core.LocalAccount, factory *core.TransactionFactory) (*diemtypes.SignedTransaction, error) {
	var payload diemtypes.TransactionPayload
	var err error

	err = this.checkOwner("publish", account)
	if err != nil {
		return nil, err
	}

	payload = &diemtypes.TransactionPayload__Module{
		Value: diemtypes.Module{
			Code: this.Code(),
		},
	}

	return factory.Sign(account, payload), nil
}

// Sign a call to one of the entry functions of this package, chosen with
// `rng`, with the given gas price.
//
func (this *Package) UseTransaction(rng *rand.Rand, account *core.LocalAccount, factory *core.TransactionFactory, gasPrice uint64) (*diemtypes.SignedTransaction, error) {
	var payload diemtypes.TransactionPayload
	var fun *EntryFunction
	var args [][]byte
	var err error

	err = this.checkOwner("use", account)
	if err != nil {
		return nil, err
	}

	fun = &this.template.Functions[rng.Intn(len(this.template.Functions))]

	args, err = encodeArguments(rng, fun, this.owner, this.addresses)
	if err != nil {
		return nil, errors.Wrapf(err, "use of package '%s'",
			this.template.Name)
	}

	payload = &diemtypes.TransactionPayload__ScriptFunction{
		Value: diemtypes.ScriptFunction{
			Module: diemtypes.ModuleId{
				Address: this.owner,
				Name: diemtypes.Identifier(this.template.Module),
			},
			Function: diemtypes.Identifier(fun.Name),
			TyArgs: []diemtypes.TypeTag{},
			Args: args,
		},
	}

	return factory.WithGasUnitPrice(gasPrice).Sign(account, payload), nil
}
