package core


import (
	"time"

	"github.com/diem/client-sdk-go/diemsigner"
	"github.com/diem/client-sdk-go/diemtypes"
)


const (
	DefaultCurrency = "XUS"

	DefaultMaxGasAmount = 1_000_000

	DefaultExpirationDelay = 86400 * time.Second
)


// Stamp chain metadata on transaction payloads and sign them.
// A factory is immutable, the `With` methods return a modified copy so a
// single factory can be shared by all the generators of a run.
//
type TransactionFactory struct {
	chainId          uint8
	maxGasAmount     uint64
	gasUnitPrice     uint64
	currency         string
	expirationDelay  time.Duration
	now              func() time.Time
}

func NewTransactionFactory(chainId uint8) *TransactionFactory {
	return &TransactionFactory{
		chainId: chainId,
		maxGasAmount: DefaultMaxGasAmount,
		gasUnitPrice: 0,
		currency: DefaultCurrency,
		expirationDelay: DefaultExpirationDelay,
		now: time.Now,
	}
}

func (this *TransactionFactory) ChainId() uint8 {
	return this.chainId
}

func (this *TransactionFactory) GasUnitPrice() uint64 {
	return this.gasUnitPrice
}

func (this *TransactionFactory) MaxGasAmount() uint64 {
	return this.maxGasAmount
}

func (this *TransactionFactory) Currency() string {
	return this.currency
}

func (this *TransactionFactory) WithGasUnitPrice(price uint64) *TransactionFactory {
	var ret TransactionFactory = *this

	ret.gasUnitPrice = price

	return &ret
}

func (this *TransactionFactory) WithMaxGasAmount(amount uint64) *TransactionFactory {
	var ret TransactionFactory = *this

	ret.maxGasAmount = amount

	return &ret
}

func (this *TransactionFactory) WithCurrency(currency string) *TransactionFactory {
	var ret TransactionFactory = *this

	ret.currency = currency

	return &ret
}

func (this *TransactionFactory) WithExpirationDelay(delay time.Duration) *TransactionFactory {
	var ret TransactionFactory = *this

	ret.expirationDelay = delay

	return &ret
}

func (this *TransactionFactory) WithClock(now func() time.Time) *TransactionFactory {
	var ret TransactionFactory = *this

	ret.now = now

	return &ret
}

func (this *TransactionFactory) expiration() uint64 {
	return uint64(this.now().Add(this.expirationDelay).Unix())
}

// Build a raw transaction for `payload` sent by `from` with its current
// sequence number.
// The account sequence number is not modified.
//
func (this *TransactionFactory) RawTransaction(from *LocalAccount, payload diemtypes.TransactionPayload) *diemtypes.RawTransaction {
	return &diemtypes.RawTransaction{
		Sender: from.Address(),
		SequenceNumber: from.SequenceNumber(),
		Payload: payload,
		MaxGasAmount: this.maxGasAmount,
		GasUnitPrice: this.gasUnitPrice,
		GasCurrencyCode: this.currency,
		ExpirationTimestampSecs: this.expiration(),
		ChainId: diemtypes.ChainId(this.chainId),
	}
}

// Sign `payload` on behalf of `from` and advance its sequence number.
//
func (this *TransactionFactory) Sign(from *LocalAccount, payload diemtypes.TransactionPayload) *diemtypes.SignedTransaction {
	var raw *diemtypes.RawTransaction = this.RawTransaction(from, payload)

	from.IncrementSequenceNumber()

	return diemsigner.SignTxn(from.Keys(), raw.Sender, raw.SequenceNumber,
		raw.Payload, raw.MaxGasAmount, raw.GasUnitPrice,
		raw.GasCurrencyCode, raw.ExpirationTimestampSecs,
		byte(raw.ChainId))
}
