package publishing


import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/novifinancial/serde-reflection/serde-generate/runtime/golang/bcs"
	"github.com/novifinancial/serde-reflection/serde-generate/runtime/golang/serde"

	"github.com/diem/client-sdk-go/diemtypes"

	"move-emitter/core"
)


const maxBytesArgument = 32


// Draw the arguments of `fun` with `rng` and encode each of them with BCS
// as expected by a script function payload.
// Address arguments are taken from `pool`, or are `owner` if the pool is
// empty.
//
func encodeArguments(rng *rand.Rand, fun *EntryFunction, owner diemtypes.AccountAddress, pool *core.AddressPool) ([][]byte, error) {
	var ret [][]byte = make([][]byte, 0, len(fun.Args))
	var shape ArgShape
	var arg []byte
	var err error

	for _, shape = range fun.Args {
		arg, err = encodeArgument(rng, shape, owner, pool)
		if err != nil {
			return nil, errors.Wrapf(err, "function '%s'",
				fun.Name)
		}

		ret = append(ret, arg)
	}

	return ret, nil
}

func encodeArgument(rng *rand.Rand, shape ArgShape, owner diemtypes.AccountAddress, pool *core.AddressPool) ([]byte, error) {
	var addr diemtypes.AccountAddress
	var serializer serde.Serializer
	var raw []byte
	var err error
	var ok bool

	serializer = bcs.NewSerializer()

	switch shape {
	case ArgU8:
		err = serializer.SerializeU8(uint8(rng.Intn(256)))
	case ArgU64:
		err = serializer.SerializeU64(rng.Uint64())
	case ArgBool:
		err = serializer.SerializeBool(rng.Intn(2) == 1)
	case ArgAddress:
		addr = owner
		if pool != nil {
			addr, ok = pool.Random(rng)
			if !ok {
				addr = owner
			}
		}
		return addr.BcsSerialize()
	case ArgBytes:
		raw = make([]byte, 1 + rng.Intn(maxBytesArgument))
		rng.Read(raw)
		err = serializer.SerializeBytes(raw)
	default:
		return nil, errors.Errorf("unknown argument shape '%s'", shape)
	}

	if err != nil {
		return nil, err
	}

	return serializer.GetBytes(), nil
}
