package publishing


import (
	"bytes"
	"fmt"

	"github.com/diem/client-sdk-go/diemtypes"
)


type ArgShape string

const (
	ArgU8      ArgShape = "u8"
	ArgU64     ArgShape = "u64"
	ArgBool    ArgShape = "bool"
	ArgAddress ArgShape = "address"
	ArgBytes   ArgShape = "bytes"
)

func (this ArgShape) valid() bool {
	switch this {
	case ArgU8, ArgU64, ArgBool, ArgAddress, ArgBytes:
		return true
	default:
		return false
	}
}


// An entry function a published package exposes to transactions.
//
type EntryFunction struct {
	Name  string
	Args  []ArgShape
}


// A compiled module published under a placeholder address.
// Every occurrence of `Placeholder` in `Code` is replaced by the publisher
// address. If `VersionMarker` is set, its occurrences are replaced by the
// little endian version so that each republication changes the code.
//
type PackageTemplate struct {
	Name           string
	Module         string
	Code           []byte
	Placeholder    diemtypes.AccountAddress
	VersionMarker  []byte
	Functions      []EntryFunction
}

func (this *PackageTemplate) Validate() error {
	var fun EntryFunction
	var shape ArgShape

	if this.Name == "" {
		return fmt.Errorf("package without name")
	}

	if this.Module == "" {
		return fmt.Errorf("package '%s': no module name", this.Name)
	}

	if len(this.Code) == 0 {
		return fmt.Errorf("package '%s': no code", this.Name)
	}

	if !bytes.Contains(this.Code, this.Placeholder[:]) {
		return fmt.Errorf("package '%s': placeholder address not " +
			"found in code", this.Name)
	}

	if this.VersionMarker != nil {
		if len(this.VersionMarker) != versionMarkerSize {
			return fmt.Errorf("package '%s': version marker must " +
				"be %d bytes", this.Name, versionMarkerSize)
		}

		if !bytes.Contains(this.Code, this.VersionMarker) {
			return fmt.Errorf("package '%s': version marker not " +
				"found in code", this.Name)
		}
	}

	if len(this.Functions) == 0 {
		return fmt.Errorf("package '%s': no entry function", this.Name)
	}

	for _, fun = range this.Functions {
		if fun.Name == "" {
			return fmt.Errorf("package '%s': entry function " +
				"without name", this.Name)
		}

		for _, shape = range fun.Args {
			if !shape.valid() {
				return fmt.Errorf("package '%s': function '%s' " +
					"has unknown argument '%s'", this.Name,
					fun.Name, shape)
			}
		}
	}

	return nil
}
