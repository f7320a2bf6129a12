package publishing


import (
	"bytes"
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/diem/client-sdk-go/diemtypes"
)


const (
	versionMarkerSize = 8

	defaultRewriteCacheSize = 4096
)


type rewriteKey struct {
	template  *PackageTemplate
	owner     diemtypes.AccountAddress
	version   uint64
}

// Produce the code of a template as published by a given owner at a given
// version.
// Results are kept in a bounded cache shared by all the generators.
//
type rewriter struct {
	cache  *lru.Cache[rewriteKey, []byte]
}

func newRewriter(size int) (*rewriter, error) {
	var cache *lru.Cache[rewriteKey, []byte]
	var err error

	if size <= 0 {
		size = defaultRewriteCacheSize
	}

	cache, err = lru.New[rewriteKey, []byte](size)
	if err != nil {
		return nil, err
	}

	return &rewriter{ cache }, nil
}

// The returned slice is shared, callers must not modify it.
//
func (this *rewriter) code(template *PackageTemplate, owner diemtypes.AccountAddress, version uint64) []byte {
	var key rewriteKey = rewriteKey{ template, owner, version }
	var code []byte
	var ok bool

	code, ok = this.cache.Get(key)
	if ok {
		return code
	}

	code = rewriteCode(template, owner, version)

	this.cache.Add(key, code)

	return code
}

func rewriteCode(template *PackageTemplate, owner diemtypes.AccountAddress, version uint64) []byte {
	var marker []byte = make([]byte, versionMarkerSize)
	var code []byte

	code = bytes.ReplaceAll(template.Code, template.Placeholder[:],
		owner[:])

	if template.VersionMarker != nil {
		binary.LittleEndian.PutUint64(marker, version)
		code = bytes.ReplaceAll(code, template.VersionMarker, marker)
	}

	return code
}
