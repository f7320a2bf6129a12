package util


import (
	"bufio"
	"fmt"
	"io"

	"github.com/diem/client-sdk-go/diemtypes"
)


// Frames larger than this are rejected when reading.
const maxFrameSize = 16 << 20


// Write signed transactions as a sequence of frames, each made of a little
// endian 32 bits length followed by the BCS encoding of the transaction.
//
type TransactionWriter struct {
	inner  *bufio.Writer
	count  int
}

func NewTransactionWriter(dest io.Writer) *TransactionWriter {
	return &TransactionWriter{
		inner: bufio.NewWriter(dest),
	}
}

func (this *TransactionWriter) Write(stx *diemtypes.SignedTransaction) error {
	var raw []byte
	var err error

	raw, err = stx.BcsSerialize()
	if err != nil {
		return err
	}

	err = NewMonadOutputWriter(this.inner).
		WriteUint32(uint32(len(raw))).
		WriteBytes(raw).
		Error()
	if err != nil {
		return err
	}

	this.count += 1

	return nil
}

func (this *TransactionWriter) Count() int {
	return this.count
}

func (this *TransactionWriter) Flush() error {
	return this.inner.Flush()
}


type TransactionReader struct {
	inner  *bufio.Reader
}

func NewTransactionReader(src io.Reader) *TransactionReader {
	return &TransactionReader{
		inner: bufio.NewReader(src),
	}
}

// Return the next transaction or `io.EOF` when the stream ends cleanly
// between two frames.
//
func (this *TransactionReader) Read() (*diemtypes.SignedTransaction, error) {
	var stx diemtypes.SignedTransaction
	var size uint32
	var raw []byte
	var err error

	_, err = this.inner.Peek(1)
	if err != nil {
		return nil, err
	}

	err = NewMonadInputReader(this.inner).ReadUint32(&size).Error()
	if err != nil {
		return nil, err
	}

	if size > maxFrameSize {
		return nil, fmt.Errorf("frame too large (%d bytes)", size)
	}

	err = NewMonadInputReader(this.inner).
		ReadBytes(&raw, int(size)).
		Error()
	if err != nil {
		return nil, err
	}

	stx, err = diemtypes.BcsDeserializeSignedTransaction(raw)
	if err != nil {
		return nil, err
	}

	return &stx, nil
}
