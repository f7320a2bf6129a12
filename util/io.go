package util


import (
	"encoding/binary"
	"io"
)


// Chain writes and stop at the first error.
//
type MonadOutput interface {
	WriteUint32(uint32) MonadOutput
	WriteBytes([]byte) MonadOutput

	Error() error
}

// Chain reads and stop at the first error.
//
type MonadInput interface {
	ReadUint32(*uint32) MonadInput
	ReadBytes(*[]byte, int) MonadInput

	Error() error
}


type monadOutputWriter struct {
	inner  io.Writer
	order  binary.ByteOrder
}

func NewMonadOutputWriter(dest io.Writer) *monadOutputWriter {
	return &monadOutputWriter{
		inner: dest,
		order: binary.LittleEndian,
	}
}

func (this *monadOutputWriter) WriteUint32(val uint32) MonadOutput {
	var err error = binary.Write(this.inner, this.order, val)

	if err != nil {
		return NewMonadError(err)
	}

	return this
}

func (this *monadOutputWriter) WriteBytes(val []byte) MonadOutput {
	var err error

	_, err = this.inner.Write(val)
	if err != nil {
		return NewMonadError(err)
	}

	return this
}

func (this *monadOutputWriter) Error() error {
	return nil
}


type monadInputReader struct {
	inner  io.Reader
	order  binary.ByteOrder
}

func NewMonadInputReader(src io.Reader) *monadInputReader {
	return &monadInputReader{
		inner: src,
		order: binary.LittleEndian,
	}
}

func (this *monadInputReader) ReadUint32(ptr *uint32) MonadInput {
	var err error = binary.Read(this.inner, this.order, ptr)

	if err != nil {
		return NewMonadError(err)
	}

	return this
}

func (this *monadInputReader) ReadBytes(ptr *[]byte, n int) MonadInput {
	var err error

	*ptr = make([]byte, n)

	_, err = io.ReadFull(this.inner, *ptr)
	if err != nil {
		return NewMonadError(err)
	}

	return this
}

func (this *monadInputReader) Error() error {
	return nil
}


type monadError struct {
	inner  error
}

func NewMonadError(err error) *monadError {
	return &monadError{
		inner: err,
	}
}

func (this *monadError) WriteUint32(uint32) MonadOutput {
	return this
}

func (this *monadError) WriteBytes([]byte) MonadOutput {
	return this
}

func (this *monadError) ReadUint32(*uint32) MonadInput {
	return this
}

func (this *monadError) ReadBytes(*[]byte, int) MonadInput {
	return this
}

func (this *monadError) Error() error {
	return this.inner
}
