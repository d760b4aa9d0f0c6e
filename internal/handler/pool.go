package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferBytes fits a single level result or a short user list
	initialBufferBytes = 512
	// maxPooledBufferBytes keeps one large /api/users response from pinning memory in the pool
	maxPooledBufferBytes = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferBytes))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew past maxPooledBufferBytes
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferBytes {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
