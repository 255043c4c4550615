package handler

import (
	"bytes"
	"encoding/json"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

// encodeJSON encodes payload into a pooled buffer. The caller hands the buffer
// back with releaseBuffer once it has been written out.
func encodeJSON(payload interface{}) (*bytes.Buffer, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		releaseBuffer(buf)
		return nil, err
	}
	return buf, nil
}

// releaseBuffer returns buf to the pool. Buffers grown by a large registry
// dump are dropped so the pool does not keep them alive.
func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
