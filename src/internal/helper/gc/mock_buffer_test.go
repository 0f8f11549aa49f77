// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import "bytes"

// plainBuffer satisfies [Buffer] without being a pooled byte buffer.
type plainBuffer struct{ *bytes.Buffer }

func newPlainBuffer() *plainBuffer { return &plainBuffer{Buffer: new(bytes.Buffer)} }

func (p *plainBuffer) Set(b []byte) {
	p.Buffer.Reset()
	p.Buffer.Write(b)
}

func (p *plainBuffer) SetString(s string) {
	p.Buffer.Reset()
	p.Buffer.WriteString(s)
}
