// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package biski64

import (
	"encoding/binary"
	"errors"
)

// The binary encoding of a Source is the 8-byte prefix "biski64:"
// followed by the three state words in big-endian order.
const (
	marshalPrefix = "biski64:"
	marshalLen    = 32
)

var errUnmarshal = errors.New("invalid biski64 encoding")

// MarshalBinary implements the encoding.BinaryMarshaler interface.
// The encoding captures the complete generator state, so a Source
// restored from it continues the same output sequence.
func (s *Source) MarshalBinary() ([]byte, error) {
	b := make([]byte, marshalLen)
	copy(b, marshalPrefix)
	binary.BigEndian.PutUint64(b[8:], s.fastLoop)
	binary.BigEndian.PutUint64(b[16:], s.mix)
	binary.BigEndian.PutUint64(b[24:], s.loopMix)
	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (s *Source) UnmarshalBinary(data []byte) error {
	if len(data) != marshalLen || string(data[:len(marshalPrefix)]) != marshalPrefix {
		return errUnmarshal
	}
	s.fastLoop = binary.BigEndian.Uint64(data[8:])
	s.mix = binary.BigEndian.Uint64(data[16:])
	s.loopMix = binary.BigEndian.Uint64(data[24:])
	return nil
}
