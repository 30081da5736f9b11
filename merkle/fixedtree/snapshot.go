/*
   Copyright 2026 The fmtree Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fixedtree

import (
	"bytes"

	"github.com/hashicorp/go-msgpack/codec"

	"github.com/fmtree/fmtree/log"
)

// Snapshot is the exportable state of a tree: its depth, zero element and
// leaves. Internal layers are recomputed on import, so a snapshot restored
// with the same combiner commits to the same root.
type Snapshot[T any] struct {
	Levels int `json:"levels"`
	Zero   T   `json:"zero"`
	Leaves []T `json:"leaves"`
}

// Snapshot captures the current state of the tree.
func (t *Tree[T]) Snapshot() *Snapshot[T] {
	return &Snapshot[T]{
		Levels: t.levels,
		Zero:   t.zero,
		Leaves: t.Leaves(),
	}
}

// FromSnapshot rebuilds a tree from a snapshot. The combiner is not part of
// the snapshot and must be supplied again by the caller.
func FromSnapshot[T any](s *Snapshot[T], combine CombineFunc[T]) (*Tree[T], error) {
	return New(s.Levels, s.Leaves, combine, s.Zero)
}

// Encode serializes the snapshot with msgpack.
func (s *Snapshot[T]) Encode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := codec.NewEncoder(&buf, &codec.MsgpackHandle{})
	if err := encoder.Encode(s); err != nil {
		log.Infof("Failed to encode tree snapshot: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes a snapshot produced by Encode.
func (s *Snapshot[T]) Decode(msg []byte) error {
	reader := bytes.NewReader(msg)
	decoder := codec.NewDecoder(reader, &codec.MsgpackHandle{})
	if err := decoder.Decode(s); err != nil {
		log.Infof("Failed to decode tree snapshot: %v", err)
		return err
	}
	return nil
}
