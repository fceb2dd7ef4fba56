/*
Copyright 2026 File-Compressor Authors
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fcc

import "time"

// Event kinds: the stages this engine's single-pass and block pipelines
// report progress for.
const (
	EventCompressionStart = iota
	EventBlockStart
	EventBlockEnd
	EventCompressionEnd
	EventDecompressionStart
	EventDecompressionEnd
)

// Event is a single progress notification.
type Event struct {
	Type  int
	Block int
	Size  int64
	Hash  uint32
	Msg   string
	Time  time.Time
}

func newEvent(eventType, block int, size int64, hash uint32, msg string) Event {
	return Event{Type: eventType, Block: block, Size: size, Hash: hash, Msg: msg, Time: time.Now()}
}

// Listener receives Events during a Compress or Decompress call. It
// satisfies the GUI collaborator's need for a progress label without
// widening the compress(inPath, outPath)/decompress(inPath, outPath)
// contract: callers that don't want progress reporting simply pass nil.
type Listener interface {
	OnEvent(e Event)
}

func notify(l Listener, eventType, block int, size int64, msg string) {
	notifyHash(l, eventType, block, size, 0, msg)
}

func notifyHash(l Listener, eventType, block int, size int64, hash uint32, msg string) {
	if l == nil {
		return
	}

	l.OnEvent(newEvent(eventType, block, size, hash, msg))
}
