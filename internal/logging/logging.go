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

// Package logging provides the zap-backed progress Listener the CLI
// wires in by default: structured logging in place of the engine's
// underlying library's plain fmt.Printf calls.
package logging

import (
	"go.uber.org/zap"

	fcc "github.com/rata5/File-Compressor"
)

// ZapListener adapts fcc.Listener to a zap.Logger.
type ZapListener struct {
	log *zap.Logger
}

// NewZapListener creates a listener backed by a production zap
// configuration.
func NewZapListener() (*ZapListener, error) {
	log, err := zap.NewProduction()

	if err != nil {
		return nil, err
	}

	return &ZapListener{log: log}, nil
}

// OnEvent logs one progress event at info level.
func (z *ZapListener) OnEvent(e fcc.Event) {
	z.log.Info(e.Msg,
		zap.Int("eventType", e.Type),
		zap.Int("block", e.Block),
		zap.Int64("size", e.Size),
		zap.Time("time", e.Time),
	)
}

// Sync flushes any buffered log entries; callers should defer it.
func (z *ZapListener) Sync() error {
	return z.log.Sync()
}
