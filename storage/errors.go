// Copyright 2026 Tutoris Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import "errors"

var (
	// ErrPersistFailed indicates that a chunk unit could not be written.
	ErrPersistFailed = errors.New("chunk persist failed")

	// ErrSinkClosed indicates that the sink is closed.
	ErrSinkClosed = errors.New("chunk sink is closed")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrNotFound indicates that the requested chunk unit was not found.
	ErrNotFound = errors.New("chunk not found")
)
