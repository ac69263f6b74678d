// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package foundation

import "sync"

// Session holds the currently loaded foundation for one user session.
// Each fetch obtains a monotonically increasing token from Begin; Complete
// only installs a result that still carries the newest token, so an
// out-of-order completion can never overwrite a newer fetch.
type Session struct {
	mu      sync.Mutex
	seq     uint64
	current *Foundation
}

// Begin registers a new fetch and returns its token. Any fetch holding an
// older token is superseded from this point on.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++

	return s.seq
}

// Complete installs the foundation built by the fetch holding token. It
// reports false, leaving the session untouched, when a newer fetch has
// begun since token was issued.
func (s *Session) Complete(token uint64, f *Foundation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token < s.seq {
		return false
	}

	s.current = f

	return true
}

// Current returns the installed foundation, or nil when no fetch has
// completed yet.
func (s *Session) Current() *Foundation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}
