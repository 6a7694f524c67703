/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spreadsheet-tools/lookup-automator/internal/lookup"
	"github.com/spreadsheet-tools/lookup-automator/internal/table"
)

// Session holds one user's uploaded table pair between the upload, merge and
// download steps. Sessions are independent; no merge state is shared across
// them.
type Session struct {
	ID         string
	Base       *table.Table
	Lookup     *table.Table
	BaseName   string
	LookupName string

	mu      sync.Mutex
	result  *lookup.Result
	created time.Time
}

// SetResult stores the latest merge outcome, replacing any earlier run.
func (s *Session) SetResult(r *lookup.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = r
}

// Result returns the latest merge outcome, or nil when no merge has run.
func (s *Session) Result() *lookup.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// SessionStore is the in-memory session map. Expired sessions are swept on
// create and rejected on access.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

func (st *SessionStore) Create(base, lkp *table.Table, baseName, lookupName string) *Session {
	sess := &Session{
		ID:         uuid.NewString(),
		Base:       base,
		Lookup:     lkp,
		BaseName:   baseName,
		LookupName: lookupName,
		created:    time.Now(),
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.purgeExpiredLocked()
	st.sessions[sess.ID] = sess
	return sess
}

func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if st.expired(sess) {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil, false
	}
	return sess, true
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *SessionStore) expired(sess *Session) bool {
	return st.ttl > 0 && time.Since(sess.created) > st.ttl
}

func (st *SessionStore) purgeExpiredLocked() {
	for id, sess := range st.sessions {
		if st.expired(sess) {
			delete(st.sessions, id)
		}
	}
}
