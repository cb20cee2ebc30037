// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package llm_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// fakeAPI serves a fixed JSON body with the given status and records the
// last request body and the number of requests received.
type fakeAPI struct {
	srv      *httptest.Server
	hits     atomic.Int32
	captured map[string]any
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			f.captured = req
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// message returns messages[i] from the captured request body.
func (f *fakeAPI) message(t *testing.T, i int) map[string]any {
	t.Helper()
	msgs, ok := f.captured["messages"].([]any)
	if !ok || len(msgs) <= i {
		t.Fatalf("request has no messages[%d]: %v", i, f.captured)
	}
	m, ok := msgs[i].(map[string]any)
	if !ok {
		t.Fatalf("messages[%d] is not an object", i)
	}
	return m
}
