package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/bucketwiki/common"
)

func TestMemStore_RoundTrip(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	ok, err := s.Exists(ctx, "wiki-content", "page")
	if err != nil || ok {
		t.Fatalf("Exists on empty store = (%v, %v), want (false, nil)", ok, err)
	}

	if _, err := s.Get(ctx, "wiki-content", "page"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Get on empty store: want common.ErrNotFound, got %v", err)
	}

	if err := s.Put(ctx, "wiki-content", "page", []byte("hello")); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	ok, err = s.Exists(ctx, "wiki-content", "page")
	if err != nil || !ok {
		t.Fatalf("Exists after Put = (%v, %v), want (true, nil)", ok, err)
	}

	data, err := s.Get(ctx, "wiki-content", "page")
	if err != nil || string(data) != "hello" {
		t.Fatalf("Get = (%q, %v), want (hello, nil)", data, err)
	}

	// overwrite replaces the whole blob
	if err := s.Put(ctx, "wiki-content", "page", []byte("bye")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	data, _ = s.Get(ctx, "wiki-content", "page")
	if string(data) != "bye" {
		t.Fatalf("Get after overwrite = %q, want bye", data)
	}
}

func TestMemStore_GetReturnsCopy(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if err := s.Put(ctx, "b", "k", []byte("abc")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	data, _ := s.Get(ctx, "b", "k")
	data[0] = 'x'

	again, _ := s.Get(ctx, "b", "k")
	if string(again) != "abc" {
		t.Fatalf("stored blob mutated through returned slice: %q", again)
	}
}

func TestMemStore_List(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	keys, err := s.List(ctx, "wiki-content")
	if err != nil || len(keys) != 0 {
		t.Fatalf("List on empty bucket = (%v, %v), want ([], nil)", keys, err)
	}

	for _, k := range []string{"zebra", "apple", "mango"} {
		if err := s.Put(ctx, "wiki-content", k, []byte("x")); err != nil {
			t.Fatalf("Put error: %v", err)
		}
	}
	// unrelated bucket must not leak in
	_ = s.Put(ctx, "users_profiles", "bob.txt", []byte("y"))

	keys, err = s.List(ctx, "wiki-content")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	want := []string{"apple", "mango", "zebra"}
	if len(keys) != len(want) {
		t.Fatalf("List = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("List = %v, want %v", keys, want)
		}
	}
}
