package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	Register(Skin{ID: "test-skin", Title: "Test", Hero: "h", Evil: "e", Super: "s"})

	if !Exists("test-skin") {
		t.Fatal("registered skin should exist")
	}
	s, err := Get("test-skin")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if s.Evil != "e" || s.Super != "s" {
		t.Errorf("Get() = %+v", s)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("does-not-exist")
	if !errors.Is(err, ErrUnknownSkin) {
		t.Errorf("Get() error = %v, expected ErrUnknownSkin", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Skin{ID: "dup"})
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Skin{ID: "dup"})
}

func TestListSorted(t *testing.T) {
	Register(Skin{ID: "zz-list"})
	Register(Skin{ID: "aa-list"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
}
