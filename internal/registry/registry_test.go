package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
)

func TestNoneIsBuiltIn(t *testing.T) {
	if !Exists("none") {
		t.Fatal("none backend should always be registered")
	}
	b, err := Create("none", Options{})
	if err != nil {
		t.Fatalf("Create(none): %v", err)
	}
	if _, ok := b.(audio.Null); !ok {
		t.Errorf("none backend has type %T", b)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("gramophone", Options{})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestRegisterAndList(t *testing.T) {
	failing := errors.New("no device")
	Register("test-broken", "always fails", func(Options) (audio.Backend, error) {
		return nil, failing
	})

	if _, err := Create("test-broken", Options{}); !errors.Is(err, failing) {
		t.Errorf("factory error should be wrapped, got %v", err)
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatal("List should be sorted by name")
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("none", "again", nil)
}
