package usecase

import (
	"errors"
	"testing"

	"todo-backend/internal/task/repository"
)

func TestNormalizeColor(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"ff0000", "#ff0000", false},
		{"#ff0000", "#ff0000", false},
		{"#FF00AA", "#ff00aa", false},
		{"ABCDEF", "#abcdef", false},
		{"#fff", "", true},
		{"red", "", true},
		{"#ff00000", "", true},
		{"gg0000", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizeColor(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("%q: expected ErrInvalidColor, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoryNamesUniquePerUser(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	categoryUc := NewCategoryUsecase(repository.NewCategoryRepository(f.db))

	if _, err := categoryUc.CreateCategory(alice.ID, "Work", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Same name, same user: rejected by the unique index.
	if _, err := categoryUc.CreateCategory(alice.ID, "Work", "dup"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate: expected ErrDuplicateName, got %v", err)
	}

	// Same name, different user: fine.
	if _, err := categoryUc.CreateCategory(bob.ID, "Work", ""); err != nil {
		t.Fatalf("other user: %v", err)
	}
}

func TestTagOwnershipScoping(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	tagUc := NewTagUsecase(f.tags)

	tag, err := tagUc.CreateTag(alice.ID, "urgent", "FF0000")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tag.Color != "#ff0000" {
		t.Errorf("color = %q, want normalized #ff0000", tag.Color)
	}

	// Another user's tag is reported absent.
	if _, err := tagUc.GetTag(bob.ID, tag.ID); !errors.Is(err, ErrTagNotFound) {
		t.Errorf("cross-user get: expected ErrTagNotFound, got %v", err)
	}
	if err := tagUc.DeleteTag(bob.ID, tag.ID); !errors.Is(err, ErrTagNotFound) {
		t.Errorf("cross-user delete: expected ErrTagNotFound, got %v", err)
	}
}
