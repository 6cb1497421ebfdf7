package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/category"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	t.Parallel()

	t.Run("creates with trimmed name", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		svc := NewCategoryService(store, discardLogger())

		created, err := svc.CreateCategory(context.Background(), &category.Category{
			Name:     "  Errands  ",
			ColorHex: strPtr("#AABBCC"),
		})
		if err != nil {
			t.Fatalf("CreateCategory() error = %v", err)
		}
		if created.Name != "Errands" {
			t.Errorf("Name = %q, want %q", created.Name, "Errands")
		}
		if created.ID == 0 {
			t.Error("ID = 0, want assigned")
		}
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		svc := NewCategoryService(store, discardLogger())
		seedCategory(t, store, "Errands")

		_, err := svc.CreateCategory(context.Background(), &category.Category{Name: "Errands"})
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("CreateCategory() error = %v, want ErrConflict", err)
		}
		if got, want := err.Error(), `Category name "Errands" already exists.`; got != want {
			t.Errorf("error = %q, want %q", got, want)
		}
	})

	t.Run("bad color fails validation", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		svc := NewCategoryService(store, discardLogger())

		_, err := svc.CreateCategory(context.Background(), &category.Category{
			Name:     "Errands",
			ColorHex: strPtr("red"),
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("CreateCategory() error = %v, want ErrValidation", err)
		}
	})
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	t.Parallel()

	t.Run("keeping own name is not a conflict", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		svc := NewCategoryService(store, discardLogger())
		id := seedCategory(t, store, "Errands")

		err := svc.UpdateCategory(context.Background(), id, &category.Category{
			Name:     "Errands",
			ColorHex: strPtr("#001122"),
		})
		if err != nil {
			t.Fatalf("UpdateCategory() error = %v", err)
		}

		got, err := svc.GetCategory(context.Background(), id)
		if err != nil {
			t.Fatalf("GetCategory() error = %v", err)
		}
		if got.ColorHex == nil || *got.ColorHex != "#001122" {
			t.Errorf("ColorHex = %v, want #001122", got.ColorHex)
		}
	})

	t.Run("taking another category's name is a conflict", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		svc := NewCategoryService(store, discardLogger())
		seedCategory(t, store, "Errands")
		id := seedCategory(t, store, "Chores")

		err := svc.UpdateCategory(context.Background(), id, &category.Category{Name: "Errands"})
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("UpdateCategory() error = %v, want ErrConflict", err)
		}
	})

	t.Run("missing category is not found", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		svc := NewCategoryService(store, discardLogger())

		err := svc.UpdateCategory(context.Background(), 12, &category.Category{Name: "Errands"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("UpdateCategory() error = %v, want ErrNotFound", err)
		}
		if got, want := err.Error(), "Category 12 not found."; got != want {
			t.Errorf("error = %q, want %q", got, want)
		}
	})
}

func TestCategoryService_GetCategory(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	svc := NewCategoryService(store, discardLogger())

	_, err := svc.GetCategory(context.Background(), 5)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetCategory() error = %v, want ErrNotFound", err)
	}
	if got, want := err.Error(), "Category 5 not found."; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	svc := NewCategoryService(store, discardLogger())
	id := seedCategory(t, store, "Errands")

	if err := svc.DeleteCategory(context.Background(), id); err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}
	if err := svc.DeleteCategory(context.Background(), id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second DeleteCategory() error = %v, want ErrNotFound", err)
	}
}
