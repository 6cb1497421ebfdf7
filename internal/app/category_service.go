package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/category"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// Compile-time check that CategoryService implements ports.CategoryService.
var _ ports.CategoryService = (*CategoryService)(nil)

// CategoryService implements ports.CategoryService. Name uniqueness is
// pre-checked here with an exact-match existence query so that duplicates
// surface as a clean conflict instead of a raw constraint failure; the
// store's unique index remains as backstop.
type CategoryService struct {
	categories ports.CategoryRepository
	logger     *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(categories ports.CategoryRepository, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		logger:     logger,
	}
}

// ListCategories returns all categories ordered by id ascending.
func (s *CategoryService) ListCategories(ctx context.Context) ([]category.Category, error) {
	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list categories",
			slog.String("operation", "ListCategories"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return cats, nil
}

// GetCategory returns a single category by id.
func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*category.Category, error) {
	if id <= 0 {
		return nil, domain.Validationf("Category id must be a positive number.")
	}

	c, err := s.categories.GetCategory(ctx, id)
	if err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to get category",
				slog.String("operation", "GetCategory"),
				slog.Int64("category_id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	return c, nil
}

// CreateCategory validates the category, rejects duplicate names, and
// creates it.
func (s *CategoryService) CreateCategory(ctx context.Context, c *category.Category) (*category.Category, error) {
	c.Name = strings.TrimSpace(c.Name)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.categories.CategoryNameExists(ctx, c.Name, 0)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check category name",
			slog.String("operation", "CreateCategory"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("Category name %q already exists.", c.Name)
	}

	if err := s.categories.InsertCategory(ctx, c); err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to create category",
				slog.String("operation", "CreateCategory"),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "category created", slog.Int64("category_id", c.ID))
	return c, nil
}

// UpdateCategory replaces an existing category's name and color.
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, c *category.Category) error {
	if id <= 0 {
		return domain.Validationf("Category id must be a positive number.")
	}

	c.ID = id
	c.Name = strings.TrimSpace(c.Name)

	if err := c.Validate(); err != nil {
		return err
	}

	taken, err := s.categories.CategoryNameExists(ctx, c.Name, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check category name",
			slog.String("operation", "UpdateCategory"),
			slog.Int64("category_id", id),
			slog.Any("error", err),
		)
		return err
	}
	if taken {
		return domain.Conflictf("Category name %q already exists.", c.Name)
	}

	if err := s.categories.UpdateCategory(ctx, c); err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to update category",
				slog.String("operation", "UpdateCategory"),
				slog.Int64("category_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.InfoContext(ctx, "category updated", slog.Int64("category_id", id))
	return nil
}

// DeleteCategory deletes a category; items that referenced it become
// uncategorized via the schema's set-null rule.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.Validationf("Category id must be a positive number.")
	}

	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to delete category",
				slog.String("operation", "DeleteCategory"),
				slog.Int64("category_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.InfoContext(ctx, "category deleted", slog.Int64("category_id", id))
	return nil
}
