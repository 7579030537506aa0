package todo

import (
	"errors"
	"fmt"
	"time"

	domain "github.com/lenilunderman/djangotodowoo/domain/todo"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a todo does not exist or is not owned by the
// caller. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("todo not found")

// Repository provides ownership-scoped access to todo storage. Every query
// filters by owner so one user can never reach another user's items.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new todo repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new todo.
func (r *Repository) Create(todo *domain.Todo) error {
	if err := r.db.Create(todo).Error; err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	return nil
}

// FindByOwner retrieves a todo by ID, scoped to the given owner.
func (r *Repository) FindByOwner(id, ownerID string) (*domain.Todo, error) {
	var todo domain.Todo
	if err := r.db.First(&todo, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return &todo, nil
}

// ListOpen retrieves the owner's todos that are not yet completed, in
// insertion order.
func (r *Repository) ListOpen(ownerID string) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	err := r.db.
		Where("owner_id = ? AND date_completed IS NULL", ownerID).
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open todos: %w", err)
	}
	return todos, nil
}

// ListCompleted retrieves the owner's completed todos, most recently
// completed first.
func (r *Repository) ListCompleted(ownerID string) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	err := r.db.
		Where("owner_id = ? AND date_completed IS NOT NULL", ownerID).
		Order("date_completed DESC").
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list completed todos: %w", err)
	}
	return todos, nil
}

// Update persists title and memo changes to an owned todo. Created and
// DateCompleted are never touched here.
func (r *Repository) Update(todo *domain.Todo) error {
	result := r.db.Model(&domain.Todo{}).
		Where("id = ? AND owner_id = ?", todo.ID, todo.OwnerID).
		Select("title", "memo").
		Updates(map[string]any{"title": todo.Title, "memo": todo.Memo})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Complete stamps an owned todo as completed at the given time.
func (r *Repository) Complete(id, ownerID string, at time.Time) error {
	result := r.db.Model(&domain.Todo{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("date_completed", at)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to complete todo: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete permanently removes an owned todo.
func (r *Repository) Delete(id, ownerID string) error {
	result := r.db.Delete(&domain.Todo{}, "id = ? AND owner_id = ?", id, ownerID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
