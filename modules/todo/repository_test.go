package todo

import (
	"errors"
	"testing"
	"time"

	domain "github.com/lenilunderman/djangotodowoo/domain/todo"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Todo{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestTodo(ownerID, title string) *domain.Todo {
	return &domain.Todo{
		ID:      uuid.New().String(),
		Title:   title,
		Created: time.Now(),
		OwnerID: ownerID,
	}
}

func TestRepository_CreateAndFindByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	todo := newTestTodo("owner-a", "Buy milk")
	todo.Memo = "two liters"
	if err := repo.Create(todo); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByOwner(todo.ID, "owner-a")
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}
	if found.Title != "Buy milk" || found.Memo != "two liters" {
		t.Errorf("FindByOwner() = %q/%q, want %q/%q", found.Title, found.Memo, "Buy milk", "two liters")
	}
	if found.DateCompleted != nil {
		t.Error("new todo should not be completed")
	}
}

func TestRepository_OwnershipIsolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	todo := newTestTodo("owner-a", "private item")
	if err := repo.Create(todo); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Another user must get not-found for every operation on A's todo
	if _, err := repo.FindByOwner(todo.ID, "owner-b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByOwner() as other owner error = %v, want ErrNotFound", err)
	}

	other := *todo
	other.OwnerID = "owner-b"
	other.Title = "hijacked"
	if err := repo.Update(&other); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() as other owner error = %v, want ErrNotFound", err)
	}

	if err := repo.Complete(todo.ID, "owner-b", time.Now()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Complete() as other owner error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(todo.ID, "owner-b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() as other owner error = %v, want ErrNotFound", err)
	}

	// A's todo is untouched
	found, err := repo.FindByOwner(todo.ID, "owner-a")
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}
	if found.Title != "private item" || found.DateCompleted != nil {
		t.Error("todo was modified by another owner")
	}
}

func TestRepository_ListOpenAndCompleted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	open := newTestTodo("owner-a", "still open")
	done := newTestTodo("owner-a", "already done")
	foreign := newTestTodo("owner-b", "not yours")
	for _, todo := range []*domain.Todo{open, done, foreign} {
		if err := repo.Create(todo); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if err := repo.Complete(done.ID, "owner-a", time.Now()); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	openList, err := repo.ListOpen("owner-a")
	if err != nil {
		t.Fatalf("ListOpen() error = %v", err)
	}
	if len(openList) != 1 || openList[0].ID != open.ID {
		t.Errorf("ListOpen() = %d items, want exactly the open todo", len(openList))
	}

	completedList, err := repo.ListCompleted("owner-a")
	if err != nil {
		t.Fatalf("ListCompleted() error = %v", err)
	}
	if len(completedList) != 1 || completedList[0].ID != done.ID {
		t.Errorf("ListCompleted() = %d items, want exactly the completed todo", len(completedList))
	}
}

func TestRepository_ListCompletedOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	base := time.Now().Add(-time.Hour)
	ids := make([]string, 3)
	for i := 0; i < 3; i++ {
		todo := newTestTodo("owner-a", "item")
		if err := repo.Create(todo); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		// Completed at t1 < t2 < t3
		if err := repo.Complete(todo.ID, "owner-a", base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("Complete() error = %v", err)
		}
		ids[i] = todo.ID
	}

	list, err := repo.ListCompleted("owner-a")
	if err != nil {
		t.Fatalf("ListCompleted() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("ListCompleted() = %d items, want 3", len(list))
	}

	// Most recently completed first: [t3, t2, t1]
	want := []string{ids[2], ids[1], ids[0]}
	for i, todo := range list {
		if todo.ID != want[i] {
			t.Errorf("ListCompleted()[%d] = %s, want %s", i, todo.ID, want[i])
		}
	}
}

func TestRepository_Complete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	todo := newTestTodo("owner-a", "finish this")
	if err := repo.Create(todo); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	at := time.Now()
	if err := repo.Complete(todo.ID, "owner-a", at); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	found, err := repo.FindByOwner(todo.ID, "owner-a")
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}
	if found.DateCompleted == nil {
		t.Fatal("DateCompleted not set after Complete()")
	}
	if found.DateCompleted.Before(found.Created) {
		t.Error("DateCompleted is before Created")
	}

	if err := repo.Complete("missing-id", "owner-a", at); !errors.Is(err, ErrNotFound) {
		t.Errorf("Complete() missing todo error = %v, want ErrNotFound", err)
	}
}

func TestRepository_UpdateKeepsCreatedAndCompletion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	todo := newTestTodo("owner-a", "original")
	if err := repo.Create(todo); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	before, err := repo.FindByOwner(todo.ID, "owner-a")
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}

	todo.Title = "edited"
	todo.Memo = "with memo"
	if err := repo.Update(todo); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	after, err := repo.FindByOwner(todo.ID, "owner-a")
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}
	if after.Title != "edited" || after.Memo != "with memo" {
		t.Errorf("Update() persisted %q/%q, want %q/%q", after.Title, after.Memo, "edited", "with memo")
	}
	if !after.Created.Equal(before.Created) {
		t.Error("Update() mutated the Created timestamp")
	}
	if after.DateCompleted != nil {
		t.Error("Update() set DateCompleted")
	}
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	todo := newTestTodo("owner-a", "short lived")
	if err := repo.Create(todo); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(todo.ID, "owner-a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Gone from lookups and both lists, permanently
	if _, err := repo.FindByOwner(todo.ID, "owner-a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByOwner() after delete error = %v, want ErrNotFound", err)
	}

	var count int64
	db.Model(&domain.Todo{}).Count(&count)
	if count != 0 {
		t.Errorf("row count after delete = %d, want 0", count)
	}

	if err := repo.Delete(todo.ID, "owner-a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
