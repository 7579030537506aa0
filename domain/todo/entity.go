package todo

import (
	"time"
)

// Todo represents a single to-do item owned by exactly one user.
// Created is written once at insert and never updated. A nil DateCompleted
// means the item is still open.
type Todo struct {
	ID            string     `gorm:"primarykey;size:36" json:"id"`
	Title         string     `gorm:"size:100;not null" json:"title"`
	Memo          string     `gorm:"type:text" json:"memo"`
	Created       time.Time  `gorm:"<-:create" json:"created"`
	DateCompleted *time.Time `gorm:"index" json:"date_completed,omitempty"`
	OwnerID       string     `gorm:"size:36;not null;index" json:"owner_id"`
}

// TableName returns the table name for the Todo entity.
func (Todo) TableName() string {
	return "todos"
}

// Completed reports whether the item has been marked done.
func (t *Todo) Completed() bool {
	return t.DateCompleted != nil
}
