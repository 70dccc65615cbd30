// Package model holds the canonical persisted entities shared by every
// bounded context. The store is a document database: references between
// entities are plain id fields and id arrays, not enforced foreign keys.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Role is a seeded, immutable permission level referenced by User.RoleID.
type Role struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type User struct {
	ID        string    `bson:"_id" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	RoleID    string    `bson:"roleId" json:"roleId,omitempty"`
	// ShoppingLists holds ids of lists the user owns or was granted access
	// to. The source system never deduplicated it; neither do we.
	ShoppingLists []string  `bson:"shoppingLists" json:"shoppingLists,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ShoppingList struct {
	ID                string    `bson:"_id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	UserID            string    `bson:"userId" json:"userId"`
	ShoppingListItems []string  `bson:"shoppingListItems" json:"shoppingListItems"`
	AllowedUsers      []string  `bson:"allowedUsers" json:"allowedUsers"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ShoppingListItem struct {
	ID             string    `bson:"_id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Status         bool      `bson:"status" json:"status"`
	ShoppingListID string    `bson:"shoppingListId" json:"shoppingListId"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewID mints a document id. Both storage adapters use it so entities keep
// the same id shape regardless of the backing store.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether value is a well-formed document id. Transport
// layers reject malformed path and body ids before any lookup runs.
func IsValidID(value string) bool {
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

// HasID reports membership of id in an id array.
func HasID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// RemoveID returns ids without id, preserving order. Removing an absent id
// is a no-op, matching the store's $pull semantics.
func RemoveID(ids []string, id string) []string {
	out := ids[:0:0]
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
