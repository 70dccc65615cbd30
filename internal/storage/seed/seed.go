// Package seed provides the dummy fixture the development seeder loads:
// the two baseline roles, three users (one admin), three lists, and a
// handful of items wired together the same way the source project's
// dummy data was.
package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"shoppinglist/internal/shared/model"
)

// Fixture is a full dataset a store can be reset to.
type Fixture struct {
	Roles []model.Role
	Users []model.User
	Lists []model.ShoppingList
	Items []model.ShoppingListItem
}

const (
	AdminEmail     = "admin@gmail.com"
	AdminPassword  = "adminPassword"
	SimpleEmail    = "simple@gmail.com"
	SimplePassword = "simplePassword"
	OtherEmail     = "other@gmail.com"
	OtherPassword  = "otherPassword"
)

// Dummy builds the fixture. Ids are minted per call; passwords are hashed
// here so login works against seeded users.
func Dummy() Fixture {
	now := time.Now().UTC()

	adminRole := model.Role{ID: model.NewID(), Name: model.RoleAdmin, CreatedAt: now, UpdatedAt: now}
	userRole := model.Role{ID: model.NewID(), Name: model.RoleUser, CreatedAt: now, UpdatedAt: now}

	admin := model.User{
		ID:        model.NewID(),
		FirstName: "Admin",
		LastName:  "Dummy",
		Email:     AdminEmail,
		Password:  mustHash(AdminPassword),
		RoleID:    adminRole.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	simple := model.User{
		ID:        model.NewID(),
		FirstName: "Simple",
		LastName:  "Dummy",
		Email:     SimpleEmail,
		Password:  mustHash(SimplePassword),
		RoleID:    userRole.ID,
		CreatedAt: now.Add(time.Millisecond),
		UpdatedAt: now.Add(time.Millisecond),
	}
	other := model.User{
		ID:        model.NewID(),
		FirstName: "Other",
		LastName:  "Dummy",
		Email:     OtherEmail,
		Password:  mustHash(OtherPassword),
		RoleID:    userRole.ID,
		CreatedAt: now.Add(2 * time.Millisecond),
		UpdatedAt: now.Add(2 * time.Millisecond),
	}

	list01 := model.ShoppingList{ID: model.NewID(), Name: "test01", UserID: admin.ID, CreatedAt: now, UpdatedAt: now}
	list02 := model.ShoppingList{ID: model.NewID(), Name: "test02", UserID: admin.ID, CreatedAt: now, UpdatedAt: now}
	list03 := model.ShoppingList{ID: model.NewID(), Name: "test03", UserID: simple.ID, CreatedAt: now, UpdatedAt: now}

	items := []model.ShoppingListItem{
		{ID: model.NewID(), Name: "test01 - 01", Status: false, ShoppingListID: list01.ID, CreatedAt: now, UpdatedAt: now},
		{ID: model.NewID(), Name: "test01 - 02", Status: false, ShoppingListID: list01.ID, CreatedAt: now, UpdatedAt: now},
		{ID: model.NewID(), Name: "test01 - 03", Status: true, ShoppingListID: list01.ID, CreatedAt: now, UpdatedAt: now},
		{ID: model.NewID(), Name: "test02 - 01", Status: false, ShoppingListID: list02.ID, CreatedAt: now, UpdatedAt: now},
		{ID: model.NewID(), Name: "test03 - 01", Status: false, ShoppingListID: list03.ID, CreatedAt: now, UpdatedAt: now},
	}

	list01.ShoppingListItems = []string{items[0].ID, items[1].ID, items[2].ID}
	list01.AllowedUsers = []string{simple.ID, other.ID}
	list02.ShoppingListItems = []string{items[3].ID}
	list03.ShoppingListItems = []string{items[4].ID}

	admin.ShoppingLists = []string{list01.ID, list02.ID}
	simple.ShoppingLists = []string{list03.ID, list01.ID}

	return Fixture{
		Roles: []model.Role{adminRole, userRole},
		Users: []model.User{admin, simple, other},
		Lists: []model.ShoppingList{list01, list02, list03},
		Items: items,
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
