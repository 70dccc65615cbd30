// Package mongo is the document-store adapter. It mirrors the memory
// adapter's port surface over the role, user, shoppingList and
// shoppingListItem collections.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	userports "shoppinglist/contexts/identity-access/user-service/ports"
	itemports "shoppinglist/contexts/shopping/item-service/ports"
	listports "shoppinglist/contexts/shopping/list-service/ports"
	"shoppinglist/internal/shared/model"
	"shoppinglist/internal/storage/seed"
)

const (
	rolesCollection = "role"
	usersCollection = "user"
	listsCollection = "shoppingList"
	itemsCollection = "shoppingListItem"
)

// Store implements every service repository port over one database handle.
type Store struct {
	roles *mongo.Collection
	users *mongo.Collection
	lists *mongo.Collection
	items *mongo.Collection
}

func NewStore(database *mongo.Database) *Store {
	return &Store{
		roles: database.Collection(rolesCollection),
		users: database.Collection(usersCollection),
		lists: database.Collection(listsCollection),
		items: database.Collection(itemsCollection),
	}
}

// EnsureBaseline inserts the admin and user roles when the role collection
// is empty. Safe to call on every boot.
func (s *Store) EnsureBaseline(ctx context.Context) error {
	count, err := s.roles.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if count > 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := []any{
		model.Role{ID: model.NewID(), Name: model.RoleAdmin, CreatedAt: now, UpdatedAt: now},
		model.Role{ID: model.NewID(), Name: model.RoleUser, CreatedAt: now, UpdatedAt: now},
	}
	if _, err := s.roles.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert baseline roles: %w", err)
	}
	return nil
}

// Reset drops all four collections and loads the fixture. Used by the
// seeder and the /api/dummy endpoint.
func (s *Store) Reset(ctx context.Context, fixture seed.Fixture) error {
	for _, coll := range []*mongo.Collection{s.roles, s.users, s.lists, s.items} {
		if err := coll.Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", coll.Name(), err)
		}
	}
	if err := insertAll(ctx, s.roles, fixture.Roles); err != nil {
		return err
	}
	if err := insertAll(ctx, s.users, fixture.Users); err != nil {
		return err
	}
	if err := insertAll(ctx, s.lists, fixture.Lists); err != nil {
		return err
	}
	return insertAll(ctx, s.items, fixture.Items)
}

func insertAll[T any](ctx context.Context, coll *mongo.Collection, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	payload := make([]any, 0, len(docs))
	for _, doc := range docs {
		payload = append(payload, doc)
	}
	if _, err := coll.InsertMany(ctx, payload); err != nil {
		return fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.ErrNotFound
	}
	return err
}

// --- roles ---

func (s *Store) FindRoleByID(ctx context.Context, roleID string) (model.Role, error) {
	var role model.Role
	err := s.roles.FindOne(ctx, bson.M{"_id": roleID}).Decode(&role)
	return role, translate(err)
}

func (s *Store) FindRoleByName(ctx context.Context, name string) (model.Role, error) {
	var role model.Role
	err := s.roles.FindOne(ctx, bson.M{"name": name}).Decode(&role)
	return role, translate(err)
}

func (s *Store) ListRoles(ctx context.Context) ([]model.Role, error) {
	cursor, err := s.roles.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var roles []model.Role
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// --- users ---

func (s *Store) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, translate(err)
}

func (s *Store) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	return count > 0, err
}

func (s *Store) UserExists(ctx context.Context, userID string) (bool, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"_id": userID})
	return count > 0, err
}

func (s *Store) InsertUser(ctx context.Context, user model.User) (model.User, error) {
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) FindUserByID(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	return user, translate(err)
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) UpdateUser(ctx context.Context, userID string, update userports.UserUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.FirstName != "" {
		set["firstName"] = update.FirstName
	}
	if update.LastName != "" {
		set["lastName"] = update.LastName
	}
	if update.Email != "" {
		set["email"] = update.Email
	}
	if update.Password != "" {
		set["password"] = update.Password
	}
	if update.RoleID != "" {
		set["roleId"] = update.RoleID
	}
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	_, err := s.users.DeleteOne(ctx, bson.M{"_id": userID})
	return err
}

func (s *Store) FindUsersByIDs(ctx context.Context, userIDs []string) ([]model.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) PushUserShoppingList(ctx context.Context, userID string, shoppingListID string) error {
	result, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"shoppingLists": shoppingListID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) PullUserShoppingList(ctx context.Context, userID string, shoppingListID string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"shoppingLists": shoppingListID}})
	return err
}

// --- shopping lists ---

func (s *Store) ShoppingListExistsByName(ctx context.Context, name string) (bool, error) {
	count, err := s.lists.CountDocuments(ctx, bson.M{"name": name})
	return count > 0, err
}

func (s *Store) ShoppingListExists(ctx context.Context, shoppingListID string) (bool, error) {
	count, err := s.lists.CountDocuments(ctx, bson.M{"_id": shoppingListID})
	return count > 0, err
}

func (s *Store) InsertShoppingList(ctx context.Context, list model.ShoppingList) (model.ShoppingList, error) {
	if _, err := s.lists.InsertOne(ctx, list); err != nil {
		return model.ShoppingList{}, err
	}
	return list, nil
}

func (s *Store) FindShoppingListByID(ctx context.Context, shoppingListID string) (model.ShoppingList, error) {
	var list model.ShoppingList
	err := s.lists.FindOne(ctx, bson.M{"_id": shoppingListID}).Decode(&list)
	return list, translate(err)
}

func (s *Store) ListShoppingLists(ctx context.Context) ([]model.ShoppingList, error) {
	return s.findLists(ctx, bson.M{})
}

func (s *Store) ListShoppingListsByOwner(ctx context.Context, userID string) ([]model.ShoppingList, error) {
	return s.findLists(ctx, bson.M{"userId": userID})
}

func (s *Store) FindShoppingListsByOwner(ctx context.Context, userID string) ([]model.ShoppingList, error) {
	return s.findLists(ctx, bson.M{"userId": userID})
}

func (s *Store) FindShoppingListsByIDs(ctx context.Context, listIDs []string) ([]model.ShoppingList, error) {
	if len(listIDs) == 0 {
		return nil, nil
	}
	return s.findLists(ctx, bson.M{"_id": bson.M{"$in": listIDs}})
}

func (s *Store) findLists(ctx context.Context, filter bson.M) ([]model.ShoppingList, error) {
	cursor, err := s.lists.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var lists []model.ShoppingList
	if err := cursor.All(ctx, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (s *Store) UpdateShoppingList(ctx context.Context, shoppingListID string, update listports.ListUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.AllowedUsers != nil {
		set["allowedUsers"] = update.AllowedUsers
	}
	result, err := s.lists.UpdateOne(ctx, bson.M{"_id": shoppingListID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteShoppingList(ctx context.Context, shoppingListID string) error {
	_, err := s.lists.DeleteOne(ctx, bson.M{"_id": shoppingListID})
	return err
}

func (s *Store) PushAllowedUser(ctx context.Context, shoppingListID string, userID string) error {
	result, err := s.lists.UpdateOne(ctx,
		bson.M{"_id": shoppingListID},
		bson.M{"$push": bson.M{"allowedUsers": userID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) PullAllowedUser(ctx context.Context, shoppingListID string, userID string) error {
	_, err := s.lists.UpdateOne(ctx,
		bson.M{"_id": shoppingListID},
		bson.M{"$pull": bson.M{"allowedUsers": userID}})
	return err
}

func (s *Store) PushShoppingListItems(ctx context.Context, shoppingListID string, itemIDs []string) error {
	result, err := s.lists.UpdateOne(ctx,
		bson.M{"_id": shoppingListID},
		bson.M{"$push": bson.M{"shoppingListItems": bson.M{"$each": itemIDs}}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) PullShoppingListItem(ctx context.Context, shoppingListID string, itemID string) error {
	_, err := s.lists.UpdateOne(ctx,
		bson.M{"_id": shoppingListID},
		bson.M{"$pull": bson.M{"shoppingListItems": itemID}})
	return err
}

// --- shopping list items ---

func (s *Store) InsertShoppingListItems(ctx context.Context, items []model.ShoppingListItem) ([]model.ShoppingListItem, error) {
	if err := insertAll(ctx, s.items, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) FindShoppingListItemsByList(ctx context.Context, shoppingListID string) ([]model.ShoppingListItem, error) {
	return s.findItems(ctx, bson.M{"shoppingListId": shoppingListID})
}

func (s *Store) FindShoppingListItem(ctx context.Context, shoppingListID string, itemID string) (model.ShoppingListItem, error) {
	var item model.ShoppingListItem
	err := s.items.FindOne(ctx, bson.M{"_id": itemID, "shoppingListId": shoppingListID}).Decode(&item)
	return item, translate(err)
}

func (s *Store) FindShoppingListItemsByIDs(ctx context.Context, itemIDs []string) ([]model.ShoppingListItem, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	return s.findItems(ctx, bson.M{"_id": bson.M{"$in": itemIDs}})
}

func (s *Store) findItems(ctx context.Context, filter bson.M) ([]model.ShoppingListItem, error) {
	cursor, err := s.items.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var items []model.ShoppingListItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateShoppingListItem(ctx context.Context, shoppingListID string, itemID string, update itemports.ItemUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	result, err := s.items.UpdateOne(ctx,
		bson.M{"_id": itemID, "shoppingListId": shoppingListID},
		bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteShoppingListItems(ctx context.Context, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	_, err := s.items.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": itemIDs}})
	return err
}
