// Package memory is the in-memory storage adapter. One Store implements
// every service's repository ports, which keeps tests and local wiring on
// a single source of truth across entities.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	userports "shoppinglist/contexts/identity-access/user-service/ports"
	itemports "shoppinglist/contexts/shopping/item-service/ports"
	listports "shoppinglist/contexts/shopping/list-service/ports"
	"shoppinglist/internal/shared/model"
	"shoppinglist/internal/storage/seed"
)

// Store holds all four collections behind one lock. Intended for tests and
// local development wiring.
type Store struct {
	mu sync.RWMutex

	roles map[string]model.Role
	users map[string]model.User
	lists map[string]model.ShoppingList
	items map[string]model.ShoppingListItem
}

// NewStore builds a store seeded with the two baseline roles.
func NewStore() *Store {
	s := &Store{
		roles: map[string]model.Role{},
		users: map[string]model.User{},
		lists: map[string]model.ShoppingList{},
		items: map[string]model.ShoppingListItem{},
	}
	now := time.Now().UTC()
	for _, name := range []string{model.RoleAdmin, model.RoleUser} {
		role := model.Role{ID: model.NewID(), Name: name, CreatedAt: now, UpdatedAt: now}
		s.roles[role.ID] = role
	}
	return s
}

// Reset replaces the whole dataset with the given fixture.
func (s *Store) Reset(_ context.Context, fixture seed.Fixture) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roles = map[string]model.Role{}
	s.users = map[string]model.User{}
	s.lists = map[string]model.ShoppingList{}
	s.items = map[string]model.ShoppingListItem{}
	for _, role := range fixture.Roles {
		s.roles[role.ID] = role
	}
	for _, user := range fixture.Users {
		s.users[user.ID] = user
	}
	for _, list := range fixture.Lists {
		s.lists[list.ID] = list
	}
	for _, item := range fixture.Items {
		s.items[item.ID] = item
	}
	return nil
}

// --- roles ---

func (s *Store) FindRoleByID(_ context.Context, roleID string) (model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	role, ok := s.roles[roleID]
	if !ok {
		return model.Role{}, model.ErrNotFound
	}
	return role, nil
}

func (s *Store) FindRoleByName(_ context.Context, name string) (model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, role := range s.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return model.Role{}, model.ErrNotFound
}

func (s *Store) ListRoles(_ context.Context) ([]model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	roles := make([]model.Role, 0, len(s.roles))
	for _, role := range s.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

// RoleID resolves a seeded role's id by name. Test helper.
func (s *Store) RoleID(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, role := range s.roles {
		if role.Name == name {
			return role.ID
		}
	}
	return ""
}

// --- users ---

func (s *Store) FindUserByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *Store) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindUserByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (s *Store) UserExists(_ context.Context, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok, nil
}

func (s *Store) InsertUser(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) FindUserByID(_ context.Context, userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return cloneUser(user), nil
}

func (s *Store) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, cloneUser(user))
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

func (s *Store) UpdateUser(_ context.Context, userID string, update userports.UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	if update.FirstName != "" {
		user.FirstName = update.FirstName
	}
	if update.LastName != "" {
		user.LastName = update.LastName
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Password != "" {
		user.Password = update.Password
	}
	if update.RoleID != "" {
		user.RoleID = update.RoleID
	}
	user.UpdatedAt = time.Now().UTC()
	s.users[userID] = user
	return nil
}

func (s *Store) DeleteUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	return nil
}

func (s *Store) FindUsersByIDs(_ context.Context, userIDs []string) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var users []model.User
	for _, id := range userIDs {
		if user, ok := s.users[id]; ok {
			users = append(users, cloneUser(user))
		}
	}
	return users, nil
}

func (s *Store) PushUserShoppingList(_ context.Context, userID string, shoppingListID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	user.ShoppingLists = append(user.ShoppingLists, shoppingListID)
	s.users[userID] = user
	return nil
}

func (s *Store) PullUserShoppingList(_ context.Context, userID string, shoppingListID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil
	}
	user.ShoppingLists = model.RemoveID(user.ShoppingLists, shoppingListID)
	s.users[userID] = user
	return nil
}

// --- shopping lists ---

func (s *Store) ShoppingListExistsByName(_ context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, list := range s.lists {
		if list.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ShoppingListExists(_ context.Context, shoppingListID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.lists[shoppingListID]
	return ok, nil
}

func (s *Store) InsertShoppingList(_ context.Context, list model.ShoppingList) (model.ShoppingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[list.ID] = list
	return list, nil
}

func (s *Store) FindShoppingListByID(_ context.Context, shoppingListID string) (model.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.lists[shoppingListID]
	if !ok {
		return model.ShoppingList{}, model.ErrNotFound
	}
	return cloneList(list), nil
}

func (s *Store) ListShoppingLists(_ context.Context) ([]model.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lists := make([]model.ShoppingList, 0, len(s.lists))
	for _, list := range s.lists {
		lists = append(lists, cloneList(list))
	}
	sortLists(lists)
	return lists, nil
}

func (s *Store) ListShoppingListsByOwner(_ context.Context, userID string) ([]model.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var lists []model.ShoppingList
	for _, list := range s.lists {
		if list.UserID == userID {
			lists = append(lists, cloneList(list))
		}
	}
	sortLists(lists)
	return lists, nil
}

func (s *Store) FindShoppingListsByOwner(ctx context.Context, userID string) ([]model.ShoppingList, error) {
	return s.ListShoppingListsByOwner(ctx, userID)
}

func (s *Store) FindShoppingListsByIDs(_ context.Context, listIDs []string) ([]model.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var lists []model.ShoppingList
	for _, id := range listIDs {
		if list, ok := s.lists[id]; ok {
			lists = append(lists, cloneList(list))
		}
	}
	return lists, nil
}

func (s *Store) UpdateShoppingList(_ context.Context, shoppingListID string, update listports.ListUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[shoppingListID]
	if !ok {
		return model.ErrNotFound
	}
	if update.Name != "" {
		list.Name = update.Name
	}
	if update.AllowedUsers != nil {
		list.AllowedUsers = append([]string(nil), update.AllowedUsers...)
	}
	list.UpdatedAt = time.Now().UTC()
	s.lists[shoppingListID] = list
	return nil
}

func (s *Store) DeleteShoppingList(_ context.Context, shoppingListID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, shoppingListID)
	return nil
}

func (s *Store) PushAllowedUser(_ context.Context, shoppingListID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[shoppingListID]
	if !ok {
		return model.ErrNotFound
	}
	list.AllowedUsers = append(list.AllowedUsers, userID)
	s.lists[shoppingListID] = list
	return nil
}

func (s *Store) PullAllowedUser(_ context.Context, shoppingListID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[shoppingListID]
	if !ok {
		return nil
	}
	list.AllowedUsers = model.RemoveID(list.AllowedUsers, userID)
	s.lists[shoppingListID] = list
	return nil
}

func (s *Store) PushShoppingListItems(_ context.Context, shoppingListID string, itemIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[shoppingListID]
	if !ok {
		return model.ErrNotFound
	}
	list.ShoppingListItems = append(list.ShoppingListItems, itemIDs...)
	s.lists[shoppingListID] = list
	return nil
}

func (s *Store) PullShoppingListItem(_ context.Context, shoppingListID string, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[shoppingListID]
	if !ok {
		return nil
	}
	list.ShoppingListItems = model.RemoveID(list.ShoppingListItems, itemID)
	s.lists[shoppingListID] = list
	return nil
}

// --- shopping list items ---

func (s *Store) InsertShoppingListItems(_ context.Context, items []model.ShoppingListItem) ([]model.ShoppingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.items[item.ID] = item
	}
	return items, nil
}

func (s *Store) FindShoppingListItemsByList(_ context.Context, shoppingListID string) ([]model.ShoppingListItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []model.ShoppingListItem
	for _, item := range s.items {
		if item.ShoppingListID == shoppingListID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) FindShoppingListItem(_ context.Context, shoppingListID string, itemID string) (model.ShoppingListItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[itemID]
	if !ok || item.ShoppingListID != shoppingListID {
		return model.ShoppingListItem{}, model.ErrNotFound
	}
	return item, nil
}

func (s *Store) FindShoppingListItemsByIDs(_ context.Context, itemIDs []string) ([]model.ShoppingListItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []model.ShoppingListItem
	for _, id := range itemIDs {
		if item, ok := s.items[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Store) UpdateShoppingListItem(_ context.Context, shoppingListID string, itemID string, update itemports.ItemUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	if !ok || item.ShoppingListID != shoppingListID {
		return model.ErrNotFound
	}
	if update.Name != "" {
		item.Name = update.Name
	}
	if update.Status != nil {
		item.Status = *update.Status
	}
	item.UpdatedAt = time.Now().UTC()
	s.items[itemID] = item
	return nil
}

func (s *Store) DeleteShoppingListItems(_ context.Context, itemIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range itemIDs {
		delete(s.items, id)
	}
	return nil
}

// CountItems reports the number of stored items. Test helper.
func (s *Store) CountItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func sortLists(lists []model.ShoppingList) {
	sort.Slice(lists, func(i, j int) bool {
		if lists[i].Name != lists[j].Name {
			return lists[i].Name < lists[j].Name
		}
		return lists[i].ID < lists[j].ID
	})
}

func cloneUser(user model.User) model.User {
	user.ShoppingLists = append([]string(nil), user.ShoppingLists...)
	return user
}

func cloneList(list model.ShoppingList) model.ShoppingList {
	list.ShoppingListItems = append([]string(nil), list.ShoppingListItems...)
	list.AllowedUsers = append([]string(nil), list.AllowedUsers...)
	return list
}
