package mcexecutor

import (
	"testing"

	"admin-dashboard-backend/lib/envelope"
	authutils "admin-dashboard-backend/lib/utils/auth-utils"
	"admin-dashboard-backend/models"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeProductStore struct {
	byID    map[string]*dbmodels.Product
	byCode  map[string]*dbmodels.Product
	creates int
	updates []map[string]interface{}
	deletes []string
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{
		byID:   map[string]*dbmodels.Product{},
		byCode: map[string]*dbmodels.Product{},
	}
}

func (s *fakeProductStore) Create(rec dbmodels.Product) (string, error) {
	s.creates++
	rec.ID = rec.Code
	s.byID[rec.ID] = &rec
	s.byCode[rec.SpaceID+"/"+rec.Code] = &rec
	return rec.ID, nil
}

func (s *fakeProductStore) Update(spaceID, id string, updMap map[string]interface{}) error {
	s.updates = append(s.updates, updMap)
	return nil
}

func (s *fakeProductStore) Delete(spaceID, id string) error {
	s.deletes = append(s.deletes, id)
	delete(s.byID, id)
	return nil
}

func (s *fakeProductStore) GetByID(spaceID, id string) (*dbmodels.Product, error) {
	rec, ok := s.byID[id]
	if !ok || rec.SpaceID != spaceID {
		return nil, nil
	}
	return rec, nil
}

func (s *fakeProductStore) FindByCode(spaceID, code string) (*dbmodels.Product, error) {
	rec, ok := s.byCode[spaceID+"/"+code]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s *fakeProductStore) List(spaceID string, page, limit int) ([]dbmodels.Product, int64, error) {
	return nil, 0, nil
}

func (s *fakeProductStore) ListAll(spaceID string) ([]dbmodels.Product, error) {
	return nil, nil
}

func TestProductExecutor(t *testing.T) {
	fields := func(raw string) envelope.FieldMap {
		decoded, err := envelope.Decode(raw)
		require.NoError(t, err)
		return decoded
	}

	t.Run("create is idempotent on the product code", func(t *testing.T) {
		store := newFakeProductStore()
		executor := NewProductExecutor(store)

		payload := fields(`{"code":"SKU-1","name":"Widget","price":9.99,"stock":5}`)
		err := executor.Create("space-1", payload)
		require.NoError(t, err)
		require.Equal(t, 1, store.creates)

		created, err := store.FindByCode("space-1", "SKU-1")
		require.NoError(t, err)
		require.Equal(t, "Widget", created.Name)
		require.Equal(t, 9.99, created.Price)
		require.Equal(t, 5, created.Stock)
		require.Equal(t, models.SystemUser, created.CreatedBy)

		// a replay of the same approved request does not duplicate the row
		err = executor.Create("space-1", payload)
		require.NoError(t, err)
		require.Equal(t, 1, store.creates)
	})

	t.Run("create without a code is rejected", func(t *testing.T) {
		executor := NewProductExecutor(newFakeProductStore())
		err := executor.Create("space-1", fields(`{"name":"Widget"}`))
		require.Error(t, err)
	})

	t.Run("update touches only the submitted fields", func(t *testing.T) {
		store := newFakeProductStore()
		executor := NewProductExecutor(store)
		require.NoError(t, executor.Create("space-1", fields(`{"code":"SKU-1","name":"Widget","price":9.99}`)))

		err := executor.Update("space-1", "SKU-1", fields(`{"price":12.5,"stock":7}`))
		require.NoError(t, err)
		require.Len(t, store.updates, 1)
		require.Equal(t, map[string]interface{}{
			"price": 12.5,
			"stock": int64(7),
		}, store.updates[0])
	})

	t.Run("update of a foreign space product fails", func(t *testing.T) {
		store := newFakeProductStore()
		executor := NewProductExecutor(store)
		require.NoError(t, executor.Create("space-1", fields(`{"code":"SKU-1","name":"Widget","price":1}`)))

		err := executor.Update("space-2", "SKU-1", fields(`{"price":2}`))
		require.Error(t, err)
		require.Empty(t, store.updates)
	})

	t.Run("delete of a missing product is a no-op", func(t *testing.T) {
		store := newFakeProductStore()
		executor := NewProductExecutor(store)
		err := executor.Delete("space-1", "missing")
		require.NoError(t, err)
		require.Empty(t, store.deletes)
	})

	t.Run("registry resolves registered types only", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(models.EntityTypeProduct, NewProductExecutor(newFakeProductStore()))

		executor, err := registry.Get(models.EntityTypeProduct)
		require.NoError(t, err)
		require.NotNil(t, executor)

		_, err = registry.Get(models.EntityTypeUser)
		require.Error(t, err)
	})
}

type fakeSpaceUserStore struct {
	byID    map[string]*dbmodels.SpaceUser
	byEmail map[string]*dbmodels.SpaceUser
	creates int
	updates []map[string]interface{}
	deletes []string
}

func newFakeSpaceUserStore() *fakeSpaceUserStore {
	return &fakeSpaceUserStore{
		byID:    map[string]*dbmodels.SpaceUser{},
		byEmail: map[string]*dbmodels.SpaceUser{},
	}
}

func (s *fakeSpaceUserStore) Create(rec dbmodels.SpaceUser) (string, error) {
	s.creates++
	rec.ID = rec.Email
	s.byID[rec.ID] = &rec
	s.byEmail[rec.Email] = &rec
	return rec.ID, nil
}

func (s *fakeSpaceUserStore) Update(userID string, updMap map[string]interface{}) error {
	s.updates = append(s.updates, updMap)
	return nil
}

func (s *fakeSpaceUserStore) Delete(userID string) error {
	s.deletes = append(s.deletes, userID)
	delete(s.byID, userID)
	return nil
}

func (s *fakeSpaceUserStore) GetList(spaceID string, page, limit int) ([]dbmodels.SpaceUser, int64, error) {
	return nil, 0, nil
}

func (s *fakeSpaceUserStore) ExistByEmail(email string) (bool, error) {
	_, ok := s.byEmail[email]
	return ok, nil
}

func (s *fakeSpaceUserStore) FindByEmail(email string) (*dbmodels.SpaceUser, error) {
	rec, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s *fakeSpaceUserStore) GetByID(userID string) (*dbmodels.SpaceUser, error) {
	rec, ok := s.byID[userID]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func TestUserExecutor(t *testing.T) {
	fields := func(raw string) envelope.FieldMap {
		decoded, err := envelope.Decode(raw)
		require.NoError(t, err)
		return decoded
	}

	t.Run("create is idempotent on the email", func(t *testing.T) {
		store := newFakeSpaceUserStore()
		executor := NewUserExecutor(store)

		payload := fields(`{"email":"a@x.com","first_name":"Alice","last_name":"Doe","password":"s3cret","role":"SPACE_CHECKER_ROLE"}`)
		err := executor.Create("space-1", payload)
		require.NoError(t, err)
		require.Equal(t, 1, store.creates)

		created, err := store.FindByEmail("a@x.com")
		require.NoError(t, err)
		require.Equal(t, "Alice", created.FirstName)
		require.Equal(t, "space-1", created.SpaceID)
		require.Equal(t, models.SpaceCheckerRole, created.Role)
		require.Equal(t, authutils.GetMD5Hash("s3cret"), created.Password)

		// a replay of the same approved request does not duplicate the row
		err = executor.Create("space-1", payload)
		require.NoError(t, err)
		require.Equal(t, 1, store.creates)
	})

	t.Run("create without an email is rejected", func(t *testing.T) {
		executor := NewUserExecutor(newFakeSpaceUserStore())
		err := executor.Create("space-1", fields(`{"first_name":"Alice"}`))
		require.Error(t, err)
	})

	t.Run("update hashes the password and touches only the submitted fields", func(t *testing.T) {
		store := newFakeSpaceUserStore()
		executor := NewUserExecutor(store)
		require.NoError(t, executor.Create("space-1", fields(`{"email":"a@x.com","first_name":"Alice"}`)))

		err := executor.Update("space-1", "a@x.com", fields(`{"last_name":"Smith","password":"newpass"}`))
		require.NoError(t, err)
		require.Len(t, store.updates, 1)
		require.Equal(t, map[string]interface{}{
			"last_name": "Smith",
			"password":  authutils.GetMD5Hash("newpass"),
		}, store.updates[0])
	})

	t.Run("update of a foreign space user fails", func(t *testing.T) {
		store := newFakeSpaceUserStore()
		executor := NewUserExecutor(store)
		require.NoError(t, executor.Create("space-1", fields(`{"email":"a@x.com"}`)))

		err := executor.Update("space-2", "a@x.com", fields(`{"first_name":"Mallory"}`))
		require.Error(t, err)
		require.Empty(t, store.updates)
	})

	t.Run("delete of a missing user is a no-op", func(t *testing.T) {
		store := newFakeSpaceUserStore()
		executor := NewUserExecutor(store)
		err := executor.Delete("space-1", "missing")
		require.NoError(t, err)
		require.Empty(t, store.deletes)
	})

	t.Run("delete of a foreign space user is a no-op", func(t *testing.T) {
		store := newFakeSpaceUserStore()
		executor := NewUserExecutor(store)
		require.NoError(t, executor.Create("space-1", fields(`{"email":"a@x.com"}`)))

		err := executor.Delete("space-2", "a@x.com")
		require.NoError(t, err)
		require.Empty(t, store.deletes)
	})
}
