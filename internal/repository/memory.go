package repository

import (
	"context"
	"sync"

	"github.com/holocron/holocron-api/internal/model"
)

// MemoryStore keeps every table in process. It backs the memory driver and
// the handler tests; ids are assigned in ascending order starting at 1.
type MemoryStore struct {
	mu         sync.RWMutex
	users      []model.User
	characters []model.Character
	planets    []model.Planet
	favorites  []model.Favorite
	nextID     map[string]int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: make(map[string]int64)}
}

func (s *MemoryStore) allocate(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

// Users returns the user table of the store.
func (s *MemoryStore) Users() *MemoryUserRepository { return &MemoryUserRepository{s: s} }

// Characters returns the character table of the store.
func (s *MemoryStore) Characters() *MemoryCharacterRepository {
	return &MemoryCharacterRepository{s: s}
}

// Planets returns the planet table of the store.
func (s *MemoryStore) Planets() *MemoryPlanetRepository { return &MemoryPlanetRepository{s: s} }

// Favorites returns the favorite table of the store.
func (s *MemoryStore) Favorites() *MemoryFavoriteRepository {
	return &MemoryFavoriteRepository{s: s}
}

// MemoryUserRepository is the user table of a MemoryStore. Email and
// password comparisons are exact, matching the binary collation in MySQL.
type MemoryUserRepository struct {
	s *MemoryStore
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}

	user.ID = r.s.allocate("users")
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Email == email })
}

func (r *MemoryUserRepository) GetByCredentials(_ context.Context, email, password string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Email == email && u.Password == password })
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.ID == id })
}

func (r *MemoryUserRepository) find(match func(model.User) bool) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryCharacterRepository is the character table of a MemoryStore.
type MemoryCharacterRepository struct {
	s *MemoryStore
}

func (r *MemoryCharacterRepository) Create(_ context.Context, c *model.Character) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.characters {
		if existing.Name == c.Name {
			return ErrDuplicate
		}
	}

	c.ID = r.s.allocate("characters")
	r.s.characters = append(r.s.characters, *c)
	return nil
}

func (r *MemoryCharacterRepository) GetByName(_ context.Context, name string) (*model.Character, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.characters {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryCharacterRepository) List(_ context.Context) ([]model.Character, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]model.Character{}, r.s.characters...), nil
}

// MemoryPlanetRepository is the planet table of a MemoryStore.
type MemoryPlanetRepository struct {
	s *MemoryStore
}

func (r *MemoryPlanetRepository) Create(_ context.Context, p *model.Planet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.planets {
		if existing.Name == p.Name {
			return ErrDuplicate
		}
	}

	p.ID = r.s.allocate("planets")
	r.s.planets = append(r.s.planets, *p)
	return nil
}

func (r *MemoryPlanetRepository) GetByName(_ context.Context, name string) (*model.Planet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.planets {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryPlanetRepository) List(_ context.Context) ([]model.Planet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]model.Planet{}, r.s.planets...), nil
}

// MemoryFavoriteRepository is the favorite table of a MemoryStore.
type MemoryFavoriteRepository struct {
	s *MemoryStore
}

func (r *MemoryFavoriteRepository) Create(_ context.Context, f *model.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f.ID = r.s.allocate("favorites")
	r.s.favorites = append(r.s.favorites, *f)
	return nil
}

func (r *MemoryFavoriteRepository) List(_ context.Context) ([]model.Favorite, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]model.Favorite{}, r.s.favorites...), nil
}

// Delete removes the favorite with the given ID or returns ErrNotFound.
func (r *MemoryFavoriteRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, f := range r.s.favorites {
		if f.ID == id {
			r.s.favorites = append(r.s.favorites[:i], r.s.favorites[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
