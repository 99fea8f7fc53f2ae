package auth

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockUserDirectory is a mock implementation of UserDirectory.
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Identity), args.Error(1)
}

func (m *MockUserDirectory) FindByUsername(ctx context.Context, username string) (*Identity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Identity), args.Error(1)
}

func (m *MockUserDirectory) FindByID(ctx context.Context, id int64) (*Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Identity), args.Error(1)
}

func (m *MockUserDirectory) Create(ctx context.Context, identity *Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockUserDirectory) Update(ctx context.Context, identity *Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

// MockRoleDirectory is a mock implementation of RoleDirectory.
type MockRoleDirectory struct {
	mock.Mock
}

func (m *MockRoleDirectory) FindByName(ctx context.Context, name string) (*Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Role), args.Error(1)
}

func (m *MockRoleDirectory) FindByID(ctx context.Context, id int64) (*Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Role), args.Error(1)
}

func (m *MockRoleDirectory) Create(ctx context.Context, role *Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

// memUserDirectory is a map-backed directory for lifecycle tests where the
// same identity flows through register, login and password change.
type memUserDirectory struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*Identity
}

func newMemUserDirectory() *memUserDirectory {
	return &memUserDirectory{users: make(map[int64]*Identity)}
}

func (d *memUserDirectory) FindByEmail(_ context.Context, email string) (*Identity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrIdentityNotFound
}

func (d *memUserDirectory) FindByUsername(_ context.Context, username string) (*Identity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrIdentityNotFound
}

func (d *memUserDirectory) FindByID(_ context.Context, id int64) (*Identity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[id]
	if !ok {
		return nil, ErrIdentityNotFound
	}
	out := *u
	return &out, nil
}

func (d *memUserDirectory) Create(_ context.Context, identity *Identity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	identity.ID = d.nextID
	out := *identity
	d.users[identity.ID] = &out
	return nil
}

func (d *memUserDirectory) Update(_ context.Context, identity *Identity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[identity.ID]; !ok {
		return ErrIdentityNotFound
	}
	out := *identity
	d.users[identity.ID] = &out
	return nil
}

type memRoleDirectory struct {
	mu     sync.Mutex
	nextID int64
	roles  map[int64]*Role
}

func newMemRoleDirectory() *memRoleDirectory {
	return &memRoleDirectory{roles: make(map[int64]*Role)}
}

func (d *memRoleDirectory) FindByName(_ context.Context, name string) (*Role, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range d.roles {
		if r.Name == name {
			out := *r
			return &out, nil
		}
	}
	return nil, ErrRoleNotFound
}

func (d *memRoleDirectory) FindByID(_ context.Context, id int64) (*Role, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, ok := d.roles[id]
	if !ok {
		return nil, ErrRoleNotFound
	}
	out := *r
	return &out, nil
}

func (d *memRoleDirectory) Create(_ context.Context, role *Role) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	role.ID = d.nextID
	out := *role
	d.roles[role.ID] = &out
	return nil
}
