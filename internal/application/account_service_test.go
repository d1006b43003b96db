package application

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-server/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-server/internal/domain/repository"
	"github.com/oksasatya/go-shop-server/pkg/helpers"
)

// fakeUserRepo enforces email uniqueness under a lock, mirroring the
// unique index on the real store.
type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	writes  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[u.Email]; ok {
		return repo.ErrEmailTaken
	}
	u.ID = uuid.NewString()
	cp := *u
	f.byEmail[u.Email] = &cp
	f.writes++
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func validInput() CreateAccountInput {
	return CreateAccountInput{
		Name:     "Ana",
		Lastname: "Ruiz",
		Email:    "ana@example.com",
		Password: "secret1",
		Privacy:  true,
	}
}

func TestCreateAccount_Success(t *testing.T) {
	repoFake := newFakeUserRepo()
	svc := NewAccountService(repoFake, nil, nil)

	u, err := svc.CreateAccount(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, u)

	stored, err := repoFake.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, repoFake.writeCount())
	assert.Equal(t, "Ana", stored.Profile.Name)
	assert.Equal(t, "Ruiz", stored.Profile.Lastname)
	assert.True(t, stored.Privacy)

	// the plaintext is never persisted
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(stored.PasswordHash, "secret1"))
}

func TestCreateAccount_NormalizesEmail(t *testing.T) {
	repoFake := newFakeUserRepo()
	svc := NewAccountService(repoFake, nil, nil)

	_, err := svc.CreateAccount(context.Background(), CreateAccountInput{
		Name: "Ana", Lastname: "Ruiz", Email: "  Ana@Example.COM ", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = repoFake.GetByEmail(context.Background(), "ana@example.com")
	assert.NoError(t, err)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	repoFake := newFakeUserRepo()
	svc := NewAccountService(repoFake, nil, nil)

	_, err := svc.CreateAccount(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.CreateAccount(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrDuplicateAccount)
	assert.Equal(t, 1, repoFake.writeCount())
}

// insertRacedRepo reports "not found" on lookup but rejects the insert,
// simulating a concurrent signup landing between the two.
type insertRacedRepo struct {
	fakeUserRepo
}

func (f *insertRacedRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, repo.ErrNotFound
}

func (f *insertRacedRepo) Create(context.Context, *entity.User) error {
	return repo.ErrEmailTaken
}

func TestCreateAccount_UniqueViolationAtInsert(t *testing.T) {
	svc := NewAccountService(&insertRacedRepo{}, nil, nil)

	_, err := svc.CreateAccount(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestCreateAccount_ConcurrentSameEmail(t *testing.T) {
	repoFake := newFakeUserRepo()
	svc := NewAccountService(repoFake, nil, nil)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateAccount(context.Background(), validInput())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrDuplicateAccount):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, dup)
	assert.Equal(t, 1, repoFake.writeCount())
}

func TestAuthenticate(t *testing.T) {
	repoFake := newFakeUserRepo()
	svc := NewAccountService(repoFake, nil, nil)
	_, err := svc.CreateAccount(context.Background(), validInput())
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "success", email: "ana@example.com", password: "secret1"},
		{name: "mixed case email", email: "ANA@example.com", password: "secret1"},
		{name: "wrong password", email: "ana@example.com", password: "secret2", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: "secret1", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ana@example.com", u.Email)
		})
	}
}
