package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/domain"
	repoPostgres "github.com/rkp0912/Trello-quora/internal/repository/postgres"
	"github.com/rkp0912/Trello-quora/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := repoPostgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user := &domain.User{
		UUID:         uuid.New(),
		Username:     "repo_user",
		Email:        "repo_user@example.com",
		PasswordHash: "digest",
		Salt:         "salt",
		Role:         domain.RoleNonAdmin,
	}
	require.NoError(t, repos.User.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byUUID, err := repos.User.GetByUUID(ctx, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUUID.ID)

	byName, err := repos.User.GetByUsername(ctx, "repo_user")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repos.User.GetByEmail(ctx, "repo_user@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := repoPostgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	first := &domain.User{
		UUID:         uuid.New(),
		Username:     "unique_user",
		Email:        "unique@example.com",
		PasswordHash: "digest",
		Salt:         "salt",
	}
	require.NoError(t, repos.User.Create(ctx, first))

	// Same username, fresh email: the store-level constraint fires and is
	// translated to the duplicated-key sentinel.
	dupName := &domain.User{
		UUID:         uuid.New(),
		Username:     "unique_user",
		Email:        "fresh@example.com",
		PasswordHash: "digest",
		Salt:         "salt",
	}
	err := repos.User.Create(ctx, dupName)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	dupEmail := &domain.User{
		UUID:         uuid.New(),
		Username:     "fresh_user",
		Email:        "unique@example.com",
		PasswordHash: "digest",
		Salt:         "salt",
	}
	err = repos.User.Create(ctx, dupEmail)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_GetMissing(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := repoPostgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	_, err := repos.User.GetByUUID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repos.User.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
