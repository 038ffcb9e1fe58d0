package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"github.com/rkp0912/Trello-quora/internal/repository/postgres"
	"github.com/rkp0912/Trello-quora/internal/service"
	"github.com/rkp0912/Trello-quora/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signIn(t *testing.T, authService *service.AuthService, username, password string) *domain.UserSession {
	t.Helper()
	session, err := authService.Authenticate(context.Background(), username, password)
	require.NoError(t, err)
	return session
}

func TestQuestionService_OwnershipScenario(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	questionService := service.NewQuestionService(repos.Question, repos.User)
	ctx := context.Background()

	// alice owns a question; bob is an unrelated nonadmin; carol is an
	// admin who owns nothing.
	testutil.NewUserBuilder().WithUsername("alice").WithPassword("pw1").Build(t, testDB.DB)
	testutil.NewUserBuilder().WithUsername("bob").WithPassword("pw2").Build(t, testDB.DB)
	testutil.NewUserBuilder().WithUsername("carol").WithPassword("pw3").AsAdmin().Build(t, testDB.DB)

	alice := signIn(t, authService, "alice", "pw1")
	bob := signIn(t, authService, "bob", "pw2")
	carol := signIn(t, authService, "carol", "pw3")

	question, err := questionService.Create(ctx, alice, "Why is the sky blue?")
	require.NoError(t, err)

	// Bob may neither edit nor delete: not the owner, not an admin.
	_, err = questionService.Edit(ctx, bob, question.UUID, "hijacked")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = questionService.Delete(ctx, bob, question.UUID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Carol is an admin: still no edit, but delete is allowed.
	_, err = questionService.Edit(ctx, carol, question.UUID, "admin edit")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// The owner edits freely.
	edited, err := questionService.Edit(ctx, alice, question.UUID, "Why is the sky blue at noon?")
	require.NoError(t, err)
	assert.Equal(t, "Why is the sky blue at noon?", edited.Content)

	deleted, err := questionService.Delete(ctx, carol, question.UUID)
	require.NoError(t, err)
	assert.Equal(t, question.UUID, deleted.UUID)

	_, err = questionService.Edit(ctx, alice, question.UUID, "gone")
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestQuestionService_GetAll(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	questionService := service.NewQuestionService(repos.Question, repos.User)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewQuestionBuilder(owner).WithContent("first").Build(t, testDB.DB)
	testutil.NewQuestionBuilder(owner).WithContent("second").Build(t, testDB.DB)

	questions, err := questionService.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestQuestionService_GetAllByUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	questionService := service.NewQuestionService(repos.Question, repos.User)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewQuestionBuilder(owner).Build(t, testDB.DB)
	testutil.NewQuestionBuilder(other).Build(t, testDB.DB)

	questions, err := questionService.GetAllByUser(ctx, owner.UUID)
	require.NoError(t, err)
	assert.Len(t, questions, 1)

	_, err = questionService.GetAllByUser(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestQuestionService_EditUnknownQuestion(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	questionService := service.NewQuestionService(repos.Question, repos.User)
	ctx := context.Background()

	testutil.NewUserBuilder().WithUsername("someone").WithPassword("pw").Build(t, testDB.DB)
	session := signIn(t, authService, "someone", "pw")

	_, err := questionService.Edit(ctx, session, uuid.New(), "anything")
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

	_, err = questionService.Delete(ctx, session, uuid.New())
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}
