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

func TestAnswerService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	answerService := service.NewAnswerService(repos.Answer, repos.Question)
	ctx := context.Background()

	asker, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	question := testutil.NewQuestionBuilder(asker).Build(t, testDB.DB)

	testutil.NewUserBuilder().WithUsername("responder").WithPassword("pw").Build(t, testDB.DB)
	session := signIn(t, authService, "responder", "pw")

	answer, err := answerService.Create(ctx, session, question.UUID, "Rayleigh scattering.")
	require.NoError(t, err)
	assert.Equal(t, question.ID, answer.QuestionID)
	assert.Equal(t, session.User.ID, answer.UserID)

	// An unknown question is rejected before anything is written.
	_, err = answerService.Create(ctx, session, uuid.New(), "orphan answer")
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestAnswerService_OwnershipScenario(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	answerService := service.NewAnswerService(repos.Answer, repos.Question)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().WithUsername("owner").WithPassword("pw1").Build(t, testDB.DB)
	testutil.NewUserBuilder().WithUsername("stranger").WithPassword("pw2").Build(t, testDB.DB)
	testutil.NewUserBuilder().WithUsername("moderator").WithPassword("pw3").AsAdmin().Build(t, testDB.DB)

	question := testutil.NewQuestionBuilder(owner).Build(t, testDB.DB)
	answer := testutil.NewAnswerBuilder(owner, question).Build(t, testDB.DB)

	ownerSession := signIn(t, authService, "owner", "pw1")
	strangerSession := signIn(t, authService, "stranger", "pw2")
	adminSession := signIn(t, authService, "moderator", "pw3")

	// Strangers can neither edit nor delete.
	_, err := answerService.Edit(ctx, strangerSession, answer.UUID, "hijack")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = answerService.Delete(ctx, strangerSession, answer.UUID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admins cannot edit someone else's answer either.
	_, err = answerService.Edit(ctx, adminSession, answer.UUID, "admin edit")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	edited, err := answerService.Edit(ctx, ownerSession, answer.UUID, "Updated answer.")
	require.NoError(t, err)
	assert.Equal(t, "Updated answer.", edited.Content)

	// But an admin may delete it.
	deleted, err := answerService.Delete(ctx, adminSession, answer.UUID)
	require.NoError(t, err)
	assert.Equal(t, answer.UUID, deleted.UUID)
}

func TestAnswerService_GetAllForQuestion(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	answerService := service.NewAnswerService(repos.Answer, repos.Question)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	question := testutil.NewQuestionBuilder(owner).Build(t, testDB.DB)
	testutil.NewAnswerBuilder(owner, question).WithContent("one").Build(t, testDB.DB)
	testutil.NewAnswerBuilder(owner, question).WithContent("two").Build(t, testDB.DB)

	answers, err := answerService.GetAllForQuestion(ctx, question.UUID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, question.Content, answers[0].Question.Content)

	_, err = answerService.GetAllForQuestion(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestAnswerService_EditUnknownAnswer(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	answerService := service.NewAnswerService(repos.Answer, repos.Question)
	ctx := context.Background()

	testutil.NewUserBuilder().WithUsername("editor").WithPassword("pw").Build(t, testDB.DB)
	session := signIn(t, authService, "editor", "pw")

	_, err := answerService.Edit(ctx, session, uuid.New(), "anything")
	assert.ErrorIs(t, err, domain.ErrAnswerNotFound)

	_, err = answerService.Delete(ctx, session, uuid.New())
	assert.ErrorIs(t, err, domain.ErrAnswerNotFound)
}
