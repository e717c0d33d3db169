package services

import (
	"context"
	"errors"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/kmureithi/devfolio/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPostReader struct {
	mock.Mock
}

func (m *mockPostReader) Get(ctx context.Context) ([]models.JobPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobPost), args.Error(1)
}

type mockPostWriter struct {
	mock.Mock
}

func (m *mockPostWriter) Add(ctx context.Context, post *models.JobPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostWriter) GetByID(ctx context.Context, id uint) (*models.JobPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobPost), args.Error(1)
}

type mockApplications struct {
	mock.Mock
}

func (m *mockApplications) Add(ctx context.Context, postID, accountID uint) (*models.Application, error) {
	args := m.Called(ctx, postID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *mockApplications) Exists(ctx context.Context, postID, accountID uint) (bool, error) {
	args := m.Called(ctx, postID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *mockApplications) AppliedPostIDs(ctx context.Context, accountID uint) (map[uint]struct{}, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]struct{}), args.Error(1)
}

func employer() *models.Account {
	return &models.Account{ID: 1, AccountType: models.Employer}
}

func employee() *models.Account {
	return &models.Account{ID: 2, AccountType: models.Employee}
}

func customer() *models.Account {
	return &models.Account{ID: 3, AccountType: models.Customer}
}

func newTestBoard(listing *mockPostReader, posts *mockPostWriter, applications *mockApplications) *Board {
	return NewBoard(listing, posts, applications, EventBus.New())
}

func Test_CreatePost_ByEmployer_ShouldPersist(t *testing.T) {

	posts := new(mockPostWriter)
	posts.On("Add", mock.Anything, mock.Anything).Return(nil)

	board := newTestBoard(new(mockPostReader), posts, new(mockApplications))

	post := &models.JobPost{Title: "Backend Developer"}
	err := board.CreatePost(context.Background(), employer(), post)

	require.NoError(t, err)
	assert.Equal(t, employer().ID, post.AuthorID)
	posts.AssertExpectations(t)
}

func Test_CreatePost_ByNonEmployer_ShouldFail(t *testing.T) {

	posts := new(mockPostWriter)
	board := newTestBoard(new(mockPostReader), posts, new(mockApplications))

	post := &models.JobPost{Title: "Backend Developer"}

	assert.ErrorIs(t, board.CreatePost(context.Background(), nil, post), ErrNotEmployer)
	assert.ErrorIs(t, board.CreatePost(context.Background(), employee(), post), ErrNotEmployer)
	assert.ErrorIs(t, board.CreatePost(context.Background(), customer(), post), ErrNotEmployer)
	posts.AssertNotCalled(t, "Add")
}

func Test_ListPosts_WithFailedRead_ShouldReturnEmptyListing(t *testing.T) {

	listing := new(mockPostReader)
	listing.On("Get", mock.Anything).Return(nil, errors.New("db is down"))

	board := newTestBoard(listing, new(mockPostWriter), new(mockApplications))

	assert.Empty(t, board.ListPosts(context.Background()))
}

func Test_AppliedPostIDs_ForAnonymousViewer_ShouldBeNil(t *testing.T) {

	applications := new(mockApplications)
	board := newTestBoard(new(mockPostReader), new(mockPostWriter), applications)

	assert.Nil(t, board.AppliedPostIDs(context.Background(), nil))
	applications.AssertNotCalled(t, "AppliedPostIDs")
}

func Test_CanApply_TruthTable(t *testing.T) {

	board := newTestBoard(new(mockPostReader), new(mockPostWriter), new(mockApplications))
	applied := map[uint]struct{}{10: {}}

	cases := []struct {
		name    string
		account *models.Account
		postID  uint
		want    bool
	}{
		{"anonymous", nil, 11, false},
		{"employer", employer(), 11, false},
		{"customer", customer(), 11, false},
		{"employee not applied", employee(), 11, true},
		{"employee already applied", employee(), 10, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, board.CanApply(c.account, c.postID, applied))
		})
	}
}

func Test_Apply_ByEmployee_ShouldRecordApplication(t *testing.T) {

	posts := new(mockPostWriter)
	posts.On("GetByID", mock.Anything, uint(10)).Return(&models.JobPost{ID: 10}, nil)

	applications := new(mockApplications)
	applications.On("Exists", mock.Anything, uint(10), employee().ID).Return(false, nil)
	applications.On("Add", mock.Anything, uint(10), employee().ID).
		Return(&models.Application{ID: 1, PostID: 10, AccountID: employee().ID}, nil)

	board := newTestBoard(new(mockPostReader), posts, applications)

	application, err := board.Apply(context.Background(), employee(), 10)

	require.NoError(t, err)
	assert.Equal(t, uint(10), application.PostID)
	applications.AssertExpectations(t)
}

func Test_Apply_ByNonEmployee_ShouldFail(t *testing.T) {

	posts := new(mockPostWriter)
	board := newTestBoard(new(mockPostReader), posts, new(mockApplications))

	_, err := board.Apply(context.Background(), nil, 10)
	assert.ErrorIs(t, err, ErrNotEligible)

	_, err = board.Apply(context.Background(), employer(), 10)
	assert.ErrorIs(t, err, ErrNotEligible)

	posts.AssertNotCalled(t, "GetByID")
}

func Test_Apply_ToMissingPost_ShouldFail(t *testing.T) {

	posts := new(mockPostWriter)
	posts.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	board := newTestBoard(new(mockPostReader), posts, new(mockApplications))

	_, err := board.Apply(context.Background(), employee(), 99)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func Test_Apply_Twice_ShouldFailSecondTime(t *testing.T) {

	posts := new(mockPostWriter)
	posts.On("GetByID", mock.Anything, uint(10)).Return(&models.JobPost{ID: 10}, nil)

	applications := new(mockApplications)
	applications.On("Exists", mock.Anything, uint(10), employee().ID).Return(false, nil).Once()
	applications.On("Exists", mock.Anything, uint(10), employee().ID).Return(true, nil)
	applications.On("Add", mock.Anything, uint(10), employee().ID).
		Return(&models.Application{ID: 1, PostID: 10, AccountID: employee().ID}, nil).Once()

	board := newTestBoard(new(mockPostReader), posts, applications)

	_, err := board.Apply(context.Background(), employee(), 10)
	require.NoError(t, err)

	_, err = board.Apply(context.Background(), employee(), 10)
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	applications.AssertNumberOfCalls(t, "Add", 1)
}

func Test_Apply_WithRacingDuplicate_ShouldReadAsAlreadyApplied(t *testing.T) {

	// The existence check passes but the insert hits the unique index,
	// as happens when two submissions race.
	posts := new(mockPostWriter)
	posts.On("GetByID", mock.Anything, uint(10)).Return(&models.JobPost{ID: 10}, nil)

	applications := new(mockApplications)
	applications.On("Exists", mock.Anything, uint(10), employee().ID).Return(false, nil)
	applications.On("Add", mock.Anything, uint(10), employee().ID).
		Return(nil, repositories.ErrDuplicateApplication)

	board := newTestBoard(new(mockPostReader), posts, applications)

	_, err := board.Apply(context.Background(), employee(), 10)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func Test_ErrAlreadyApplied_IsNotEligible(t *testing.T) {
	assert.ErrorIs(t, ErrAlreadyApplied, ErrNotEligible)
}
