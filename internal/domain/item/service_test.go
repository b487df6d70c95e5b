package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shareit/internal/domain"
	"shareit/internal/logging"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, it *domain.Item) error {
	args := m.Called(ctx, it)
	it.ID = 10 // simulate DB insert
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, it *domain.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error) {
	args := m.Called(ctx, text, page)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) CreateComment(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	c.ID = 1
	return args.Error(0)
}

func (m *MockItemRepository) LatestComments(ctx context.Context, itemID int64, limit int) ([]domain.Comment, error) {
	args := m.Called(ctx, itemID, limit)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockRequestLookup struct {
	mock.Mock
}

func (m *MockRequestLookup) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

type MockBookingSummarizer struct {
	mock.Mock
}

func (m *MockBookingSummarizer) Summary(ctx context.Context, it *domain.Item, viewerID int64) (*domain.BookingShort, *domain.BookingShort, error) {
	args := m.Called(ctx, it, viewerID)
	var last, next *domain.BookingShort
	if v := args.Get(0); v != nil {
		last = v.(*domain.BookingShort)
	}
	if v := args.Get(1); v != nil {
		next = v.(*domain.BookingShort)
	}
	return last, next, args.Error(2)
}

func (m *MockBookingSummarizer) HasCompletedBooking(ctx context.Context, bookerID, itemID int64) (bool, error) {
	args := m.Called(ctx, bookerID, itemID)
	return args.Bool(0), args.Error(1)
}

type fixture struct {
	svc      *Service
	items    *MockItemRepository
	users    *MockUserDirectory
	requests *MockRequestLookup
	bookings *MockBookingSummarizer
}

func newFixture() fixture {
	f := fixture{
		items:    new(MockItemRepository),
		users:    new(MockUserDirectory),
		requests: new(MockRequestLookup),
		bookings: new(MockBookingSummarizer),
	}
	f.svc = NewService(f.items, f.users, f.requests, f.bookings, logging.Discard())
	return f
}

func ptr[T any](v T) *T { return &v }

func TestService_Add(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	f.requests.On("GetByID", mock.Anything, int64(5)).Return(&domain.ItemRequest{ID: 5}, nil)
	f.items.On("Create", mock.Anything, mock.MatchedBy(func(it *domain.Item) bool {
		return it.Name == "Drill" && it.Available && it.OwnerID == 1 && *it.RequestID == 5
	})).Return(nil)

	it, err := f.svc.Add(context.Background(), CreateItemRequest{
		Name: " Drill ", Description: "cordless", Available: ptr(true), RequestID: ptr(int64(5)),
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(10), it.ID)
	f.items.AssertExpectations(t)
}

func TestService_Add_UnknownRefs(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, int64(404)).
		Return(nil, domain.Errorf(domain.ErrNotFound, "User with id 404 was not found."))
	f.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	f.requests.On("GetByID", mock.Anything, int64(9)).
		Return(nil, domain.Errorf(domain.ErrNotFound, "Request with id 9 was not found."))

	_, err := f.svc.Add(context.Background(), CreateItemRequest{Name: "x", Description: "y", Available: ptr(true)}, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.Add(context.Background(), CreateItemRequest{Name: "x", Description: "y", Available: ptr(true), RequestID: ptr(int64(9))}, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update(t *testing.T) {
	f := newFixture()
	f.items.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Item{ID: 10, Name: "Drill", Description: "old", Available: true, OwnerID: 1}, nil)
	f.items.On("Update", mock.Anything, mock.Anything).Return(nil)

	it, err := f.svc.Update(context.Background(), 10, 1, UpdateItemRequest{Available: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Drill", it.Name)
	assert.Equal(t, "old", it.Description)
	assert.False(t, it.Available)

	_, err = f.svc.Update(context.Background(), 10, 2, UpdateItemRequest{Name: ptr("mine now")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.items.AssertNumberOfCalls(t, "Update", 1)
}

func TestService_Delete_OnlyOwner(t *testing.T) {
	f := newFixture()
	f.items.On("GetByID", mock.Anything, int64(10)).Return(&domain.Item{ID: 10, OwnerID: 1}, nil)
	f.items.On("Delete", mock.Anything, int64(10)).Return(nil)

	assert.ErrorIs(t, f.svc.Delete(context.Background(), 10, 2), domain.ErrNotFound)
	require.NoError(t, f.svc.Delete(context.Background(), 10, 1))
	f.items.AssertNumberOfCalls(t, "Delete", 1)
}

func TestService_GetByID(t *testing.T) {
	f := newFixture()
	it := &domain.Item{ID: 10, Name: "Drill", OwnerID: 1}
	f.items.On("GetByID", mock.Anything, int64(10)).Return(it, nil)
	f.items.On("LatestComments", mock.Anything, int64(10), commentsShown).Return([]domain.Comment{
		{ID: 3, Text: "great", Author: &domain.User{Name: "Ann"}},
	}, nil)
	f.bookings.On("Summary", mock.Anything, it, int64(1)).
		Return(&domain.BookingShort{ID: 7, BookerID: 2}, nil, nil)
	f.bookings.On("Summary", mock.Anything, it, int64(2)).Return(nil, nil, nil)

	v, err := f.svc.GetByID(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.LastBooking.ID)
	assert.Nil(t, v.NextBooking)
	require.Len(t, v.Comments, 1)
	assert.Equal(t, "Ann", v.Comments[0].AuthorName)

	v, err = f.svc.GetByID(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Nil(t, v.LastBooking)
}

func TestService_Search(t *testing.T) {
	f := newFixture()
	page := domain.Page{Size: 10}
	f.items.On("Search", mock.Anything, "drill", page).Return([]domain.Item{{ID: 1}}, nil)

	got, err := f.svc.Search(context.Background(), "  ", page)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = f.svc.Search(context.Background(), " drill ", page)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.svc.Search(context.Background(), "drill", domain.Page{Size: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
	f.items.AssertNumberOfCalls(t, "Search", 1)
}

func TestService_AddComment(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Name: "renter"}, nil)
	f.users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, Name: "stranger"}, nil)
	f.items.On("GetByID", mock.Anything, int64(10)).Return(&domain.Item{ID: 10, OwnerID: 1}, nil)
	f.bookings.On("HasCompletedBooking", mock.Anything, int64(2), int64(10)).Return(true, nil)
	f.bookings.On("HasCompletedBooking", mock.Anything, int64(3), int64(10)).Return(false, nil)
	f.items.On("CreateComment", mock.Anything, mock.Anything).Return(nil)

	c, err := f.svc.AddComment(context.Background(), 10, 2, CreateCommentRequest{Text: " fine drill "})
	require.NoError(t, err)
	assert.Equal(t, "fine drill", c.Text)
	assert.Equal(t, "renter", ToCommentView(c).AuthorName)

	_, err = f.svc.AddComment(context.Background(), 10, 3, CreateCommentRequest{Text: "never used it"})
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
	f.items.AssertNumberOfCalls(t, "CreateComment", 1)
}
