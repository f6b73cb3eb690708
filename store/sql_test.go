package store_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/gym-check/attendance"
	"github.com/danielhkuo/gym-check/models"
	"github.com/danielhkuo/gym-check/store"
	"github.com/danielhkuo/gym-check/testutil"
)

func TestSQLStore_ListUsers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.NewSQLStore(db)

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users, "empty list encodes as []")

	id := testutil.CreateTestUser(t, db, "mina", 3)
	users, err = s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: id, Username: "mina", WarningCount: 3}}, users)
}

func TestSQLStore_GetUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.NewSQLStore(db)
	id := testutil.CreateTestUser(t, db, "mina", 0)

	u, err := s.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "mina", u.Username)

	_, err = s.GetUser(context.Background(), "ghost")
	assert.True(t, errors.Is(err, attendance.ErrUserNotFound), "got %v", err)
}

func TestSQLStore_ListLogsBetween(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.NewSQLStore(db)
	id := testutil.CreateTestUser(t, db, "mina", 0)
	other := testutil.CreateTestUser(t, db, "jun", 0)

	for _, d := range []string{"2024-06-02", "2024-06-03", "2024-06-06", "2024-06-09", "2024-06-10"} {
		testutil.CreateTestLog(t, db, id, d)
	}
	testutil.CreateTestLog(t, db, other, "2024-06-05")

	logs, err := s.ListLogsBetween(context.Background(), id, "2024-06-03", "2024-06-09")
	require.NoError(t, err)

	var dates []string
	for _, l := range logs {
		assert.Equal(t, id, l.UserID)
		assert.Equal(t, l.ImageURL, l.ThumbURL)
		dates = append(dates, l.Date)
	}
	sort.Strings(dates)
	assert.Equal(t, []string{"2024-06-03", "2024-06-06", "2024-06-09"}, dates)
}

func TestSQLStore_HasLogOn(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.NewSQLStore(db)
	id := testutil.CreateTestUser(t, db, "mina", 0)
	testutil.CreateTestLog(t, db, id, "2024-06-07")

	ok, err := s.HasLogOn(context.Background(), id, "2024-06-07")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.HasLogOn(context.Background(), id, "2024-06-08")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLStore_InsertLogDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.NewSQLStore(db)
	id := testutil.CreateTestUser(t, db, "mina", 0)
	ctx := context.Background()

	first := models.ExerciseLog{ID: "log-1", UserID: id, Date: "2024-06-07", ImageURL: "k1", ThumbURL: "k1"}
	require.NoError(t, s.InsertLog(ctx, first))

	second := models.ExerciseLog{ID: "log-2", UserID: id, Date: "2024-06-07", ImageURL: "k2", ThumbURL: "k2"}
	err := s.InsertLog(ctx, second)
	assert.True(t, errors.Is(err, attendance.ErrDuplicateLog), "got %v", err)

	assert.Equal(t, 1, testutil.CountLogs(t, db, id, "2024-06-07"))
}

func TestSQLStore_InsertLogOtherFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.NewSQLStore(db)

	// Foreign key violation is not a duplicate
	err := s.InsertLog(context.Background(), models.ExerciseLog{ID: "l", UserID: "ghost", Date: "2024-06-07", ImageURL: "k", ThumbURL: "k"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, attendance.ErrDuplicateLog))
}
