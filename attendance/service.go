// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/gym-check/models"
)

// RecordStore is the tabular store holding users and exercise logs.
// InsertLog must return ErrDuplicateLog when the (user, date) uniqueness
// constraint rejects the row. GetUser returns ErrUserNotFound.
type RecordStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	ListLogsBetween(ctx context.Context, userID, from, to string) ([]models.ExerciseLog, error)
	HasLogOn(ctx context.Context, userID, date string) (bool, error)
	InsertLog(ctx context.Context, log models.ExerciseLog) error
}

// BlobStore stores raw image bytes under a key and returns the stored path
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string, upsert bool) (string, error)
}

const defaultFanout = 8

type Service struct {
	records RecordStore
	blobs   BlobStore
	now     func() time.Time
	loc     *time.Location
	fanout  int
}

type Option func(*Service)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the calendar used for "today" and week boundaries
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithFanout bounds concurrent per-user log lookups in WeeklyStatus
func WithFanout(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.fanout = n
		}
	}
}

func NewService(records RecordStore, blobs BlobStore, opts ...Option) *Service {
	s := &Service{
		records: records,
		blobs:   blobs,
		now:     time.Now,
		loc:     time.Local,
		fanout:  defaultFanout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}

// CurrentWeek returns the window containing today
func (s *Service) CurrentWeek() WeekWindow {
	return WeekOf(s.today())
}

// Users lists every known user
func (s *Service) Users(ctx context.Context) ([]models.User, error) {
	users, err := s.records.ListUsers(ctx)
	if err != nil {
		return nil, newError(KindStoreUnavailable, "Failed to load users", err)
	}
	return users, nil
}

// WeeklyStatus builds one StatusEntry per user for the current week.
// A failure loading any user's logs fails the whole report.
func (s *Service) WeeklyStatus(ctx context.Context) ([]models.StatusEntry, error) {
	week := s.CurrentWeek()

	users, err := s.records.ListUsers(ctx)
	if err != nil {
		return nil, newError(KindStoreUnavailable, "Failed to load users", err)
	}

	entries := make([]models.StatusEntry, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	for i, user := range users {
		g.Go(func() error {
			logs, err := s.records.ListLogsBetween(gctx, user.ID, week.Start, week.End)
			if err != nil {
				return fmt.Errorf("logs for user %s: %w", user.ID, err)
			}
			entries[i] = buildEntry(user, logs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, newError(KindStoreUnavailable, "Failed to load exercise logs", err)
	}

	return entries, nil
}

func buildEntry(user models.User, logs []models.ExerciseLog) models.StatusEntry {
	entry := models.StatusEntry{
		ID:           user.ID,
		Username:     user.Username,
		WeekCount:    len(logs),
		WarningCount: user.WarningCount,
	}
	if recent, ok := MostRecent(logs); ok {
		thumb, image := recent.ThumbURL, recent.ImageURL
		entry.ThumbURL = &thumb
		entry.ImageURL = &image
	}
	return entry
}

// MostRecent picks the log with the greatest date. Ties (which the
// uniqueness constraint rules out) go to the greatest ID so the result
// never depends on slice order.
func MostRecent(logs []models.ExerciseLog) (models.ExerciseLog, bool) {
	if len(logs) == 0 {
		return models.ExerciseLog{}, false
	}
	best := logs[0]
	for _, l := range logs[1:] {
		if l.Date > best.Date || (l.Date == best.Date && l.ID > best.ID) {
			best = l
		}
	}
	return best, true
}

// Submission is one uploaded proof photo
type Submission struct {
	UserID      string
	Image       []byte
	ContentType string
	Filename    string
}

// Submit stores the image and records today's log for the user. It returns
// the stored image path.
//
// If the log insert fails after the upload succeeded, the blob stays in
// place; the blob store has no transaction shared with the record store.
func (s *Service) Submit(ctx context.Context, sub Submission) (string, error) {
	userID := strings.TrimSpace(sub.UserID)
	if userID == "" {
		return "", newError(KindInvalidRequest, "user_id is required", nil)
	}
	if len(sub.Image) == 0 {
		return "", newError(KindInvalidRequest, "No file uploaded", nil)
	}

	if _, err := s.records.GetUser(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", newError(KindInvalidRequest, "Unknown user", err)
		}
		return "", newError(KindStoreUnavailable, "Failed to look up user", err)
	}

	now := s.today()
	date := DateOf(now)

	exists, err := s.records.HasLogOn(ctx, userID, date)
	if err != nil {
		return "", newError(KindStoreUnavailable, "Failed to check today's submission", err)
	}
	if exists {
		return "", newError(KindAlreadySubmitted, "Already submitted today", nil)
	}

	contentType := sub.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(sub.Image)
	}

	key := StorageKey(userID, now, sub.Filename)
	stored, err := s.blobs.Put(ctx, key, sub.Image, contentType, true)
	if err != nil {
		return "", newError(KindStorageFailure, "Failed to store image", err)
	}

	err = s.records.InsertLog(ctx, models.ExerciseLog{
		ID:       uuid.NewString(),
		UserID:   userID,
		Date:     date,
		ImageURL: stored,
		ThumbURL: stored,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateLog) {
			slog.Warn("concurrent submission lost the race, blob left in place",
				"user_id", userID, "date", date, "key", stored)
			return "", newError(KindAlreadySubmitted, "Already submitted today", err)
		}
		slog.Error("log insert failed after upload, blob left in place",
			"user_id", userID, "date", date, "key", stored, "error", err)
		return "", newError(KindPersistenceFailure, "Failed to record submission", err)
	}

	slog.Info("submission recorded",
		"user_id", userID,
		"date", date,
		"key", stored,
		"size", humanize.Bytes(uint64(len(sub.Image))),
	)

	return stored, nil
}

// StorageKey builds "{userID}/{unixMillis}_{filename}" with path
// separators stripped from both user-supplied parts.
func StorageKey(userID string, at time.Time, filename string) string {
	return fmt.Sprintf("%s/%d_%s", keySegment(userID, "user"), at.UnixMilli(), keySegment(filename, "upload"))
}

func keySegment(s, fallback string) string {
	s = path.Base(strings.ReplaceAll(s, `\`, "/"))
	if s == "." || s == ".." || s == "/" || s == "" {
		return fallback
	}
	return s
}
