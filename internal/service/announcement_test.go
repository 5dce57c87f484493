package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/internal/service"
	"github.com/skala-ium/events/internal/service/mocks"
	"github.com/skala-ium/events/pkg/logger"
)

var testTopics = service.Topics{
	Assignments: "assignment-events",
	Submissions: "submission-events",
	Reminders:   "assignment-reminders",
}

type announcementFixture struct {
	store     *memStore
	extractor *mocks.MockFieldExtractor
	publisher *mocks.MockEventPublisher
	ingester  *service.AnnouncementIngester
}

func newAnnouncementFixture(t *testing.T) *announcementFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := logger.NewNop()
	f := &announcementFixture{
		store:     newMemStore(),
		extractor: mocks.NewMockFieldExtractor(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}
	f.ingester = service.NewAnnouncementIngester(
		f.store,
		f.extractor,
		service.NewIdentityResolver(log),
		f.publisher,
		testTopics,
		service.AnnouncementConfig{Location: time.UTC, DefaultDeadlineDays: 7},
		log,
	)
	return f
}

func announcementEvent(ts, text string) *domain.SlackEvent {
	return &domain.SlackEvent{
		EventID:   "Ev" + ts,
		EventType: "message",
		ChannelID: "C1",
		UserID:    "UPROF",
		Text:      &text,
		TS:        ts,
	}
}

func TestAnnouncementIngest(t *testing.T) {
	t.Run("PersistsAssignmentAndRequirements", func(t *testing.T) {
		f := newAnnouncementFixture(t)
		prof := f.store.addProfessor("UPROF")
		class := f.store.addClass("C1")

		f.extractor.EXPECT().Extract(gomock.Any(), "HW1 due 4/15").Return(&domain.ExtractedAnnouncement{
			Title:        "HW1",
			Content:      "HW1 due 4/15",
			Deadline:     strPtr("2024-04-15"),
			Topic:        "ML",
			Requirements: []string{"report", " ", "code"},
		}, nil)
		f.publisher.EXPECT().
			Send(gomock.Any(), "assignment-events", gomock.Any(), gomock.AssignableToTypeOf(domain.AssignmentCreatedEvent{})).
			Return(nil)

		id, err := f.ingester.Ingest(context.Background(), announcementEvent("1712000000.000100", "HW1 due 4/15"))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		stored := f.store.state.assignments["1712000000.000100"]
		assert.Equal(t, id, stored.ID)
		assert.Equal(t, "HW1", stored.Title)
		assert.Equal(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), stored.Deadline)
		require.NotNil(t, stored.ProfessorID)
		assert.Equal(t, prof.ID, *stored.ProfessorID)
		require.NotNil(t, stored.ClassID)
		assert.Equal(t, class.ID, *stored.ClassID)
		require.NotNil(t, stored.SlackChannelID)
		assert.Equal(t, "C1", *stored.SlackChannelID)

		reqs := f.store.state.requirements[id]
		require.Len(t, reqs, 2)
		assert.Equal(t, "report", reqs[0].Content)
		assert.Equal(t, "code", reqs[1].Content)
	})

	t.Run("DefaultDeadlineWithoutOwner", func(t *testing.T) {
		f := newAnnouncementFixture(t)

		f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(&domain.ExtractedAnnouncement{
			Title:        "Project",
			Content:      "Project",
			Topic:        "web",
			Requirements: []string{},
		}, nil)
		f.publisher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.ingester.Ingest(context.Background(), announcementEvent("1714000000.000100", "Project"))
		require.NoError(t, err)

		stored := f.store.state.assignments["1714000000.000100"]
		// 1714000000 is 2024-04-24T23:06:40Z.
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), stored.Deadline)
		assert.Nil(t, stored.ProfessorID)
		assert.Nil(t, stored.ClassID)
	})

	t.Run("RedeliveryIsDuplicateAndSkipsExtractor", func(t *testing.T) {
		f := newAnnouncementFixture(t)

		f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Times(1).Return(&domain.ExtractedAnnouncement{
			Title: "HW", Content: "HW", Topic: "t", Requirements: []string{"a"},
		}, nil)
		f.publisher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil)

		ev := announcementEvent("1714000000.000100", "HW")
		_, err := f.ingester.Ingest(context.Background(), ev)
		require.NoError(t, err)

		_, err = f.ingester.Ingest(context.Background(), ev)
		assert.ErrorIs(t, err, service.ErrDuplicate)
		assert.Equal(t, 1, f.store.countAssignments())
		assert.Len(t, f.store.state.requirements, 1)
	})

	t.Run("LostRaceIsDuplicate", func(t *testing.T) {
		f := newAnnouncementFixture(t)
		f.store.racingAssignment = &domain.Assignment{ID: uuid.New(), SlackPostTS: "1714000000.000100", Title: "other"}

		f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(&domain.ExtractedAnnouncement{
			Title: "HW", Content: "HW", Topic: "t", Requirements: []string{"a"},
		}, nil)

		_, err := f.ingester.Ingest(context.Background(), announcementEvent("1714000000.000100", "HW"))
		assert.ErrorIs(t, err, service.ErrDuplicate)
		assert.Equal(t, 1, f.store.countAssignments())
		assert.Equal(t, "other", f.store.state.assignments["1714000000.000100"].Title)
	})

	t.Run("ExtractionFailureWritesNothing", func(t *testing.T) {
		f := newAnnouncementFixture(t)

		f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, errors.New("not json"))

		_, err := f.ingester.Ingest(context.Background(), announcementEvent("1714000000.000100", "hello"))
		assert.ErrorIs(t, err, service.ErrExtractionFailed)
		assert.Equal(t, 0, f.store.countAssignments())
		assert.Equal(t, 0, f.store.commits)
	})

	t.Run("EmptyText", func(t *testing.T) {
		f := newAnnouncementFixture(t)

		_, err := f.ingester.Ingest(context.Background(), announcementEvent("1714000000.000100", "   "))
		assert.ErrorIs(t, err, service.ErrEmptyText)

		ev := announcementEvent("1714000000.000200", "")
		ev.Text = nil
		_, err = f.ingester.Ingest(context.Background(), ev)
		assert.ErrorIs(t, err, service.ErrEmptyText)
		assert.Equal(t, 0, f.store.countAssignments())
	})

	t.Run("PublishFailureDoesNotFailIngest", func(t *testing.T) {
		f := newAnnouncementFixture(t)

		f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(&domain.ExtractedAnnouncement{
			Title: "HW", Content: "HW", Topic: "t", Requirements: []string{},
		}, nil)
		f.publisher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := f.ingester.Ingest(context.Background(), announcementEvent("1714000000.000100", "HW"))
		require.NoError(t, err)
		assert.Equal(t, 1, f.store.countAssignments())
	})

	t.Run("BeginFailure", func(t *testing.T) {
		f := newAnnouncementFixture(t)
		f.store.beginErr = errors.New("pool exhausted")

		f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(&domain.ExtractedAnnouncement{
			Title: "HW", Content: "HW", Topic: "t", Requirements: []string{},
		}, nil)

		_, err := f.ingester.Ingest(context.Background(), announcementEvent("1714000000.000100", "HW"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrDuplicate)
		assert.NotErrorIs(t, err, service.ErrExtractionFailed)
	})
}
