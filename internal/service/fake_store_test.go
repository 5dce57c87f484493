package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/internal/errdefs"
	"github.com/skala-ium/events/internal/service"
)

type memState struct {
	assignments  map[string]domain.Assignment
	requirements map[uuid.UUID][]domain.AssignmentRequirement
	students     map[string]domain.Student
	submissions  map[[2]uuid.UUID]domain.Submission
	professors   map[string]domain.Professor
	classes      map[string]domain.Class
}

func (s memState) clone() memState {
	c := memState{
		assignments:  make(map[string]domain.Assignment, len(s.assignments)),
		requirements: make(map[uuid.UUID][]domain.AssignmentRequirement, len(s.requirements)),
		students:     make(map[string]domain.Student, len(s.students)),
		submissions:  make(map[[2]uuid.UUID]domain.Submission, len(s.submissions)),
		professors:   s.professors,
		classes:      s.classes,
	}
	for k, v := range s.assignments {
		c.assignments[k] = v
	}
	for k, v := range s.requirements {
		c.requirements[k] = append([]domain.AssignmentRequirement(nil), v...)
	}
	for k, v := range s.students {
		c.students[k] = v
	}
	for k, v := range s.submissions {
		c.submissions[k] = v
	}
	return c
}

// memStore is an in-memory IngestStore. Each transaction works on a copy of
// the committed state that replaces it on Commit.
type memStore struct {
	state   memState
	commits int

	beginErr error
	// racingStudent is committed by "another worker" right before the
	// placeholder insert of the next transaction.
	racingStudent *domain.Student
	// racingAssignment is committed right before the next assignment insert.
	racingAssignment *domain.Assignment
}

func newMemStore() *memStore {
	return &memStore{state: memState{
		assignments:  map[string]domain.Assignment{},
		requirements: map[uuid.UUID][]domain.AssignmentRequirement{},
		students:     map[string]domain.Student{},
		submissions:  map[[2]uuid.UUID]domain.Submission{},
		professors:   map[string]domain.Professor{},
		classes:      map[string]domain.Class{},
	}}
}

func (m *memStore) GetAssignmentBySlackPostTS(_ context.Context, ts string) (*domain.Assignment, error) {
	a, ok := m.state.assignments[ts]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &a, nil
}

func (m *memStore) BeginIngestTx(context.Context) (service.IngestTx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	return &memTx{store: m, state: m.state.clone()}, nil
}

func (m *memStore) addProfessor(slackUserID string) domain.Professor {
	p := domain.Professor{ID: uuid.New(), Name: "prof", SlackUserID: slackUserID}
	m.state.professors[slackUserID] = p
	return p
}

func (m *memStore) addClass(channelID string) domain.Class {
	c := domain.Class{ID: uuid.New(), Name: "class", Group: "A", SlackChannelID: &channelID}
	m.state.classes[channelID] = c
	return c
}

func (m *memStore) addAssignment(ts string) domain.Assignment {
	a := domain.Assignment{ID: uuid.New(), Title: "existing", SlackPostTS: ts, Deadline: time.Now()}
	m.state.assignments[ts] = a
	return a
}

func (m *memStore) countAssignments() int { return len(m.state.assignments) }
func (m *memStore) countStudents() int    { return len(m.state.students) }
func (m *memStore) countSubmissions() int { return len(m.state.submissions) }

type memTx struct {
	store     *memStore
	state     memState
	done      bool
	rollbacks int
}

func (t *memTx) GetAssignmentBySlackPostTS(_ context.Context, ts string) (*domain.Assignment, error) {
	a, ok := t.state.assignments[ts]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &a, nil
}

func (t *memTx) CreateAssignment(_ context.Context, a *domain.Assignment) error {
	if r := t.store.racingAssignment; r != nil {
		t.store.racingAssignment = nil
		t.store.state.assignments[r.SlackPostTS] = *r
	}
	if _, ok := t.store.state.assignments[a.SlackPostTS]; ok {
		return errdefs.ErrAlreadyExists
	}
	if _, ok := t.state.assignments[a.SlackPostTS]; ok {
		return errdefs.ErrAlreadyExists
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	t.state.assignments[a.SlackPostTS] = *a
	return nil
}

func (t *memTx) CreateRequirements(_ context.Context, assignmentID uuid.UUID, contents []string) ([]domain.AssignmentRequirement, error) {
	out := make([]domain.AssignmentRequirement, 0, len(contents))
	for _, c := range contents {
		out = append(out, domain.AssignmentRequirement{ID: uuid.New(), AssignmentID: assignmentID, Content: c})
	}
	t.state.requirements[assignmentID] = append(t.state.requirements[assignmentID], out...)
	return out, nil
}

func (t *memTx) GetProfessorBySlackUserID(_ context.Context, id string) (*domain.Professor, error) {
	p, ok := t.state.professors[id]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &p, nil
}

func (t *memTx) GetClassBySlackChannelID(_ context.Context, id string) (*domain.Class, error) {
	c, ok := t.state.classes[id]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &c, nil
}

func (t *memTx) GetStudentBySlackUserID(_ context.Context, id string) (*domain.Student, error) {
	if s, ok := t.state.students[id]; ok {
		return &s, nil
	}
	// Rows committed by other transactions are visible to new statements.
	if s, ok := t.store.state.students[id]; ok {
		return &s, nil
	}
	return nil, errdefs.ErrNotFound
}

func (t *memTx) CreatePlaceholderStudent(_ context.Context, id string) (*domain.Student, error) {
	if r := t.store.racingStudent; r != nil {
		t.store.racingStudent = nil
		t.store.state.students[r.SlackUserID] = *r
	}
	if _, ok := t.store.state.students[id]; ok {
		return nil, errdefs.ErrAlreadyExists
	}
	if _, ok := t.state.students[id]; ok {
		return nil, errdefs.ErrAlreadyExists
	}
	password := domain.PlaceholderPassword
	s := domain.Student{
		ID:          uuid.New(),
		Name:        domain.PlaceholderStudentName(id),
		SlackUserID: id,
		Password:    &password,
	}
	t.state.students[id] = s
	return &s, nil
}

func (t *memTx) GetSubmission(_ context.Context, studentID, assignmentID uuid.UUID) (*domain.Submission, error) {
	s, ok := t.state.submissions[[2]uuid.UUID{studentID, assignmentID}]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &s, nil
}

func (t *memTx) CreateSubmission(_ context.Context, s *domain.Submission) error {
	key := [2]uuid.UUID{s.StudentID, s.AssignmentID}
	if _, ok := t.state.submissions[key]; ok {
		return errdefs.ErrAlreadyExists
	}
	s.ID = uuid.New()
	s.SubmittedAt = time.Now()
	t.state.submissions[key] = *s
	return nil
}

func (t *memTx) Commit(context.Context) error {
	if t.done {
		return errors.New("tx closed")
	}
	t.done = true
	// Keep rows other transactions committed meanwhile.
	for k, v := range t.store.state.students {
		if _, ok := t.state.students[k]; !ok {
			t.state.students[k] = v
		}
	}
	for k, v := range t.store.state.assignments {
		if _, ok := t.state.assignments[k]; !ok {
			t.state.assignments[k] = v
		}
	}
	t.store.state = t.state
	t.store.commits++
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	t.rollbacks++
	t.done = true
	return nil
}
