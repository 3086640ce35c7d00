package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/salary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pendingRepo struct {
	salary.SalaryRepository
	pending []salary.Salary
	since   time.Time
}

func (r *pendingRepo) ListPendingSMS(_ context.Context, since time.Time) ([]salary.Salary, error) {
	r.since = since
	return r.pending, nil
}

type recordingSalaryService struct {
	salary.SalaryService
	failFor map[string]bool
	sent    []string
}

func (s *recordingSalaryService) SendSalarySMS(_ context.Context, id string) (salary.SalaryResponse, error) {
	if s.failFor[id] {
		return salary.SalaryResponse{}, errors.New("twilio down")
	}
	s.sent = append(s.sent, id)
	return salary.SalaryResponse{ID: id, SMSSent: true}, nil
}

func TestSendPendingSMSContinuesPastFailures(t *testing.T) {
	repo := &pendingRepo{pending: []salary.Salary{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	svc := &recordingSalaryService{failFor: map[string]bool{"b": true}}

	jobs := NewSalaryJobs(repo, svc, 7)
	fixed := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	jobs.now = func() time.Time { return fixed }

	require.NoError(t, jobs.SendPendingSMS(context.Background()))
	assert.Equal(t, []string{"a", "c"}, svc.sent)
	assert.Equal(t, fixed.Add(-7*24*time.Hour), repo.since)
}

func TestSchedulerRunOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	require.NoError(t, s.AddJob("count", "@every 1h", func(context.Context) error {
		calls++
		return nil
	}))

	s.RunOnce(context.Background())
	assert.Equal(t, 1, calls)
}

func TestSchedulerRejectsInvalidSpec(t *testing.T) {
	s := NewScheduler()
	err := s.AddJob("bad", "not a spec", func(context.Context) error { return nil })
	assert.Error(t, err)
}
