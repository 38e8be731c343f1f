package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mzhakenov/go-goal-keeper/internal/mock"
)

// fakeWorker записывает порядок запуска в общий срез.
type fakeWorker struct {
	name  string
	order *[]string
}

func (w *fakeWorker) Run() {
	*w.order = append(*w.order, w.name)
}

func TestWorkers_RunsAllInRegistrationOrder(t *testing.T) {
	var order []string
	w := NewWorkers(
		&fakeWorker{name: "first", order: &order},
		&fakeWorker{name: "second", order: &order},
		&fakeWorker{name: "third", order: &order},
	)

	w.Run()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestWorkers_EmptyAggregateIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWorkers().Run()
	})
}

func TestRefreshJobWorker_StartsJobWithInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := mock.NewMockClientRefreshJob(ctrl)

	ctx := context.Background()
	job.EXPECT().Start(ctx, 30*time.Second)

	worker := NewRefreshJobWorker(ctx, job, 30*time.Second)
	worker.Run()
}
