package services

import (
	"testing"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) TaskService {
	t.Helper()
	return NewTaskService(repository.NewTaskRepository(newTestDB(t)))
}

func mustCreate(t *testing.T, svc TaskService, kind string, date time.Time, item string, priority int) *models.Task {
	t.Helper()
	task, err := svc.CreateTask(CreateTaskInput{
		Kind:      kind,
		Date:      date,
		ItemName:  item,
		TargetQty: 10,
		Priority:  priority,
	})
	require.NoError(t, err)
	return task
}

func TestCreateTaskDefaults(t *testing.T) {
	svc := newTaskService(t)

	created, err := svc.CreateTask(CreateTaskInput{
		Kind:      string(models.KindProduction),
		Date:      time.Date(2026, 9, 1, 15, 30, 0, 0, time.Local),
		ItemName:  "bottle-500ml",
		TargetQty: 120,
		Priority:  2,
		Notes:     "rush order",
	})
	require.NoError(t, err)

	// Round trip: fetching by id returns the same fields with ready=0, pending.
	got, err := svc.GetTaskByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bottle-500ml", got.ItemName)
	assert.Equal(t, 120, got.TargetQty)
	assert.Equal(t, 2, got.Priority)
	assert.Equal(t, "rush order", got.Notes)
	assert.Equal(t, 0, got.ReadyQty)
	assert.Equal(t, string(models.StatusPending), got.Status)
	// Time-of-day is stripped on create.
	assert.Equal(t, "2026-09-01", got.Date.Format("2006-01-02"))
}

func TestCreateTaskValidation(t *testing.T) {
	svc := newTaskService(t)

	_, err := svc.CreateTask(CreateTaskInput{Kind: "shipping", Date: time.Now(), ItemName: "x", TargetQty: 1})
	assert.Error(t, err)

	_, err = svc.CreateTask(CreateTaskInput{Kind: string(models.KindProduction), Date: time.Now(), TargetQty: 1})
	assert.Error(t, err)

	_, err = svc.CreateTask(CreateTaskInput{Kind: string(models.KindProduction), Date: time.Now(), ItemName: "x", TargetQty: 0})
	assert.Error(t, err)

	_, err = svc.CreateTask(CreateTaskInput{Kind: string(models.KindProduction), Date: time.Now(), ItemName: "x", TargetQty: 1, Priority: 4})
	assert.Error(t, err)
}

func TestCreateTaskIgnoresPackingFieldsForProduction(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.CreateTask(CreateTaskInput{
		Kind:      string(models.KindProduction),
		Date:      time.Now(),
		ItemName:  "jar-1l",
		TargetQty: 5,
		BoxType:   "B-7",
		PartyName: "Acme",
	})
	require.NoError(t, err)
	assert.Empty(t, task.BoxType)
	assert.Empty(t, task.PartyName)
}

func TestBucketsByCalendarDay(t *testing.T) {
	svc := newTaskService(t)
	today := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	old := mustCreate(t, svc, string(models.KindProduction), today.AddDate(0, 0, -3), "old", 2)
	// Dated exactly today, lowest priority: still lands in "today".
	due := mustCreate(t, svc, string(models.KindProduction), today, "due", 3)
	future := mustCreate(t, svc, string(models.KindProduction), today.AddDate(0, 0, 2), "future", 1)

	buckets, err := svc.Buckets(string(models.KindProduction), today)
	require.NoError(t, err)

	require.Len(t, buckets.Backlog, 1)
	require.Len(t, buckets.Today, 1)
	require.Len(t, buckets.Upcoming, 1)
	assert.Equal(t, old.ID, buckets.Backlog[0].ID)
	assert.Equal(t, due.ID, buckets.Today[0].ID)
	assert.Equal(t, future.ID, buckets.Upcoming[0].ID)
}

func TestBucketsExcludeCompleteTasks(t *testing.T) {
	svc := newTaskService(t)
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	done := mustCreate(t, svc, string(models.KindPacking), today, "done", 1)
	open := mustCreate(t, svc, string(models.KindPacking), today, "open", 1)
	require.NoError(t, svc.UpdateProgress(done.ID, 10, string(models.StatusComplete)))

	buckets, err := svc.Buckets(string(models.KindPacking), today)
	require.NoError(t, err)

	assert.Empty(t, buckets.Backlog)
	assert.Empty(t, buckets.Upcoming)
	require.Len(t, buckets.Today, 1)
	assert.Equal(t, open.ID, buckets.Today[0].ID)
}

func TestBucketsSortedByPriorityThenDate(t *testing.T) {
	svc := newTaskService(t)
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	late := mustCreate(t, svc, string(models.KindProduction), today.AddDate(0, 0, -1), "low-old", 3)
	urgent := mustCreate(t, svc, string(models.KindProduction), today.AddDate(0, 0, -1), "urgent", 1)
	older := mustCreate(t, svc, string(models.KindProduction), today.AddDate(0, 0, -5), "urgent-older", 1)

	buckets, err := svc.Buckets(string(models.KindProduction), today)
	require.NoError(t, err)

	require.Len(t, buckets.Backlog, 3)
	assert.Equal(t, older.ID, buckets.Backlog[0].ID)
	assert.Equal(t, urgent.ID, buckets.Backlog[1].ID)
	assert.Equal(t, late.ID, buckets.Backlog[2].ID)
}

func TestUpdateProgressOverwritesBothFields(t *testing.T) {
	svc := newTaskService(t)
	task := mustCreate(t, svc, string(models.KindProduction), time.Now(), "widget", 2)

	require.NoError(t, svc.UpdateProgress(task.ID, 40, string(models.StatusInProgress)))
	got, err := svc.GetTaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.ReadyQty)
	assert.Equal(t, string(models.StatusInProgress), got.Status)

	// No transition rules: complete can be reopened.
	require.NoError(t, svc.UpdateProgress(task.ID, 100, string(models.StatusComplete)))
	require.NoError(t, svc.UpdateProgress(task.ID, 60, string(models.StatusHold)))
	got, err = svc.GetTaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.ReadyQty)
	assert.Equal(t, string(models.StatusHold), got.Status)

	// Ready beyond target is allowed; negative is not.
	require.NoError(t, svc.UpdateProgress(task.ID, 999, string(models.StatusInProgress)))
	assert.Error(t, svc.UpdateProgress(task.ID, -1, string(models.StatusInProgress)))
	assert.Error(t, svc.UpdateProgress(task.ID, 5, "shipped"))
}

func TestDeleteTaskLeavesOthersUntouched(t *testing.T) {
	svc := newTaskService(t)
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	first := mustCreate(t, svc, string(models.KindProduction), today, "first", 1)
	second := mustCreate(t, svc, string(models.KindProduction), today, "second", 2)
	third := mustCreate(t, svc, string(models.KindProduction), today, "third", 3)

	require.NoError(t, svc.DeleteTask(second.ID))

	buckets, err := svc.Buckets(string(models.KindProduction), today)
	require.NoError(t, err)
	require.Len(t, buckets.Today, 2)
	assert.Equal(t, first.ID, buckets.Today[0].ID)
	assert.Equal(t, third.ID, buckets.Today[1].ID)
}
