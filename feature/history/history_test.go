package history

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"botc-assets/core/database"
	"botc-assets/core/pipeline"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func report(id string, started time.Time, outcomes ...pipeline.Outcome) pipeline.Report {
	r := pipeline.Report{RunID: id, StartedAt: started, FinishedAt: started.Add(time.Minute)}
	for i, o := range outcomes {
		s := pipeline.Summary{
			Category:   []string{"json", "icons", "all-scripts"}[i%3],
			Outcome:    o,
			Downloaded: i + 1,
			States:     []pipeline.State{pipeline.StateNotStarted, pipeline.StateMerging},
			Duration:   1500 * time.Millisecond,
		}
		if o == pipeline.OutcomeFailed {
			s.Err = errors.New("catalog unavailable")
		}
		r.Summaries = append(r.Summaries, s)
	}
	return r
}

func TestRepository_RecordAndList(t *testing.T) {
	repo := setupSQLite(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, report("run-1", base, pipeline.OutcomeDone, pipeline.OutcomeNothingToDo)))
	require.NoError(t, repo.Record(ctx, report("run-2", base.Add(time.Hour), pipeline.OutcomeDone, pipeline.OutcomeDone, pipeline.OutcomeFailed)))

	runs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.True(t, runs[0].Failed)
	require.Len(t, runs[0].Categories, 3)
	assert.Equal(t, "all-scripts", runs[0].Categories[2].Category)
	assert.Equal(t, "catalog unavailable", runs[0].Categories[2].Error)
	assert.Equal(t, "not_started,merging", runs[0].Categories[0].States)
	assert.Equal(t, int64(1500), runs[0].Categories[0].DurationMs)
	assert.False(t, runs[1].Failed)

	runs, err = repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	run, err := repo.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, run.Categories, 2)

	_, err = repo.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRepository_RecordError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `runs`")).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := NewRepository(db).Record(context.Background(), report("run-1", time.Now(), pipeline.OutcomeDone))
	assert.ErrorContains(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `runs`")).WillReturnError(errors.New("gone away"))

	_, err := NewRepository(db).List(context.Background(), 0)
	assert.ErrorContains(t, err, "gone away")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunnerRecordsHistory(t *testing.T) {
	repo := setupSQLite(t)
	runner := pipeline.NewRunner(zap.NewNop(), repo)
	r := runner.Run(context.Background(), nil)

	run, err := repo.Get(context.Background(), r.RunID)
	require.NoError(t, err)
	assert.False(t, run.Failed)
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]Run{
		FromReport(report("0123456789", time.Now(), pipeline.OutcomeDone, pipeline.OutcomeFailed)),
		{ID: "empty"},
	})
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "icons")
	assert.Contains(t, out, "empty")
}

func TestHandler(t *testing.T) {
	repo := setupSQLite(t)
	require.NoError(t, repo.Record(context.Background(), report("run-1", time.Now(), pipeline.OutcomeDone)))

	app := fiber.New()
	feature := NewFeature(repo, zap.NewNop())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/history?limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	var runs []Run
	require.NoError(t, json.Unmarshal(body, &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "json", runs[0].Categories[0].Category)

	resp, err = app.Test(httptest.NewRequest("GET", "/history/run-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/history/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFeature_DisabledWithoutRepository(t *testing.T) {
	assert.False(t, NewFeature(nil, zap.NewNop()).IsEnabled())
}
