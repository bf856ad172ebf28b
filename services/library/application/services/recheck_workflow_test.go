package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/testsuite"

	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/services/library/domain/models"
)

func TestRecheckFavoritesWorkflow(t *testing.T) {
	f := newFixture()
	f.avail.available["zenflow.io"] = true
	owner := uuid.New()
	ctx := context.Background()
	_, _ = f.svc.ToggleFavorite(ctx, owner, "zenflow.io", "pending")
	_, _ = f.svc.ToggleFavorite(ctx, owner, "love.com", "available")

	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterActivity(NewRecheckActivities(f.svc))

	env.ExecuteWorkflow(RecheckFavoritesWorkflow, RecheckInput{OwnerID: owner})

	if !env.IsWorkflowCompleted() {
		t.Fatal("workflow did not complete")
	}
	if err := env.GetWorkflowError(); err != nil {
		t.Fatalf("workflow error: %v", err)
	}

	var res RecheckResult
	if err := env.GetWorkflowResult(&res); err != nil {
		t.Fatalf("GetWorkflowResult: %v", err)
	}
	if res.Checked != 2 || res.Available != 1 {
		t.Fatalf("unexpected result %+v", res)
	}

	favs, _ := f.favorites.List(ctx, owner)
	for _, fav := range favs {
		want := models.FavoriteTaken
		if fav.Domain == "zenflow.io" {
			want = models.FavoriteAvailable
		}
		if fav.Status != want {
			t.Errorf("%s status = %q, want %q", fav.Domain, fav.Status, want)
		}
	}
}

func TestRecheckFavoritesWorkflow_NoFavorites(t *testing.T) {
	svc := NewLibraryService(newMemHistory(), newMemFavorites(), &fixedRechecker{}, logger.Discard())

	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterActivity(NewRecheckActivities(svc))

	env.ExecuteWorkflow(RecheckFavoritesWorkflow, RecheckInput{OwnerID: uuid.New()})

	if err := env.GetWorkflowError(); err != nil {
		t.Fatalf("workflow error: %v", err)
	}
	var res RecheckResult
	_ = env.GetWorkflowResult(&res)
	if res.Checked != 0 {
		t.Fatalf("expected nothing checked, got %+v", res)
	}
}

// fakeTemporal starts one run per workflow ID and rejects a second start
// unless the caller asked to attach to the existing run.
type fakeTemporal struct {
	client.Client

	mu      sync.Mutex
	running map[string]*fakeRun
	opts    []client.StartWorkflowOptions
	calls   chan struct{}
	release chan struct{}
}

func newFakeTemporal() *fakeTemporal {
	return &fakeTemporal{
		running: map[string]*fakeRun{},
		calls:   make(chan struct{}, 8),
		release: make(chan struct{}),
	}
}

func (f *fakeTemporal) ExecuteWorkflow(_ context.Context, opts client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
	f.mu.Lock()
	defer func() {
		f.mu.Unlock()
		f.calls <- struct{}{}
	}()
	f.opts = append(f.opts, opts)
	if r, ok := f.running[opts.ID]; ok {
		if opts.WorkflowIDConflictPolicy == enumspb.WORKFLOW_ID_CONFLICT_POLICY_USE_EXISTING {
			return r, nil
		}
		return nil, errors.New("workflow execution already started")
	}
	r := &fakeRun{id: opts.ID, done: f.release}
	f.running[opts.ID] = r
	return r, nil
}

type fakeRun struct {
	client.WorkflowRun
	id   string
	done chan struct{}
}

func (r *fakeRun) GetID() string { return r.id }

func (r *fakeRun) Get(ctx context.Context, valuePtr interface{}) error {
	select {
	case <-r.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	if res, ok := valuePtr.(*RecheckResult); ok {
		*res = RecheckResult{Checked: 1}
	}
	return nil
}

func TestRecheckFavorites_ConcurrentRequestsShareWorkflow(t *testing.T) {
	tc := newFakeTemporal()
	f := newFixture(WithTemporal(tc, "domainogen"))
	owner := uuid.New()
	ctx := context.Background()
	_, _ = f.svc.ToggleFavorite(ctx, owner, "zenflow.io", "pending")

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.RecheckFavorites(ctx, owner)
		}(i)
	}
	<-tc.calls
	<-tc.calls
	close(tc.release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("request %d: unexpected error: %v", i, err)
		}
	}
	if len(tc.running) != 1 {
		t.Fatalf("expected one workflow run, got %d", len(tc.running))
	}
	for _, o := range tc.opts {
		if o.ID != recheckWorkflowID(owner) || o.TaskQueue != "domainogen" {
			t.Fatalf("unexpected start options %+v", o)
		}
	}
}
