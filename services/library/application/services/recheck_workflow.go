package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/kenone20/domainogen/services/library/domain/models"
)

// RecheckInput is the input of RecheckFavoritesWorkflow.
type RecheckInput struct {
	OwnerID uuid.UUID `json:"owner_id"`
}

// RecheckResult summarizes one re-check run.
type RecheckResult struct {
	Checked   int `json:"checked"`
	Available int `json:"available"`
}

// StoreStatusesInput is the input of RecheckActivities.StoreStatuses.
type StoreStatusesInput struct {
	OwnerID  uuid.UUID       `json:"owner_id"`
	Verdicts map[string]bool `json:"verdicts"`
}

// RecheckFavoritesWorkflow lists an owner's favorites, re-checks their
// availability and stores the fresh statuses.
func RecheckFavoritesWorkflow(ctx workflow.Context, in RecheckInput) (RecheckResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	})

	var acts *RecheckActivities

	var names []string
	if err := workflow.ExecuteActivity(ctx, acts.ListFavoriteDomains, in.OwnerID).Get(ctx, &names); err != nil {
		return RecheckResult{}, err
	}
	if len(names) == 0 {
		return RecheckResult{}, nil
	}

	var verdicts map[string]bool
	if err := workflow.ExecuteActivity(ctx, acts.RecheckDomains, names).Get(ctx, &verdicts); err != nil {
		return RecheckResult{}, err
	}

	store := StoreStatusesInput{OwnerID: in.OwnerID, Verdicts: verdicts}
	if err := workflow.ExecuteActivity(ctx, acts.StoreStatuses, store).Get(ctx, nil); err != nil {
		return RecheckResult{}, err
	}

	res := RecheckResult{Checked: len(verdicts)}
	for _, ok := range verdicts {
		if ok {
			res.Available++
		}
	}
	return res, nil
}

// RecheckActivities are the steps of RecheckFavoritesWorkflow. The worker
// registers them; the API runs them inline when Temporal is disabled.
type RecheckActivities struct {
	svc *LibraryService
}

// NewRecheckActivities returns the activities backed by svc.
func NewRecheckActivities(svc *LibraryService) *RecheckActivities {
	return &RecheckActivities{svc: svc}
}

// ListFavoriteDomains returns the names of the owner's favorites.
func (a *RecheckActivities) ListFavoriteDomains(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	favs, err := a.svc.favorites.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	names := make([]string, len(favs))
	for i, f := range favs {
		names[i] = f.Domain
	}
	return names, nil
}

// RecheckDomains re-evaluates availability for names.
func (a *RecheckActivities) RecheckDomains(ctx context.Context, names []string) (map[string]bool, error) {
	if len(names) == 0 {
		return map[string]bool{}, nil
	}
	return a.svc.avail.Recheck(ctx, names), nil
}

// StoreStatuses writes each verdict back to its favorite.
func (a *RecheckActivities) StoreStatuses(ctx context.Context, in StoreStatusesInput) error {
	for name, available := range in.Verdicts {
		if err := a.svc.favorites.UpdateStatus(ctx, in.OwnerID, name, models.StatusOf(available)); err != nil {
			return fmt.Errorf("store status of %s: %w", name, err)
		}
	}
	return nil
}
