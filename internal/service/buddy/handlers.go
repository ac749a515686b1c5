package buddy

import (
	"context"

	"github.com/oggyb/golf-buddy/internal/api"
	"github.com/oggyb/golf-buddy/internal/db"
	"github.com/oggyb/golf-buddy/internal/repository"
)

// Handlers adapts Service to api.BuddyServiceServer.
type Handlers struct {
	svc *Service
}

var _ api.BuddyServiceServer = (*Handlers)(nil)

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

func (h *Handlers) SearchBuddies(ctx context.Context, req *api.SearchBuddiesRequest) (*api.UsersResponse, error) {
	f := repository.SearchFilters{
		Location:        req.Location,
		MaxHandicapDiff: req.MaxHandicapDiff,
		CourseID:        req.CourseID,
	}
	if req.SkillLevel != nil {
		lvl := db.SkillLevel(*req.SkillLevel)
		f.SkillLevel = &lvl
	}
	if req.TimePreference != nil {
		pref := db.TimePreference(*req.TimePreference)
		f.TimePreference = &pref
	}

	users, err := h.svc.Search(ctx, f)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "SearchBuddies", err)
	}
	return &api.UsersResponse{Users: api.FromUsers(users)}, nil
}

func (h *Handlers) CreateBuddyMatch(ctx context.Context, req *api.CreateBuddyMatchRequest) (*api.BuddyMatch, error) {
	m, err := h.svc.CreateMatch(ctx, req.RequesterID, req.RecipientID)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "CreateBuddyMatch", err)
	}
	out := api.FromBuddyMatch(*m)
	return &out, nil
}

func (h *Handlers) UpdateBuddyMatchStatus(ctx context.Context, req *api.UpdateBuddyMatchStatusRequest) (*api.BuddyMatch, error) {
	m, err := h.svc.UpdateMatchStatus(ctx, req.MatchID, db.MatchStatus(req.Status))
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "UpdateBuddyMatchStatus", err)
	}
	out := api.FromBuddyMatch(*m)
	return &out, nil
}

func (h *Handlers) GetBuddyMatches(ctx context.Context, req *api.GetBuddyMatchesRequest) (*api.BuddyMatchesResponse, error) {
	matches, err := h.svc.ListMatches(ctx, req.UserID)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "GetBuddyMatches", err)
	}
	return &api.BuddyMatchesResponse{Matches: api.FromBuddyMatches(matches)}, nil
}

func (h *Handlers) CountPendingBuddyMatches(ctx context.Context, req *api.CountPendingBuddyMatchesRequest) (*api.CountResponse, error) {
	n, err := h.svc.CountPendingRequests(ctx, req.UserID)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "CountPendingBuddyMatches", err)
	}
	return &api.CountResponse{Count: n}, nil
}
