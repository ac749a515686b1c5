package buddy

import (
	"context"

	"github.com/oggyb/golf-buddy/internal/app"
	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
	"github.com/oggyb/golf-buddy/internal/metrics"
	"github.com/oggyb/golf-buddy/internal/repository"
)

// Service implements buddy search and the buddy match state machine:
//
//	pending -> accepted | declined
//
// Both end states are terminal.
type Service struct {
	appCtx *app.AppContext
	store  *repository.Store
}

func NewBuddyService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx, store: appCtx.Store}
}

// Search returns every golfer matching all supplied filters.
//
// Example:
//
//	loc, lvl := "San Francisco", db.SkillIntermediate
//	svc.Search(ctx, repository.SearchFilters{Location: &loc, SkillLevel: &lvl})
func (s *Service) Search(ctx context.Context, f repository.SearchFilters) ([]db.User, error) {
	if err := s.appCtx.Validate(f); err != nil {
		return nil, err
	}
	return s.store.Users.Search(ctx, f)
}

// CreateMatch opens a pending request from requester to recipient.
//
// Behavior:
//   - Self requests are ErrSelfMatch.
//   - Both users must exist (ErrUserNotFound).
//   - Any earlier match on the pair, in either direction and any status,
//     is ErrDuplicateMatch. The pair unique index backs this up under races.
//   - The recipient's cached pending count is dropped.
func (s *Service) CreateMatch(ctx context.Context, requesterID, recipientID uint64) (*db.BuddyMatch, error) {
	if requesterID == recipientID {
		return nil, svcErr.ErrSelfMatch
	}

	n, err := s.store.Users.CountExisting(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if n != 2 {
		return nil, svcErr.ErrUserNotFound
	}

	exists, err := s.store.Matches.ExistsBetween(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, svcErr.ErrDuplicateMatch
	}

	m := db.BuddyMatch{RequesterID: requesterID, RecipientID: recipientID, Status: db.MatchPending}
	if err := s.store.Matches.Create(ctx, &m); err != nil {
		return nil, err
	}
	metrics.RecordMatchEvent("created")
	s.dropPendingCount(ctx, recipientID)
	return &m, nil
}

// UpdateMatchStatus resolves a pending match.
//
// Behavior:
//   - status must be accepted or declined.
//   - Only a pending match can move; anything else (including an unknown id)
//     is ErrMatchNotFoundOrNotPending.
//   - Accepting also gets-or-creates the pair's conversation in the same
//     transaction, so either both land or neither does.
func (s *Service) UpdateMatchStatus(ctx context.Context, matchID uint64, status db.MatchStatus) (*db.BuddyMatch, error) {
	if status != db.MatchAccepted && status != db.MatchDeclined {
		return nil, svcErr.InvalidArgument("status must be accepted or declined")
	}

	var (
		match       *db.BuddyMatch
		convCreated bool
	)
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		m, err := tx.Matches.ResolvePending(ctx, matchID, status)
		if err != nil {
			return err
		}
		match = m

		if status == db.MatchAccepted {
			_, created, err := tx.Conversations.GetOrCreate(ctx, m.RequesterID, m.RecipientID)
			if err != nil {
				return err
			}
			convCreated = created
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMatchEvent(string(status))
	if convCreated {
		metrics.RecordConversationCreated()
	}
	s.dropPendingCount(ctx, match.RecipientID)
	return match, nil
}

// ListMatches returns the user's sent and received matches in any status.
func (s *Service) ListMatches(ctx context.Context, userID uint64) ([]db.BuddyMatch, error) {
	return s.store.Matches.ListForUser(ctx, userID)
}

// CountPendingRequests returns how many requests await the user's answer.
// Cache-first strategy:
//  1. Attempts to read from Redis (buddy:pending:count:userID).
//  2. On a miss or Redis error, counts in the DB.
//  3. Writes the DB count back with the configured TTL.
func (s *Service) CountPendingRequests(ctx context.Context, userID uint64) (int64, error) {
	rc := s.appCtx.RedisCache

	n, ok, err := rc.GetPendingCount(ctx, userID)
	switch {
	case err != nil:
		metrics.RecordCacheLookup("pending_count", "error")
		s.appCtx.Logger.Warn("pending count cache read failed", "user_id", userID, "err", err)
	case ok:
		metrics.RecordCacheLookup("pending_count", "hit")
		return n, nil
	default:
		metrics.RecordCacheLookup("pending_count", "miss")
	}

	count, err := s.store.Matches.CountPendingForRecipient(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := rc.SetPendingCount(ctx, userID, count); err != nil {
		s.appCtx.Logger.Warn("pending count cache write failed", "user_id", userID, "err", err)
	}
	return count, nil
}

func (s *Service) dropPendingCount(ctx context.Context, userID uint64) {
	if err := s.appCtx.RedisCache.InvalidatePendingCount(ctx, userID); err != nil {
		s.appCtx.Logger.Warn("failed to invalidate pending count", "user_id", userID, "err", err)
	}
}
