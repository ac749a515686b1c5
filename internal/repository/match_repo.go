package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
)

// BuddyMatchRepository provides data access for buddy requests.
type BuddyMatchRepository struct {
	db *gorm.DB
}

func NewBuddyMatchRepository(database *gorm.DB) *BuddyMatchRepository {
	return &BuddyMatchRepository{db: database}
}

// ExistsBetween reports whether any match, in either direction and any
// status, exists for the unordered pair {a, b}.
func (r *BuddyMatchRepository) ExistsBetween(ctx context.Context, a, b uint64) (bool, error) {
	lo, hi := db.NormalizePair(a, b)
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.BuddyMatch{}).
		Where("pair_low = ? AND pair_high = ?", lo, hi).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check match: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new match. Losing a race against the reverse request
// trips the pair index and is reported as ErrDuplicateMatch.
func (r *BuddyMatchRepository) Create(ctx context.Context, m *db.BuddyMatch) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicate(err) {
			return svcErr.Wrap(svcErr.ErrDuplicateMatch, err)
		}
		return fmt.Errorf("create match: %w", err)
	}
	return nil
}

// ResolvePending moves a pending match to status and returns the updated row.
//
// Behavior:
//   - The update is conditional on status = 'pending', so of two concurrent
//     callers exactly one wins.
//   - A missing id and an already resolved match are the same failure:
//     ErrMatchNotFoundOrNotPending.
//
// Example:
//
//	m, err := repo.ResolvePending(ctx, 12, db.MatchAccepted)
func (r *BuddyMatchRepository) ResolvePending(ctx context.Context, id uint64, status db.MatchStatus) (*db.BuddyMatch, error) {
	res := r.db.WithContext(ctx).
		Model(&db.BuddyMatch{}).
		Where("id = ? AND status = ?", id, db.MatchPending).
		Updates(map[string]any{
			"status":     status,
			"updated_at": r.db.NowFunc(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update match: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, svcErr.ErrMatchNotFoundOrNotPending
	}

	var m db.BuddyMatch
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("reload match: %w", err)
	}
	return &m, nil
}

// ListForUser returns every match the user sent or received, any status.
func (r *BuddyMatchRepository) ListForUser(ctx context.Context, userID uint64) ([]db.BuddyMatch, error) {
	var matches []db.BuddyMatch
	err := r.db.WithContext(ctx).
		Where("requester_id = ? OR recipient_id = ?", userID, userID).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// CountPendingForRecipient counts incoming requests still awaiting an answer.
func (r *BuddyMatchRepository) CountPendingForRecipient(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.BuddyMatch{}).
		Where("recipient_id = ? AND status = ?", userID, db.MatchPending).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count pending matches: %w", err)
	}
	return count, nil
}
