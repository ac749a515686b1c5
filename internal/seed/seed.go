// Package seed fills a database with deterministic demo golfers.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	"github.com/oggyb/golf-buddy/internal/db"
	"github.com/oggyb/golf-buddy/internal/logger"
	"github.com/oggyb/golf-buddy/internal/repository"
)

var seedLocations = []string{"San Francisco", "Austin", "Scottsdale", "Pinehurst", "Chicago"}

// Run resets the database and populates it with demo golfers. Every row is
// written through the repositories, so seeded data obeys the same rules as
// data written by the services.
//
// Behavior:
//  1. Clears every table (children first so foreign keys hold).
//  2. Creates `courses` courses spread over a handful of locations.
//  3. Creates `users` golfers; beginners have no handicap.
//  4. Gives each golfer up to 3 favorite courses and up to 2 time preferences.
//  5. Chains buddy matches user i -> i+1 cycling through pending/accepted/declined;
//     accepted ones get a conversation with a short backdated message thread,
//     and the conversation's updated_at follows its last message.
//
// The seed is deterministic so demo data is stable between runs.
func Run(ctx context.Context, database *gorm.DB, users, courses int) error {
	f := gofakeit.New(42)
	store := repository.NewStore(database)

	if err := resetTables(database); err != nil {
		return err
	}
	logger.Info("cleared existing data")

	// --- Courses ---
	seededCourses := make([]db.Course, 0, courses)
	for i := 0; i < courses; i++ {
		c := db.Course{
			// (name, location) must stay unique even when the faker repeats a name.
			Name:     fmt.Sprintf("%s Golf Club %d", f.LastName(), i+1),
			Location: seedLocations[i%len(seedLocations)],
			Par:      f.Number(70, 72),
		}
		if i%3 != 0 {
			desc := f.Sentence(8)
			c.Description = &desc
		}
		if err := store.Courses.Create(ctx, &c); err != nil {
			return fmt.Errorf("failed to seed course: %w", err)
		}
		seededCourses = append(seededCourses, c)
	}
	logger.Info("seeded courses", "count", len(seededCourses))

	// --- Users ---
	levels := []db.SkillLevel{db.SkillBeginner, db.SkillIntermediate, db.SkillAdvanced, db.SkillPro}
	prefs := []db.TimePreference{db.TimeMorning, db.TimeAfternoon, db.TimeEvening, db.TimeWeekend}
	seededUsers := make([]db.User, 0, users)
	for i := 0; i < users; i++ {
		first, last := f.FirstName(), f.LastName()
		level := levels[i%len(levels)]

		u := db.User{
			Email:      fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
			Username:   fmt.Sprintf("%s%d", strings.ToLower(first), i+1),
			FullName:   first + " " + last,
			SkillLevel: level,
			Location:   seedLocations[f.Number(0, len(seedLocations)-1)],
		}
		if level != db.SkillBeginner {
			h := handicapFor(level, f)
			u.Handicap = &h
		}
		if f.Bool() {
			bio := f.Sentence(10)
			u.Bio = &bio
		}
		if len(seededCourses) > 0 && f.Bool() {
			home := seededCourses[f.Number(0, len(seededCourses)-1)].Name
			u.HomeCourse = &home
		}

		if err := store.Users.Create(ctx, &u); err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		seededUsers = append(seededUsers, u)

		// favorites: distinct courses by construction
		if n := len(seededCourses); n > 0 {
			start := f.Number(0, n-1)
			for k := 0; k < min(3, n); k++ {
				fav := db.UserFavoriteCourse{UserID: u.ID, CourseID: seededCourses[(start+k)%n].ID}
				if err := store.Favorites.Create(ctx, &fav); err != nil {
					return fmt.Errorf("failed to seed favorite: %w", err)
				}
			}
		}

		// time preferences: 0..2 distinct values
		startPref := f.Number(0, len(prefs)-1)
		for k := 0; k < i%3; k++ {
			tp := db.UserTimePreference{UserID: u.ID, TimePreference: prefs[(startPref+k)%len(prefs)]}
			if err := store.TimePreferences.Create(ctx, &tp); err != nil {
				return fmt.Errorf("failed to seed time preference: %w", err)
			}
		}
	}
	logger.Info("seeded users", "count", len(seededUsers))

	// --- Matches, conversations, messages ---
	outcomes := []db.MatchStatus{db.MatchPending, db.MatchAccepted, db.MatchDeclined}
	for i := 0; i+1 < len(seededUsers); i++ {
		m := db.BuddyMatch{
			RequesterID: seededUsers[i].ID,
			RecipientID: seededUsers[i+1].ID,
			Status:      db.MatchPending,
		}
		if err := store.Matches.Create(ctx, &m); err != nil {
			return fmt.Errorf("failed to seed match: %w", err)
		}
		outcome := outcomes[i%len(outcomes)]
		if outcome == db.MatchPending {
			continue
		}
		if _, err := store.Matches.ResolvePending(ctx, m.ID, outcome); err != nil {
			return fmt.Errorf("failed to resolve seeded match: %w", err)
		}
		if outcome != db.MatchAccepted {
			continue
		}

		base := time.Now().UTC().Add(-time.Duration(len(seededUsers)-i) * time.Hour)
		if err := seedThread(ctx, store, f, m.RequesterID, m.RecipientID, base); err != nil {
			return err
		}
	}

	return nil
}

// seedThread opens the pair's conversation and writes three alternating
// messages starting at base.
func seedThread(ctx context.Context, store *repository.Store, f *gofakeit.Faker, a, b uint64, base time.Time) error {
	conv, _, err := store.Conversations.GetOrCreate(ctx, a, b)
	if err != nil {
		return fmt.Errorf("failed to seed conversation: %w", err)
	}

	var last time.Time
	for k := 0; k < 3; k++ {
		sender := conv.User1ID
		if k%2 == 1 {
			sender = conv.User2ID
		}
		msg := db.Message{
			ConversationID: conv.ID,
			SenderID:       sender,
			Content:        f.Sentence(6),
			Status:         db.MessageSent,
			CreatedAt:      base.Add(time.Duration(k) * time.Minute).Truncate(time.Millisecond),
		}
		if err := store.Messages.Create(ctx, &msg); err != nil {
			return fmt.Errorf("failed to seed message: %w", err)
		}
		last = msg.CreatedAt
	}
	if err := store.Conversations.Touch(ctx, conv.ID, last); err != nil {
		return fmt.Errorf("failed to seed conversation activity: %w", err)
	}
	return nil
}

func resetTables(database *gorm.DB) error {
	tables := []string{
		"messages",
		"conversations",
		"buddy_matches",
		"user_time_preferences",
		"user_favorite_courses",
		"courses",
		"users",
	}
	for _, t := range tables {
		if err := database.Exec("DELETE FROM " + t).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", t, err)
		}
	}

	// a failed id reset leaves data intact, so it only warns
	switch database.Dialector.Name() {
	case "mysql":
		for _, t := range tables {
			if err := database.Exec("ALTER TABLE " + t + " AUTO_INCREMENT = 1").Error; err != nil {
				logger.Warn("failed to reset auto increment", "table", t, "err", err)
			}
		}
	case "sqlite":
		for _, t := range tables {
			if err := database.Exec("DELETE FROM sqlite_sequence WHERE name = ?", t).Error; err != nil {
				logger.Warn("failed to reset sqlite sequence", "table", t, "err", err)
			}
		}
	}
	return nil
}

func handicapFor(level db.SkillLevel, f *gofakeit.Faker) int {
	switch level {
	case db.SkillPro:
		return f.Number(-4, 0)
	case db.SkillAdvanced:
		return f.Number(1, 9)
	default:
		return f.Number(10, 24)
	}
}
