package db

import (
	"time"

	"gorm.io/gorm"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillPro          SkillLevel = "pro"
)

func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillPro:
		return true
	}
	return false
}

type TimePreference string

const (
	TimeMorning   TimePreference = "morning"
	TimeAfternoon TimePreference = "afternoon"
	TimeEvening   TimePreference = "evening"
	TimeWeekend   TimePreference = "weekend"
)

func (p TimePreference) Valid() bool {
	switch p {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeWeekend:
		return true
	}
	return false
}

type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchDeclined MatchStatus = "declined"
)

type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

// User table. Handicap is nil for golfers without one (beginners).
type User struct {
	ID         uint64     `gorm:"primaryKey;autoIncrement"`
	Email      string     `gorm:"uniqueIndex;size:128;not null"`
	Username   string     `gorm:"uniqueIndex;size:64;not null"`
	FullName   string     `gorm:"size:128;not null"`
	SkillLevel SkillLevel `gorm:"size:16;not null;index"`
	Handicap   *int
	Location   string    `gorm:"size:128;not null;index"`
	Bio        *string   `gorm:"type:text"`
	HomeCourse *string   `gorm:"size:128"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// Course is unique on (name, location): the same name can exist in two places.
type Course struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:128;not null;uniqueIndex:idx_course_name_location,priority:1"`
	Location    string    `gorm:"size:128;not null;uniqueIndex:idx_course_name_location,priority:2"`
	Description *string   `gorm:"type:text"`
	Par         int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

type UserFavoriteCourse struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_favorite_user_course,priority:1"`
	CourseID  uint64    `gorm:"not null;uniqueIndex:idx_favorite_user_course,priority:2;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

type UserTimePreference struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement"`
	UserID         uint64         `gorm:"not null;uniqueIndex:idx_time_pref_user_value,priority:1"`
	TimePreference TimePreference `gorm:"size:16;not null;uniqueIndex:idx_time_pref_user_value,priority:2;index"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Conversation stores an unordered pair of users as (smaller id, larger id).
//
// Indexes:
//   - idx_conversation_pair(user1_id, user2_id) UNIQUE: one row per pair.
//   - chk_conversation_order: user1_id < user2_id, so (b, a) can never sneak in.
type Conversation struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	User1ID   uint64    `gorm:"not null;uniqueIndex:idx_conversation_pair,priority:1;check:chk_conversation_order,user1_id < user2_id"`
	User2ID   uint64    `gorm:"not null;uniqueIndex:idx_conversation_pair,priority:2;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`

	User1 User `gorm:"foreignKey:User1ID;constraint:OnDelete:CASCADE"`
	User2 User `gorm:"foreignKey:User2ID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate normalizes the participant order.
func (c *Conversation) BeforeCreate(*gorm.DB) error {
	c.User1ID, c.User2ID = NormalizePair(c.User1ID, c.User2ID)
	return nil
}

// HasParticipant reports whether userID is one of the two members.
func (c *Conversation) HasParticipant(userID uint64) bool {
	return c.User1ID == userID || c.User2ID == userID
}

type Message struct {
	ID             uint64        `gorm:"primaryKey;autoIncrement"`
	ConversationID uint64        `gorm:"not null;index:idx_message_conversation_created,priority:1"`
	SenderID       uint64        `gorm:"not null;index"`
	Content        string        `gorm:"type:text;not null"`
	Status         MessageStatus `gorm:"size:16;not null"`
	CreatedAt      time.Time     `gorm:"autoCreateTime;index:idx_message_conversation_created,priority:2"`

	Conversation Conversation `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	Sender       User         `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
}

// BuddyMatch is a directed request between two golfers.
//
// PairLow/PairHigh hold the normalized pair and carry a unique index, so a
// second match between the same two users fails at the storage level no
// matter who asked first.
//
// Indexes:
//   - idx_buddy_match_pair(pair_low, pair_high) UNIQUE
//   - idx_buddy_match_recipient_status(recipient_id, status): pending-request counts.
type BuddyMatch struct {
	ID          uint64      `gorm:"primaryKey;autoIncrement"`
	RequesterID uint64      `gorm:"not null;index;check:chk_buddy_match_not_self,requester_id <> recipient_id"`
	RecipientID uint64      `gorm:"not null;index:idx_buddy_match_recipient_status,priority:1"`
	Status      MatchStatus `gorm:"size:16;not null;index:idx_buddy_match_recipient_status,priority:2"`
	PairLow     uint64      `gorm:"not null;uniqueIndex:idx_buddy_match_pair,priority:1"`
	PairHigh    uint64      `gorm:"not null;uniqueIndex:idx_buddy_match_pair,priority:2"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime"`

	Requester User `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	Recipient User `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate fills the canonical pair columns.
func (m *BuddyMatch) BeforeCreate(*gorm.DB) error {
	m.PairLow, m.PairHigh = NormalizePair(m.RequesterID, m.RecipientID)
	return nil
}

// NormalizePair orders two user ids smaller first. Every read and write of
// a pair-keyed row goes through it.
func NormalizePair(a, b uint64) (lo, hi uint64) {
	if a > b {
		return b, a
	}
	return a, b
}

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&User{},
		&Course{},
		&UserFavoriteCourse{},
		&UserTimePreference{},
		&Conversation{},
		&Message{},
		&BuddyMatch{},
	}
}
