package api

import (
	"time"

	"github.com/oggyb/golf-buddy/internal/utils/optional"
)

// Nullable columns are pointers and encode as JSON null, never "".

type User struct {
	ID         uint64    `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	SkillLevel string    `json:"skill_level"`
	Handicap   *int      `json:"handicap"`
	Location   string    `json:"location"`
	Bio        *string   `json:"bio"`
	HomeCourse *string   `json:"home_course"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Course struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description *string   `json:"description"`
	Par         int       `json:"par"`
	CreatedAt   time.Time `json:"created_at"`
}

type FavoriteCourse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	CourseID  uint64    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

type TimePreference struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"user_id"`
	TimePreference string    `json:"time_preference"`
	CreatedAt      time.Time `json:"created_at"`
}

type BuddyMatch struct {
	ID          uint64    `json:"id"`
	RequesterID uint64    `json:"requester_id"`
	RecipientID uint64    `json:"recipient_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Conversation struct {
	ID        uint64    `json:"id"`
	User1ID   uint64    `json:"user1_id"`
	User2ID   uint64    `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Message struct {
	ID             uint64    `json:"id"`
	ConversationID uint64    `json:"conversation_id"`
	SenderID       uint64    `json:"sender_id"`
	Content        string    `json:"content"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// --- ProfileService ---

type CreateUserRequest struct {
	Email      string  `json:"email"`
	Username   string  `json:"username"`
	FullName   string  `json:"full_name"`
	SkillLevel string  `json:"skill_level"`
	Handicap   *int    `json:"handicap"`
	Location   string  `json:"location"`
	Bio        *string `json:"bio"`
	HomeCourse *string `json:"home_course"`
}

// UpdateUserRequest is a partial update. Keys absent from the JSON payload
// are left untouched; an explicit null clears a nullable column.
type UpdateUserRequest struct {
	UserID     uint64                  `json:"user_id"`
	Email      optional.Field[string]  `json:"email,omitzero"`
	Username   optional.Field[string]  `json:"username,omitzero"`
	FullName   optional.Field[string]  `json:"full_name,omitzero"`
	SkillLevel optional.Field[string]  `json:"skill_level,omitzero"`
	Handicap   optional.Field[*int]    `json:"handicap,omitzero"`
	Location   optional.Field[string]  `json:"location,omitzero"`
	Bio        optional.Field[*string] `json:"bio,omitzero"`
	HomeCourse optional.Field[*string] `json:"home_course,omitzero"`
}

type GetUserRequest struct {
	UserID uint64 `json:"user_id"`
}

// GetUserResponse carries a null user when the id is unknown.
type GetUserResponse struct {
	User *User `json:"user"`
}

type CreateCourseRequest struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description *string `json:"description"`
	Par         int     `json:"par"`
}

type GetCoursesRequest struct{}

type CoursesResponse struct {
	Courses []Course `json:"courses"`
}

type AddFavoriteCourseRequest struct {
	UserID   uint64 `json:"user_id"`
	CourseID uint64 `json:"course_id"`
}

type GetUserFavoritesRequest struct {
	UserID uint64 `json:"user_id"`
}

type AddTimePreferenceRequest struct {
	UserID         uint64 `json:"user_id"`
	TimePreference string `json:"time_preference"`
}

type GetUserTimePreferencesRequest struct {
	UserID uint64 `json:"user_id"`
}

type TimePreferencesResponse struct {
	TimePreferences []TimePreference `json:"time_preferences"`
}

// --- BuddyService ---

type SearchBuddiesRequest struct {
	Location        *string `json:"location,omitempty"`
	SkillLevel      *string `json:"skill_level,omitempty"`
	MaxHandicapDiff *int    `json:"max_handicap_diff,omitempty"`
	CourseID        *uint64 `json:"course_id,omitempty"`
	TimePreference  *string `json:"time_preference,omitempty"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type CreateBuddyMatchRequest struct {
	RequesterID uint64 `json:"requester_id"`
	RecipientID uint64 `json:"recipient_id"`
}

type UpdateBuddyMatchStatusRequest struct {
	MatchID uint64 `json:"match_id"`
	Status  string `json:"status"`
}

type GetBuddyMatchesRequest struct {
	UserID uint64 `json:"user_id"`
}

type BuddyMatchesResponse struct {
	Matches []BuddyMatch `json:"matches"`
}

type CountPendingBuddyMatchesRequest struct {
	UserID uint64 `json:"user_id"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// --- ChatService ---

type CreateConversationRequest struct {
	User1ID uint64 `json:"user1_id"`
	User2ID uint64 `json:"user2_id"`
}

type GetConversationsRequest struct {
	UserID uint64 `json:"user_id"`
}

type ConversationsResponse struct {
	Conversations []Conversation `json:"conversations"`
}

type SendMessageRequest struct {
	ConversationID uint64 `json:"conversation_id"`
	SenderID       uint64 `json:"sender_id"`
	Content        string `json:"content"`
}

type GetMessagesRequest struct {
	ConversationID uint64 `json:"conversation_id"`
	Limit          *int   `json:"limit,omitempty"`
	Offset         *int   `json:"offset,omitempty"`
}

type MessagesResponse struct {
	Messages []Message `json:"messages"`
}
