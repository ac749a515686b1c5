package api

import "github.com/oggyb/golf-buddy/internal/db"

func FromUser(u db.User) User {
	return User{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		FullName:   u.FullName,
		SkillLevel: string(u.SkillLevel),
		Handicap:   u.Handicap,
		Location:   u.Location,
		Bio:        u.Bio,
		HomeCourse: u.HomeCourse,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func FromUsers(users []db.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

func FromCourse(c db.Course) Course {
	return Course{
		ID:          c.ID,
		Name:        c.Name,
		Location:    c.Location,
		Description: c.Description,
		Par:         c.Par,
		CreatedAt:   c.CreatedAt,
	}
}

func FromCourses(courses []db.Course) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}

func FromFavorite(f db.UserFavoriteCourse) FavoriteCourse {
	return FavoriteCourse{ID: f.ID, UserID: f.UserID, CourseID: f.CourseID, CreatedAt: f.CreatedAt}
}

func FromTimePreference(p db.UserTimePreference) TimePreference {
	return TimePreference{
		ID:             p.ID,
		UserID:         p.UserID,
		TimePreference: string(p.TimePreference),
		CreatedAt:      p.CreatedAt,
	}
}

func FromTimePreferences(prefs []db.UserTimePreference) []TimePreference {
	out := make([]TimePreference, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, FromTimePreference(p))
	}
	return out
}

func FromBuddyMatch(m db.BuddyMatch) BuddyMatch {
	return BuddyMatch{
		ID:          m.ID,
		RequesterID: m.RequesterID,
		RecipientID: m.RecipientID,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromBuddyMatches(matches []db.BuddyMatch) []BuddyMatch {
	out := make([]BuddyMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, FromBuddyMatch(m))
	}
	return out
}

func FromConversation(c db.Conversation) Conversation {
	return Conversation{
		ID:        c.ID,
		User1ID:   c.User1ID,
		User2ID:   c.User2ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromConversations(convs []db.Conversation) []Conversation {
	out := make([]Conversation, 0, len(convs))
	for _, c := range convs {
		out = append(out, FromConversation(c))
	}
	return out
}

func FromMessage(m db.Message) Message {
	return Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt,
	}
}

func FromMessages(msgs []db.Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromMessage(m))
	}
	return out
}
