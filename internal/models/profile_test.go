package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestProfilePublic(t *testing.T) {
	now := time.Now()
	p := Profile{
		ID:              7,
		Email:           "villager@example.com",
		Username:        "villager",
		Password:        "hash",
		AvatarURL:       "https://img.example/avatar.png",
		Points:          1234,
		IsAdmin:         true,
		CurrentStreak:   9,
		LastJournalDate: &now,
	}

	pub := p.Public()
	if pub.ID != 7 || pub.Username != "villager" || pub.AvatarURL != "https://img.example/avatar.png" {
		t.Errorf("Public() lost shareable fields: %+v", pub)
	}

	// The serialized form handed to other users must not leak private
	// account state.
	raw, err := json.Marshal(pub)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	for _, leaked := range []string{"email", "points", "streak", "admin", "hash"} {
		if strings.Contains(body, leaked) {
			t.Errorf("public profile JSON leaks %q: %s", leaked, body)
		}
	}
}

func TestValidComplaintStatus(t *testing.T) {
	for _, s := range []string{ComplaintPending, ComplaintInProgress, ComplaintResolved} {
		if !ValidComplaintStatus(s) {
			t.Errorf("status %q rejected", s)
		}
	}
	for _, s := range []string{"", "closed", "Pending", "in-progress"} {
		if ValidComplaintStatus(s) {
			t.Errorf("status %q accepted", s)
		}
	}
}

func TestValidMood(t *testing.T) {
	for _, m := range []string{MoodHappy, MoodSad, MoodCalm, MoodAngry, MoodAnxious} {
		if !ValidMood(m) {
			t.Errorf("mood %q rejected", m)
		}
	}
	for _, m := range []string{"", "excited", "Happy"} {
		if ValidMood(m) {
			t.Errorf("mood %q accepted", m)
		}
	}
}
