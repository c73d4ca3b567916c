package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oguzkose/resourcehub/internal/kvstore"
)

// rawSnapshot mirrors the five primary collections without decoding them, so
// backup writes are a byte-level copy of whatever the store currently holds.
type rawSnapshot struct {
	Users       json.RawMessage `json:"users"`
	Resources   json.RawMessage `json:"resources"`
	Departments json.RawMessage `json:"departments"`
	Courses     json.RawMessage `json:"courses"`
	Lecturers   json.RawMessage `json:"lecturers"`
}

var emptyList = json.RawMessage("[]")

// writeBackup rewrites the consolidated backup snapshot from the current
// primary collections.
func writeBackup(ctx context.Context, store kvstore.Store) error {
	snap := rawSnapshot{
		Users:       emptyList,
		Resources:   emptyList,
		Departments: emptyList,
		Courses:     emptyList,
		Lecturers:   emptyList,
	}

	sections := []struct {
		key  string
		dest *json.RawMessage
	}{
		{KeyUsers, &snap.Users},
		{KeyResources, &snap.Resources},
		{KeyDepartments, &snap.Departments},
		{KeyCourses, &snap.Courses},
		{KeyLecturers, &snap.Lecturers},
	}

	for _, section := range sections {
		raw, err := store.Get(ctx, section.key)
		if err != nil {
			return fmt.Errorf("failed to read %s for backup: %w", section.key, err)
		}
		if raw != nil {
			*section.dest = raw
		}
	}

	encoded, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode backup snapshot: %w", err)
	}

	return store.Set(ctx, KeyBackup, encoded)
}

// RestoreFromBackup fills in any primary collection key that is absent while
// the backup key is present. All five collections are covered, keeping backup
// and restore symmetric.
func RestoreFromBackup(ctx context.Context, store kvstore.Store) error {
	raw, err := store.Get(ctx, KeyBackup)
	if err != nil {
		return fmt.Errorf("failed to read backup snapshot: %w", err)
	}
	if raw == nil {
		return nil
	}

	var snap rawSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("failed to decode backup snapshot: %w", err)
	}

	sections := []struct {
		key  string
		data json.RawMessage
	}{
		{KeyUsers, snap.Users},
		{KeyResources, snap.Resources},
		{KeyDepartments, snap.Departments},
		{KeyCourses, snap.Courses},
		{KeyLecturers, snap.Lecturers},
	}

	for _, section := range sections {
		if section.data == nil {
			continue
		}
		existing, err := store.Get(ctx, section.key)
		if err != nil {
			return fmt.Errorf("failed to check %s before restore: %w", section.key, err)
		}
		if existing != nil {
			continue
		}
		if err := store.Set(ctx, section.key, section.data); err != nil {
			return fmt.Errorf("failed to restore %s: %w", section.key, err)
		}
	}

	return nil
}
