package storage

import (
	"encoding/json"
	"fmt"

	"github.com/claude/fittrack/internal/models"
)

// SchemaVersion is the current on-disk format of the collection blobs.
// Version 0 denotes blobs written before versioning; their payload is the
// same plain JSON collection, so they migrate by being read as-is and
// rewritten at the current version on the next save.
const SchemaVersion = 1

// SaveWorkouts persists the workout collection.
func (d *DB) SaveWorkouts(ws []models.Workout) error {
	data, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("encoding workouts: %w", err)
	}
	return d.SaveBlob(BlobWorkouts, SchemaVersion, data)
}

// LoadWorkouts decodes the persisted workout collection. Callers substitute
// sample data on any error.
func (d *DB) LoadWorkouts() ([]models.Workout, error) {
	data, err := d.loadCurrent(BlobWorkouts)
	if err != nil {
		return nil, err
	}
	var ws []models.Workout
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("decoding workouts blob: %w", err)
	}
	return ws, nil
}

// SaveGoals persists the goal collection.
func (d *DB) SaveGoals(gs []models.Goal) error {
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("encoding goals: %w", err)
	}
	return d.SaveBlob(BlobGoals, SchemaVersion, data)
}

// LoadGoals decodes the persisted goal collection.
func (d *DB) LoadGoals() ([]models.Goal, error) {
	data, err := d.loadCurrent(BlobGoals)
	if err != nil {
		return nil, err
	}
	var gs []models.Goal
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("decoding goals blob: %w", err)
	}
	return gs, nil
}

// SaveSettings persists the user preferences.
func (d *DB) SaveSettings(s models.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return d.SaveBlob(BlobSettings, SchemaVersion, data)
}

// LoadSettings decodes the persisted user preferences.
func (d *DB) LoadSettings() (models.Settings, error) {
	data, err := d.loadCurrent(BlobSettings)
	if err != nil {
		return models.Settings{}, err
	}
	var s models.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return models.Settings{}, fmt.Errorf("decoding settings blob: %w", err)
	}
	return s, nil
}

// loadCurrent fetches a blob and migrates its payload to the current schema.
func (d *DB) loadCurrent(name string) ([]byte, error) {
	version, data, err := d.LoadBlob(name)
	if err != nil {
		return nil, err
	}
	switch version {
	case 0, SchemaVersion:
		return data, nil
	default:
		return nil, fmt.Errorf("blob %s: unknown schema version %d", name, version)
	}
}
