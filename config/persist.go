package config

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// SavedSettings is the look configuration persisted between runs.
type SavedSettings struct {
	Sensitivity float64 `json:"sensitivity"`
	Smoothing   float64 `json:"smoothing"`
	InvertX     bool    `json:"invertX"`
	InvertY     bool    `json:"invertY"`
}

// SavedProgress records the last checkpoint reached on a course.
type SavedProgress struct {
	Course       string  `json:"course"`
	CheckpointID int     `json:"checkpointId"`
	SpawnX       float64 `json:"spawnX"`
	SpawnY       float64 `json:"spawnY"`
	SpawnZ       float64 `json:"spawnZ"`
}

// Store persists settings and run progress in the platform data directory.
type Store struct {
	m *gdata.Manager
}

// OpenStore opens (creating if needed) the persistent store.
func OpenStore() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: "obby"})
	if err != nil {
		return nil, fmt.Errorf("open data store: %w", err)
	}
	return &Store{m: m}, nil
}

// LoadSettings returns the saved settings, or nil if none have been saved.
func (s *Store) LoadSettings() (*SavedSettings, error) {
	data, err := s.m.LoadItem("settings")
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &saved, nil
}

func (s *Store) SaveSettings(saved *SavedSettings) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.m.SaveItem("settings", data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplyTo overlays the saved settings onto a Look config.
func (saved *SavedSettings) ApplyTo(look *Look) {
	look.Sensitivity = saved.Sensitivity
	look.Smoothing = saved.Smoothing
	look.InvertX = saved.InvertX
	look.InvertY = saved.InvertY
}

// LoadProgress returns the saved run progress, or nil if none exists.
func (s *Store) LoadProgress() (*SavedProgress, error) {
	data, err := s.m.LoadItem("progress")
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var saved SavedProgress
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	return &saved, nil
}

func (s *Store) SaveProgress(saved *SavedProgress) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := s.m.SaveItem("progress", data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// ClearProgress removes any saved run progress.
func (s *Store) ClearProgress() error {
	if err := s.m.SaveItem("progress", nil); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
