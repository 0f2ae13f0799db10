package services

import "sync"

// NotificationSettings is the runtime-mutable notification configuration,
// seeded from the environment at startup.
type NotificationSettings struct {
	Enabled   bool   `json:"emailEnabled"`
	Recipient string `json:"emailAddress"`
}

type SettingsService struct {
	mu       sync.RWMutex
	settings NotificationSettings
}

func NewSettingsService(initial NotificationSettings) *SettingsService {
	return &SettingsService{settings: initial}
}

func (s *SettingsService) Get() NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *SettingsService) Update(settings NotificationSettings) NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.settings
}

func (s *SettingsService) IsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Enabled
}

func (s *SettingsService) Recipient() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Recipient
}
