package store

import (
	"log"
	"sync"

	"gorm.io/gorm"

	"culinamind-go-be/models"
)

// profileRowID keys the single persisted profile row.
const profileRowID = "profile"

func defaultProfile() models.UserProfile {
	return models.UserProfile{
		ID:                   profileRowID,
		Name:                 "Chef",
		Weight:               72,
		Height:               175,
		Age:                  28,
		DietPreference:       "No Preference",
		FitnessGoal:          "Maintain Weight",
		DailyCalorieTarget:   2200,
		Allergies:            []string{},
		HouseholdSize:        1,
		NotificationsEnabled: true,
	}
}

// ProfileStore is the preference holder for the device user.
type ProfileStore struct {
	mu      sync.Mutex
	db      *gorm.DB
	profile models.UserProfile
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db, profile: defaultProfile()}
}

// Load hydrates the profile; a missing row keeps the defaults.
func (s *ProfileStore) Load() error {
	if s.db == nil {
		return nil
	}
	var profile models.UserProfile
	err := s.db.First(&profile, "id = ?", profileRowID).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return nil
}

func (s *ProfileStore) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Update applies a partial edit.
func (s *ProfileStore) Update(upd models.ProfileUpdate) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &s.profile
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Weight != nil {
		p.Weight = *upd.Weight
	}
	if upd.Height != nil {
		p.Height = *upd.Height
	}
	if upd.Age != nil {
		p.Age = *upd.Age
	}
	if upd.DietPreference != nil {
		p.DietPreference = *upd.DietPreference
	}
	if upd.FitnessGoal != nil {
		p.FitnessGoal = *upd.FitnessGoal
	}
	if upd.DailyCalorieTarget != nil {
		p.DailyCalorieTarget = *upd.DailyCalorieTarget
	}
	if upd.HouseholdSize != nil {
		p.HouseholdSize = *upd.HouseholdSize
	}
	if upd.NotificationsEnabled != nil {
		p.NotificationsEnabled = *upd.NotificationsEnabled
	}
	if upd.Onboarded != nil {
		p.Onboarded = *upd.Onboarded
	}
	s.persist()
	return s.profile
}

// AddAllergy appends unless the exact string is already present.
func (s *ProfileStore) AddAllergy(allergy string) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.profile.Allergies {
		if a == allergy {
			return s.profile
		}
	}
	s.profile.Allergies = append(s.profile.Allergies, allergy)
	s.persist()
	return s.profile
}

// RemoveAllergy deletes the exact string; removing an absent one is a no-op.
func (s *ProfileStore) RemoveAllergy(allergy string) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.profile.Allergies[:0]
	for _, a := range s.profile.Allergies {
		if a != allergy {
			kept = append(kept, a)
		}
	}
	s.profile.Allergies = kept
	s.persist()
	return s.profile
}

// Reset restores the defaults.
func (s *ProfileStore) Reset() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = defaultProfile()
	s.persist()
	return s.profile
}

func (s *ProfileStore) persist() {
	if s.db == nil {
		return
	}
	if err := s.db.Save(&s.profile).Error; err != nil {
		log.Printf("profile: failed to persist: %v", err)
	}
}
