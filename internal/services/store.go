package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Ndzin77/cardapiodigitalteste/internal/repo"
	"github.com/Ndzin77/cardapiodigitalteste/pkg/openinghours"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SettingKeyOpeningHours is the StoreSetting key holding the weekly
// schedule as a JSON array of openinghours.Entry.
const SettingKeyOpeningHours = "opening_hours"

const defaultTimezone = "America/Sao_Paulo"

// StoreStatus is the public open/closed snapshot of a store
type StoreStatus struct {
	IsOpen    bool                  `json:"is_open"`
	CheckedAt time.Time             `json:"checked_at"`
	Timezone  string                `json:"timezone"`
	Schedule  openinghours.Schedule `json:"schedule,omitempty"`
}

type StoreService struct {
	storeRepo    *repo.StoreRepository
	settingsRepo *repo.SettingsRepository
}

func NewStoreService(storeRepo *repo.StoreRepository, settingsRepo *repo.SettingsRepository) *StoreService {
	return &StoreService{
		storeRepo:    storeRepo,
		settingsRepo: settingsRepo,
	}
}

// GetOpeningHours loads the stored weekly schedule. A store that never
// configured hours gets an empty schedule, which the evaluator treats
// as always open.
func (s *StoreService) GetOpeningHours(ctx context.Context, storeID uuid.UUID) (openinghours.Schedule, error) {
	setting, err := s.settingsRepo.Get(ctx, storeID, SettingKeyOpeningHours)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if setting.SettingValue == nil {
		return nil, nil
	}

	var schedule openinghours.Schedule
	if err := json.Unmarshal([]byte(*setting.SettingValue), &schedule); err != nil {
		log.Warn().Err(err).Str("store_id", storeID.String()).Msg("Horários de funcionamento ilegíveis")
		return nil, nil
	}

	return schedule, nil
}

// SetOpeningHours stores the weekly schedule. Entries are saved as
// given; unknown day labels and malformed periods are tolerated here
// and simply never match at evaluation time.
func (s *StoreService) SetOpeningHours(ctx context.Context, storeID uuid.UUID, schedule openinghours.Schedule) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return err
	}

	value := string(raw)
	return s.settingsRepo.Set(ctx, storeID, SettingKeyOpeningHours, &value, "json")
}

// Status reports whether the store is open right now, evaluated in the
// store's configured timezone.
func (s *StoreService) Status(ctx context.Context, storeID uuid.UUID) (*StoreStatus, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}

	schedule, err := s.GetOpeningHours(ctx, storeID)
	if err != nil {
		return nil, err
	}

	timezone := store.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", timezone).Msg("Timezone inválido, usando UTC")
		location = time.UTC
	}

	now := time.Now().In(location)

	return &StoreStatus{
		IsOpen:    schedule.IsOpenAt(now),
		CheckedAt: now,
		Timezone:  location.String(),
		Schedule:  schedule,
	}, nil
}
