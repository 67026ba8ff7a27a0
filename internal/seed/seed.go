package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 3

// Run seeds the database with sample users, a settings history, and a few
// days of events. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.SettingEntry{}, &domain.EventRecord{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam", TargetBGMgDL: 110},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", TargetBGMgDL: 120},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedSettingsForUser(db, user); err != nil {
			return err
		}
		if err := seedEventsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

// seedSettingsForUser writes one complete settings snapshot effective well
// before the seeded events, so simulations over them never run ahead of the
// settings history.
func seedSettingsForUser(db *gorm.DB, user domain.User) error {
	effective := time.Now().UTC().AddDate(0, 0, -(seededDays + 7))

	breakpoints := []domain.SettingEntry{
		// Sensitivity: stronger overnight
		{Kind: domain.SettingKindSensitivity, OffsetHours: 0, Value: 60},
		{Kind: domain.SettingKindSensitivity, OffsetHours: 7, Value: 50},
		{Kind: domain.SettingKindSensitivity, OffsetHours: 22, Value: 60},
		// Carb ratio: one breakfast step
		{Kind: domain.SettingKindCarbRatio, OffsetHours: 0, Value: 12},
		{Kind: domain.SettingKindCarbRatio, OffsetHours: 6, Value: 10},
		{Kind: domain.SettingKindCarbRatio, OffsetHours: 11, Value: 12},
		// Basal: dawn phenomenon bump
		{Kind: domain.SettingKindBasal, OffsetHours: 0, Value: 0.8},
		{Kind: domain.SettingKindBasal, OffsetHours: 4, Value: 1.1},
		{Kind: domain.SettingKindBasal, OffsetHours: 9, Value: 0.9},
		// Durations are flat
		{Kind: domain.SettingKindInsulinDuration, OffsetHours: 0, Value: 4},
		{Kind: domain.SettingKindFoodDuration, OffsetHours: 0, Value: 2},
	}

	for _, bp := range breakpoints {
		entry := domain.SettingEntry{
			UserID:        user.ID,
			Kind:          bp.Kind,
			EffectiveFrom: effective,
			OffsetHours:   bp.OffsetHours,
			Value:         bp.Value,
		}
		err := db.Where(
			"user_id = ? AND kind = ? AND effective_from = ? AND offset_hours = ?",
			entry.UserID, entry.Kind, entry.EffectiveFrom, entry.OffsetHours,
		).FirstOrCreate(&entry).Error
		if err != nil {
			return fmt.Errorf("failed to create setting entry: %w", err)
		}
	}
	return nil
}

func seedEventsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := seededDays; i >= 1; i-- {
		date := now.AddDate(0, 0, -i)
		midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

		type mealSpec struct {
			hour  int
			grams float64
		}
		meals := []mealSpec{
			{hour: 8, grams: 35 + float64(rng.Intn(20))},
			{hour: 13, grams: 45 + float64(rng.Intn(25))},
			{hour: 19, grams: 50 + float64(rng.Intn(30))},
		}

		for _, meal := range meals {
			at := midnight.Add(time.Duration(meal.hour)*time.Hour + time.Duration(rng.Intn(30))*time.Minute)
			grams := meal.grams
			food := domain.EventRecord{
				UserID:  user.ID,
				Type:    domain.EventFood,
				StartAt: at,
				Grams:   &grams,
			}
			if err := createEventOnce(db, &food); err != nil {
				return err
			}

			// Matching bolus a few minutes ahead of the meal
			units := grams / 10
			bolusAt := at.Add(-10 * time.Minute)
			bolus := domain.EventRecord{
				UserID:  user.ID,
				Type:    domain.EventBolus,
				StartAt: bolusAt,
				Units:   &units,
			}
			if err := createEventOnce(db, &bolus); err != nil {
				return err
			}
		}

		// Afternoon temp basal reduction on some days
		if rng.Float32() < 0.5 {
			start := midnight.Add(15 * time.Hour)
			end := start.Add(90 * time.Minute)
			rate := 0.4
			temp := domain.EventRecord{
				UserID:      user.ID,
				Type:        domain.EventTempBasal,
				StartAt:     start,
				EndAt:       &end,
				RatePerHour: &rate,
			}
			if err := createEventOnce(db, &temp); err != nil {
				return err
			}
		}

		// A couple of readings per day
		for _, hour := range []int{7, 21} {
			start := midnight.Add(time.Duration(hour) * time.Hour)
			end := start.Add(5 * time.Minute)
			value := 90 + float64(rng.Intn(70))
			reading := domain.EventRecord{
				UserID:    user.ID,
				Type:      domain.EventBGMeasurement,
				StartAt:   start,
				EndAt:     &end,
				ValueMgDL: &value,
			}
			if err := createEventOnce(db, &reading); err != nil {
				return err
			}
		}
	}
	return nil
}

func createEventOnce(db *gorm.DB, record *domain.EventRecord) error {
	err := db.Where(
		"user_id = ? AND type = ? AND start_at = ?",
		record.UserID, record.Type, record.StartAt,
	).FirstOrCreate(record).Error
	if err != nil {
		return fmt.Errorf("failed to create %s event: %w", record.Type, err)
	}
	return nil
}
