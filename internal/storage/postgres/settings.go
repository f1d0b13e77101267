package postgres

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/yakusoku/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "use_cloud_sync":
			settings.UseCloudSync = value == "true"
		case "preferred_theme":
			settings.PreferredTheme = value
		case "reminder_hour":
			hour, err := strconv.Atoi(value)
			if err != nil {
				return models.Settings{}, fmt.Errorf("parsing reminder_hour: %w", err)
			}
			settings.ReminderHour = hour
		case "enable_notifications":
			settings.EnableNotifications = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := map[string]string{
		"use_cloud_sync":       strconv.FormatBool(settings.UseCloudSync),
		"preferred_theme":      settings.PreferredTheme,
		"reminder_hour":        strconv.Itoa(settings.ReminderHour),
		"enable_notifications": strconv.FormatBool(settings.EnableNotifications),
	}
	for key, value := range pairs {
		if _, err := stmt.Exec(key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
