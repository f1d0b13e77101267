package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/yakusoku/internal/theme"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Change a setting."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("theme           %s\n", settings.PreferredTheme)
	fmt.Printf("reminder-hour   %d:00\n", settings.ReminderHour)
	fmt.Printf("notifications   %t\n", settings.EnableNotifications)
	fmt.Printf("cloud-sync      %t\n", settings.UseCloudSync)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key: theme|reminder-hour|notifications|cloud-sync."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "theme":
		if !theme.Exists(c.Value) {
			return fmt.Errorf("unknown theme %q (available: %s)",
				c.Value, strings.Join(theme.Names(), ", "))
		}
		settings.PreferredTheme = c.Value
	case "reminder-hour":
		hour, err := strconv.Atoi(c.Value)
		if err != nil || hour < 0 || hour > 23 {
			return fmt.Errorf("reminder-hour must be 0-23")
		}
		settings.ReminderHour = hour
	case "notifications":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("notifications must be true or false")
		}
		settings.EnableNotifications = enabled
	case "cloud-sync":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("cloud-sync must be true or false")
		}
		settings.UseCloudSync = enabled
		if enabled {
			fmt.Println("Note: cloud sync takes effect after configuring a database with 'yakusoku connection set'.")
		}
	default:
		return fmt.Errorf("unknown setting %q", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
