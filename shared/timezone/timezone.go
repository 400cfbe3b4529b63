package timezone

import (
	"smeraldo/config"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimezone is the hotel's business-local timezone (UTC+7). Calendar
// dates must never be derived from the server's UTC clock: an 01:00 UTC
// check-in is already "today + 1" at the front desk.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Str("timezone", DefaultTimezone).Msg("No timezone configured, using business default")
		cfg.App.Timezone = DefaultTimezone
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to fixed UTC+7")
		appLocation = time.FixedZone("ICT", 7*60*60)
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the business-local timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// Today returns the current business-local calendar date as YYYY-MM-DD.
func Today() string {
	return Now().Format("2006-01-02")
}

// ToAppTime converts a time to the business-local timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the current business-local timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// Parse parses a time string in the business-local timezone
func Parse(layout, value string) (time.Time, error) {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, parsing in UTC")
		return time.Parse(layout, value)
	}
	return time.ParseInLocation(layout, value, appLocation)
}

// Format formats a time in the business-local timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
