package expand_test

import (
	"testing"
	"time"

	"github.com/arthur-debert/confname/pkg/expand"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	morning := time.Date(2024, time.March, 5, 9, 4, 3, 45*int(time.Millisecond), time.UTC)
	midnight := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pattern string
		at      time.Time
		want    string
	}{
		{"empty pattern", "", morning, ""},
		{"default pattern", expand.DefaultDatePattern, morning, "2024-03-05_09-04-03"},
		{"two digit year", "yy", morning, "24"},
		{"single letter year is unpadded", "y", morning, "2024"},
		{"single letter fields", "M/d H:m:s", morning, "3/5 9:4:3"},
		{"short month name", "MMM", morning, "Mar"},
		{"full month name", "MMMM", morning, "March"},
		{"short weekday", "EEE", morning, "Tue"},
		{"full weekday", "EEEE", morning, "Tuesday"},
		{"milliseconds", "SSS", morning, "045"},
		{"day of year", "DDD", midnight, "365"},
		{"am marker", "hh a", morning, "09 AM"},
		{"twelve at midnight", "h K k", midnight, "12 0 24"},
		{"quoted literal", "yyyy'T'MM", morning, "2024T03"},
		{"quoted word", "'week' w", morning, "week 10"},
		{"escaped quote", "dd''MM", morning, "05'03"},
		{"quote inside quoted text", "'it''s' yyyy", morning, "it's 2024"},
		{"unterminated quote", "yyyy'rest", morning, "2024rest"},
		{"unknown letters vanish", "yyyy-qq-MM", morning, "2024--03"},
		{"utc zone designator", "X", morning, "Z"},
		{"numeric zone", "Z", morning, "+0000"},
		{"iso weekday", "u", midnight, "7"},
		{"day of week in month", "F", morning, "1"},
		{"week in month", "W", morning, "2"},
		{"padded week fields", "FF-WW", morning, "01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expand.FormatDate(tt.pattern, tt.at))
		})
	}
}

func TestFormatDate_WeekYear(t *testing.T) {
	// Monday of ISO week 1 of 2025
	at := time.Date(2024, time.December, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024", expand.FormatDate("yyyy", at))
	assert.Equal(t, "2025", expand.FormatDate("YYYY", at))
	assert.Equal(t, "25", expand.FormatDate("YY", at))
	assert.Equal(t, "2025-W01", expand.FormatDate("YYYY-'W'ww", at))
}

func TestFormatDate_ZoneOffsets(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	at := time.Date(2024, time.March, 5, 9, 0, 0, 0, zone)

	assert.Equal(t, "+01", expand.FormatDate("X", at))
	assert.Equal(t, "+0100", expand.FormatDate("XX", at))
	assert.Equal(t, "+01:00", expand.FormatDate("XXX", at))
	assert.Equal(t, "CET", expand.FormatDate("z", at))
}
