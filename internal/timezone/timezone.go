package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate interpreta "2006-01-02" no fuso padrão
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}

// ParseDateTime interpreta data e hora separadas ("2006-01-02", "15:04")
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, Location())
}
