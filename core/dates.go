package core

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates (tarikh).
const DateLayout = "2006-01-02"

var msMonths = [...]string{
	"Januari", "Februari", "Mac", "April", "Mei", "Jun",
	"Julai", "Ogos", "September", "Oktober", "November", "Disember",
}

var msDays = [...]string{"Ahad", "Isnin", "Selasa", "Rabu", "Khamis", "Jumaat", "Sabtu"}

// FormatDateMS renders t the way the ms-MY locale prints long dates: "05 Januari 2024".
func FormatDateMS(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), msMonths[t.Month()-1], t.Year())
}

// DayNameMS returns the Malay weekday name of t.
func DayNameMS(t time.Time) string {
	return msDays[t.Weekday()]
}

// Today returns the current local date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
