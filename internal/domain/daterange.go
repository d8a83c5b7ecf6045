package domain

import "time"

// DateRange полуоткрытый интервал проживания [CheckIn, CheckOut)
// День выезда не занимает номер, поэтому выезд и заезд в один день
// не конфликтуют
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// IsValid returns true if the range covers at least one night
func (r DateRange) IsValid() bool {
	return r.CheckOut.After(r.CheckIn)
}

// Nights returns the number of nights in the range
func (r DateRange) Nights() int {
	return int(TruncateToDay(r.CheckOut).Sub(TruncateToDay(r.CheckIn)).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one night
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// TruncateToDay обнуляет время, оставляя только дату
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalendarDate нормализует момент к календарной дате в UTC.
// Даты заезда парсятся как UTC-полночь, поэтому сравнивать их
// с "сегодня" можно только после приведения обеих сторон к одной зоне
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
