package availability

import "time"

// DaysInMonth возвращает количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	// день 0 следующего месяца - последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthRange возвращает первую и последнюю дату месяца в указанной локали
func monthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, loc)
	return first, last
}

// minuteOfDay возвращает минуту дня для момента времени
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// sameDate проверяет, что два момента приходятся на одну календарную дату
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// beforeDate проверяет, что дата a раньше даты b (время игнорируется)
func beforeDate(a, b time.Time) bool {
	return truncate(a).Before(truncate(b))
}
