package chrono

import "time"

// Component getters read the zoned calendar projection of the stored
// instant. Weeks start on Monday and a partial leading week counts as
// week 1.

// Nano returns the nanosecond-of-second, 0..999999999.
func (c Chrono) Nano() int { return c.t.Nanosecond() }

// Milli returns the millisecond-of-second, 0..999.
func (c Chrono) Milli() int { return c.t.Nanosecond() / int(time.Millisecond) }

// Second returns the second-of-minute, 0..59.
func (c Chrono) Second() int { return c.t.Second() }

// Minute returns the minute-of-hour, 0..59.
func (c Chrono) Minute() int { return c.t.Minute() }

// Hour returns the hour-of-day, 0..23.
func (c Chrono) Hour() int { return c.t.Hour() }

// DayOfWeek returns the weekday, 1 = Monday .. 7 = Sunday.
func (c Chrono) DayOfWeek() int { return mondayFirst(c.t.Weekday()) + 1 }

// DayOfMonth returns the day-of-month, 1..31.
func (c Chrono) DayOfMonth() int { return c.t.Day() }

// DayOfYear returns the day-of-year, 1..366.
func (c Chrono) DayOfYear() int { return c.t.YearDay() }

// WeekOfMonth returns the week-of-month, counted from 1.
func (c Chrono) WeekOfMonth() int {
	y, m, _ := c.t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, c.t.Location())
	return (c.t.Day()-1+mondayFirst(first.Weekday()))/7 + 1
}

// WeekOfYear returns the week-of-year, counted from 1.
func (c Chrono) WeekOfYear() int {
	jan1 := time.Date(c.t.Year(), time.January, 1, 0, 0, 0, 0, c.t.Location())
	return (c.t.YearDay()-1+mondayFirst(jan1.Weekday()))/7 + 1
}

// Month returns the month, 1..12.
func (c Chrono) Month() int { return int(c.t.Month()) }

// Year returns the year.
func (c Chrono) Year() int { return c.t.Year() }

// mondayFirst maps time.Weekday (Sunday=0) to a Monday-based 0..6.
func mondayFirst(wd time.Weekday) int { return (int(wd) + 6) % 7 }
