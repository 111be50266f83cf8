package localcal

// Fixed day numbers count days from 1 January 1 CE (proleptic Gregorian) = 1
// Gregorian years here are astronomical: 0 is 1 BCE

const hebrewEpoch = -1373427 // fixed day of 1 Tishrei AM 1

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int { return a - b*floorDiv(a, b) }

func gregorianLeap(y int) bool {
	return floorMod(y, 4) == 0 && (floorMod(y, 100) != 0 || floorMod(y, 400) == 0)
}

func fixedFromGregorian(y, m, d int) int {
	corr := 0
	if m > 2 {
		corr = -2
		if gregorianLeap(y) {
			corr = -1
		}
	}
	return 365*(y-1) + floorDiv(y-1, 4) - floorDiv(y-1, 100) + floorDiv(y-1, 400) +
		floorDiv(367*m-362, 12) + corr + d
}

func gregorianYearFromFixed(date int) int {
	d0 := date - 1
	n400, d1 := floorDiv(d0, 146097), floorMod(d0, 146097)
	n100, d2 := floorDiv(d1, 36524), floorMod(d1, 36524)
	n4, d3 := floorDiv(d2, 1461), floorMod(d2, 1461)
	n1 := floorDiv(d3, 365)
	y := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		return y
	}
	return y + 1
}

func gregorianFromFixed(date int) (y, m, d int) {
	y = gregorianYearFromFixed(date)
	prior := date - fixedFromGregorian(y, 1, 1)
	corr := 0
	if date >= fixedFromGregorian(y, 3, 1) {
		corr = 2
		if gregorianLeap(y) {
			corr = 1
		}
	}
	m = floorDiv(12*(prior+corr)+373, 367)
	d = date - fixedFromGregorian(y, m, 1) + 1
	return y, m, d
}

func gregorianMonthDays(y, m int) int {
	switch m {
	case 2:
		if gregorianLeap(y) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// Hebrew months are numbered from Nisan = 1; Tishrei = 7 starts the year, 13 is Adar II

const (
	nisan    = 1
	tishrei  = 7
	heshvan  = 8
	kislev   = 9
	adar     = 12
	adarII   = 13
	partsDay = 25920
)

func hebrewLeap(y int) bool { return floorMod(7*y+1, 19) < 7 }

func lastMonth(y int) int {
	if hebrewLeap(y) {
		return adarII
	}
	return adar
}

// elapsedDays is the molad of Tishrei rounded to a day, with the first postponement applied
func elapsedDays(y int) int {
	months := floorDiv(235*y-234, 19)
	parts := 12084 + 13753*months
	day := 29*months + floorDiv(parts, partsDay)
	if floorMod(3*(day+1), 7) < 3 {
		day++
	}
	return day
}

// yearDelay keeps year lengths inside 353..355 and 383..385
func yearDelay(y int) int {
	ny0, ny1, ny2 := elapsedDays(y-1), elapsedDays(y), elapsedDays(y+1)
	switch {
	case ny2-ny1 == 356:
		return 2
	case ny1-ny0 == 382:
		return 1
	}
	return 0
}

func newYear(y int) int { return hebrewEpoch + elapsedDays(y) + yearDelay(y) }

func yearDays(y int) int { return newYear(y+1) - newYear(y) }

func hebrewMonthDays(y, m int) int {
	switch {
	case m == 2 || m == 4 || m == 6 || m == 10 || m == adarII:
		return 29
	case m == adar && !hebrewLeap(y):
		return 29
	case m == heshvan && yearDays(y)%10 != 5:
		return 29
	case m == kislev && yearDays(y)%10 == 3:
		return 29
	}
	return 30
}

func fixedFromHebrew(y, m, d int) int {
	days := d - 1
	if m < tishrei {
		for mm := tishrei; mm <= lastMonth(y); mm++ {
			days += hebrewMonthDays(y, mm)
		}
		for mm := nisan; mm < m; mm++ {
			days += hebrewMonthDays(y, mm)
		}
	} else {
		for mm := tishrei; mm < m; mm++ {
			days += hebrewMonthDays(y, mm)
		}
	}
	return newYear(y) + days
}

func hebrewFromFixed(date int) (y, m, d int) {
	// mean year length 35975351/98496 days
	approx := floorDiv((date-hebrewEpoch)*98496, 35975351) + 1
	y = approx - 1
	for newYear(y+1) <= date {
		y++
	}
	m = tishrei
	if date < fixedFromHebrew(y, nisan, 1) {
		for date > fixedFromHebrew(y, m, hebrewMonthDays(y, m)) {
			m++
		}
	} else {
		m = nisan
		for date > fixedFromHebrew(y, m, hebrewMonthDays(y, m)) {
			m++
		}
	}
	d = date - fixedFromHebrew(y, m, 1) + 1
	return y, m, d
}
