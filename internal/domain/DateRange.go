package domain

import "time"

// Rótulos de período aceitos pelo resolvedor de datas
const (
	RangeToday       = "Today"
	RangeYesterday   = "Yesterday"
	RangeLast7Days   = "Last 7 days"
	RangeLast30Days  = "Last 30 days"
	RangeLast60Days  = "Last 60 days"
	RangeLast90Days  = "Last 90 days"
	RangeThisMonth   = "This Month"
	RangeLastMonth   = "Last Month"
	RangeThisQuarter = "This Quarter"
	RangeLastQuarter = "Last Quarter"
	RangeThisYear    = "This Year"
	RangeLastYear    = "Last Year"
)

// DateRange é um intervalo [StartDate, EndDate] em granularidade de dia
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// ResolveDateRange mapeia um rótulo de período para um intervalo concreto de
// datas relativo a "now". Para períodos abertos o fim é o final do dia
// corrente (23:59:59.999); para períodos fechados no passado ambos os limites
// caem em fronteiras de calendário. Rótulos desconhecidos resolvem como Today.
// A função é pura: o relógio é sempre injetado pelo chamador.
func ResolveDateRange(label string, now time.Time) DateRange {
	today := startOfDay(now)

	switch label {
	case RangeYesterday:
		y := today.AddDate(0, 0, -1)
		return DateRange{StartDate: y, EndDate: endOfDay(y)}
	case RangeLast7Days:
		return DateRange{StartDate: today.AddDate(0, 0, -7), EndDate: endOfDay(now)}
	case RangeLast30Days:
		return DateRange{StartDate: today.AddDate(0, 0, -30), EndDate: endOfDay(now)}
	case RangeLast60Days:
		return DateRange{StartDate: today.AddDate(0, 0, -60), EndDate: endOfDay(now)}
	case RangeLast90Days:
		return DateRange{StartDate: today.AddDate(0, 0, -90), EndDate: endOfDay(now)}
	case RangeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{StartDate: start, EndDate: endOfDay(now)}
	case RangeLastMonth:
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start := firstOfThis.AddDate(0, -1, 0)
		return DateRange{StartDate: start, EndDate: endOfDay(firstOfThis.AddDate(0, 0, -1))}
	case RangeThisQuarter:
		start := startOfQuarter(now)
		return DateRange{StartDate: start, EndDate: endOfDay(now)}
	case RangeLastQuarter:
		thisQ := startOfQuarter(now)
		start := thisQ.AddDate(0, -3, 0)
		return DateRange{StartDate: start, EndDate: endOfDay(thisQ.AddDate(0, 0, -1))}
	case RangeThisYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return DateRange{StartDate: start, EndDate: endOfDay(now)}
	case RangeLastYear:
		start := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, now.Location())
		return DateRange{StartDate: start, EndDate: endOfDay(end)}
	case RangeToday:
		return DateRange{StartDate: today, EndDate: endOfDay(now)}
	}

	// Rótulo desconhecido cai para Today
	return DateRange{StartDate: today, EndDate: endOfDay(now)}
}

// TimeRangeBucket converte um rótulo de período no bucket esperado pela fonte
// de dados (enum grosseiro usado na requisição remota).
func TimeRangeBucket(label string) string {
	switch label {
	case RangeToday:
		return "TODAY"
	case RangeYesterday:
		return "YESTERDAY"
	case RangeLast7Days:
		return "LAST_7_DAYS"
	case RangeLast30Days:
		return "LAST_30_DAYS"
	case RangeLast60Days:
		return "LAST_60_DAYS"
	case RangeLast90Days:
		return "LAST_90_DAYS"
	case RangeThisMonth:
		return "THIS_MONTH"
	case RangeLastMonth:
		return "LAST_MONTH"
	case RangeThisQuarter:
		return "THIS_QUARTER"
	case RangeLastQuarter:
		return "LAST_QUARTER"
	case RangeThisYear:
		return "THIS_YEAR"
	case RangeLastYear:
		return "LAST_YEAR"
	}
	return "TODAY"
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func startOfQuarter(t time.Time) time.Time {
	quarterMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
}
