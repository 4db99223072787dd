package weather

import (
	"time"
)

// IconBaseURL is the prefix of provider condition icons.
const IconBaseURL = "http://openweathermap.org/img/wn/"

// DateLayout is the human-readable date shown at the top of result pages.
const DateLayout = "Monday, January 02 2006"

// UnitsLetter returns the display letter for a unit system. Anything that is
// not exactly "imperial" or "metric" is shown as Kelvin.
func UnitsLetter(units string) string {
	switch units {
	case UnitsImperial:
		return "F"
	case UnitsMetric:
		return "C"
	default:
		return "K"
	}
}

// IconURL builds the 2x icon URL for a provider icon code.
func IconURL(code string) string {
	return IconBaseURL + code + "@2x.png"
}

// NewCityView maps a reading to display fields. Sunrise and sunset are
// rendered in loc.
func NewCityView(r Reading, units string, loc *time.Location) CityView {
	if loc == nil {
		loc = time.Local
	}
	return CityView{
		City:        r.City,
		Description: r.Description,
		Temp:        r.Temp,
		TempMin:     r.TempMin,
		TempMax:     r.TempMax,
		Humidity:    r.Humidity,
		WindSpeed:   r.WindSpeed,
		Sunrise:     time.Unix(r.Sunrise, 0).In(loc),
		Sunset:      time.Unix(r.Sunset, 0).In(loc),
		UnitsLetter: UnitsLetter(units),
		Icon:        IconURL(r.Icon),
	}
}

// NewResultsView assembles the single-city page model.
func NewResultsView(now time.Time, r Reading, units string, loc *time.Location) ResultsView {
	return ResultsView{
		Date:     now.Format(DateLayout),
		CityView: NewCityView(r, units, loc),
	}
}

// NewComparisonView assembles the two-city page model along with the four
// differences of city1 relative to city2.
func NewComparisonView(now time.Time, r1, r2 Reading, units string, loc *time.Location) ComparisonView {
	return ComparisonView{
		Date:      now.Format(DateLayout),
		City1:     NewCityView(r1, units, loc),
		City2:     NewCityView(r2, units, loc),
		TempDiff:  CalculateDifference(r1.Temp, r2.Temp, DiffTemp),
		HumidDiff: CalculateDifference(r1.Humidity, r2.Humidity, DiffHumidity),
		WindDiff:  CalculateDifference(r1.WindSpeed, r2.WindSpeed, DiffWind),
		SunDiff:   CalculateDifference(float64(r1.Sunset), float64(r2.Sunset), DiffSun),
	}
}

// NewHomeView returns the date range offered on the home page: the last five days.
func NewHomeView(now time.Time) HomeView {
	return HomeView{
		MinDate: now.AddDate(0, 0, -5),
		MaxDate: now,
	}
}
