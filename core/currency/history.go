package currency

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// MaxDeviation bounds the simulated daily move (2.5%)
var MaxDeviation = decimal.RequireFromString("0.025")

// MaxHistoryDays is the longest history simulated
const MaxHistoryDays = 365

// Point is one simulated daily quote
type Point struct {
	Date time.Time       `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// History simulates days of quotes ending at now. Every earlier day
// deviates from rate by at most MaxDeviation, rounded to 4 places; the
// last point is rate exactly. The feed has no history, so charts use this.
func History(rate decimal.Decimal, days int, now time.Time, rng *rand.Rand) []Point {
	if days <= 0 {
		return nil
	}
	days = min(days, MaxHistoryDays)
	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
	}

	two := decimal.NewFromInt(2)
	half := decimal.RequireFromString("0.5")
	one := decimal.NewFromInt(1)

	points := make([]Point, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		if i == 0 {
			points = append(points, Point{Date: date, Rate: rate})
			continue
		}
		u := decimal.NewFromFloat(rng.Float64())
		change := u.Sub(half).Mul(two).Mul(MaxDeviation)
		points = append(points, Point{
			Date: date,
			Rate: rate.Mul(one.Add(change)).Round(4),
		})
	}
	return points
}

// Window returns the last n points of a history (7 or 30 day charts)
func Window(points []Point, n int) []Point {
	if n >= len(points) || n <= 0 {
		return points
	}
	return points[len(points)-n:]
}
