package aws

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/jdlms/aws-costs/internal/cache"
)

const dateLayout = "2006-01-02"

// period is a [start, end) billing window with its display label
type period struct {
	Start time.Time
	End   time.Time
	Label string
}

func (p period) interval() awstypes.DateInterval {
	return awstypes.DateInterval{
		Start: aws.String(p.Start.Format(dateLayout)),
		End:   aws.String(p.End.Format(dateLayout)),
	}
}

func (p period) key() string {
	return cache.Key(p.Start.Format(dateLayout), p.End.Format(dateLayout))
}

func firstOfMonth(t time.Time, monthsBack int) time.Time {
	return time.Date(t.Year(), t.Month()-time.Month(monthsBack), 1, 0, 0, 0, 0, t.Location())
}

func tomorrow(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// currentMonthPeriod covers the month to date. The end is tomorrow because
// Cost Explorer treats it as exclusive.
func currentMonthPeriod(now time.Time) period {
	start := firstOfMonth(now, 0)
	return period{Start: start, End: tomorrow(now), Label: start.Format("January 2006")}
}

// previousMonthPeriod covers the whole of last month
func previousMonthPeriod(now time.Time) period {
	start := firstOfMonth(now, 1)
	return period{Start: start, End: firstOfMonth(now, 0), Label: start.Format("January 2006")}
}

// monthPeriod covers the month monthsBack months before now. The current
// month (monthsBack 0) is capped at tomorrow.
func monthPeriod(now time.Time, monthsBack int) period {
	start := firstOfMonth(now, monthsBack)
	end := start.AddDate(0, 1, 0)
	if monthsBack == 0 {
		if t := tomorrow(now); t.Before(end) {
			end = t
		}
	}
	return period{Start: start, End: end, Label: start.Format("January 2006")}
}
