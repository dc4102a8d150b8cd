package usecase

import (
	"time"

	"lcm-booking/internal/data/entity"
	"lcm-booking/pkg/utils"
)

// BookingWindow holds the scheduling rules: working hours (minutes since
// midnight) and the launch date. All arithmetic stays within a single day;
// there is no overnight wraparound, so a job running past midnight can never
// satisfy the work-end check.
type BookingWindow struct {
	WorkStartMin int
	WorkEndMin   int
	LaunchDate   time.Time
}

func NewBookingWindow(config utils.BookingConfig) BookingWindow {
	return BookingWindow{
		WorkStartMin: config.WorkStartMin,
		WorkEndMin:   config.WorkEndMin,
		LaunchDate:   config.LaunchDate,
	}
}

// Weekday reports whether the date falls Monday through Friday.
func (w BookingWindow) Weekday(date time.Time) bool {
	day := date.Weekday()
	return day != time.Saturday && day != time.Sunday
}

// OnOrAfterLaunch reports whether the date is on or after the launch date.
// Kept separate from Weekday so rejections can name the actual reason.
func (w BookingWindow) OnOrAfterLaunch(date time.Time) bool {
	return !date.Before(w.LaunchDate)
}

// StartsAfterOpen reports whether the start time is no earlier than opening.
func (w BookingWindow) StartsAfterOpen(startMin int) bool {
	return startMin >= w.WorkStartMin
}

// FitsWorkday computes endMin = startMin + durationMin and reports whether
// the job finishes by closing time. The computed end is returned either way
// so rejections can show when the job would have finished.
func (w BookingWindow) FitsWorkday(startMin, durationMin int) (bool, int) {
	endMin := startMin + durationMin
	return endMin <= w.WorkEndMin, endMin
}

// aggregateTotals sums price and duration over the selected services. Order
// of the slice does not matter.
func aggregateTotals(services []*entity.Service) (pricePence, durationMin int) {
	for _, s := range services {
		pricePence += s.PricePence
		durationMin += s.DurationMin
	}
	return pricePence, durationMin
}
