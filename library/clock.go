package library

import "time"

// Clock supplies the current time. The Library consults it for loan
// timestamps and due-date checks; tests inject a fake to simulate time.
type Clock interface {
	Now() time.Time
}

// systemClock is the wall clock used outside tests.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DefaultVirtualDay is the accelerated duration substituted for a calendar
// day so due dates arrive quickly in demo sessions.
const DefaultVirtualDay = 10 * time.Second

// dueDate computes when a loan falls due under the given policy.
func dueDate(borrowedAt time.Time, p Policy, virtualDay time.Duration) time.Time {
	return borrowedAt.Add(time.Duration(p.BorrowDays) * virtualDay)
}
