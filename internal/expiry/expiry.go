// Package expiry derives subscription status from a client's entry date and
// subscription length. Nothing here is persisted; every value is recomputed
// from the record at display time.
package expiry

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/trekvision/crm-server/internal/model"
)

// Report aggregates bucket counts over the active record set.
type Report struct {
	ExpiringIn10 int `json:"expiringIn10"`
	ExpiringIn30 int `json:"expiringIn30"`
	Pending      int `json:"totalPending"`
	Inactive     int `json:"totalInactive"`
}

// Today returns the current date normalized to local midnight. All bucket
// predicates expect a midnight-normalized reference date.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates t to 00:00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseEntryDate parses an entry date of exactly three dash-separated
// numeric components (year-month-day) into a midnight time in loc. The
// second return value is false for malformed input; callers must exclude
// such records from date-based buckets. A nil loc means time.Local.
func ParseEntryDate(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		n[i] = v
	}
	return time.Date(n[0], time.Month(n[1]), n[2], 0, 0, 0, 0, loc), true
}

// DaysToExpiry computes ceil((entryDate + subscriptionDays) - today) in
// days. Returns false when the entry date is malformed.
func DaysToExpiry(c model.Client, today time.Time) (int, bool) {
	entry, ok := ParseEntryDate(c.EntryDate, today.Location())
	if !ok {
		return 0, false
	}
	exp := entry.AddDate(0, 0, c.SubscriptionDays)
	diff := exp.Sub(today)
	return int(math.Ceil(diff.Hours() / 24)), true
}

// Inactive reports whether the subscription has no length at all.
func Inactive(c model.Client) bool {
	return c.SubscriptionDays <= 0
}

// PendingPayment reports whether the client has not paid, independent of
// any date.
func PendingPayment(c model.Client) bool {
	return !c.IsPaid
}

// ExpiringWithin reports whether the subscription expires today or within
// the next n days. The boundary is inclusive on both ends: a record
// expiring exactly today still counts. Inactive records are never
// "expiring", even when their computed expiry falls inside the window.
func ExpiringWithin(c model.Client, today time.Time, n int) bool {
	if Inactive(c) {
		return false
	}
	d, ok := DaysToExpiry(c, today)
	if !ok {
		return false
	}
	return d >= 0 && d <= n
}

// BuildReport counts bucket membership across the non-archived records.
// A record can land in several buckets at once (e.g. unpaid and expiring).
func BuildReport(clients []model.Client, today time.Time) Report {
	var r Report
	for _, c := range clients {
		if c.IsArchived {
			continue
		}
		if PendingPayment(c) {
			r.Pending++
		}
		if Inactive(c) {
			r.Inactive++
		}
		if ExpiringWithin(c, today, 10) {
			r.ExpiringIn10++
		}
		if ExpiringWithin(c, today, 30) {
			r.ExpiringIn30++
		}
	}
	return r
}
