package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekvision/crm-server/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseEntryDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-15", true},
		{"2024-1-5", true},
		{"2024/01/15", false},
		{"2024-01", false},
		{"2024-01-15-00", false},
		{"", false},
		{"abcd-ef-gh", false},
	}
	for _, tc := range cases {
		got, ok := ParseEntryDate(tc.in, time.UTC)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, time.UTC, got.Location())
		}
	}

	got, ok := ParseEntryDate("2024-1-5", time.UTC)
	require.True(t, ok)
	assert.Equal(t, day(2024, time.January, 5), got)
}

func TestDaysToExpiry(t *testing.T) {
	today := day(2024, time.January, 20)

	// entryDate 2024-01-01 + 30 days -> expiry 2024-01-31 -> 11 days out.
	c := model.Client{EntryDate: "2024-01-01", SubscriptionDays: 30}
	d, ok := DaysToExpiry(c, today)
	require.True(t, ok)
	assert.Equal(t, 11, d)

	// Entered today with a 10 day subscription: exactly 10 days remain.
	c = model.Client{EntryDate: "2024-01-20", SubscriptionDays: 10}
	d, ok = DaysToExpiry(c, today)
	require.True(t, ok)
	assert.Equal(t, 10, d)

	// Already expired.
	c = model.Client{EntryDate: "2023-01-01", SubscriptionDays: 30}
	d, ok = DaysToExpiry(c, today)
	require.True(t, ok)
	assert.Less(t, d, 0)

	// Malformed date.
	c = model.Client{EntryDate: "not-a-date", SubscriptionDays: 30}
	_, ok = DaysToExpiry(c, today)
	assert.False(t, ok)
}

func TestExpiringWithinBoundaries(t *testing.T) {
	today := day(2024, time.January, 20)

	// Expires exactly today: inclusive boundary keeps it in both windows.
	c := model.Client{EntryDate: "2024-01-10", SubscriptionDays: 10}
	assert.True(t, ExpiringWithin(c, today, 10))
	assert.True(t, ExpiringWithin(c, today, 30))

	// 11 days out: only the 30 day window.
	c = model.Client{EntryDate: "2024-01-01", SubscriptionDays: 30}
	assert.False(t, ExpiringWithin(c, today, 10))
	assert.True(t, ExpiringWithin(c, today, 30))

	// Exactly on the 10 day bound.
	c = model.Client{EntryDate: "2024-01-20", SubscriptionDays: 10}
	assert.True(t, ExpiringWithin(c, today, 10))

	// Expired yesterday is out of every window.
	c = model.Client{EntryDate: "2024-01-09", SubscriptionDays: 10}
	assert.False(t, ExpiringWithin(c, today, 10))
	assert.False(t, ExpiringWithin(c, today, 30))
}

func TestInactiveNeverExpiring(t *testing.T) {
	today := day(2024, time.January, 20)

	// Zero-length subscription entered today: expiry equals today, but the
	// record is inactive and must stay out of the expiring buckets.
	c := model.Client{EntryDate: "2024-01-20", SubscriptionDays: 0}
	assert.True(t, Inactive(c))
	assert.False(t, ExpiringWithin(c, today, 10))
	assert.False(t, ExpiringWithin(c, today, 30))
}

func TestPendingPaymentIgnoresDates(t *testing.T) {
	c := model.Client{EntryDate: "garbage", SubscriptionDays: 0, IsPaid: false}
	assert.True(t, PendingPayment(c))
	c.IsPaid = true
	assert.False(t, PendingPayment(c))
}

func TestBuildReport(t *testing.T) {
	today := day(2024, time.January, 20)
	clients := []model.Client{
		{EntryDate: "2024-01-15", SubscriptionDays: 10, IsPaid: true},  // expires jan 25: in 10 and 30
		{EntryDate: "2024-01-01", SubscriptionDays: 30, IsPaid: false}, // expires jan 31: in 30 only, pending
		{EntryDate: "2024-01-20", SubscriptionDays: 0, IsPaid: false},  // inactive + pending
		{EntryDate: "bogus", SubscriptionDays: 15, IsPaid: false},      // malformed: pending only
		{EntryDate: "2024-01-15", SubscriptionDays: 5, IsPaid: true, IsArchived: true}, // archived: ignored
	}

	r := BuildReport(clients, today)
	assert.Equal(t, 1, r.ExpiringIn10)
	assert.Equal(t, 2, r.ExpiringIn30)
	assert.Equal(t, 3, r.Pending)
	assert.Equal(t, 1, r.Inactive)
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, time.March, 5, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, day(2024, time.March, 5), Midnight(in))
}
