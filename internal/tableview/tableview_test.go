package tableview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekvision/crm-server/internal/model"
)

var testToday = time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)

func sample() []model.Client {
	return []model.Client{
		{ID: "1", FullName: "João Silva", Phone: "(11) 99999-9999", Country: "Brasil", MACAddress: "00:1B:44:11:3A:B7", EntryDate: "2024-01-15", SubscriptionDays: 10, IsPaid: true},
		{ID: "2", FullName: "Maria Santos", Phone: "+351 21 123 456", Country: "Portugal", MACAddress: "A4:83:E7:4C:2D:91", EntryDate: "2024-01-01", SubscriptionDays: 30, IsPaid: false},
		{ID: "3", FullName: "Pedro Costa", Phone: "(85) 3222-1000", Country: "Brasil", MACAddress: "2C:54:91:88:C9:E3", EntryDate: "2023-06-01", SubscriptionDays: 0, IsPaid: false},
	}
}

func ids(clients []model.Client) []string {
	out := make([]string, len(clients))
	for i, c := range clients {
		out[i] = c.ID
	}
	return out
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("macAddress")
	require.True(t, ok)
	assert.Equal(t, FieldMACAddress, f)

	_, ok = ParseField("macaddress")
	assert.False(t, ok, "field names are exact, not case-folded")

	_, ok = ParseField("nonsense")
	assert.False(t, ok)
}

func TestParseQuickFilter(t *testing.T) {
	for in, want := range map[string]QuickFilter{
		"": QuickAll, "all": QuickAll, "10": QuickExpiring10, "30": QuickExpiring30, "pending": QuickPending,
	} {
		got, ok := ParseQuickFilter(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, want, got)
	}
	_, ok := ParseQuickFilter("20")
	assert.False(t, ok)
}

func TestSearchDiacriticInsensitive(t *testing.T) {
	got := Apply(sample(), testToday, Query{Search: "Joao"})
	assert.Equal(t, []string{"1"}, ids(got))

	got = Apply(sample(), testToday, Query{Search: "joão"})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestSearchPhoneDigitsOnly(t *testing.T) {
	got := Apply(sample(), testToday, Query{Search: "1199"})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestSearchMACAndCountry(t *testing.T) {
	got := Apply(sample(), testToday, Query{Search: "a4:83"})
	assert.Equal(t, []string{"2"}, ids(got))

	got = Apply(sample(), testToday, Query{Search: "brasil"})
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestFieldFilters(t *testing.T) {
	got := Apply(sample(), testToday, Query{Filters: map[Field]string{FieldCountry: "portu"}})
	assert.Equal(t, []string{"2"}, ids(got))

	// "todos" and empty values are no-ops.
	got = Apply(sample(), testToday, Query{Filters: map[Field]string{FieldCountry: "todos", FieldPhone: " "}})
	assert.Len(t, got, 3)
}

func TestStatusFilter(t *testing.T) {
	all := sample()
	assert.Equal(t, []string{"1"}, ids(Apply(all, testToday, Query{Filters: map[Field]string{FieldIsPaid: StatusActive}})))
	assert.Equal(t, []string{"2"}, ids(Apply(all, testToday, Query{Filters: map[Field]string{FieldIsPaid: StatusPending}})))
	assert.Equal(t, []string{"3"}, ids(Apply(all, testToday, Query{Filters: map[Field]string{FieldIsPaid: StatusNotActive}})))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, StatusNotActive, StatusLabel(model.Client{SubscriptionDays: 0, IsPaid: true}))
	assert.Equal(t, StatusActive, StatusLabel(model.Client{SubscriptionDays: 5, IsPaid: true}))
	assert.Equal(t, StatusPending, StatusLabel(model.Client{SubscriptionDays: 5, IsPaid: false}))
}

func TestQuickFilters(t *testing.T) {
	all := sample()
	// Client 1 expires jan 25 (5 days), client 2 jan 31 (11 days), client 3 inactive.
	assert.Equal(t, []string{"1"}, ids(Apply(all, testToday, Query{Quick: QuickExpiring10})))
	assert.Equal(t, []string{"1", "2"}, ids(Apply(all, testToday, Query{Quick: QuickExpiring30})))
	assert.Equal(t, []string{"2", "3"}, ids(Apply(all, testToday, Query{Quick: QuickPending})))
}

func TestSortAscDesc(t *testing.T) {
	asc := Apply(sample(), testToday, Query{Sort: &SortOrder{Key: FieldFullName}})
	assert.Equal(t, []string{"1", "2", "3"}, ids(asc)) // João < Maria < Pedro

	desc := Apply(sample(), testToday, Query{Sort: &SortOrder{Key: FieldFullName, Desc: true}})
	assert.Equal(t, []string{"3", "2", "1"}, ids(desc))
}

func TestSortNumeric(t *testing.T) {
	clients := []model.Client{
		{ID: "a", SubscriptionDays: 40},
		{ID: "b", SubscriptionDays: 5},
	}
	// Numeric ordering: 5 < 40. Lexicographic would say "40" < "5".
	got := Apply(clients, testToday, Query{Sort: &SortOrder{Key: FieldSubscriptionDays}})
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestSortIdempotentAndReversible(t *testing.T) {
	q := Query{Sort: &SortOrder{Key: FieldEntryDate}}
	once := Apply(sample(), testToday, q)
	twice := Apply(once, testToday, q)
	assert.Equal(t, ids(once), ids(twice))

	rev := Apply(sample(), testToday, Query{Sort: &SortOrder{Key: FieldEntryDate, Desc: true}})
	want := ids(once)
	for i, j := 0, len(want)-1; i < j; i, j = i+1, j-1 {
		want[i], want[j] = want[j], want[i]
	}
	assert.Equal(t, want, ids(rev))
}

func TestSortStable(t *testing.T) {
	// Two records share a country; their relative input order must survive
	// sorting on that key.
	clients := []model.Client{
		{ID: "a", FullName: "Um", Country: "Brasil"},
		{ID: "b", FullName: "Dois", Country: "Angola"},
		{ID: "c", FullName: "Três", Country: "Brasil"},
	}
	got := Apply(clients, testToday, Query{Sort: &SortOrder{Key: FieldCountry}})
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func TestNextSort(t *testing.T) {
	s := NextSort(nil, FieldPhone)
	assert.Equal(t, SortOrder{Key: FieldPhone}, s)

	// Same key again flips direction.
	s = NextSort(&s, FieldPhone)
	assert.Equal(t, SortOrder{Key: FieldPhone, Desc: true}, s)

	// A different key resets to ascending.
	s = NextSort(&s, FieldCountry)
	assert.Equal(t, SortOrder{Key: FieldCountry}, s)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := sample()
	_ = Apply(in, testToday, Query{
		Quick:   QuickPending,
		Filters: map[Field]string{FieldCountry: "bra"},
		Search:  "pedro",
		Sort:    &SortOrder{Key: FieldFullName, Desc: true},
	})
	assert.Equal(t, []string{"1", "2", "3"}, ids(in))
}

func TestPipelineOrderSearchAfterQuick(t *testing.T) {
	// Pending quick filter narrows to clients 2 and 3; the search then only
	// sees those.
	got := Apply(sample(), testToday, Query{Quick: QuickPending, Search: "brasil"})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestApplyDeterministic(t *testing.T) {
	q := Query{
		Filters: map[Field]string{FieldCountry: "a", FieldEntryDate: "2024"},
		Sort:    &SortOrder{Key: FieldFullName},
	}
	first := ids(Apply(sample(), testToday, q))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ids(Apply(sample(), testToday, q)))
	}
}
