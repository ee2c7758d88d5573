// Package tableview implements the in-memory filter/search/sort pipeline
// behind the client table. The pipeline is deterministic and side-effect
// free: the input slice is never mutated and equal inputs always produce
// the same output order and membership.
package tableview

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/trekvision/crm-server/internal/expiry"
	"github.com/trekvision/crm-server/internal/model"
	"github.com/trekvision/crm-server/internal/utils"
)

// Field enumerates the filterable/sortable columns. Keeping this closed
// (instead of accepting arbitrary field names) means a typo in a filter key
// is an error, not a silent no-op filter.
type Field int

const (
	FieldFullName Field = iota
	FieldPhone
	FieldCountry
	FieldMACAddress
	FieldEntryDate
	FieldSubscriptionDays
	FieldIsPaid
)

var fieldNames = map[Field]string{
	FieldFullName:         "fullName",
	FieldPhone:            "phone",
	FieldCountry:          "country",
	FieldMACAddress:       "macAddress",
	FieldEntryDate:        "entryDate",
	FieldSubscriptionDays: "subscriptionDays",
	FieldIsPaid:           "isPaid",
}

func (f Field) String() string { return fieldNames[f] }

// ParseField resolves a JSON field name to its Field. Unknown names return
// false instead of being ignored downstream.
func ParseField(s string) (Field, bool) {
	for f, name := range fieldNames {
		if name == s {
			return f, true
		}
	}
	return 0, false
}

// QuickFilter is the one-click bucket predicate applied before any other
// filtering. Values mirror the stat cards: expiring in 10 days, expiring in
// 30 days, pending payment.
type QuickFilter int

const (
	QuickAll QuickFilter = iota
	QuickExpiring10
	QuickExpiring30
	QuickPending
)

// ParseQuickFilter accepts the wire values "all", "10", "30" and "pending".
func ParseQuickFilter(s string) (QuickFilter, bool) {
	switch s {
	case "", "all":
		return QuickAll, true
	case "10":
		return QuickExpiring10, true
	case "30":
		return QuickExpiring30, true
	case "pending":
		return QuickPending, true
	}
	return QuickAll, false
}

// SortOrder selects the sort column and direction.
type SortOrder struct {
	Key  Field
	Desc bool
}

// NextSort implements the header-click rule: clicking the column that is
// already sorted ascending flips it to descending; any other click sorts
// that column ascending.
func NextSort(cur *SortOrder, key Field) SortOrder {
	if cur != nil && cur.Key == key && !cur.Desc {
		return SortOrder{Key: key, Desc: true}
	}
	return SortOrder{Key: key}
}

// Query bundles every input of the pipeline. Zero value means "show
// everything in storage order".
type Query struct {
	Quick   QuickFilter
	Filters map[Field]string
	Search  string
	Sort    *SortOrder
}

// Status labels derived from isPaid + subscriptionDays, used by the status
// column filter. A record with no subscription length is "nao-ativo"
// regardless of payment.
const (
	StatusActive    = "ativo"
	StatusPending   = "pendente"
	StatusNotActive = "nao-ativo"
)

// StatusLabel derives the display status of a client.
func StatusLabel(c model.Client) string {
	switch {
	case c.SubscriptionDays <= 0:
		return StatusNotActive
	case c.IsPaid:
		return StatusActive
	default:
		return StatusPending
	}
}

// Apply runs the pipeline: quick filter, then per-field filters, then
// free-text search, then a stable sort. Stage order is fixed; later stages
// assume the narrowing done by earlier ones. today must be normalized to
// midnight (see expiry.Midnight).
func Apply(clients []model.Client, today time.Time, q Query) []model.Client {
	out := make([]model.Client, len(clients))
	copy(out, clients)

	out = applyQuick(out, today, q.Quick)
	out = applyFilters(out, q.Filters)
	out = applySearch(out, q.Search)

	if q.Sort != nil {
		s := *q.Sort
		sort.SliceStable(out, func(i, j int) bool {
			if s.Desc {
				return less(out[j], out[i], s.Key)
			}
			return less(out[i], out[j], s.Key)
		})
	}
	return out
}

func applyQuick(in []model.Client, today time.Time, quick QuickFilter) []model.Client {
	if quick == QuickAll {
		return in
	}
	keep := in[:0]
	for _, c := range in {
		ok := false
		switch quick {
		case QuickPending:
			ok = expiry.PendingPayment(c)
		case QuickExpiring10:
			ok = expiry.ExpiringWithin(c, today, 10)
		case QuickExpiring30:
			ok = expiry.ExpiringWithin(c, today, 30)
		}
		if ok {
			keep = append(keep, c)
		}
	}
	return keep
}

func applyFilters(in []model.Client, filters map[Field]string) []model.Client {
	for f, raw := range filters {
		val := strings.ToLower(strings.TrimSpace(raw))
		if val == "" || val == "todos" {
			continue
		}
		keep := in[:0]
		for _, c := range in {
			if f == FieldIsPaid {
				// The status column filters on the derived label, not the
				// raw boolean.
				if StatusLabel(c) == val {
					keep = append(keep, c)
				}
				continue
			}
			if strings.Contains(strings.ToLower(fieldString(c, f)), val) {
				keep = append(keep, c)
			}
		}
		in = keep
	}
	return in
}

func applySearch(in []model.Client, term string) []model.Client {
	if term == "" {
		return in
	}
	norm := utils.NormalizeText(term)
	digits := utils.DigitsOnly(term)

	keep := in[:0]
	for _, c := range in {
		match := strings.Contains(utils.NormalizeText(c.FullName), norm) ||
			strings.Contains(utils.NormalizeText(c.Country), norm) ||
			strings.Contains(strings.ToLower(c.MACAddress), norm)
		if !match && digits != "" {
			match = strings.Contains(utils.DigitsOnly(c.Phone), digits)
		}
		if match {
			keep = append(keep, c)
		}
	}
	return keep
}

// less compares two clients on the given field using the field's natural
// ordering: numeric for the subscription length, false-before-true for the
// paid flag, lexicographic for everything else.
func less(a, b model.Client, f Field) bool {
	switch f {
	case FieldSubscriptionDays:
		return a.SubscriptionDays < b.SubscriptionDays
	case FieldIsPaid:
		return !a.IsPaid && b.IsPaid
	default:
		return fieldString(a, f) < fieldString(b, f)
	}
}

func fieldString(c model.Client, f Field) string {
	switch f {
	case FieldFullName:
		return c.FullName
	case FieldPhone:
		return c.Phone
	case FieldCountry:
		return c.Country
	case FieldMACAddress:
		return c.MACAddress
	case FieldEntryDate:
		return c.EntryDate
	case FieldSubscriptionDays:
		return strconv.Itoa(c.SubscriptionDays)
	case FieldIsPaid:
		return strconv.FormatBool(c.IsPaid)
	}
	return ""
}
