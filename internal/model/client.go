package model

import "time"

// Client represents a subscription customer as stored in the `clients`
// table and as serialized over the REST API. The entry date is kept as the
// plain `YYYY-M-D` string the client submitted; all date arithmetic is done
// by the expiry package at display time and never persisted.
//
// Fields:
//  ID               – server-assigned UUID, immutable after creation.
//  FullName         – customer name, trimmed, at least 4 characters.
//  Phone            – phone number, free-form but with at least 6 digits.
//  Country          – canonical country name from the fixed enumeration.
//  MACAddress       – 12 hex digits stored uppercase in colon-grouped pairs.
//  EntryDate        – subscription start date, local calendar, `YYYY-M-D`.
//  SubscriptionDays – subscription length in days, never negative.
//  IsPaid           – payment flag, display semantics only.
//  IsArchived       – soft-delete flag; archived rows leave the active list.
type Client struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Phone            string    `json:"phone"`
	Country          string    `json:"country"`
	MACAddress       string    `json:"macAddress"`
	EntryDate        string    `json:"entryDate"`
	SubscriptionDays int       `json:"subscriptionDays"`
	IsPaid           bool      `json:"isPaid"`
	IsArchived       bool      `json:"isArchived"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ClientFields carries the user-settable subset of a client record. It is
// the payload of create, update and import requests; the server assigns ID
// and timestamps.
type ClientFields struct {
	FullName         string `json:"fullName"`
	Phone            string `json:"phone"`
	Country          string `json:"country"`
	MACAddress       string `json:"macAddress"`
	EntryDate        string `json:"entryDate"`
	SubscriptionDays int    `json:"subscriptionDays"`
	IsPaid           bool   `json:"isPaid"`
}
