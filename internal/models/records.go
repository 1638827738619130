// Package models defines the persisted record types for the BuildCalc
// collections: purchases, calculations, projects and material prices.
package models

import (
	"encoding/json"
	"time"
)

// PurchaseStatus is the lifecycle state of a purchase record. Only
// completed purchases are persisted, so "purchased" is the sole value.
type PurchaseStatus string

const PurchaseStatusPurchased PurchaseStatus = "purchased"

// Purchase is the durable proof of a completed purchase. The purchases
// collection is keyed by ProductID, so a second purchase of the same
// product overwrites rather than duplicates.
type Purchase struct {
	ProductID string
	Token     string
	Timestamp time.Time
	Status    PurchaseStatus
}

// CalcType classifies a calculation kind.
type CalcType string

const (
	CalcTypeCement CalcType = "cement"
	CalcTypeBrick  CalcType = "brick"
	CalcTypeArea   CalcType = "area"
	CalcTypeVolume CalcType = "volume"
	CalcTypeLabor  CalcType = "labor"
)

// Calculation is one entry of the append-only calculation log. Inputs holds
// the calculator-specific input struct as JSON; Results is the rendered
// line-item breakdown. Records are never updated or deleted.
type Calculation struct {
	ID        int64
	Type      CalcType
	Timestamp time.Time
	Inputs    json.RawMessage
	Results   []ResultLine
}

// Project is a saved, named calculation the user can reload and overwrite.
// Timestamp is the creation instant; LastModified changes on every save.
type Project struct {
	ID           int64
	Name         string
	Type         CalcType
	Timestamp    time.Time
	LastModified time.Time
	Inputs       json.RawMessage
	Results      []ResultLine
	Description  string
}

// MaterialPrice is one row of the local price book, keyed by material name.
// Writes are last-writer-wins; there is no merge.
type MaterialPrice struct {
	Material    string
	Price       float64
	Unit        string
	LastUpdated time.Time
}
