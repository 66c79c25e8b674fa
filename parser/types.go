package main

import (
	"strconv"
	"time"
)

// RawSegment is the audit-trail record: one per non-empty segment,
// emitted unconditionally before any tag-specific handling.
type RawSegment struct {
	Type    string // first field of the segment, trimmed
	Content string // verbatim segment text
}

// Claim is one CLP segment. Amount fields are nil when the source
// field was empty or non-numeric. PatientID, ProviderID and
// ServiceDate arrive later via ClaimPatch.
type Claim struct {
	PatientControlNumber    string
	StatusCode              string
	TotalCharge             *float64
	Payment                 *float64
	PatientResponsibility   *float64
	PayerClaimControlNumber string
	FacilityTypeCode        string
	FrequencyCode           string
}

// ClaimPatch completes an already-emitted claim. Claim is the
// emission index into Batch.Claims; the sink resolves it to the
// store-assigned key. Nil fields are left untouched (skip-null rule),
// and a non-null column is never regressed to null.
type ClaimPatch struct {
	Claim       int
	PatientID   *string
	ProviderID  *string
	ServiceDate *time.Time
}

// Service is one SVC segment, owned by the claim at emission index
// Claim. Orphan service lines (no open claim) are never emitted; they
// are counted as anomalies instead.
type Service struct {
	Claim         int
	ProcedureCode string
	Charge        *float64
	Paid          *float64
}

// Adjustment is the single adjustment slot of a service line. A later
// CAS segment for the same service overwrites the whole triple.
type Adjustment struct {
	GroupCode  string
	ReasonCode string
	Amount     *float64
}

// ServicePatch completes an already-emitted service: a service date,
// an adjustment, or both. Service is the emission index into
// Batch.Services.
type ServicePatch struct {
	Service     int
	ServiceDate *time.Time
	Adjustment  *Adjustment
}

// Batch is everything one extraction pass emits, in emission order.
// The sink persists it as a single transaction.
type Batch struct {
	SourceName string
	IngestedAt time.Time

	Raw            []RawSegment
	Claims         []Claim
	ClaimPatches   []ClaimPatch
	Services       []Service
	ServicePatches []ServicePatch

	// Anomalies counts structural problems absorbed during the pass,
	// currently only orphan service lines.
	Anomalies int
}

// parseContext threads claim/service context through one extraction
// pass. It is owned by the run and never shared.
type parseContext struct {
	claim      int    // emission index of the open claim, -1 when none
	service    int    // emission index of the pending service, -1 when none
	patientID  string // from the latest patient NM1, reset per claim
	providerID string // from the latest provider NM1, reset per claim
}

func newParseContext() parseContext {
	return parseContext{claim: -1, service: -1}
}

// resetClaim clears all claim-scoped context. Called on every CLP
// before the new claim is emitted.
func (c *parseContext) resetClaim() {
	c.claim = -1
	c.service = -1
	c.patientID = ""
	c.providerID = ""
}

// parseAmount maps a monetary field to a value, or nil when the field
// is absent or non-numeric. Malformed amounts are field-local noise,
// never an abort.
func parseAmount(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseDate maps an 8-digit CCYYMMDD field to a date, or nil for
// anything else (wrong length, non-digits, impossible month/day).
func parseDate(s string) *time.Time {
	if len(s) != 8 {
		return nil
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return nil
	}
	return &t
}
