package main

import (
	"time"
)

// Segment tags the extractor acts on. Anything else is recorded in
// the audit trail and otherwise skipped.
const (
	segClaim      = "CLP"
	segEntity     = "NM1"
	segDate       = "DTM"
	segService    = "SVC"
	segAdjustment = "CAS"
)

// CLP element positions.
const (
	clpPatientControlNumber = 1
	clpStatusCode           = 2
	clpTotalCharge          = 3
	clpPayment              = 4
	clpPatientResp          = 5
	clpPayerControlNumber   = 7
	clpFacilityType         = 8
	clpFrequencyCode        = 9
)

// NM1 element positions and entity qualifiers.
const (
	nm1Qualifier = 1
	nm1IDCode    = 9
)

// entityKind classifies an NM1 entity qualifier: QC/IL identify the
// patient or insured, 82/85 the rendering or billing provider.
func entityKind(qualifier string) int {
	switch qualifier {
	case "QC", "IL":
		return entityPatient
	case "82", "85":
		return entityProvider
	}
	return entityOther
}

const (
	entityOther = iota
	entityPatient
	entityProvider
)

// DTM element positions and date qualifiers. 472 is the service-line
// date; 232/233 (statement period) and 050 (received) are claim-level.
const (
	dtmQualifier = 1
	dtmDate      = 2

	dtmServiceDate = "472"
)

func isClaimDateQualifier(q string) bool {
	return q == "232" || q == "233" || q == "050"
}

// SVC and CAS element positions.
const (
	svcProcedureComposite = 1
	svcCharge             = 2
	svcPaid               = 3

	casGroupCode  = 1
	casReasonCode = 2
	casAmount     = 3
)

// extractBatch walks the segment sequence once, left to right, and
// emits the full persistence batch. Claim and service identity inside
// the batch is the emission index; the sink maps indices to
// store-assigned keys in the same order.
//
// Field-local problems (short segments, non-numeric amounts, bad
// dates) degrade to absent values. Structural problems (a service
// line with no open claim) are dropped and counted in
// Batch.Anomalies — an orphan row must never alias another claim.
func extractBatch(segments []Segment, sourceName string, ingestedAt time.Time, seps Separators) *Batch {
	b := &Batch{SourceName: sourceName, IngestedAt: ingestedAt}
	ctx := newParseContext()

	for _, seg := range segments {
		// Audit trail first, regardless of tag handling.
		b.Raw = append(b.Raw, RawSegment{
			Type:    fieldAt(seg.Fields, 0),
			Content: seg.Text,
		})

		switch fieldAt(seg.Fields, 0) {
		case segClaim:
			extractClaim(b, &ctx, seg.Fields)
		case segEntity:
			extractEntity(b, &ctx, seg.Fields)
		case segDate:
			extractDate(b, &ctx, seg.Fields)
		case segService:
			extractService(b, &ctx, seg.Fields, seps)
		case segAdjustment:
			extractAdjustment(b, &ctx, seg.Fields)
		}
	}

	return b
}

// extractClaim opens a new claim: all claim-scoped context resets,
// then the CLP fields become a new Claim record.
func extractClaim(b *Batch, ctx *parseContext, f []string) {
	ctx.resetClaim()

	b.Claims = append(b.Claims, Claim{
		PatientControlNumber:    fieldAt(f, clpPatientControlNumber),
		StatusCode:              fieldAt(f, clpStatusCode),
		TotalCharge:             parseAmount(fieldAt(f, clpTotalCharge)),
		Payment:                 parseAmount(fieldAt(f, clpPayment)),
		PatientResponsibility:   parseAmount(fieldAt(f, clpPatientResp)),
		PayerClaimControlNumber: fieldAt(f, clpPayerControlNumber),
		FacilityTypeCode:        fieldAt(f, clpFacilityType),
		FrequencyCode:           fieldAt(f, clpFrequencyCode),
	})
	ctx.claim = len(b.Claims) - 1
}

// extractEntity tracks patient/provider identifiers and, when a claim
// is open and a value actually changed, patches the claim. Only
// non-empty values go into the patch so an absent identifier can
// never null out one already persisted.
func extractEntity(b *Batch, ctx *parseContext, f []string) {
	id := fieldAt(f, nm1IDCode)

	var changed bool
	switch entityKind(fieldAt(f, nm1Qualifier)) {
	case entityPatient:
		changed = id != ctx.patientID
		ctx.patientID = id
	case entityProvider:
		changed = id != ctx.providerID
		ctx.providerID = id
	default:
		return
	}

	if ctx.claim < 0 || !changed {
		return
	}

	patch := ClaimPatch{Claim: ctx.claim}
	if ctx.patientID != "" {
		patch.PatientID = strptr(ctx.patientID)
	}
	if ctx.providerID != "" {
		patch.ProviderID = strptr(ctx.providerID)
	}
	if patch.PatientID == nil && patch.ProviderID == nil {
		return
	}
	b.ClaimPatches = append(b.ClaimPatches, patch)
}

// extractDate routes a DTM segment to the pending service (472) or to
// the open claim (statement/received qualifiers). Unparseable dates
// yield no patch.
func extractDate(b *Batch, ctx *parseContext, f []string) {
	date := parseDate(fieldAt(f, dtmDate))
	if date == nil {
		return
	}

	qualifier := fieldAt(f, dtmQualifier)
	switch {
	case qualifier == dtmServiceDate && ctx.service >= 0:
		b.ServicePatches = append(b.ServicePatches, ServicePatch{
			Service:     ctx.service,
			ServiceDate: date,
		})
	case isClaimDateQualifier(qualifier) && ctx.claim >= 0:
		b.ClaimPatches = append(b.ClaimPatches, ClaimPatch{
			Claim:       ctx.claim,
			ServiceDate: date,
		})
	}
}

// extractService emits a service line under the open claim. With no
// open claim the line is dropped and counted; the pending-service
// context stays unset so trailing CAS/DTM segments are ignored too.
func extractService(b *Batch, ctx *parseContext, f []string, seps Separators) {
	if ctx.claim < 0 {
		b.Anomalies++
		return
	}

	components := SplitComposite(fieldAt(f, svcProcedureComposite), seps.Component)
	b.Services = append(b.Services, Service{
		Claim:         ctx.claim,
		ProcedureCode: componentAt(components, 1),
		Charge:        parseAmount(fieldAt(f, svcCharge)),
		Paid:          parseAmount(fieldAt(f, svcPaid)),
	})
	ctx.service = len(b.Services) - 1
}

// extractAdjustment patches the pending service's single adjustment
// slot, overwriting whatever an earlier CAS put there. Without a
// pending service the segment has no target and is skipped.
func extractAdjustment(b *Batch, ctx *parseContext, f []string) {
	if ctx.service < 0 {
		return
	}

	b.ServicePatches = append(b.ServicePatches, ServicePatch{
		Service: ctx.service,
		Adjustment: &Adjustment{
			GroupCode:  fieldAt(f, casGroupCode),
			ReasonCode: fieldAt(f, casReasonCode),
			Amount:     parseAmount(fieldAt(f, casAmount)),
		},
	})
}

func strptr(s string) *string {
	return &s
}
