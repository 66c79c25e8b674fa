package main

import (
	"testing"
	"time"
)

func extractInput(t *testing.T, input string) *Batch {
	t.Helper()
	seps := DefaultSeparators()
	return extractBatch(Tokenize(input, seps), "test.835", time.Now().UTC(), seps)
}

func TestExtractSampleRemittance(t *testing.T) {
	b := extractInput(t, "CLP|ABC123|1|100.00|80.00|20.00|||11||~SVC|HC^A0428^RJ|100.00|80.00~CAS|CO|45|20.00~")

	if len(b.Raw) != 3 {
		t.Fatalf("expected 3 raw segments, got %d", len(b.Raw))
	}
	if len(b.Claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(b.Claims))
	}
	if len(b.Services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(b.Services))
	}

	c := b.Claims[0]
	if c.PatientControlNumber != "ABC123" {
		t.Errorf("expected patient control number 'ABC123', got %q", c.PatientControlNumber)
	}
	if c.StatusCode != "1" {
		t.Errorf("expected status code '1', got %q", c.StatusCode)
	}
	if c.TotalCharge == nil || *c.TotalCharge != 100.00 {
		t.Errorf("expected total charge 100.00, got %v", c.TotalCharge)
	}
	if c.Payment == nil || *c.Payment != 80.00 {
		t.Errorf("expected payment 80.00, got %v", c.Payment)
	}
	if c.PatientResponsibility == nil || *c.PatientResponsibility != 20.00 {
		t.Errorf("expected patient responsibility 20.00, got %v", c.PatientResponsibility)
	}
	if c.FacilityTypeCode != "11" {
		t.Errorf("expected facility type '11', got %q", c.FacilityTypeCode)
	}

	s := b.Services[0]
	if s.Claim != 0 {
		t.Errorf("expected service owned by claim 0, got %d", s.Claim)
	}
	if s.ProcedureCode != "A0428" {
		t.Errorf("expected procedure code 'A0428', got %q", s.ProcedureCode)
	}
	if s.Charge == nil || *s.Charge != 100.00 {
		t.Errorf("expected charge 100.00, got %v", s.Charge)
	}
	if s.Paid == nil || *s.Paid != 80.00 {
		t.Errorf("expected paid 80.00, got %v", s.Paid)
	}

	if len(b.ServicePatches) != 1 {
		t.Fatalf("expected 1 service patch, got %d", len(b.ServicePatches))
	}
	adj := b.ServicePatches[0].Adjustment
	if adj == nil {
		t.Fatal("expected adjustment patch")
	}
	if adj.GroupCode != "CO" || adj.ReasonCode != "45" {
		t.Errorf("expected adjustment CO/45, got %s/%s", adj.GroupCode, adj.ReasonCode)
	}
	if adj.Amount == nil || *adj.Amount != 20.00 {
		t.Errorf("expected adjustment amount 20.00, got %v", adj.Amount)
	}
}

func TestRawSegmentCountIndependentOfParsing(t *testing.T) {
	// Unknown tags, truncated segments and garbage all still produce
	// exactly one audit record per non-empty segment.
	b := extractInput(t, "ISA|00~GS~CLP~ZZZ|junk|fields~   ~SVC~random garbage~")

	if len(b.Raw) != 6 {
		t.Errorf("expected 6 raw segments, got %d", len(b.Raw))
	}
	if b.Raw[3].Type != "ZZZ" {
		t.Errorf("expected segment type 'ZZZ', got %q", b.Raw[3].Type)
	}
	if b.Raw[5].Type != "random garbage" {
		t.Errorf("expected whole text as type for separator-free segment, got %q", b.Raw[5].Type)
	}
}

func TestBackToBackClaimsResetContext(t *testing.T) {
	b := extractInput(t, "CLP|FIRST|1|50.00~NM1|QC|1|DOE|JOHN||||MI|MEMBER1~CLP|SECOND|2|75.00~")

	if len(b.Claims) != 2 {
		t.Fatalf("expected 2 claims, got %d", len(b.Claims))
	}
	if len(b.Services) != 0 {
		t.Fatalf("expected 0 services, got %d", len(b.Services))
	}

	// The patient patch belongs to the first claim only; the second
	// claim starts with cleared context.
	if len(b.ClaimPatches) != 1 {
		t.Fatalf("expected 1 claim patch, got %d", len(b.ClaimPatches))
	}
	p := b.ClaimPatches[0]
	if p.Claim != 0 {
		t.Errorf("expected patch for claim 0, got claim %d", p.Claim)
	}
	if p.PatientID == nil || *p.PatientID != "MEMBER1" {
		t.Errorf("expected patient id 'MEMBER1', got %v", p.PatientID)
	}
}

func TestOrphanServiceRejected(t *testing.T) {
	b := extractInput(t, "SVC|HC^A0428|100.00|80.00~CAS|CO|45|20.00~CLP|ABC|1|100.00~")

	if len(b.Services) != 0 {
		t.Fatalf("expected orphan service to be dropped, got %d services", len(b.Services))
	}
	if b.Anomalies != 1 {
		t.Errorf("expected 1 anomaly, got %d", b.Anomalies)
	}
	// The CAS had no pending service to attach to.
	if len(b.ServicePatches) != 0 {
		t.Errorf("expected 0 service patches, got %d", len(b.ServicePatches))
	}
	// The claim after the orphan still parses normally.
	if len(b.Claims) != 1 {
		t.Errorf("expected 1 claim, got %d", len(b.Claims))
	}
	// All three segments are still audited.
	if len(b.Raw) != 3 {
		t.Errorf("expected 3 raw segments, got %d", len(b.Raw))
	}
}

func TestAdjustmentTargetsLatestService(t *testing.T) {
	b := extractInput(t, "CLP|ABC|1|200.00~SVC|HC^FIRST|100.00~SVC|HC^SECOND|100.00~CAS|PR|1|15.00~")

	if len(b.Services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(b.Services))
	}
	if len(b.ServicePatches) != 1 {
		t.Fatalf("expected 1 service patch, got %d", len(b.ServicePatches))
	}
	if b.ServicePatches[0].Service != 1 {
		t.Errorf("expected adjustment on service 1, got service %d", b.ServicePatches[0].Service)
	}
}

func TestAdjustmentOverwritesPriorSlot(t *testing.T) {
	b := extractInput(t, "CLP|ABC|1|100.00~SVC|HC^A0428|100.00~CAS|CO|45|20.00~CAS|PR|2|5.00~")

	// Both patches target the same service; the sink applies them in
	// emission order so the second wins.
	if len(b.ServicePatches) != 2 {
		t.Fatalf("expected 2 service patches, got %d", len(b.ServicePatches))
	}
	last := b.ServicePatches[1].Adjustment
	if last.GroupCode != "PR" || last.ReasonCode != "2" {
		t.Errorf("expected final adjustment PR/2, got %s/%s", last.GroupCode, last.ReasonCode)
	}
}

func TestMalformedAmountsMapToNil(t *testing.T) {
	b := extractInput(t, "CLP|ABC|1|not-a-number||12.50~SVC|HC^X|12,00|abc~")

	c := b.Claims[0]
	if c.TotalCharge != nil {
		t.Errorf("expected nil total charge for non-numeric field, got %v", *c.TotalCharge)
	}
	if c.Payment != nil {
		t.Errorf("expected nil payment for empty field, got %v", *c.Payment)
	}
	if c.PatientResponsibility == nil || *c.PatientResponsibility != 12.50 {
		t.Errorf("expected patient responsibility 12.50, got %v", c.PatientResponsibility)
	}

	s := b.Services[0]
	if s.Charge != nil || s.Paid != nil {
		t.Errorf("expected nil charge/paid for malformed amounts, got %v/%v", s.Charge, s.Paid)
	}
}

func TestTruncatedClaimSegment(t *testing.T) {
	b := extractInput(t, "CLP|ABC~")

	c := b.Claims[0]
	if c.PatientControlNumber != "ABC" {
		t.Errorf("expected patient control number 'ABC', got %q", c.PatientControlNumber)
	}
	if c.StatusCode != "" || c.FrequencyCode != "" {
		t.Errorf("expected absent fields to be empty, got %q/%q", c.StatusCode, c.FrequencyCode)
	}
	if c.TotalCharge != nil {
		t.Errorf("expected nil total charge for truncated segment, got %v", *c.TotalCharge)
	}
}

func TestDateQualifierRouting(t *testing.T) {
	b := extractInput(t, "CLP|ABC|1|100.00~DTM|232|20230110~SVC|HC^X|50.00~DTM|472|20230115~")

	var claimDates, serviceDates int
	for _, p := range b.ClaimPatches {
		if p.ServiceDate != nil {
			claimDates++
			if p.ServiceDate.Format("20060102") != "20230110" {
				t.Errorf("expected claim date 20230110, got %s", p.ServiceDate.Format("20060102"))
			}
		}
	}
	for _, p := range b.ServicePatches {
		if p.ServiceDate != nil {
			serviceDates++
			if p.ServiceDate.Format("20060102") != "20230115" {
				t.Errorf("expected service date 20230115, got %s", p.ServiceDate.Format("20060102"))
			}
		}
	}
	if claimDates != 1 || serviceDates != 1 {
		t.Errorf("expected 1 claim date and 1 service date patch, got %d/%d", claimDates, serviceDates)
	}
}

func TestInvalidDateYieldsNoPatch(t *testing.T) {
	// Month 13 is impossible; a wrong-length date is equally invalid.
	b := extractInput(t, "CLP|ABC|1|100.00~DTM|232|20231399~DTM|232|2023011~DTM|050|garbage~")

	if len(b.ClaimPatches) != 0 {
		t.Errorf("expected no claim patches for invalid dates, got %d", len(b.ClaimPatches))
	}
}

func TestServiceDateRequiresPendingService(t *testing.T) {
	// A 472 date with no service line in context goes nowhere.
	b := extractInput(t, "CLP|ABC|1|100.00~DTM|472|20230115~")

	if len(b.ServicePatches) != 0 {
		t.Errorf("expected no service patches, got %d", len(b.ServicePatches))
	}
	if len(b.ClaimPatches) != 0 {
		t.Errorf("expected no claim patches, got %d", len(b.ClaimPatches))
	}
}

func TestEntityQualifierDispatch(t *testing.T) {
	b := extractInput(t, "CLP|ABC|1|100.00~NM1|QC|1|DOE|JANE||||MI|PAT9~NM1|82|1|SMITH|A||||XX|PROV7~NM1|PR|2|ACME INSURANCE~")

	if len(b.ClaimPatches) != 2 {
		t.Fatalf("expected 2 claim patches (patient, provider), got %d", len(b.ClaimPatches))
	}

	first := b.ClaimPatches[0]
	if first.PatientID == nil || *first.PatientID != "PAT9" {
		t.Errorf("expected patient id 'PAT9', got %v", first.PatientID)
	}

	second := b.ClaimPatches[1]
	if second.ProviderID == nil || *second.ProviderID != "PROV7" {
		t.Errorf("expected provider id 'PROV7', got %v", second.ProviderID)
	}
	// The payer NM1 (qualifier PR) must not produce a patch.
}

func TestEntityBeforeClaimProducesNoPatch(t *testing.T) {
	b := extractInput(t, "NM1|QC|1|DOE|JANE||||MI|PAT9~CLP|ABC|1|100.00~")

	if len(b.ClaimPatches) != 0 {
		t.Errorf("expected no claim patches, got %d", len(b.ClaimPatches))
	}
}

func TestRepeatedEntityValueEmitsNoPatch(t *testing.T) {
	b := extractInput(t, "CLP|ABC|1|100.00~NM1|QC|1|DOE|JANE||||MI|PAT9~NM1|QC|1|DOE|JANE||||MI|PAT9~")

	if len(b.ClaimPatches) != 1 {
		t.Errorf("expected 1 claim patch for unchanged identifier, got %d", len(b.ClaimPatches))
	}
}

func TestProcedureCodeFromComposite(t *testing.T) {
	tests := []struct {
		name     string
		svc      string
		expected string
	}{
		{"qualifier code modifier", "SVC|HC^A0428^RJ|10", "A0428"},
		{"qualifier only", "SVC|HC|10", ""},
		{"empty composite", "SVC||10", ""},
		{"missing field", "SVC", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := extractInput(t, "CLP|ABC|1|100.00~"+tt.svc+"~")
			if len(b.Services) != 1 {
				t.Fatalf("expected 1 service, got %d", len(b.Services))
			}
			if b.Services[0].ProcedureCode != tt.expected {
				t.Errorf("expected procedure code %q, got %q", tt.expected, b.Services[0].ProcedureCode)
			}
		})
	}
}
