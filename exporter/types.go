package main

// RemitLineRow is a denormalized Parquet row: one service line with
// its owning claim's columns joined in. Optional (*type) fields use
// the Parquet native null bitmap, so IS NULL predicates push down and
// absent values cost ~1 bit per row.
//
// Claim identifiers and codes come first for page-cache locality on
// the common filter patterns (by patient control number, by procedure
// code); amounts follow; provenance last. String code columns
// dictionary-encode automatically.
type RemitLineRow struct {
	ServiceID            int64  `parquet:"service_id"`
	ClaimID              int32  `parquet:"claim_id"`
	IngestionID          int32  `parquet:"ingestion_id"`
	PatientControlNumber string `parquet:"patient_control_number"`
	ProcedureCode        string `parquet:"procedure_code"`

	StatusCode              string  `parquet:"status_code"`
	PayerClaimControlNumber string  `parquet:"payer_claim_control_number"`
	FacilityTypeCode        string  `parquet:"facility_type_code"`
	FrequencyCode           string  `parquet:"frequency_code"`
	PatientID               *string `parquet:"patient_id,optional"`
	ProviderID              *string `parquet:"provider_id,optional"`

	TotalChargeAmount           *float64 `parquet:"total_charge_amount,optional"`
	PaymentAmount               *float64 `parquet:"payment_amount,optional"`
	PatientResponsibilityAmount *float64 `parquet:"patient_responsibility_amount,optional"`
	ChargeAmount                *float64 `parquet:"charge_amount,optional"`
	PaidAmount                  *float64 `parquet:"paid_amount,optional"`

	ServiceDate          *string  `parquet:"service_date,optional"` // ISO-8601
	AdjustmentGroupCode  *string  `parquet:"adjustment_group_code,optional"`
	AdjustmentReasonCode *string  `parquet:"adjustment_reason_code,optional"`
	AdjustmentAmount     *float64 `parquet:"adjustment_amount,optional"`

	SourceName string `parquet:"source_name"`
}
