package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"remitloader/db"
)

// IngestSummary reports one ingestion run's outcome.
type IngestSummary struct {
	Fingerprint     string
	RawSegments     int
	Claims          int
	Services        int
	Anomalies       int
	AlreadyIngested bool
}

// Ingest runs the full pipeline for one named byte stream: tokenize,
// extract, persist as a single transaction. Re-ingesting byte-identical
// content is a no-op reported via AlreadyIngested, not an error; two
// concurrent deliveries of the same content race on the fingerprint's
// unique constraint and the loser takes the no-op path.
func Ingest(ctx context.Context, pool *pgxpool.Pool, sourceName string, data []byte, seps Separators) (*IngestSummary, error) {
	fingerprint := sha256.Sum256(data)
	fp := hex.EncodeToString(fingerprint[:])

	segments := Tokenize(string(data), seps)
	batch := extractBatch(segments, sourceName, time.Now().UTC(), seps)

	summary, err := persistBatch(ctx, pool, fp, int64(len(data)), batch)
	if err != nil {
		return nil, fmt.Errorf("ingest %s (sha256 %s): %w", sourceName, fp[:12], err)
	}
	return summary, nil
}

// persistBatch writes the whole batch inside one transaction, in
// emission order: idempotency row, audit rows, claims, claim patches,
// services, service patches, run counts. Any failure rolls back the
// entire claim/service graph.
func persistBatch(ctx context.Context, pool *pgxpool.Pool, fingerprint string, byteLength int64, batch *Batch) (*IngestSummary, error) {
	summary := &IngestSummary{
		Fingerprint: fingerprint,
		RawSegments: len(batch.Raw),
		Claims:      len(batch.Claims),
		Services:    len(batch.Services),
		Anomalies:   batch.Anomalies,
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	q := db.New(tx)
	ingestedAt := toTimestamptz(batch.IngestedAt)

	// Idempotency gate: ON CONFLICT DO NOTHING returns no row when a
	// prior run already recorded this fingerprint.
	ingestionID, err := q.InsertIngestion(ctx, db.InsertIngestionParams{
		SourceName:    batch.SourceName,
		ContentSha256: fingerprint,
		ByteLength:    byteLength,
		IngestedAt:    ingestedAt,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return &IngestSummary{Fingerprint: fingerprint, AlreadyIngested: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert ingestion: %w", err)
	}

	rawRows := make([]db.InsertRawSegmentsParams, len(batch.Raw))
	for i, r := range batch.Raw {
		rawRows[i] = db.InsertRawSegmentsParams{
			IngestionID:    ingestionID,
			SegmentType:    r.Type,
			SegmentContent: r.Content,
			SourceName:     batch.SourceName,
			IngestedAt:     ingestedAt,
		}
	}
	if _, err := q.InsertRawSegments(ctx, rawRows); err != nil {
		return nil, fmt.Errorf("insert raw segments: %w", err)
	}

	claimIDs := make([]int32, len(batch.Claims))
	for i, c := range batch.Claims {
		claimIDs[i], err = q.InsertClaim(ctx, db.InsertClaimParams{
			IngestionID:                 ingestionID,
			PatientControlNumber:        c.PatientControlNumber,
			StatusCode:                  c.StatusCode,
			TotalChargeAmount:           toNumeric(c.TotalCharge),
			PaymentAmount:               toNumeric(c.Payment),
			PatientResponsibilityAmount: toNumeric(c.PatientResponsibility),
			PayerClaimControlNumber:     c.PayerClaimControlNumber,
			FacilityTypeCode:            c.FacilityTypeCode,
			FrequencyCode:               c.FrequencyCode,
			SourceName:                  batch.SourceName,
			IngestedAt:                  ingestedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("insert claim %d (%s): %w", i, c.PatientControlNumber, err)
		}
	}

	for i, p := range batch.ClaimPatches {
		err := q.UpdateClaimDetail(ctx, db.UpdateClaimDetailParams{
			ID:          claimIDs[p.Claim],
			PatientID:   toText(p.PatientID),
			ProviderID:  toText(p.ProviderID),
			ServiceDate: toDate(p.ServiceDate),
		})
		if err != nil {
			return nil, fmt.Errorf("patch claim %d: %w", i, err)
		}
	}

	serviceIDs := make([]int64, len(batch.Services))
	for i, s := range batch.Services {
		serviceIDs[i], err = q.InsertService(ctx, db.InsertServiceParams{
			ClaimID:       claimIDs[s.Claim],
			ProcedureCode: s.ProcedureCode,
			ChargeAmount:  toNumeric(s.Charge),
			PaidAmount:    toNumeric(s.Paid),
			SourceName:    batch.SourceName,
			IngestedAt:    ingestedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("insert service %d (%s): %w", i, s.ProcedureCode, err)
		}
	}

	for i, p := range batch.ServicePatches {
		if p.ServiceDate != nil {
			err := q.UpdateServiceDate(ctx, db.UpdateServiceDateParams{
				ID:          serviceIDs[p.Service],
				ServiceDate: toDate(p.ServiceDate),
			})
			if err != nil {
				return nil, fmt.Errorf("patch service date %d: %w", i, err)
			}
		}
		if p.Adjustment != nil {
			err := q.UpdateServiceAdjustment(ctx, db.UpdateServiceAdjustmentParams{
				ID:                   serviceIDs[p.Service],
				AdjustmentGroupCode:  toTextFromString(p.Adjustment.GroupCode),
				AdjustmentReasonCode: toTextFromString(p.Adjustment.ReasonCode),
				AdjustmentAmount:     toNumeric(p.Adjustment.Amount),
			})
			if err != nil {
				return nil, fmt.Errorf("patch service adjustment %d: %w", i, err)
			}
		}
	}

	err = q.UpdateIngestionCounts(ctx, db.UpdateIngestionCountsParams{
		ID:          ingestionID,
		RawSegments: int32(summary.RawSegments),
		Claims:      int32(summary.Claims),
		Services:    int32(summary.Services),
		Anomalies:   int32(summary.Anomalies),
	})
	if err != nil {
		return nil, fmt.Errorf("update ingestion counts: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return summary, nil
}

// Helper functions for pgtype conversion

func toText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func toTextFromString(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func toNumeric(f *float64) pgtype.Numeric {
	if f == nil {
		return pgtype.Numeric{Valid: false}
	}
	// Go through text to keep decimal precision
	bf := big.NewFloat(*f)
	text := bf.Text('f', -1)

	var num pgtype.Numeric
	num.Scan(text)
	return num
}

func toDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func toTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
