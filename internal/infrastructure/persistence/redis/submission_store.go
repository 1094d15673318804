// Package redis stores two-phase submissions in Redis with a per-key TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

const keyPrefix = "insight:submission:"

// SubmissionStore implements port.SubmissionStore. Entries are transient:
// they expire ttl after their last save.
type SubmissionStore struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

func NewSubmissionStore(client goredis.UniversalClient, ttl time.Duration) *SubmissionStore {
	return &SubmissionStore{client: client, ttl: ttl}
}

type submissionRecord struct {
	Handle     string    `json:"handle"`
	BorrowerID string    `json:"borrower_id"`
	LenderID   string    `json:"lender_id,omitempty"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Principal             float64 `json:"principal"`
	AnnualRatePercent     float64 `json:"annual_rate_percent"`
	TermMonths            int     `json:"term_months"`
	OriginationFeePercent float64 `json:"origination_fee_percent"`

	PeriodicPayment      float64 `json:"periodic_payment"`
	OriginationFeeAmount float64 `json:"origination_fee_amount"`
	NetDisbursement      float64 `json:"net_disbursement"`
	TotalRepayment       float64 `json:"total_repayment"`
	TotalInterest        float64 `json:"total_interest"`
	MonthlyRate          float64 `json:"monthly_rate"`
}

func (s *SubmissionStore) Save(ctx context.Context, sub model.PendingSubmission) error {
	payload, err := json.Marshal(toRecord(sub))
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sub.Handle(), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save submission %s: %w", sub.Handle(), err)
	}
	return nil
}

func (s *SubmissionStore) Find(ctx context.Context, handle string) (model.PendingSubmission, error) {
	return load(ctx, s.client, handle)
}

// Update writes sub under WATCH so that a concurrent change to the key
// between the status check and the write aborts the transaction.
func (s *SubmissionStore) Update(ctx context.Context, sub model.PendingSubmission, expected valueobject.SubmissionStatus) error {
	payload, err := json.Marshal(toRecord(sub))
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}
	key := keyPrefix + sub.Handle()

	err = s.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := load(ctx, tx, sub.Handle())
		if err != nil {
			return err
		}
		if !current.Status().Equal(expected) {
			return valueobject.ErrInvalidStatusTransition
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, goredis.TxFailedErr):
		return fmt.Errorf("update submission %s: %w", sub.Handle(), valueobject.ErrInvalidStatusTransition)
	case errors.Is(err, valueobject.ErrInvalidStatusTransition), errors.Is(err, valueobject.ErrSubmissionNotFound):
		return err
	default:
		return fmt.Errorf("update submission %s: %w", sub.Handle(), err)
	}
}

// getter is satisfied by both the client and a WATCH transaction.
type getter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

func load(ctx context.Context, c getter, handle string) (model.PendingSubmission, error) {
	payload, err := c.Get(ctx, keyPrefix+handle).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.PendingSubmission{}, valueobject.ErrSubmissionNotFound
	}
	if err != nil {
		return model.PendingSubmission{}, fmt.Errorf("load submission %s: %w", handle, err)
	}

	var rec submissionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return model.PendingSubmission{}, fmt.Errorf("decode submission %s: %w", handle, err)
	}
	return fromRecord(rec)
}

func toRecord(sub model.PendingSubmission) submissionRecord {
	req, quote := sub.Request(), sub.Quote()
	return submissionRecord{
		Handle:                sub.Handle(),
		BorrowerID:            sub.BorrowerID(),
		LenderID:              sub.LenderID(),
		Currency:              sub.Currency(),
		Status:                sub.Status().String(),
		Reason:                sub.Reason(),
		CreatedAt:             sub.CreatedAt(),
		UpdatedAt:             sub.UpdatedAt(),
		Principal:             req.Principal,
		AnnualRatePercent:     req.AnnualRatePercent,
		TermMonths:            req.TermMonths,
		OriginationFeePercent: req.OriginationFeePercent,
		PeriodicPayment:       quote.PeriodicPayment,
		OriginationFeeAmount:  quote.OriginationFeeAmount,
		NetDisbursement:       quote.NetDisbursement,
		TotalRepayment:        quote.TotalRepayment,
		TotalInterest:         quote.TotalInterest,
		MonthlyRate:           quote.MonthlyRate,
	}
}

func fromRecord(rec submissionRecord) (model.PendingSubmission, error) {
	status, err := valueobject.NewSubmissionStatus(rec.Status)
	if err != nil {
		return model.PendingSubmission{}, fmt.Errorf("parse status: %w", err)
	}
	return model.ReconstructPendingSubmission(
		rec.Handle, rec.BorrowerID, rec.LenderID, rec.Currency,
		model.LoanRequest{
			Principal:             rec.Principal,
			AnnualRatePercent:     rec.AnnualRatePercent,
			TermMonths:            rec.TermMonths,
			OriginationFeePercent: rec.OriginationFeePercent,
		},
		model.AmortizationResult{
			PeriodicPayment:      rec.PeriodicPayment,
			OriginationFeeAmount: rec.OriginationFeeAmount,
			NetDisbursement:      rec.NetDisbursement,
			TotalRepayment:       rec.TotalRepayment,
			TotalInterest:        rec.TotalInterest,
			MonthlyRate:          rec.MonthlyRate,
		},
		status, rec.Reason,
		rec.CreatedAt, rec.UpdatedAt,
	), nil
}
