package rest

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase"
)

// PricingHandler exposes the pricing use cases as JSON over HTTP.
type PricingHandler struct {
	svc usecase.Services
}

func NewPricingHandler(svc usecase.Services) *PricingHandler {
	return &PricingHandler{svc: svc}
}

func (h *PricingHandler) Quote(c *gin.Context) {
	var req dto.PriceLoanRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.svc.PriceLoan.Execute(c.Request.Context(), req)
	render(c, http.StatusOK, resp, err)
}

func (h *PricingHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.svc.GetSchedule.Execute(c.Request.Context(), req)
	render(c, http.StatusOK, resp, err)
}

func (h *PricingHandler) AggregateScore(c *gin.Context) {
	var req dto.AggregateScoreRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.svc.AggregateScore.Execute(c.Request.Context(), req)
	render(c, http.StatusOK, resp, err)
}

func (h *PricingHandler) ClassifyRisk(c *gin.Context) {
	var req dto.ClassifyRiskRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.svc.ClassifyRisk.Execute(c.Request.Context(), req)
	render(c, http.StatusOK, resp, err)
}

// MatchLenders handles GET /v1/lenders/match?score=&amount=&qualifying_only=.
func (h *PricingHandler) MatchLenders(c *gin.Context) {
	score, err := queryFloat(c, "score")
	if err != nil {
		fail(c, err)
		return
	}
	amount, err := queryFloat(c, "amount")
	if err != nil {
		fail(c, err)
		return
	}
	qualifyingOnly, _ := strconv.ParseBool(c.DefaultQuery("qualifying_only", "false"))

	resp, err := h.svc.MatchLenders.Execute(c.Request.Context(), dto.MatchLendersRequest{
		Score:          score,
		Amount:         amount,
		QualifyingOnly: qualifyingOnly,
	})
	render(c, http.StatusOK, resp, err)
}

func (h *PricingHandler) SearchLenders(c *gin.Context) {
	resp, err := h.svc.SearchLenders.Execute(c.Request.Context(), searchRequest(c))
	render(c, http.StatusOK, resp, err)
}

func (h *PricingHandler) SearchBorrowers(c *gin.Context) {
	resp, err := h.svc.SearchBorrowers.Execute(c.Request.Context(), searchRequest(c))
	render(c, http.StatusOK, resp, err)
}

func (h *PricingHandler) SubmitLoan(c *gin.Context) {
	var req dto.SubmitLoanRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.svc.SubmitLoan.Execute(c.Request.Context(), req)
	render(c, http.StatusAccepted, resp, err)
}

func (h *PricingHandler) GetSubmission(c *gin.Context) {
	resp, err := h.svc.GetSubmission.Execute(c.Request.Context(), dto.GetSubmissionRequest{
		Handle: strings.TrimSpace(c.Param("handle")),
	})
	render(c, http.StatusOK, resp, err)
}

func (h *PricingHandler) CompleteSubmission(c *gin.Context) {
	var body struct {
		Outcome string `json:"outcome"`
		Reason  string `json:"reason"`
	}
	if !bind(c, &body) {
		return
	}
	resp, err := h.svc.CompleteSubmission.Execute(c.Request.Context(), dto.CompleteSubmissionRequest{
		Handle:  strings.TrimSpace(c.Param("handle")),
		Outcome: body.Outcome,
		Reason:  body.Reason,
	})
	render(c, http.StatusOK, resp, err)
}

func (h *PricingHandler) ExpressInterest(c *gin.Context) {
	var body struct {
		LenderID string `json:"lender_id"`
		Message  string `json:"message"`
	}
	if !bind(c, &body) {
		return
	}
	resp, err := h.svc.ExpressInterest.Execute(c.Request.Context(), dto.ExpressInterestRequest{
		LenderID:   body.LenderID,
		BorrowerID: strings.TrimSpace(c.Param("borrowerId")),
		Message:    body.Message,
	})
	render(c, http.StatusCreated, resp, err)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, fmt.Errorf("%w: malformed request body: %v", usecase.ErrValidation, err))
		return false
	}
	return true
}

func queryFloat(c *gin.Context, key string) (float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, fmt.Errorf("%w: query parameter %q is required", usecase.ErrValidation, key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: query parameter %q must be a finite number", usecase.ErrValidation, key)
	}
	return v, nil
}

func searchRequest(c *gin.Context) dto.SearchRequest {
	req := dto.SearchRequest{Query: c.Query("q")}
	if raw := strings.TrimSpace(c.Query("fields")); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				req.Fields = append(req.Fields, f)
			}
		}
	}
	return req
}

func render[T any](c *gin.Context, status int, resp T, err error) {
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(status, resp)
}

// fail attaches err to the context and writes the error body. Internal
// errors never leak their detail.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)

	kind := usecase.KindOf(err)
	detail := err.Error()
	if kind == usecase.KindInternal {
		detail = "internal error"
	}
	c.JSON(httpStatus(kind), gin.H{
		"error":  usecase.ErrorCode(err),
		"detail": detail,
	})
}

func httpStatus(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindInvalidInput:
		return http.StatusBadRequest
	case usecase.KindNotFound:
		return http.StatusNotFound
	case usecase.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
