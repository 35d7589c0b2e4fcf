package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/model"
)

type CreateLoanRequest struct {
	CustomerID string          `json:"customerId"`
	ProductID  string          `json:"productId"`
	Amount     decimal.Decimal `json:"amount"`
	TermMonths int             `json:"termMonths"`
	Purpose    string          `json:"purpose"`
}

type ApproveLoanRequest struct {
	ApprovedAmount decimal.Decimal `json:"approvedAmount"`
	EvaluatedBy    string          `json:"evaluatedBy"`
}

type RejectLoanRequest struct {
	Reason      string `json:"reason"`
	EvaluatedBy string `json:"evaluatedBy"`
}

type LoanResponse struct {
	ID                 string           `json:"id"`
	CustomerID         string           `json:"customerId"`
	CustomerName       string           `json:"customerName,omitempty"`
	ProductID          string           `json:"productId"`
	Amount             decimal.Decimal  `json:"amount"`
	ApprovedAmount     *decimal.Decimal `json:"approvedAmount,omitempty"`
	InterestRate       decimal.Decimal  `json:"interestRate"`
	TermMonths         int              `json:"termMonths"`
	Purpose            string           `json:"purpose"`
	Status             string           `json:"status"`
	MonthlyPayment     decimal.Decimal  `json:"monthlyPayment"`
	TotalAmount        decimal.Decimal  `json:"totalAmount"`
	OutstandingBalance decimal.Decimal  `json:"outstandingBalance"`
	EvaluatedBy        string           `json:"evaluatedBy,omitempty"`
	RejectionReason    string           `json:"rejectionReason,omitempty"`
	ApplicationDate    time.Time        `json:"applicationDate"`
	ApprovalDate       *time.Time       `json:"approvalDate,omitempty"`
	DisbursementDate   *time.Time       `json:"disbursementDate,omitempty"`
	CompletionDate     *time.Time       `json:"completionDate,omitempty"`
}

type LoanProductResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	MinAmount          decimal.Decimal `json:"minAmount"`
	MaxAmount          decimal.Decimal `json:"maxAmount"`
	MinTermMonths      int             `json:"minTermMonths"`
	MaxTermMonths      int             `json:"maxTermMonths"`
	InterestRate       decimal.Decimal `json:"interestRate"`
	RequiresCollateral bool            `json:"requiresCollateral"`
}

func ToLoanResponse(loan model.Loan) LoanResponse {
	resp := LoanResponse{
		ID:                 loan.ID(),
		CustomerID:         loan.CustomerID(),
		ProductID:          loan.ProductID(),
		Amount:             loan.Amount(),
		InterestRate:       loan.InterestRate(),
		TermMonths:         loan.TermMonths(),
		Purpose:            loan.Purpose(),
		Status:             loan.Status().String(),
		MonthlyPayment:     loan.MonthlyPayment(),
		TotalAmount:        loan.TotalAmount(),
		OutstandingBalance: loan.OutstandingBalance(),
		EvaluatedBy:        loan.EvaluatedBy(),
		RejectionReason:    loan.RejectionReason(),
		ApplicationDate:    loan.ApplicationDate(),
		ApprovalDate:       loan.ApprovalDate(),
		DisbursementDate:   loan.DisbursementDate(),
		CompletionDate:     loan.CompletionDate(),
	}
	if approved := loan.ApprovedAmount(); approved.Valid {
		amount := approved.Decimal
		resp.ApprovedAmount = &amount
	}
	return resp
}

func ToLoanResponses(loans []model.Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for _, loan := range loans {
		out = append(out, ToLoanResponse(loan))
	}
	return out
}

func ToLoanProductResponse(p model.LoanProduct) LoanProductResponse {
	return LoanProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		MinAmount:          p.MinAmount,
		MaxAmount:          p.MaxAmount,
		MinTermMonths:      p.MinTermMonths,
		MaxTermMonths:      p.MaxTermMonths,
		InterestRate:       p.InterestRate,
		RequiresCollateral: p.RequiresCollateral,
	}
}
