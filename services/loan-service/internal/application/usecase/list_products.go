package usecase

import (
	"context"
	"fmt"

	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/port"
)

// ListProductsUseCase serves the active product catalog.
type ListProductsUseCase struct {
	products port.LoanProductRepository
}

// NewListProductsUseCase wires dependencies.
func NewListProductsUseCase(products port.LoanProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{products: products}
}

// Execute lists every active loan product.
func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]dto.LoanProductResponse, error) {
	products, err := uc.products.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	out := make([]dto.LoanProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToLoanProductResponse(p))
	}
	return out, nil
}
