package checkout

import (
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
)

func TestValidateStock_NoViolations(t *testing.T) {
	items := []StockValidationInput{
		{VariantID: uuid.New(), ProductName: "Imperium", Stock: 30, Quantity: 30},
		{VariantID: uuid.New(), ProductName: "Yara Moi", Stock: 10, Quantity: 1},
	}
	if err := ValidateStock(items); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStock_Violations(t *testing.T) {
	short := uuid.New()
	items := []StockValidationInput{
		{VariantID: short, ProductName: "Afnan 9PM", SKU: "afnan-9pm-100ml", Stock: 2, Quantity: 3},
		{VariantID: uuid.New(), ProductName: "Imperium", Stock: 5, Quantity: 1},
	}

	err := ValidateStock(items)
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", typed.Details())
	}
	violations, ok := details["violations"].([]StockViolationDetail)
	if !ok || len(violations) != 1 {
		t.Fatalf("expected one violation, got %v", details["violations"])
	}
	if violations[0].VariantID != short || violations[0].Available != 2 || violations[0].RequestedQty != 3 {
		t.Fatalf("unexpected violation %+v", violations[0])
	}
}

func TestValidateStock_OutOfStock(t *testing.T) {
	err := ValidateStock([]StockValidationInput{{VariantID: uuid.New(), Stock: 0, Quantity: 1}})
	if !pkgerrors.IsCode(err, pkgerrors.CodeStateConflict) {
		t.Fatalf("expected state conflict, got %v", err)
	}
}
