// Code generated by ent, DO NOT EDIT.

package purchaseorder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldID, id))
}

// MerchantID applies equality check predicate on the "merchant_id" field. It's identical to MerchantIDEQ.
func MerchantID(v uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldMerchantID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldDocumentID, v))
}

// OrderNumber applies equality check predicate on the "order_number" field. It's identical to OrderNumberEQ.
func OrderNumber(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldOrderNumber, v))
}

// SupplierName applies equality check predicate on the "supplier_name" field. It's identical to SupplierNameEQ.
func SupplierName(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldSupplierName, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldTotalAmount, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldCurrencyCode, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldExtractionConfidence, v))
}

// PlatformOrderID applies equality check predicate on the "platform_order_id" field. It's identical to PlatformOrderIDEQ.
func PlatformOrderID(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldPlatformOrderID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// MerchantIDEQ applies the EQ predicate on the "merchant_id" field.
func MerchantIDEQ(v uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldMerchantID, v))
}

// MerchantIDNEQ applies the NEQ predicate on the "merchant_id" field.
func MerchantIDNEQ(v uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldMerchantID, v))
}

// MerchantIDIn applies the In predicate on the "merchant_id" field.
func MerchantIDIn(vs ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldMerchantID, vs...))
}

// MerchantIDNotIn applies the NotIn predicate on the "merchant_id" field.
func MerchantIDNotIn(vs ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldMerchantID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldDocumentID, vs...))
}

// OrderNumberEQ applies the EQ predicate on the "order_number" field.
func OrderNumberEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldOrderNumber, v))
}

// OrderNumberNEQ applies the NEQ predicate on the "order_number" field.
func OrderNumberNEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldOrderNumber, v))
}

// OrderNumberIn applies the In predicate on the "order_number" field.
func OrderNumberIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldOrderNumber, vs...))
}

// OrderNumberNotIn applies the NotIn predicate on the "order_number" field.
func OrderNumberNotIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldOrderNumber, vs...))
}

// OrderNumberGT applies the GT predicate on the "order_number" field.
func OrderNumberGT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldOrderNumber, v))
}

// OrderNumberGTE applies the GTE predicate on the "order_number" field.
func OrderNumberGTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldOrderNumber, v))
}

// OrderNumberLT applies the LT predicate on the "order_number" field.
func OrderNumberLT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldOrderNumber, v))
}

// OrderNumberLTE applies the LTE predicate on the "order_number" field.
func OrderNumberLTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldOrderNumber, v))
}

// OrderNumberContains applies the Contains predicate on the "order_number" field.
func OrderNumberContains(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContains(FieldOrderNumber, v))
}

// OrderNumberHasPrefix applies the HasPrefix predicate on the "order_number" field.
func OrderNumberHasPrefix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasPrefix(FieldOrderNumber, v))
}

// OrderNumberHasSuffix applies the HasSuffix predicate on the "order_number" field.
func OrderNumberHasSuffix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasSuffix(FieldOrderNumber, v))
}

// OrderNumberIsNil applies the IsNil predicate on the "order_number" field.
func OrderNumberIsNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIsNull(FieldOrderNumber))
}

// OrderNumberNotNil applies the NotNil predicate on the "order_number" field.
func OrderNumberNotNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotNull(FieldOrderNumber))
}

// OrderNumberEqualFold applies the EqualFold predicate on the "order_number" field.
func OrderNumberEqualFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEqualFold(FieldOrderNumber, v))
}

// OrderNumberContainsFold applies the ContainsFold predicate on the "order_number" field.
func OrderNumberContainsFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContainsFold(FieldOrderNumber, v))
}

// SupplierNameEQ applies the EQ predicate on the "supplier_name" field.
func SupplierNameEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldSupplierName, v))
}

// SupplierNameNEQ applies the NEQ predicate on the "supplier_name" field.
func SupplierNameNEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldSupplierName, v))
}

// SupplierNameIn applies the In predicate on the "supplier_name" field.
func SupplierNameIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldSupplierName, vs...))
}

// SupplierNameNotIn applies the NotIn predicate on the "supplier_name" field.
func SupplierNameNotIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldSupplierName, vs...))
}

// SupplierNameGT applies the GT predicate on the "supplier_name" field.
func SupplierNameGT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldSupplierName, v))
}

// SupplierNameGTE applies the GTE predicate on the "supplier_name" field.
func SupplierNameGTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldSupplierName, v))
}

// SupplierNameLT applies the LT predicate on the "supplier_name" field.
func SupplierNameLT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldSupplierName, v))
}

// SupplierNameLTE applies the LTE predicate on the "supplier_name" field.
func SupplierNameLTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldSupplierName, v))
}

// SupplierNameContains applies the Contains predicate on the "supplier_name" field.
func SupplierNameContains(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContains(FieldSupplierName, v))
}

// SupplierNameHasPrefix applies the HasPrefix predicate on the "supplier_name" field.
func SupplierNameHasPrefix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasPrefix(FieldSupplierName, v))
}

// SupplierNameHasSuffix applies the HasSuffix predicate on the "supplier_name" field.
func SupplierNameHasSuffix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasSuffix(FieldSupplierName, v))
}

// SupplierNameIsNil applies the IsNil predicate on the "supplier_name" field.
func SupplierNameIsNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIsNull(FieldSupplierName))
}

// SupplierNameNotNil applies the NotNil predicate on the "supplier_name" field.
func SupplierNameNotNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotNull(FieldSupplierName))
}

// SupplierNameEqualFold applies the EqualFold predicate on the "supplier_name" field.
func SupplierNameEqualFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEqualFold(FieldSupplierName, v))
}

// SupplierNameContainsFold applies the ContainsFold predicate on the "supplier_name" field.
func SupplierNameContainsFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContainsFold(FieldSupplierName, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountContains applies the Contains predicate on the "total_amount" field.
func TotalAmountContains(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContains(FieldTotalAmount, v))
}

// TotalAmountHasPrefix applies the HasPrefix predicate on the "total_amount" field.
func TotalAmountHasPrefix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasPrefix(FieldTotalAmount, v))
}

// TotalAmountHasSuffix applies the HasSuffix predicate on the "total_amount" field.
func TotalAmountHasSuffix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasSuffix(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotNull(FieldTotalAmount))
}

// TotalAmountEqualFold applies the EqualFold predicate on the "total_amount" field.
func TotalAmountEqualFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEqualFold(FieldTotalAmount, v))
}

// TotalAmountContainsFold applies the ContainsFold predicate on the "total_amount" field.
func TotalAmountContainsFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContainsFold(FieldTotalAmount, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeIsNil applies the IsNil predicate on the "currency_code" field.
func CurrencyCodeIsNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIsNull(FieldCurrencyCode))
}

// CurrencyCodeNotNil applies the NotNil predicate on the "currency_code" field.
func CurrencyCodeNotNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotNull(FieldCurrencyCode))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// LineItemsIsNil applies the IsNil predicate on the "line_items" field.
func LineItemsIsNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIsNull(FieldLineItems))
}

// LineItemsNotNil applies the NotNil predicate on the "line_items" field.
func LineItemsNotNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotNull(FieldLineItems))
}

// ExtractedFieldsIsNil applies the IsNil predicate on the "extracted_fields" field.
func ExtractedFieldsIsNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIsNull(FieldExtractedFields))
}

// ExtractedFieldsNotNil applies the NotNil predicate on the "extracted_fields" field.
func ExtractedFieldsNotNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotNull(FieldExtractedFields))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldExtractionConfidence, v))
}

// PlatformOrderIDEQ applies the EQ predicate on the "platform_order_id" field.
func PlatformOrderIDEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldPlatformOrderID, v))
}

// PlatformOrderIDNEQ applies the NEQ predicate on the "platform_order_id" field.
func PlatformOrderIDNEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldPlatformOrderID, v))
}

// PlatformOrderIDIn applies the In predicate on the "platform_order_id" field.
func PlatformOrderIDIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldPlatformOrderID, vs...))
}

// PlatformOrderIDNotIn applies the NotIn predicate on the "platform_order_id" field.
func PlatformOrderIDNotIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldPlatformOrderID, vs...))
}

// PlatformOrderIDGT applies the GT predicate on the "platform_order_id" field.
func PlatformOrderIDGT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldPlatformOrderID, v))
}

// PlatformOrderIDGTE applies the GTE predicate on the "platform_order_id" field.
func PlatformOrderIDGTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldPlatformOrderID, v))
}

// PlatformOrderIDLT applies the LT predicate on the "platform_order_id" field.
func PlatformOrderIDLT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldPlatformOrderID, v))
}

// PlatformOrderIDLTE applies the LTE predicate on the "platform_order_id" field.
func PlatformOrderIDLTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldPlatformOrderID, v))
}

// PlatformOrderIDContains applies the Contains predicate on the "platform_order_id" field.
func PlatformOrderIDContains(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContains(FieldPlatformOrderID, v))
}

// PlatformOrderIDHasPrefix applies the HasPrefix predicate on the "platform_order_id" field.
func PlatformOrderIDHasPrefix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasPrefix(FieldPlatformOrderID, v))
}

// PlatformOrderIDHasSuffix applies the HasSuffix predicate on the "platform_order_id" field.
func PlatformOrderIDHasSuffix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasSuffix(FieldPlatformOrderID, v))
}

// PlatformOrderIDIsNil applies the IsNil predicate on the "platform_order_id" field.
func PlatformOrderIDIsNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIsNull(FieldPlatformOrderID))
}

// PlatformOrderIDNotNil applies the NotNil predicate on the "platform_order_id" field.
func PlatformOrderIDNotNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotNull(FieldPlatformOrderID))
}

// PlatformOrderIDEqualFold applies the EqualFold predicate on the "platform_order_id" field.
func PlatformOrderIDEqualFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEqualFold(FieldPlatformOrderID, v))
}

// PlatformOrderIDContainsFold applies the ContainsFold predicate on the "platform_order_id" field.
func PlatformOrderIDContainsFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContainsFold(FieldPlatformOrderID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMerchant applies the HasEdge predicate on the "merchant" edge.
func HasMerchant() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MerchantTable, MerchantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMerchantWith applies the HasEdge predicate on the "merchant" edge with a given conditions (other predicates).
func HasMerchantWith(preds ...predicate.Merchant) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(func(s *sql.Selector) {
		step := newMerchantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.OrderDocument) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PurchaseOrder) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PurchaseOrder) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PurchaseOrder) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.NotPredicates(p))
}
