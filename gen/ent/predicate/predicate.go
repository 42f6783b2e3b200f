// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeadLetterEntry is the predicate function for deadletterentry builders.
type DeadLetterEntry func(*sql.Selector)

// Merchant is the predicate function for merchant builders.
type Merchant func(*sql.Selector)

// OrderDocument is the predicate function for orderdocument builders.
type OrderDocument func(*sql.Selector)

// PurchaseOrder is the predicate function for purchaseorder builders.
type PurchaseOrder func(*sql.Selector)

// WorkflowExecution is the predicate function for workflowexecution builders.
type WorkflowExecution func(*sql.Selector)
