// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeadLetterEntriesColumns holds the columns for the "dead_letter_entries" table.
	DeadLetterEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "failure_stack", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "attempts_made", Type: field.TypeInt},
		{Name: "priority", Type: field.TypeString, Default: "normal"},
		{Name: "resolution", Type: field.TypeString, Default: "pending"},
		{Name: "review_notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true},
		{Name: "reprocessed_as_job_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "workflow_id", Type: field.TypeUUID},
	}
	// DeadLetterEntriesTable holds the schema information for the "dead_letter_entries" table.
	DeadLetterEntriesTable = &schema.Table{
		Name:       "dead_letter_entries",
		Columns:    DeadLetterEntriesColumns,
		PrimaryKey: []*schema.Column{DeadLetterEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dead_letter_entries_workflow_executions_dead_letters",
				Columns:    []*schema.Column{DeadLetterEntriesColumns[14]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deadletterentry_job_id",
				Unique:  true,
				Columns: []*schema.Column{DeadLetterEntriesColumns[1]},
			},
			{
				Name:    "deadletterentry_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{DeadLetterEntriesColumns[14]},
			},
			{
				Name:    "deadletterentry_resolution_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeadLetterEntriesColumns[8], DeadLetterEntriesColumns[12]},
			},
		},
	}
	// MerchantsColumns holds the columns for the "merchants" table.
	MerchantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "shop_domain", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MerchantsTable holds the schema information for the "merchants" table.
	MerchantsTable = &schema.Table{
		Name:       "merchants",
		Columns:    MerchantsColumns,
		PrimaryKey: []*schema.Column{MerchantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "merchant_shop_domain",
				Unique:  true,
				Columns: []*schema.Column{MerchantsColumns[1]},
			},
		},
	}
	// OrderDocumentsColumns holds the columns for the "order_documents" table.
	OrderDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "merchant_id", Type: field.TypeUUID},
	}
	// OrderDocumentsTable holds the schema information for the "order_documents" table.
	OrderDocumentsTable = &schema.Table{
		Name:       "order_documents",
		Columns:    OrderDocumentsColumns,
		PrimaryKey: []*schema.Column{OrderDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_documents_merchants_documents",
				Columns:    []*schema.Column{OrderDocumentsColumns[7]},
				RefColumns: []*schema.Column{MerchantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderdocument_merchant_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{OrderDocumentsColumns[7], OrderDocumentsColumns[3]},
			},
			{
				Name:    "orderdocument_merchant_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{OrderDocumentsColumns[7], OrderDocumentsColumns[6]},
			},
		},
	}
	// PurchaseOrdersColumns holds the columns for the "purchase_orders" table.
	PurchaseOrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "order_number", Type: field.TypeString, Nullable: true},
		{Name: "supplier_name", Type: field.TypeString, Nullable: true},
		{Name: "total_amount", Type: field.TypeString, Nullable: true},
		{Name: "currency_code", Type: field.TypeString, Nullable: true},
		{Name: "line_items", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "platform_order_id", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "merchant_id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// PurchaseOrdersTable holds the schema information for the "purchase_orders" table.
	PurchaseOrdersTable = &schema.Table{
		Name:       "purchase_orders",
		Columns:    PurchaseOrdersColumns,
		PrimaryKey: []*schema.Column{PurchaseOrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "purchase_orders_merchants_orders",
				Columns:    []*schema.Column{PurchaseOrdersColumns[11]},
				RefColumns: []*schema.Column{MerchantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "purchase_orders_order_documents_orders",
				Columns:    []*schema.Column{PurchaseOrdersColumns[12]},
				RefColumns: []*schema.Column{OrderDocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "purchaseorder_document_id",
				Unique:  true,
				Columns: []*schema.Column{PurchaseOrdersColumns[12]},
			},
			{
				Name:    "purchaseorder_merchant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PurchaseOrdersColumns[11], PurchaseOrdersColumns[9]},
			},
		},
	}
	// WorkflowExecutionsColumns holds the columns for the "workflow_executions" table.
	WorkflowExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "stages_total", Type: field.TypeInt},
		{Name: "stages_completed", Type: field.TypeInt, Default: 0},
		{Name: "progress_percent", Type: field.TypeInt, Default: 0},
		{Name: "input_data", Type: field.TypeJSON, Nullable: true},
		{Name: "status_data", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "failed_stage", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "stage_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "stage_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "merchant_id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// WorkflowExecutionsTable holds the schema information for the "workflow_executions" table.
	WorkflowExecutionsTable = &schema.Table{
		Name:       "workflow_executions",
		Columns:    WorkflowExecutionsColumns,
		PrimaryKey: []*schema.Column{WorkflowExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_executions_merchants_workflows",
				Columns:    []*schema.Column{WorkflowExecutionsColumns[14]},
				RefColumns: []*schema.Column{MerchantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "workflow_executions_order_documents_workflows",
				Columns:    []*schema.Column{WorkflowExecutionsColumns[15]},
				RefColumns: []*schema.Column{OrderDocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowexecution_merchant_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[14], WorkflowExecutionsColumns[1], WorkflowExecutionsColumns[10]},
			},
			{
				Name:    "workflowexecution_document_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[15]},
			},
			{
				Name:    "workflowexecution_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeadLetterEntriesTable,
		MerchantsTable,
		OrderDocumentsTable,
		PurchaseOrdersTable,
		WorkflowExecutionsTable,
	}
)

func init() {
	DeadLetterEntriesTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
	DeadLetterEntriesTable.Annotation = &entsql.Annotation{
		Table: "dead_letter_entries",
	}
	MerchantsTable.Annotation = &entsql.Annotation{
		Table: "merchants",
	}
	OrderDocumentsTable.ForeignKeys[0].RefTable = MerchantsTable
	OrderDocumentsTable.Annotation = &entsql.Annotation{
		Table: "order_documents",
	}
	PurchaseOrdersTable.ForeignKeys[0].RefTable = MerchantsTable
	PurchaseOrdersTable.ForeignKeys[1].RefTable = OrderDocumentsTable
	PurchaseOrdersTable.Annotation = &entsql.Annotation{
		Table: "purchase_orders",
	}
	WorkflowExecutionsTable.ForeignKeys[0].RefTable = MerchantsTable
	WorkflowExecutionsTable.ForeignKeys[1].RefTable = OrderDocumentsTable
	WorkflowExecutionsTable.Annotation = &entsql.Annotation{
		Table: "workflow_executions",
	}
}
