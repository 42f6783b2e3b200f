package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type PurchaseOrder struct {
	ent.Schema
}

func (PurchaseOrder) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "purchase_orders"},
	}
}

func (PurchaseOrder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("merchant_id", uuid.UUID{}),
		// one persisted order per document; persist retries upsert in place
		field.UUID("document_id", uuid.UUID{}),
		field.String("order_number").Optional(),
		field.String("supplier_name").Optional(),
		field.String("total_amount").Optional(),
		field.String("currency_code").Optional(),
		field.JSON("line_items", json.RawMessage{}).Optional(),
		field.JSON("extracted_fields", json.RawMessage{}).Optional(),
		field.Float32("extraction_confidence").Default(0),
		field.String("platform_order_id").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PurchaseOrder) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("merchant", Merchant.Type).
			Ref("orders").
			Field("merchant_id").
			Required().
			Unique(),
		edge.From("document", OrderDocument.Type).
			Ref("orders").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (PurchaseOrder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id").Unique(),
		index.Fields("merchant_id", "created_at"),
	}
}
