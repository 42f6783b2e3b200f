package schema

import (
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

type OrderDocument struct {
	ent.Schema
}

func (OrderDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "order_documents"},
	}
}

func (OrderDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("merchant_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int("file_size").NonNegative(),
		field.String("storage_key").NotEmpty(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (OrderDocument) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE merchant
		edge.From("merchant", Merchant.Type).
			Ref("documents").
			Field("merchant_id").
			Required().
			Unique(),
		// ONE document -> MANY workflow runs
		edge.To("workflows", WorkflowExecution.Type),
		edge.To("orders", PurchaseOrder.Type),
	}
}

func (OrderDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("merchant_id", "content_hash").Unique(),
		index.Fields("merchant_id", "uploaded_at"),
	}
}
