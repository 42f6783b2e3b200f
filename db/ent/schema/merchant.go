package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Merchant struct {
	ent.Schema
}

func (Merchant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "merchants"},
	}
}

func (Merchant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("shop_domain").NotEmpty(),
		field.String("display_name").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Merchant) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE merchant -> MANY documents / workflows
		edge.To("documents", OrderDocument.Type),
		edge.To("workflows", WorkflowExecution.Type),
		edge.To("orders", PurchaseOrder.Type),
	}
}

func (Merchant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("shop_domain").Unique(),
	}
}
