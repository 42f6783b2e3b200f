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
	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/db/ent/schema/utils"

	"github.com/google/uuid"
)

type WorkflowExecution struct{ ent.Schema }

func (WorkflowExecution) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "workflow_executions"},
	}
}

func (WorkflowExecution) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("merchant_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.WorkflowPending)).
			Validate(utils.EnumValidator(constants.WorkflowStatuses()...)),
		field.String("current_stage").Optional().Nillable(),
		field.Int("stages_total").Positive(),
		field.Int("stages_completed").Default(0).NonNegative(),
		field.Int("progress_percent").Default(0).
			Range(0, 100),
		field.JSON("input_data", json.RawMessage{}).
			Optional(),
		field.JSON("status_data", json.RawMessage{}).
			Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("failed_stage").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("stage_started_at").Optional().Nillable(),
		field.Time("stage_completed_at").Optional().Nillable(),
	}
}

func (WorkflowExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("merchant", Merchant.Type).
			Ref("workflows").
			Field("merchant_id").
			Unique().
			Required(),
		edge.From("document", OrderDocument.Type).
			Ref("workflows").
			Field("document_id").
			Unique().
			Required(),
		edge.To("dead_letters", DeadLetterEntry.Type),
	}
}

func (WorkflowExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("merchant_id", "status", "created_at"),
		index.Fields("document_id"),
		index.Fields("status"),
	}
}
