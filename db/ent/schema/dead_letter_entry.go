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

type DeadLetterEntry struct{ ent.Schema }

func (DeadLetterEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dead_letter_entries"},
	}
}

func (DeadLetterEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// original queue-backend job id; unique so repeated failure polling
		// cannot produce duplicate entries
		field.String("job_id").NotEmpty().Immutable(),
		field.UUID("workflow_id", uuid.UUID{}),
		field.String("stage").NotEmpty().Immutable(),
		field.JSON("payload", json.RawMessage{}).
			Optional(),
		field.String("failure_reason").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("failure_stack").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("attempts_made").NonNegative(),
		field.String("priority").
			Default(string(constants.PriorityNormal)),
		field.String("resolution").
			Default(string(constants.ResolutionPending)).
			Validate(utils.EnumValidator(constants.Resolutions()...)),
		field.String("review_notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("reviewed_by").Optional().Nillable(),
		field.String("reprocessed_as_job_id").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("reviewed_at").Optional().Nillable(),
	}
}

func (DeadLetterEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", WorkflowExecution.Type).
			Ref("dead_letters").
			Field("workflow_id").
			Unique().
			Required(),
	}
}

func (DeadLetterEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id").Unique(),
		index.Fields("workflow_id"),
		index.Fields("resolution", "created_at"),
	}
}
