package stages

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/orderflow/constants"
)

func testDoc() DocumentRef {
	return DocumentRef{
		DocumentID:  uuid.New(),
		StorageKey:  "uploads/po-2041.pdf",
		ContentType: "application/pdf",
		Filename:    "po-2041.pdf",
	}
}

func TestBuildPayloadExtract(t *testing.T) {
	doc := testDoc()
	raw, err := BuildPayload(constants.StageExtract, doc, nil)
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	var p ExtractPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.DocumentID != doc.DocumentID {
		t.Errorf("document id = %s, want %s", p.DocumentID, doc.DocumentID)
	}
	if p.StorageKey != doc.StorageKey {
		t.Errorf("storage key = %q, want %q", p.StorageKey, doc.StorageKey)
	}
	if p.ContentType != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", p.ContentType)
	}
}

func TestBuildPayloadExtractUsesNormalizedImage(t *testing.T) {
	doc := testDoc()
	prior, _ := json.Marshal(ImageResult{StorageKey: "normalized/po-2041.png"})

	raw, err := BuildPayload(constants.StageExtract, doc, prior)
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	var p ExtractPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.StorageKey != "normalized/po-2041.png" {
		t.Errorf("storage key = %q, want normalized artifact", p.StorageKey)
	}
}

func TestBuildPayloadExtractIgnoresForeignPrior(t *testing.T) {
	doc := testDoc()
	prior := json.RawMessage(`{"confidence":0.9}`)

	raw, err := BuildPayload(constants.StageExtract, doc, prior)
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	var p ExtractPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.StorageKey != doc.StorageKey {
		t.Errorf("storage key = %q, want original %q", p.StorageKey, doc.StorageKey)
	}
}

func TestBuildPayloadPersistThreadsExtraction(t *testing.T) {
	doc := testDoc()
	extraction := json.RawMessage(`{"fields":{"supplier_name":"Acme Supply"},"confidence":0.93}`)

	raw, err := BuildPayload(constants.StagePersist, doc, extraction)
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	var p PersistPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !bytes.Equal(p.Extraction, extraction) {
		t.Errorf("extraction = %s, want prior result verbatim", p.Extraction)
	}
}

func TestBuildPayloadRequiresPrior(t *testing.T) {
	doc := testDoc()
	for _, stage := range []string{constants.StagePersist, constants.StageSync} {
		if _, err := BuildPayload(stage, doc, nil); err == nil {
			t.Errorf("BuildPayload(%s) with no prior succeeded", stage)
		}
	}
}

func TestBuildPayloadUnknownStage(t *testing.T) {
	if _, err := BuildPayload("compress", testDoc(), nil); err == nil {
		t.Fatal("unknown stage accepted")
	}
}

func TestDecodePayloadRoundTrip(t *testing.T) {
	doc := testDoc()
	prior := json.RawMessage(`{"order_id":"ord_1"}`)

	tests := []struct {
		stage string
		prior json.RawMessage
	}{
		{constants.StageExtract, nil},
		{constants.StagePersist, prior},
		{constants.StageSync, prior},
		{constants.StageImage, nil},
		{constants.StageBroadcast, nil},
	}
	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			raw, err := BuildPayload(tt.stage, doc, tt.prior)
			if err != nil {
				t.Fatalf("BuildPayload: %v", err)
			}
			v, err := DecodePayload(tt.stage, raw)
			if err != nil {
				t.Fatalf("DecodePayload: %v", err)
			}
			if v == nil {
				t.Fatal("DecodePayload returned nil value")
			}
		})
	}
}

func TestDecodePayloadUnknownStage(t *testing.T) {
	if _, err := DecodePayload("compress", json.RawMessage(`{}`)); err == nil {
		t.Fatal("unknown stage accepted")
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	_, err := DecodePayload(constants.StageExtract, json.RawMessage(`{`))
	if err == nil {
		t.Fatal("malformed payload accepted")
	}
	if !strings.Contains(err.Error(), "extract") {
		t.Errorf("err = %v, want stage name in message", err)
	}
}

func compileStageSchema(t *testing.T, stage string) *jsonschema.Schema {
	t.Helper()
	m := PayloadSchema(stage)
	if m == nil {
		t.Fatalf("PayloadSchema(%s) = nil", stage)
	}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("payload.json", bytes.NewReader(b)); err != nil {
		t.Fatalf("add schema: %v", err)
	}
	schema, err := compiler.Compile("payload.json")
	if err != nil {
		t.Fatalf("compile schema for %s: %v", stage, err)
	}
	return schema
}

func TestPayloadSchemasAcceptBuiltPayloads(t *testing.T) {
	doc := testDoc()
	prior := json.RawMessage(`{"fields":{}}`)

	for _, stage := range constants.AllStages {
		t.Run(stage, func(t *testing.T) {
			schema := compileStageSchema(t, stage)
			var p json.RawMessage
			var err error
			switch stage {
			case constants.StagePersist, constants.StageSync:
				p, err = BuildPayload(stage, doc, prior)
			default:
				p, err = BuildPayload(stage, doc, nil)
			}
			if err != nil {
				t.Fatalf("BuildPayload: %v", err)
			}
			var v any
			if err := json.Unmarshal(p, &v); err != nil {
				t.Fatalf("unmarshal payload: %v", err)
			}
			if err := schema.Validate(v); err != nil {
				t.Errorf("built payload rejected by own schema: %v", err)
			}
		})
	}
}

func TestPayloadSchemaRejectsMissingFields(t *testing.T) {
	schema := compileStageSchema(t, constants.StageExtract)

	var v any
	if err := json.Unmarshal([]byte(`{"document_id":"`+uuid.NewString()+`"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := schema.Validate(v); err == nil {
		t.Error("payload without storage key passed validation")
	}

	if err := json.Unmarshal([]byte(`{"document_id":"not-a-uuid","storage_key":"k","content_type":"application/pdf"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := schema.Validate(v); err == nil {
		t.Error("payload with malformed document id passed validation")
	}
}

func TestParseEnvelope(t *testing.T) {
	env := ParseEnvelope(json.RawMessage(`{"confidence":0.87,"summary":"Order ORD-1 from Acme Supply"}`))
	if env.Confidence == nil || *env.Confidence != 0.87 {
		t.Errorf("confidence = %v, want 0.87", env.Confidence)
	}
	if env.Summary != "Order ORD-1 from Acme Supply" {
		t.Errorf("summary = %q", env.Summary)
	}

	env = ParseEnvelope(json.RawMessage(`{"order_id":"ord_1"}`))
	if env.Confidence != nil || env.Summary != "" {
		t.Errorf("opaque result envelope = %+v, want zero", env)
	}

	env = ParseEnvelope(nil)
	if env.Confidence != nil {
		t.Errorf("empty result envelope = %+v, want zero", env)
	}

	env = ParseEnvelope(json.RawMessage(`"not an object"`))
	if env.Confidence != nil || env.Summary != "" {
		t.Errorf("non-object envelope = %+v, want zero", env)
	}
}
