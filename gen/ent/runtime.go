// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/db/ent/schema"
	"github.com/joseph-ayodele/orderflow/gen/ent/deadletterentry"
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/purchaseorder"
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	deadletterentryFields := schema.DeadLetterEntry{}.Fields()
	_ = deadletterentryFields
	// deadletterentryDescJobID is the schema descriptor for job_id field.
	deadletterentryDescJobID := deadletterentryFields[1].Descriptor()
	// deadletterentry.JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	deadletterentry.JobIDValidator = deadletterentryDescJobID.Validators[0].(func(string) error)
	// deadletterentryDescStage is the schema descriptor for stage field.
	deadletterentryDescStage := deadletterentryFields[3].Descriptor()
	// deadletterentry.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	deadletterentry.StageValidator = deadletterentryDescStage.Validators[0].(func(string) error)
	// deadletterentryDescFailureReason is the schema descriptor for failure_reason field.
	deadletterentryDescFailureReason := deadletterentryFields[5].Descriptor()
	// deadletterentry.FailureReasonValidator is a validator for the "failure_reason" field. It is called by the builders before save.
	deadletterentry.FailureReasonValidator = deadletterentryDescFailureReason.Validators[0].(func(string) error)
	// deadletterentryDescAttemptsMade is the schema descriptor for attempts_made field.
	deadletterentryDescAttemptsMade := deadletterentryFields[7].Descriptor()
	// deadletterentry.AttemptsMadeValidator is a validator for the "attempts_made" field. It is called by the builders before save.
	deadletterentry.AttemptsMadeValidator = deadletterentryDescAttemptsMade.Validators[0].(func(int) error)
	// deadletterentryDescPriority is the schema descriptor for priority field.
	deadletterentryDescPriority := deadletterentryFields[8].Descriptor()
	// deadletterentry.DefaultPriority holds the default value on creation for the priority field.
	deadletterentry.DefaultPriority = deadletterentryDescPriority.Default.(string)
	// deadletterentryDescResolution is the schema descriptor for resolution field.
	deadletterentryDescResolution := deadletterentryFields[9].Descriptor()
	// deadletterentry.DefaultResolution holds the default value on creation for the resolution field.
	deadletterentry.DefaultResolution = deadletterentryDescResolution.Default.(string)
	// deadletterentry.ResolutionValidator is a validator for the "resolution" field. It is called by the builders before save.
	deadletterentry.ResolutionValidator = deadletterentryDescResolution.Validators[0].(func(string) error)
	// deadletterentryDescCreatedAt is the schema descriptor for created_at field.
	deadletterentryDescCreatedAt := deadletterentryFields[13].Descriptor()
	// deadletterentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	deadletterentry.DefaultCreatedAt = deadletterentryDescCreatedAt.Default.(func() time.Time)
	// deadletterentryDescID is the schema descriptor for id field.
	deadletterentryDescID := deadletterentryFields[0].Descriptor()
	// deadletterentry.DefaultID holds the default value on creation for the id field.
	deadletterentry.DefaultID = deadletterentryDescID.Default.(func() uuid.UUID)
	merchantFields := schema.Merchant{}.Fields()
	_ = merchantFields
	// merchantDescShopDomain is the schema descriptor for shop_domain field.
	merchantDescShopDomain := merchantFields[1].Descriptor()
	// merchant.ShopDomainValidator is a validator for the "shop_domain" field. It is called by the builders before save.
	merchant.ShopDomainValidator = merchantDescShopDomain.Validators[0].(func(string) error)
	// merchantDescCreatedAt is the schema descriptor for created_at field.
	merchantDescCreatedAt := merchantFields[3].Descriptor()
	// merchant.DefaultCreatedAt holds the default value on creation for the created_at field.
	merchant.DefaultCreatedAt = merchantDescCreatedAt.Default.(func() time.Time)
	// merchantDescID is the schema descriptor for id field.
	merchantDescID := merchantFields[0].Descriptor()
	// merchant.DefaultID holds the default value on creation for the id field.
	merchant.DefaultID = merchantDescID.Default.(func() uuid.UUID)
	orderdocumentFields := schema.OrderDocument{}.Fields()
	_ = orderdocumentFields
	// orderdocumentDescFilename is the schema descriptor for filename field.
	orderdocumentDescFilename := orderdocumentFields[2].Descriptor()
	// orderdocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	orderdocument.FilenameValidator = orderdocumentDescFilename.Validators[0].(func(string) error)
	// orderdocumentDescContentType is the schema descriptor for content_type field.
	orderdocumentDescContentType := orderdocumentFields[3].Descriptor()
	// orderdocument.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	orderdocument.ContentTypeValidator = orderdocumentDescContentType.Validators[0].(func(string) error)
	// orderdocumentDescContentHash is the schema descriptor for content_hash field.
	orderdocumentDescContentHash := orderdocumentFields[4].Descriptor()
	// orderdocument.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	orderdocument.ContentHashValidator = orderdocumentDescContentHash.Validators[0].(func([]byte) error)
	// orderdocumentDescFileSize is the schema descriptor for file_size field.
	orderdocumentDescFileSize := orderdocumentFields[5].Descriptor()
	// orderdocument.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	orderdocument.FileSizeValidator = orderdocumentDescFileSize.Validators[0].(func(int) error)
	// orderdocumentDescStorageKey is the schema descriptor for storage_key field.
	orderdocumentDescStorageKey := orderdocumentFields[6].Descriptor()
	// orderdocument.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	orderdocument.StorageKeyValidator = orderdocumentDescStorageKey.Validators[0].(func(string) error)
	// orderdocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	orderdocumentDescUploadedAt := orderdocumentFields[7].Descriptor()
	// orderdocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	orderdocument.DefaultUploadedAt = orderdocumentDescUploadedAt.Default.(func() time.Time)
	// orderdocumentDescID is the schema descriptor for id field.
	orderdocumentDescID := orderdocumentFields[0].Descriptor()
	// orderdocument.DefaultID holds the default value on creation for the id field.
	orderdocument.DefaultID = orderdocumentDescID.Default.(func() uuid.UUID)
	purchaseorderFields := schema.PurchaseOrder{}.Fields()
	_ = purchaseorderFields
	// purchaseorderDescExtractionConfidence is the schema descriptor for extraction_confidence field.
	purchaseorderDescExtractionConfidence := purchaseorderFields[9].Descriptor()
	// purchaseorder.DefaultExtractionConfidence holds the default value on creation for the extraction_confidence field.
	purchaseorder.DefaultExtractionConfidence = purchaseorderDescExtractionConfidence.Default.(float32)
	// purchaseorderDescCreatedAt is the schema descriptor for created_at field.
	purchaseorderDescCreatedAt := purchaseorderFields[11].Descriptor()
	// purchaseorder.DefaultCreatedAt holds the default value on creation for the created_at field.
	purchaseorder.DefaultCreatedAt = purchaseorderDescCreatedAt.Default.(func() time.Time)
	// purchaseorderDescUpdatedAt is the schema descriptor for updated_at field.
	purchaseorderDescUpdatedAt := purchaseorderFields[12].Descriptor()
	// purchaseorder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	purchaseorder.DefaultUpdatedAt = purchaseorderDescUpdatedAt.Default.(func() time.Time)
	// purchaseorder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	purchaseorder.UpdateDefaultUpdatedAt = purchaseorderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// purchaseorderDescID is the schema descriptor for id field.
	purchaseorderDescID := purchaseorderFields[0].Descriptor()
	// purchaseorder.DefaultID holds the default value on creation for the id field.
	purchaseorder.DefaultID = purchaseorderDescID.Default.(func() uuid.UUID)
	workflowexecutionFields := schema.WorkflowExecution{}.Fields()
	_ = workflowexecutionFields
	// workflowexecutionDescStatus is the schema descriptor for status field.
	workflowexecutionDescStatus := workflowexecutionFields[3].Descriptor()
	// workflowexecution.DefaultStatus holds the default value on creation for the status field.
	workflowexecution.DefaultStatus = workflowexecutionDescStatus.Default.(string)
	// workflowexecution.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	workflowexecution.StatusValidator = workflowexecutionDescStatus.Validators[0].(func(string) error)
	// workflowexecutionDescStagesTotal is the schema descriptor for stages_total field.
	workflowexecutionDescStagesTotal := workflowexecutionFields[5].Descriptor()
	// workflowexecution.StagesTotalValidator is a validator for the "stages_total" field. It is called by the builders before save.
	workflowexecution.StagesTotalValidator = workflowexecutionDescStagesTotal.Validators[0].(func(int) error)
	// workflowexecutionDescStagesCompleted is the schema descriptor for stages_completed field.
	workflowexecutionDescStagesCompleted := workflowexecutionFields[6].Descriptor()
	// workflowexecution.DefaultStagesCompleted holds the default value on creation for the stages_completed field.
	workflowexecution.DefaultStagesCompleted = workflowexecutionDescStagesCompleted.Default.(int)
	// workflowexecution.StagesCompletedValidator is a validator for the "stages_completed" field. It is called by the builders before save.
	workflowexecution.StagesCompletedValidator = workflowexecutionDescStagesCompleted.Validators[0].(func(int) error)
	// workflowexecutionDescProgressPercent is the schema descriptor for progress_percent field.
	workflowexecutionDescProgressPercent := workflowexecutionFields[7].Descriptor()
	// workflowexecution.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	workflowexecution.DefaultProgressPercent = workflowexecutionDescProgressPercent.Default.(int)
	// workflowexecution.ProgressPercentValidator is a validator for the "progress_percent" field. It is called by the builders before save.
	workflowexecution.ProgressPercentValidator = workflowexecutionDescProgressPercent.Validators[0].(func(int) error)
	// workflowexecutionDescCreatedAt is the schema descriptor for created_at field.
	workflowexecutionDescCreatedAt := workflowexecutionFields[12].Descriptor()
	// workflowexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowexecution.DefaultCreatedAt = workflowexecutionDescCreatedAt.Default.(func() time.Time)
	// workflowexecutionDescUpdatedAt is the schema descriptor for updated_at field.
	workflowexecutionDescUpdatedAt := workflowexecutionFields[13].Descriptor()
	// workflowexecution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowexecution.DefaultUpdatedAt = workflowexecutionDescUpdatedAt.Default.(func() time.Time)
	// workflowexecution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowexecution.UpdateDefaultUpdatedAt = workflowexecutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workflowexecutionDescID is the schema descriptor for id field.
	workflowexecutionDescID := workflowexecutionFields[0].Descriptor()
	// workflowexecution.DefaultID holds the default value on creation for the id field.
	workflowexecution.DefaultID = workflowexecutionDescID.Default.(func() uuid.UUID)
}
