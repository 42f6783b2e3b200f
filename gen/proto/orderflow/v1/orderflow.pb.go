// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: orderflow/v1/orderflow.proto

package orderflowpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Workflow struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	MerchantId      string                 `protobuf:"bytes,2,opt,name=merchant_id,json=merchantId,proto3" json:"merchant_id,omitempty"`
	DocumentId      string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Status          string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	CurrentStage    string                 `protobuf:"bytes,5,opt,name=current_stage,json=currentStage,proto3" json:"current_stage,omitempty"`
	StagesTotal     int32                  `protobuf:"varint,6,opt,name=stages_total,json=stagesTotal,proto3" json:"stages_total,omitempty"`
	StagesCompleted int32                  `protobuf:"varint,7,opt,name=stages_completed,json=stagesCompleted,proto3" json:"stages_completed,omitempty"`
	ProgressPercent int32                  `protobuf:"varint,8,opt,name=progress_percent,json=progressPercent,proto3" json:"progress_percent,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	FailedStage     string                 `protobuf:"bytes,10,opt,name=failed_stage,json=failedStage,proto3" json:"failed_stage,omitempty"`
	CanRetry        bool                   `protobuf:"varint,11,opt,name=can_retry,json=canRetry,proto3" json:"can_retry,omitempty"`
	Message         string                 `protobuf:"bytes,12,opt,name=message,proto3" json:"message,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Workflow) Reset() {
	*x = Workflow{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Workflow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Workflow) ProtoMessage() {}

func (x *Workflow) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Workflow.ProtoReflect.Descriptor instead.
func (*Workflow) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{0}
}

func (x *Workflow) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Workflow) GetMerchantId() string {
	if x != nil {
		return x.MerchantId
	}
	return ""
}

func (x *Workflow) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Workflow) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Workflow) GetCurrentStage() string {
	if x != nil {
		return x.CurrentStage
	}
	return ""
}

func (x *Workflow) GetStagesTotal() int32 {
	if x != nil {
		return x.StagesTotal
	}
	return 0
}

func (x *Workflow) GetStagesCompleted() int32 {
	if x != nil {
		return x.StagesCompleted
	}
	return 0
}

func (x *Workflow) GetProgressPercent() int32 {
	if x != nil {
		return x.ProgressPercent
	}
	return 0
}

func (x *Workflow) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Workflow) GetFailedStage() string {
	if x != nil {
		return x.FailedStage
	}
	return ""
}

func (x *Workflow) GetCanRetry() bool {
	if x != nil {
		return x.CanRetry
	}
	return false
}

func (x *Workflow) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Workflow) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Workflow) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type DeadLetter struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId              string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	WorkflowId         string                 `protobuf:"bytes,3,opt,name=workflow_id,json=workflowId,proto3" json:"workflow_id,omitempty"`
	Stage              string                 `protobuf:"bytes,4,opt,name=stage,proto3" json:"stage,omitempty"`
	Payload            []byte                 `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
	FailureReason      string                 `protobuf:"bytes,6,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	FailureStack       string                 `protobuf:"bytes,7,opt,name=failure_stack,json=failureStack,proto3" json:"failure_stack,omitempty"`
	AttemptsMade       int32                  `protobuf:"varint,8,opt,name=attempts_made,json=attemptsMade,proto3" json:"attempts_made,omitempty"`
	Priority           string                 `protobuf:"bytes,9,opt,name=priority,proto3" json:"priority,omitempty"`
	Resolution         string                 `protobuf:"bytes,10,opt,name=resolution,proto3" json:"resolution,omitempty"`
	ReviewNotes        string                 `protobuf:"bytes,11,opt,name=review_notes,json=reviewNotes,proto3" json:"review_notes,omitempty"`
	ReviewedBy         string                 `protobuf:"bytes,12,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	ReprocessedAsJobId string                 `protobuf:"bytes,13,opt,name=reprocessed_as_job_id,json=reprocessedAsJobId,proto3" json:"reprocessed_as_job_id,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ReviewedAt         string                 `protobuf:"bytes,15,opt,name=reviewed_at,json=reviewedAt,proto3" json:"reviewed_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *DeadLetter) Reset() {
	*x = DeadLetter{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeadLetter) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeadLetter) ProtoMessage() {}

func (x *DeadLetter) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeadLetter.ProtoReflect.Descriptor instead.
func (*DeadLetter) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{1}
}

func (x *DeadLetter) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DeadLetter) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *DeadLetter) GetWorkflowId() string {
	if x != nil {
		return x.WorkflowId
	}
	return ""
}

func (x *DeadLetter) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *DeadLetter) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *DeadLetter) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

func (x *DeadLetter) GetFailureStack() string {
	if x != nil {
		return x.FailureStack
	}
	return ""
}

func (x *DeadLetter) GetAttemptsMade() int32 {
	if x != nil {
		return x.AttemptsMade
	}
	return 0
}

func (x *DeadLetter) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *DeadLetter) GetResolution() string {
	if x != nil {
		return x.Resolution
	}
	return ""
}

func (x *DeadLetter) GetReviewNotes() string {
	if x != nil {
		return x.ReviewNotes
	}
	return ""
}

func (x *DeadLetter) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

func (x *DeadLetter) GetReprocessedAsJobId() string {
	if x != nil {
		return x.ReprocessedAsJobId
	}
	return ""
}

func (x *DeadLetter) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *DeadLetter) GetReviewedAt() string {
	if x != nil {
		return x.ReviewedAt
	}
	return ""
}

type QueueStatus struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Stage            string                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	Waiting          int64                  `protobuf:"varint,2,opt,name=waiting,proto3" json:"waiting,omitempty"`
	Delayed          int64                  `protobuf:"varint,3,opt,name=delayed,proto3" json:"delayed,omitempty"`
	Active           int64                  `protobuf:"varint,4,opt,name=active,proto3" json:"active,omitempty"`
	Completed        int64                  `protobuf:"varint,5,opt,name=completed,proto3" json:"completed,omitempty"`
	Failed           int64                  `protobuf:"varint,6,opt,name=failed,proto3" json:"failed,omitempty"`
	Paused           bool                   `protobuf:"varint,7,opt,name=paused,proto3" json:"paused,omitempty"`
	ThroughputPerMin float64                `protobuf:"fixed64,8,opt,name=throughput_per_min,json=throughputPerMin,proto3" json:"throughput_per_min,omitempty"`
	FailureRate      float64                `protobuf:"fixed64,9,opt,name=failure_rate,json=failureRate,proto3" json:"failure_rate,omitempty"`
	Status           string                 `protobuf:"bytes,10,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *QueueStatus) Reset() {
	*x = QueueStatus{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueueStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueueStatus) ProtoMessage() {}

func (x *QueueStatus) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueueStatus.ProtoReflect.Descriptor instead.
func (*QueueStatus) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{2}
}

func (x *QueueStatus) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *QueueStatus) GetWaiting() int64 {
	if x != nil {
		return x.Waiting
	}
	return 0
}

func (x *QueueStatus) GetDelayed() int64 {
	if x != nil {
		return x.Delayed
	}
	return 0
}

func (x *QueueStatus) GetActive() int64 {
	if x != nil {
		return x.Active
	}
	return 0
}

func (x *QueueStatus) GetCompleted() int64 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *QueueStatus) GetFailed() int64 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *QueueStatus) GetPaused() bool {
	if x != nil {
		return x.Paused
	}
	return false
}

func (x *QueueStatus) GetThroughputPerMin() float64 {
	if x != nil {
		return x.ThroughputPerMin
	}
	return 0
}

func (x *QueueStatus) GetFailureRate() float64 {
	if x != nil {
		return x.FailureRate
	}
	return 0
}

func (x *QueueStatus) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type CreateWorkflowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ShopDomain    string                 `protobuf:"bytes,1,opt,name=shop_domain,json=shopDomain,proto3" json:"shop_domain,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	StorageKey    string                 `protobuf:"bytes,3,opt,name=storage_key,json=storageKey,proto3" json:"storage_key,omitempty"`
	ContentType   string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Filename      string                 `protobuf:"bytes,5,opt,name=filename,proto3" json:"filename,omitempty"`
	Plan          []string               `protobuf:"bytes,6,rep,name=plan,proto3" json:"plan,omitempty"`
	Priority      string                 `protobuf:"bytes,7,opt,name=priority,proto3" json:"priority,omitempty"`
	Urgent        bool                   `protobuf:"varint,8,opt,name=urgent,proto3" json:"urgent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateWorkflowRequest) Reset() {
	*x = CreateWorkflowRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateWorkflowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateWorkflowRequest) ProtoMessage() {}

func (x *CreateWorkflowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateWorkflowRequest.ProtoReflect.Descriptor instead.
func (*CreateWorkflowRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{3}
}

func (x *CreateWorkflowRequest) GetShopDomain() string {
	if x != nil {
		return x.ShopDomain
	}
	return ""
}

func (x *CreateWorkflowRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *CreateWorkflowRequest) GetStorageKey() string {
	if x != nil {
		return x.StorageKey
	}
	return ""
}

func (x *CreateWorkflowRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *CreateWorkflowRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *CreateWorkflowRequest) GetPlan() []string {
	if x != nil {
		return x.Plan
	}
	return nil
}

func (x *CreateWorkflowRequest) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *CreateWorkflowRequest) GetUrgent() bool {
	if x != nil {
		return x.Urgent
	}
	return false
}

type CreateWorkflowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workflow      *Workflow              `protobuf:"bytes,1,opt,name=workflow,proto3" json:"workflow,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateWorkflowResponse) Reset() {
	*x = CreateWorkflowResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateWorkflowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateWorkflowResponse) ProtoMessage() {}

func (x *CreateWorkflowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateWorkflowResponse.ProtoReflect.Descriptor instead.
func (*CreateWorkflowResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{4}
}

func (x *CreateWorkflowResponse) GetWorkflow() *Workflow {
	if x != nil {
		return x.Workflow
	}
	return nil
}

type GetWorkflowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWorkflowRequest) Reset() {
	*x = GetWorkflowRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWorkflowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWorkflowRequest) ProtoMessage() {}

func (x *GetWorkflowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWorkflowRequest.ProtoReflect.Descriptor instead.
func (*GetWorkflowRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{5}
}

func (x *GetWorkflowRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetWorkflowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workflow      *Workflow              `protobuf:"bytes,1,opt,name=workflow,proto3" json:"workflow,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWorkflowResponse) Reset() {
	*x = GetWorkflowResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWorkflowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWorkflowResponse) ProtoMessage() {}

func (x *GetWorkflowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWorkflowResponse.ProtoReflect.Descriptor instead.
func (*GetWorkflowResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{6}
}

func (x *GetWorkflowResponse) GetWorkflow() *Workflow {
	if x != nil {
		return x.Workflow
	}
	return nil
}

type ListWorkflowsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ShopDomain    string                 `protobuf:"bytes,1,opt,name=shop_domain,json=shopDomain,proto3" json:"shop_domain,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWorkflowsRequest) Reset() {
	*x = ListWorkflowsRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWorkflowsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWorkflowsRequest) ProtoMessage() {}

func (x *ListWorkflowsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWorkflowsRequest.ProtoReflect.Descriptor instead.
func (*ListWorkflowsRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{7}
}

func (x *ListWorkflowsRequest) GetShopDomain() string {
	if x != nil {
		return x.ShopDomain
	}
	return ""
}

func (x *ListWorkflowsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListWorkflowsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListWorkflowsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workflows     []*Workflow            `protobuf:"bytes,1,rep,name=workflows,proto3" json:"workflows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWorkflowsResponse) Reset() {
	*x = ListWorkflowsResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWorkflowsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWorkflowsResponse) ProtoMessage() {}

func (x *ListWorkflowsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWorkflowsResponse.ProtoReflect.Descriptor instead.
func (*ListWorkflowsResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{8}
}

func (x *ListWorkflowsResponse) GetWorkflows() []*Workflow {
	if x != nil {
		return x.Workflows
	}
	return nil
}

type CancelWorkflowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelWorkflowRequest) Reset() {
	*x = CancelWorkflowRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelWorkflowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelWorkflowRequest) ProtoMessage() {}

func (x *CancelWorkflowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelWorkflowRequest.ProtoReflect.Descriptor instead.
func (*CancelWorkflowRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{9}
}

func (x *CancelWorkflowRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type CancelWorkflowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workflow      *Workflow              `protobuf:"bytes,1,opt,name=workflow,proto3" json:"workflow,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelWorkflowResponse) Reset() {
	*x = CancelWorkflowResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelWorkflowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelWorkflowResponse) ProtoMessage() {}

func (x *CancelWorkflowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelWorkflowResponse.ProtoReflect.Descriptor instead.
func (*CancelWorkflowResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{10}
}

func (x *CancelWorkflowResponse) GetWorkflow() *Workflow {
	if x != nil {
		return x.Workflow
	}
	return nil
}

type RetryWorkflowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryWorkflowRequest) Reset() {
	*x = RetryWorkflowRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryWorkflowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryWorkflowRequest) ProtoMessage() {}

func (x *RetryWorkflowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryWorkflowRequest.ProtoReflect.Descriptor instead.
func (*RetryWorkflowRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{11}
}

func (x *RetryWorkflowRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RetryWorkflowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workflow      *Workflow              `protobuf:"bytes,1,opt,name=workflow,proto3" json:"workflow,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryWorkflowResponse) Reset() {
	*x = RetryWorkflowResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryWorkflowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryWorkflowResponse) ProtoMessage() {}

func (x *RetryWorkflowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryWorkflowResponse.ProtoReflect.Descriptor instead.
func (*RetryWorkflowResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{12}
}

func (x *RetryWorkflowResponse) GetWorkflow() *Workflow {
	if x != nil {
		return x.Workflow
	}
	return nil
}

type ApproveWorkflowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ReviewedBy    string                 `protobuf:"bytes,2,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveWorkflowRequest) Reset() {
	*x = ApproveWorkflowRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveWorkflowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveWorkflowRequest) ProtoMessage() {}

func (x *ApproveWorkflowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveWorkflowRequest.ProtoReflect.Descriptor instead.
func (*ApproveWorkflowRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{13}
}

func (x *ApproveWorkflowRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ApproveWorkflowRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

type ApproveWorkflowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workflow      *Workflow              `protobuf:"bytes,1,opt,name=workflow,proto3" json:"workflow,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveWorkflowResponse) Reset() {
	*x = ApproveWorkflowResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveWorkflowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveWorkflowResponse) ProtoMessage() {}

func (x *ApproveWorkflowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveWorkflowResponse.ProtoReflect.Descriptor instead.
func (*ApproveWorkflowResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{14}
}

func (x *ApproveWorkflowResponse) GetWorkflow() *Workflow {
	if x != nil {
		return x.Workflow
	}
	return nil
}

type ListDeadLettersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Resolution    string                 `protobuf:"bytes,1,opt,name=resolution,proto3" json:"resolution,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDeadLettersRequest) Reset() {
	*x = ListDeadLettersRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDeadLettersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDeadLettersRequest) ProtoMessage() {}

func (x *ListDeadLettersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDeadLettersRequest.ProtoReflect.Descriptor instead.
func (*ListDeadLettersRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{15}
}

func (x *ListDeadLettersRequest) GetResolution() string {
	if x != nil {
		return x.Resolution
	}
	return ""
}

func (x *ListDeadLettersRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDeadLettersRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDeadLettersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*DeadLetter          `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDeadLettersResponse) Reset() {
	*x = ListDeadLettersResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDeadLettersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDeadLettersResponse) ProtoMessage() {}

func (x *ListDeadLettersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDeadLettersResponse.ProtoReflect.Descriptor instead.
func (*ListDeadLettersResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{16}
}

func (x *ListDeadLettersResponse) GetEntries() []*DeadLetter {
	if x != nil {
		return x.Entries
	}
	return nil
}

func (x *ListDeadLettersResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetDeadLetterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDeadLetterRequest) Reset() {
	*x = GetDeadLetterRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDeadLetterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDeadLetterRequest) ProtoMessage() {}

func (x *GetDeadLetterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDeadLetterRequest.ProtoReflect.Descriptor instead.
func (*GetDeadLetterRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{17}
}

func (x *GetDeadLetterRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDeadLetterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entry         *DeadLetter            `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDeadLetterResponse) Reset() {
	*x = GetDeadLetterResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDeadLetterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDeadLetterResponse) ProtoMessage() {}

func (x *GetDeadLetterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDeadLetterResponse.ProtoReflect.Descriptor instead.
func (*GetDeadLetterResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{18}
}

func (x *GetDeadLetterResponse) GetEntry() *DeadLetter {
	if x != nil {
		return x.Entry
	}
	return nil
}

type AnnotateDeadLetterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Notes         string                 `protobuf:"bytes,2,opt,name=notes,proto3" json:"notes,omitempty"`
	ReviewedBy    string                 `protobuf:"bytes,3,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnnotateDeadLetterRequest) Reset() {
	*x = AnnotateDeadLetterRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnnotateDeadLetterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnnotateDeadLetterRequest) ProtoMessage() {}

func (x *AnnotateDeadLetterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnnotateDeadLetterRequest.ProtoReflect.Descriptor instead.
func (*AnnotateDeadLetterRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{19}
}

func (x *AnnotateDeadLetterRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AnnotateDeadLetterRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *AnnotateDeadLetterRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

type AnnotateDeadLetterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entry         *DeadLetter            `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnnotateDeadLetterResponse) Reset() {
	*x = AnnotateDeadLetterResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnnotateDeadLetterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnnotateDeadLetterResponse) ProtoMessage() {}

func (x *AnnotateDeadLetterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnnotateDeadLetterResponse.ProtoReflect.Descriptor instead.
func (*AnnotateDeadLetterResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{20}
}

func (x *AnnotateDeadLetterResponse) GetEntry() *DeadLetter {
	if x != nil {
		return x.Entry
	}
	return nil
}

type DiscardDeadLetterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ReviewedBy    string                 `protobuf:"bytes,2,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiscardDeadLetterRequest) Reset() {
	*x = DiscardDeadLetterRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscardDeadLetterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscardDeadLetterRequest) ProtoMessage() {}

func (x *DiscardDeadLetterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscardDeadLetterRequest.ProtoReflect.Descriptor instead.
func (*DiscardDeadLetterRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{21}
}

func (x *DiscardDeadLetterRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DiscardDeadLetterRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

type DiscardDeadLetterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entry         *DeadLetter            `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiscardDeadLetterResponse) Reset() {
	*x = DiscardDeadLetterResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscardDeadLetterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscardDeadLetterResponse) ProtoMessage() {}

func (x *DiscardDeadLetterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscardDeadLetterResponse.ProtoReflect.Descriptor instead.
func (*DiscardDeadLetterResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{22}
}

func (x *DiscardDeadLetterResponse) GetEntry() *DeadLetter {
	if x != nil {
		return x.Entry
	}
	return nil
}

type ReprocessDeadLetterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ReviewedBy    string                 `protobuf:"bytes,2,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDeadLetterRequest) Reset() {
	*x = ReprocessDeadLetterRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDeadLetterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDeadLetterRequest) ProtoMessage() {}

func (x *ReprocessDeadLetterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDeadLetterRequest.ProtoReflect.Descriptor instead.
func (*ReprocessDeadLetterRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{23}
}

func (x *ReprocessDeadLetterRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReprocessDeadLetterRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

type ReprocessDeadLetterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entry         *DeadLetter            `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDeadLetterResponse) Reset() {
	*x = ReprocessDeadLetterResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDeadLetterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDeadLetterResponse) ProtoMessage() {}

func (x *ReprocessDeadLetterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDeadLetterResponse.ProtoReflect.Descriptor instead.
func (*ReprocessDeadLetterResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{24}
}

func (x *ReprocessDeadLetterResponse) GetEntry() *DeadLetter {
	if x != nil {
		return x.Entry
	}
	return nil
}

type ReprocessDeadLettersBulkRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ids           []string               `protobuf:"bytes,1,rep,name=ids,proto3" json:"ids,omitempty"`
	ReviewedBy    string                 `protobuf:"bytes,2,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDeadLettersBulkRequest) Reset() {
	*x = ReprocessDeadLettersBulkRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDeadLettersBulkRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDeadLettersBulkRequest) ProtoMessage() {}

func (x *ReprocessDeadLettersBulkRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDeadLettersBulkRequest.ProtoReflect.Descriptor instead.
func (*ReprocessDeadLettersBulkRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{25}
}

func (x *ReprocessDeadLettersBulkRequest) GetIds() []string {
	if x != nil {
		return x.Ids
	}
	return nil
}

func (x *ReprocessDeadLettersBulkRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

type ReprocessDeadLettersBulkResponse struct {
	state         protoimpl.MessageState                     `protogen:"open.v1"`
	Results       []*ReprocessDeadLettersBulkResponse_Result `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDeadLettersBulkResponse) Reset() {
	*x = ReprocessDeadLettersBulkResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDeadLettersBulkResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDeadLettersBulkResponse) ProtoMessage() {}

func (x *ReprocessDeadLettersBulkResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDeadLettersBulkResponse.ProtoReflect.Descriptor instead.
func (*ReprocessDeadLettersBulkResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{26}
}

func (x *ReprocessDeadLettersBulkResponse) GetResults() []*ReprocessDeadLettersBulkResponse_Result {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExportDeadLettersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Resolution    string                 `protobuf:"bytes,1,opt,name=resolution,proto3" json:"resolution,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDeadLettersRequest) Reset() {
	*x = ExportDeadLettersRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDeadLettersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDeadLettersRequest) ProtoMessage() {}

func (x *ExportDeadLettersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDeadLettersRequest.ProtoReflect.Descriptor instead.
func (*ExportDeadLettersRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{27}
}

func (x *ExportDeadLettersRequest) GetResolution() string {
	if x != nil {
		return x.Resolution
	}
	return ""
}

type ExportDeadLettersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDeadLettersResponse) Reset() {
	*x = ExportDeadLettersResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDeadLettersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDeadLettersResponse) ProtoMessage() {}

func (x *ExportDeadLettersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDeadLettersResponse.ProtoReflect.Descriptor instead.
func (*ExportDeadLettersResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{28}
}

func (x *ExportDeadLettersResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type GetHealthRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHealthRequest) Reset() {
	*x = GetHealthRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHealthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHealthRequest) ProtoMessage() {}

func (x *GetHealthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHealthRequest.ProtoReflect.Descriptor instead.
func (*GetHealthRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{29}
}

type GetHealthResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Status          string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	BackendHealthy  bool                   `protobuf:"varint,2,opt,name=backend_healthy,json=backendHealthy,proto3" json:"backend_healthy,omitempty"`
	DatabaseHealthy bool                   `protobuf:"varint,3,opt,name=database_healthy,json=databaseHealthy,proto3" json:"database_healthy,omitempty"`
	Queues          []*QueueStatus         `protobuf:"bytes,4,rep,name=queues,proto3" json:"queues,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetHealthResponse) Reset() {
	*x = GetHealthResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHealthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHealthResponse) ProtoMessage() {}

func (x *GetHealthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHealthResponse.ProtoReflect.Descriptor instead.
func (*GetHealthResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{30}
}

func (x *GetHealthResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetHealthResponse) GetBackendHealthy() bool {
	if x != nil {
		return x.BackendHealthy
	}
	return false
}

func (x *GetHealthResponse) GetDatabaseHealthy() bool {
	if x != nil {
		return x.DatabaseHealthy
	}
	return false
}

func (x *GetHealthResponse) GetQueues() []*QueueStatus {
	if x != nil {
		return x.Queues
	}
	return nil
}

type ListQueuesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQueuesRequest) Reset() {
	*x = ListQueuesRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQueuesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQueuesRequest) ProtoMessage() {}

func (x *ListQueuesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQueuesRequest.ProtoReflect.Descriptor instead.
func (*ListQueuesRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{31}
}

type ListQueuesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queues        []*QueueStatus         `protobuf:"bytes,1,rep,name=queues,proto3" json:"queues,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQueuesResponse) Reset() {
	*x = ListQueuesResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQueuesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQueuesResponse) ProtoMessage() {}

func (x *ListQueuesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQueuesResponse.ProtoReflect.Descriptor instead.
func (*ListQueuesResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{32}
}

func (x *ListQueuesResponse) GetQueues() []*QueueStatus {
	if x != nil {
		return x.Queues
	}
	return nil
}

type QueueJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Stage         string                 `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	WorkflowId    string                 `protobuf:"bytes,3,opt,name=workflow_id,json=workflowId,proto3" json:"workflow_id,omitempty"`
	MerchantId    string                 `protobuf:"bytes,4,opt,name=merchant_id,json=merchantId,proto3" json:"merchant_id,omitempty"`
	Payload       []byte                 `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
	Priority      string                 `protobuf:"bytes,6,opt,name=priority,proto3" json:"priority,omitempty"`
	AttemptsMade  int32                  `protobuf:"varint,7,opt,name=attempts_made,json=attemptsMade,proto3" json:"attempts_made,omitempty"`
	MaxAttempts   int32                  `protobuf:"varint,8,opt,name=max_attempts,json=maxAttempts,proto3" json:"max_attempts,omitempty"`
	EnqueuedAt    string                 `protobuf:"bytes,9,opt,name=enqueued_at,json=enqueuedAt,proto3" json:"enqueued_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueueJob) Reset() {
	*x = QueueJob{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueueJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueueJob) ProtoMessage() {}

func (x *QueueJob) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueueJob.ProtoReflect.Descriptor instead.
func (*QueueJob) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{33}
}

func (x *QueueJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *QueueJob) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *QueueJob) GetWorkflowId() string {
	if x != nil {
		return x.WorkflowId
	}
	return ""
}

func (x *QueueJob) GetMerchantId() string {
	if x != nil {
		return x.MerchantId
	}
	return ""
}

func (x *QueueJob) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *QueueJob) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *QueueJob) GetAttemptsMade() int32 {
	if x != nil {
		return x.AttemptsMade
	}
	return 0
}

func (x *QueueJob) GetMaxAttempts() int32 {
	if x != nil {
		return x.MaxAttempts
	}
	return 0
}

func (x *QueueJob) GetEnqueuedAt() string {
	if x != nil {
		return x.EnqueuedAt
	}
	return ""
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stage         string                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	State         string                 `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{34}
}

func (x *ListJobsRequest) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *ListJobsRequest) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*QueueJob            `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{35}
}

func (x *ListJobsResponse) GetJobs() []*QueueJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type PauseQueueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stage         string                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PauseQueueRequest) Reset() {
	*x = PauseQueueRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseQueueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseQueueRequest) ProtoMessage() {}

func (x *PauseQueueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseQueueRequest.ProtoReflect.Descriptor instead.
func (*PauseQueueRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{36}
}

func (x *PauseQueueRequest) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

type PauseQueueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PauseQueueResponse) Reset() {
	*x = PauseQueueResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseQueueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseQueueResponse) ProtoMessage() {}

func (x *PauseQueueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseQueueResponse.ProtoReflect.Descriptor instead.
func (*PauseQueueResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{37}
}

type ResumeQueueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stage         string                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeQueueRequest) Reset() {
	*x = ResumeQueueRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeQueueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeQueueRequest) ProtoMessage() {}

func (x *ResumeQueueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeQueueRequest.ProtoReflect.Descriptor instead.
func (*ResumeQueueRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{38}
}

func (x *ResumeQueueRequest) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

type ResumeQueueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeQueueResponse) Reset() {
	*x = ResumeQueueResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeQueueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeQueueResponse) ProtoMessage() {}

func (x *ResumeQueueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeQueueResponse.ProtoReflect.Descriptor instead.
func (*ResumeQueueResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{39}
}

type CleanQueueRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Stage            string                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	OlderThanSeconds int64                  `protobuf:"varint,2,opt,name=older_than_seconds,json=olderThanSeconds,proto3" json:"older_than_seconds,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *CleanQueueRequest) Reset() {
	*x = CleanQueueRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CleanQueueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CleanQueueRequest) ProtoMessage() {}

func (x *CleanQueueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CleanQueueRequest.ProtoReflect.Descriptor instead.
func (*CleanQueueRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{40}
}

func (x *CleanQueueRequest) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *CleanQueueRequest) GetOlderThanSeconds() int64 {
	if x != nil {
		return x.OlderThanSeconds
	}
	return 0
}

type CleanQueueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Removed       int64                  `protobuf:"varint,1,opt,name=removed,proto3" json:"removed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CleanQueueResponse) Reset() {
	*x = CleanQueueResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CleanQueueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CleanQueueResponse) ProtoMessage() {}

func (x *CleanQueueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CleanQueueResponse.ProtoReflect.Descriptor instead.
func (*CleanQueueResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{41}
}

func (x *CleanQueueResponse) GetRemoved() int64 {
	if x != nil {
		return x.Removed
	}
	return 0
}

type ForceRequeueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stage         string                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ForceRequeueRequest) Reset() {
	*x = ForceRequeueRequest{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ForceRequeueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForceRequeueRequest) ProtoMessage() {}

func (x *ForceRequeueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForceRequeueRequest.ProtoReflect.Descriptor instead.
func (*ForceRequeueRequest) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{42}
}

func (x *ForceRequeueRequest) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *ForceRequeueRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ForceRequeueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ForceRequeueResponse) Reset() {
	*x = ForceRequeueResponse{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ForceRequeueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForceRequeueResponse) ProtoMessage() {}

func (x *ForceRequeueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForceRequeueResponse.ProtoReflect.Descriptor instead.
func (*ForceRequeueResponse) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{43}
}

type ReprocessDeadLettersBulkResponse_Result struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntryId       string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	NewJobId      string                 `protobuf:"bytes,2,opt,name=new_job_id,json=newJobId,proto3" json:"new_job_id,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDeadLettersBulkResponse_Result) Reset() {
	*x = ReprocessDeadLettersBulkResponse_Result{}
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDeadLettersBulkResponse_Result) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDeadLettersBulkResponse_Result) ProtoMessage() {}

func (x *ReprocessDeadLettersBulkResponse_Result) ProtoReflect() protoreflect.Message {
	mi := &file_orderflow_v1_orderflow_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDeadLettersBulkResponse_Result.ProtoReflect.Descriptor instead.
func (*ReprocessDeadLettersBulkResponse_Result) Descriptor() ([]byte, []int) {
	return file_orderflow_v1_orderflow_proto_rawDescGZIP(), []int{26, 0}
}

func (x *ReprocessDeadLettersBulkResponse_Result) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

func (x *ReprocessDeadLettersBulkResponse_Result) GetNewJobId() string {
	if x != nil {
		return x.NewJobId
	}
	return ""
}

func (x *ReprocessDeadLettersBulkResponse_Result) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

var File_orderflow_v1_orderflow_proto protoreflect.FileDescriptor

const file_orderflow_v1_orderflow_proto_rawDesc = "" +
	"\n" +
	"\x1corderflow/v1/orderflow.proto\x12\forderflow.v1\"\xcf\x03\n" +
	"\bWorkflow\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vmerchant_id\x18\x02 \x01(\tR\n" +
	"merchantId\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12#\n" +
	"\rcurrent_stage\x18\x05 \x01(\tR\fcurrentStage\x12!\n" +
	"\fstages_total\x18\x06 \x01(\x05R\vstagesTotal\x12)\n" +
	"\x10stages_completed\x18\a \x01(\x05R\x0fstagesCompleted\x12)\n" +
	"\x10progress_percent\x18\b \x01(\x05R\x0fprogressPercent\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12!\n" +
	"\ffailed_stage\x18\n" +
	" \x01(\tR\vfailedStage\x12\x1b\n" +
	"\tcan_retry\x18\v \x01(\bR\bcanRetry\x12\x18\n" +
	"\amessage\x18\f \x01(\tR\amessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\xe8\x03\n" +
	"\n" +
	"DeadLetter\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vworkflow_id\x18\x03 \x01(\tR\n" +
	"workflowId\x12\x14\n" +
	"\x05stage\x18\x04 \x01(\tR\x05stage\x12\x18\n" +
	"\apayload\x18\x05 \x01(\fR\apayload\x12%\n" +
	"\x0efailure_reason\x18\x06 \x01(\tR\rfailureReason\x12#\n" +
	"\rfailure_stack\x18\a \x01(\tR\ffailureStack\x12#\n" +
	"\rattempts_made\x18\b \x01(\x05R\fattemptsMade\x12\x1a\n" +
	"\bpriority\x18\t \x01(\tR\bpriority\x12\x1e\n" +
	"\n" +
	"resolution\x18\n" +
	" \x01(\tR\n" +
	"resolution\x12!\n" +
	"\freview_notes\x18\v \x01(\tR\vreviewNotes\x12\x1f\n" +
	"\vreviewed_by\x18\f \x01(\tR\n" +
	"reviewedBy\x121\n" +
	"\x15reprocessed_as_job_id\x18\r \x01(\tR\x12reprocessedAsJobId\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x12\x1f\n" +
	"\vreviewed_at\x18\x0f \x01(\tR\n" +
	"reviewedAt\"\xa6\x02\n" +
	"\vQueueStatus\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\x12\x18\n" +
	"\awaiting\x18\x02 \x01(\x03R\awaiting\x12\x18\n" +
	"\adelayed\x18\x03 \x01(\x03R\adelayed\x12\x16\n" +
	"\x06active\x18\x04 \x01(\x03R\x06active\x12\x1c\n" +
	"\tcompleted\x18\x05 \x01(\x03R\tcompleted\x12\x16\n" +
	"\x06failed\x18\x06 \x01(\x03R\x06failed\x12\x16\n" +
	"\x06paused\x18\a \x01(\bR\x06paused\x12,\n" +
	"\x12throughput_per_min\x18\b \x01(\x01R\x10throughputPerMin\x12!\n" +
	"\ffailure_rate\x18\t \x01(\x01R\vfailureRate\x12\x16\n" +
	"\x06status\x18\n" +
	" \x01(\tR\x06status\"\x81\x02\n" +
	"\x15CreateWorkflowRequest\x12\x1f\n" +
	"\vshop_domain\x18\x01 \x01(\tR\n" +
	"shopDomain\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vstorage_key\x18\x03 \x01(\tR\n" +
	"storageKey\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\x12\x1a\n" +
	"\bfilename\x18\x05 \x01(\tR\bfilename\x12\x12\n" +
	"\x04plan\x18\x06 \x03(\tR\x04plan\x12\x1a\n" +
	"\bpriority\x18\a \x01(\tR\bpriority\x12\x16\n" +
	"\x06urgent\x18\b \x01(\bR\x06urgent\"L\n" +
	"\x16CreateWorkflowResponse\x122\n" +
	"\bworkflow\x18\x01 \x01(\v2\x16.orderflow.v1.WorkflowR\bworkflow\"$\n" +
	"\x12GetWorkflowRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"I\n" +
	"\x13GetWorkflowResponse\x122\n" +
	"\bworkflow\x18\x01 \x01(\v2\x16.orderflow.v1.WorkflowR\bworkflow\"e\n" +
	"\x14ListWorkflowsRequest\x12\x1f\n" +
	"\vshop_domain\x18\x01 \x01(\tR\n" +
	"shopDomain\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"M\n" +
	"\x15ListWorkflowsResponse\x124\n" +
	"\tworkflows\x18\x01 \x03(\v2\x16.orderflow.v1.WorkflowR\tworkflows\"'\n" +
	"\x15CancelWorkflowRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"L\n" +
	"\x16CancelWorkflowResponse\x122\n" +
	"\bworkflow\x18\x01 \x01(\v2\x16.orderflow.v1.WorkflowR\bworkflow\"&\n" +
	"\x14RetryWorkflowRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"K\n" +
	"\x15RetryWorkflowResponse\x122\n" +
	"\bworkflow\x18\x01 \x01(\v2\x16.orderflow.v1.WorkflowR\bworkflow\"I\n" +
	"\x16ApproveWorkflowRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vreviewed_by\x18\x02 \x01(\tR\n" +
	"reviewedBy\"M\n" +
	"\x17ApproveWorkflowResponse\x122\n" +
	"\bworkflow\x18\x01 \x01(\v2\x16.orderflow.v1.WorkflowR\bworkflow\"f\n" +
	"\x16ListDeadLettersRequest\x12\x1e\n" +
	"\n" +
	"resolution\x18\x01 \x01(\tR\n" +
	"resolution\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"c\n" +
	"\x17ListDeadLettersResponse\x122\n" +
	"\aentries\x18\x01 \x03(\v2\x18.orderflow.v1.DeadLetterR\aentries\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"&\n" +
	"\x14GetDeadLetterRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"G\n" +
	"\x15GetDeadLetterResponse\x12.\n" +
	"\x05entry\x18\x01 \x01(\v2\x18.orderflow.v1.DeadLetterR\x05entry\"b\n" +
	"\x19AnnotateDeadLetterRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05notes\x18\x02 \x01(\tR\x05notes\x12\x1f\n" +
	"\vreviewed_by\x18\x03 \x01(\tR\n" +
	"reviewedBy\"L\n" +
	"\x1aAnnotateDeadLetterResponse\x12.\n" +
	"\x05entry\x18\x01 \x01(\v2\x18.orderflow.v1.DeadLetterR\x05entry\"K\n" +
	"\x18DiscardDeadLetterRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vreviewed_by\x18\x02 \x01(\tR\n" +
	"reviewedBy\"K\n" +
	"\x19DiscardDeadLetterResponse\x12.\n" +
	"\x05entry\x18\x01 \x01(\v2\x18.orderflow.v1.DeadLetterR\x05entry\"M\n" +
	"\x1aReprocessDeadLetterRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vreviewed_by\x18\x02 \x01(\tR\n" +
	"reviewedBy\"M\n" +
	"\x1bReprocessDeadLetterResponse\x12.\n" +
	"\x05entry\x18\x01 \x01(\v2\x18.orderflow.v1.DeadLetterR\x05entry\"T\n" +
	"\x1fReprocessDeadLettersBulkRequest\x12\x10\n" +
	"\x03ids\x18\x01 \x03(\tR\x03ids\x12\x1f\n" +
	"\vreviewed_by\x18\x02 \x01(\tR\n" +
	"reviewedBy\"\xcc\x01\n" +
	" ReprocessDeadLettersBulkResponse\x12O\n" +
	"\aresults\x18\x01 \x03(\v25.orderflow.v1.ReprocessDeadLettersBulkResponse.ResultR\aresults\x1aW\n" +
	"\x06Result\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\x12\x1c\n" +
	"\n" +
	"new_job_id\x18\x02 \x01(\tR\bnewJobId\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\":\n" +
	"\x18ExportDeadLettersRequest\x12\x1e\n" +
	"\n" +
	"resolution\x18\x01 \x01(\tR\n" +
	"resolution\"/\n" +
	"\x19ExportDeadLettersResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x12\n" +
	"\x10GetHealthRequest\"\xb2\x01\n" +
	"\x11GetHealthResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12'\n" +
	"\x0fbackend_healthy\x18\x02 \x01(\bR\x0ebackendHealthy\x12)\n" +
	"\x10database_healthy\x18\x03 \x01(\bR\x0fdatabaseHealthy\x121\n" +
	"\x06queues\x18\x04 \x03(\v2\x19.orderflow.v1.QueueStatusR\x06queues\"\x13\n" +
	"\x11ListQueuesRequest\"G\n" +
	"\x12ListQueuesResponse\x121\n" +
	"\x06queues\x18\x01 \x03(\v2\x19.orderflow.v1.QueueStatusR\x06queues\"\x91\x02\n" +
	"\bQueueJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05stage\x18\x02 \x01(\tR\x05stage\x12\x1f\n" +
	"\vworkflow_id\x18\x03 \x01(\tR\n" +
	"workflowId\x12\x1f\n" +
	"\vmerchant_id\x18\x04 \x01(\tR\n" +
	"merchantId\x12\x18\n" +
	"\apayload\x18\x05 \x01(\fR\apayload\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\tR\bpriority\x12#\n" +
	"\rattempts_made\x18\a \x01(\x05R\fattemptsMade\x12!\n" +
	"\fmax_attempts\x18\b \x01(\x05R\vmaxAttempts\x12\x1f\n" +
	"\venqueued_at\x18\t \x01(\tR\n" +
	"enqueuedAt\"S\n" +
	"\x0fListJobsRequest\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\x12\x14\n" +
	"\x05state\x18\x02 \x01(\tR\x05state\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\">\n" +
	"\x10ListJobsResponse\x12*\n" +
	"\x04jobs\x18\x01 \x03(\v2\x16.orderflow.v1.QueueJobR\x04jobs\")\n" +
	"\x11PauseQueueRequest\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\"\x14\n" +
	"\x12PauseQueueResponse\"*\n" +
	"\x12ResumeQueueRequest\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\"\x15\n" +
	"\x13ResumeQueueResponse\"W\n" +
	"\x11CleanQueueRequest\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\x12,\n" +
	"\x12older_than_seconds\x18\x02 \x01(\x03R\x10olderThanSeconds\".\n" +
	"\x12CleanQueueResponse\x12\x18\n" +
	"\aremoved\x18\x01 \x01(\x03R\aremoved\"B\n" +
	"\x13ForceRequeueRequest\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"\x16\n" +
	"\x14ForceRequeueResponse2\xb4\x04\n" +
	"\x10WorkflowsService\x12[\n" +
	"\x0eCreateWorkflow\x12#.orderflow.v1.CreateWorkflowRequest\x1a$.orderflow.v1.CreateWorkflowResponse\x12R\n" +
	"\vGetWorkflow\x12 .orderflow.v1.GetWorkflowRequest\x1a!.orderflow.v1.GetWorkflowResponse\x12X\n" +
	"\rListWorkflows\x12\".orderflow.v1.ListWorkflowsRequest\x1a#.orderflow.v1.ListWorkflowsResponse\x12[\n" +
	"\x0eCancelWorkflow\x12#.orderflow.v1.CancelWorkflowRequest\x1a$.orderflow.v1.CancelWorkflowResponse\x12X\n" +
	"\rRetryWorkflow\x12\".orderflow.v1.RetryWorkflowRequest\x1a#.orderflow.v1.RetryWorkflowResponse\x12^\n" +
	"\x0fApproveWorkflow\x12$.orderflow.v1.ApproveWorkflowRequest\x1a%.orderflow.v1.ApproveWorkflowResponse2\xea\x05\n" +
	"\x12DeadLettersService\x12^\n" +
	"\x0fListDeadLetters\x12$.orderflow.v1.ListDeadLettersRequest\x1a%.orderflow.v1.ListDeadLettersResponse\x12X\n" +
	"\rGetDeadLetter\x12\".orderflow.v1.GetDeadLetterRequest\x1a#.orderflow.v1.GetDeadLetterResponse\x12g\n" +
	"\x12AnnotateDeadLetter\x12'.orderflow.v1.AnnotateDeadLetterRequest\x1a(.orderflow.v1.AnnotateDeadLetterResponse\x12d\n" +
	"\x11DiscardDeadLetter\x12&.orderflow.v1.DiscardDeadLetterRequest\x1a'.orderflow.v1.DiscardDeadLetterResponse\x12j\n" +
	"\x13ReprocessDeadLetter\x12(.orderflow.v1.ReprocessDeadLetterRequest\x1a).orderflow.v1.ReprocessDeadLetterResponse\x12y\n" +
	"\x18ReprocessDeadLettersBulk\x12-.orderflow.v1.ReprocessDeadLettersBulkRequest\x1a..orderflow.v1.ReprocessDeadLettersBulkResponse\x12d\n" +
	"\x11ExportDeadLetters\x12&.orderflow.v1.ExportDeadLettersRequest\x1a'.orderflow.v1.ExportDeadLettersResponse2\xc5\x04\n" +
	"\fAdminService\x12L\n" +
	"\tGetHealth\x12\x1e.orderflow.v1.GetHealthRequest\x1a\x1f.orderflow.v1.GetHealthResponse\x12O\n" +
	"\n" +
	"ListQueues\x12\x1f.orderflow.v1.ListQueuesRequest\x1a .orderflow.v1.ListQueuesResponse\x12I\n" +
	"\bListJobs\x12\x1d.orderflow.v1.ListJobsRequest\x1a\x1e.orderflow.v1.ListJobsResponse\x12O\n" +
	"\n" +
	"PauseQueue\x12\x1f.orderflow.v1.PauseQueueRequest\x1a .orderflow.v1.PauseQueueResponse\x12R\n" +
	"\vResumeQueue\x12 .orderflow.v1.ResumeQueueRequest\x1a!.orderflow.v1.ResumeQueueResponse\x12O\n" +
	"\n" +
	"CleanQueue\x12\x1f.orderflow.v1.CleanQueueRequest\x1a .orderflow.v1.CleanQueueResponse\x12U\n" +
	"\fForceRequeue\x12!.orderflow.v1.ForceRequeueRequest\x1a\".orderflow.v1.ForceRequeueResponseBHZFgithub.com/joseph-ayodele/orderflow/gen/proto/orderflow/v1;orderflowpbb\x06proto3"

var (
	file_orderflow_v1_orderflow_proto_rawDescOnce sync.Once
	file_orderflow_v1_orderflow_proto_rawDescData []byte
)

func file_orderflow_v1_orderflow_proto_rawDescGZIP() []byte {
	file_orderflow_v1_orderflow_proto_rawDescOnce.Do(func() {
		file_orderflow_v1_orderflow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_orderflow_v1_orderflow_proto_rawDesc), len(file_orderflow_v1_orderflow_proto_rawDesc)))
	})
	return file_orderflow_v1_orderflow_proto_rawDescData
}

var file_orderflow_v1_orderflow_proto_msgTypes = make([]protoimpl.MessageInfo, 45)
var file_orderflow_v1_orderflow_proto_goTypes = []any{
	(*Workflow)(nil),                                // 0: orderflow.v1.Workflow
	(*DeadLetter)(nil),                              // 1: orderflow.v1.DeadLetter
	(*QueueStatus)(nil),                             // 2: orderflow.v1.QueueStatus
	(*CreateWorkflowRequest)(nil),                   // 3: orderflow.v1.CreateWorkflowRequest
	(*CreateWorkflowResponse)(nil),                  // 4: orderflow.v1.CreateWorkflowResponse
	(*GetWorkflowRequest)(nil),                      // 5: orderflow.v1.GetWorkflowRequest
	(*GetWorkflowResponse)(nil),                     // 6: orderflow.v1.GetWorkflowResponse
	(*ListWorkflowsRequest)(nil),                    // 7: orderflow.v1.ListWorkflowsRequest
	(*ListWorkflowsResponse)(nil),                   // 8: orderflow.v1.ListWorkflowsResponse
	(*CancelWorkflowRequest)(nil),                   // 9: orderflow.v1.CancelWorkflowRequest
	(*CancelWorkflowResponse)(nil),                  // 10: orderflow.v1.CancelWorkflowResponse
	(*RetryWorkflowRequest)(nil),                    // 11: orderflow.v1.RetryWorkflowRequest
	(*RetryWorkflowResponse)(nil),                   // 12: orderflow.v1.RetryWorkflowResponse
	(*ApproveWorkflowRequest)(nil),                  // 13: orderflow.v1.ApproveWorkflowRequest
	(*ApproveWorkflowResponse)(nil),                 // 14: orderflow.v1.ApproveWorkflowResponse
	(*ListDeadLettersRequest)(nil),                  // 15: orderflow.v1.ListDeadLettersRequest
	(*ListDeadLettersResponse)(nil),                 // 16: orderflow.v1.ListDeadLettersResponse
	(*GetDeadLetterRequest)(nil),                    // 17: orderflow.v1.GetDeadLetterRequest
	(*GetDeadLetterResponse)(nil),                   // 18: orderflow.v1.GetDeadLetterResponse
	(*AnnotateDeadLetterRequest)(nil),               // 19: orderflow.v1.AnnotateDeadLetterRequest
	(*AnnotateDeadLetterResponse)(nil),              // 20: orderflow.v1.AnnotateDeadLetterResponse
	(*DiscardDeadLetterRequest)(nil),                // 21: orderflow.v1.DiscardDeadLetterRequest
	(*DiscardDeadLetterResponse)(nil),               // 22: orderflow.v1.DiscardDeadLetterResponse
	(*ReprocessDeadLetterRequest)(nil),              // 23: orderflow.v1.ReprocessDeadLetterRequest
	(*ReprocessDeadLetterResponse)(nil),             // 24: orderflow.v1.ReprocessDeadLetterResponse
	(*ReprocessDeadLettersBulkRequest)(nil),         // 25: orderflow.v1.ReprocessDeadLettersBulkRequest
	(*ReprocessDeadLettersBulkResponse)(nil),        // 26: orderflow.v1.ReprocessDeadLettersBulkResponse
	(*ExportDeadLettersRequest)(nil),                // 27: orderflow.v1.ExportDeadLettersRequest
	(*ExportDeadLettersResponse)(nil),               // 28: orderflow.v1.ExportDeadLettersResponse
	(*GetHealthRequest)(nil),                        // 29: orderflow.v1.GetHealthRequest
	(*GetHealthResponse)(nil),                       // 30: orderflow.v1.GetHealthResponse
	(*ListQueuesRequest)(nil),                       // 31: orderflow.v1.ListQueuesRequest
	(*ListQueuesResponse)(nil),                      // 32: orderflow.v1.ListQueuesResponse
	(*QueueJob)(nil),                                // 33: orderflow.v1.QueueJob
	(*ListJobsRequest)(nil),                         // 34: orderflow.v1.ListJobsRequest
	(*ListJobsResponse)(nil),                        // 35: orderflow.v1.ListJobsResponse
	(*PauseQueueRequest)(nil),                       // 36: orderflow.v1.PauseQueueRequest
	(*PauseQueueResponse)(nil),                      // 37: orderflow.v1.PauseQueueResponse
	(*ResumeQueueRequest)(nil),                      // 38: orderflow.v1.ResumeQueueRequest
	(*ResumeQueueResponse)(nil),                     // 39: orderflow.v1.ResumeQueueResponse
	(*CleanQueueRequest)(nil),                       // 40: orderflow.v1.CleanQueueRequest
	(*CleanQueueResponse)(nil),                      // 41: orderflow.v1.CleanQueueResponse
	(*ForceRequeueRequest)(nil),                     // 42: orderflow.v1.ForceRequeueRequest
	(*ForceRequeueResponse)(nil),                    // 43: orderflow.v1.ForceRequeueResponse
	(*ReprocessDeadLettersBulkResponse_Result)(nil), // 44: orderflow.v1.ReprocessDeadLettersBulkResponse.Result
}
var file_orderflow_v1_orderflow_proto_depIdxs = []int32{
	0,  // 0: orderflow.v1.CreateWorkflowResponse.workflow:type_name -> orderflow.v1.Workflow
	0,  // 1: orderflow.v1.GetWorkflowResponse.workflow:type_name -> orderflow.v1.Workflow
	0,  // 2: orderflow.v1.ListWorkflowsResponse.workflows:type_name -> orderflow.v1.Workflow
	0,  // 3: orderflow.v1.CancelWorkflowResponse.workflow:type_name -> orderflow.v1.Workflow
	0,  // 4: orderflow.v1.RetryWorkflowResponse.workflow:type_name -> orderflow.v1.Workflow
	0,  // 5: orderflow.v1.ApproveWorkflowResponse.workflow:type_name -> orderflow.v1.Workflow
	1,  // 6: orderflow.v1.ListDeadLettersResponse.entries:type_name -> orderflow.v1.DeadLetter
	1,  // 7: orderflow.v1.GetDeadLetterResponse.entry:type_name -> orderflow.v1.DeadLetter
	1,  // 8: orderflow.v1.AnnotateDeadLetterResponse.entry:type_name -> orderflow.v1.DeadLetter
	1,  // 9: orderflow.v1.DiscardDeadLetterResponse.entry:type_name -> orderflow.v1.DeadLetter
	1,  // 10: orderflow.v1.ReprocessDeadLetterResponse.entry:type_name -> orderflow.v1.DeadLetter
	44, // 11: orderflow.v1.ReprocessDeadLettersBulkResponse.results:type_name -> orderflow.v1.ReprocessDeadLettersBulkResponse.Result
	2,  // 12: orderflow.v1.GetHealthResponse.queues:type_name -> orderflow.v1.QueueStatus
	2,  // 13: orderflow.v1.ListQueuesResponse.queues:type_name -> orderflow.v1.QueueStatus
	33, // 14: orderflow.v1.ListJobsResponse.jobs:type_name -> orderflow.v1.QueueJob
	3,  // 15: orderflow.v1.WorkflowsService.CreateWorkflow:input_type -> orderflow.v1.CreateWorkflowRequest
	5,  // 16: orderflow.v1.WorkflowsService.GetWorkflow:input_type -> orderflow.v1.GetWorkflowRequest
	7,  // 17: orderflow.v1.WorkflowsService.ListWorkflows:input_type -> orderflow.v1.ListWorkflowsRequest
	9,  // 18: orderflow.v1.WorkflowsService.CancelWorkflow:input_type -> orderflow.v1.CancelWorkflowRequest
	11, // 19: orderflow.v1.WorkflowsService.RetryWorkflow:input_type -> orderflow.v1.RetryWorkflowRequest
	13, // 20: orderflow.v1.WorkflowsService.ApproveWorkflow:input_type -> orderflow.v1.ApproveWorkflowRequest
	15, // 21: orderflow.v1.DeadLettersService.ListDeadLetters:input_type -> orderflow.v1.ListDeadLettersRequest
	17, // 22: orderflow.v1.DeadLettersService.GetDeadLetter:input_type -> orderflow.v1.GetDeadLetterRequest
	19, // 23: orderflow.v1.DeadLettersService.AnnotateDeadLetter:input_type -> orderflow.v1.AnnotateDeadLetterRequest
	21, // 24: orderflow.v1.DeadLettersService.DiscardDeadLetter:input_type -> orderflow.v1.DiscardDeadLetterRequest
	23, // 25: orderflow.v1.DeadLettersService.ReprocessDeadLetter:input_type -> orderflow.v1.ReprocessDeadLetterRequest
	25, // 26: orderflow.v1.DeadLettersService.ReprocessDeadLettersBulk:input_type -> orderflow.v1.ReprocessDeadLettersBulkRequest
	27, // 27: orderflow.v1.DeadLettersService.ExportDeadLetters:input_type -> orderflow.v1.ExportDeadLettersRequest
	29, // 28: orderflow.v1.AdminService.GetHealth:input_type -> orderflow.v1.GetHealthRequest
	31, // 29: orderflow.v1.AdminService.ListQueues:input_type -> orderflow.v1.ListQueuesRequest
	34, // 30: orderflow.v1.AdminService.ListJobs:input_type -> orderflow.v1.ListJobsRequest
	36, // 31: orderflow.v1.AdminService.PauseQueue:input_type -> orderflow.v1.PauseQueueRequest
	38, // 32: orderflow.v1.AdminService.ResumeQueue:input_type -> orderflow.v1.ResumeQueueRequest
	40, // 33: orderflow.v1.AdminService.CleanQueue:input_type -> orderflow.v1.CleanQueueRequest
	42, // 34: orderflow.v1.AdminService.ForceRequeue:input_type -> orderflow.v1.ForceRequeueRequest
	4,  // 35: orderflow.v1.WorkflowsService.CreateWorkflow:output_type -> orderflow.v1.CreateWorkflowResponse
	6,  // 36: orderflow.v1.WorkflowsService.GetWorkflow:output_type -> orderflow.v1.GetWorkflowResponse
	8,  // 37: orderflow.v1.WorkflowsService.ListWorkflows:output_type -> orderflow.v1.ListWorkflowsResponse
	10, // 38: orderflow.v1.WorkflowsService.CancelWorkflow:output_type -> orderflow.v1.CancelWorkflowResponse
	12, // 39: orderflow.v1.WorkflowsService.RetryWorkflow:output_type -> orderflow.v1.RetryWorkflowResponse
	14, // 40: orderflow.v1.WorkflowsService.ApproveWorkflow:output_type -> orderflow.v1.ApproveWorkflowResponse
	16, // 41: orderflow.v1.DeadLettersService.ListDeadLetters:output_type -> orderflow.v1.ListDeadLettersResponse
	18, // 42: orderflow.v1.DeadLettersService.GetDeadLetter:output_type -> orderflow.v1.GetDeadLetterResponse
	20, // 43: orderflow.v1.DeadLettersService.AnnotateDeadLetter:output_type -> orderflow.v1.AnnotateDeadLetterResponse
	22, // 44: orderflow.v1.DeadLettersService.DiscardDeadLetter:output_type -> orderflow.v1.DiscardDeadLetterResponse
	24, // 45: orderflow.v1.DeadLettersService.ReprocessDeadLetter:output_type -> orderflow.v1.ReprocessDeadLetterResponse
	26, // 46: orderflow.v1.DeadLettersService.ReprocessDeadLettersBulk:output_type -> orderflow.v1.ReprocessDeadLettersBulkResponse
	28, // 47: orderflow.v1.DeadLettersService.ExportDeadLetters:output_type -> orderflow.v1.ExportDeadLettersResponse
	30, // 48: orderflow.v1.AdminService.GetHealth:output_type -> orderflow.v1.GetHealthResponse
	32, // 49: orderflow.v1.AdminService.ListQueues:output_type -> orderflow.v1.ListQueuesResponse
	35, // 50: orderflow.v1.AdminService.ListJobs:output_type -> orderflow.v1.ListJobsResponse
	37, // 51: orderflow.v1.AdminService.PauseQueue:output_type -> orderflow.v1.PauseQueueResponse
	39, // 52: orderflow.v1.AdminService.ResumeQueue:output_type -> orderflow.v1.ResumeQueueResponse
	41, // 53: orderflow.v1.AdminService.CleanQueue:output_type -> orderflow.v1.CleanQueueResponse
	43, // 54: orderflow.v1.AdminService.ForceRequeue:output_type -> orderflow.v1.ForceRequeueResponse
	35, // [35:55] is the sub-list for method output_type
	15, // [15:35] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_orderflow_v1_orderflow_proto_init() }
func file_orderflow_v1_orderflow_proto_init() {
	if File_orderflow_v1_orderflow_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_orderflow_v1_orderflow_proto_rawDesc), len(file_orderflow_v1_orderflow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   45,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_orderflow_v1_orderflow_proto_goTypes,
		DependencyIndexes: file_orderflow_v1_orderflow_proto_depIdxs,
		MessageInfos:      file_orderflow_v1_orderflow_proto_msgTypes,
	}.Build()
	File_orderflow_v1_orderflow_proto = out.File
	file_orderflow_v1_orderflow_proto_goTypes = nil
	file_orderflow_v1_orderflow_proto_depIdxs = nil
}
