// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: completion.proto

package proto

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

type Message_Role int32

const (
	Message_ROLE_UNSPECIFIED Message_Role = 0
	Message_ROLE_SYSTEM      Message_Role = 1
	Message_ROLE_USER        Message_Role = 2
	Message_ROLE_ASSISTANT   Message_Role = 3
)

// Enum value maps for Message_Role.
var (
	Message_Role_name = map[int32]string{
		0: "ROLE_UNSPECIFIED",
		1: "ROLE_SYSTEM",
		2: "ROLE_USER",
		3: "ROLE_ASSISTANT",
	}
	Message_Role_value = map[string]int32{
		"ROLE_UNSPECIFIED": 0,
		"ROLE_SYSTEM":      1,
		"ROLE_USER":        2,
		"ROLE_ASSISTANT":   3,
	}
)

func (x Message_Role) Enum() *Message_Role {
	p := new(Message_Role)
	*p = x
	return p
}

func (x Message_Role) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Message_Role) Descriptor() protoreflect.EnumDescriptor {
	return file_completion_proto_enumTypes[0].Descriptor()
}

func (Message_Role) Type() protoreflect.EnumType {
	return &file_completion_proto_enumTypes[0]
}

func (x Message_Role) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Message_Role.Descriptor instead.
func (Message_Role) EnumDescriptor() ([]byte, []int) {
	return file_completion_proto_rawDescGZIP(), []int{0, 0}
}

type Message struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          Message_Role           `protobuf:"varint,1,opt,name=role,proto3,enum=macaw.llm.v1.Message_Role" json:"role,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Message) Reset() {
	*x = Message{}
	mi := &file_completion_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Message) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Message) ProtoMessage() {}

func (x *Message) ProtoReflect() protoreflect.Message {
	mi := &file_completion_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Message.ProtoReflect.Descriptor instead.
func (*Message) Descriptor() ([]byte, []int) {
	return file_completion_proto_rawDescGZIP(), []int{0}
}

func (x *Message) GetRole() Message_Role {
	if x != nil {
		return x.Role
	}
	return Message_ROLE_UNSPECIFIED
}

func (x *Message) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type CompletionRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// plan_id correlates server-side logs with the owning workflow.
	PlanId        string     `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	Messages      []*Message `protobuf:"bytes,2,rep,name=messages,proto3" json:"messages,omitempty"`
	Model         string     `protobuf:"bytes,3,opt,name=model,proto3" json:"model,omitempty"`
	Temperature   *float32   `protobuf:"fixed32,4,opt,name=temperature,proto3,oneof" json:"temperature,omitempty"`
	MaxTokens     *int32     `protobuf:"varint,5,opt,name=max_tokens,json=maxTokens,proto3,oneof" json:"max_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompletionRequest) Reset() {
	*x = CompletionRequest{}
	mi := &file_completion_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompletionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompletionRequest) ProtoMessage() {}

func (x *CompletionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_completion_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompletionRequest.ProtoReflect.Descriptor instead.
func (*CompletionRequest) Descriptor() ([]byte, []int) {
	return file_completion_proto_rawDescGZIP(), []int{1}
}

func (x *CompletionRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *CompletionRequest) GetMessages() []*Message {
	if x != nil {
		return x.Messages
	}
	return nil
}

func (x *CompletionRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *CompletionRequest) GetTemperature() float32 {
	if x != nil && x.Temperature != nil {
		return *x.Temperature
	}
	return 0
}

func (x *CompletionRequest) GetMaxTokens() int32 {
	if x != nil && x.MaxTokens != nil {
		return *x.MaxTokens
	}
	return 0
}

type CompletionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompletionResponse) Reset() {
	*x = CompletionResponse{}
	mi := &file_completion_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompletionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompletionResponse) ProtoMessage() {}

func (x *CompletionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_completion_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompletionResponse.ProtoReflect.Descriptor instead.
func (*CompletionResponse) Descriptor() ([]byte, []int) {
	return file_completion_proto_rawDescGZIP(), []int{2}
}

func (x *CompletionResponse) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *CompletionResponse) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type DeltaData struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	IsFinal       bool                   `protobuf:"varint,2,opt,name=is_final,json=isFinal,proto3" json:"is_final,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeltaData) Reset() {
	*x = DeltaData{}
	mi := &file_completion_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeltaData) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeltaData) ProtoMessage() {}

func (x *DeltaData) ProtoReflect() protoreflect.Message {
	mi := &file_completion_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeltaData.ProtoReflect.Descriptor instead.
func (*DeltaData) Descriptor() ([]byte, []int) {
	return file_completion_proto_rawDescGZIP(), []int{3}
}

func (x *DeltaData) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *DeltaData) GetIsFinal() bool {
	if x != nil {
		return x.IsFinal
	}
	return false
}

type ErrorData struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ErrorData) Reset() {
	*x = ErrorData{}
	mi := &file_completion_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ErrorData) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ErrorData) ProtoMessage() {}

func (x *ErrorData) ProtoReflect() protoreflect.Message {
	mi := &file_completion_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ErrorData.ProtoReflect.Descriptor instead.
func (*ErrorData) Descriptor() ([]byte, []int) {
	return file_completion_proto_rawDescGZIP(), []int{4}
}

func (x *ErrorData) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type CompletionChunk struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to ChunkType:
	//
	//	*CompletionChunk_Delta
	//	*CompletionChunk_Error
	ChunkType     isCompletionChunk_ChunkType `protobuf_oneof:"chunk_type"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompletionChunk) Reset() {
	*x = CompletionChunk{}
	mi := &file_completion_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompletionChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompletionChunk) ProtoMessage() {}

func (x *CompletionChunk) ProtoReflect() protoreflect.Message {
	mi := &file_completion_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompletionChunk.ProtoReflect.Descriptor instead.
func (*CompletionChunk) Descriptor() ([]byte, []int) {
	return file_completion_proto_rawDescGZIP(), []int{5}
}

func (x *CompletionChunk) GetChunkType() isCompletionChunk_ChunkType {
	if x != nil {
		return x.ChunkType
	}
	return nil
}

func (x *CompletionChunk) GetDelta() *DeltaData {
	if x != nil {
		if x, ok := x.ChunkType.(*CompletionChunk_Delta); ok {
			return x.Delta
		}
	}
	return nil
}

func (x *CompletionChunk) GetError() *ErrorData {
	if x != nil {
		if x, ok := x.ChunkType.(*CompletionChunk_Error); ok {
			return x.Error
		}
	}
	return nil
}

type isCompletionChunk_ChunkType interface {
	isCompletionChunk_ChunkType()
}

type CompletionChunk_Delta struct {
	Delta *DeltaData `protobuf:"bytes,1,opt,name=delta,proto3,oneof"`
}

type CompletionChunk_Error struct {
	Error *ErrorData `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*CompletionChunk_Delta) isCompletionChunk_ChunkType() {}

func (*CompletionChunk_Error) isCompletionChunk_ChunkType() {}

var File_completion_proto protoreflect.FileDescriptor

const file_completion_proto_rawDesc = "" +
	"\n" +
	"\x10completion.proto\x12\fmacaw.llm.v1\"\xa5\x01\n" +
	"\aMessage\x12.\n" +
	"\x04role\x18\x01 \x01(\x0e2\x1a.macaw.llm.v1.Message.RoleR\x04role\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"P\n" +
	"\x04Role\x12\x14\n" +
	"\x10ROLE_UNSPECIFIED\x10\x00\x12\x0f\n" +
	"\vROLE_SYSTEM\x10\x01\x12\r\n" +
	"\tROLE_USER\x10\x02\x12\x12\n" +
	"\x0eROLE_ASSISTANT\x10\x03\"\xdf\x01\n" +
	"\x11CompletionRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\x121\n" +
	"\bmessages\x18\x02 \x03(\v2\x15.macaw.llm.v1.MessageR\bmessages\x12\x14\n" +
	"\x05model\x18\x03 \x01(\tR\x05model\x12%\n" +
	"\vtemperature\x18\x04 \x01(\x02H\x00R\vtemperature\x88\x01\x01\x12\"\n" +
	"\n" +
	"max_tokens\x18\x05 \x01(\x05H\x01R\tmaxTokens\x88\x01\x01B\x0e\n" +
	"\f_temperatureB\r\n" +
	"\v_max_tokens\"D\n" +
	"\x12CompletionResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\"@\n" +
	"\tDeltaData\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\x12\x19\n" +
	"\bis_final\x18\x02 \x01(\bR\aisFinal\"%\n" +
	"\tErrorData\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\"\x81\x01\n" +
	"\x0fCompletionChunk\x12/\n" +
	"\x05delta\x18\x01 \x01(\v2\x17.macaw.llm.v1.DeltaDataH\x00R\x05delta\x12/\n" +
	"\x05error\x18\x02 \x01(\v2\x17.macaw.llm.v1.ErrorDataH\x00R\x05errorB\f\n" +
	"\n" +
	"chunk_type2\xb6\x01\n" +
	"\x11CompletionService\x12M\n" +
	"\bComplete\x12\x1f.macaw.llm.v1.CompletionRequest\x1a .macaw.llm.v1.CompletionResponse\x12R\n" +
	"\x0eCompleteStream\x12\x1f.macaw.llm.v1.CompletionRequest\x1a\x1d.macaw.llm.v1.CompletionChunk0\x01B!Z\x1fgithub.com/finovant/macaw/protob\x06proto3"

var (
	file_completion_proto_rawDescOnce sync.Once
	file_completion_proto_rawDescData []byte
)

func file_completion_proto_rawDescGZIP() []byte {
	file_completion_proto_rawDescOnce.Do(func() {
		file_completion_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_completion_proto_rawDesc), len(file_completion_proto_rawDesc)))
	})
	return file_completion_proto_rawDescData
}

var file_completion_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_completion_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_completion_proto_goTypes = []any{
	(Message_Role)(0),          // 0: macaw.llm.v1.Message.Role
	(*Message)(nil),            // 1: macaw.llm.v1.Message
	(*CompletionRequest)(nil),  // 2: macaw.llm.v1.CompletionRequest
	(*CompletionResponse)(nil), // 3: macaw.llm.v1.CompletionResponse
	(*DeltaData)(nil),          // 4: macaw.llm.v1.DeltaData
	(*ErrorData)(nil),          // 5: macaw.llm.v1.ErrorData
	(*CompletionChunk)(nil),    // 6: macaw.llm.v1.CompletionChunk
}
var file_completion_proto_depIdxs = []int32{
	0, // 0: macaw.llm.v1.Message.role:type_name -> macaw.llm.v1.Message.Role
	1, // 1: macaw.llm.v1.CompletionRequest.messages:type_name -> macaw.llm.v1.Message
	4, // 2: macaw.llm.v1.CompletionChunk.delta:type_name -> macaw.llm.v1.DeltaData
	5, // 3: macaw.llm.v1.CompletionChunk.error:type_name -> macaw.llm.v1.ErrorData
	2, // 4: macaw.llm.v1.CompletionService.Complete:input_type -> macaw.llm.v1.CompletionRequest
	2, // 5: macaw.llm.v1.CompletionService.CompleteStream:input_type -> macaw.llm.v1.CompletionRequest
	3, // 6: macaw.llm.v1.CompletionService.Complete:output_type -> macaw.llm.v1.CompletionResponse
	6, // 7: macaw.llm.v1.CompletionService.CompleteStream:output_type -> macaw.llm.v1.CompletionChunk
	6, // [6:8] is the sub-list for method output_type
	4, // [4:6] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_completion_proto_init() }
func file_completion_proto_init() {
	if File_completion_proto != nil {
		return
	}
	file_completion_proto_msgTypes[1].OneofWrappers = []any{}
	file_completion_proto_msgTypes[5].OneofWrappers = []any{
		(*CompletionChunk_Delta)(nil),
		(*CompletionChunk_Error)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_completion_proto_rawDesc), len(file_completion_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_completion_proto_goTypes,
		DependencyIndexes: file_completion_proto_depIdxs,
		EnumInfos:         file_completion_proto_enumTypes,
		MessageInfos:      file_completion_proto_msgTypes,
	}.Build()
	File_completion_proto = out.File
	file_completion_proto_goTypes = nil
	file_completion_proto_depIdxs = nil
}
