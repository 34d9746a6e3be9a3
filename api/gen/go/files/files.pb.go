// Hand-maintained Go bindings for api/proto/files.proto.
// Messages use the legacy struct-tag form so the gRPC proto codec can
// derive descriptors at runtime without checked-in generated descriptors.

package files

import "fmt"

type GetFileRequest struct {
	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetFileRequest) Reset()         { *m = GetFileRequest{} }
func (m *GetFileRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetFileRequest) ProtoMessage()    {}

func (m *GetFileRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

type File struct {
	Id        int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename  string `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Size      int64  `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
	UserId    int64  `protobuf:"varint,4,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	MimeType  string `protobuf:"bytes,5,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	CreatedAt int64  `protobuf:"varint,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Path      string `protobuf:"bytes,7,opt,name=path,proto3" json:"path,omitempty"`
}

func (m *File) Reset()         { *m = File{} }
func (m *File) String() string { return fmt.Sprintf("%+v", *m) }
func (*File) ProtoMessage()    {}

func (m *File) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *File) GetFilename() string {
	if m != nil {
		return m.Filename
	}
	return ""
}

func (m *File) GetSize() int64 {
	if m != nil {
		return m.Size
	}
	return 0
}

func (m *File) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *File) GetMimeType() string {
	if m != nil {
		return m.MimeType
	}
	return ""
}

func (m *File) GetCreatedAt() int64 {
	if m != nil {
		return m.CreatedAt
	}
	return 0
}

func (m *File) GetPath() string {
	if m != nil {
		return m.Path
	}
	return ""
}
