// Hand-maintained Go bindings for api/proto/payments.proto.
// Messages use the legacy struct-tag form so the gRPC proto codec can
// derive descriptors at runtime without checked-in generated descriptors.

package payments

import "fmt"

type CreatePaymentRequest struct {
	UserId      int64   `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Amount      float64 `protobuf:"fixed64,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Currency    string  `protobuf:"bytes,3,opt,name=currency,proto3" json:"currency,omitempty"`
	Description string  `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
}

func (m *CreatePaymentRequest) Reset()         { *m = CreatePaymentRequest{} }
func (m *CreatePaymentRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreatePaymentRequest) ProtoMessage()    {}

func (m *CreatePaymentRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *CreatePaymentRequest) GetAmount() float64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *CreatePaymentRequest) GetCurrency() string {
	if m != nil {
		return m.Currency
	}
	return ""
}

func (m *CreatePaymentRequest) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

type GetPaymentRequest struct {
	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetPaymentRequest) Reset()         { *m = GetPaymentRequest{} }
func (m *GetPaymentRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetPaymentRequest) ProtoMessage()    {}

func (m *GetPaymentRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

type Payment struct {
	Id          int64   `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId      int64   `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Amount      float64 `protobuf:"fixed64,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Currency    string  `protobuf:"bytes,4,opt,name=currency,proto3" json:"currency,omitempty"`
	Status      string  `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Description string  `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt   int64   `protobuf:"varint,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   int64   `protobuf:"varint,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *Payment) Reset()         { *m = Payment{} }
func (m *Payment) String() string { return fmt.Sprintf("%+v", *m) }
func (*Payment) ProtoMessage()    {}

func (m *Payment) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Payment) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *Payment) GetAmount() float64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *Payment) GetCurrency() string {
	if m != nil {
		return m.Currency
	}
	return ""
}

func (m *Payment) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *Payment) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *Payment) GetCreatedAt() int64 {
	if m != nil {
		return m.CreatedAt
	}
	return 0
}

func (m *Payment) GetUpdatedAt() int64 {
	if m != nil {
		return m.UpdatedAt
	}
	return 0
}
