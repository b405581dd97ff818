package grpc

// proto.go defines the gRPC server interface derived from asante/backoffice/v1/backoffice.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/asantefin/asante/api/gen/go/asante/backoffice/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BackofficeServiceServer is the server API for BackofficeService.
// It mirrors the proto-generated interface from asante.backoffice.v1.BackofficeService.
type BackofficeServiceServer interface {
	RegisterClient(context.Context, *RegisterClientRequest) (*RegisterClientResponse, error)
	ActivateClient(context.Context, *ActivateClientRequest) (*ActivateClientResponse, error)
	SubmitLoanApplication(context.Context, *SubmitLoanApplicationRequest) (*SubmitLoanApplicationResponse, error)
	ReviewLoanApplication(context.Context, *ReviewLoanApplicationRequest) (*ReviewLoanApplicationResponse, error)
	DisburseLoan(context.Context, *DisburseLoanRequest) (*DisburseLoanResponse, error)
	PreviewSchedule(context.Context, *PreviewScheduleRequest) (*PreviewScheduleResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	RecordRepayment(context.Context, *RecordRepaymentRequest) (*RecordRepaymentResponse, error)
	SettleLoanEarly(context.Context, *SettleLoanEarlyRequest) (*SettleLoanEarlyResponse, error)
	WriteOffLoan(context.Context, *WriteOffLoanRequest) (*WriteOffLoanResponse, error)
	OpenSavingsAccount(context.Context, *OpenSavingsAccountRequest) (*OpenSavingsAccountResponse, error)
	DepositSavings(context.Context, *DepositSavingsRequest) (*DepositSavingsResponse, error)
	WithdrawSavings(context.Context, *WithdrawSavingsRequest) (*WithdrawSavingsResponse, error)
	AccrueSavingsInterest(context.Context, *AccrueSavingsInterestRequest) (*AccrueSavingsInterestResponse, error)
	mustEmbedUnimplementedBackofficeServiceServer()
}

// UnimplementedBackofficeServiceServer provides forward-compatible default implementations.
type UnimplementedBackofficeServiceServer struct{}

func (UnimplementedBackofficeServiceServer) RegisterClient(context.Context, *RegisterClientRequest) (*RegisterClientResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterClient not implemented")
}
func (UnimplementedBackofficeServiceServer) ActivateClient(context.Context, *ActivateClientRequest) (*ActivateClientResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ActivateClient not implemented")
}
func (UnimplementedBackofficeServiceServer) SubmitLoanApplication(context.Context, *SubmitLoanApplicationRequest) (*SubmitLoanApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitLoanApplication not implemented")
}
func (UnimplementedBackofficeServiceServer) ReviewLoanApplication(context.Context, *ReviewLoanApplicationRequest) (*ReviewLoanApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewLoanApplication not implemented")
}
func (UnimplementedBackofficeServiceServer) DisburseLoan(context.Context, *DisburseLoanRequest) (*DisburseLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DisburseLoan not implemented")
}
func (UnimplementedBackofficeServiceServer) PreviewSchedule(context.Context, *PreviewScheduleRequest) (*PreviewScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewSchedule not implemented")
}
func (UnimplementedBackofficeServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedBackofficeServiceServer) RecordRepayment(context.Context, *RecordRepaymentRequest) (*RecordRepaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordRepayment not implemented")
}
func (UnimplementedBackofficeServiceServer) SettleLoanEarly(context.Context, *SettleLoanEarlyRequest) (*SettleLoanEarlyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SettleLoanEarly not implemented")
}
func (UnimplementedBackofficeServiceServer) WriteOffLoan(context.Context, *WriteOffLoanRequest) (*WriteOffLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method WriteOffLoan not implemented")
}
func (UnimplementedBackofficeServiceServer) OpenSavingsAccount(context.Context, *OpenSavingsAccountRequest) (*OpenSavingsAccountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenSavingsAccount not implemented")
}
func (UnimplementedBackofficeServiceServer) DepositSavings(context.Context, *DepositSavingsRequest) (*DepositSavingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DepositSavings not implemented")
}
func (UnimplementedBackofficeServiceServer) WithdrawSavings(context.Context, *WithdrawSavingsRequest) (*WithdrawSavingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method WithdrawSavings not implemented")
}
func (UnimplementedBackofficeServiceServer) AccrueSavingsInterest(context.Context, *AccrueSavingsInterestRequest) (*AccrueSavingsInterestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AccrueSavingsInterest not implemented")
}
func (UnimplementedBackofficeServiceServer) mustEmbedUnimplementedBackofficeServiceServer() {}

// RegisterBackofficeServiceServer registers the BackofficeServiceServer with the gRPC server.
func RegisterBackofficeServiceServer(s *grpclib.Server, srv BackofficeServiceServer) {
	s.RegisterService(&_BackofficeService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _BackofficeService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "asante.backoffice.v1.BackofficeService",
	HandlerType: (*BackofficeServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RegisterClient", Handler: _BackofficeService_RegisterClient_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "ActivateClient", Handler: _BackofficeService_ActivateClient_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "SubmitLoanApplication", Handler: _BackofficeService_SubmitLoanApplication_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ReviewLoanApplication", Handler: _BackofficeService_ReviewLoanApplication_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "DisburseLoan", Handler: _BackofficeService_DisburseLoan_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "PreviewSchedule", Handler: _BackofficeService_PreviewSchedule_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _BackofficeService_GetLoan_Handler},                             //nolint:revive // gRPC handler registration
		{MethodName: "RecordRepayment", Handler: _BackofficeService_RecordRepayment_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "SettleLoanEarly", Handler: _BackofficeService_SettleLoanEarly_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "WriteOffLoan", Handler: _BackofficeService_WriteOffLoan_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "OpenSavingsAccount", Handler: _BackofficeService_OpenSavingsAccount_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "DepositSavings", Handler: _BackofficeService_DepositSavings_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "WithdrawSavings", Handler: _BackofficeService_WithdrawSavings_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "AccrueSavingsInterest", Handler: _BackofficeService_AccrueSavingsInterest_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_RegisterClient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).RegisterClient(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/RegisterClient",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).RegisterClient(ctx, req.(*RegisterClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_ActivateClient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ActivateClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).ActivateClient(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/ActivateClient",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).ActivateClient(ctx, req.(*ActivateClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_SubmitLoanApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitLoanApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).SubmitLoanApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/SubmitLoanApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).SubmitLoanApplication(ctx, req.(*SubmitLoanApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_ReviewLoanApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewLoanApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).ReviewLoanApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/ReviewLoanApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).ReviewLoanApplication(ctx, req.(*ReviewLoanApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_DisburseLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisburseLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).DisburseLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/DisburseLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).DisburseLoan(ctx, req.(*DisburseLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_PreviewSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).PreviewSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/PreviewSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).PreviewSchedule(ctx, req.(*PreviewScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_RecordRepayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordRepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).RecordRepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/RecordRepayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).RecordRepayment(ctx, req.(*RecordRepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_SettleLoanEarly_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SettleLoanEarlyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).SettleLoanEarly(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/SettleLoanEarly",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).SettleLoanEarly(ctx, req.(*SettleLoanEarlyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_WriteOffLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(WriteOffLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).WriteOffLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/WriteOffLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).WriteOffLoan(ctx, req.(*WriteOffLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_OpenSavingsAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenSavingsAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).OpenSavingsAccount(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/OpenSavingsAccount",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).OpenSavingsAccount(ctx, req.(*OpenSavingsAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_DepositSavings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositSavingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).DepositSavings(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/DepositSavings",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).DepositSavings(ctx, req.(*DepositSavingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_WithdrawSavings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawSavingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).WithdrawSavings(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/WithdrawSavings",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).WithdrawSavings(ctx, req.(*WithdrawSavingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _BackofficeService_AccrueSavingsInterest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AccrueSavingsInterestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackofficeServiceServer).AccrueSavingsInterest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/asante.backoffice.v1.BackofficeService/AccrueSavingsInterest",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackofficeServiceServer).AccrueSavingsInterest(ctx, req.(*AccrueSavingsInterestRequest))
	}
	return interceptor(ctx, in, info, handler)
}
