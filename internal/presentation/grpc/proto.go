package grpc

// proto.go hand-writes what protoc-gen-go-grpc would emit for
// borrowerinsight.pricing.v1.PricingService. Messages are the application
// DTOs, carried by the JSON codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "borrowerinsight.pricing.v1.PricingService"

// Request and response messages.
type (
	PriceLoanRequest          = dto.PriceLoanRequest
	QuoteResponse             = dto.QuoteResponse
	ScheduleRequest           = dto.ScheduleRequest
	ScheduleResponse          = dto.ScheduleResponse
	AggregateScoreRequest     = dto.AggregateScoreRequest
	CompositeScoreResponse    = dto.CompositeScoreResponse
	ClassifyRiskRequest       = dto.ClassifyRiskRequest
	ClassifyRiskResponse      = dto.ClassifyRiskResponse
	MatchLendersRequest       = dto.MatchLendersRequest
	MatchLendersResponse      = dto.MatchLendersResponse
	SearchRequest             = dto.SearchRequest
	SearchLendersResponse     = dto.SearchLendersResponse
	SearchBorrowersResponse   = dto.SearchBorrowersResponse
	SubmitLoanRequest         = dto.SubmitLoanRequest
	CompleteSubmissionRequest = dto.CompleteSubmissionRequest
	GetSubmissionRequest      = dto.GetSubmissionRequest
	SubmissionResponse        = dto.SubmissionResponse
	ExpressInterestRequest    = dto.ExpressInterestRequest
	InterestResponse          = dto.InterestResponse
)

// PricingServiceServer is the server API for PricingService.
type PricingServiceServer interface {
	PriceLoan(context.Context, *PriceLoanRequest) (*QuoteResponse, error)
	GetSchedule(context.Context, *ScheduleRequest) (*ScheduleResponse, error)
	AggregateScore(context.Context, *AggregateScoreRequest) (*CompositeScoreResponse, error)
	ClassifyRisk(context.Context, *ClassifyRiskRequest) (*ClassifyRiskResponse, error)
	MatchLenders(context.Context, *MatchLendersRequest) (*MatchLendersResponse, error)
	SearchLenders(context.Context, *SearchRequest) (*SearchLendersResponse, error)
	SearchBorrowers(context.Context, *SearchRequest) (*SearchBorrowersResponse, error)
	SubmitLoan(context.Context, *SubmitLoanRequest) (*SubmissionResponse, error)
	CompleteSubmission(context.Context, *CompleteSubmissionRequest) (*SubmissionResponse, error)
	GetSubmission(context.Context, *GetSubmissionRequest) (*SubmissionResponse, error)
	ExpressInterest(context.Context, *ExpressInterestRequest) (*InterestResponse, error)
	mustEmbedUnimplementedPricingServiceServer()
}

// UnimplementedPricingServiceServer provides forward-compatible default implementations.
type UnimplementedPricingServiceServer struct{}

func (UnimplementedPricingServiceServer) PriceLoan(context.Context, *PriceLoanRequest) (*QuoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PriceLoan not implemented")
}
func (UnimplementedPricingServiceServer) GetSchedule(context.Context, *ScheduleRequest) (*ScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSchedule not implemented")
}
func (UnimplementedPricingServiceServer) AggregateScore(context.Context, *AggregateScoreRequest) (*CompositeScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AggregateScore not implemented")
}
func (UnimplementedPricingServiceServer) ClassifyRisk(context.Context, *ClassifyRiskRequest) (*ClassifyRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClassifyRisk not implemented")
}
func (UnimplementedPricingServiceServer) MatchLenders(context.Context, *MatchLendersRequest) (*MatchLendersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MatchLenders not implemented")
}
func (UnimplementedPricingServiceServer) SearchLenders(context.Context, *SearchRequest) (*SearchLendersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchLenders not implemented")
}
func (UnimplementedPricingServiceServer) SearchBorrowers(context.Context, *SearchRequest) (*SearchBorrowersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchBorrowers not implemented")
}
func (UnimplementedPricingServiceServer) SubmitLoan(context.Context, *SubmitLoanRequest) (*SubmissionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitLoan not implemented")
}
func (UnimplementedPricingServiceServer) CompleteSubmission(context.Context, *CompleteSubmissionRequest) (*SubmissionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteSubmission not implemented")
}
func (UnimplementedPricingServiceServer) GetSubmission(context.Context, *GetSubmissionRequest) (*SubmissionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSubmission not implemented")
}
func (UnimplementedPricingServiceServer) ExpressInterest(context.Context, *ExpressInterestRequest) (*InterestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExpressInterest not implemented")
}
func (UnimplementedPricingServiceServer) mustEmbedUnimplementedPricingServiceServer() {}

// RegisterPricingServiceServer registers the PricingServiceServer with the gRPC server.
func RegisterPricingServiceServer(s grpclib.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&pricingServiceDesc, srv)
}

var pricingServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "PriceLoan", Handler: unaryHandler("PriceLoan", PricingServiceServer.PriceLoan)},
		{MethodName: "GetSchedule", Handler: unaryHandler("GetSchedule", PricingServiceServer.GetSchedule)},
		{MethodName: "AggregateScore", Handler: unaryHandler("AggregateScore", PricingServiceServer.AggregateScore)},
		{MethodName: "ClassifyRisk", Handler: unaryHandler("ClassifyRisk", PricingServiceServer.ClassifyRisk)},
		{MethodName: "MatchLenders", Handler: unaryHandler("MatchLenders", PricingServiceServer.MatchLenders)},
		{MethodName: "SearchLenders", Handler: unaryHandler("SearchLenders", PricingServiceServer.SearchLenders)},
		{MethodName: "SearchBorrowers", Handler: unaryHandler("SearchBorrowers", PricingServiceServer.SearchBorrowers)},
		{MethodName: "SubmitLoan", Handler: unaryHandler("SubmitLoan", PricingServiceServer.SubmitLoan)},
		{MethodName: "CompleteSubmission", Handler: unaryHandler("CompleteSubmission", PricingServiceServer.CompleteSubmission)},
		{MethodName: "GetSubmission", Handler: unaryHandler("GetSubmission", PricingServiceServer.GetSubmission)},
		{MethodName: "ExpressInterest", Handler: unaryHandler("ExpressInterest", PricingServiceServer.ExpressInterest)},
	},
	Streams: []grpclib.StreamDesc{},
}

// unaryHandler builds the MethodHandler protoc would generate for one method.
func unaryHandler[Req, Resp any](
	method string,
	call func(PricingServiceServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PricingServiceServer), ctx, in)
		}
		info := &grpclib.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PricingServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ---------------------------------------------------------------------------
// Client
// ---------------------------------------------------------------------------

// PricingServiceClient is the client API for PricingService. Every call uses
// the JSON codec.
type PricingServiceClient struct {
	cc grpclib.ClientConnInterface
}

func NewPricingServiceClient(cc grpclib.ClientConnInterface) *PricingServiceClient {
	return &PricingServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpclib.ClientConnInterface, method string, in any, opts []grpclib.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PricingServiceClient) PriceLoan(ctx context.Context, in *PriceLoanRequest, opts ...grpclib.CallOption) (*QuoteResponse, error) {
	return invoke[QuoteResponse](ctx, c.cc, "PriceLoan", in, opts)
}

func (c *PricingServiceClient) GetSchedule(ctx context.Context, in *ScheduleRequest, opts ...grpclib.CallOption) (*ScheduleResponse, error) {
	return invoke[ScheduleResponse](ctx, c.cc, "GetSchedule", in, opts)
}

func (c *PricingServiceClient) AggregateScore(ctx context.Context, in *AggregateScoreRequest, opts ...grpclib.CallOption) (*CompositeScoreResponse, error) {
	return invoke[CompositeScoreResponse](ctx, c.cc, "AggregateScore", in, opts)
}

func (c *PricingServiceClient) ClassifyRisk(ctx context.Context, in *ClassifyRiskRequest, opts ...grpclib.CallOption) (*ClassifyRiskResponse, error) {
	return invoke[ClassifyRiskResponse](ctx, c.cc, "ClassifyRisk", in, opts)
}

func (c *PricingServiceClient) MatchLenders(ctx context.Context, in *MatchLendersRequest, opts ...grpclib.CallOption) (*MatchLendersResponse, error) {
	return invoke[MatchLendersResponse](ctx, c.cc, "MatchLenders", in, opts)
}

func (c *PricingServiceClient) SearchLenders(ctx context.Context, in *SearchRequest, opts ...grpclib.CallOption) (*SearchLendersResponse, error) {
	return invoke[SearchLendersResponse](ctx, c.cc, "SearchLenders", in, opts)
}

func (c *PricingServiceClient) SearchBorrowers(ctx context.Context, in *SearchRequest, opts ...grpclib.CallOption) (*SearchBorrowersResponse, error) {
	return invoke[SearchBorrowersResponse](ctx, c.cc, "SearchBorrowers", in, opts)
}

func (c *PricingServiceClient) SubmitLoan(ctx context.Context, in *SubmitLoanRequest, opts ...grpclib.CallOption) (*SubmissionResponse, error) {
	return invoke[SubmissionResponse](ctx, c.cc, "SubmitLoan", in, opts)
}

func (c *PricingServiceClient) CompleteSubmission(ctx context.Context, in *CompleteSubmissionRequest, opts ...grpclib.CallOption) (*SubmissionResponse, error) {
	return invoke[SubmissionResponse](ctx, c.cc, "CompleteSubmission", in, opts)
}

func (c *PricingServiceClient) GetSubmission(ctx context.Context, in *GetSubmissionRequest, opts ...grpclib.CallOption) (*SubmissionResponse, error) {
	return invoke[SubmissionResponse](ctx, c.cc, "GetSubmission", in, opts)
}

func (c *PricingServiceClient) ExpressInterest(ctx context.Context, in *ExpressInterestRequest, opts ...grpclib.CallOption) (*InterestResponse, error) {
	return invoke[InterestResponse](ctx, c.cc, "ExpressInterest", in, opts)
}
