package grpcsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/cart/internal/cart"
	"github.com/vladislavdragonenkov/cart/internal/domain"
	cartv1 "github.com/vladislavdragonenkov/cart/proto/cart/v1"
)

// SessionHeader передаёт в metadata идентификатор сессии корзины.
const SessionHeader = "x-session-id"

// CartService реализует cart.v1.CartService поверх хранилища сессии.
// Каждый вызов открывает корзину для сессии из metadata и не держит состояния между вызовами.
type CartService struct {
	cartv1.UnimplementedCartServiceServer

	store  domain.SessionStore
	cookie string
	opts   cart.Options
	logger *log.Entry
}

var _ cartv1.CartServiceServer = (*CartService)(nil)

// NewCartService конструирует сервис. opts передаются в каждую открываемую корзину.
func NewCartService(store domain.SessionStore, cookie string, opts cart.Options, logger *log.Entry) *CartService {
	if logger == nil {
		logger = log.New().WithField("component", "cart-service")
	}
	if opts.Logger == nil {
		opts.Logger = logger
	}
	return &CartService{
		store:  store,
		cookie: cookie,
		opts:   opts,
		logger: logger,
	}
}

func (s *CartService) AddItem(ctx context.Context, req *cartv1.AddItemRequest) (*cartv1.AddItemResponse, error) {
	item, err := fromProtoItem(req.GetItem())
	if err != nil {
		return nil, s.toStatus(err, cartv1.CartService_AddItem_FullMethodName)
	}
	if err := s.mutate(ctx, func(c *cart.Cart) error { return c.Add(ctx, item) }); err != nil {
		return nil, err
	}
	return &cartv1.AddItemResponse{}, nil
}

func (s *CartService) UpdateItem(ctx context.Context, req *cartv1.UpdateItemRequest) (*cartv1.UpdateItemResponse, error) {
	item, err := fromProtoItem(req.GetItem())
	if err != nil {
		return nil, s.toStatus(err, cartv1.CartService_UpdateItem_FullMethodName)
	}
	if err := s.mutate(ctx, func(c *cart.Cart) error { return c.Update(ctx, item) }); err != nil {
		return nil, err
	}
	return &cartv1.UpdateItemResponse{}, nil
}

// RemoveItem без quantity удаляет позицию целиком.
func (s *CartService) RemoveItem(ctx context.Context, req *cartv1.RemoveItemRequest) (*cartv1.RemoveItemResponse, error) {
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	err := s.mutate(ctx, func(c *cart.Cart) error {
		if req.Quantity == nil {
			return c.Remove(ctx, id)
		}
		return c.RemoveQuantity(ctx, id, int(req.GetQuantity()))
	})
	if err != nil {
		return nil, err
	}
	return &cartv1.RemoveItemResponse{}, nil
}

func (s *CartService) AddCoupon(ctx context.Context, req *cartv1.AddCouponRequest) (*cartv1.AddCouponResponse, error) {
	coupon := fromProtoCoupon(req.GetCoupon())
	if err := s.mutate(ctx, func(c *cart.Cart) error { return c.AddCoupon(ctx, coupon) }); err != nil {
		return nil, err
	}
	return &cartv1.AddCouponResponse{}, nil
}

func (s *CartService) RemoveCoupon(ctx context.Context, req *cartv1.RemoveCouponRequest) (*cartv1.RemoveCouponResponse, error) {
	if err := s.mutate(ctx, func(c *cart.Cart) error { return c.RemoveCoupon(ctx, req.GetId()) }); err != nil {
		return nil, err
	}
	return &cartv1.RemoveCouponResponse{}, nil
}

func (s *CartService) ListCoupons(ctx context.Context, _ *cartv1.ListCouponsRequest) (*cartv1.ListCouponsResponse, error) {
	c, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	coupons, err := c.Coupons(ctx)
	if err != nil {
		return nil, s.toStatus(err, cartv1.CartService_ListCoupons_FullMethodName)
	}
	return &cartv1.ListCouponsResponse{Coupons: toProtoCoupons(coupons)}, nil
}

func (s *CartService) AddOtherCharge(ctx context.Context, req *cartv1.AddOtherChargeRequest) (*cartv1.AddOtherChargeResponse, error) {
	charge := fromProtoCharge(req.GetCharge())
	if err := s.mutate(ctx, func(c *cart.Cart) error { return c.AddOtherCharge(ctx, charge) }); err != nil {
		return nil, err
	}
	return &cartv1.AddOtherChargeResponse{}, nil
}

func (s *CartService) RemoveOtherCharge(ctx context.Context, req *cartv1.RemoveOtherChargeRequest) (*cartv1.RemoveOtherChargeResponse, error) {
	if err := s.mutate(ctx, func(c *cart.Cart) error { return c.RemoveOtherCharge(ctx, req.GetId()) }); err != nil {
		return nil, err
	}
	return &cartv1.RemoveOtherChargeResponse{}, nil
}

func (s *CartService) ListOtherCharges(ctx context.Context, _ *cartv1.ListOtherChargesRequest) (*cartv1.ListOtherChargesResponse, error) {
	c, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	charges, err := c.OtherCharges(ctx)
	if err != nil {
		return nil, s.toStatus(err, cartv1.CartService_ListOtherCharges_FullMethodName)
	}
	return &cartv1.ListOtherChargesResponse{Charges: toProtoCharges(charges)}, nil
}

func (s *CartService) Clear(ctx context.Context, _ *cartv1.ClearRequest) (*cartv1.ClearResponse, error) {
	if err := s.mutate(ctx, func(c *cart.Cart) error { return c.Clear(ctx) }); err != nil {
		return nil, err
	}
	return &cartv1.ClearResponse{}, nil
}

func (s *CartService) ListItems(ctx context.Context, _ *cartv1.ListItemsRequest) (*cartv1.ListItemsResponse, error) {
	c, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	items, err := c.All(ctx)
	if err != nil {
		return nil, s.toStatus(err, cartv1.CartService_ListItems_FullMethodName)
	}
	return &cartv1.ListItemsResponse{Items: toProtoItems(items)}, nil
}

func (s *CartService) CountItems(ctx context.Context, _ *cartv1.CountItemsRequest) (*cartv1.CountItemsResponse, error) {
	c, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	count, err := c.Count(ctx)
	if err != nil {
		return nil, s.toStatus(err, cartv1.CartService_CountItems_FullMethodName)
	}
	return &cartv1.CountItemsResponse{Count: int32(count)}, nil
}

// GetTotal возвращает итог; полная разбивка только при summary=true.
func (s *CartService) GetTotal(ctx context.Context, req *cartv1.GetTotalRequest) (*cartv1.GetTotalResponse, error) {
	c, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := c.Summary(ctx)
	if err != nil {
		return nil, s.toStatus(err, cartv1.CartService_GetTotal_FullMethodName)
	}

	resp := &cartv1.GetTotalResponse{TotalDue: summary.TotalDue}
	if req.GetSummary() {
		resp.Summary = toProtoSummary(summary)
	}
	return resp, nil
}

func (s *CartService) mutate(ctx context.Context, fn func(c *cart.Cart) error) error {
	c, err := s.open(ctx)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		method, _ := grpc.Method(ctx)
		return s.toStatus(err, method)
	}
	return nil
}

// open берёт id сессии из metadata; если клиент его не прислал, генерирует новый
// и возвращает в заголовке ответа.
func (s *CartService) open(ctx context.Context) (*cart.Cart, error) {
	sessionID := readSessionID(ctx)
	if sessionID == "" {
		sessionID = uuid.NewString()
		if err := grpc.SetHeader(ctx, metadata.Pairs(SessionHeader, sessionID)); err != nil {
			s.logger.WithError(err).Warn("failed to send session id header")
		}
	}

	c, err := cart.Open(ctx, s.store, cart.NamespaceFor(s.cookie, sessionID), s.opts)
	if err != nil {
		return nil, s.toStatus(err, "Open")
	}
	return c, nil
}

func readSessionID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(SessionHeader)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// toStatus переводит доменные ошибки в коды gRPC; инфраструктурные ошибки
// логируются и скрываются за Internal.
func (s *CartService) toStatus(err error, method string) error {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNamespaceRequired):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrSessionVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.WithError(err).WithField("method", method).Error("cart operation failed")
		return status.Error(codes.Internal, "cart storage failure")
	}
}
