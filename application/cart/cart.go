package cart

import (
	"context"

	"github.com/cwagoventures/cosmibeautii-backend/constant"
	"github.com/cwagoventures/cosmibeautii-backend/model"
	cartrepo "github.com/cwagoventures/cosmibeautii-backend/repository/cart"
	utilsContext "github.com/cwagoventures/cosmibeautii-backend/utils/context"
	"github.com/cwagoventures/cosmibeautii-backend/utils/errors"
	"github.com/cwagoventures/cosmibeautii-backend/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	Get(ctx context.Context) (*model.CartSnapshot, error)
	AddItem(ctx context.Context, req *model.AddCartItemRequest) (*model.CartSnapshot, error)
	RemoveItem(ctx context.Context, productID uint64) (*model.CartSnapshot, error)
	SetQuantity(ctx context.Context, productID uint64, quantity int) (*model.CartSnapshot, error)
	Clear(ctx context.Context) error
}

type cartAppImpl struct {
	cartRepo cartrepo.CartRepository
}

func NewCartApp(cartRepo cartrepo.CartRepository) CartApp {
	return &cartAppImpl{cartRepo: cartRepo}
}

func (s *cartAppImpl) Get(ctx context.Context) (*model.CartSnapshot, error) {
	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	items, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[Get] cart fetch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return snapshot(items), nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, req *model.AddCartItemRequest) (*model.CartSnapshot, error) {
	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	items, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[AddItem] cart fetch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Merge by product id so at most one line exists per product.
	merged := false
	for i := range items {
		if items[i].ProductID == req.ProductID {
			items[i].Quantity += req.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, model.CartItem{
			ProductID: req.ProductID,
			Name:      req.Name,
			UnitPrice: req.UnitPrice,
			Quantity:  req.Quantity,
			ImageRef:  req.ImageRef,
		})
	}

	if err := s.cartRepo.Save(ctx, sessionID, items); err != nil {
		logger.Error("[AddItem] cart save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return snapshot(items), nil
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, productID uint64) (*model.CartSnapshot, error) {
	// Removing an absent item is a no-op, not an error.
	return s.SetQuantity(ctx, productID, 0)
}

func (s *cartAppImpl) SetQuantity(ctx context.Context, productID uint64, quantity int) (*model.CartSnapshot, error) {
	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	items, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[SetQuantity] cart fetch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	next := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			next = append(next, item)
			continue
		}
		if quantity <= 0 {
			// Quantity at or below zero removes the line entirely.
			continue
		}
		item.Quantity = quantity
		next = append(next, item)
	}

	if err := s.cartRepo.Save(ctx, sessionID, next); err != nil {
		logger.Error("[SetQuantity] cart save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return snapshot(next), nil
}

func (s *cartAppImpl) Clear(ctx context.Context) error {
	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.cartRepo.Clear(ctx, sessionID); err != nil {
		logger.Error("[Clear] cart clear", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// snapshot recomputes the total on every read; it is never cached.
func snapshot(items []model.CartItem) *model.CartSnapshot {
	var total int64
	for _, item := range items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return &model.CartSnapshot{Items: items, Total: total}
}
