package usecase

import (
	"app/internal/domain/model"
	"app/internal/pricing"
	repo "app/internal/repository"
	"context"
	"errors"
	"net/http"
)

// 商品スナップショットの取得だけを約束（実装はgateway）
type ProductFetcher interface {
	FetchProduct(ctx context.Context, productID string) (model.Product, bool, error)
}

// CartUsecase は /api/v1/cart の業務ロジック。
// 在庫チェックと同一商品の数量加算はここで面倒を見る。
type CartUsecase struct {
	sessionRepo repo.CartSessionRepository
	itemRepo    repo.CartItemRepository
	fetcher     ProductFetcher
	registry    *DiscountRegistry
	engine      *pricing.Engine
}

// DI
func NewCartUsecase(
	sessionRepo repo.CartSessionRepository,
	itemRepo repo.CartItemRepository,
	fetcher ProductFetcher,
	registry *DiscountRegistry,
	engine *pricing.Engine,
) *CartUsecase {
	return &CartUsecase{
		sessionRepo: sessionRepo,
		itemRepo:    itemRepo,
		fetcher:     fetcher,
		registry:    registry,
		engine:      engine,
	}
}

type CartItemResponse struct {
	ID          int64   `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	VendorID    string  `json:"vendor_id"`
	VendorName  string  `json:"vendor_name"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type CartResponse struct {
	SessionID    string             `json:"session_id"`
	Items        []CartItemResponse `json:"items"`
	Subtotal     float64            `json:"subtotal"`
	Discount     float64            `json:"discount"`
	Shipping     float64            `json:"shipping"`
	Total        float64            `json:"total"`
	DiscountCode string             `json:"discount_code,omitempty"`
}

type AddItemInput struct {
	ProductID string
	Quantity  int64
}

type ApplyDiscountResponse struct {
	Code           string  `json:"code"`
	DiscountAmount float64 `json:"discount_amount"`
}

type ClearCartResponse struct {
	RemovedCount int64 `json:"removed_count"`
}

// ResolveSession はsession_id未指定なら唯一のセッションを取得（無ければ作成）。
func (u *CartUsecase) ResolveSession(ctx context.Context, sessionID string) (string, error) {
	if sessionID != "" {
		return sessionID, nil
	}

	session, err := u.sessionRepo.GetOrCreate(ctx)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return session.ID, nil
}

// AddItem はカートに追加（同一商品は数量加算で1明細のまま）。
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, in AddItemInput) (CartResponse, error) {
	if in.ProductID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	//外部APIからスナップショット取得（未設定・上流障害も見つからない扱い）
	p, found, err := u.fetcher.FetchProduct(ctx, in.ProductID)
	if err != nil || !found {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}

	if p.Stock < in.Quantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "Insufficient stock")
	}

	existing, err := u.itemRepo.FindBySessionAndProduct(ctx, sessionID, in.ProductID)
	if err == nil {
		// 既存ありなら数量加算
		if err := u.itemRepo.IncrementQuantity(ctx, existing.ID, in.Quantity); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return u.GetCart(ctx, sessionID, "")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//無ければ新規明細
	item := model.CartItem{
		SessionID:   sessionID,
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Quantity:    in.Quantity,
		VendorID:    p.VendorID,
		VendorName:  p.VendorName,
		ImageURL:    p.ImageURL,
	}
	if _, err := u.itemRepo.Add(ctx, item); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetCart(ctx, sessionID, "")
}

// UpdateQuantity は数量変更（所有チェック＋在庫再チェック）。
// スナップショットが取れないときは在庫チェックを飛ばして更新する（Addとの非対称は仕様）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, itemID int64, qty int64) (CartResponse, error) {
	//所有チェックが先。存在しない明細は数量に関係なくNotFound。
	item, err := u.itemRepo.FindBySessionAndID(ctx, sessionID, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if qty < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "Quantity must be at least 1")
	}

	p, found, ferr := u.fetcher.FetchProduct(ctx, item.ProductID)
	if ferr == nil && found && p.Stock < qty {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "Insufficient stock")
	}

	if err := u.itemRepo.UpdateQuantity(ctx, itemID, qty); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "Item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetCart(ctx, sessionID, "")
}

// RemoveItem は明細削除（他セッションの明細はNotFound）。
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, itemID int64) (CartResponse, error) {
	if _, err := u.itemRepo.FindBySessionAndID(ctx, sessionID, itemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "Item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.itemRepo.DeleteByID(ctx, itemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "Item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetCart(ctx, sessionID, "")
}

// ClearCart はセッションの明細を全削除して件数を返す。
func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) (ClearCartResponse, error) {
	count, err := u.itemRepo.ClearSession(ctx, sessionID)
	if err != nil {
		return ClearCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ClearCartResponse{RemovedCount: count}, nil
}

// ApplyDiscount はコードを検証して割引額を返す。
// コードはセッションに保存しない。以降の参照では都度コードを渡す必要がある。
func (u *CartUsecase) ApplyDiscount(ctx context.Context, sessionID string, code string) (ApplyDiscountResponse, error) {
	if code == "" {
		return ApplyDiscountResponse{}, NewHTTPError(http.StatusBadRequest, "invalid code")
	}

	dc, err := u.registry.Lookup(ctx, code)
	if errors.Is(err, repo.ErrNotFound) {
		return ApplyDiscountResponse{}, NewHTTPError(http.StatusNotFound, "Invalid discount code")
	}
	if err != nil {
		return ApplyDiscountResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !dc.IsActive {
		return ApplyDiscountResponse{}, NewHTTPError(http.StatusNotFound, "Invalid discount code")
	}

	//拡張ルール（期限・回数・最低額）のチェック。小計はDB側の集計を使う。
	subtotals, err := u.itemRepo.VendorSubtotals(ctx, sessionID)
	if err != nil {
		return ApplyDiscountResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	var cartSubtotal float64
	for _, vs := range subtotals {
		cartSubtotal += vs.Subtotal
	}

	elig, err := u.registry.IsEligible(ctx, code, cartSubtotal)
	if err != nil {
		return ApplyDiscountResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !elig.Eligible {
		return ApplyDiscountResponse{}, NewHTTPError(http.StatusBadRequest, "discount not applicable: "+elig.Reason)
	}

	items, err := u.itemRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return ApplyDiscountResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totals, err := u.engine.ComputeTotals(ctx, items, code)
	if err != nil {
		return ApplyDiscountResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ApplyDiscountResponse{Code: dc.Code, DiscountAmount: totals.Discount}, nil
}

// RemoveDiscount はコードを保存していないので常に割引0を返すだけ。
func (u *CartUsecase) RemoveDiscount(ctx context.Context, sessionID string) ApplyDiscountResponse {
	return ApplyDiscountResponse{DiscountAmount: 0}
}

// GetCart は明細と合計を返す。割引を効かせたいときはcodeを毎回渡す。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string, code string) (CartResponse, error) {
	items, err := u.itemRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totals, err := u.engine.ComputeTotals(ctx, items, code)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		respItems = append(respItems, CartItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			VendorID:    it.VendorID,
			VendorName:  it.VendorName,
			ImageURL:    it.ImageURL,
		})
	}

	resp := CartResponse{
		SessionID: sessionID,
		Items:     respItems,
		Subtotal:  totals.Subtotal,
		Discount:  totals.Discount,
		Shipping:  totals.Shipping,
		Total:     totals.Total,
	}
	if code != "" && totals.Discount > 0 {
		resp.DiscountCode = code
	}
	return resp, nil
}
