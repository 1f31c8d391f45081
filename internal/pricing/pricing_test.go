package pricing_test

import (
	"app/internal/domain/model"
	"app/internal/pricing"
	repo "app/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type DiscountSourceMock struct{ mock.Mock }

func (m *DiscountSourceMock) FindByCode(ctx context.Context, code string) (model.DiscountCode, error) {
	args := m.Called(ctx, code)
	dc, _ := args.Get(0).(model.DiscountCode)
	return dc, args.Error(1)
}

func item(price float64, qty int64, vendorID string) model.CartItem {
	return model.CartItem{Price: price, Quantity: qty, VendorID: vendorID}
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	e := pricing.NewEngine(new(DiscountSourceMock))

	totals, err := e.ComputeTotals(context.Background(), nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 0.0, totals.Total)
}

// 丸めは最後にだけかかる（0.1*3 + 0.2*2 = 0.70）
func TestComputeTotals_SubtotalRounding(t *testing.T) {
	e := pricing.NewEngine(new(DiscountSourceMock))

	items := []model.CartItem{
		item(0.1, 3, "v1"),
		item(0.2, 2, "v1"),
	}

	totals, err := e.ComputeTotals(context.Background(), items, "")
	assert.NoError(t, err)
	assert.Equal(t, 0.70, totals.Subtotal)
}

// ちょうど800は送料無料、799.99は送料100
func TestComputeTotals_ShippingThresholdInclusive(t *testing.T) {
	e := pricing.NewEngine(new(DiscountSourceMock))

	atThreshold := []model.CartItem{item(800.00, 1, "v1")}
	totals, err := e.ComputeTotals(context.Background(), atThreshold, "")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, totals.Shipping)

	belowThreshold := []model.CartItem{item(799.99, 1, "v1")}
	totals, err = e.ComputeTotals(context.Background(), belowThreshold, "")
	assert.NoError(t, err)
	assert.Equal(t, 100.0, totals.Shipping)
}

// ベンダーごとに独立して送料がかかる
func TestComputeTotals_MultiVendorShipping(t *testing.T) {
	e := pricing.NewEngine(new(DiscountSourceMock))

	items := []model.CartItem{
		item(850, 1, "v1"), // 800以上 → 無料
		item(750, 1, "v2"), // 800未満 → 100
	}

	totals, err := e.ComputeTotals(context.Background(), items, "")
	assert.NoError(t, err)
	assert.Equal(t, 100.0, totals.Shipping)
	assert.Equal(t, 1600.0, totals.Subtotal)
	assert.Equal(t, 1700.0, totals.Total)
}

// 同一ベンダーの明細は合算して閾値を判定する
func TestComputeTotals_SameVendorAggregates(t *testing.T) {
	e := pricing.NewEngine(new(DiscountSourceMock))

	items := []model.CartItem{
		item(400, 1, "v1"),
		item(400, 1, "v1"),
	}

	totals, err := e.ComputeTotals(context.Background(), items, "")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, totals.Shipping)
}

func TestComputeTotals_DiscountApplication(t *testing.T) {
	ds := new(DiscountSourceMock)
	ds.On("FindByCode", mock.Anything, "SAVE10").
		Return(model.DiscountCode{Code: "SAVE10", Percentage: 10, IsActive: true}, nil)

	e := pricing.NewEngine(ds)

	items := []model.CartItem{item(999.90, 1, "v1")}

	totals, err := e.ComputeTotals(context.Background(), items, "SAVE10")
	assert.NoError(t, err)
	assert.Equal(t, 999.90, totals.Subtotal)
	assert.Equal(t, 99.99, totals.Discount)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 899.91, totals.Total)
}

// 不明なコードはエラーにせず割引0
func TestComputeTotals_UnknownCodeYieldsZeroDiscount(t *testing.T) {
	ds := new(DiscountSourceMock)
	ds.On("FindByCode", mock.Anything, "NOPE").
		Return(model.DiscountCode{}, repo.ErrNotFound)

	e := pricing.NewEngine(ds)

	items := []model.CartItem{item(100, 1, "v1")}

	totals, err := e.ComputeTotals(context.Background(), items, "NOPE")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 200.0, totals.Total)
}

func TestComputeTotals_InactiveCodeYieldsZeroDiscount(t *testing.T) {
	ds := new(DiscountSourceMock)
	ds.On("FindByCode", mock.Anything, "OLD").
		Return(model.DiscountCode{Code: "OLD", Percentage: 50, IsActive: false}, nil)

	e := pricing.NewEngine(ds)

	items := []model.CartItem{item(1000, 1, "v1")}

	totals, err := e.ComputeTotals(context.Background(), items, "OLD")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, totals.Discount)
}

// 上限付きコードは割引を頭打ちにする
func TestComputeTotals_DiscountCap(t *testing.T) {
	cap := 50.0
	ds := new(DiscountSourceMock)
	ds.On("FindByCode", mock.Anything, "CAPPED").
		Return(model.DiscountCode{Code: "CAPPED", Percentage: 20, IsActive: true, MaxDiscountAmount: &cap}, nil)

	e := pricing.NewEngine(ds)

	items := []model.CartItem{item(1000, 1, "v1")}

	totals, err := e.ComputeTotals(context.Background(), items, "CAPPED")
	assert.NoError(t, err)
	assert.Equal(t, 50.0, totals.Discount)
	assert.Equal(t, 950.0, totals.Total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.70, pricing.Round2(0.7000000000000001))
	assert.Equal(t, 99.99, pricing.Round2(99.99000000000001))
	assert.Equal(t, 1.24, pricing.Round2(1.235000001))
}
