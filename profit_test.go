package fliplog

import "testing"

func TestItemProfit(t *testing.T) {
	tests := []struct {
		name      string
		item      Item
		allocated Money
		want      ProfitResult
	}{
		{
			name:      "no sale price yields explicit zeros",
			item:      Item{ID: "a", Status: ItemListed, ListingPrice: pUSD(40)},
			allocated: USD(10),
			want:      ProfitResult{},
		},
		{
			name:      "allocated cost",
			item:      Item{ID: "a", Status: ItemSold, SalePrice: pUSD(30)},
			allocated: USD(10),
			want:      ProfitResult{Revenue: USD(30), Cost: USD(10), NetProfit: USD(20), ROI: 200},
		},
		{
			name:      "override cost wins over allocation",
			item:      Item{ID: "a", Status: ItemSold, SalePrice: pUSD(30), OverrideCost: pUSD(5)},
			allocated: USD(10),
			want:      ProfitResult{Revenue: USD(30), Cost: USD(5), NetProfit: USD(25), ROI: 500},
		},
		{
			name: "zero cost positive sale is a 100 percent return",
			item: Item{ID: "a", Status: ItemSold, SalePrice: pUSD(30)},
			want: ProfitResult{Revenue: USD(30), Cost: NO(0), NetProfit: USD(30), ROI: 100},
		},
		{
			name: "zero cost zero sale is zero return",
			item: Item{ID: "a", Status: ItemSold, SalePrice: pUSD(0)},
			want: ProfitResult{Revenue: USD(0), Cost: NO(0), NetProfit: USD(0), ROI: 0},
		},
		{
			name:      "loss",
			item:      Item{ID: "a", Status: ItemSold, SalePrice: pUSD(5)},
			allocated: USD(10),
			want:      ProfitResult{Revenue: USD(5), Cost: USD(10), NetProfit: USD(-5), ROI: -50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ItemProfit(tt.item, tt.allocated)
			if !got.Revenue.Equal(tt.want.Revenue) ||
				!got.Cost.Equal(tt.want.Cost) ||
				!got.NetProfit.Equal(tt.want.NetProfit) ||
				!got.ROI.Equal(tt.want.ROI) {
				t.Errorf("ItemProfit() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestItemProfit_Idempotent(t *testing.T) {
	item := Item{ID: "a", Status: ItemSold, SalePrice: pUSD(30), OverrideCost: pUSD(12)}
	first := ItemProfit(item, USD(10))
	second := ItemProfit(item, USD(10))
	if !first.NetProfit.Equal(second.NetProfit) || !first.ROI.Equal(second.ROI) {
		t.Errorf("repeated calls diverge: %+v vs %+v", first, second)
	}
}

func TestItemProfits_UsesStrategy(t *testing.T) {
	lot := lotOf(100, 0)
	items := sellableItems(4)
	items[0].Status = ItemSold
	items[0].SalePrice = pUSD(40)

	results := ItemProfits(lot, items, nil) // nil selects the default strategy
	got := results[items[0].ID]
	if !got.Cost.Equal(USD(25)) {
		t.Errorf("cost = %s, want the even $25.00 share", got.Cost)
	}
	if !got.NetProfit.Equal(USD(15)) {
		t.Errorf("profit = %s, want $15.00", got.NetProfit)
	}
}
