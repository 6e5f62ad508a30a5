package services

import (
	"testing"

	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"
)

func TestCartTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []models.CartItem
		total string
		count int
	}{
		{"empty cart", nil, "0.00", 0},
		{
			"single item",
			[]models.CartItem{{Quantity: 2, Price: "10.50"}},
			"21.00", 2,
		},
		{
			"multiple items",
			[]models.CartItem{
				{Quantity: 1, Price: "5.00"},
				{Quantity: 3, Price: "2.25"},
			},
			"11.75", 4,
		},
		{
			"unparseable price still counts the quantity",
			[]models.CartItem{
				{Quantity: 2, Price: "abc"},
				{Quantity: 1, Price: "10.00"},
			},
			"10.00", 3,
		},
	}

	for _, test := range tests {
		total, count := cartTotals(test.items)
		if total != test.total {
			t.Errorf("%s: cartTotals total = %q, expected %q", test.name, total, test.total)
		}
		if count != test.count {
			t.Errorf("%s: cartTotals count = %d, expected %d", test.name, count, test.count)
		}
	}
}
