package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMenuService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateMenuItemReq
		wantErr error
	}{
		{
			name: "valid item",
			req:  CreateMenuItemReq{Name: "Lasagna", Price: decimal.NewFromFloat(13.00), Category: "Mains"},
		},
		{
			name:    "empty name",
			req:     CreateMenuItemReq{Name: "  ", Price: decimal.NewFromFloat(13.00), Category: "Mains"},
			wantErr: ErrValidation,
		},
		{
			name:    "empty category",
			req:     CreateMenuItemReq{Name: "Lasagna", Price: decimal.NewFromFloat(13.00), Category: ""},
			wantErr: ErrValidation,
		},
		{
			name:    "zero price",
			req:     CreateMenuItemReq{Name: "Lasagna", Price: decimal.Zero, Category: "Mains"},
			wantErr: ErrValidation,
		},
		{
			name:    "negative price",
			req:     CreateMenuItemReq{Name: "Lasagna", Price: decimal.NewFromFloat(-1.00), Category: "Mains"},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			item, err := env.menu.Create(&tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() unexpected error = %v", err)
			}
			if item.ID == 0 {
				t.Error("Create() item has no id")
			}
		})
	}
}

func TestMenuService_List_OrderedByCategoryThenName(t *testing.T) {
	env := newTestEnv(t)

	items, err := env.menu.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("List() returned %d items, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.Category > cur.Category {
			t.Errorf("categories out of order: %q before %q", prev.Category, cur.Category)
		}
		if prev.Category == cur.Category && prev.Name > cur.Name {
			t.Errorf("names out of order in %q: %q before %q", cur.Category, prev.Name, cur.Name)
		}
	}
}
