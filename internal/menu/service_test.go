package menu_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/cafedelight/menu-backend/internal/domain"
	"github.com/cafedelight/menu-backend/internal/events"
	"github.com/cafedelight/menu-backend/internal/menu"
)

// ---------- Mock repo ----------

type mockMenuRepo struct {
	items     map[string]*domain.MenuItem
	insertErr error
}

func newMockMenuRepo() *mockMenuRepo {
	return &mockMenuRepo{items: make(map[string]*domain.MenuItem)}
}

func (m *mockMenuRepo) Insert(_ context.Context, item *domain.MenuItem) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	cc := *item
	m.items[item.ID] = &cc
	return nil
}

func (m *mockMenuRepo) BulkInsert(ctx context.Context, items []domain.MenuItem) error {
	for i := range items {
		if err := m.Insert(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockMenuRepo) GetByID(_ context.Context, id string) (*domain.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cc := *item
	return &cc, nil
}

func (m *mockMenuRepo) ListAll(_ context.Context) ([]domain.MenuItem, error) {
	return m.list(func(*domain.MenuItem) bool { return true }), nil
}

func (m *mockMenuRepo) ListAvailable(_ context.Context) ([]domain.MenuItem, error) {
	return m.list(func(i *domain.MenuItem) bool { return i.Available }), nil
}

func (m *mockMenuRepo) ListSpecials(_ context.Context) ([]domain.MenuItem, error) {
	return m.list(func(i *domain.MenuItem) bool { return i.IsSpecial && i.Available }), nil
}

func (m *mockMenuRepo) list(keep func(*domain.MenuItem) bool) []domain.MenuItem {
	out := []domain.MenuItem{}
	for _, item := range m.items {
		if keep(item) {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Category != out[b].Category {
			return out[a].Category < out[b].Category
		}
		return out[a].Name < out[b].Name
	})
	return out
}

func (m *mockMenuRepo) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	for _, item := range m.items {
		seen[item.Category] = true
	}
	out := []string{}
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (m *mockMenuRepo) Update(_ context.Context, id string, patch *domain.UpdateMenuItemRequest) (*domain.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.IsSpecial != nil {
		item.IsSpecial = *patch.IsSpecial
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}
	cc := *item
	return &cc, nil
}

func (m *mockMenuRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *mockMenuRepo) ToggleSpecial(_ context.Context, id string) (*domain.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	item.IsSpecial = !item.IsSpecial
	cc := *item
	return &cc, nil
}

func (m *mockMenuRepo) ToggleAvailable(_ context.Context, id string) (*domain.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	item.Available = !item.Available
	cc := *item
	return &cc, nil
}

func (m *mockMenuRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func newService(repo *mockMenuRepo) *menu.Service {
	return menu.NewService(repo, events.NoopPublisher{})
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

// ---------- Tests ----------

func TestCreate_AssignsDefaults(t *testing.T) {
	repo := newMockMenuRepo()
	svc := newService(repo)

	item, err := svc.Create(context.Background(), &domain.CreateMenuItemRequest{
		Category: "Lassi",
		Name:     "Test",
		Price:    50,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if item.ID == "" {
		t.Fatal("Expected a generated id")
	}
	if item.CreatedAt.IsZero() {
		t.Fatal("Expected created_at to be set")
	}
	if !item.Available || item.IsSpecial {
		t.Fatalf("Expected defaults available=true special=false, got available=%v special=%v",
			item.Available, item.IsSpecial)
	}
	if repo.items[item.ID] == nil {
		t.Fatal("Item should be persisted")
	}
}

func TestCreate_InvalidInput_PersistsNothing(t *testing.T) {
	tests := []struct {
		name string
		req  domain.CreateMenuItemRequest
	}{
		{"empty name", domain.CreateMenuItemRequest{Category: "Lassi", Price: 10}},
		{"whitespace name", domain.CreateMenuItemRequest{Category: "Lassi", Name: "   ", Price: 10}},
		{"empty category", domain.CreateMenuItemRequest{Name: "Test", Price: 10}},
		{"negative price", domain.CreateMenuItemRequest{Category: "Lassi", Name: "Test", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockMenuRepo()
			svc := newService(repo)

			_, err := svc.Create(context.Background(), &tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Expected ErrValidation, got %v", err)
			}
			if len(repo.items) != 0 {
				t.Fatal("Nothing should be persisted on validation failure")
			}
		})
	}
}

func TestUpdate_UnknownID_NotFound(t *testing.T) {
	svc := newService(newMockMenuRepo())

	_, err := svc.Update(context.Background(), "missing", &domain.UpdateMenuItemRequest{
		Price: f64Ptr(10),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_PartialPatch_KeepsOtherFields(t *testing.T) {
	repo := newMockMenuRepo()
	svc := newService(repo)

	item, err := svc.Create(context.Background(), &domain.CreateMenuItemRequest{
		Category:    "Lassi",
		Name:        "Sweet Lassi",
		Price:       40,
		Description: "Classic",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), item.ID, &domain.UpdateMenuItemRequest{
		Price: f64Ptr(45),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Price != 45 {
		t.Fatalf("Expected price 45, got %v", updated.Price)
	}
	if updated.Name != "Sweet Lassi" || updated.Category != "Lassi" || updated.Description != "Classic" {
		t.Fatalf("Unpatched fields changed: %+v", updated)
	}
}

func TestUpdate_InvalidValues_Rejected(t *testing.T) {
	repo := newMockMenuRepo()
	svc := newService(repo)

	item, _ := svc.Create(context.Background(), &domain.CreateMenuItemRequest{
		Category: "Lassi", Name: "Sweet Lassi", Price: 40,
	})

	tests := []struct {
		name  string
		patch domain.UpdateMenuItemRequest
	}{
		{"empty name", domain.UpdateMenuItemRequest{Name: strPtr("")}},
		{"empty category", domain.UpdateMenuItemRequest{Category: strPtr("  ")}},
		{"negative price", domain.UpdateMenuItemRequest{Price: f64Ptr(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), item.ID, &tt.patch)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Expected ErrValidation, got %v", err)
			}
		})
	}

	unchanged, _ := repo.GetByID(context.Background(), item.ID)
	if unchanged.Price != 40 || unchanged.Name != "Sweet Lassi" {
		t.Fatalf("Item mutated by rejected patches: %+v", unchanged)
	}
}

func TestUpdate_EmptyPatch_ReturnsCurrentItem(t *testing.T) {
	repo := newMockMenuRepo()
	svc := newService(repo)

	item, _ := svc.Create(context.Background(), &domain.CreateMenuItemRequest{
		Category: "Lassi", Name: "Sweet Lassi", Price: 40,
	})

	got, err := svc.Update(context.Background(), item.ID, &domain.UpdateMenuItemRequest{})
	if err != nil {
		t.Fatalf("Empty patch failed: %v", err)
	}
	if got.ID != item.ID || got.Price != 40 {
		t.Fatalf("Expected current item back, got %+v", got)
	}
}

func TestDelete(t *testing.T) {
	repo := newMockMenuRepo()
	svc := newService(repo)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for unknown id, got %v", err)
	}

	item, _ := svc.Create(context.Background(), &domain.CreateMenuItemRequest{
		Category: "Lassi", Name: "Sweet Lassi", Price: 40,
	})
	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatal("Item should be removed")
	}
}

func TestToggles_SelfInverse(t *testing.T) {
	repo := newMockMenuRepo()
	svc := newService(repo)

	item, _ := svc.Create(context.Background(), &domain.CreateMenuItemRequest{
		Category: "Lassi", Name: "Sweet Lassi", Price: 40,
	})

	once, err := svc.ToggleSpecial(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("ToggleSpecial failed: %v", err)
	}
	if !once.IsSpecial {
		t.Fatal("First toggle should set is_special true")
	}
	if !once.Available {
		t.Fatal("ToggleSpecial must not touch availability")
	}

	twice, _ := svc.ToggleSpecial(context.Background(), item.ID)
	if twice.IsSpecial {
		t.Fatal("Second toggle should restore is_special false")
	}

	offAvail, err := svc.ToggleAvailable(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("ToggleAvailable failed: %v", err)
	}
	if offAvail.Available {
		t.Fatal("First toggle should set available false")
	}
	if offAvail.IsSpecial {
		t.Fatal("ToggleAvailable must not touch is_special")
	}

	if _, err := svc.ToggleSpecial(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ToggleAvailable(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestLists_FilterCorrectly(t *testing.T) {
	repo := newMockMenuRepo()
	svc := newService(repo)
	ctx := context.Background()

	plain, _ := svc.Create(ctx, &domain.CreateMenuItemRequest{Category: "Lassi", Name: "Plain", Price: 40})
	special, _ := svc.Create(ctx, &domain.CreateMenuItemRequest{Category: "Falooda", Name: "Star", Price: 99, IsSpecial: boolPtr(true)})
	hidden, _ := svc.Create(ctx, &domain.CreateMenuItemRequest{Category: "Momos", Name: "Gone", Price: 89, Available: boolPtr(false)})
	hiddenSpecial, _ := svc.Create(ctx, &domain.CreateMenuItemRequest{Category: "Momos", Name: "GoneStar", Price: 89, IsSpecial: boolPtr(true), Available: boolPtr(false)})

	available, _ := svc.ListAvailable(ctx)
	if len(available) != 2 {
		t.Fatalf("Expected 2 available items, got %d", len(available))
	}
	for _, it := range available {
		if it.ID == hidden.ID || it.ID == hiddenSpecial.ID {
			t.Fatal("Unavailable item leaked into public list")
		}
	}

	specials, _ := svc.ListSpecials(ctx)
	if len(specials) != 1 || specials[0].ID != special.ID {
		t.Fatalf("Specials should contain only the available special, got %+v", specials)
	}

	all, _ := svc.ListAll(ctx)
	if len(all) != 4 {
		t.Fatalf("Expected 4 items in admin list, got %d", len(all))
	}

	categories, _ := svc.Categories(ctx)
	want := []string{"Falooda", "Lassi", "Momos"}
	if len(categories) != len(want) {
		t.Fatalf("Expected categories %v, got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Fatalf("Categories not sorted/distinct: %v", categories)
		}
	}
	_ = plain
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	repo := newMockMenuRepo()
	svc := newService(repo)
	ctx := context.Background()

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	seeded := len(repo.items)
	if seeded == 0 {
		t.Fatal("Seed should insert the catalog into an empty store")
	}

	categories, _ := svc.Categories(ctx)
	if len(categories) != 15 {
		t.Fatalf("Expected 15 seeded categories, got %d", len(categories))
	}

	// Second run must be a no-op.
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}
	if len(repo.items) != seeded {
		t.Fatal("Seed must not run again once items exist")
	}

	for _, item := range repo.items {
		if !item.Available || item.IsSpecial {
			t.Fatalf("Seeded item has wrong flags: %+v", item)
		}
		if item.ID == "" || item.Name == "" || item.Category == "" {
			t.Fatalf("Seeded item missing fields: %+v", item)
		}
	}
}
