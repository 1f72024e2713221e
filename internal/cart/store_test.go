package cart

import (
	"sync"
	"testing"

	"leahs-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price string) model.Product {
	return model.Product{
		ID:       id,
		Name:     "Product",
		Category: "Breads",
		Price:    decimal.RequireFromString(price),
	}
}

func itemIDs(items []model.CartItem) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func assertTotalMatchesItems(t *testing.T, s *Store) {
	t.Helper()

	sum := decimal.Zero
	for _, item := range s.Items() {
		sum = sum.Add(item.Price)
	}
	assert.True(t, sum.Equal(s.Total()), "total %s != sum of items %s", s.Total(), sum)
}

func TestStore_NewIsEmpty(t *testing.T) {
	s := NewStore(zerolog.Nop())

	assert.Empty(t, s.Items())
	assert.True(t, s.Total().IsZero())
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, uint64(0), s.State().Version)
}

func TestStore_AddRemoveScenario(t *testing.T) {
	s := NewStore(zerolog.Nop())

	s.Add(product(1, "20"))
	s.Add(product(2, "100"))
	assert.True(t, decimal.NewFromInt(120).Equal(s.Total()))
	assert.Equal(t, []int64{1, 2}, itemIDs(s.Items()))

	s.Remove(1)
	assert.Equal(t, []int64{2}, itemIDs(s.Items()))
	assert.True(t, decimal.NewFromInt(100).Equal(s.Total()))
}

func TestStore_DuplicatesAreSeparateEntries(t *testing.T) {
	s := NewStore(zerolog.Nop())

	s.Add(product(1, "20"))
	s.Add(product(2, "5"))
	s.Add(product(1, "20"))

	assert.Equal(t, []int64{1, 2, 1}, itemIDs(s.Items()))
	assert.Equal(t, 3, s.Count())
	assert.True(t, decimal.NewFromInt(45).Equal(s.Total()))

	s.Remove(1)
	assert.Equal(t, []int64{2}, itemIDs(s.Items()), "remove drops every matching entry")
}

func TestStore_TotalInvariant(t *testing.T) {
	s := NewStore(zerolog.Nop())

	steps := []func(){
		func() { s.Add(product(1, "45")) },
		func() { s.Add(product(2, "0.10")) },
		func() { s.Add(product(3, "0.20")) },
		func() { s.Remove(99) },
		func() { s.Add(product(2, "0.10")) },
		func() { s.Remove(2) },
		func() { s.Clear() },
		func() { s.Add(product(4, "550")) },
	}

	for _, step := range steps {
		step()
		assertTotalMatchesItems(t, s)
	}
}

func TestStore_DecimalTotalDoesNotDrift(t *testing.T) {
	s := NewStore(zerolog.Nop())

	s.Add(product(1, "0.1"))
	s.Add(product(2, "0.2"))

	assert.Equal(t, "0.3", s.Total().String())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(zerolog.Nop())
	s.Add(product(1, "20"))
	s.Add(product(2, "100"))

	s.Clear()

	assert.Empty(t, s.Items())
	assert.True(t, s.Total().IsZero())
	assert.True(t, s.State().IsEmpty())
}

func TestStore_NoOpsDoNotNotify(t *testing.T) {
	s := NewStore(zerolog.Nop())

	calls := 0
	s.Subscribe(func(state model.CartState) { calls++ })

	s.Clear()
	s.Remove(42)

	assert.Equal(t, 0, calls)
	assert.Equal(t, uint64(0), s.State().Version)
}

func TestStore_SubscribersSeeEachMutation(t *testing.T) {
	s := NewStore(zerolog.Nop())

	var first, second []model.CartState
	s.Subscribe(func(state model.CartState) { first = append(first, state) })
	s.Subscribe(func(state model.CartState) { second = append(second, state) })

	s.Add(product(1, "20"))
	s.Add(product(2, "100"))
	s.Remove(1)
	s.Clear()

	require.Len(t, first, 4)
	assert.Equal(t, first, second)

	assert.Equal(t, uint64(1), first[0].Version)
	assert.Equal(t, []int64{1}, itemIDs(first[0].Items))
	assert.Equal(t, []int64{1, 2}, itemIDs(first[1].Items))
	assert.True(t, decimal.NewFromInt(120).Equal(first[1].Total))
	assert.Equal(t, []int64{2}, itemIDs(first[2].Items))
	assert.Empty(t, first[3].Items)
	assert.Equal(t, 0, first[3].Count)
	assert.Equal(t, uint64(4), first[3].Version)
}

func TestStore_ListenerReadsUpdatedState(t *testing.T) {
	s := NewStore(zerolog.Nop())

	var seenCount int
	s.Subscribe(func(state model.CartState) {
		seenCount = s.Count()
	})

	s.Add(product(1, "20"))
	assert.Equal(t, 1, seenCount)
}

func TestStore_ListenersRunInSubscriptionOrder(t *testing.T) {
	s := NewStore(zerolog.Nop())

	var order []string
	s.Subscribe(func(model.CartState) { order = append(order, "badge") })
	s.Subscribe(func(model.CartState) { order = append(order, "list") })
	s.Subscribe(func(model.CartState) { order = append(order, "total") })

	s.Add(product(1, "20"))

	assert.Equal(t, []string{"badge", "list", "total"}, order)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore(zerolog.Nop())

	calls := 0
	unsubscribe := s.Subscribe(func(model.CartState) { calls++ })

	s.Add(product(1, "20"))
	unsubscribe()
	unsubscribe()
	s.Add(product(2, "20"))

	assert.Equal(t, 1, calls)
}

func TestStore_SnapshotsAreIndependent(t *testing.T) {
	s := NewStore(zerolog.Nop())
	s.Add(product(1, "20"))

	items := s.Items()
	items[0].ID = 99
	state := s.State()
	state.Items[0].ID = 98

	assert.Equal(t, []int64{1}, itemIDs(s.Items()))
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := NewStore(zerolog.Nop())

	var mu sync.Mutex
	var versions []uint64
	s.Subscribe(func(state model.CartState) {
		mu.Lock()
		versions = append(versions, state.Version)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Add(product(id, "1"))
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 50, s.Count())
	assert.True(t, decimal.NewFromInt(50).Equal(s.Total()))

	require.Len(t, versions, 50)
	for i, v := range versions {
		assert.Equal(t, uint64(i+1), v, "notifications arrive in version order")
	}
}
