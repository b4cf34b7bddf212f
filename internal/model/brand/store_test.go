package brand_test

import (
	"testing"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
)

func TestStoreSetGetRoundTrip(t *testing.T) {
	store := brand.NewMemoryStore()
	want := brand.Context{BrandName: "TechCorp", BrandVoice: "bold", Industry: "saas"}

	store.Set("s1", want)

	got, ok := store.Get("s1")
	if !ok {
		t.Fatal("expected stored context")
	}
	if got != want {
		t.Fatalf("unexpected context: got %+v want %+v", got, want)
	}
}

func TestStoreGetReturnsCopy(t *testing.T) {
	store := brand.NewMemoryStore()
	store.Set("s1", brand.Context{BrandName: "TechCorp"})

	got, _ := store.Get("s1")
	got.BrandName = "mutated"

	stored, _ := store.Get("s1")
	if stored.BrandName != "TechCorp" {
		t.Fatalf("store record mutated through caller copy: %+v", stored)
	}
}

func TestStoreUpdateMergesFieldByField(t *testing.T) {
	store := brand.NewMemoryStore()
	store.Set("s1", brand.Context{BrandName: "TechCorp", BrandVoice: "bold"})

	merged := store.Update("s1", brand.Context{BrandVoice: "friendly", Industry: "retail"})

	want := brand.Context{BrandName: "TechCorp", BrandVoice: "friendly", Industry: "retail"}
	if merged != want {
		t.Fatalf("unexpected merge result: got %+v want %+v", merged, want)
	}
	stored, _ := store.Get("s1")
	if stored != want {
		t.Fatalf("unexpected stored value: got %+v want %+v", stored, want)
	}
}

func TestStoreUpdateCreatesWhenAbsent(t *testing.T) {
	store := brand.NewMemoryStore()

	store.Update("fresh", brand.Context{BrandName: "Acme"})

	got, ok := store.Get("fresh")
	if !ok || got.BrandName != "Acme" {
		t.Fatalf("expected created record, got %+v ok=%v", got, ok)
	}
}

func TestStoreDelete(t *testing.T) {
	store := brand.NewMemoryStore()
	store.Set("s1", brand.Context{BrandName: "TechCorp"})

	if !store.Delete("s1") {
		t.Fatal("expected delete of existing record to report true")
	}
	if store.Delete("s1") {
		t.Fatal("expected delete of missing record to report false")
	}
	if store.Has("s1") {
		t.Fatal("record should be gone after delete")
	}
}

func TestStoreClearAndLen(t *testing.T) {
	store := brand.NewMemoryStore()
	store.Set("a", brand.Context{BrandName: "A"})
	store.Set("b", brand.Context{BrandName: "B"})

	if store.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", store.Len())
	}

	store.Clear()
	if store.Len() != 0 {
		t.Fatalf("expected empty store after clear, got %d", store.Len())
	}
}

func TestContextIsZero(t *testing.T) {
	if !(brand.Context{}).IsZero() {
		t.Fatal("empty context should be zero")
	}
	if (brand.Context{Industry: "retail"}).IsZero() {
		t.Fatal("populated context should not be zero")
	}
}
