package catalog

import "testing"

func TestListProducts_NotEmpty(t *testing.T) {
	products := ListProducts()
	if len(products) == 0 {
		t.Fatal("catalog is empty")
	}
	for _, p := range products {
		if p.Slug == "" {
			t.Errorf("product %q has no slug", p.ID)
		}
		if p.ReferenceCode == "" {
			t.Errorf("product %q has no reference code", p.ID)
		}
	}
}

func TestListProducts_SlugsUnique(t *testing.T) {
	seen := map[string]string{}
	for _, p := range ListProducts() {
		if prev, dup := seen[p.Slug]; dup {
			t.Errorf("slug %q used by both %q and %q", p.Slug, prev, p.ID)
		}
		seen[p.Slug] = p.ID
	}
}

func TestGetProductBySlug(t *testing.T) {
	p, ok := GetProductBySlug("arabic-gum-grade-one")
	if !ok {
		t.Fatal("expected to find arabic-gum-grade-one")
	}
	if p.ReferenceCode != "EPRD-100500" {
		t.Errorf("reference code = %q, want EPRD-100500", p.ReferenceCode)
	}
	if p.Name != "Arabic Gum — Grade One" {
		t.Errorf("unexpected name %q", p.Name)
	}
}

func TestGetProductBySlug_Unknown(t *testing.T) {
	if _, ok := GetProductBySlug("no-such-product"); ok {
		t.Error("expected lookup miss for unknown slug")
	}
}
