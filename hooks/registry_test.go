package hooks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"cptui.GO/form"
)

func TestRegistry_PreSaveThreadsRecords(t *testing.T) {
	r := NewRegistry()
	r.OnPreSave(KindPostType, func(ctx context.Context, kind Kind, txn *Txn, records Records, name string) (Records, error) {
		if records[name] == nil {
			records[name] = Record{}
		}
		records[name]["first"] = true
		return records, nil
	})
	r.OnPreSave(KindPostType, func(ctx context.Context, kind Kind, txn *Txn, records Records, name string) (Records, error) {
		if records[name]["first"] != true {
			t.Error("second subscriber ran before first")
		}
		records[name]["second"] = true
		return records, nil
	})

	got, err := r.PreSave(context.Background(), KindPostType, NewTxn(), Records{}, "book")
	if err != nil {
		t.Fatalf("PreSave: %v", err)
	}
	if got["book"]["second"] != true {
		t.Errorf("book = %v, want both subscribers applied", got["book"])
	}

	untouched, err := r.PreSave(context.Background(), KindTaxonomy, nil, Records{}, "genre")
	if err != nil {
		t.Fatalf("PreSave taxonomy: %v", err)
	}
	if len(untouched) != 0 {
		t.Errorf("taxonomy records = %v, want untouched", untouched)
	}
}

func TestRegistry_PreRegisterErrorStops(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	called := false
	r.OnPreRegister(KindTaxonomy, func(context.Context, Kind, Args, string, Record) (Args, error) {
		return nil, boom
	})
	r.OnPreRegister(KindTaxonomy, func(ctx context.Context, kind Kind, args Args, name string, rec Record) (Args, error) {
		called = true
		return args, nil
	})
	if _, err := r.PreRegister(context.Background(), KindTaxonomy, Args{}, "genre", Record{}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if called {
		t.Error("subscriber after failing one should not run")
	}
}

func TestRegistry_RenderAndBeforeUpdate(t *testing.T) {
	r := NewRegistry()
	r.OnRenderFields(KindPostType, func(ctx context.Context, w io.Writer, rc RenderContext) error {
		_, err := io.WriteString(w, "<tr>"+rc.Kind.String()+"</tr>")
		return err
	})
	var seen string
	r.OnBeforeUpdate(KindPostType, func(ctx context.Context, kind Kind, txn *Txn, values form.Values) error {
		seen, _ = values.Group(kind.FormGroup()).Get("name")
		return nil
	})

	var buf bytes.Buffer
	if err := r.RenderFields(context.Background(), &buf, RenderContext{Kind: KindPostType}); err != nil {
		t.Fatalf("RenderFields: %v", err)
	}
	if buf.String() != "<tr>post_type</tr>" {
		t.Errorf("render = %q", buf.String())
	}
	vals := form.Values{"cpt_custom_post_type": form.Group{"name": "book"}}
	if err := r.BeforeUpdate(context.Background(), KindPostType, NewTxn(), vals); err != nil {
		t.Fatalf("BeforeUpdate: %v", err)
	}
	if seen != "book" {
		t.Errorf("seen = %q, want book", seen)
	}
	if got := r.Count(PointRenderFields, KindPostType); got != 1 {
		t.Errorf("Count(render) = %d, want 1", got)
	}
	if got := r.Count(PointPreSave, KindPostType); got != 0 {
		t.Errorf("Count(pre_save) = %d, want 0", got)
	}
}

func TestRegistry_LockedPanics(t *testing.T) {
	r := NewRegistry()
	r.Lock()
	if !r.IsLocked() {
		t.Fatal("IsLocked = false after Lock")
	}
	defer func() {
		if rec := recover(); rec == nil {
			t.Error("expected panic when subscribing to a locked registry")
		}
	}()
	r.OnPreSave(KindPostType, func(ctx context.Context, kind Kind, txn *Txn, records Records, name string) (Records, error) {
		return records, nil
	})
}

func TestDefault_Singleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same registry")
	}
}

func TestTxn_StageTake(t *testing.T) {
	txn := NewTxn()
	if txn.ID() == "" {
		t.Fatal("ID is empty")
	}
	if NewTxn().ID() == txn.ID() {
		t.Error("two transactions share an ID")
	}
	txn.Stage("k", 1)
	txn.Stage("k", 2)
	v, ok := txn.Take("k")
	if !ok || v != 2 {
		t.Errorf("Take = %v, %v; want 2, true", v, ok)
	}
	if _, ok := txn.Take("k"); ok {
		t.Error("second Take: want false")
	}
	var nilTxn *Txn
	if _, ok := nilTxn.Take("k"); ok {
		t.Error("nil Txn Take: want false")
	}
}

func TestTxn_ConcurrentStage(t *testing.T) {
	txn := NewTxn()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			txn.Stage("k", i)
		}(i)
	}
	wg.Wait()
	if _, ok := txn.Take("k"); !ok {
		t.Error("Take after concurrent Stage: want true")
	}
}
