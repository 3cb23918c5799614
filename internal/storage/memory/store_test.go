package memory

import (
	"bytes"
	"context"
	"testing"
)

func TestStore_ReadWriteDelete(t *testing.T) {
	ctx := context.Background()
	st := New()

	if b, err := st.Read(ctx, "users"); err != nil || b != nil {
		t.Fatalf("absent key should read nil, got %v err=%v", b, err)
	}

	if err := st.Write(ctx, "users", []byte(`[{"id":"u1"}]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := st.Read(ctx, "users")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(b, []byte(`[{"id":"u1"}]`)) {
		t.Fatalf("unexpected read %q", b)
	}

	if err := st.Delete(ctx, "users"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if b, _ := st.Read(ctx, "users"); b != nil {
		t.Fatalf("deleted key should read nil, got %q", b)
	}
	// Deleting an absent key is a no-op.
	if err := st.Delete(ctx, "users"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestStore_ReadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	st := New()

	if err := st.Write(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, _ := st.Read(ctx, "k")
	b[0] = 'z'

	again, _ := st.Read(ctx, "k")
	if !bytes.Equal(again, []byte("abc")) {
		t.Fatalf("store data mutated through returned slice: %q", again)
	}
}
