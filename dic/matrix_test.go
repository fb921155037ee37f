package dic_test

import (
	"testing"

	"yomu.dev/go/morph/dic"
	"yomu.dev/go/morph/internal/testdict"
)

func TestMatrixTransCost(t *testing.T) {
	b := testdict.NewMatrixBuilder(128, 128)
	b.SetCost(11, 10, 250)  // predecessor right_id=11 -> successor left_id=10
	b.SetCost(21, 30, -120)

	path := testdict.WriteTemp(t, "matrix-*.bin", b.Build())
	m, err := dic.OpenMatrix(path)
	if err != nil {
		t.Fatalf("dic.OpenMatrix: %v", err)
	}
	t.Cleanup(func() { m.Close() })

	if c := m.TransCost(11, 10); c != 250 {
		t.Errorf("TransCost(11, 10) = %d, want 250", c)
	}
	if c := m.TransCost(21, 30); c != -120 {
		t.Errorf("TransCost(21, 30) = %d, want -120", c)
	}
	if c := m.TransCost(99, 99); c != 0 {
		t.Errorf("TransCost(99, 99) (unset cell) = %d, want 0", c)
	}
}
