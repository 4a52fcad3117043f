package sparse

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestMatrixSetValue(t *testing.T) {
	M := NewMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("Expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(9, 9); v != -1 {
		t.Errorf("Expected M(9,9) to be null-value -1, is %d", v)
	}
	M.Set(2, 3, 42)
	if v := M.Value(2, 3); v != 42 {
		t.Errorf("Expected M(2,3) to be overwritten with 42, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("Expected value count to be 1, is %d", M.ValueCount())
	}
}

func TestMatrixAdd(t *testing.T) {
	M := NewMatrix(5, 5, DefaultNullValue)
	M.Add(1, 1, 7).Add(1, 1, 8).Add(1, 1, 7)
	if vals := M.Values(1, 1); !slices.Equal(vals, []int32{7, 8}) {
		t.Errorf("Expected values at (1,1) to be [7 8], are %v", vals)
	}
	if M.Value(1, 1) != 7 {
		t.Errorf("Expected primary value at (1,1) to be 7, is %d", M.Value(1, 1))
	}
	if M.Conflicts() != 1 {
		t.Errorf("Expected 1 conflict, have %d", M.Conflicts())
	}
	if M.Values(0, 0) != nil {
		t.Errorf("Expected no values at (0,0)")
	}
}

func TestMatrixOrder(t *testing.T) {
	M := NewMatrix(4, 4, -1)
	M.Set(3, 0, 30).Set(0, 2, 2).Set(1, 1, 11).Set(0, 0, 0).Set(3, 3, 33)
	var got []int32
	M.Each(func(i, j int, values []int32) {
		if values[0] != int32(i*10+j) {
			t.Errorf("Expected value at (%d,%d) to be %d, is %d", i, j, i*10+j, values[0])
		}
		got = append(got, values[0])
	})
	if !slices.Equal(got, []int32{0, 2, 11, 30, 33}) {
		t.Errorf("Expected row-major order, have %v", got)
	}
	for _, v := range got {
		if M.Value(int(v)/10, int(v)%10) != v {
			t.Errorf("Expected to find %d by binary search", v)
		}
	}
}

func TestMatrixNullValueIgnored(t *testing.T) {
	M := NewMatrix(2, 2, -1)
	M.Set(0, 1, -1)
	if M.ValueCount() != 0 {
		t.Errorf("Expected setting the null-value to be a no-op")
	}
}
