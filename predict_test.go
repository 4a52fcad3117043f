package predict

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{4, 6}
	x := s.Extend(Span{2, 5})
	if x.From() != 2 || x.To() != 6 {
		t.Errorf("Expected extended span to be (2…6), is %v", x)
	}
	if x.Len() != 4 {
		t.Errorf("Expected length of %v to be 4, is %d", x, x.Len())
	}
	if !(Span{}).IsNull() {
		t.Errorf("Expected zero span to be null")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 14}
	if p.String() != "3:14" {
		t.Errorf("Expected position to print as 3:14, is %q", p.String())
	}
}
