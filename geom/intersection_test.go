package geom

import (
	"testing"

	"github.com/osuushi/brainwall/internal/throw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The classification must not depend on argument order or on which way round
// either segment is written.
func checkIntersection(t *testing.T, s1, s2 Segment, expected Intersection) {
	t.Helper()
	for _, a := range []Segment{s1, s1.Reversed()} {
		for _, b := range []Segment{s2, s2.Reversed()} {
			assert.Equal(t, expected, SegmentIntersection(a, b), "%v vs %v", a, b)
			assert.Equal(t, expected, SegmentIntersection(b, a), "%v vs %v", b, a)
		}
	}
}

func TestSegmentIntersection(t *testing.T) {
	none := Intersection{Kind: NoIntersection}
	internal := Intersection{Kind: InternalIntersection}
	endpoint := func(x, y int64) Intersection {
		return Intersection{Kind: EndpointIntersection, Point: Pt(x, y)}
	}

	t.Run("disjoint", func(t *testing.T) {
		checkIntersection(t, Seg(Pt(0, 0), Pt(1, 1)), Seg(Pt(1, 10), Pt(0, 11)), none)
	})

	t.Run("proper crossing", func(t *testing.T) {
		checkIntersection(t, Seg(Pt(0, 0), Pt(1, 1)), Seg(Pt(1, 0), Pt(0, 1)), internal)
		checkIntersection(t, Seg(Pt(0, 0), Pt(10, 10)), Seg(Pt(0, 10), Pt(10, 0)), internal)
	})

	t.Run("crossing at a non-integer point", func(t *testing.T) {
		checkIntersection(t, Seg(Pt(0, 0), Pt(3, 1)), Seg(Pt(0, 1), Pt(3, 0)), internal)
	})

	t.Run("one endpoint on the other segment", func(t *testing.T) {
		checkIntersection(t, Seg(Pt(0, 0), Pt(10, 20)), Seg(Pt(5, 10), Pt(6, 8)), endpoint(5, 10))
		checkIntersection(t, Seg(Pt(0, 0), Pt(10, 0)), Seg(Pt(5, 0), Pt(5, 5)), endpoint(5, 0))
	})

	t.Run("shared endpoint", func(t *testing.T) {
		checkIntersection(t, Seg(Pt(0, 0), Pt(10, 0)), Seg(Pt(10, 0), Pt(10, 10)), endpoint(10, 0))
	})

	t.Run("collinear overlap is not an intersection", func(t *testing.T) {
		checkIntersection(t, Seg(Pt(0, 0), Pt(10, 20)), Seg(Pt(5, 10), Pt(30, 60)), none)
		checkIntersection(t, Seg(Pt(0, 0), Pt(10, 0)), Seg(Pt(2, 0), Pt(4, 0)), none)
	})

	t.Run("lines meet outside one segment", func(t *testing.T) {
		// The lines y=x and y=4-x meet at (2, 2), which is not on the second
		// segment even though the bounding boxes overlap.
		checkIntersection(t, Seg(Pt(0, 0), Pt(4, 4)), Seg(Pt(4, 0), Pt(3, 1)), none)
	})

	t.Run("far coordinates", func(t *testing.T) {
		m := int64(MaxCoord)
		checkIntersection(t, Seg(Pt(-m, -m), Pt(m, m)), Seg(Pt(-m, m), Pt(m, -m)), internal)
		checkIntersection(t, Seg(Pt(-m, -m), Pt(m, m)), Seg(Pt(0, 0), Pt(m, -m)), endpoint(0, 0))
	})
}

func TestSegmentIntersectionDegenerate(t *testing.T) {
	defer func() {
		err := throw.Recover(recover())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "zero length segment")
	}()
	SegmentIntersection(Seg(Pt(1, 1), Pt(1, 1)), Seg(Pt(0, 0), Pt(2, 2)))
	t.Fatal("expected a panic")
}

func TestSegmentContains(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(6, 3))
	assert.True(t, s.Contains(Pt(0, 0)))
	assert.True(t, s.Contains(Pt(2, 1)))
	assert.True(t, s.Contains(Pt(6, 3)))
	assert.False(t, s.Contains(Pt(8, 4)))
	assert.False(t, s.Contains(Pt(2, 2)))
}
