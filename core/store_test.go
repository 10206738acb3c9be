package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sepline/core"
)

// square is the 2×2 grid used across store tests: IDs 0..3 in input order.
var square = []core.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 2}}

type StoreSuite struct {
	suite.Suite
	s *core.Store
}

func (s *StoreSuite) SetupTest() {
	st, err := core.NewStore(square)
	s.Require().NoError(err)
	s.s = st
}

func (s *StoreSuite) TestCompleteRelation() {
	require := require.New(s.T())
	n := len(square)
	require.Equal(n*(n-1), s.s.RemainingConnections(), "K_n has n·(n−1) ordered connections")
	for i := 0; i < n; i++ {
		require.Equal(n-1, s.s.Degree(i))
		require.False(s.s.Connected(i, i), "a point is never connected to itself")
		for j := 0; j < n; j++ {
			if i != j {
				require.True(s.s.Connected(i, j), "(%d,%d) must start connected", i, j)
			}
		}
	}
}

func (s *StoreSuite) TestIDsFollowInputOrder() {
	require := require.New(s.T())
	for i, p := range s.s.Points() {
		require.Equal(i, p.ID)
		require.Equal(square[i].X, p.X)
		require.Equal(square[i].Y, p.Y)
	}
}

func (s *StoreSuite) TestDisconnectIsSymmetric() {
	require := require.New(s.T())
	require.True(s.s.Disconnect(0, 3))
	require.False(s.s.Connected(0, 3))
	require.False(s.s.Connected(3, 0))
	require.Equal(2, s.s.Degree(0))
	require.Equal(2, s.s.Degree(3))
	require.Equal(10, s.s.RemainingConnections(), "one pair removed: counter drops by 2")
}

func (s *StoreSuite) TestDisconnectIsIdempotent() {
	require := require.New(s.T())
	require.True(s.s.Disconnect(1, 2))
	before := s.s.RemainingConnections()

	require.False(s.s.Disconnect(1, 2))
	require.False(s.s.Disconnect(2, 1), "reverse orientation is the same pair")
	require.Equal(before, s.s.RemainingConnections())
	require.False(s.s.Connected(1, 2))
}

func (s *StoreSuite) TestDisconnectIgnoresInvalidPairs() {
	require := require.New(s.T())
	before := s.s.RemainingConnections()
	require.False(s.s.Disconnect(0, 0))
	require.False(s.s.Disconnect(-1, 2))
	require.False(s.s.Disconnect(1, 99))
	require.Equal(before, s.s.RemainingConnections())
}

func (s *StoreSuite) TestCounterMonotonic() {
	require := require.New(s.T())
	n := len(square)
	prev := s.s.RemainingConnections()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			removed := s.s.Disconnect(i, j)
			cur := s.s.RemainingConnections()
			if removed {
				require.Equal(prev-2, cur)
			} else {
				require.Equal(prev, cur)
			}
			require.GreaterOrEqual(cur, 0)
			prev = cur
		}
	}
	require.Zero(s.s.RemainingConnections())
}

func (s *StoreSuite) TestNeighborIDs() {
	require := require.New(s.T())
	s.s.Disconnect(2, 1)
	ids, err := s.s.NeighborIDs(2)
	require.NoError(err)
	require.Equal([]int{0, 3}, ids)

	_, err = s.s.NeighborIDs(4)
	require.ErrorIs(err, core.ErrPointNotFound)
}

func (s *StoreSuite) TestAnyConnectedAndDisconnectAll() {
	require := require.New(s.T())
	left, right := []int{0, 1}, []int{2, 3}
	require.True(s.s.AnyConnected(left, right))

	require.Equal(4, s.s.DisconnectAll(left, right))
	require.False(s.s.AnyConnected(left, right))
	require.Equal(0, s.s.DisconnectAll(left, right), "second sweep finds nothing")
	require.Equal(4, s.s.RemainingConnections(), "only (0,1) and (2,3) remain")
	require.True(s.s.Connected(0, 1))
	require.True(s.s.Connected(2, 3))
}

func (s *StoreSuite) TestPointLookup() {
	require := require.New(s.T())
	p, err := s.s.Point(3)
	require.NoError(err)
	require.Equal(core.Point{ID: 3, X: 2, Y: 2}, p)

	_, err = s.s.Point(-1)
	require.ErrorIs(err, core.ErrPointNotFound)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func TestNewStore_Capacity(t *testing.T) {
	pts := make([]core.Point, core.DefaultCapacity+1)
	for i := range pts {
		pts[i] = core.Point{X: i, Y: i}
	}

	_, err := core.NewStore(pts)
	require.ErrorIs(t, err, core.ErrCapacityExceeded)

	_, err = core.NewStore(pts[:3], core.WithCapacity(2))
	require.ErrorIs(t, err, core.ErrCapacityExceeded)

	st, err := core.NewStore(pts, core.WithCapacity(0))
	require.NoError(t, err, "non-positive capacity is unbounded")
	require.Equal(t, len(pts), st.Len())
}

func TestNewStore_Trivial(t *testing.T) {
	for _, pts := range [][]core.Point{nil, {{X: 5, Y: 5}}} {
		st, err := core.NewStore(pts)
		require.NoError(t, err)
		require.Zero(t, st.RemainingConnections())
	}
}

func TestNewStore_WideBitsets(t *testing.T) {
	// 130 points span three 64-bit words per row.
	pts := make([]core.Point, 130)
	for i := range pts {
		pts[i] = core.Point{X: i, Y: -i}
	}
	st, err := core.NewStore(pts, core.WithCapacity(0))
	require.NoError(t, err)
	require.Equal(t, 130*129, st.RemainingConnections())

	require.True(t, st.Disconnect(0, 129))
	require.True(t, st.Disconnect(64, 63))
	ids, err := st.NeighborIDs(129)
	require.NoError(t, err)
	require.Len(t, ids, 128)
	require.NotContains(t, ids, 0)
	require.Equal(t, 130*129-4, st.RemainingConnections())
}
