package model

import (
	"seichi.click/gamedata-translator/internal/pkg/dstructs"
)

// PlayerStatistics is the merged per-player record. A field stays zero when
// the corresponding collection has no record for the player.
type PlayerStatistics struct {
	BreakCount uint64
	BuildCount uint64
	PlayTicks  uint64
	VoteCount  uint64
}

// StatisticsSet is an insertion-ordered collection of per-player statistics.
// Iterating yields players in first-seen order, which makes two renders of
// the same set byte-identical. The order itself is an implementation detail,
// not an API guarantee.
type StatisticsSet struct {
	m *dstructs.OrderedMap[PlayerUUID, *PlayerStatistics]
}

// NewStatisticsSet creates an empty set. sizeHint pre-sizes the underlying
// map and may be zero.
func NewStatisticsSet(sizeHint int) *StatisticsSet {
	return &StatisticsSet{
		m: dstructs.NewOrderedMap[PlayerUUID, *PlayerStatistics](sizeHint),
	}
}

// Stats returns the record for uuid, inserting a zero record first when the
// player has not been seen yet.
func (s *StatisticsSet) Stats(uuid PlayerUUID) *PlayerStatistics {
	if stats, ok := s.m.Get(uuid); ok {
		return stats
	}
	stats := &PlayerStatistics{}
	s.m.Set(uuid, stats)
	return stats
}

func (s *StatisticsSet) Len() int {
	return s.m.Len()
}

// UUIDs returns the player identities in insertion order. The returned slice
// is shared with the set; callers must not modify it.
func (s *StatisticsSet) UUIDs() []PlayerUUID {
	return s.m.Keys()
}

// Each calls f once per player, in insertion order.
func (s *StatisticsSet) Each(f func(uuid PlayerUUID, stats *PlayerStatistics)) {
	s.m.Each(f)
}
