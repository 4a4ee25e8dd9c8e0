package season

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vodo-app/vodo/media"
)

func episode(id, season, number int) *media.Episode {
	return &media.Episode{ID: id, Season: season, Number: number}
}

func ids(episodes []*media.Episode) []int {
	return lo.Map(episodes, func(e *media.Episode, _ int) int { return e.ID })
}

func TestOrganize(t *testing.T) {
	Convey("Given episodes from seasons 1, 1, 2 and 3", t, func() {
		episodes := []*media.Episode{
			episode(1, 1, 1),
			episode(2, 1, 2),
			episode(3, 2, 1),
			episode(4, 3, 1),
		}

		seasons := Organize(episodes)

		Convey("Seasons are ordered newest first", func() {
			numbers := lo.Map(seasons, func(s Season, _ int) int { return s.Number })
			So(numbers, ShouldResemble, []int{3, 2, 1})
		})

		Convey("Flattening gives back every episode exactly once", func() {
			flat := lo.FlatMap(seasons, func(s Season, _ int) []*media.Episode { return s.Episodes })
			So(flat, ShouldHaveLength, len(episodes))
			So(ids(flat), ShouldContain, 1)
			So(ids(flat), ShouldContain, 2)
			So(ids(flat), ShouldContain, 3)
			So(ids(flat), ShouldContain, 4)
			So(lo.Uniq(ids(flat)), ShouldHaveLength, len(episodes))
		})

		Convey("Every episode sits in its own season", func() {
			for _, s := range seasons {
				for _, e := range s.Episodes {
					So(e.Season, ShouldEqual, s.Number)
				}
			}
		})
	})

	Convey("Given a season whose episodes arrive out of order", t, func() {
		seasons := Organize([]*media.Episode{
			episode(3, 1, 3),
			episode(1, 1, 1),
			episode(2, 1, 2),
		})

		Convey("Arrival order is kept", func() {
			So(seasons, ShouldHaveLength, 1)
			So(ids(seasons[0].Episodes), ShouldResemble, []int{3, 1, 2})
		})
	})

	Convey("Given interleaved seasons", t, func() {
		seasons := Organize([]*media.Episode{
			episode(10, 2, 1),
			episode(20, 1, 1),
			episode(11, 2, 2),
			nil,
			episode(21, 1, 2),
		})

		So(seasons, ShouldHaveLength, 2)
		So(ids(seasons[0].Episodes), ShouldResemble, []int{10, 11})
		So(ids(seasons[1].Episodes), ShouldResemble, []int{20, 21})
	})

	Convey("Given no episodes", t, func() {
		seasons := Organize(nil)
		So(seasons, ShouldNotBeNil)
		So(seasons, ShouldBeEmpty)
	})

	Convey("Seasons compare numerically", t, func() {
		seasons := Organize([]*media.Episode{episode(1, 2, 1), episode(2, 10, 1), episode(3, 9, 1)})
		numbers := lo.Map(seasons, func(s Season, _ int) int { return s.Number })
		So(numbers, ShouldResemble, []int{10, 9, 2})
	})
}

func TestSelection(t *testing.T) {
	Convey("Given an empty selection", t, func() {
		var empty Selection

		So(empty.Contains(1), ShouldBeFalse)
		So(empty.Numbers(), ShouldBeEmpty)

		Convey("Toggling adds a season without touching the original", func() {
			toggled := empty.Toggle(2)
			So(toggled.Contains(2), ShouldBeTrue)
			So(empty.Contains(2), ShouldBeFalse)

			Convey("Toggling again removes it", func() {
				So(toggled.Toggle(2).Contains(2), ShouldBeFalse)
				So(toggled.Contains(2), ShouldBeTrue)
			})
		})
	})

	Convey("Numbers are sorted and deduplicated", t, func() {
		s := NewSelection(3, 1, 3, 2)
		So(s.Numbers(), ShouldResemble, []int{1, 2, 3})
		So(s.Len(), ShouldEqual, 3)
	})
}
