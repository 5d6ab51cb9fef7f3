package repository_test

import (
	"testing"

	repository "github.com/okian/boxscore/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

func TestKey(t *testing.T) {
	Convey("Given the composite key builder", t, func() {
		Convey("When called with no components", func() {
			So(repository.Key(), ShouldEqual, "")
		})

		Convey("When called with one component", func() {
			So(repository.Key("a"), ShouldEqual, "a")
		})

		Convey("When called with several components", func() {
			So(repository.Key("a", "b", "c"), ShouldEqual, "a:b:c")
		})

		Convey("When a component is empty", func() {
			So(repository.Key("a", "", "c"), ShouldEqual, "a::c")
			So(repository.Key("player", "", "stats"), ShouldEqual, "player::stats")
		})

		Convey("When a component contains the separator", func() {
			// Documented limitation: no escaping, so these collide.
			So(repository.Key("a:b", "c"), ShouldEqual, repository.Key("a", "b:c"))
		})
	})
}
