package history

import (
	"testing"

	"github.com/colordict-cli/colordict/filesystem"
	"github.com/colordict-cli/colordict/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an enabled lookup history", t, func() {
		viper.Set(key.HistorySaveOnGet, true)
		viper.Set(key.SearchShowSuggestions, true)

		Convey("When remembering a lookup", func() {
			So(Remember("crimson", "#dc143c"), ShouldBeNil)

			Convey("It should be listed", func() {
				records, err := All()
				So(err, ShouldBeNil)

				names := make([]string, 0, len(records))
				for _, r := range records {
					names = append(names, r.Name)
				}
				So(names, ShouldContain, "crimson")
			})

			Convey("Repeated lookups should raise the rank", func() {
				So(Remember("crimson", "#dc143c"), ShouldBeNil)

				records, err := All()
				So(err, ShouldBeNil)
				for _, r := range records {
					if r.Name == "crimson" {
						So(r.Rank, ShouldBeGreaterThanOrEqualTo, 2)
					}
				}
			})

			Convey("Suggestions should fuzzily match it", func() {
				So(SuggestMany("crmsn"), ShouldContain, "crimson")
			})
		})

		Convey("Suggestions should be empty when disabled", func() {
			viper.Set(key.SearchShowSuggestions, false)
			So(SuggestMany("crimson"), ShouldBeEmpty)
		})
	})
}
