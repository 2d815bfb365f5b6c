package logger_test

import (
	"context"
	"testing"

	"github.com/glennib/case-poker/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at every level", func() {
			log := logger.Get()

			Convey("Then logging does not panic", func() {
				So(func() {
					log.Debug(ctx, "debug message", logger.String("k", "v"))
					log.Info(ctx, "info message", logger.Int("n", 1))
					log.Warn(ctx, "warn message", logger.Any("v", struct{}{}))
					log.Error(ctx, "error message", logger.Error(nil))
				}, ShouldNotPanic)
			})
		})

		Convey("When creating a named logger", func() {
			named := logger.Named("component")

			Convey("Then it logs without panicking", func() {
				So(func() {
					named.Info(ctx, "named message")
				}, ShouldNotPanic)
			})
		})

		Convey("When setting the level from a string", func() {
			Convey("Then known levels are accepted", func() {
				for _, level := range []string{"debug", "info", "warn", "warning", "error", "", " INFO "} {
					So(logger.SetLevelString(level), ShouldBeNil)
				}
			})

			Convey("Then unknown levels are rejected", func() {
				So(logger.SetLevelString("loud"), ShouldNotBeNil)
			})
		})
	})

	Convey("Given the nop logger", t, func() {
		log := logger.Nop()

		Convey("Then it swallows everything silently", func() {
			So(func() {
				log.Info(context.Background(), "dropped")
				log.Named("sub").Error(context.Background(), "also dropped")
			}, ShouldNotPanic)
		})
	})
}
