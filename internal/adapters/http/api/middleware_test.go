package api

import (
	"errors"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorClassification(t *testing.T) {
	Convey("Given HTTP status codes", t, func() {
		So(getErrorType(http.StatusInternalServerError), ShouldEqual, "server_error")
		So(getErrorType(http.StatusNotFound), ShouldEqual, "not_found")
		So(getErrorType(http.StatusUnprocessableEntity), ShouldEqual, "validation_error")
		So(getErrorType(http.StatusBadRequest), ShouldEqual, "conflict")
		So(getErrorType(http.StatusOK), ShouldEqual, "unknown")

		So(getErrorSeverity(http.StatusInternalServerError), ShouldEqual, "high")
		So(getErrorSeverity(http.StatusBadRequest), ShouldEqual, "medium")
		So(getErrorSeverity(http.StatusOK), ShouldEqual, "low")
	})
}

func TestOpError(t *testing.T) {
	Convey("Given wrapped API errors", t, func() {
		cause := errors.New("registry exploded")

		Convey("When wrapping with an operation only", func() {
			err := Wrap("api.signup", cause)

			Convey("Then the cause stays matchable", func() {
				So(errors.Is(err, cause), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "api.signup: registry exploded")
				So(Wrap("api.signup", nil), ShouldBeNil)
			})
		})

		Convey("When wrapping with a kind", func() {
			err := WrapKind("api", ErrInternal, cause)

			Convey("Then both kind and cause are matchable", func() {
				So(errors.Is(err, ErrInternal), ShouldBeTrue)
				So(errors.Is(err, cause), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "api: internal error: registry exploded")
			})
		})
	})
}
