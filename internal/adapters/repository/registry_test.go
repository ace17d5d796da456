package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/activities/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func testCatalog() model.Catalog {
	return model.Catalog{
		"Soccer": {
			Description:     "Team sport focusing on soccer skills and competitive matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 2,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore painting, drawing, and mixed media techniques",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu"},
		},
	}
}

func TestRegistryStore_Reads(t *testing.T) {
	Convey("Given a registry store", t, func() {
		ctx := context.Background()
		seed := testCatalog()
		store := NewRegistryStore(ctx, seed)

		Convey("Then it lists every activity with all fields", func() {
			c := store.List(ctx)
			So(c, ShouldHaveLength, 2)
			So(c["Soccer"].Schedule, ShouldEqual, seed["Soccer"].Schedule)
			So(c["Soccer"].MaxParticipants, ShouldEqual, 2)
			So(c["Soccer"].Participants, ShouldResemble, []string{"alex@mergington.edu"})
			So(store.Count(ctx), ShouldEqual, 2)
			So(store.Names(ctx), ShouldResemble, []string{"Art Club", "Soccer"})
		})

		Convey("Then reads are isolated from the store state", func() {
			c := store.List(ctx)
			c["Soccer"].Participants[0] = "mallory@mergington.edu"
			a, err := store.Get(ctx, "Soccer")
			So(err, ShouldBeNil)
			So(a.Participants[0], ShouldEqual, "alex@mergington.edu")
		})

		Convey("Then the seed is copied rather than shared", func() {
			seed["Soccer"].Participants[0] = "mallory@mergington.edu"
			a, _ := store.Get(ctx, "Soccer")
			So(a.Participants[0], ShouldEqual, "alex@mergington.edu")
		})

		Convey("Then unknown names are not found", func() {
			_, err := store.Get(ctx, "Quidditch")
			So(errors.Is(err, ErrActivityNotFound), ShouldBeTrue)
		})
	})
}

func TestRegistryStore_Signup(t *testing.T) {
	Convey("Given a registry store", t, func() {
		ctx := context.Background()
		store := NewRegistryStore(ctx, testCatalog())

		Convey("When signing up a new email", func() {
			a, err := store.Signup(ctx, "Soccer", "newstudent@mergington.edu")

			Convey("Then it is appended in order", func() {
				So(err, ShouldBeNil)
				So(a.Participants, ShouldResemble, []string{"alex@mergington.edu", "newstudent@mergington.edu"})
				got, _ := store.Get(ctx, "Soccer")
				So(got.Participants, ShouldResemble, a.Participants)
			})
		})

		Convey("When signing up an existing participant", func() {
			_, err := store.Signup(ctx, "Soccer", "alex@mergington.edu")

			Convey("Then it is rejected as a conflict and nothing changes", func() {
				So(errors.Is(err, ErrAlreadySignedUp), ShouldBeTrue)
				So(IsConflict(err), ShouldBeTrue)
				got, _ := store.Get(ctx, "Soccer")
				So(got.Participants, ShouldHaveLength, 1)
			})
		})

		Convey("When signing up for an unknown activity", func() {
			_, err := store.Signup(ctx, "Quidditch", "student@mergington.edu")

			Convey("Then it is not found", func() {
				So(errors.Is(err, ErrActivityNotFound), ShouldBeTrue)
				So(IsConflict(err), ShouldBeFalse)
			})
		})

		Convey("When the capacity hint is reached without enforcement", func() {
			_, err1 := store.Signup(ctx, "Soccer", "b@mergington.edu")
			_, err2 := store.Signup(ctx, "Soccer", "c@mergington.edu")

			Convey("Then signups still succeed", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				got, _ := store.Get(ctx, "Soccer")
				So(got.Participants, ShouldHaveLength, 3)
			})
		})

		Convey("When the same student joins two activities", func() {
			_, err1 := store.Signup(ctx, "Soccer", "newstudent@mergington.edu")
			_, err2 := store.Signup(ctx, "Art Club", "newstudent@mergington.edu")

			Convey("Then both succeed", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
			})
		})
	})

	Convey("Given a store enforcing capacity", t, func() {
		ctx := context.Background()
		store := NewRegistryStore(ctx, testCatalog(), WithCapacityEnforcement(true))

		Convey("When the activity fills up", func() {
			_, err1 := store.Signup(ctx, "Soccer", "b@mergington.edu")
			_, err2 := store.Signup(ctx, "Soccer", "c@mergington.edu")

			Convey("Then further signups are rejected", func() {
				So(err1, ShouldBeNil)
				So(errors.Is(err2, ErrActivityFull), ShouldBeTrue)
				So(IsConflict(err2), ShouldBeTrue)
			})
		})
	})
}

func TestRegistryStore_Unregister(t *testing.T) {
	Convey("Given a registry store", t, func() {
		ctx := context.Background()
		store := NewRegistryStore(ctx, testCatalog())

		Convey("When a signup is followed by an unregister", func() {
			before, _ := store.Get(ctx, "Art Club")
			_, err := store.Signup(ctx, "Art Club", "testuser@mergington.edu")
			So(err, ShouldBeNil)
			a, err := store.Unregister(ctx, "Art Club", "testuser@mergington.edu")

			Convey("Then the roster returns to its previous state", func() {
				So(err, ShouldBeNil)
				So(a.Participants, ShouldResemble, before.Participants)
				So(a.HasParticipant("testuser@mergington.edu"), ShouldBeFalse)
			})
		})

		Convey("When unregistering a seeded participant", func() {
			a, err := store.Unregister(ctx, "Soccer", "alex@mergington.edu")

			Convey("Then the roster becomes an empty list", func() {
				So(err, ShouldBeNil)
				So(a.Participants, ShouldNotBeNil)
				So(a.Participants, ShouldBeEmpty)
			})
		})

		Convey("When unregistering an absent email", func() {
			_, err := store.Unregister(ctx, "Soccer", "notasignup@mergington.edu")

			Convey("Then it is a conflict", func() {
				So(errors.Is(err, ErrNotSignedUp), ShouldBeTrue)
			})
		})

		Convey("When unregistering from an unknown activity", func() {
			_, err := store.Unregister(ctx, "Quidditch", "alex@mergington.edu")

			Convey("Then it is not found", func() {
				So(errors.Is(err, ErrActivityNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestRegistryStore_Concurrency(t *testing.T) {
	Convey("Given concurrent signups and unregisters", t, func() {
		ctx := context.Background()
		store := NewRegistryStore(ctx, testCatalog())
		const workers = 64

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			accepted int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				// Every worker races on the same email; exactly one may win.
				if _, err := store.Signup(ctx, "Art Club", "race@mergington.edu"); err == nil {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
				email := fmt.Sprintf("s%d@mergington.edu", i)
				_, _ = store.Signup(ctx, "Art Club", email)
				_, _ = store.Unregister(ctx, "Art Club", email)
			}(i)
		}
		wg.Wait()

		Convey("Then the duplicate check is atomic", func() {
			So(accepted, ShouldEqual, 1)
			a, _ := store.Get(ctx, "Art Club")
			So(a.Participants, ShouldResemble, []string{"isabella@mergington.edu", "race@mergington.edu"})
		})
	})
}
