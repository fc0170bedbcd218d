package index

import (
	"context"
	"testing"

	"github.com/diwise/library-resolver/pkg/library/entities"
	"github.com/diwise/library-resolver/pkg/library/types"
	"github.com/matryer/is"
)

func TestPutRoutesEntitiesByType(t *testing.T) {
	is, idx := testSetup(t)

	idx.Put(context.Background(), testEntity("p1", "playlist"), testEntity("a1", "album"))

	_, ok := idx.Item("playlists", "p1")
	is.True(ok)

	_, ok = idx.Item(DefaultContainer, "a1")
	is.True(ok)

	_, ok = idx.Item(DefaultContainer, "p1")
	is.True(!ok) // playlists should not end up in the default container

	is.Equal(idx.Containers(), []string{"items", "playlists"})
}

func TestPutMergesWithExistingEntity(t *testing.T) {
	is, idx := testSetup(t)
	ctx := context.Background()

	first, _ := entities.New("a1", "album", entities.DisplayName("Foo"), entities.Refs("tracks_uris", "t1"))
	second, _ := entities.New("a1", "album", entities.DisplayName("Bar"))

	idx.Put(ctx, first)
	idx.Put(ctx, second)

	e, ok := idx.Item(DefaultContainer, "a1")
	is.True(ok)

	name, _ := e.Attribute(entities.Name)
	is.Equal(name, "Bar")

	_, ok = e.Attribute("tracks_uris")
	is.True(ok) // attributes missing from the update should be kept
}

func TestPutClearsLoadingFlag(t *testing.T) {
	is, idx := testSetup(t)

	idx.SetLoading("a1", true)
	is.True(idx.Loading("a1"))

	idx.Put(context.Background(), testEntity("a1", "album"))
	is.True(!idx.Loading("a1"))
}

func TestRestoreKeepsLoadingFlag(t *testing.T) {
	is, idx := testSetup(t)

	idx.SetLoading("a1", true)
	idx.Restore(context.Background(), testEntity("a1", "album"))

	is.True(idx.Loading("a1"))

	idx.SetLoading("a1", false)
	is.True(!idx.Loading("a1"))
}

func TestItemsAreSortedByURI(t *testing.T) {
	is, idx := testSetup(t)

	idx.Restore(context.Background(), testEntity("b", "track"), testEntity("a", "track"), nil)

	items := idx.Items(DefaultContainer)
	is.Equal(len(items), 2)
	is.Equal(items[0].URI(), "a")
	is.Equal(items[1].URI(), "b")

	is.Equal(len(idx.Items("unknown")), 0)
}

func testSetup(t *testing.T) (*is.I, *Index) {
	return is.New(t), New(func(entityType string) string {
		if entityType == "playlist" {
			return "playlists"
		}
		return DefaultContainer
	})
}

func testEntity(uri, entityType string) types.Entity {
	e, _ := entities.New(uri, entityType, entities.DisplayName(uri))
	return e
}
