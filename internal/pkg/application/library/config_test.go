package library

import (
	"bytes"
	"testing"

	"github.com/diwise/library-resolver/pkg/library/dependents"
	"github.com/matryer/is"
)

func TestLoadConfig(t *testing.T) {
	is, config := setupConfigTest(t)

	is.Equal(len(config.Sources), 2) // should find two library sources
	is.Equal(len(config.Types), 3)   // should find three types
}

func TestLoadSource(t *testing.T) {
	is, config := setupConfigTest(t)
	src := config.Sources[0]

	is.Equal(src.Endpoint, "http://lolcathost:6680")
	is.Equal(src.URIPattern, "^local:.+")
	is.Equal(src.Headers["X-Api-Key"], "letmein")
	is.True(src.Debug)
}

func TestTypeDefaults(t *testing.T) {
	is, config := setupConfigTest(t)
	playlist := config.Types[2]

	is.Equal(playlist.ContainerName(), "playlists")
	is.Equal(playlist.DependentItemType(), "track") // should use configured dependent type

	artist := config.Types[1]
	is.Equal(artist.ContainerName(), "items")      // should default to items
	is.Equal(artist.DependentItemType(), "artist") // should default to its own type
}

func TestDependentSetsUseReferenceConvention(t *testing.T) {
	is, config := setupConfigTest(t)

	deps, full := config.Types[0].DependentSets()

	is.Equal(deps, dependents.Set{dependents.ValueOf("name"), dependents.ReferencesTo("tracks_uris")})
	is.Equal(full, dependents.Set{dependents.ValueOf("images"), dependents.ReferencesTo("artists_uris")})
}

func TestDependentSetsHonourExplicitReferences(t *testing.T) {
	is, config := setupConfigTest(t)

	deps, _ := config.Types[2].DependentSets()

	is.Equal(deps, dependents.Set{dependents.ValueOf("name"), dependents.ReferencesTo("tracks")})
}

func TestContainerFor(t *testing.T) {
	is, config := setupConfigTest(t)

	is.Equal(config.ContainerFor("playlist"), "playlists")
	is.Equal(config.ContainerFor("album"), "items")
	is.Equal(config.ContainerFor("podcast"), "items")
}

func TestLoadConfigRejectsDuplicateTypes(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString("types:\n  - type: album\n  - type: album\n"))
	is.True(err != nil)
}

func TestLoadConfigRejectsBadURIPattern(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString("sources:\n  - endpoint: http://localhost\n    uriPattern: \"^local:(\"\n"))
	is.True(err != nil)
}

func setupConfigTest(t *testing.T) (*is.I, *Config) {
	is := is.New(t)
	cfgData := bytes.NewBuffer([]byte(configFile))
	config, err := LoadConfiguration(cfgData)
	is.NoErr(err)

	return is, config
}

var configFile string = `
sources:
  - endpoint: http://lolcathost:6680
    uriPattern: ^local:.+
    debug: true
    headers:
      X-Api-Key: letmein
  - endpoint: http://lolcathost:6681
    uriPattern: ^spotify:.+
types:
  - type: album
    container: items
    dependentType: track
    dependents: [name, tracks_uris]
    fullDependents: [images, artists_uris]
  - type: artist
    dependents: [name]
    fullDependents: [albums_uris]
  - type: playlist
    container: playlists
    dependentType: track
    dependents: [name, tracks]
    references: [tracks]
`
