package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProperties = `
nba.baseurl: http://api.biodiversitydata.nl/v2/
purl.baseurl: https://data.biodiversitydata.nl
bioportal.specimen.url: https://bioportal.naturalis.nl/specimen/${unitID}
xenocanto.observation.url: https://www.xeno-canto.org/observation/${unitID}
waarneming.observation.url: https://waarneming.nl/observation/${sourceSystemId}/
`

func TestParse(t *testing.T) {
	cfg, err := Parse(Server{Addr: ":9000"}, []byte(validProperties))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "http://api.biodiversitydata.nl/v2/", cfg.NBABaseURL())
	assert.Equal(t, "https://data.biodiversitydata.nl", cfg.PURLBaseURL())

	v, err := cfg.Required(KeyWaarnemingObservationURL)
	require.NoError(t, err)
	assert.Equal(t, "https://waarneming.nl/observation/${sourceSystemId}/", v)
}

func TestParseNestedKeys(t *testing.T) {
	nested := `
nba:
  baseurl: http://api.biodiversitydata.nl/v2
purl:
  baseurl: https://data.biodiversitydata.nl
bioportal:
  specimen:
    url: https://bioportal.naturalis.nl/specimen/${unitID}
xenocanto.observation.url: https://www.xeno-canto.org/observation/${unitID}
waarneming.observation.url: https://waarneming.nl/observation/${sourceSystemId}/
extra:
  timeout: 30
`
	cfg, err := Parse(Server{}, []byte(nested))
	require.NoError(t, err)

	assert.Equal(t, "http://api.biodiversitydata.nl/v2", cfg.NBABaseURL())
	v, ok := cfg.Property("bioportal.specimen.url")
	assert.True(t, ok)
	assert.Equal(t, "https://bioportal.naturalis.nl/specimen/${unitID}", v)
	v, ok = cfg.Property("extra.timeout")
	assert.True(t, ok)
	assert.Equal(t, "30", v)
}

func TestParseMissingRequired(t *testing.T) {
	_, err := Parse(Server{}, []byte("nba.baseurl: http://api.biodiversitydata.nl/v2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyPURLBaseURL)
	assert.Contains(t, err.Error(), KeyBioportalSpecimenURL)
	assert.NotContains(t, err.Error(), KeyNBABaseURL+",")
}

func TestParseInvalidBaseURL(t *testing.T) {
	props := `
nba.baseurl: not a url
purl.baseurl: https://data.biodiversitydata.nl
bioportal.specimen.url: x
xenocanto.observation.url: x
waarneming.observation.url: x
`
	_, err := Parse(Server{}, []byte(props))
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyNBABaseURL)
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse(Server{}, []byte("nba.baseurl: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validProperties), 0o600))

	cfg, err := Load(Server{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "https://data.biodiversitydata.nl", cfg.PURLBaseURL())

	_, err = Load(Server{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestRequiredAbsent(t *testing.T) {
	cfg, err := Parse(Server{}, []byte(validProperties))
	require.NoError(t, err)

	_, err = cfg.Required("does.not.exist")
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PURL_ADDR", "")
		t.Setenv("PURL_LOG_LEVEL", "")
		t.Setenv("PURL_CONFIG", "")
		t.Setenv("PURL_NBA_TIMEOUT", "")
		t.Setenv("PURL_SHUTDOWN_TIMEOUT", "")

		s := FromEnv()
		assert.Equal(t, ":8080", s.Addr)
		assert.Equal(t, "info", s.LogLevel)
		assert.Equal(t, "purl.yaml", s.ConfigPath)
		assert.Equal(t, 10*time.Second, s.NBATimeout)
		assert.Equal(t, 10*time.Second, s.ShutdownTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PURL_ADDR", ":9090")
		t.Setenv("PURL_LOG_LEVEL", "debug")
		t.Setenv("PURL_CONFIG", "/etc/purl/purl.yaml")
		t.Setenv("PURL_NBA_TIMEOUT", "3s")
		t.Setenv("PURL_SHUTDOWN_TIMEOUT", "bogus")

		s := FromEnv()
		assert.Equal(t, ":9090", s.Addr)
		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, "/etc/purl/purl.yaml", s.ConfigPath)
		assert.Equal(t, 3*time.Second, s.NBATimeout)
		assert.Equal(t, 10*time.Second, s.ShutdownTimeout)
	})
}
