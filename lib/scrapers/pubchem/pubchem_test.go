package pubchem

import (
	"context"
	"elementdata/lib/periodic"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "embed"

	"github.com/stretchr/testify/require"
)

//go:embed testdata/periodic_table.json
var periodicTableFixture []byte

func fixtureServer(t *testing.T, status int, body []byte) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchTable(t *testing.T) {
	server := fixtureServer(t, http.StatusOK, periodicTableFixture)
	client := NewClient(ClientOptions{Url: server.URL})

	table, err := client.FetchTable(context.Background())
	require.NoError(t, err)

	require.Equal(t, []string{"H", "V", "Fe", "Nh", "Og"}, table.Symbols())

	hydrogen, ok := table.Get("H")
	require.True(t, ok)
	require.Equal(t, periodic.Color{255, 255, 255}, hydrogen.Color)
	require.Equal(t, 120, hydrogen.VanDerWaal)
	require.Nil(t, hydrogen.Covalent)

	// empty hex and radius cells produce sentinels
	nihonium, ok := table.Get("Nh")
	require.True(t, ok)
	require.Equal(t, periodic.UnknownColor, nihonium.Color)
	require.Equal(t, periodic.Unknown, nihonium.VanDerWaal)
}

func TestFetchTableHttpError(t *testing.T) {
	server := fixtureServer(t, http.StatusServiceUnavailable, nil)
	client := NewClient(ClientOptions{Url: server.URL})

	_, err := client.FetchTable(context.Background())
	require.ErrorContains(t, err, "503")
}

func TestFetchTableBadStructure(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"not json", "<html></html>"},
		{"no rows", `{"Table":{"Row":[]}}`},
		{"short row", `{"Table":{"Row":[{"Cell":["1","H","Hydrogen"]}]}}`},
		{"bad radius", `{"Table":{"Row":[{"Cell":["1","H","Hydrogen","1.008","FFFFFF","1s1","2.2","abc"]}]}}`},
		{"bad hex digits", `{"Table":{"Row":[{"Cell":["1","H","Hydrogen","1.008","ZZZZZZ","1s1","2.2","120"]}]}}`},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			server := fixtureServer(t, http.StatusOK, []byte(test.body))
			client := NewClient(ClientOptions{Url: server.URL})

			_, err := client.FetchTable(context.Background())
			require.Error(t, err)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	testCases := []struct {
		in       string
		expected periodic.Color
	}{
		{"FFFFFF", periodic.Color{255, 255, 255}},
		{"000000", periodic.Color{0, 0, 0}},
		{"E06633", periodic.Color{224, 102, 51}},
		{"8f40d4", periodic.Color{143, 64, 212}},
		// anything that isn't exactly 6 hex characters is "no color"
		{"", periodic.UnknownColor},
		{"FFF", periodic.UnknownColor},
		{"FFFFFFF", periodic.UnknownColor},
	}

	for _, test := range testCases {
		got, err := parseHexColor(test.in)
		require.NoError(t, err, test.in)
		require.Equal(t, test.expected, got, test.in)
		for _, component := range got {
			if component != periodic.Unknown && (component < 0 || component > 255) {
				t.Fatalf("parseHexColor(%q) component out of range: %d", test.in, component)
			}
		}
	}

	_, err := parseHexColor("GGGGGG")
	require.Error(t, err)
}

func TestParseRadius(t *testing.T) {
	got, err := parseRadius("")
	require.NoError(t, err)
	require.Equal(t, periodic.Unknown, got)

	got, err = parseRadius("120")
	require.NoError(t, err)
	require.Equal(t, 120, got)

	_, err = parseRadius("12.5")
	require.Error(t, err)
}
