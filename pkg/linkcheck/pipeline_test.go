package linkcheck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTable builds a table covering every classification bucket.
func sampleTable() *LinkTable {
	alt := "A gannet in flight"
	return NewLinkTable(
		&LinkRecord{
			Orig: "https://example.com/gannets", Type: TypeLink,
			Text: "Gannet population trends", Scheme: "https", Server: "example.com",
			Path: "/gannets",
		},
		&LinkRecord{
			Orig: "http://example.com/", Type: TypeLink,
			Text: "insecure link", Scheme: "http", Server: "example.com", Path: "/",
		},
		&LinkRecord{
			Orig: "#setup", Type: TypeLink, Text: "Setup", Anchor: true,
			Fragment: "setup",
		},
		&LinkRecord{
			Orig: "#nowhere", Type: TypeLink, Text: "Missing anchor", Anchor: true,
			Fragment: "nowhere",
		},
		&LinkRecord{
			Orig: "intro.md", Type: TypeLink, Text: "the introduction",
			Path: "intro.md",
		},
		&LinkRecord{
			Orig: "gone.md", Type: TypeLink, Text: "a page that is gone",
			Path: "gone.md",
		},
		&LinkRecord{
			Orig: "gannet.png", Type: TypeImage, Text: "A gannet in flight",
			Alt: &alt, Path: "gannet.png",
		},
	)
}

func sampleDocument(t *testing.T) Document {
	t.Helper()

	root := t.TempDir()
	home := filepath.Join(root, "episodes")
	require.NoError(t, os.MkdirAll(home, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "intro.md"), []byte("# Intro\n"), 0o644))

	return Document{
		Dir:      home,
		Headings: []string{"Setup", "Data"},
	}
}

func TestValidateEmptyTable(t *testing.T) {
	doc := Document{Dir: t.TempDir()}

	assert.Nil(t, Validate(context.Background(), nil, doc))
	assert.Nil(t, Validate(context.Background(), NewLinkTable(), doc))
}

func TestValidateFullPipeline(t *testing.T) {
	table := sampleTable()
	doc := sampleDocument(t)

	out := Validate(context.Background(), table, doc)
	require.NotNil(t, out)
	require.Same(t, table, out, "Validate augments the table in place")

	recs := out.Records

	// Protocol rules cover every row.
	for i, rec := range recs {
		assert.True(t, rec.KnownProtocol.IsSet(), "row %d known_protocol", i)
		assert.True(t, rec.EnforceHTTPS.IsSet(), "row %d enforce_https", i)
	}
	assert.True(t, recs[0].EnforceHTTPS.Passed())
	assert.True(t, recs[1].EnforceHTTPS.Failed())

	// Anchor rule covers only in-page rows.
	assert.True(t, recs[2].InternalAnchor.Passed())
	assert.True(t, recs[3].InternalAnchor.Failed())
	assert.False(t, recs[0].InternalAnchor.IsSet())

	// File rule covers only cross-page rows.
	assert.True(t, recs[4].InternalFile.Passed())
	assert.True(t, recs[5].InternalFile.Failed())
	assert.False(t, recs[2].InternalFile.IsSet())

	// all_reachable stays unset without a checker.
	for i, rec := range recs {
		assert.False(t, rec.AllReachable.IsSet(), "row %d all_reachable", i)
	}

	// Text rules.
	assert.True(t, recs[6].ImgAltText.Passed())
	assert.False(t, recs[0].ImgAltText.IsSet())
	assert.True(t, recs[0].Descriptive.Passed())
	assert.False(t, recs[2].Descriptive.IsSet(), "anchor rows skip descriptive")
	assert.True(t, recs[0].LinkLength.Passed())
	assert.False(t, recs[6].LinkLength.IsSet(), "image rows skip link_length")
}

func TestValidateIdempotent(t *testing.T) {
	doc := sampleDocument(t)

	first := Validate(context.Background(), sampleTable(), doc)
	second := Validate(context.Background(), sampleTable(), doc)
	require.NotNil(t, first)
	require.NotNil(t, second)

	// Re-running on the augmented output must not change any verdicts.
	again := Validate(context.Background(), first, doc)

	for i := range first.Records {
		for _, col := range Columns() {
			assert.Equal(t, second.Records[i].Result(col), first.Records[i].Result(col),
				"row %d column %s differs across fresh runs", i, col)
			assert.Equal(t, second.Records[i].Result(col), again.Records[i].Result(col),
				"row %d column %s differs after re-validation", i, col)
		}
	}
}

func TestValidateDisabledRules(t *testing.T) {
	table := sampleTable()
	doc := sampleDocument(t)

	Validate(context.Background(), table, doc, WithDisabledRules(ColEnforceHTTPS, "LC009"))

	for i, rec := range table.Records {
		assert.False(t, rec.EnforceHTTPS.IsSet(), "row %d enforce_https disabled", i)
		assert.False(t, rec.LinkLength.IsSet(), "row %d link_length disabled by ID", i)
		assert.True(t, rec.KnownProtocol.IsSet(), "row %d other rules still run", i)
	}
}

func TestValidateWellFormedOverridesExistence(t *testing.T) {
	doc := sampleDocument(t)

	// intro.md exists on disk, but the path collides with another row's
	// reference key, so it fails internal_well_formed and is excluded
	// from internal_file.
	table := NewLinkTable(
		&LinkRecord{Orig: "intro.md", Type: TypeLink, Text: "broken ref", Path: "intro.md"},
		&LinkRecord{Orig: "x", Type: TypeRefLink, Text: "the key owner", Rel: "intro.md", Path: "other.md"},
	)

	Validate(context.Background(), table, doc)

	assert.True(t, table.Records[0].InternalWellFormed.Failed())
	assert.False(t, table.Records[0].InternalFile.IsSet())
}

func TestDefaultRegistryOrder(t *testing.T) {
	assert.Equal(t, Columns(), DefaultRegistry.Names(),
		"registry order must match the documented column order")
}
