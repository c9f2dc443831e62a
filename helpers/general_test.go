package helpers

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestGetTitleFunc(t *testing.T) {
	title := "github pages"

	require.Equal(t, "Github Pages", GetTitleFunc("Go")(title))
	require.Equal(t, "Github Pages", GetTitleFunc("chicago")(title))
	require.Equal(t, "Github Pages", GetTitleFunc("AP")(title))
	require.Equal(t, "Github Pages", GetTitleFunc("")(title))

	require.Equal(t, "The Art of War", GetTitleFunc("AP")("the art of war"))
}

func TestUniqueStringsSorted(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, UniqueStringsSorted([]string{"c", "a", "b", "a", "c"}))
	require.Equal(t, []string{"en"}, UniqueStringsSorted([]string{"en", "en"}))
	require.Nil(t, UniqueStringsSorted(nil))
}

func TestEmojify(t *testing.T) {
	require.Equal(t, "Ship it \U0001f680", Emojify("Ship it :rocket:"))
	require.Equal(t, "\U0001f680\U0001f680", Emojify(":rocket::rocket:"))
	require.Equal(t, "no codes here", Emojify("no codes here"))
	require.Equal(t, "time 12:30:00", Emojify("time 12:30:00"))
	require.Equal(t, ":not-an-emoji-code:", Emojify(":not-an-emoji-code:"))
}

func TestOpenFileForWriting(t *testing.T) {
	fs := afero.NewMemMapFs()

	f, err := OpenFileForWriting(fs, "/build/github-pages/site.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{"profile":"github-pages"}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = OpenFileForWriting(fs, "/build/github-pages/site.json")
	require.NoError(t, err)
	_, err = f.WriteString("{}")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err := afero.ReadFile(fs, "/build/github-pages/site.json")
	require.NoError(t, err)
	require.Equal(t, "{}", strings.TrimSpace(string(b)))

	// A relative name in the current directory needs no parent.
	f, err = OpenFileForWriting(fs, "site.json")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	exists, err := afero.Exists(fs, "site.json")
	require.NoError(t, err)
	require.True(t, exists)
}
