package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordtree/internal/models"
)

func init() {
	color.NoColor = true
}

// execute runs the command tree with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTaxonomy(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const fruitsAndAnimals = `{"Fruits": ["Apple", "Banana"], "Animals": ["Cat"]}`

func TestAnalyzeCommand_Usage(t *testing.T) {
	tests := [][]string{
		{"analyze"},
		{"analyze", "--depth", "2"},
		{"analyze", "apple"},
		{"analyze", "apple", "--depth"},
	}
	for _, args := range tests {
		out, _, err := execute(t, args...)
		require.NoError(t, err)
		assert.Equal(t, usageMessage+"\n", out)
	}
}

func TestAnalyzeCommand_InvalidDepth(t *testing.T) {
	out, _, err := execute(t, "analyze", "--depth", "two", "apple")
	require.NoError(t, err)
	assert.Equal(t, invalidArgsMessage+"\n", out)
}

func TestAnalyzeCommand_UsageDespiteBrokenConfig(t *testing.T) {
	t.Setenv("WORDTREE_OUTPUT_FORMAT", "xml")

	out, _, err := execute(t, "analyze")
	require.NoError(t, err)
	assert.Equal(t, usageMessage+"\n", out)

	out, _, err = execute(t, "analyze", "--depth", "x", "gato")
	require.NoError(t, err)
	assert.Equal(t, invalidArgsMessage+"\n", out)
}

func TestAnalyzeCommand_DashLedPhrase(t *testing.T) {
	path := writeTaxonomy(t, "tree.json", `{"Animals": ["-gato", "Cat"]}`)

	out, _, err := execute(t, "analyze", "--taxonomy", path, "--depth", "1", "-gato")
	require.NoError(t, err)
	assert.Equal(t, "Animals = 1 ( 1 Animals foi mencionado(o) )\n", out)
}

func TestAnalyzeCommand_IgnoresUnknownFlags(t *testing.T) {
	path := writeTaxonomy(t, "tree.json", fruitsAndAnimals)

	out, _, err := execute(t, "analyze", "--taxonomy", path, "--depth", "1", "cat", "--foo")
	require.NoError(t, err)
	assert.Equal(t, "Animals = 1 ( 1 Animals foi mencionado(o) )\n", out)
}

func TestAnalyzeCommand_Help(t *testing.T) {
	out, _, err := execute(t, "analyze", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--depth")
}

func TestAnalyzeCommand_CountsMatches(t *testing.T) {
	path := writeTaxonomy(t, "tree.json", fruitsAndAnimals)

	out, _, err := execute(t, "analyze", "--depth", "1", "Apple Cat cat apple", "--taxonomy", path)
	require.NoError(t, err)
	assert.Equal(t,
		"Animals = 2 ( 2 Animals foram mencionados(as) )\n"+
			"Fruits = 2 ( 2 Fruits foram mencionados(as) )\n",
		out)
}

func TestAnalyzeCommand_SingularEnglish(t *testing.T) {
	path := writeTaxonomy(t, "tree.json", fruitsAndAnimals)

	out, _, err := execute(t, "analyze", "--locale", "en", "--taxonomy", path, "--depth", "1", "banana")
	require.NoError(t, err)
	assert.Equal(t, "Fruits = 1 ( 1 Fruits was mentioned )\n", out)
}

func TestAnalyzeCommand_NoTerms(t *testing.T) {
	path := writeTaxonomy(t, "tree.json", fruitsAndAnimals)

	out, _, err := execute(t, "analyze", "--taxonomy", path, "--depth", "4", "apple")
	require.NoError(t, err)
	assert.Equal(t, "Na frase não existe nenhum filho do nível 4 e nem o nível 4 possui os termos especificados.\n", out)
}

func TestAnalyzeCommand_Verbose(t *testing.T) {
	out, stderr, err := execute(t, "analyze", "--verbose", "--depth", "2", "gato tucano")
	require.NoError(t, err)

	assert.Contains(t, out, "Animais = 2 ( 2 Animais foram mencionados(as) )\n")
	assert.Regexp(t, `(?m)^Tempo de carregamento dos parâmetros: \d+ms$`, out)
	assert.Regexp(t, `(?m)^Tempo de verificação da frase: \d+ms$`, out)
	assert.Contains(t, stderr, "Phrase analyzed")
}

func TestAnalyzeCommand_Table(t *testing.T) {
	path := writeTaxonomy(t, "tree.yaml", "Fruits: [Apple]\nAnimals: [Cat]\n")

	out, _, err := execute(t, "analyze", "--format", "table", "--locale", "en", "--taxonomy", path, "--depth", "1", "apple")
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "Fruits")
	assert.NotContains(t, out, "Animals")
}

func TestAnalyzeCommand_LoadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	out, _, err := execute(t, "analyze", "--taxonomy", missing, "--depth", "1", "apple")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLoad)
	assert.Empty(t, out)
}

func TestAnalyzeCommand_BadConfig(t *testing.T) {
	_, _, err := execute(t, "analyze", "--format", "xml", "--depth", "1", "apple")
	assert.ErrorContains(t, err, "failed to initialize app")
}

func TestDoctorCommand(t *testing.T) {
	path := writeTaxonomy(t, "tree.json", `{"Nature": {"Animals": ["Cat", "Dog"]}, "Misc": ["Pen"]}`)

	out, _, err := execute(t, "doctor", "--taxonomy", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Checking taxonomy...")
	assert.Regexp(t, `Words\s*\|?\s*3`, out)
	assert.Regexp(t, `Max depth\s*\|?\s*2`, out)
	assert.Contains(t, out, "Taxonomy loaded successfully.")

	_, _, err = execute(t, "doctor", "--taxonomy", filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, models.ErrLoad)
}

func TestRootCommand_PrintsHelp(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "analyze")
	assert.Contains(t, out, "doctor")
}
