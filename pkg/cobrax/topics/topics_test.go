package topics

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicManagerScanTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"resolution.md": {Data: []byte("# Resolution\n\nHow paths resolve")},
		"expansion.txt": {Data: []byte("Information about expansion")},
		"notes.txxt":    {Data: []byte("Extended format")},
		"ignore.json":   {Data: []byte("This should be ignored")},
	}

	t.Run("default extensions", func(t *testing.T) {
		tm := New(fsys)
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"resolution", true, "# Resolution\n\nHow paths resolve"},
			{"expansion", true, "Information about expansion"},
			{"notes", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			topic, exists := tm.GetTopic(tt.name)
			assert.Equal(t, tt.expected, exists, tt.name)
			if exists {
				assert.Equal(t, tt.content, topic.Content, tt.name)
			}
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(fsys, Options{
			Extensions: []string{".txt", ".md", ".txxt"},
		})
		require.NoError(t, tm.scanTopics())

		topic, exists := tm.GetTopic("notes")
		assert.True(t, exists)
		assert.Equal(t, "Extended format", topic.Content)
	})
}

func TestTopicManagerListTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"expansion.txt":  {Data: []byte("a")},
		"cleaning.txt":   {Data: []byte("b")},
		"resolution.txt": {Data: []byte("c")},
	}

	tm := New(fsys)
	require.NoError(t, tm.scanTopics())

	// sorted alphabetically
	assert.Equal(t, []string{"cleaning", "expansion", "resolution"}, tm.ListTopics())
}

func TestSubdirectoryTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"advanced/protocols.txt": {Data: []byte("Protocol help")},
	}

	tm := New(fsys)
	require.NoError(t, tm.scanTopics())

	// subdirectory files are found by basename
	topic, exists := tm.GetTopic("protocols")
	require.True(t, exists)
	assert.Equal(t, "Protocol help", topic.Content)
}

func TestEmptyTopics(t *testing.T) {
	tm := New(fstest.MapFS{})
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func TestInitialize(t *testing.T) {
	fsys := fstest.MapFS{
		"resolution.txt": {Data: []byte("Resolution topic content")},
	}

	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "abs",
		Short: "Absolutize something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	require.NoError(t, Initialize(rootCmd, fsys))

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

// captures everything written to stdout while f runs
func captureOutput(f func()) string {
	r, w, _ := os.Pipe()
	stdout := os.Stdout
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = stdout

	out := make([]byte, 4096)
	n, _ := r.Read(out)
	return string(out[:n])
}

func TestIntegrationHelpCommand(t *testing.T) {
	fsys := fstest.MapFS{
		"resolution.txt": {Data: []byte("RESOLUTION RULES\nHow lexical resolution works.")},
	}

	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	require.NoError(t, Initialize(rootCmd, fsys))

	output := captureOutput(func() {
		rootCmd.SetArgs([]string{"help", "resolution"})
		_ = rootCmd.Execute()
	})

	if !strings.Contains(output, "RESOLUTION RULES") {
		t.Errorf("Expected output to contain 'RESOLUTION RULES', got: %s", output)
	}
}

func TestIntegrationTopicsList(t *testing.T) {
	fsys := fstest.MapFS{
		"expansion.txt":  {Data: []byte("a")},
		"resolution.txt": {Data: []byte("b")},
	}

	rootCmd := &cobra.Command{Use: "testapp"}
	require.NoError(t, Initialize(rootCmd, fsys))

	output := captureOutput(func() {
		rootCmd.SetArgs([]string{"help", "topics"})
		_ = rootCmd.Execute()
	})

	assert.Contains(t, output, "expansion")
	assert.Contains(t, output, "resolution")
}
