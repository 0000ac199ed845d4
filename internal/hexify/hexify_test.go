package hexify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		count int
	}{
		{
			name:  "single literal",
			in:    "mask = 0b1010;",
			want:  "mask = 0xa;",
			count: 1,
		},
		{
			name:  "multiple literals on one line",
			in:    "int edges = 0b11111 | 0b10000;",
			want:  "int edges = 0x1f | 0x10;",
			count: 2,
		},
		{
			name:  "zero stays zero",
			in:    "x = 0b0;",
			want:  "x = 0x0;",
			count: 1,
		},
		{
			name:  "no literals",
			in:    "static const int kBoardSize = 25;",
			want:  "static const int kBoardSize = 25;",
			count: 0,
		},
		{
			name:  "bare 0b prefix untouched",
			in:    "label_0b: return;",
			want:  "label_0b: return;",
			count: 0,
		},
		{
			name: "c source snippet",
			in: "static const uint32_t kEdges[] = {\n" +
				"    0b0000000000000000000001111,\n" +
				"    0b1000010000100001000010000,\n" +
				"};\n",
			want: "static const uint32_t kEdges[] = {\n" +
				"    0xf,\n" +
				"    0x1084210,\n" +
				"};\n",
			count: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, n := Convert([]byte(tt.in))
			assert.Equal(t, tt.want, string(out))
			assert.Equal(t, tt.count, n)
		})
	}
}

func TestRewriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quixo.c")
	require.NoError(t, os.WriteFile(path, []byte("row = 0b11111;\n"), 0o644))

	n, err := RewriteFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "row = 0x1f;\n", string(got))
}

func TestRewriteFileNoChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.c")
	require.NoError(t, os.WriteFile(path, []byte("int x = 7;\n"), 0o644))

	n, err := RewriteFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRewriteFileMissing(t *testing.T) {
	_, err := RewriteFile(filepath.Join(t.TempDir(), "absent.c"))
	assert.Error(t, err)
}
