package themes

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

var testThemes = fstest.MapFS{
	"themes/standard.yml": {Data: []byte("BalancePositive: \"[green]\"\nBalanceNegative: \"[red]\"\n")},
	"themes/mono.yml":     {Data: []byte("BalancePositive: \"[white]\"\n")},
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		want  map[string]string
		err   bool
	}{
		{
			name:  "default",
			theme: "",
			want:  map[string]string{"BalancePositive": "[green]", "BalanceNegative": "[red]"},
		},
		{
			name:  "merged over default",
			theme: "mono",
			want:  map[string]string{"BalancePositive": "[white]", "BalanceNegative": "[red]"},
		},
		{
			name:  "missing",
			theme: "neon",
			want:  map[string]string{"BalancePositive": "[green]", "BalanceNegative": "[red]"},
			err:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(testThemes, tt.theme)
			if tt.err {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_File(t *testing.T) {
	f := filepath.Join(t.TempDir(), "mine.yml")
	require.NoError(t, os.WriteFile(f, []byte("BalanceNegative: \"[pink]\"\n"), 0o600))

	got, err := Load(testThemes, f)
	require.NoError(t, err)
	require.Equal(t, "[pink]", got["BalanceNegative"])
	require.Equal(t, "[green]", got["BalancePositive"])
}

func TestLoad_Bundled(t *testing.T) {
	all := os.DirFS("..")

	std, err := Load(all, DefaultTheme)
	require.NoError(t, err)
	require.NotEmpty(t, std["TransactionsHeader"])

	mono, err := Load(all, "mono")
	require.NoError(t, err)

	// every key in a bundled theme must exist in the default theme
	for k := range mono {
		_, ok := std[k]
		require.True(t, ok, "key %v", k)
	}
}
