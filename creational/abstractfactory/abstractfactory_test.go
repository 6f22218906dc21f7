package abstractfactory_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/sghaida/patterns/creational/abstractfactory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFactoryFor_Families verifies each platform yields a consistent widget family.
func TestFactoryFor_Families(t *testing.T) {
	t.Parallel()

	cases := []struct {
		platform string
		want     string
	}{
		{platform: "win", want: "WinButton Created\nWinTextBox Created\n"},
		{platform: "WEB", want: "WebButton Created\nWebTextBox Created\n"},
	}

	for _, tc := range cases {
		t.Run(tc.platform, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			f, err := abstractfactory.FactoryFor(tc.platform, &buf)
			require.NoError(t, err)

			require.NoError(t, abstractfactory.NewApplication(f).Paint())
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestFactoryFor_Unknown(t *testing.T) {
	t.Parallel()

	f, err := abstractfactory.FactoryFor("mac", &bytes.Buffer{})
	require.ErrorIs(t, err, abstractfactory.ErrUnknownPlatform)
	assert.Nil(t, f)
	assert.Contains(t, err.Error(), `"mac"`)
}

func ExampleDemo() {
	_ = abstractfactory.Demo(os.Stdout)
	// Output:
	// WinButton Created
	// WinTextBox Created
}
