package configdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLocationStripsOptionalPrefix(t *testing.T) {
	l := ParseLocation("optional:classpath:/config/")

	require.True(t, l.Optional)
	require.Equal(t, "classpath:/config/", l.Value)
	require.Equal(t, "optional:classpath:/config/", l.String())
}

func TestParseLocationWithoutPrefix(t *testing.T) {
	l := ParseLocation(" file:./config/app.hcl ")

	require.False(t, l.Optional)
	require.Equal(t, "file:./config/app.hcl", l.String())
	require.True(t, l.HasPrefix(FilePrefix))
	require.Equal(t, "./config/app.hcl", l.NonPrefixedValue(FilePrefix))
	require.False(t, l.IsDirectory())
}

func TestLocationSplitAppliesOptional(t *testing.T) {
	l := Location{Value: "classpath:/;optional:file:./config/;;file:./app.hcl", Optional: false}

	parts := l.Split()

	require.Equal(t, []Location{
		{Value: "classpath:/"},
		{Value: "file:./config/", Optional: true},
		{Value: "file:./app.hcl"},
	}, parts)

	l.Optional = true
	for _, p := range l.Split() {
		require.True(t, p.Optional)
	}
}

func TestLocationIsEmpty(t *testing.T) {
	require.True(t, ParseLocation("optional:").IsEmpty())
	require.False(t, ParseLocation("file:./").IsEmpty())
}
